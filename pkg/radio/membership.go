package radio

import "slices"

// MembershipChange describes one shape change of a group's member set.
type MembershipChange[T comparable] struct {
	Added     []*Button[T]
	Removed   []*Button[T]
	Reordered bool
}

// Membership is the live, ordered set of buttons belonging to a group.
//
// The group does not own its members. A structural renderer registers a
// button when it is attached and unregisters it when it is removed; a button
// constructed with a group registers itself. Every shape change is reported
// to listeners once, or once per [Membership.Batch].
type Membership[T comparable] struct {
	owner     *Group[T]
	items     []*Button[T]
	resolved  bool
	depth     int
	dirty     bool
	pending   MembershipChange[T]
	listeners listenerSet[MembershipChange[T]]
}

func newMembership[T comparable](owner *Group[T]) *Membership[T] {
	return &Membership[T]{owner: owner}
}

// Register appends b to the member set. It reports false if b is nil,
// already a member, or was constructed for a different group.
func (m *Membership[T]) Register(b *Button[T]) bool {
	if b == nil || b.group != m.owner || m.Contains(b) {
		return false
	}
	m.items = append(m.items, b)
	m.pending.Added = append(m.pending.Added, b)
	m.changed()
	return true
}

// Unregister removes b from the member set. It reports false if b was not a
// member.
func (m *Membership[T]) Unregister(b *Button[T]) bool {
	i := slices.Index(m.items, b)
	if i < 0 {
		return false
	}
	m.items = slices.Delete(m.items, i, i+1)
	m.pending.Removed = append(m.pending.Removed, b)
	m.changed()
	return true
}

// Reorder moves the listed members to the front in the given order. Buttons
// that are not members are ignored and unlisted members keep their relative
// order after the listed ones.
func (m *Membership[T]) Reorder(order []*Button[T]) {
	next := make([]*Button[T], 0, len(m.items))
	for _, b := range order {
		if m.Contains(b) && !slices.Contains(next, b) {
			next = append(next, b)
		}
	}
	for _, b := range m.items {
		if !slices.Contains(next, b) {
			next = append(next, b)
		}
	}
	if slices.Equal(next, m.items) {
		return
	}
	m.items = next
	m.pending.Reordered = true
	m.changed()
}

// Batch runs fn and reports the accumulated shape changes once it returns.
// Batches nest; only the outermost one notifies.
func (m *Membership[T]) Batch(fn func()) {
	m.depth++
	defer func() {
		m.depth--
		if m.depth == 0 && m.dirty {
			m.flush()
		}
	}()
	fn()
}

// Contains reports whether b is currently a member.
func (m *Membership[T]) Contains(b *Button[T]) bool {
	return b != nil && slices.Contains(m.items, b)
}

// Len returns the number of members.
func (m *Membership[T]) Len() int { return len(m.items) }

// Items returns a copy of the members in order.
func (m *Membership[T]) Items() []*Button[T] { return slices.Clone(m.items) }

// Each calls fn for every member in order. The set is read when Each is
// called, so fn may register or unregister buttons.
func (m *Membership[T]) Each(fn func(*Button[T])) {
	for _, b := range slices.Clone(m.items) {
		fn(b)
	}
}

// Resolved reports whether the member set has changed shape at least once.
func (m *Membership[T]) Resolved() bool { return m.resolved }

// AddListener subscribes fn to shape changes and returns an unsubscribe
// func.
func (m *Membership[T]) AddListener(fn func(MembershipChange[T])) func() {
	return m.listeners.add(fn)
}

func (m *Membership[T]) changed() {
	m.dirty = true
	if m.depth == 0 {
		m.flush()
	}
}

func (m *Membership[T]) flush() {
	change := m.pending
	m.pending = MembershipChange[T]{}
	m.dirty = false
	m.resolved = true
	m.listeners.emit("radio.Membership.change", change)
}
