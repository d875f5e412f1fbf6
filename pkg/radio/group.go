package radio

import "github.com/go-drift/radio/pkg/errors"

// Group coordinates a set of [Button] members so that at most one is
// selected, and owns the authoritative selection value.
//
// Group implements the form-binding adapter ([Group.WriteValue],
// [Group.RegisterOnChange], [Group.RegisterOnTouched],
// [Group.SetDisabledState]) so an external forms layer can observe and drive
// it.
//
// The zero value is not usable; create groups with [NewGroup].
type Group[T comparable] struct {
	value    T
	hasValue bool
	selected *Button[T]

	// initialized is set once the membership has been resolved; change
	// events are suppressed before that.
	initialized bool

	required      bool
	requiredSet   bool
	disabled      bool
	disabledSet   bool
	labelPosition LabelPosition
	name          string
	color         Palette

	members *Membership[T]
	changes listenerSet[Change[T]]

	onChange  func(T)
	onTouched func()
}

// NewGroup returns an empty group with no value and labels after controls.
func NewGroup[T comparable]() *Group[T] {
	g := &Group[T]{labelPosition: LabelAfter}
	g.members = newMembership(g)
	g.members.AddListener(g.membersChanged)
	return g
}

// Members returns the live membership tracker of the group.
func (g *Group[T]) Members() *Membership[T] { return g.members }

// Initialized reports whether the membership has been resolved at least once.
func (g *Group[T]) Initialized() bool { return g.initialized }

// Value returns the group value. It is the zero value when [Group.HasValue]
// is false.
func (g *Group[T]) Value() T { return g.value }

// HasValue reports whether a value is set, matched by a member or not.
func (g *Group[T]) HasValue() bool { return g.hasValue }

// Selected returns the member whose value matches the group value, or nil.
func (g *Group[T]) Selected() *Button[T] { return g.selected }

// SetValue sets the group value and resyncs the checked state of all
// members. A value equal to the current one is ignored. A value that matches
// no member clears the selection but is kept for members added later.
//
// SetValue is a programmatic write: neither the registered on-change
// callback nor the change event fire.
func (g *Group[T]) SetValue(v T) {
	if g.valueUnchanged(v, true) {
		return
	}
	g.value, g.hasValue = v, true
	g.resync()
}

// ClearValue unsets the group value and unchecks every member.
func (g *Group[T]) ClearValue() {
	if g.valueUnchanged(g.value, false) {
		return
	}
	var zero T
	g.value, g.hasValue = zero, false
	g.resync()
}

// SetSelected makes b the selection and adopts its value, unchecking every
// other member. Passing nil clears both the selection and the value.
// Buttons that are not members of g are ignored.
func (g *Group[T]) SetSelected(b *Button[T]) {
	if b != nil && !g.members.Contains(b) {
		return
	}
	g.selectButton(b, false)
}

// valueUnchanged is the re-entrancy guard of the value setters: writing the
// current value must not touch members or notify anyone.
func (g *Group[T]) valueUnchanged(v T, has bool) bool {
	if g.hasValue != has {
		return false
	}
	return !has || g.value == v
}

// inSync is the resync guard: when the selection already carries the group
// value there is nothing to write.
func (g *Group[T]) inSync() bool {
	return g.selected != nil && g.matches(g.selected.value)
}

func (g *Group[T]) matches(v T) bool {
	return g.hasValue && g.value == v
}

// resync derives every member's checked flag from the group value. When
// several members match, all are checked and the last one becomes the
// selection.
func (g *Group[T]) resync() {
	if g.inSync() {
		return
	}
	g.selected = nil
	g.members.Each(func(b *Button[T]) {
		checked := g.matches(b.value)
		b.syncChecked(checked)
		if checked {
			g.selected = b
		}
	})
}

// selectButton moves the selection to b (or clears it) and reports the value
// change to the form callback and change listeners when userDriven is set.
// The event is built before any callback runs, so a callback that selects
// again does not alter it.
func (g *Group[T]) selectButton(b *Button[T], userDriven bool) {
	if b == nil {
		changed := g.hasValue
		var zero T
		g.selected = nil
		g.value, g.hasValue = zero, false
		g.resync()
		if changed && userDriven {
			g.notifyChange(Change[T]{Value: zero})
		}
		return
	}

	changed := !g.valueUnchanged(b.value, true)
	g.selected = b
	g.value, g.hasValue = b.value, true
	g.members.Each(func(m *Button[T]) {
		if m != b {
			m.syncChecked(false)
		}
	})
	b.syncChecked(true)
	if changed && userDriven {
		g.notifyChange(Change[T]{Source: b, Value: b.value})
	}
}

// release drops b as the selection after the user unchecked it. The value
// is kept.
func (g *Group[T]) release(b *Button[T]) {
	if g.selected == b {
		g.selected = nil
	}
}

// memberValueChanged is called after a member pulled its checked state for
// a new value of its own.
func (g *Group[T]) memberValueChanged(b *Button[T], matched bool) {
	switch {
	case matched:
		g.selected = b
	case g.selected == b:
		g.selected = nil
	}
}

func (g *Group[T]) notifyChange(c Change[T]) {
	if g.onChange != nil {
		errors.Guard("radio.Group.onChange", func() { g.onChange(c.Value) })
	}
	g.emitChangeEvent(c)
}

// emitChangeEvent dispatches c once the group is initialized.
func (g *Group[T]) emitChangeEvent(c Change[T]) {
	if !g.initialized {
		return
	}
	g.changes.emit("radio.Group.change", c)
}

// OnChange subscribes fn to group change events and returns an unsubscribe
// func.
func (g *Group[T]) OnChange(fn func(Change[T])) func() {
	return g.changes.add(fn)
}

func (g *Group[T]) membersChanged(change MembershipChange[T]) {
	g.initialized = true

	for _, b := range change.Removed {
		if g.selected == b && !g.members.Contains(b) {
			g.selected = nil
		}
	}
	for _, b := range change.Added {
		if !g.members.Contains(b) {
			continue
		}
		if g.matches(b.value) {
			b.syncChecked(true)
			g.selected = b
		} else if b.checked {
			b.syncChecked(false)
		}
	}
	g.propagateDefaults()
}

func (g *Group[T]) propagateDefaults() {
	g.members.Each(func(b *Button[T]) {
		if g.requiredSet {
			b.SetRequired(g.required)
		}
		if g.disabledSet {
			b.SetDisabled(g.disabled)
		}
		b.markForCheck()
	})
}

// Required reports the group required default.
func (g *Group[T]) Required() bool { return g.required }

// SetRequired stores the required default and writes it onto every member.
func (g *Group[T]) SetRequired(required bool) {
	g.required, g.requiredSet = required, true
	g.members.Each(func(b *Button[T]) { b.SetRequired(required) })
}

// Disabled reports the group disabled default.
func (g *Group[T]) Disabled() bool { return g.disabled }

// SetDisabled stores the disabled default and writes it onto every member.
func (g *Group[T]) SetDisabled(disabled bool) {
	g.disabled, g.disabledSet = disabled, true
	g.members.Each(func(b *Button[T]) { b.SetDisabled(disabled) })
}

// LabelPosition returns the group label position.
func (g *Group[T]) LabelPosition() LabelPosition { return g.labelPosition }

// SetLabelPosition stores pos, treating anything but [LabelBefore] as
// [LabelAfter], and marks members for refresh.
func (g *Group[T]) SetLabelPosition(pos LabelPosition) {
	if pos == LabelBefore {
		g.labelPosition = LabelBefore
	} else {
		g.labelPosition = LabelAfter
	}
	g.markMembersForCheck()
}

// Name returns the group name.
func (g *Group[T]) Name() string { return g.name }

// SetName stores the name members fall back to and marks them for refresh.
func (g *Group[T]) SetName(name string) {
	g.name = name
	g.markMembersForCheck()
}

// Color returns the group palette, empty when unset.
func (g *Group[T]) Color() Palette { return g.color }

// SetColor stores the palette members fall back to and marks them for
// refresh.
func (g *Group[T]) SetColor(color Palette) {
	g.color = color
	g.markMembersForCheck()
}

func (g *Group[T]) markMembersForCheck() {
	g.members.Each(func(b *Button[T]) { b.markForCheck() })
}

// WriteValue sets the model value from the forms layer. Writing the current
// value re-checks its member if the user had unchecked it.
func (g *Group[T]) WriteValue(v T) {
	if g.valueUnchanged(v, true) {
		g.resync()
		return
	}
	g.SetValue(v)
}

// RegisterOnChange stores the callback invoked when the user changes the
// value. A nil fn removes it.
func (g *Group[T]) RegisterOnChange(fn func(T)) { g.onChange = fn }

// RegisterOnTouched stores the callback invoked by [Group.Touch].
func (g *Group[T]) RegisterOnTouched(fn func()) { g.onTouched = fn }

// SetDisabledState disables or enables the group from the forms layer.
func (g *Group[T]) SetDisabledState(disabled bool) { g.SetDisabled(disabled) }

// Touch marks the group as touched. Members call it when they gain focus.
func (g *Group[T]) Touch() {
	if g.onTouched != nil {
		errors.Guard("radio.Group.onTouched", g.onTouched)
	}
}
