package radio

import (
	"slices"

	"github.com/go-drift/radio/pkg/errors"
)

// Change is the payload of group and button change events.
type Change[T comparable] struct {
	// Source is the button that caused the change. It is nil for a group
	// change that left no member selected.
	Source *Button[T]
	// Value is the new value.
	Value T
}

type listenerEntry[E any] struct {
	id int
	fn func(E)
}

// listenerSet is an ordered set of callbacks. Listeners added or removed
// during emit take effect from the next emit.
type listenerSet[E any] struct {
	seq     int
	entries []listenerEntry[E]
}

func (s *listenerSet[E]) add(fn func(E)) func() {
	if fn == nil {
		return func() {}
	}
	s.seq++
	id := s.seq
	s.entries = append(s.entries, listenerEntry[E]{id: id, fn: fn})
	return func() {
		s.entries = slices.DeleteFunc(s.entries, func(e listenerEntry[E]) bool { return e.id == id })
	}
}

func (s *listenerSet[E]) len() int { return len(s.entries) }

// emit calls every listener in registration order. A panicking listener is
// reported and does not stop the others.
func (s *listenerSet[E]) emit(op string, event E) {
	for _, e := range slices.Clone(s.entries) {
		errors.Guard(op, func() { e.fn(event) })
	}
}
