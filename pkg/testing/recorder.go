package testing

import (
	"slices"

	"github.com/go-drift/radio/pkg/radio"
)

// Recorder captures everything a group reports: group change events, change
// events of its members, form on-change values and touches.
//
// Recording a group replaces its form callbacks.
type Recorder[T comparable] struct {
	groupChanges  []radio.Change[T]
	buttonChanges []radio.Change[T]
	formValues    []T
	touches       int

	group   *radio.Group[T]
	watched map[*radio.Button[T]]func()
	unsubs  []func()
}

// Record starts recording g. Buttons registered with g later are recorded
// too.
func Record[T comparable](g *radio.Group[T]) *Recorder[T] {
	r := &Recorder[T]{group: g, watched: make(map[*radio.Button[T]]func())}
	g.RegisterOnChange(func(v T) { r.formValues = append(r.formValues, v) })
	g.RegisterOnTouched(func() { r.touches++ })
	r.unsubs = append(r.unsubs,
		g.OnChange(func(c radio.Change[T]) { r.groupChanges = append(r.groupChanges, c) }),
		g.Members().AddListener(func(c radio.MembershipChange[T]) {
			for _, b := range c.Added {
				r.Watch(b)
			}
		}),
	)
	g.Members().Each(r.Watch)
	return r
}

// Watch records the change events of b, which need not belong to a group.
func (r *Recorder[T]) Watch(b *radio.Button[T]) {
	if _, ok := r.watched[b]; ok {
		return
	}
	r.watched[b] = b.OnChange(func(c radio.Change[T]) { r.buttonChanges = append(r.buttonChanges, c) })
}

// Stop detaches the recorder from every group and button it listens to and
// clears the group's form callbacks.
func (r *Recorder[T]) Stop() {
	r.group.RegisterOnChange(nil)
	r.group.RegisterOnTouched(nil)
	for _, unsub := range r.unsubs {
		unsub()
	}
	for _, unsub := range r.watched {
		unsub()
	}
	r.unsubs = nil
	clear(r.watched)
}

// Reset forgets everything recorded so far.
func (r *Recorder[T]) Reset() {
	r.groupChanges = nil
	r.buttonChanges = nil
	r.formValues = nil
	r.touches = 0
}

// GroupChanges returns the recorded group change events.
func (r *Recorder[T]) GroupChanges() []radio.Change[T] { return slices.Clone(r.groupChanges) }

// ButtonChanges returns the recorded button change events in emit order.
func (r *Recorder[T]) ButtonChanges() []radio.Change[T] { return slices.Clone(r.buttonChanges) }

// FormValues returns the values passed to the form on-change callback.
func (r *Recorder[T]) FormValues() []T { return slices.Clone(r.formValues) }

// Touches returns how many times the group was touched.
func (r *Recorder[T]) Touches() int { return r.touches }
