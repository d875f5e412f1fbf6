package testing

import (
	"fmt"

	"github.com/go-drift/radio/pkg/radio"
)

// TestingT is the subset of *testing.T used by the assertion helpers,
// allowing test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// CheckConsistency verifies the selection invariants of g:
//   - a selected button is a checked member carrying the group value;
//   - every checked member carries the group value;
//   - with no matching member, nothing is selected or checked;
//   - members with distinct values are never checked together.
func CheckConsistency[T comparable](g *radio.Group[T]) error {
	sel := g.Selected()
	if sel != nil {
		if !g.Members().Contains(sel) {
			return fmt.Errorf("selected button %s is not a member", sel.ID())
		}
		if !sel.Checked() {
			return fmt.Errorf("selected button %s is not checked", sel.ID())
		}
		if !g.HasValue() || sel.Value() != g.Value() {
			return fmt.Errorf("selected button %s has value %v, group value is %v", sel.ID(), sel.Value(), g.Value())
		}
	}

	var checked []*radio.Button[T]
	matched := false
	for _, b := range g.Members().Items() {
		if g.HasValue() && b.Value() == g.Value() {
			matched = true
		}
		if b.Checked() {
			checked = append(checked, b)
		}
	}
	for _, b := range checked {
		if !g.HasValue() || b.Value() != g.Value() {
			return fmt.Errorf("checked button %s has value %v, group value is %v", b.ID(), b.Value(), g.Value())
		}
	}
	if !matched && (sel != nil || len(checked) > 0) {
		return fmt.Errorf("no member matches group value %v but %d member(s) are checked", g.Value(), len(checked))
	}
	return nil
}

// AssertConsistent fails t when [CheckConsistency] reports a violation.
func AssertConsistent[T comparable](t TestingT, g *radio.Group[T]) {
	t.Helper()
	if err := CheckConsistency(g); err != nil {
		t.Errorf("inconsistent group: %v", err)
	}
}

// CheckedCount returns how many members of g are checked.
func CheckedCount[T comparable](g *radio.Group[T]) int {
	n := 0
	g.Members().Each(func(b *radio.Button[T]) {
		if b.Checked() {
			n++
		}
	})
	return n
}
