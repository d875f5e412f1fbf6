package radio_test

import (
	"slices"
	"testing"

	"github.com/go-drift/radio/pkg/radio"
	radiotest "github.com/go-drift/radio/pkg/testing"
)

func TestMembership_RegisterUnregister(t *testing.T) {
	g, b := newGroup(1, 2)
	m := g.Members()

	if m.Len() != 2 || !m.Contains(b[0]) {
		t.Fatalf("Len() = %d, want 2 members", m.Len())
	}
	if m.Register(b[0]) {
		t.Error("registering a member twice should report false")
	}
	if m.Register(radio.NewButton(radio.NewGroup[int](), 3)) {
		t.Error("registering a button of another group should report false")
	}
	if m.Register(nil) {
		t.Error("registering nil should report false")
	}

	if !m.Unregister(b[0]) || m.Contains(b[0]) {
		t.Error("Unregister should remove the member")
	}
	if m.Unregister(b[0]) {
		t.Error("unregistering a non-member should report false")
	}
	if !m.Register(b[0]) {
		t.Error("a detached button can register again")
	}
	if got := m.Items(); !slices.Equal(got, []*radio.Button[int]{b[1], b[0]}) {
		t.Error("re-registered member should be appended")
	}
}

func TestMembership_RemovingSelectedKeepsValue(t *testing.T) {
	g, b := newGroup(1, 2)
	g.SetValue(2)

	b[1].Detach()

	if g.Selected() != nil {
		t.Error("removing the selected member should clear the selection")
	}
	if g.Value() != 2 {
		t.Errorf("Value() = %d, want 2 kept", g.Value())
	}
	radiotest.AssertConsistent(t, g)

	g.Members().Register(b[1])
	if g.Selected() != b[1] || !b[1].Checked() {
		t.Error("re-registering the matching member should select it again")
	}
}

func TestMembership_ReRegisteredStaleCheckIsCleared(t *testing.T) {
	g, b := newGroup(1, 2)
	g.SetValue(1)
	b[0].Detach()
	g.SetValue(2)

	g.Members().Register(b[0])

	if b[0].Checked() {
		t.Error("a member registering with a stale checked flag should be unchecked")
	}
	radiotest.AssertConsistent(t, g)
}

func TestMembership_BatchNotifiesOnce(t *testing.T) {
	g := radio.NewGroup[int]()
	var changes []radio.MembershipChange[int]
	g.Members().AddListener(func(c radio.MembershipChange[int]) { changes = append(changes, c) })

	var a, b *radio.Button[int]
	g.Members().Batch(func() {
		a = radio.NewButton(g, 1)
		g.Members().Batch(func() {
			b = radio.NewButton(g, 2)
		})
		if g.Initialized() {
			t.Error("the group should not be initialized before the batch ends")
		}
	})

	if len(changes) != 1 {
		t.Fatalf("changes = %d, want 1", len(changes))
	}
	if !slices.Equal(changes[0].Added, []*radio.Button[int]{a, b}) {
		t.Errorf("Added = %v, want both buttons", changes[0].Added)
	}
	if !g.Initialized() || !g.Members().Resolved() {
		t.Error("the group should be initialized after the batch")
	}
}

func TestMembership_AddRemoveInBatch(t *testing.T) {
	g := radio.NewGroup[int]()
	g.SetValue(1)

	var a *radio.Button[int]
	g.Members().Batch(func() {
		a = radio.NewButton(g, 1)
		a.Detach()
	})

	if g.Selected() != nil || a.Checked() {
		t.Error("a button added and removed in one batch should not be selected")
	}
}

func TestMembership_Reorder(t *testing.T) {
	g, b := newGroup(1, 2, 3)
	calls := 0
	g.Members().AddListener(func(c radio.MembershipChange[int]) {
		if c.Reordered {
			calls++
		}
	})

	g.Members().Reorder([]*radio.Button[int]{b[2], nil, b[2], radio.NewButton[int](nil, 9)})
	if got := g.Members().Items(); !slices.Equal(got, []*radio.Button[int]{b[2], b[0], b[1]}) {
		t.Errorf("Items() after reorder = %v", got)
	}

	g.Members().Reorder([]*radio.Button[int]{b[2]})
	if calls != 1 {
		t.Errorf("reorder notifications = %d, want 1 (second reorder is a no-op)", calls)
	}
}

func TestMembership_ReorderChangesTieBreak(t *testing.T) {
	g, b := newGroup(2, 2)
	g.Members().Reorder([]*radio.Button[int]{b[1], b[0]})

	g.SetValue(2)

	if g.Selected() != b[0] {
		t.Error("the last matching member in membership order should win")
	}
}

func TestMembership_EachToleratesMutation(t *testing.T) {
	g, b := newGroup(1, 2, 3)
	visited := 0
	g.Members().Each(func(btn *radio.Button[int]) {
		visited++
		b[2].Detach()
	})
	if visited != 3 {
		t.Errorf("visited = %d, want 3", visited)
	}
	if g.Members().Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Members().Len())
	}
}
