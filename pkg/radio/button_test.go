package radio_test

import (
	"strings"
	"testing"

	"github.com/go-drift/radio/pkg/radio"
	radiotest "github.com/go-drift/radio/pkg/testing"
)

func TestButton_StandaloneToggles(t *testing.T) {
	b := radio.NewButton[string](nil, "solo")
	var changes []radio.Change[string]
	b.OnChange(func(c radio.Change[string]) { changes = append(changes, c) })

	b.SetChecked(true)
	b.SetChecked(true)
	b.SetChecked(false)
	b.OnFocus()

	if len(changes) != 2 {
		t.Fatalf("changes = %d, want 2", len(changes))
	}
	if changes[0].Source != b || changes[0].Value != "solo" {
		t.Errorf("change = %+v, want source b and value solo", changes[0])
	}
	if b.Group() != nil {
		t.Error("standalone button should have no group")
	}
}

func TestButton_SetValuePullsFromGroup(t *testing.T) {
	g, b := newGroup(1, 2)
	rec := radiotest.Record(g)
	g.SetValue(3)

	b[0].SetValue(3)
	if !b[0].Checked() || g.Selected() != b[0] {
		t.Error("a member whose value now matches the group should be checked and selected")
	}

	b[0].SetValue(4)
	if b[0].Checked() || g.Selected() != nil {
		t.Error("a member whose value no longer matches should be unchecked and deselected")
	}
	if g.Value() != 3 {
		t.Errorf("group Value() = %d, want 3: members never push their value", g.Value())
	}
	if len(rec.FormValues()) != 0 || len(rec.GroupChanges()) != 0 || len(rec.ButtonChanges()) != 0 {
		t.Error("value pulls must not notify")
	}
	radiotest.AssertConsistent(t, g)
}

func TestButton_SetValueSameIsNoop(t *testing.T) {
	g, b := newGroup(1)
	g.SetValue(1)
	gen := b[0].Generation()

	b[0].SetValue(1)

	if b[0].Generation() != gen {
		t.Error("setting the same value should not mark the button")
	}
}

func TestButton_OnInputToggle(t *testing.T) {
	g, b := newGroup(1, 2)

	b[1].OnInputToggle(true)

	if g.Value() != 2 || !b[1].Checked() {
		t.Error("OnInputToggle(true) should select the button")
	}
}

func TestButton_PropertyFallback(t *testing.T) {
	g := radio.NewGroup[int]()
	plain := radio.NewButton(g, 1)
	provided := radio.NewButton(g, 2, radio.WithDefaults(radio.Defaults{Color: radio.PalettePrimary}))
	local := radio.NewButton(g, 3,
		radio.WithColor(radio.PaletteWarn),
		radio.WithName("own"),
		radio.WithLabelPosition(radio.LabelBefore))

	if plain.Color() != radio.PaletteAccent || provided.Color() != radio.PalettePrimary || local.Color() != radio.PaletteWarn {
		t.Errorf("colors = %q %q %q", plain.Color(), provided.Color(), local.Color())
	}
	if plain.Name() != "" || plain.LabelPosition() != radio.LabelAfter {
		t.Errorf("plain: name %q, label position %q", plain.Name(), plain.LabelPosition())
	}

	g.SetColor(radio.PaletteWarn)
	g.SetName("size")
	g.SetLabelPosition(radio.LabelBefore)

	if plain.Color() != radio.PaletteWarn || provided.Color() != radio.PaletteWarn {
		t.Error("the group color should take precedence over provider defaults")
	}
	if plain.Name() != "size" || plain.LabelPosition() != radio.LabelBefore {
		t.Error("group name and label position should be read live")
	}
	if local.Name() != "own" {
		t.Errorf("local.Name() = %q, want own", local.Name())
	}

	local.SetName("")
	if local.Name() != "size" {
		t.Error("clearing the local name should defer to the group")
	}
}

func TestButton_StandaloneFallback(t *testing.T) {
	b := radio.NewButton[int](nil, 1, radio.WithDefaults(radio.DefaultOptions()))
	if b.Color() != radio.PaletteAccent || b.LabelPosition() != radio.LabelAfter || b.Name() != "" {
		t.Errorf("standalone fallbacks: %q %q %q", b.Color(), b.LabelPosition(), b.Name())
	}
}

func TestButton_IDs(t *testing.T) {
	a := radio.NewButton[int](nil, 1)
	b := radio.NewButton[int](nil, 2)
	if a.ID() == b.ID() || !strings.HasPrefix(a.ID(), "radio-") {
		t.Errorf("generated ids %q and %q should be unique radio-N ids", a.ID(), b.ID())
	}
	if a.InputID() != a.ID()+"-input" {
		t.Errorf("InputID() = %q", a.InputID())
	}

	c := radio.NewButton[int](nil, 3, radio.WithID("custom"))
	if c.ID() != "custom" || c.InputID() != "custom-input" {
		t.Errorf("custom ids: %q %q", c.ID(), c.InputID())
	}

	c.SetID("")
	if !strings.HasPrefix(c.InputID(), "radio-") {
		t.Errorf("InputID() with empty id = %q, want the generated id", c.InputID())
	}
}

func TestButton_PlainProperties(t *testing.T) {
	b := radio.NewButton[int](nil, 1, radio.Required())
	b.SetDisableRipple(true)
	b.SetAriaLabel("Small")
	b.SetAriaLabelledBy("lbl")
	b.SetAriaDescribedBy("desc")

	if !b.Required() || !b.DisableRipple() || b.AriaLabel() != "Small" || b.AriaLabelledBy() != "lbl" || b.AriaDescribedBy() != "desc" {
		t.Error("plain properties should round trip")
	}
}

func TestButton_DetachedButtonDoesNotReachGroup(t *testing.T) {
	g, b := newGroup(1, 2)
	b[0].Detach()

	b[0].SetChecked(true)

	if g.HasValue() || g.Selected() != nil {
		t.Error("a detached button should not change its group")
	}
	b[0].Detach()
}
