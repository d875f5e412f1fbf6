package testing

import (
	"slices"
	"testing"

	"github.com/go-drift/radio/pkg/radio"
)

func TestRecorder_UserSelection(t *testing.T) {
	g := radio.NewGroup[string]()
	small := radio.NewButton(g, "small")
	rec := Record(g)
	large := radio.NewButton(g, "large")

	large.OnInputToggle(true)
	small.OnFocus()

	if got := rec.FormValues(); !slices.Equal(got, []string{"large"}) {
		t.Errorf("FormValues() = %v, want [large]", got)
	}
	if got := rec.GroupChanges(); len(got) != 1 || got[0].Source != large || got[0].Value != "large" {
		t.Errorf("GroupChanges() = %+v, want one change from large", got)
	}
	if got := rec.ButtonChanges(); len(got) != 1 || got[0].Source != large {
		t.Errorf("ButtonChanges() = %+v, want one change from the button added after Record", got)
	}
	if rec.Touches() != 1 {
		t.Errorf("Touches() = %d, want 1", rec.Touches())
	}
}

func TestRecorder_ResetAndStop(t *testing.T) {
	g := radio.NewGroup[int]()
	a := radio.NewButton(g, 1)
	b := radio.NewButton(g, 2)
	rec := Record(g)

	a.SetChecked(true)
	rec.Reset()
	if len(rec.FormValues()) != 0 || len(rec.ButtonChanges()) != 0 || len(rec.GroupChanges()) != 0 {
		t.Fatal("Reset should clear the recording")
	}

	rec.Stop()
	b.SetChecked(true)
	if len(rec.ButtonChanges()) != 0 || len(rec.GroupChanges()) != 0 || len(rec.FormValues()) != 0 {
		t.Error("a stopped recorder should not record events")
	}
}

func TestRecorder_WatchStandalone(t *testing.T) {
	rec := Record(radio.NewGroup[string]())
	solo := radio.NewButton[string](nil, "solo")
	rec.Watch(solo)
	rec.Watch(solo)

	solo.SetChecked(true)
	if got := rec.ButtonChanges(); len(got) != 1 {
		t.Errorf("ButtonChanges() = %d events, want 1", len(got))
	}
}
