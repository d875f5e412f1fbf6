// Package testing provides helpers for testing code built on radio groups.
//
// # Quick Start
//
// Record what a group reports while driving it, then assert on the
// recording and on the group invariants:
//
//	func TestSizePicker(t *testing.T) {
//	    group := radio.NewGroup[string]()
//	    small := radio.NewButton(group, "small")
//	    radio.NewButton(group, "large")
//
//	    rec := radiotest.Record(group)
//	    small.OnInputToggle(true)
//
//	    radiotest.AssertConsistent(t, group)
//	    if got := rec.FormValues(); len(got) != 1 || got[0] != "small" {
//	        t.Errorf("form values = %v", got)
//	    }
//	}
//
// # Snapshot Testing
//
// Capture a group and compare it with a golden file:
//
//	radiotest.CaptureGroup(group).MatchesFile(t, "testdata/picker.snapshot.json")
//
// Update snapshots with:
//
//	RADIO_UPDATE_SNAPSHOTS=1 go test ./...
package testing
