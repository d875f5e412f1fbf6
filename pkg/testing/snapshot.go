package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-drift/radio/pkg/radio"
)

// Snapshot captures the observable state of a group and its members.
// Values are rendered with fmt so any comparable type can be captured.
// Members are identified by position because generated ids depend on test
// order.
type Snapshot struct {
	Value         string           `json:"value,omitempty"`
	HasValue      bool             `json:"hasValue"`
	Selected      int              `json:"selected"`
	Initialized   bool             `json:"initialized"`
	Required      bool             `json:"required,omitempty"`
	Disabled      bool             `json:"disabled,omitempty"`
	LabelPosition string           `json:"labelPosition"`
	Name          string           `json:"name,omitempty"`
	Color         string           `json:"color,omitempty"`
	Members       []MemberSnapshot `json:"members,omitempty"`
}

// MemberSnapshot is the captured state of one member.
type MemberSnapshot struct {
	Value         string `json:"value"`
	Checked       bool   `json:"checked"`
	Disabled      bool   `json:"disabled,omitempty"`
	Required      bool   `json:"required,omitempty"`
	LabelPosition string `json:"labelPosition"`
	Name          string `json:"name,omitempty"`
	Color         string `json:"color"`
}

// CaptureGroup captures g. Selected is the index of the selected member, or
// -1.
func CaptureGroup[T comparable](g *radio.Group[T]) *Snapshot {
	members := g.Members().Items()
	snap := &Snapshot{
		HasValue:      g.HasValue(),
		Selected:      slices.Index(members, g.Selected()),
		Initialized:   g.Initialized(),
		Required:      g.Required(),
		Disabled:      g.Disabled(),
		LabelPosition: string(g.LabelPosition()),
		Name:          g.Name(),
		Color:         string(g.Color()),
	}
	if g.HasValue() {
		snap.Value = fmt.Sprint(g.Value())
	}
	for _, b := range members {
		snap.Members = append(snap.Members, MemberSnapshot{
			Value:         fmt.Sprint(b.Value()),
			Checked:       b.Checked(),
			Disabled:      b.Disabled(),
			Required:      b.Required(),
			LabelPosition: string(b.LabelPosition()),
			Name:          b.Name(),
			Color:         string(b.Color()),
		})
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When RADIO_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("RADIO_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := LoadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: RADIO_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: RADIO_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := s.Marshal()
	b, _ := other.Marshal()
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

// Marshal encodes the snapshot as indented JSON.
func (s *Snapshot) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadSnapshot reads a snapshot written by [Snapshot.UpdateFile].
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
