// Package scenario loads and replays scripted radio group sessions.
//
// A scenario declares a group, its initial buttons and a list of steps, each
// one a single operation a renderer, a user or a forms layer would perform.
// Replaying a scenario checks the selection invariants after every step.
package scenario

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/radio/cmd/radio/internal/config"
	"github.com/go-drift/radio/pkg/errors"
	"github.com/go-drift/radio/pkg/radio"
)

// Operation names accepted in a step.
const (
	OpAdd           = "add"
	OpRemove        = "remove"
	OpSetValue      = "set-value"
	OpWriteValue    = "write-value"
	OpClear         = "clear"
	OpButtonValue   = "button-value"
	OpCheck         = "check"
	OpUncheck       = "uncheck"
	OpSelect        = "select"
	OpFocus         = "focus"
	OpDisable       = "disable"
	OpRequired      = "required"
	OpLabelPosition = "label-position"
	OpName          = "name"
	OpColor         = "color"
)

// buttonOps must name an existing button; scopedOps may name one, otherwise
// they apply to the group.
var (
	buttonOps = map[string]bool{OpRemove: true, OpButtonValue: true, OpCheck: true, OpUncheck: true, OpFocus: true}
	scopedOps = map[string]bool{OpSelect: true, OpDisable: true, OpRequired: true, OpLabelPosition: true, OpName: true, OpColor: true}
	groupOps  = map[string]bool{OpSetValue: true, OpWriteValue: true, OpClear: true}
)

// Scenario is a scripted session against one group of string-valued buttons.
type Scenario struct {
	Version string       `yaml:"version,omitempty"`
	Name    string       `yaml:"name"`
	Group   GroupSpec    `yaml:"group"`
	Buttons []ButtonSpec `yaml:"buttons"`
	Steps   []Step       `yaml:"steps"`
	Expect  *Expect      `yaml:"expect,omitempty"`

	// Path is the file the scenario was loaded from, if any.
	Path string `yaml:"-"`
}

// GroupSpec is the initial group configuration.
type GroupSpec struct {
	Name          string  `yaml:"name,omitempty"`
	Color         string  `yaml:"color,omitempty"`
	LabelPosition string  `yaml:"labelPosition,omitempty"`
	Required      *bool   `yaml:"required,omitempty"`
	Disabled      *bool   `yaml:"disabled,omitempty"`
	Value         *string `yaml:"value,omitempty"`
}

// ButtonSpec declares one button present before the first step.
type ButtonSpec struct {
	ID            string `yaml:"id"`
	Value         string `yaml:"value"`
	Name          string `yaml:"name,omitempty"`
	Color         string `yaml:"color,omitempty"`
	LabelPosition string `yaml:"labelPosition,omitempty"`
	Disabled      bool   `yaml:"disabled,omitempty"`
	Required      bool   `yaml:"required,omitempty"`
}

// Step is one operation. Button names the target button by id; for scoped
// operations an empty Button targets the group. Value carries the new value,
// color, name or label position; On carries the disabled and required flags.
type Step struct {
	Op     string `yaml:"op"`
	Button string `yaml:"button,omitempty"`
	Value  string `yaml:"value,omitempty"`
	On     bool   `yaml:"on,omitempty"`
}

func (s Step) String() string {
	var b strings.Builder
	b.WriteString(s.Op)
	if s.Button != "" {
		b.WriteString(" " + s.Button)
	}
	switch s.Op {
	case OpDisable, OpRequired:
		fmt.Fprintf(&b, " %t", s.On)
	case OpRemove, OpCheck, OpUncheck, OpFocus, OpSelect, OpClear:
	default:
		fmt.Fprintf(&b, " %q", s.Value)
	}
	return b.String()
}

// Expect describes the final state a replay must reach.
type Expect struct {
	Value    *string  `yaml:"value,omitempty"`
	HasValue *bool    `yaml:"hasValue,omitempty"`
	Selected *string  `yaml:"selected,omitempty"`
	Checked  []string `yaml:"checked,omitempty"`
	Events   *int     `yaml:"events,omitempty"`
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithPath("scenario.Load", errors.KindScenario, path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.WithPath("scenario.Load", errors.KindScenario, path, err)
	}
	s.Path = path
	return s, nil
}

// Parse decodes and validates a scenario document. Unknown fields are
// rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks versions, palette and label position names, and that every
// step names a known operation and, where needed, a declared button.
func Validate(s *Scenario) error {
	if s.Version != "" {
		if err := config.CheckVersion("version", s.Version); err != nil {
			return err
		}
	}
	if err := checkPalette("group.color", s.Group.Color); err != nil {
		return err
	}
	if _, err := config.ParseLabelPosition("group.labelPosition", s.Group.LabelPosition); err != nil {
		return err
	}

	known := make(map[string]bool, len(s.Buttons))
	for i, b := range s.Buttons {
		field := fmt.Sprintf("buttons[%d]", i)
		if b.ID == "" {
			return &errors.ValidationError{Field: field + ".id", Got: `""`, Reason: "id is required"}
		}
		if known[b.ID] {
			return &errors.ValidationError{Field: field + ".id", Got: b.ID, Reason: "duplicate button id"}
		}
		known[b.ID] = true
		if err := checkPalette(field+".color", b.Color); err != nil {
			return err
		}
		if _, err := config.ParseLabelPosition(field+".labelPosition", b.LabelPosition); err != nil {
			return err
		}
	}

	for i, st := range s.Steps {
		field := fmt.Sprintf("steps[%d]", i)
		switch {
		case st.Op == OpAdd:
			if st.Button == "" {
				return &errors.ValidationError{Field: field + ".button", Got: `""`, Reason: "add needs a button id"}
			}
			if known[st.Button] {
				return &errors.ValidationError{Field: field + ".button", Got: st.Button, Reason: "duplicate button id"}
			}
			known[st.Button] = true
			continue
		case buttonOps[st.Op]:
			if st.Button == "" {
				return &errors.ValidationError{Field: field + ".button", Got: `""`, Reason: st.Op + " needs a button id"}
			}
		case scopedOps[st.Op], groupOps[st.Op]:
		default:
			return &errors.ValidationError{Field: field + ".op", Got: st.Op, Reason: "unknown operation"}
		}
		if groupOps[st.Op] && st.Button != "" {
			return &errors.ValidationError{Field: field + ".button", Got: st.Button, Reason: st.Op + " applies to the group"}
		}
		if st.Button != "" && !known[st.Button] {
			return &errors.ValidationError{Field: field + ".button", Got: st.Button, Reason: "unknown button"}
		}
		switch st.Op {
		case OpColor:
			if err := checkPalette(field+".value", st.Value); err != nil {
				return err
			}
		case OpLabelPosition:
			if _, err := config.ParseLabelPosition(field+".value", st.Value); err != nil {
				return err
			}
		}
	}

	if s.Expect != nil {
		if sel := s.Expect.Selected; sel != nil && *sel != "" && !known[*sel] {
			return &errors.ValidationError{Field: "expect.selected", Got: *sel, Reason: "unknown button"}
		}
		for _, id := range s.Expect.Checked {
			if !known[id] {
				return &errors.ValidationError{Field: "expect.checked", Got: id, Reason: "unknown button"}
			}
		}
	}
	return nil
}

func checkPalette(field, s string) error {
	if s == "" || radio.Palette(s).Valid() {
		return nil
	}
	return &errors.ValidationError{Field: field, Got: s, Reason: "want primary, accent or warn"}
}
