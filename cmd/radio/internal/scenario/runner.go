package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/go-drift/radio/pkg/errors"
	"github.com/go-drift/radio/pkg/radio"
	radiotest "github.com/go-drift/radio/pkg/testing"
)

// Runner replays scenarios.
type Runner struct {
	// Defaults are the provider defaults handed to every button.
	Defaults radio.Defaults

	// LabelPosition is used when the scenario group does not set one.
	LabelPosition radio.LabelPosition

	// Logger receives one debug record per step. Nil discards.
	Logger *slog.Logger
}

// Result is the outcome of a replay.
type Result struct {
	Scenario *Scenario
	Steps    []StepResult

	// Initial is the state before the first step.
	Initial StepResult

	GroupEvents int
	FormValues  []string
	Touches     int
}

// StepResult is the state of the group after one step.
type StepResult struct {
	Index int
	Step  Step

	Snapshot *radiotest.Snapshot
	IDs      []string

	// GroupEvents counts the group change events fired by this step.
	GroupEvents int
	// ButtonEvents counts the button change events fired by this step.
	ButtonEvents int
}

// Final returns the state after the last step.
func (r *Result) Final() StepResult {
	if len(r.Steps) == 0 {
		return r.Initial
	}
	return r.Steps[len(r.Steps)-1]
}

type execution struct {
	runner  *Runner
	group   *radio.Group[string]
	buttons map[string]*radio.Button[string]
	rec     *radiotest.Recorder[string]
	groupN  int
	buttonN int
}

// Run replays s against a fresh group. It stops at the first step that
// leaves the group inconsistent, returning the results so far, and checks
// the expectations of s once every step has run.
func (r *Runner) Run(ctx context.Context, s *Scenario) (*Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	x := &execution{
		runner:  r,
		group:   radio.NewGroup[string](),
		buttons: make(map[string]*radio.Button[string]),
	}
	x.configureGroup(s.Group)
	x.rec = radiotest.Record(x.group)
	defer x.rec.Stop()

	x.group.Members().Batch(func() {
		for _, spec := range s.Buttons {
			x.add(spec)
		}
	})

	res := &Result{Scenario: s}
	res.Initial = x.capture(0, Step{})
	if err := radiotest.CheckConsistency(x.group); err != nil {
		return res, errors.New("scenario.Run", errors.KindScenario, fmt.Errorf("initial state: %w", err))
	}

	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := x.apply(st); err != nil {
			return res, errors.New("scenario.Run", errors.KindScenario, fmt.Errorf("step %d (%s): %w", i+1, st, err))
		}
		sr := x.capture(i+1, st)
		res.Steps = append(res.Steps, sr)
		logger.Debug("scenario step",
			"index", sr.Index,
			"op", st.Op,
			"value", x.group.Value(),
			"hasValue", x.group.HasValue(),
			"groupEvents", sr.GroupEvents,
		)
		if err := radiotest.CheckConsistency(x.group); err != nil {
			return res, errors.New("scenario.Run", errors.KindScenario, fmt.Errorf("step %d (%s): %w", i+1, st, err))
		}
	}

	res.GroupEvents = len(x.rec.GroupChanges())
	res.FormValues = x.rec.FormValues()
	res.Touches = x.rec.Touches()

	if s.Expect != nil {
		if err := s.Expect.verify(x.group, res.GroupEvents); err != nil {
			return res, errors.New("scenario.Run", errors.KindScenario, err)
		}
	}
	return res, nil
}

func (x *execution) configureGroup(spec GroupSpec) {
	g := x.group
	g.SetName(spec.Name)
	g.SetColor(radio.Palette(spec.Color))
	pos := radio.LabelPosition(spec.LabelPosition)
	if pos == "" {
		pos = x.runner.LabelPosition
	}
	g.SetLabelPosition(pos)
	if spec.Required != nil {
		g.SetRequired(*spec.Required)
	}
	if spec.Disabled != nil {
		g.SetDisabled(*spec.Disabled)
	}
	if spec.Value != nil {
		g.SetValue(*spec.Value)
	}
}

func (x *execution) add(spec ButtonSpec) {
	opts := []radio.Option{
		radio.WithID(spec.ID),
		radio.WithName(spec.Name),
		radio.WithColor(radio.Palette(spec.Color)),
		radio.WithLabelPosition(radio.LabelPosition(spec.LabelPosition)),
		radio.WithDefaults(x.runner.Defaults),
	}
	if spec.Disabled {
		opts = append(opts, radio.Disabled())
	}
	if spec.Required {
		opts = append(opts, radio.Required())
	}
	x.buttons[spec.ID] = radio.NewButton(x.group, spec.Value, opts...)
}

func (x *execution) apply(st Step) error {
	g := x.group
	var b *radio.Button[string]
	if st.Button != "" && st.Op != OpAdd {
		b = x.buttons[st.Button]
		if b == nil {
			return fmt.Errorf("unknown button %q", st.Button)
		}
	}

	switch st.Op {
	case OpAdd:
		if _, ok := x.buttons[st.Button]; ok {
			return fmt.Errorf("button %q already exists", st.Button)
		}
		x.add(ButtonSpec{ID: st.Button, Value: st.Value})
	case OpRemove:
		b.Detach()
	case OpSetValue:
		g.SetValue(st.Value)
	case OpWriteValue:
		g.WriteValue(st.Value)
	case OpClear:
		g.ClearValue()
	case OpButtonValue:
		b.SetValue(st.Value)
	case OpCheck:
		b.SetChecked(true)
	case OpUncheck:
		b.SetChecked(false)
	case OpSelect:
		g.SetSelected(b)
	case OpFocus:
		b.OnFocus()
	case OpDisable:
		if b != nil {
			b.SetDisabled(st.On)
		} else {
			g.SetDisabled(st.On)
		}
	case OpRequired:
		if b != nil {
			b.SetRequired(st.On)
		} else {
			g.SetRequired(st.On)
		}
	case OpLabelPosition:
		if b != nil {
			b.SetLabelPosition(radio.LabelPosition(st.Value))
		} else {
			g.SetLabelPosition(radio.LabelPosition(st.Value))
		}
	case OpName:
		if b != nil {
			b.SetName(st.Value)
		} else {
			g.SetName(st.Value)
		}
	case OpColor:
		if b != nil {
			b.SetColor(radio.Palette(st.Value))
		} else {
			g.SetColor(radio.Palette(st.Value))
		}
	default:
		return fmt.Errorf("unknown operation %q", st.Op)
	}
	return nil
}

func (x *execution) capture(index int, st Step) StepResult {
	groupN := len(x.rec.GroupChanges())
	buttonN := len(x.rec.ButtonChanges())
	sr := StepResult{
		Index:        index,
		Step:         st,
		Snapshot:     radiotest.CaptureGroup(x.group),
		GroupEvents:  groupN - x.groupN,
		ButtonEvents: buttonN - x.buttonN,
	}
	x.groupN, x.buttonN = groupN, buttonN
	for _, b := range x.group.Members().Items() {
		sr.IDs = append(sr.IDs, b.ID())
	}
	return sr
}

func (e *Expect) verify(g *radio.Group[string], events int) error {
	if e.HasValue != nil && g.HasValue() != *e.HasValue {
		return fmt.Errorf("expected hasValue %t, got %t", *e.HasValue, g.HasValue())
	}
	if e.Value != nil && (!g.HasValue() || g.Value() != *e.Value) {
		return fmt.Errorf("expected value %q, got %s", *e.Value, describeValue(g))
	}
	if e.Selected != nil {
		got := ""
		if sel := g.Selected(); sel != nil {
			got = sel.ID()
		}
		if got != *e.Selected {
			return fmt.Errorf("expected selected %q, got %q", *e.Selected, got)
		}
	}
	if e.Checked != nil {
		var got []string
		for _, b := range g.Members().Items() {
			if b.Checked() {
				got = append(got, b.ID())
			}
		}
		if !slices.Equal(got, e.Checked) {
			return fmt.Errorf("expected checked %v, got %v", e.Checked, got)
		}
	}
	if e.Events != nil && events != *e.Events {
		return fmt.Errorf("expected %d group change event(s), got %d", *e.Events, events)
	}
	return nil
}

func describeValue(g *radio.Group[string]) string {
	if !g.HasValue() {
		return "no value"
	}
	return fmt.Sprintf("%q", g.Value())
}
