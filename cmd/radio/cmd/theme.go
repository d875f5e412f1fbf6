package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/radio/cmd/radio/internal/scenario"
	radiotest "github.com/go-drift/radio/pkg/testing"
)

// Theme holds the styles used to print replay results.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Card     lipgloss.Style
	Palette  map[string]lipgloss.Style
}

// DefaultTheme returns the styles used by radio run.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Muted:    lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Palette: map[string]lipgloss.Style{
			"primary": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
			"accent":  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
			"warn":    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		},
	}
}

func renderResult(th Theme, res *scenario.Result) string {
	var b strings.Builder
	name := res.Scenario.Name
	if name == "" {
		name = "scenario"
	}
	b.WriteString(th.Title.Render(name) + "\n")
	b.WriteString(renderStep(th, "initial", res.Initial) + "\n")
	for _, sr := range res.Steps {
		b.WriteString(renderStep(th, fmt.Sprintf("step %d  %s", sr.Index, sr.Step), sr) + "\n")
	}
	b.WriteString(th.Subtitle.Render(fmt.Sprintf("%d group event(s), form values %v, %d touch(es)",
		res.GroupEvents, res.FormValues, res.Touches)) + "\n")
	return b.String()
}

func renderStep(th Theme, heading string, sr scenario.StepResult) string {
	snap := sr.Snapshot
	lines := []string{th.Title.Render(heading)}
	for i, m := range snap.Members {
		lines = append(lines, renderMember(th, sr.IDs[i], m, i == snap.Selected))
	}
	if len(snap.Members) == 0 {
		lines = append(lines, th.Muted.Render("(no members)"))
	}
	lines = append(lines, th.Subtitle.Render(describeGroup(snap, sr)))
	return th.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderMember(th Theme, id string, m radiotest.MemberSnapshot, selected bool) string {
	mark := "( )"
	if m.Checked {
		mark = "(•)"
	}
	label := m.Value
	if m.LabelPosition == "before" {
		label = fmt.Sprintf("%s %s", label, mark)
	} else {
		label = fmt.Sprintf("%s %s", mark, label)
	}

	style, ok := th.Palette[m.Color]
	switch {
	case m.Disabled:
		style = th.Muted
	case !m.Checked || !ok:
		style = lipgloss.NewStyle()
	}

	var tags []string
	if selected {
		tags = append(tags, "selected")
	}
	if m.Disabled {
		tags = append(tags, "disabled")
	}
	if m.Required {
		tags = append(tags, "required")
	}
	line := style.Render(label) + "  " + th.Muted.Render(id)
	if len(tags) > 0 {
		line += " " + th.Muted.Render("["+strings.Join(tags, ", ")+"]")
	}
	return line
}

func describeGroup(snap *radiotest.Snapshot, sr scenario.StepResult) string {
	value := "unset"
	if snap.HasValue {
		value = fmt.Sprintf("%q", snap.Value)
	}
	selected := "none"
	if snap.Selected >= 0 {
		selected = sr.IDs[snap.Selected]
	}
	return fmt.Sprintf("value=%s selected=%s events=%d/%d", value, selected, sr.GroupEvents, sr.ButtonEvents)
}
