package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/qawamdev/qawam/internal/budget"
	"github.com/qawamdev/qawam/internal/model"
	"github.com/qawamdev/qawam/internal/tui/theme"
)

// stepNames holds the breadcrumb labels per language, in wizard order.
var stepNames = map[model.Language][]string{
	model.Arabic:  {"الراتب", "المصاريف", "المستشار", "المراجعة", "اللوحة"},
	model.English: {"Salary", "Expenses", "Advisor", "Review", "Dashboard"},
}

// RenderStepBar renders the wizard breadcrumb: completed steps dimmed,
// the current step highlighted, future steps muted.
func RenderStepBar(current budget.Step, lang model.Language, width int) string {
	t := theme.Active

	doneStyle := lipgloss.NewStyle().Foreground(t.Green)
	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	futureStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	sepStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	names := stepNames[lang]
	if names == nil {
		names = stepNames[model.English]
	}

	var parts []string
	for i, name := range names {
		step := budget.StepSalary + budget.Step(i)
		switch {
		case step < current:
			parts = append(parts, doneStyle.Render("✓ "+name))
		case step == current:
			parts = append(parts, activeStyle.Render("● "+name))
		default:
			parts = append(parts, futureStyle.Render("○ "+name))
		}
	}

	bar := " " + strings.Join(parts, sepStyle.Render(" › "))
	return lipgloss.NewStyle().Width(width).Render(bar)
}
