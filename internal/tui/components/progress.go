package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/qawamdev/qawam/internal/tui/theme"
)

// ProgressBar renders a plain block progress bar with percentage.
func ProgressBar(pct float64, width int) string {
	t := theme.Active
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	filledStyle := lipgloss.NewStyle().Foreground(t.Accent)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	pctStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled)) +
		" " + pctStyle.Render(fmt.Sprintf("%.0f%%", pct*100))
}

// ColorForShare returns green/yellow/orange/red by how much of a category
// ceiling is already spent.
func ColorForShare(ratio float64) string {
	t := theme.Active
	switch {
	case ratio >= 1.0:
		return string(t.Red)
	case ratio >= 0.85:
		return string(t.Orange)
	case ratio >= 0.6:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// CeilingBar renders a labeled bar showing spend against a category
// ceiling, with the amount pair after it.
func CeilingBar(label string, spent, ceiling float64, labelW, barWidth int) string {
	t := theme.Active

	ratio := 0.0
	if ceiling > 0 {
		ratio = spent / ceiling
	}
	display := ratio
	if display > 1 {
		display = 1
	}
	if display < 0 {
		display = 0
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForShare(ratio)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForShare(ratio))).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " + bar.ViewAs(display) +
		" " + pctStyle.Render(fmt.Sprintf("%3.0f%%", ratio*100))
}
