package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/qawamdev/qawam/internal/cli"
	"github.com/qawamdev/qawam/internal/model"
	"github.com/qawamdev/qawam/internal/tui/theme"
)

// CategoryColor maps an expense category onto the active theme.
func CategoryColor(c model.Category) lipgloss.Color {
	t := theme.Active
	switch c {
	case model.Need:
		return t.Red
	case model.Want:
		return t.Orange
	default:
		return t.Green
	}
}

// StatusColor maps an analysis status onto the active theme.
func StatusColor(s model.AnalysisStatus) lipgloss.Color {
	t := theme.Active
	switch s {
	case model.StatusOver:
		return t.Red
	case model.StatusUnder:
		return t.Orange
	default:
		return t.Green
	}
}

// ShareColor bands a per-expense salary share: small green, middling
// amber, heavy red.
func ShareColor(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct > 15:
		return t.Red
	case pct > 5:
		return t.Orange
	default:
		return t.Green
	}
}

// CategoryBars renders the spending breakdown as one horizontal bar per
// category, scaled against the largest total.
func CategoryBars(m model.DashboardMetrics, lang model.Language, width int) string {
	t := theme.Active

	totals := map[model.Category]float64{
		model.Need:   m.TotalNeeds,
		model.Want:   m.TotalWants,
		model.Saving: m.TotalSavingsExpenses,
	}
	peak := 0.0
	for _, v := range totals {
		if v > peak {
			peak = v
		}
	}

	labelW := 20
	barW := width - labelW - 14
	if barW < 10 {
		barW = 10
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for _, c := range model.Categories {
		v := totals[c]
		filled := 0
		if peak > 0 {
			filled = int(v / peak * float64(barW))
		}
		bar := lipgloss.NewStyle().Foreground(CategoryColor(c)).Render(strings.Repeat("█", filled)) +
			lipgloss.NewStyle().Foreground(t.TextDim).Render(strings.Repeat("░", barW-filled))

		fmt.Fprintf(&b, "%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-*s", labelW, truncLabel(c.Label(lang), labelW))),
			bar,
			valueStyle.Render(cli.FormatMoney(v)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// TargetVsActual renders each analysis card as an actual bar over a dim
// target bar, both scaled to 100% of salary.
func TargetVsActual(a model.Analysis, lang model.Language, width int) string {
	t := theme.Active

	labelW := 20
	barW := width - labelW - 18
	if barW < 10 {
		barW = 10
	}
	scale := func(pct float64) int {
		n := int(pct / 100 * float64(barW))
		if n < 0 {
			n = 0
		}
		if n > barW {
			n = barW
		}
		return n
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for _, card := range a.Cards {
		statusStyle := lipgloss.NewStyle().Foreground(StatusColor(card.Status))

		fmt.Fprintf(&b, "%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-*s", labelW, truncLabel(card.Category.Label(lang), labelW))),
			statusStyle.Render(strings.Repeat("█", scale(card.ActualPct))),
			statusStyle.Render(cli.FormatPercent(card.ActualPct)))
		fmt.Fprintf(&b, "%s %s %s\n",
			strings.Repeat(" ", labelW),
			dimStyle.Render(strings.Repeat("▒", scale(card.TargetPct))),
			dimStyle.Render(cli.FormatPercent(card.TargetPct)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func truncLabel(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
