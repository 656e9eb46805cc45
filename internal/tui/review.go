package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/qawamdev/qawam/internal/budget"
	"github.com/qawamdev/qawam/internal/cli"
	"github.com/qawamdev/qawam/internal/tui/components"
	"github.com/qawamdev/qawam/internal/tui/theme"
)

// reviewState holds the gate outcome for the current advance attempt.
// A block pins the user here until the ledger changes; a warning may be
// acknowledged once.
type reviewState struct {
	gate *budget.Advance
}

func (a App) updateReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rs := &a.reviewState

	// A blocking overage cannot be dismissed, only resolved.
	if rs.gate != nil && rs.gate.Block != nil {
		if msg.String() == "b" {
			rs.gate = nil
			a.step = budget.StepWizard
			return a, a.wizardState.amountIn.Cursor.BlinkCmd()
		}
		return a, nil
	}

	// A ceiling warning is advisory: continue or go back.
	if rs.gate != nil && rs.gate.Warning != nil {
		switch msg.String() {
		case "enter":
			rs.gate = nil
			a.step = budget.StepDashboard
			return a, nil
		case "esc", "b":
			rs.gate = nil
			a.step = budget.StepWizard
			return a, a.wizardState.amountIn.Cursor.BlinkCmd()
		}
		return a, nil
	}

	switch msg.String() {
	case "enter":
		gate := budget.EvaluateAdvance(a.salary, a.expenses, a.rule)
		if gate.Block != nil || gate.Warning != nil {
			rs.gate = &gate
			return a, nil
		}
		a.step = budget.StepDashboard
		return a, nil
	case "b":
		a.step = budget.StepAdvisor
		return a, nil
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a App) viewReview() string {
	t := theme.Active
	cw := a.contentWidth()
	m := a.metrics()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString("\n")

	remainingColor := t.Green
	if m.RemainingSalary < 0 {
		remainingColor = t.Red
	}
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: a.tr("الراتب", "Salary"), Value: cli.FormatAmount(a.salary, a.currency)},
		{Label: a.tr("إجمالي المصاريف", "Total expenses"), Value: cli.FormatMoney(m.TotalExpenses)},
		{Label: a.tr("المتبقي", "Remaining"), Value: cli.FormatMoney(m.RemainingSalary), ValueColor: remainingColor},
	}, cw))
	b.WriteString("\n\n")

	b.WriteString(components.ContentCard(
		a.tr("سجل المصاريف", "Expense ledger"),
		a.renderLedger(components.CardInnerWidth(cw), -1), cw))

	if a.reviewState.gate != nil {
		if block := a.reviewState.gate.Block; block != nil {
			body := fmt.Sprintf("%s\n%s: %s  ·  %s: %s\n%s: %s\n\n%s",
				a.tr("مجموع مصاريفك يتجاوز راتبك، لا يمكن المتابعة.",
					"Your expenses exceed your salary; you cannot continue."),
				a.tr("المصاريف", "Expenses"), cli.FormatMoney(block.Current),
				a.tr("الراتب", "Salary"), cli.FormatMoney(block.Limit),
				a.tr("العجز", "Shortfall"), cli.FormatMoney(block.Overage()),
				labelStyle.Render(a.tr("[b] عودة لتعديل المصاريف", "[b] go back and adjust")))
			b.WriteString("\n\n")
			b.WriteString(components.ModalCard(a.tr("⚠ الميزانية مكشوفة", "⚠ Over budget"), body, true))
		} else if warn := a.reviewState.gate.Warning; warn != nil {
			var body strings.Builder
			fmt.Fprintf(&body, "%s %s %s (%s %s)\n\n",
				a.tr("تجاوزت حد", "You are over the"),
				warn.Category.Label(a.lang),
				a.tr("المستهدف", "target"),
				a.tr("الحد", "ceiling"), cli.FormatMoney(warn.Ceiling))
			spent := budget.CategoryTotal(a.expenses, warn.Category)
			body.WriteString(components.CeilingBar(warn.Category.Label(a.lang), spent, warn.Ceiling, 14, 24) + "\n\n")
			body.WriteString(a.tr("مقترحات للتخفيض:", "Suggested trims:") + "\n")
			for _, s := range warn.Suggestions {
				fmt.Fprintf(&body, "  · %s  −%s\n", truncStr(s.Name, 28), cli.FormatMoney(s.ReduceBy))
			}
			body.WriteString("\n" + labelStyle.Render(
				a.tr("[Enter] متابعة على أي حال  [Esc] رجوع", "[Enter] continue anyway  [Esc] go back")))
			b.WriteString("\n\n")
			b.WriteString(components.ModalCard(a.tr("تنبيه", "Heads up"), body.String(), false))
		}
	}

	return b.String()
}

// renderLedger renders the expense table rows. A non-negative cursor
// highlights that row.
func (a App) renderLedger(width, cursor int) string {
	t := theme.Active

	if len(a.expenses) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render(
			a.tr("لا توجد مصاريف بعد", "No expenses yet"))
	}

	nameW := width - 40
	if nameW < 12 {
		nameW = 12
	}

	var b strings.Builder
	for i, e := range a.expenses {
		share := 0.0
		if a.salary > 0 {
			share = e.Amount * 100 / a.salary
		}

		catStyle := lipgloss.NewStyle().Foreground(components.CategoryColor(e.Category))
		shareStyle := lipgloss.NewStyle().Foreground(components.ShareColor(share))
		rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
		marker := "  "
		if i == cursor {
			rowStyle = rowStyle.Background(t.SurfaceHover)
			marker = "❯ "
		}

		row := fmt.Sprintf("%s%-*s %s %10s %7s",
			marker,
			nameW, truncStr(e.Name, nameW),
			catStyle.Render(fmt.Sprintf("%-14s", truncStr(e.Category.Label(a.lang), 14))),
			cli.FormatMoney(e.Amount),
			shareStyle.Render(cli.FormatPercent(share)))
		b.WriteString(rowStyle.Render(row))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
