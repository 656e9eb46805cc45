// Package report renders the budget as a fixed-width text document and
// exports it to disk.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/qawamdev/qawam/internal/budget"
	"github.com/qawamdev/qawam/internal/cli"
	"github.com/qawamdev/qawam/internal/model"
)

const pageWidth = 80

// Report is a point-in-time snapshot of the budget, ready to render.
type Report struct {
	Salary      float64
	Rule        model.BudgetRule
	Expenses    []model.Expense
	Metrics     model.DashboardMetrics
	Analysis    model.Analysis
	Lang        model.Language
	Currency    string
	GeneratedAt time.Time
}

// Build computes the derived numbers and assembles a report.
func Build(salary float64, expenses []model.Expense, rule model.BudgetRule, lang model.Language, currency string, now time.Time) Report {
	m := budget.ComputeMetrics(salary, expenses)
	return Report{
		Salary:      salary,
		Rule:        rule,
		Expenses:    expenses,
		Metrics:     m,
		Analysis:    budget.Analyze(m, salary, rule),
		Lang:        lang,
		Currency:    currency,
		GeneratedAt: now,
	}
}

// Layout styles: borders and alignment only, so the exported file carries
// no escape sequences.
var (
	pageStyle = lipgloss.NewStyle().Width(pageWidth)

	bandStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false).
			Width(pageWidth).
			Align(lipgloss.Center)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(pageWidth/4 - 2).
			Align(lipgloss.Center)
)

// Render produces the full text document.
func (r Report) Render() string {
	var b strings.Builder

	b.WriteString(bandStyle.Render(r.title()))
	b.WriteString("\n")
	b.WriteString(pageStyle.Align(lipgloss.Center).Render(r.GeneratedAt.Format("2006-01-02 15:04")))
	b.WriteString("\n\n")

	b.WriteString(r.summaryCards())
	b.WriteString("\n\n")

	b.WriteString(r.sectionTitle(r.tr("توزيع المصاريف", "Category Breakdown")))
	b.WriteString(r.breakdownChart())
	b.WriteString("\n")

	b.WriteString(r.sectionTitle(r.tr("المستهدف مقابل الفعلي", "Target vs Actual")))
	b.WriteString(r.targetChart())
	b.WriteString("\n")

	b.WriteString(r.sectionTitle(r.tr("سجل المصاريف", "Expense Ledger")))
	b.WriteString(r.ledgerTable())
	b.WriteString("\n")

	b.WriteString(bandStyle.Render(r.verdict()))
	b.WriteString("\n")

	return b.String()
}

// Export writes the rendered report atomically: the document lands in a
// temp file first and is renamed into place, so a failed write never
// leaves a partial report. One attempt, errors surface to the caller.
func Export(path string, r Report) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".qawam-report-*")
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(r.Render()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing report: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("placing report: %w", err)
	}
	return nil
}

func (r Report) title() string {
	return r.tr("قوام — التقرير المالي الشهري", "QAWAM — Monthly Budget Report")
}

func (r Report) tr(ar, en string) string {
	if r.Lang == model.Arabic {
		return ar
	}
	return en
}

func (r Report) sectionTitle(s string) string {
	return fmt.Sprintf("%s\n%s\n", s, strings.Repeat("-", pageWidth))
}

func (r Report) summaryCards() string {
	card := func(label string, amount float64) string {
		return cardStyle.Render(fmt.Sprintf("%s\n%s", label, cli.FormatAmount(amount, r.Currency)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		card(r.tr("الراتب الشهري", "Monthly Salary"), r.Salary),
		card(r.tr("إجمالي المصاريف", "Total Expenses"), r.Metrics.TotalExpenses),
		card(r.tr("المتبقي", "Remaining"), r.Metrics.RemainingSalary),
		card(r.tr("الادخار المتاح", "Savings Capacity"), r.Metrics.TotalSavingsCalculated),
	)
}

func (r Report) breakdownChart() string {
	totals := map[model.Category]float64{
		model.Need:   r.Metrics.TotalNeeds,
		model.Want:   r.Metrics.TotalWants,
		model.Saving: r.Metrics.TotalSavingsExpenses,
	}
	max := 0.0
	for _, v := range totals {
		if v > max {
			max = v
		}
	}

	const barWidth = 40
	var b strings.Builder
	for _, c := range model.Categories {
		label := fmt.Sprintf("%-22s", c.Label(r.Lang))
		barLen := 0
		if max > 0 {
			barLen = int(totals[c] / max * barWidth)
		}
		fmt.Fprintf(&b, "  %s %s %s\n", label, strings.Repeat("█", barLen), cli.FormatMoney(totals[c]))
	}
	return b.String()
}

func (r Report) targetChart() string {
	const barWidth = 40
	scale := func(pct float64) int {
		n := int(pct / 100 * barWidth)
		if n < 0 {
			n = 0
		}
		if n > barWidth {
			n = barWidth
		}
		return n
	}

	var b strings.Builder
	for _, card := range r.Analysis.Cards {
		label := fmt.Sprintf("%-22s", card.Category.Label(r.Lang))
		fmt.Fprintf(&b, "  %s %s %s\n", label,
			strings.Repeat("█", scale(card.ActualPct)), cli.FormatPercent(card.ActualPct))
		fmt.Fprintf(&b, "  %22s %s %s %s\n", "",
			strings.Repeat("▒", scale(card.TargetPct)),
			r.tr("المستهدف", "target"), cli.FormatPercent(card.TargetPct))
	}
	return b.String()
}

func (r Report) ledgerTable() string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %-34s %-16s %14s %10s\n",
		r.tr("البند", "Item"), r.tr("التصنيف", "Category"),
		r.tr("المبلغ", "Amount"), r.tr("النسبة", "Share"))
	b.WriteString("  " + strings.Repeat("·", pageWidth-4) + "\n")

	for _, e := range r.Expenses {
		share := 0.0
		if r.Salary > 0 {
			share = e.Amount * 100 / r.Salary
		}
		fmt.Fprintf(&b, "  %-34s %-16s %14s %10s\n",
			clip(e.Name, 34), e.Category.Label(r.Lang),
			cli.FormatMoney(e.Amount), cli.FormatPercent(share))
	}

	b.WriteString("  " + strings.Repeat("·", pageWidth-4) + "\n")
	fmt.Fprintf(&b, "  %-34s %-16s %14s\n",
		r.tr("الإجمالي", "Total"), "", cli.FormatMoney(r.Metrics.TotalExpenses))
	return b.String()
}

func (r Report) verdict() string {
	if r.Analysis.Balanced {
		return r.tr("ميزانيتك متوازنة وفق القاعدة المستهدفة.", "Your budget is balanced against the target rule.")
	}
	return r.tr("ميزانيتك خارج النطاق المستهدف، راجع بنود التحليل أعلاه.", "Your budget is outside the target range; review the analysis above.")
}

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
