package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/qawamdev/qawam/internal/budget"
	"github.com/qawamdev/qawam/internal/cli"
	"github.com/qawamdev/qawam/internal/model"
	"github.com/qawamdev/qawam/internal/report"
	"github.com/qawamdev/qawam/internal/tui/components"
	"github.com/qawamdev/qawam/internal/tui/theme"
)

type dashMode int

const (
	dashModeList dashMode = iota
	dashModeForm
	dashModeOverage
	dashModeRule
	dashModeConfirmReset
)

type dashState struct {
	mode   dashMode
	cursor int

	form expenseForm

	// Pending force-save after an overage warning
	pendingWarn *budget.AddWarning
	pending     model.Expense
	editing     *model.Expense

	ruleIn  textinput.Model
	ruleErr bool

	notice string
}

// expenseForm is the add/edit sub-form. Category cycles with arrow keys.
type expenseForm struct {
	nameIn   textinput.Model
	amountIn textinput.Model
	noteIn   textinput.Model
	category model.Category
	focus    int // 0 name, 1 amount, 2 category, 3 note
	err      bool
}

func newDashState() dashState {
	rule := textinput.New()
	rule.Placeholder = "50/30/20"
	rule.CharLimit = 11
	rule.Width = 12
	return dashState{ruleIn: rule}
}

func newExpenseForm(e *model.Expense) expenseForm {
	name := textinput.New()
	name.CharLimit = 60
	name.Width = 30
	amount := textinput.New()
	amount.Placeholder = "0"
	amount.CharLimit = 12
	amount.Width = 14
	note := textinput.New()
	note.CharLimit = 120
	note.Width = 40

	f := expenseForm{nameIn: name, amountIn: amount, noteIn: note, category: model.Need}
	if e != nil {
		f.nameIn.SetValue(e.Name)
		f.amountIn.SetValue(strconv.FormatFloat(e.Amount, 'f', -1, 64))
		f.noteIn.SetValue(e.Note)
		f.category = e.Category
	}
	f.nameIn.Focus()
	return f
}

func (a App) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ds := &a.dashState

	switch ds.mode {
	case dashModeForm:
		return a.updateDashForm(msg)
	case dashModeOverage:
		return a.updateDashOverage(msg)
	case dashModeRule:
		return a.updateDashRule(msg)
	case dashModeConfirmReset:
		return a.updateDashReset(msg)
	}

	ds.notice = ""
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if ds.cursor < len(a.expenses)-1 {
			ds.cursor++
		}
		return a, nil
	case "k", "up":
		if ds.cursor > 0 {
			ds.cursor--
		}
		return a, nil
	case "a":
		ds.editing = nil
		ds.form = newExpenseForm(nil)
		ds.mode = dashModeForm
		return a, ds.form.nameIn.Cursor.BlinkCmd()
	case "e":
		if ds.cursor < len(a.expenses) {
			e := a.expenses[ds.cursor]
			ds.editing = &e
			ds.form = newExpenseForm(&e)
			ds.mode = dashModeForm
			return a, ds.form.nameIn.Cursor.BlinkCmd()
		}
		return a, nil
	case "d":
		if ds.cursor < len(a.expenses) {
			a.expenses = budget.Remove(a.expenses, a.expenses[ds.cursor].ID)
			if ds.cursor >= len(a.expenses) && ds.cursor > 0 {
				ds.cursor--
			}
			a.persist()
		}
		return a, nil
	case "u":
		ds.ruleIn.SetValue(fmt.Sprintf("%.0f/%.0f/%.0f", a.rule.Needs, a.rule.Wants, a.rule.Savings))
		ds.ruleIn.Focus()
		ds.ruleErr = false
		ds.mode = dashModeRule
		return a, ds.ruleIn.Cursor.BlinkCmd()
	case "x":
		path := "qawam-report.txt"
		r := report.Build(a.salary, a.expenses, a.rule, a.lang, a.currency, time.Now())
		if err := report.Export(path, r); err != nil {
			ds.notice = a.tr("فشل التصدير: ", "Export failed: ") + err.Error()
		} else {
			ds.notice = a.tr("تم حفظ التقرير في ", "Report saved to ") + path
		}
		return a, nil
	case "R":
		ds.mode = dashModeConfirmReset
		return a, nil
	}
	return a, nil
}

func (a App) updateDashForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	ds := &a.dashState
	f := &ds.form

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			ds.mode = dashModeList
			return a, nil
		case "tab", "shift+tab", "down", "up":
			dir := 1
			if key.String() == "shift+tab" || key.String() == "up" {
				dir = -1
			}
			f.focus = (f.focus + dir + 4) % 4
			f.nameIn.Blur()
			f.amountIn.Blur()
			f.noteIn.Blur()
			switch f.focus {
			case 0:
				f.nameIn.Focus()
				return a, f.nameIn.Cursor.BlinkCmd()
			case 1:
				f.amountIn.Focus()
				return a, f.amountIn.Cursor.BlinkCmd()
			case 3:
				f.noteIn.Focus()
				return a, f.noteIn.Cursor.BlinkCmd()
			}
			return a, nil
		case "left", "right":
			if f.focus == 2 {
				f.category = cycleCategory(f.category, key.String() == "right")
				return a, nil
			}
		case "enter":
			return a.submitExpenseForm()
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case 0:
		f.nameIn, cmd = f.nameIn.Update(msg)
	case 1:
		f.amountIn, cmd = f.amountIn.Update(msg)
	case 3:
		f.noteIn, cmd = f.noteIn.Update(msg)
	}
	return a, cmd
}

func (a App) submitExpenseForm() (tea.Model, tea.Cmd) {
	ds := &a.dashState
	f := &ds.form

	name := strings.TrimSpace(f.nameIn.Value())
	amount, err := strconv.ParseFloat(strings.TrimSpace(f.amountIn.Value()), 64)
	if err != nil || !budget.ValidateEntry(name, amount) {
		f.err = true
		return a, nil
	}
	f.err = false

	entry := model.Expense{Name: name, Amount: amount, Category: f.category, Note: strings.TrimSpace(f.noteIn.Value())}
	if ds.editing != nil {
		entry.ID = ds.editing.ID
	}

	// Saving past salary is allowed, but warned about first.
	if warn := budget.CheckAddition(a.salary, a.expenses, ds.editing, amount, a.rule); warn != nil {
		ds.pendingWarn = warn
		ds.pending = entry
		ds.mode = dashModeOverage
		return a, nil
	}

	return a.commitExpense(entry)
}

func (a App) commitExpense(entry model.Expense) (tea.Model, tea.Cmd) {
	ds := &a.dashState
	if ds.editing != nil {
		a.expenses = budget.Replace(a.expenses, entry)
	} else {
		a.expenses = budget.Prepend(a.expenses, budget.NewExpense(entry.Name, entry.Amount, entry.Category, entry.Note))
		ds.cursor = 0
	}
	a.persist()
	ds.editing = nil
	ds.pendingWarn = nil
	ds.mode = dashModeList
	return a, nil
}

func (a App) updateDashOverage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ds := &a.dashState
	switch msg.String() {
	case "enter":
		return a.commitExpense(ds.pending)
	case "esc":
		ds.pendingWarn = nil
		ds.mode = dashModeForm
		return a, nil
	}
	return a, nil
}

func (a App) updateDashRule(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ds := &a.dashState
	switch msg.String() {
	case "esc":
		ds.mode = dashModeList
		return a, nil
	case "enter":
		rule, ok := parseRule(ds.ruleIn.Value())
		if !ok {
			ds.ruleErr = true
			return a, nil
		}
		a.rule = rule
		a.persist()
		ds.mode = dashModeList
		return a, nil
	}

	var cmd tea.Cmd
	ds.ruleIn, cmd = ds.ruleIn.Update(msg)
	return a, cmd
}

func (a App) updateDashReset(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ds := &a.dashState
	switch msg.String() {
	case "y", "Y":
		if err := a.st.Reset(); err != nil {
			a.saveErr = err
			ds.mode = dashModeList
			return a, nil
		}
		a.salary = 0
		a.expenses = nil
		a.rule = model.DefaultRule()
		a.salaryState = newSalaryState(0)
		a.wizardState = newWizardState()
		a.dashState = newDashState()
		a.step = budget.StepSalary
		return a, a.salaryState.input.Cursor.BlinkCmd()
	case "n", "N", "esc":
		ds.mode = dashModeList
		return a, nil
	}
	return a, nil
}

// parseRule reads "needs/wants/savings" percentages. The shares are not
// required to sum to 100.
func parseRule(raw string) (model.BudgetRule, bool) {
	parts := strings.Split(strings.TrimSpace(raw), "/")
	if len(parts) != 3 {
		return model.BudgetRule{}, false
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || v < 0 || v > 100 {
			return model.BudgetRule{}, false
		}
		vals[i] = v
	}
	return model.BudgetRule{Needs: vals[0], Wants: vals[1], Savings: vals[2]}, true
}

func cycleCategory(c model.Category, forward bool) model.Category {
	for i, cat := range model.Categories {
		if cat == c {
			if forward {
				return model.Categories[(i+1)%len(model.Categories)]
			}
			return model.Categories[(i+len(model.Categories)-1)%len(model.Categories)]
		}
	}
	return model.Need
}

func (a App) viewDashboard() string {
	t := theme.Active
	ds := a.dashState
	cw := a.contentWidth()
	m := a.metrics()
	analysis := budget.Analyze(m, a.salary, a.rule)

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
		{Label: a.tr("الادخار المتاح", "Savings capacity"), Value: cli.FormatMoney(m.TotalSavingsCalculated), ValueColor: t.Green},
	}, cw))
	b.WriteString("\n")

	// Analysis verdict
	verdict := a.tr("⚠ خارج النطاق المستهدف", "⚠ outside the target range")
	verdictStyle := lipgloss.NewStyle().Foreground(t.Orange)
	if analysis.Balanced {
		verdict = a.tr("✓ ميزانية متوازنة", "✓ budget balanced")
		verdictStyle = lipgloss.NewStyle().Foreground(t.Green)
	}
	ruleStr := fmt.Sprintf("%.0f/%.0f/%.0f", a.rule.Needs, a.rule.Wants, a.rule.Savings)
	b.WriteString(" " + verdictStyle.Render(verdict) +
		lipgloss.NewStyle().Foreground(t.TextDim).Render(
			"  ·  "+a.tr("القاعدة ", "rule ")+ruleStr))
	b.WriteString("\n\n")

	halfW := cw / 2
	left := components.ContentCard(
		a.tr("توزيع المصاريف", "Category breakdown"),
		components.CategoryBars(m, a.lang, components.CardInnerWidth(halfW)), halfW)
	right := components.ContentCard(
		a.tr("المستهدف مقابل الفعلي", "Target vs actual"),
		components.TargetVsActual(analysis, a.lang, components.CardInnerWidth(cw-halfW)), cw-halfW)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")

	b.WriteString(components.ContentCard(
		a.tr("سجل المصاريف", "Expense ledger"),
		a.renderLedger(components.CardInnerWidth(cw), ds.cursor), cw))

	if ds.notice != "" {
		b.WriteString("\n " + lipgloss.NewStyle().Foreground(t.Accent).Render(ds.notice))
	}
	if a.saveErr != nil {
		b.WriteString("\n " + lipgloss.NewStyle().Foreground(t.Red).Render(
			a.tr("تعذر الحفظ: ", "Save failed: ")+a.saveErr.Error()))
	}

	switch ds.mode {
	case dashModeForm:
		b.WriteString("\n\n")
		b.WriteString(a.viewExpenseForm())
	case dashModeOverage:
		b.WriteString("\n\n")
		b.WriteString(a.viewOverageModal())
	case dashModeRule:
		body := a.tr("النسب: احتياجات/رغبات/ادخار", "Shares: needs/wants/savings") + "\n\n" + ds.ruleIn.View()
		if ds.ruleErr {
			body += "\n" + lipgloss.NewStyle().Foreground(t.Red).Render(
				a.tr("الصيغة: ثلاثة أرقام مثل 50/30/20", "Format: three numbers like 50/30/20"))
		}
		b.WriteString("\n\n")
		b.WriteString(components.ModalCard(a.tr("تعديل القاعدة", "Edit rule"), body, false))
	case dashModeConfirmReset:
		body := a.tr("سيتم مسح الراتب والمصاريف والقاعدة نهائياً.\n\n[y] تأكيد المسح  [n] إلغاء",
			"This wipes your salary, expenses and rule.\n\n[y] confirm reset  [n] cancel")
		b.WriteString("\n\n")
		b.WriteString(components.ModalCard(a.tr("⚠ إعادة التعيين", "⚠ Reset everything"), body, true))
	}

	return b.String()
}

func (a App) viewExpenseForm() string {
	t := theme.Active
	f := a.dashState.form

	focusMark := func(i int) string {
		if f.focus == i {
			return lipgloss.NewStyle().Foreground(t.Accent).Render("❯ ")
		}
		return "  "
	}

	catStyle := lipgloss.NewStyle().Foreground(components.CategoryColor(f.category)).Bold(true)
	catLine := catStyle.Render(f.category.Label(a.lang))
	if f.focus == 2 {
		catLine = "◂ " + catLine + " ▸"
	}

	title := a.tr("إضافة مصروف", "Add expense")
	if a.dashState.editing != nil {
		title = a.tr("تعديل مصروف", "Edit expense")
	}

	body := focusMark(0) + a.tr("الاسم: ", "Name:   ") + f.nameIn.View() + "\n" +
		focusMark(1) + a.tr("المبلغ: ", "Amount: ") + f.amountIn.View() + "\n" +
		focusMark(2) + a.tr("التصنيف: ", "Type:   ") + catLine + "\n" +
		focusMark(3) + a.tr("ملاحظة: ", "Note:   ") + f.noteIn.View()
	if f.err {
		body += "\n" + lipgloss.NewStyle().Foreground(t.Red).Render(
			a.tr("أكمل الاسم والمبلغ بشكل صحيح", "Enter a valid name and amount"))
	}
	body += "\n\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(
		a.tr("[Tab] تنقل  [Enter] حفظ  [Esc] إلغاء", "[Tab] move  [Enter] save  [Esc] cancel"))

	return components.ModalCard(title, body, false)
}

func (a App) viewOverageModal() string {
	t := theme.Active
	warn := a.dashState.pendingWarn
	if warn == nil {
		return ""
	}

	body := fmt.Sprintf("%s %s\n\n%s\n\n%s",
		a.tr("هذا المصروف يتجاوز راتبك بمقدار", "This expense puts you over salary by"),
		cli.FormatMoney(warn.Deficit),
		warn.Advice(a.lang, a.rule),
		lipgloss.NewStyle().Foreground(t.TextDim).Render(
			a.tr("[Enter] حفظ على أي حال  [Esc] تراجع", "[Enter] save anyway  [Esc] back")))

	return components.ModalCard(a.tr("⚠ تجاوز الميزانية", "⚠ Budget exceeded"), body, true)
}
