package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/qawamdev/qawam/internal/budget"
	"github.com/qawamdev/qawam/internal/cli"
	"github.com/qawamdev/qawam/internal/model"
	"github.com/qawamdev/qawam/internal/tui/components"
	"github.com/qawamdev/qawam/internal/tui/theme"
)

// wizardState walks the expense catalog one item at a time. Custom
// entries get a free-text name and default to the wants category.
type wizardState struct {
	idx      int
	amountIn textinput.Model
	nameIn   textinput.Model
	custom   bool
	err      bool
}

func newWizardState() wizardState {
	amount := textinput.New()
	amount.Placeholder = "0"
	amount.CharLimit = 12
	amount.Width = 14
	amount.Focus()

	name := textinput.New()
	name.CharLimit = 60
	name.Width = 30

	return wizardState{amountIn: amount, nameIn: name}
}

func (a App) updateWizard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ws := &a.wizardState

	if ws.custom {
		return a.updateWizardCustom(msg)
	}

	switch msg.String() {
	case "d":
		return a.finishWizard()
	case "c":
		ws.custom = true
		ws.err = false
		ws.nameIn.SetValue("")
		ws.amountIn.SetValue("")
		ws.amountIn.Blur()
		ws.nameIn.Focus()
		return a, ws.nameIn.Cursor.BlinkCmd()
	case "s":
		return a.wizardAdvance()
	case "enter":
		raw := strings.TrimSpace(ws.amountIn.Value())
		if raw == "" {
			return a.wizardAdvance()
		}
		amount, err := strconv.ParseFloat(raw, 64)
		item := a.catalog.Items[ws.idx]
		if err != nil || !budget.ValidateEntry(item.Name, amount) {
			ws.err = true
			return a, nil
		}
		a.expenses = budget.Prepend(a.expenses, budget.NewExpense(item.Name, amount, item.Category, ""))
		a.persist()
		return a.wizardAdvance()
	}

	var cmd tea.Cmd
	ws.amountIn, cmd = ws.amountIn.Update(msg)
	return a, cmd
}

// updateWizardCustom handles the free-text entry sub-form. The name field
// owns most keys, so only enter and esc act as commands.
func (a App) updateWizardCustom(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ws := &a.wizardState

	switch msg.String() {
	case "esc":
		ws.custom = false
		ws.err = false
		ws.nameIn.Blur()
		ws.amountIn.Focus()
		return a, ws.amountIn.Cursor.BlinkCmd()
	case "enter", "tab":
		if ws.nameIn.Focused() {
			if strings.TrimSpace(ws.nameIn.Value()) == "" {
				ws.err = true
				return a, nil
			}
			ws.err = false
			ws.nameIn.Blur()
			ws.amountIn.SetValue("")
			ws.amountIn.Focus()
			return a, ws.amountIn.Cursor.BlinkCmd()
		}
		if msg.String() == "enter" {
			name := strings.TrimSpace(ws.nameIn.Value())
			amount, err := strconv.ParseFloat(strings.TrimSpace(ws.amountIn.Value()), 64)
			if err != nil || !budget.ValidateEntry(name, amount) {
				ws.err = true
				return a, nil
			}
			// Unknown names land in wants unless the catalog knows better.
			category, known := a.catalog.Categorize(name)
			if !known {
				category = model.Want
			}
			a.expenses = budget.Prepend(a.expenses, budget.NewExpense(name, amount, category, ""))
			a.persist()
			ws.custom = false
			ws.err = false
			ws.amountIn.SetValue("")
			return a, nil
		}
	}

	var cmd tea.Cmd
	if ws.nameIn.Focused() {
		ws.nameIn, cmd = ws.nameIn.Update(msg)
	} else {
		ws.amountIn, cmd = ws.amountIn.Update(msg)
	}
	return a, cmd
}

func (a App) wizardAdvance() (tea.Model, tea.Cmd) {
	ws := &a.wizardState
	ws.err = false
	ws.amountIn.SetValue("")
	ws.idx++
	if ws.idx >= len(a.catalog.Items) {
		return a.finishWizard()
	}
	return a, nil
}

func (a App) finishWizard() (tea.Model, tea.Cmd) {
	a.step = budget.StepAdvisor
	return a.startAdvisor()
}

func (a App) viewWizard() string {
	t := theme.Active
	ws := a.wizardState
	cw := a.contentWidth()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	var b strings.Builder
	b.WriteString("\n ")
	b.WriteString(components.ProgressBar(float64(ws.idx)/float64(len(a.catalog.Items)), 40))
	b.WriteString("\n\n")

	if ws.custom {
		body := a.tr("اسم البند", "Expense name") + "\n" + ws.nameIn.View() + "\n\n" +
			a.tr("المبلغ الشهري", "Monthly amount") + "\n" + ws.amountIn.View()
		if ws.err {
			body += "\n" + errStyle.Render(a.tr("أكمل الاسم والمبلغ بشكل صحيح", "Enter a valid name and amount"))
		}
		b.WriteString(components.ModalCard(a.tr("بند مخصص", "Custom expense"), body, false))
		return b.String()
	}

	item := a.catalog.Items[ws.idx]
	catStyle := lipgloss.NewStyle().Foreground(components.CategoryColor(item.Category)).Bold(true)

	body := catStyle.Render(item.Category.Label(a.lang)) + "\n\n" +
		item.Name + "\n" +
		labelStyle.Render(item.Hint) + "\n\n" +
		a.tr("المبلغ الشهري: ", "Monthly amount: ") + ws.amountIn.View()
	if ws.err {
		body += "\n" + errStyle.Render(a.tr("أدخل مبلغاً أكبر من صفر", "Enter an amount greater than zero"))
	}

	title := fmt.Sprintf("%s %d/%d", a.tr("البند", "Item"), ws.idx+1, len(a.catalog.Items))
	b.WriteString(components.ContentCard(title, body, cw/2))
	b.WriteString("\n\n ")
	b.WriteString(labelStyle.Render(fmt.Sprintf("%s: %s   %s: %s",
		a.tr("المسجل حتى الآن", "Recorded so far"), cli.FormatMoney(a.metrics().TotalExpenses),
		a.tr("الراتب", "Salary"), cli.FormatAmount(a.salary, a.currency))))

	return b.String()
}
