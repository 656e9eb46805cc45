package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/qawamdev/qawam/internal/budget"
	"github.com/qawamdev/qawam/internal/cli"
	"github.com/qawamdev/qawam/internal/tui/components"
	"github.com/qawamdev/qawam/internal/tui/theme"
)

type salaryState struct {
	input textinput.Model
	err   bool
}

func newSalaryState(salary float64) salaryState {
	ti := textinput.New()
	ti.Placeholder = "8000"
	ti.CharLimit = 12
	ti.Width = 20
	if salary > 0 {
		ti.SetValue(strconv.FormatFloat(salary, 'f', -1, 64))
	}
	ti.Focus()
	return salaryState{input: ti}
}

func (a App) updateSalary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		if a.salaryState.input.Value() == "" {
			return a, tea.Quit
		}
	case "enter":
		raw := strings.TrimSpace(a.salaryState.input.Value())
		salary, err := strconv.ParseFloat(raw, 64)
		if err != nil || salary <= 0 {
			a.salaryState.err = true
			return a, nil
		}
		a.salaryState.err = false
		a.salary = salary
		a.persist()
		a.step = budget.StepWizard
		a.wizardState = newWizardState()
		return a, a.wizardState.amountIn.Cursor.BlinkCmd()
	}

	var cmd tea.Cmd
	a.salaryState.input, cmd = a.salaryState.input.Update(msg)
	return a, cmd
}

func (a App) viewSalary() string {
	t := theme.Active
	cw := a.contentWidth()

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	var b strings.Builder
	b.WriteString("\n ")
	b.WriteString(titleStyle.Render(a.tr("◈ قوام", "◈ qawam")))
	b.WriteString(labelStyle.Render(a.tr("  ·  خطط راتبك بقاعدة 50/30/20", "  ·  plan your salary with the 50/30/20 rule")))
	b.WriteString("\n\n")

	prompt := a.tr("كم راتبك الشهري؟", "What is your monthly salary?")
	body := prompt + "\n\n" + a.salaryState.input.View()
	if a.salaryState.err {
		body += "\n" + errStyle.Render(a.tr("أدخل مبلغاً صحيحاً أكبر من صفر", "Enter an amount greater than zero"))
	}
	b.WriteString(components.ContentCard("", body, cw/2))
	b.WriteString("\n\n")

	guidance := a.tr(
		"القاعدة الذهبية: خصص 50% من دخلك للاحتياجات الأساسية،\n30% للرغبات، و20% للادخار والاستثمار.\nسنساعدك على مراجعة مصاريفك بنداً بنداً.",
		"The golden rule: put 50% of your income toward needs,\n30% toward wants, and 20% toward savings and investing.\nWe will walk your expenses item by item.")
	b.WriteString(components.ContentCard(
		a.tr("كيف تعمل؟", "How it works"),
		labelStyle.Render(guidance), cw/2))

	if a.salary > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(" " + a.tr("الراتب المسجل: ", "Current salary on file: ") +
			cli.FormatAmount(a.salary, a.currency)))
	}

	return b.String()
}
