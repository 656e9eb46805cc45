package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/qawamdev/qawam/internal/advisor"
	"github.com/qawamdev/qawam/internal/budget"
	"github.com/qawamdev/qawam/internal/config"
	"github.com/qawamdev/qawam/internal/model"
	"github.com/qawamdev/qawam/internal/tui/components"
	"github.com/qawamdev/qawam/internal/tui/theme"
)

type advisorState struct {
	running bool
	rec     *advisor.Recommendation
	applied bool
}

func (a App) startAdvisor() (tea.Model, tea.Cmd) {
	a.advisorState = advisorState{running: true}
	return a, tea.Batch(
		a.spinner.Tick,
		analyzeCmd(a.cfg, a.lang, a.salary, a.expenses),
	)
}

// analyzeCmd runs the rule analysis off the UI loop. The remote client is
// used when a key is configured; any failure falls back locally, so the
// message always carries a recommendation.
func analyzeCmd(cfg config.Config, lang model.Language, salary float64, expenses []model.Expense) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		remote := advisor.NewClient(config.AdvisorAPIKey(cfg), cfg.Advisor.BaseURL, cfg.Advisor.Model, lang)
		var adv advisor.Advisor
		if remote != nil {
			adv = remote
		}
		return AdvisorMsg{Rec: advisor.Recommend(ctx, adv, lang, salary, expenses)}
	}
}

func (a App) handleAdvisorMsg(msg AdvisorMsg) (tea.Model, tea.Cmd) {
	a.advisorState.running = false
	a.advisorState.rec = msg.Rec
	return a, nil
}

func (a App) updateAdvisor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	as := &a.advisorState
	if as.running {
		return a, nil
	}

	switch msg.String() {
	case "a":
		if as.rec != nil && !as.applied {
			a.rule = as.rec.Rule
			as.applied = true
			a.persist()
		}
		return a, nil
	case "k":
		as.applied = false
		return a, nil
	case "enter":
		a.step = budget.StepReview
		a.reviewState = reviewState{}
		return a, nil
	case "b":
		a.step = budget.StepWizard
		return a, a.wizardState.amountIn.Cursor.BlinkCmd()
	}
	return a, nil
}

func (a App) viewAdvisor() string {
	t := theme.Active
	as := a.advisorState
	cw := a.contentWidth()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	b.WriteString("\n")

	if as.running {
		b.WriteString(" ")
		b.WriteString(a.spinner.View())
		b.WriteString(valueStyle.Render(a.tr(" جاري تحليل مصروفاتك...", " Analyzing your expenses...")))
		b.WriteString("\n ")
		b.WriteString(labelStyle.Render(a.tr("يقوم المستشار باختيار أفضل تقسيم لميزانيتك",
			"The advisor is selecting the best budget split")))
		return b.String()
	}

	if as.rec == nil {
		return b.String()
	}

	source := a.tr("تحليل محلي", "local analysis")
	if as.rec.Remote {
		source = a.tr("المستشار الذكي", "AI advisor")
	}

	ruleStr := fmt.Sprintf("%.0f / %.0f / %.0f", as.rec.Rule.Needs, as.rec.Rule.Wants, as.rec.Rule.Savings)
	body := valueStyle.Render(as.rec.Message) + "\n\n" +
		labelStyle.Render(a.tr("القاعدة المقترحة: ", "Suggested rule: ")) +
		lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render(ruleStr) +
		labelStyle.Render("  ("+source+")")

	if as.applied {
		body += "\n" + lipgloss.NewStyle().Foreground(t.Green).Render(
			a.tr("✓ تم تطبيق القاعدة", "✓ Rule applied"))
	} else {
		current := fmt.Sprintf("%.0f / %.0f / %.0f", a.rule.Needs, a.rule.Wants, a.rule.Savings)
		body += "\n" + labelStyle.Render(a.tr("القاعدة الحالية: ", "Current rule: ")+current)
	}

	b.WriteString(components.ContentCard(a.tr("اكتمل التحليل", "Analysis complete"), body, cw*2/3))
	return b.String()
}
