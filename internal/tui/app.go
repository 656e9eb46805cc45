// Package tui provides the interactive Bubble Tea budget wizard and
// dashboard for qawam.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/qawamdev/qawam/internal/advisor"
	"github.com/qawamdev/qawam/internal/budget"
	"github.com/qawamdev/qawam/internal/config"
	"github.com/qawamdev/qawam/internal/model"
	"github.com/qawamdev/qawam/internal/store"
	"github.com/qawamdev/qawam/internal/tui/components"
	"github.com/qawamdev/qawam/internal/tui/theme"
)

// AdvisorMsg is sent when the rule analysis finishes.
type AdvisorMsg struct {
	Rec *advisor.Recommendation
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5
)

// App is the root Bubble Tea model. It owns the budget state and walks
// the user through the wizard steps before landing on the dashboard.
type App struct {
	cfg config.Config
	st  *store.Store

	lang     model.Language
	currency string
	catalog  budget.Catalog

	// Budget state
	salary   float64
	expenses []model.Expense
	rule     model.BudgetRule
	visitors int64

	step budget.Step

	// UI state
	width   int
	height  int
	saveErr error

	// Per-step state
	salaryState  salaryState
	wizardState  wizardState
	advisorState advisorState
	reviewState  reviewState
	dashState    dashState

	spinner spinner.Model

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

// NewApp builds the app from persisted state. A salary on file skips the
// wizard and opens the dashboard directly.
func NewApp(cfg config.Config, st *store.Store, state *store.State) App {
	theme.SetActive(cfg.Appearance.Theme)
	lang := cfg.Language()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	step := budget.StepSalary
	if state.Salary > 0 {
		step = budget.StepDashboard
	}

	a := App{
		cfg:       cfg,
		st:        st,
		lang:      lang,
		currency:  cfg.General.Currency,
		catalog:   budget.DefaultCatalog(lang),
		salary:    state.Salary,
		expenses:  state.Expenses,
		rule:      state.Rule,
		visitors:  state.Visitors,
		step:      step,
		spinner:   sp,
		needSetup: !config.Exists(),
	}
	a.salaryState = newSalaryState(a.salary)
	a.wizardState = newWizardState()
	a.dashState = newDashState()
	if a.needSetup {
		a.setupVals = defaultSetupValues(cfg)
		a.setupForm = newSetupForm(&a.setupVals, cfg)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{bumpVisitorsCmd(a.st)}

	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	} else if a.step == budget.StepSalary {
		cmds = append(cmds, a.salaryState.input.Cursor.BlinkCmd())
	}

	return tea.Batch(cmds...)
}

// VisitorsMsg carries the bumped launch counter.
type VisitorsMsg struct {
	Count int64
}

func bumpVisitorsCmd(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		n, err := st.BumpVisitors()
		if err != nil {
			return VisitorsMsg{}
		}
		return VisitorsMsg{Count: n}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case VisitorsMsg:
		if msg.Count > 0 {
			a.visitors = msg.Count
		}
		return a, nil

	case AdvisorMsg:
		return a.handleAdvisorMsg(msg)

	case spinner.TickMsg:
		if a.advisorState.running {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		switch a.step {
		case budget.StepSalary:
			return a.updateSalary(msg)
		case budget.StepWizard:
			return a.updateWizard(msg)
		case budget.StepAdvisor:
			return a.updateAdvisor(msg)
		case budget.StepReview:
			return a.updateReview(msg)
		default:
			return a.updateDashboard(msg)
		}
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	return a.forwardToStep(msg)
}

// forwardToStep routes non-key messages to whichever text input is live.
func (a App) forwardToStep(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.step {
	case budget.StepSalary:
		a.salaryState.input, cmd = a.salaryState.input.Update(msg)
	case budget.StepWizard:
		a.wizardState.amountIn, cmd = a.wizardState.amountIn.Update(msg)
	default:
		switch a.dashState.mode {
		case dashModeForm:
			return a.updateDashForm(msg)
		case dashModeRule:
			a.dashState.ruleIn, cmd = a.dashState.ruleIn.Update(msg)
		}
	}
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	var content string
	switch a.step {
	case budget.StepSalary:
		content = a.viewSalary()
	case budget.StepWizard:
		content = a.viewWizard()
	case budget.StepAdvisor:
		content = a.viewAdvisor()
	case budget.StepReview:
		content = a.viewReview()
	default:
		content = a.viewDashboard()
	}

	header := components.RenderStepBar(a.step, a.lang, a.width)
	statusBar := components.RenderStatusBar(a.width, a.hints(), a.visitors)

	contentH := a.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}
	content = padHeight(truncateHeight(content, contentH), contentH)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) viewTooNarrow() string {
	return "\n " + a.tr(
		"النافذة ضيقة جداً، وسّع الطرفية.",
		"Terminal too narrow; qawam needs at least 70 columns.")
}

// hints returns the per-step key hints for the status bar.
func (a App) hints() string {
	switch a.step {
	case budget.StepSalary:
		return a.tr("[Enter] متابعة  [ctrl+c] خروج", "[Enter] continue  [ctrl+c] quit")
	case budget.StepWizard:
		return a.tr("[Enter] إضافة/تخطي  [c] بند مخصص  [d] إنهاء", "[Enter] add/skip  [c] custom  [d] done")
	case budget.StepAdvisor:
		return a.tr("[a] تطبيق القاعدة  [k] الإبقاء  [Enter] متابعة", "[a] apply rule  [k] keep  [Enter] continue")
	case budget.StepReview:
		return a.tr("[Enter] متابعة  [b] رجوع", "[Enter] continue  [b] back")
	default:
		return a.tr("[a]إضافة [e]تعديل [d]حذف [u]القاعدة [x]تصدير [R]مسح [q]خروج",
			"[a]dd [e]dit [d]elete [u]rule [x]export [R]eset [q]uit")
	}
}

// tr picks the localized variant.
func (a App) tr(ar, en string) string {
	if a.lang == model.Arabic {
		return ar
	}
	return en
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// persist writes the full budget state. Failures surface on the status
// line but never interrupt the session.
func (a *App) persist() {
	a.saveErr = nil
	if err := a.st.SaveSalary(a.salary); err != nil {
		a.saveErr = err
	}
	if err := a.st.SaveRule(a.rule); err != nil {
		a.saveErr = err
	}
	if err := a.st.SaveExpenses(a.expenses); err != nil {
		a.saveErr = err
	}
}

func (a App) metrics() model.DashboardMetrics {
	return budget.ComputeMetrics(a.salary, a.expenses)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
