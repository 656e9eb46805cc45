package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/qawamdev/qawam/internal/budget"
	"github.com/qawamdev/qawam/internal/config"
	"github.com/qawamdev/qawam/internal/tui/theme"
)

// setupValues backs the first-run form.
type setupValues struct {
	Language string
	Theme    string
	APIKey   string
}

func defaultSetupValues(cfg config.Config) setupValues {
	return setupValues{
		Language: cfg.General.Language,
		Theme:    cfg.Appearance.Theme,
		APIKey:   cfg.Advisor.APIKey,
	}
}

func newSetupForm(vals *setupValues, cfg config.Config) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(th.Name, th.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("اللغة / Language").
				Options(
					huh.NewOption("العربية", "ar"),
					huh.NewOption("English", "en"),
				).
				Value(&vals.Language),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOpts...).
				Value(&vals.Theme),
			huh.NewInput().
				Title("Gemini API key (optional)").
				Description("Powers the AI advisor. Leave blank to use local analysis.").
				EchoMode(huh.EchoModePassword).
				Value(&vals.APIKey),
		),
	)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		var blink tea.Cmd
		if a.step == budget.StepSalary {
			blink = a.salaryState.input.Cursor.BlinkCmd()
		}
		return a, blink
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// saveSetupConfig writes the chosen settings and applies them in place.
func (a *App) saveSetupConfig() {
	cfg := a.cfg
	cfg.General.Language = a.setupVals.Language
	cfg.Appearance.Theme = a.setupVals.Theme
	if key := strings.TrimSpace(a.setupVals.APIKey); key != "" {
		cfg.Advisor.APIKey = key
	}

	if err := config.Save(cfg); err != nil {
		a.saveErr = err
	}

	a.cfg = cfg
	a.lang = cfg.Language()
	a.currency = cfg.General.Currency
	a.catalog = budget.DefaultCatalog(a.lang)
	theme.SetActive(cfg.Appearance.Theme)
	a.salaryState = newSalaryState(a.salary)
}
