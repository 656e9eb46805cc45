package cmd

import (
	"fmt"

	"github.com/qawamdev/qawam/internal/tui"
	"github.com/qawamdev/qawam/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive budget dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, st, state, err := openState()
	if err != nil {
		return err
	}
	defer st.Close()

	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor so background styling produces ANSI codes even when
	// the terminal is not auto-detected as truecolor. The "terminal" theme
	// is ANSI-16 for exactly those terminals, so it keeps autodetection.
	if forceTrueColor(cfg.Appearance.Theme) {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}

	app := tui.NewApp(cfg, st, state)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

func forceTrueColor(themeName string) bool {
	return themeName != "terminal"
}
