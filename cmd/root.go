package cmd

import (
	"fmt"
	"os"

	"github.com/qawamdev/qawam/internal/config"
	"github.com/qawamdev/qawam/internal/model"
	"github.com/qawamdev/qawam/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagLang    string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "qawam",
	Short: "Personal budget planner built on the 50/30/20 rule",
	Long:  "Track your salary and expenses, split them into needs, wants and savings, and keep every month inside your budget rule.",
	RunE:  runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default ~/.local/share/qawam)")
	rootCmd.PersistentFlags().StringVarP(&flagLang, "lang", "l", "", "Output language: ar or en")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress hints and progress output")
}

// loadConfig applies the CLI overrides on top of the config file.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  config unreadable, using defaults: %v\n", err)
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	if flagLang == "ar" || flagLang == "en" {
		cfg.General.Language = flagLang
	}
	return cfg
}

// openState opens the database and loads the full persisted state.
// The caller owns closing the store.
func openState() (config.Config, *store.Store, *store.State, error) {
	cfg := loadConfig()

	st, err := store.Open(config.DBPath(cfg))
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("opening database: %w", err)
	}

	state, err := st.Load()
	if err != nil {
		st.Close()
		return cfg, nil, nil, fmt.Errorf("loading state: %w", err)
	}

	return cfg, st, state, nil
}

// requireSalary guards commands that are meaningless before a salary is set.
func requireSalary(state *store.State, lang model.Language) error {
	if state.Salary > 0 {
		return nil
	}
	if lang == model.Arabic {
		return fmt.Errorf("لم يتم تسجيل راتب بعد، استخدم `qawam salary <amount>`")
	}
	return fmt.Errorf("no salary on file yet, run `qawam salary <amount>` first")
}
