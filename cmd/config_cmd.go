// Package cmd implements the qawam CLI commands.
package cmd

import (
	"fmt"

	"github.com/qawamdev/qawam/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Language: %s\n", cfg.General.Language)
	fmt.Printf("    Currency: %s\n", cfg.General.Currency)
	fmt.Printf("    Database: %s\n", config.DBPath(cfg))
	fmt.Println()

	fmt.Println("  [Advisor]")
	apiKey := config.AdvisorAPIKey(cfg)
	if apiKey != "" {
		fmt.Printf("    API key: %s\n", maskAPIKey(apiKey))
	} else {
		fmt.Println("    API key: not configured (local analysis only)")
	}
	if cfg.Advisor.Model != "" {
		fmt.Printf("    Model:   %s\n", cfg.Advisor.Model)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `qawam setup` to reconfigure.")
	return nil
}
