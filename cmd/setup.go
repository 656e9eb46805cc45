package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/qawamdev/qawam/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to qawam!")
	fmt.Println()

	// 1. Language
	fmt.Println("  1. Language / اللغة")
	fmt.Println("     (1) العربية [default]")
	fmt.Println("     (2) English")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	if strings.TrimSpace(choice) == "2" {
		cfg.General.Language = "en"
	} else {
		cfg.General.Language = "ar"
	}
	fmt.Println()

	// 2. Currency
	fmt.Printf("  2. Currency code (current: %s)\n", cfg.General.Currency)
	fmt.Print("     > ")
	currency, _ := reader.ReadString('\n')
	if currency = strings.TrimSpace(currency); currency != "" {
		cfg.General.Currency = strings.ToUpper(currency)
	}
	fmt.Println()

	// 3. Gemini API key
	fmt.Println("  3. Gemini API key (optional)")
	fmt.Println("     Powers the AI advisor. Leave blank to use local analysis.")
	existing := config.AdvisorAPIKey(cfg)
	if existing != "" {
		fmt.Printf("     Current: %s\n", maskAPIKey(existing))
	}
	fmt.Print("     > ")
	apiKey, _ := reader.ReadString('\n')
	if apiKey = strings.TrimSpace(apiKey); apiKey != "" {
		cfg.Advisor.APIKey = apiKey
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Flexoki Light")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "flexoki-light"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `qawam setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func maskAPIKey(key string) string {
	if len(key) > 16 {
		return key[:8] + "..." + key[len(key)-4:]
	}
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "****"
}
