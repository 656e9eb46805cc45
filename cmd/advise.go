package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/qawamdev/qawam/internal/advisor"
	"github.com/qawamdev/qawam/internal/config"

	"github.com/spf13/cobra"
)

var flagAdviseApply bool

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Get a budget rule recommendation for your ledger",
	Long:  "Analyze the ledger and recommend a needs/wants/savings split. Uses the remote advisor when an API key is configured, local analysis otherwise.",
	RunE:  runAdvise,
}

func init() {
	adviseCmd.Flags().BoolVar(&flagAdviseApply, "apply", false, "Save the recommended rule")
	rootCmd.AddCommand(adviseCmd)
}

func runAdvise(_ *cobra.Command, _ []string) error {
	cfg, st, state, err := openState()
	if err != nil {
		return err
	}
	defer st.Close()

	lang := cfg.Language()
	if err := requireSalary(state, lang); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	var remote advisor.Advisor
	if c := advisor.NewClient(config.AdvisorAPIKey(cfg), cfg.Advisor.BaseURL, cfg.Advisor.Model, lang); c != nil {
		remote = c
	}

	rec := advisor.Recommend(ctx, remote, lang, state.Salary, state.Expenses)

	source := "local analysis"
	if rec.Remote {
		source = "AI advisor"
	}

	fmt.Println()
	fmt.Printf("  %s\n\n", rec.Message)
	fmt.Printf("  Suggested rule: %.0f/%.0f/%.0f  (%s)\n",
		rec.Rule.Needs, rec.Rule.Wants, rec.Rule.Savings, source)

	if !flagAdviseApply {
		fmt.Println("  Re-run with --apply to save it.")
		return nil
	}

	if err := st.SaveRule(rec.Rule); err != nil {
		return fmt.Errorf("saving rule: %w", err)
	}
	fmt.Println("  Rule applied.")
	return nil
}
