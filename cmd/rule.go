package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qawamdev/qawam/internal/model"

	"github.com/spf13/cobra"
)

var ruleCmd = &cobra.Command{
	Use:   "rule [needs/wants/savings]",
	Short: "Show or set the budget rule",
	Long:  "Show the active budget rule, or set it from three slash-separated percentages, e.g. `qawam rule 60/20/20`. The shares are not required to sum to 100.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRule,
}

func init() {
	rootCmd.AddCommand(ruleCmd)
}

func runRule(_ *cobra.Command, args []string) error {
	_, st, state, err := openState()
	if err != nil {
		return err
	}
	defer st.Close()

	if len(args) == 0 {
		fmt.Printf("  Budget rule: %.0f/%.0f/%.0f (needs/wants/savings)\n",
			state.Rule.Needs, state.Rule.Wants, state.Rule.Savings)
		return nil
	}

	rule, err := parseRuleArg(args[0])
	if err != nil {
		return err
	}

	if err := st.SaveRule(rule); err != nil {
		return fmt.Errorf("saving rule: %w", err)
	}

	fmt.Printf("  Rule set to %.0f/%.0f/%.0f\n", rule.Needs, rule.Wants, rule.Savings)
	if sum := rule.Needs + rule.Wants + rule.Savings; sum != 100 {
		fmt.Printf("  Note: shares sum to %.0f, not 100.\n", sum)
	}
	return nil
}

func parseRuleArg(raw string) (model.BudgetRule, error) {
	parts := strings.Split(strings.TrimSpace(raw), "/")
	if len(parts) != 3 {
		return model.BudgetRule{}, fmt.Errorf("rule must be three slash-separated numbers, e.g. 50/30/20")
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || v < 0 || v > 100 {
			return model.BudgetRule{}, fmt.Errorf("each share must be a number between 0 and 100, got %q", p)
		}
		vals[i] = v
	}
	return model.BudgetRule{Needs: vals[0], Wants: vals[1], Savings: vals[2]}, nil
}
