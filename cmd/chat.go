package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/qawamdev/qawam/internal/advisor"
	"github.com/qawamdev/qawam/internal/budget"
	"github.com/qawamdev/qawam/internal/cli"
	"github.com/qawamdev/qawam/internal/config"

	"github.com/spf13/cobra"
)

var flagChatSave bool

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Ask the advisor a free-text question about your budget",
	Long:  "Send a message to the advisor. Replies may include expenses it recognized in your message; pass --save to add them to the ledger.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().BoolVar(&flagChatSave, "save", false, "Add any expenses the advisor extracts to the ledger")
	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, args []string) error {
	cfg, st, state, err := openState()
	if err != nil {
		return err
	}
	defer st.Close()

	lang := cfg.Language()
	message := strings.Join(args, " ")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	var adv advisor.Advisor
	if c := advisor.NewClient(config.AdvisorAPIKey(cfg), cfg.Advisor.BaseURL, cfg.Advisor.Model, lang); c != nil {
		adv = c
	} else {
		adv = advisor.Local{Lang: lang}
	}

	reply, err := adv.Chat(ctx, message, state.Salary, state.Expenses)
	if err != nil {
		// Remote failed; the local advisor always answers.
		reply, err = advisor.Local{Lang: lang}.Chat(ctx, message, state.Salary, state.Expenses)
		if err != nil {
			return fmt.Errorf("advisor: %w", err)
		}
	}

	fmt.Println()
	fmt.Printf("  %s\n", reply.Message)

	if reply.Rule != nil {
		fmt.Printf("\n  Suggested rule: %.0f/%.0f/%.0f  (apply with `qawam rule`)\n",
			reply.Rule.Needs, reply.Rule.Wants, reply.Rule.Savings)
	}

	if len(reply.Expenses) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("  Recognized expenses:")
	expenses := state.Expenses
	for _, e := range reply.Expenses {
		fmt.Printf("    %s  %s  (%s)\n",
			e.Name, cli.FormatAmount(e.Amount, cfg.General.Currency), e.Category.Label(lang))
		if flagChatSave {
			expenses = budget.Prepend(expenses, budget.NewExpense(e.Name, e.Amount, e.Category, ""))
		}
	}

	if !flagChatSave {
		fmt.Println("  Re-run with --save to add them to the ledger.")
		return nil
	}

	if err := st.SaveExpenses(expenses); err != nil {
		return fmt.Errorf("saving expenses: %w", err)
	}
	fmt.Printf("  Added %d expense(s).\n", len(reply.Expenses))
	return nil
}
