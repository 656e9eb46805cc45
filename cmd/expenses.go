package cmd

import (
	"fmt"
	"strconv"

	"github.com/qawamdev/qawam/internal/budget"
	"github.com/qawamdev/qawam/internal/cli"

	"github.com/spf13/cobra"
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "List the expense ledger",
	RunE:  runExpenses,
}

var expensesRmCmd = &cobra.Command{
	Use:   "rm <index>",
	Short: "Delete an expense by its list index",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpensesRm,
}

func init() {
	expensesCmd.AddCommand(expensesRmCmd)
	rootCmd.AddCommand(expensesCmd)
}

func runExpenses(_ *cobra.Command, _ []string) error {
	cfg, st, state, err := openState()
	if err != nil {
		return err
	}
	defer st.Close()

	if len(state.Expenses) == 0 {
		fmt.Println("\n  No expenses yet. Add one with `qawam add`.")
		return nil
	}

	lang := cfg.Language()
	fmt.Println()
	fmt.Println(cli.RenderTitle("EXPENSE LEDGER"))
	fmt.Println()

	rows := make([][]string, 0, len(state.Expenses)+2)
	total := 0.0
	for i, e := range state.Expenses {
		share := "-"
		if state.Salary > 0 {
			share = cli.FormatPercent(e.Amount * 100 / state.Salary)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			e.Name,
			e.Category.Label(lang),
			cli.FormatMoney(e.Amount),
			share,
		})
		total += e.Amount
	}
	rows = append(rows, []string{"---"})
	totalShare := "-"
	if state.Salary > 0 {
		totalShare = cli.FormatPercent(total * 100 / state.Salary)
	}
	rows = append(rows, []string{"", "Total", "", cli.FormatMoney(total), totalShare})

	table := cli.Table{
		Headers: []string{"#", "Name", "Category", "Amount", "Share"},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	if !flagQuiet && state.Salary > 0 {
		heaviest := state.Expenses[0]
		for _, e := range state.Expenses[1:] {
			if e.Amount > heaviest.Amount {
				heaviest = e
			}
		}
		share := heaviest.Amount * 100 / state.Salary
		fmt.Printf("  Heaviest: %s at %s of salary\n",
			heaviest.Name, cli.ShareStyle(share).Render(cli.FormatPercent(share)))
	}

	return nil
}

func runExpensesRm(_ *cobra.Command, args []string) error {
	_, st, state, err := openState()
	if err != nil {
		return err
	}
	defer st.Close()

	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 1 || idx > len(state.Expenses) {
		return fmt.Errorf("index must be between 1 and %d", len(state.Expenses))
	}

	removed := state.Expenses[idx-1]
	expenses := budget.Remove(state.Expenses, removed.ID)
	if err := st.SaveExpenses(expenses); err != nil {
		return fmt.Errorf("saving expenses: %w", err)
	}

	fmt.Printf("  Removed %s (%s)\n", removed.Name, cli.FormatMoney(removed.Amount))
	return nil
}
