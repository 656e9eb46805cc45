package cmd

import (
	"fmt"

	"github.com/qawamdev/qawam/internal/budget"
	"github.com/qawamdev/qawam/internal/cli"
	"github.com/qawamdev/qawam/internal/model"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Budget summary against the active rule",
	RunE:  runSummaryCmd,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummaryCmd(_ *cobra.Command, _ []string) error {
	cfg, st, state, err := openState()
	if err != nil {
		return err
	}
	defer st.Close()

	lang := cfg.Language()
	if err := requireSalary(state, lang); err != nil {
		return err
	}

	m := budget.ComputeMetrics(state.Salary, state.Expenses)
	analysis := budget.Analyze(m, state.Salary, state.Rule)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("QAWAM  %.0f/%.0f/%.0f",
		state.Rule.Needs, state.Rule.Wants, state.Rule.Savings)))
	fmt.Println()

	rows := [][]string{
		{"Salary", cli.FormatAmount(state.Salary, cfg.General.Currency)},
		{"Total expenses", cli.FormatMoney(m.TotalExpenses)},
		{"Remaining", cli.FormatMoney(m.RemainingSalary)},
		{"---"},
		{model.Need.Label(lang), cli.FormatMoney(m.TotalNeeds)},
		{model.Want.Label(lang), cli.FormatMoney(m.TotalWants)},
		{model.Saving.Label(lang), cli.FormatMoney(m.TotalSavingsExpenses)},
		{"Savings capacity", cli.FormatMoney(m.TotalSavingsCalculated)},
		{"---"},
	}

	for _, card := range analysis.Cards {
		status := "ok"
		switch card.Status {
		case model.StatusOver:
			status = "over"
		case model.StatusUnder:
			status = "under"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%s vs target", card.Category.Label(lang)),
			fmt.Sprintf("%s of %s  (%s)",
				cli.FormatPercent(card.ActualPct), cli.FormatPercent(card.TargetPct), status),
		})
	}

	verdict := "outside the target range"
	if analysis.Balanced {
		verdict = "balanced"
	}
	rows = append(rows, []string{"---"}, []string{"Verdict", verdict})

	table := cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	if flagQuiet {
		return nil
	}

	// Category breakdown scaled against the largest bucket
	maxTotal := m.TotalNeeds
	if m.TotalWants > maxTotal {
		maxTotal = m.TotalWants
	}
	if m.TotalSavingsExpenses > maxTotal {
		maxTotal = m.TotalSavingsExpenses
	}
	fmt.Println()
	fmt.Println(cli.RenderCategoryBar(model.Need, lang, m.TotalNeeds, maxTotal, 40))
	fmt.Println(cli.RenderCategoryBar(model.Want, lang, m.TotalWants, maxTotal, 40))
	fmt.Println(cli.RenderCategoryBar(model.Saving, lang, m.TotalSavingsExpenses, maxTotal, 40))

	fmt.Println()
	for _, card := range analysis.Cards {
		fmt.Print(cli.RenderTargetBar(card, lang, 40))
	}

	return nil
}
