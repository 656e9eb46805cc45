package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qawamdev/qawam/internal/budget"
	"github.com/qawamdev/qawam/internal/cli"
	"github.com/qawamdev/qawam/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagAddCategory string
	flagAddNote     string
	flagAddForce    bool
)

var addCmd = &cobra.Command{
	Use:   "add <name> <amount>",
	Short: "Add an expense to the ledger",
	Long:  "Add an expense. Without --category the name is matched against the built-in catalog; unknown names land in wants.",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Category: need, want or saving")
	addCmd.Flags().StringVar(&flagAddNote, "note", "", "Free-text note")
	addCmd.Flags().BoolVarP(&flagAddForce, "force", "f", false, "Save even when the ledger goes over salary")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	cfg, st, state, err := openState()
	if err != nil {
		return err
	}
	defer st.Close()

	lang := cfg.Language()
	if err := requireSalary(state, lang); err != nil {
		return err
	}

	name := strings.TrimSpace(args[0])
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil || !budget.ValidateEntry(name, amount) {
		return fmt.Errorf("expense needs a name and an amount greater than zero")
	}

	category, err := resolveCategory(name, lang)
	if err != nil {
		return err
	}

	if warn := budget.CheckAddition(state.Salary, state.Expenses, nil, amount, state.Rule); warn != nil {
		fmt.Printf("  ⚠ over salary by %s\n", cli.FormatMoney(warn.Deficit))
		fmt.Printf("  %s\n", warn.Advice(lang, state.Rule))
		if !flagAddForce {
			fmt.Println("  Not saved. Re-run with --force to save anyway.")
			return nil
		}
	}

	expenses := budget.Prepend(state.Expenses, budget.NewExpense(name, amount, category, flagAddNote))
	if err := st.SaveExpenses(expenses); err != nil {
		return fmt.Errorf("saving expenses: %w", err)
	}

	fmt.Printf("  Added %s  %s  (%s)\n", name, cli.FormatAmount(amount, cfg.General.Currency), category.Label(lang))
	return nil
}

// resolveCategory prefers the explicit flag, then the catalog, then wants.
func resolveCategory(name string, lang model.Language) (model.Category, error) {
	if flagAddCategory != "" {
		switch strings.ToLower(flagAddCategory) {
		case "need", "needs":
			return model.Need, nil
		case "want", "wants":
			return model.Want, nil
		case "saving", "savings":
			return model.Saving, nil
		}
		return model.Need, fmt.Errorf("unknown category %q, use need, want or saving", flagAddCategory)
	}

	if category, known := budget.DefaultCatalog(lang).Categorize(name); known {
		return category, nil
	}
	return model.Want, nil
}
