package cmd

import (
	"fmt"
	"strconv"

	"github.com/qawamdev/qawam/internal/cli"

	"github.com/spf13/cobra"
)

var salaryCmd = &cobra.Command{
	Use:   "salary [amount]",
	Short: "Show or set the monthly salary",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSalary,
}

func init() {
	rootCmd.AddCommand(salaryCmd)
}

func runSalary(_ *cobra.Command, args []string) error {
	cfg, st, state, err := openState()
	if err != nil {
		return err
	}
	defer st.Close()

	if len(args) == 0 {
		if state.Salary <= 0 {
			fmt.Println("  No salary on file.")
			return nil
		}
		fmt.Printf("  Monthly salary: %s\n", cli.FormatAmount(state.Salary, cfg.General.Currency))
		return nil
	}

	salary, err := strconv.ParseFloat(args[0], 64)
	if err != nil || salary <= 0 {
		return fmt.Errorf("salary must be a number greater than zero, got %q", args[0])
	}

	if err := st.SaveSalary(salary); err != nil {
		return fmt.Errorf("saving salary: %w", err)
	}

	fmt.Printf("  Salary set to %s\n", cli.FormatAmount(salary, cfg.General.Currency))
	return nil
}
