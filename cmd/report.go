package cmd

import (
	"fmt"
	"time"

	"github.com/qawamdev/qawam/internal/report"

	"github.com/spf13/cobra"
)

var flagReportOut string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export a monthly budget report as plain text",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&flagReportOut, "out", "o", "qawam-report.txt", "Output file path")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	cfg, st, state, err := openState()
	if err != nil {
		return err
	}
	defer st.Close()

	lang := cfg.Language()
	if err := requireSalary(state, lang); err != nil {
		return err
	}

	r := report.Build(state.Salary, state.Expenses, state.Rule, lang, cfg.General.Currency, time.Now())
	if err := report.Export(flagReportOut, r); err != nil {
		return fmt.Errorf("exporting report: %w", err)
	}

	fmt.Printf("  Report written to %s\n", flagReportOut)
	return nil
}
