package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe the salary, expenses and budget rule",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	_, st, _, err := openState()
	if err != nil {
		return err
	}
	defer st.Close()

	if !flagResetYes {
		fmt.Print("  This wipes your salary, expenses and rule. Continue? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("  Aborted.")
			return nil
		}
	}

	if err := st.Reset(); err != nil {
		return fmt.Errorf("resetting: %w", err)
	}

	fmt.Println("  All budget data wiped.")
	return nil
}
