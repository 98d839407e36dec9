package main

import (
	"fmt"
	"os"

	"github.com/example/expense-tracker/internal/console"
	"github.com/example/expense-tracker/internal/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense-tracker",
		Short: "Record and summarize personal expenses",
		Long: `Expense Tracker records dated expenses (amount, category, description)
to a CSV file and reports them as a table or as totals per category.

Run without a subcommand to use the interactive menu.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			menu := console.NewMenu(a.ledger, cmd.InOrStdin(), cmd.OutOrStdout(),
				console.WithColor(a.config.Color),
				console.WithLogger(logger.FromContext(cmd.Context())),
			)
			return menu.Run(cmd.Context())
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (default is ./expense-tracker.toml or ~/.config/expense-tracker/expense-tracker.toml)")
	flags.String("file", "", "ledger CSV file (default is expenses.csv)")
	flags.String("log-level", "", "log level: debug, info, warn, error or disabled")
	flags.Bool("no-color", false, "disable colored output")

	cmd.AddCommand(newAddCmd(), newListCmd(), newSummaryCmd())
	return cmd
}
