package main

import (
	"fmt"
	"time"

	"github.com/example/expense-tracker/internal/logger"
	"github.com/example/expense-tracker/internal/report"
	"github.com/example/expense-tracker/pkg/expense"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var date, amount, category, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an expense without the interactive menu",
		Long: `Add validates one expense and appends it to the ledger file.

Example:
  expense-tracker add --date 01-31-2024 --amount 12.50 --category food --description lunch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)

			r, err := expense.NewRecord(date, amount, category, description, time.Now())
			if err != nil {
				return fmt.Errorf("invalid expense: %w", err)
			}
			if err := a.ledger.Append(r); err != nil {
				return err
			}

			log := logger.FromContext(cmd.Context())
			log.Info().Str("date", r.Date).Str("category", r.Category).Msg("expense added")
			fmt.Fprintln(cmd.OutOrStdout(), "✅ Expense added successfully!")
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "expense date (MM-DD-YYYY)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount spent")
	cmd.Flags().StringVar(&category, "category", "", "expense category")
	cmd.Flags().StringVar(&description, "description", "", "what the money was spent on")
	for _, name := range []string{"date", "amount", "category", "description"} {
		cobra.CheckErr(cmd.MarkFlagRequired(name))
	}
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all expenses and the spending per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report.WriteView(cmd.OutOrStdout(), appFrom(cmd).ledger.Records())
		},
	}
}

func newSummaryCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show total spending per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			totals := report.Summarize(appFrom(cmd).ledger.Records())
			return report.WriteSummaryAs(cmd.OutOrStdout(), totals, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", report.FormatText, "output format: text, json or yaml")
	return cmd
}
