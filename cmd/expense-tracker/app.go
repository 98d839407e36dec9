package main

import (
	"context"
	"fmt"

	"github.com/example/expense-tracker/internal/config"
	"github.com/example/expense-tracker/internal/logger"
	"github.com/example/expense-tracker/internal/store"
	"github.com/example/expense-tracker/pkg/expense"
	"github.com/spf13/cobra"
)

type appKey struct{}

// app is everything a command needs once startup has succeeded.
type app struct {
	config *config.Config
	ledger *expense.Ledger
}

// setup loads configuration, builds the logger and opens the ledger before any
// command runs.
func setup(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	csvFile := store.NewCSVFile(cfg.DataFile,
		store.WithSkipInvalidRows(cfg.SkipInvalidRows),
		store.WithLogger(log),
	)
	ledger, err := expense.OpenLedger(csvFile, log)
	if err != nil {
		log.Error().Err(err).Str("path", csvFile.Path()).Msg("failed to open ledger")
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithContext(ctx, log)
	ctx = context.WithValue(ctx, appKey{}, &app{config: cfg, ledger: ledger})
	cmd.SetContext(ctx)
	return nil
}

func appFrom(cmd *cobra.Command) *app {
	return cmd.Context().Value(appKey{}).(*app)
}
