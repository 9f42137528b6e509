package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mono-statements/internal/monobank"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := newRootCommand(logger).ExecuteContext(ctx); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

// app is shared by all subcommands. It is filled in by the root
// PersistentPreRunE.
type app struct {
	logger *zap.Logger
	cfg    Config
}

func newRootCommand(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	rootCmd := &cobra.Command{
		Use:   "monostatements",
		Short: "monobank statements with currency conversion",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(a.logger)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			a.cfg = cfg
			return nil
		},
	}

	rootCmd.AddCommand(
		newRatesCommand(a),
		newAccountsCommand(a),
		newStatementsCommand(a),
		newConvertCommand(a),
		newKeysCommand(a),
		newServeCommand(a),
	)

	return rootCmd
}

func (a *app) client() (*monobank.Client, error) {
	if err := a.cfg.requireBank(); err != nil {
		return nil, err
	}
	return monobank.New(a.cfg.MonoAPIKey, a.logger)
}
