package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mono-statements/internal"
	"mono-statements/internal/postgresql"
	"mono-statements/internal/repository/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func newKeysCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage keys of the local HTTP API",
	}

	var label string
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a key and print it once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			raw, err := internal.GenerateAPIKey()
			if err != nil {
				return fmt.Errorf("generate key: %w", err)
			}
			if err := postgresql.NewAPIKeyStorage(pool).Insert(cmd.Context(), internal.HashAPIKey(raw, a.cfg.EncodingKey), label); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), raw)
			return err
		},
	}
	add.Flags().StringVar(&label, "label", "", "free-form note stored with the key")

	revoke := &cobra.Command{
		Use:   "revoke <key>",
		Short: "Deactivate a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			found, err := postgresql.NewAPIKeyStorage(pool).Deactivate(cmd.Context(), internal.HashAPIKey(args[0], a.cfg.EncodingKey))
			if err != nil {
				return err
			}
			if !found {
				return errors.New("key not found")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "revoked")
			return err
		},
	}

	cmd.AddCommand(add, revoke)
	return cmd
}

// openDB connects and makes sure the schema exists.
func (a *app) openDB(ctx context.Context) (*pgxpool.Pool, error) {
	if err := a.cfg.requireDatabase(); err != nil {
		return nil, err
	}

	dbCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(dbCtx, a.cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	if err := migrations.New(pool).Setup(dbCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure tables: %w", err)
	}
	return pool, nil
}
