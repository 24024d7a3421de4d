// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/property-service/migrations"
)

// migrateCmd performs DB migrations
var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down [version]|status|check]",
	Short: "Run database migrations",
	Long:  `Run database migrations, the DSN is read from --dsn or the DSN environment variable`,
	Args:  customValidArgs(),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMigrate(cmd, args); err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}
	},
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string, defaults to $DSN")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}

func customValidArgs() func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
			return err
		}
		if len(args) == 0 {
			return nil
		}

		switch args[0] {
		case "up", "down", "status", "check":
		default:
			return fmt.Errorf("invalid first argument: %q", args[0])
		}

		if len(args) == 2 {
			if args[0] != "down" {
				return fmt.Errorf("invalid argument combination: %q", args)
			}
			if version, err := strconv.Atoi(args[1]); err != nil || version < 0 {
				return fmt.Errorf("invalid version number: %q", args[1])
			}
		}

		return nil
	}
}

func migrationDSN(cmd *cobra.Command) (string, error) {
	dsn, _ := cmd.Flags().GetString("dsn")
	if dsn != "" {
		return dsn, nil
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to load .env file: %w", err)
	}
	if dsn = os.Getenv("DSN"); dsn == "" {
		return "", fmt.Errorf("either --dsn or DSN must be provided")
	}
	return dsn, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	command := "up"
	if len(args) > 0 {
		command = args[0]
	}

	version := int64(-1)
	if len(args) > 1 {
		v, _ := strconv.Atoi(args[1])
		version = int64(v)
	}

	dsn, err := migrationDSN(cmd)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")

	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("DSN validation failed, shutting down, err: %v", err)
	}

	db := stdlib.OpenDB(*config)
	defer db.Close()

	ctx := cmd.Context()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("DB connection failed, shutting down, err: %v", err)
	}

	m, err := newMigrator(db, format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	switch command {
	case "down":
		return m.down(ctx, version)
	case "status":
		return m.status(ctx)
	case "check":
		return m.check(ctx)
	default:
		return m.up(ctx)
	}
}

// migrator renders goose results either as text or as a single JSON document.
type migrator struct {
	provider *goose.Provider
	json     bool
	out      io.Writer
}

func newMigrator(db *sql.DB, format string, out io.Writer) (*migrator, error) {
	var opts []goose.ProviderOption
	if format == "json" {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	return &migrator{provider: provider, json: format == "json", out: out}, nil
}

func (m *migrator) applied(results []*goose.MigrationResult) error {
	if m.json {
		if results == nil {
			results = []*goose.MigrationResult{}
		}
		return json.NewEncoder(m.out).Encode(map[string]interface{}{"applied": results})
	}

	if len(results) == 0 {
		fmt.Fprintln(m.out, "No migrations to apply")
	}
	for _, r := range results {
		fmt.Fprintf(m.out, "%-4s %s (%s)\n", r.Direction, r.Source.Path, r.Duration.Round(time.Millisecond))
	}
	return nil
}

func (m *migrator) up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return err
	}
	return m.applied(results)
}

// down rolls back one migration, or every migration above version when one
// is given.
func (m *migrator) down(ctx context.Context, version int64) error {
	if version < 0 {
		result, err := m.provider.Down(ctx)
		if err != nil {
			return err
		}
		return m.applied([]*goose.MigrationResult{result})
	}

	results, err := m.provider.DownTo(ctx, version)
	if err != nil {
		return err
	}
	return m.applied(results)
}

func (m *migrator) status(ctx context.Context) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return err
	}
	if m.json {
		return json.NewEncoder(m.out).Encode(statuses)
	}

	fmt.Fprintln(m.out, "    Applied At                  Migration")
	fmt.Fprintln(m.out, "    =======================================")
	for _, s := range statuses {
		appliedAt := "Pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(m.out, "    %-24s -- %s\n", appliedAt, s.Source.Path)
	}
	return nil
}

// check fails when migrations are pending so it can gate deployments.
func (m *migrator) check(ctx context.Context) error {
	pending, err := m.provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, verr := m.provider.GetDBVersion(ctx)

	state := "ok"
	switch {
	case pending:
		state = "pending"
	case verr != nil:
		state = "unknown"
	}

	if m.json {
		if err := json.NewEncoder(m.out).Encode(map[string]interface{}{"status": state, "version": current}); err != nil {
			return err
		}
		if pending {
			return fmt.Errorf("migrations are pending")
		}
		return nil
	}

	if pending {
		if verr != nil {
			return fmt.Errorf("migrations are pending (failed to get current version: %v)", verr)
		}
		return fmt.Errorf("migrations are pending: current version %d", current)
	}
	if verr != nil {
		fmt.Fprintln(m.out, "Database is up to date")
		return nil
	}
	fmt.Fprintf(m.out, "Database is up to date (version %d)\n", current)
	return nil
}
