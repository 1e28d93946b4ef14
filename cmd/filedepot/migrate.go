package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	filedepot "github.com/filedepot/filedepot"
	"github.com/filedepot/filedepot/database/postgres"
	"github.com/filedepot/filedepot/database/sqlite"

	_ "modernc.org/sqlite" // SQLite driver
)

var migrateDrop bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or drop the file records table",
	Long: `Run schema migrations against the configured database.

By default this creates the file records table and its indexes if they do
not exist. With --drop the table is removed instead; stored files are lost.`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDrop, "drop", false, "drop the table instead of creating it")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	tables := filedepot.Tables{Files: cfg.Database.Table}
	if err := tables.Validate(); err != nil {
		return fmt.Errorf("invalid database config: %w", err)
	}

	dbType := cfg.Database.Type
	dsn := cfg.Database.DSN

	switch dbType {
	case "sqlite":
		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			return fmt.Errorf("open sqlite: %w", err)
		}
		defer func() { _ = db.Close() }()

		if migrateDrop {
			if err := sqlite.DropTables(ctx, db, tables); err != nil {
				return fmt.Errorf("drop tables: %w", err)
			}
		} else if err := sqlite.Migrate(ctx, db, tables); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	case "postgres":
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()

		if migrateDrop {
			if err := postgres.DropTables(ctx, pool, tables); err != nil {
				return fmt.Errorf("drop tables: %w", err)
			}
		} else if err := postgres.Migrate(ctx, pool, tables); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	default:
		return fmt.Errorf("unsupported database type: %s", dbType)
	}

	if migrateDrop {
		slog.Info("dropped table", "table", tables.Files)
	} else {
		slog.Info("migration complete", "table", tables.Files)
	}

	return nil
}
