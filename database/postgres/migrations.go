package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	filedepot "github.com/filedepot/filedepot"
)

func createFilesTable(ctx context.Context, pool *pgxpool.Pool, tableName string) error {
	quotedTable := pgx.Identifier{tableName}.Sanitize()
	indexUploadedAt := pgx.Identifier{fmt.Sprintf("idx_%s_uploaded_at", tableName)}.Sanitize()

	sql := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			file_name TEXT NOT NULL,
			content_type TEXT NOT NULL,
			payload BYTEA NOT NULL,
			size_bytes BIGINT NOT NULL,
			uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS %s
		ON %s (uploaded_at);
	`,
		quotedTable,
		indexUploadedAt, quotedTable,
	)

	_, err := pool.Exec(ctx, sql)
	if err != nil {
		return fmt.Errorf("create files table: %w", err)
	}
	return nil
}

func dropFilesTable(ctx context.Context, pool *pgxpool.Pool, tableName string) error {
	quotedTable := pgx.Identifier{tableName}.Sanitize()

	_, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", quotedTable))
	if err != nil {
		return fmt.Errorf("drop files table: %w", err)
	}
	return nil
}

// Migrate creates the file records table and its indexes.
func Migrate(ctx context.Context, pool *pgxpool.Pool, tables filedepot.Tables) error {
	if err := tables.Validate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if err := createFilesTable(ctx, pool, tables.Files); err != nil {
		return fmt.Errorf("migrate %s: %w", tables.Files, err)
	}

	return nil
}

// DropTables removes the file records table.
func DropTables(ctx context.Context, pool *pgxpool.Pool, tables filedepot.Tables) error {
	if err := tables.Validate(); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}

	if err := dropFilesTable(ctx, pool, tables.Files); err != nil {
		return fmt.Errorf("drop tables %s: %w", tables.Files, err)
	}

	return nil
}
