// Package sqlite implements the file repo interface using SQLite
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	filedepot "github.com/filedepot/filedepot"
)

type repo struct {
	db        *sql.DB
	tableName string
}

// NewRepo creates a SQLite-backed FileRepo over an open connection.
func NewRepo(db *sql.DB, tables filedepot.Tables) (filedepot.FileRepo, error) {
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("new repo: %w", err)
	}

	return &repo{db: db, tableName: tables.Files}, nil
}

func (r *repo) Insert(ctx context.Context, rec filedepot.FileRecord) (filedepot.FileRecord, error) {
	query := fmt.Sprintf( //nolint:gosec // G201: table name is validated
		`INSERT INTO %s (file_name, content_type, payload, size_bytes, uploaded_at)
		VALUES (?, ?, ?, ?, ?)`, r.tableName)

	result, err := r.db.ExecContext(ctx, query,
		rec.FileName, rec.ContentType, rec.Payload, rec.SizeBytes,
		rec.UploadedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return filedepot.FileRecord{}, fmt.Errorf("insert: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return filedepot.FileRecord{}, fmt.Errorf("insert: last insert id: %w", err)
	}

	rec.ID = id
	return rec, nil
}

func (r *repo) Get(ctx context.Context, id int64) (filedepot.FileRecord, error) {
	query := fmt.Sprintf( //nolint:gosec // G201: table name is validated
		`SELECT id, file_name, content_type, payload, size_bytes, uploaded_at
		FROM %s
		WHERE id = ?`, r.tableName)

	var rec filedepot.FileRecord
	var uploadedAt string

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID, &rec.FileName, &rec.ContentType, &rec.Payload, &rec.SizeBytes, &uploadedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return filedepot.FileRecord{}, filedepot.ErrNotFound
		}
		return filedepot.FileRecord{}, fmt.Errorf("get: %w", err)
	}

	rec.UploadedAt, err = time.Parse(time.RFC3339Nano, uploadedAt)
	if err != nil {
		return filedepot.FileRecord{}, fmt.Errorf("get: parse uploaded_at: %w", err)
	}

	return rec, nil
}

func (r *repo) List(ctx context.Context) ([]filedepot.FileInfo, error) {
	query := fmt.Sprintf( //nolint:gosec // G201: table name is validated
		`SELECT id, file_name, content_type, size_bytes, uploaded_at
		FROM %s
		ORDER BY id`, r.tableName)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]filedepot.FileInfo, 0)
	for rows.Next() {
		var info filedepot.FileInfo
		var uploadedAt string

		if scanErr := rows.Scan(&info.ID, &info.FileName, &info.ContentType, &info.SizeBytes, &uploadedAt); scanErr != nil {
			return nil, fmt.Errorf("list: scan: %w", scanErr)
		}

		info.UploadedAt, err = time.Parse(time.RFC3339Nano, uploadedAt)
		if err != nil {
			return nil, fmt.Errorf("list: parse uploaded_at: %w", err)
		}

		items = append(items, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list: rows: %w", err)
	}

	return items, nil
}

func (r *repo) Update(ctx context.Context, rec filedepot.FileRecord) (filedepot.FileRecord, error) {
	query := fmt.Sprintf( //nolint:gosec // G201: table name is validated
		`UPDATE %s
		SET file_name = ?, content_type = ?, payload = ?, size_bytes = ?, uploaded_at = ?
		WHERE id = ?`, r.tableName)

	result, err := r.db.ExecContext(ctx, query,
		rec.FileName, rec.ContentType, rec.Payload, rec.SizeBytes,
		rec.UploadedAt.UTC().Format(time.RFC3339Nano), rec.ID,
	)
	if err != nil {
		return filedepot.FileRecord{}, fmt.Errorf("update: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return filedepot.FileRecord{}, fmt.Errorf("update: rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return filedepot.FileRecord{}, fmt.Errorf("update: %w", filedepot.ErrNotFound)
	}

	return rec, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf( //nolint:gosec // G201: table name is validated
		`DELETE FROM %s WHERE id = ?`, r.tableName)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete: rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("delete: %w", filedepot.ErrNotFound)
	}

	return nil
}
