// Package postgres implements the file repo interface using PostgreSQL
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	filedepot "github.com/filedepot/filedepot"
)

type Repo struct {
	pool      *pgxpool.Pool
	tableName string
}

func NewRepo(pool *pgxpool.Pool, tables filedepot.Tables) (*Repo, error) {
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("new repo: %w", err)
	}

	return &Repo{pool: pool, tableName: tables.Files}, nil
}

// Ping verifies database connectivity
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *Repo) Insert(ctx context.Context, rec filedepot.FileRecord) (filedepot.FileRecord, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (file_name, content_type, payload, size_bytes, uploaded_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, r.tableName)

	err := r.pool.QueryRow(ctx, query,
		rec.FileName, rec.ContentType, rec.Payload, rec.SizeBytes, rec.UploadedAt,
	).Scan(&rec.ID)
	if err != nil {
		return filedepot.FileRecord{}, fmt.Errorf("insert: %w", err)
	}

	return rec, nil
}

func (r *Repo) Get(ctx context.Context, id int64) (filedepot.FileRecord, error) {
	query := fmt.Sprintf(`
		SELECT id, file_name, content_type, payload, size_bytes, uploaded_at
		FROM %s
		WHERE id = $1
	`, r.tableName)

	var rec filedepot.FileRecord
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.FileName, &rec.ContentType, &rec.Payload, &rec.SizeBytes, &rec.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return filedepot.FileRecord{}, filedepot.ErrNotFound
		}
		return filedepot.FileRecord{}, fmt.Errorf("get: %w", err)
	}

	return rec, nil
}

func (r *Repo) List(ctx context.Context) ([]filedepot.FileInfo, error) {
	query := fmt.Sprintf(`
		SELECT id, file_name, content_type, size_bytes, uploaded_at
		FROM %s
		ORDER BY id
	`, r.tableName)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer rows.Close()

	items := make([]filedepot.FileInfo, 0)
	for rows.Next() {
		var info filedepot.FileInfo
		if err := rows.Scan(&info.ID, &info.FileName, &info.ContentType, &info.SizeBytes, &info.UploadedAt); err != nil {
			return nil, fmt.Errorf("list: scan: %w", err)
		}
		items = append(items, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list: rows: %w", err)
	}

	return items, nil
}

func (r *Repo) Update(ctx context.Context, rec filedepot.FileRecord) (filedepot.FileRecord, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET file_name = $1, content_type = $2, payload = $3, size_bytes = $4, uploaded_at = $5
		WHERE id = $6
	`, r.tableName)

	result, err := r.pool.Exec(ctx, query,
		rec.FileName, rec.ContentType, rec.Payload, rec.SizeBytes, rec.UploadedAt, rec.ID,
	)
	if err != nil {
		return filedepot.FileRecord{}, fmt.Errorf("update: %w", err)
	}

	if result.RowsAffected() == 0 {
		return filedepot.FileRecord{}, fmt.Errorf("update: %w", filedepot.ErrNotFound)
	}

	return rec, nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tableName)

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete: %w", filedepot.ErrNotFound)
	}

	return nil
}
