package filedepot

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// MaxUploadBytes is the hard ceiling on a single uploaded payload.
const MaxUploadBytes int64 = 10 << 20 // 10 MiB

// FileRecord is one stored file: metadata plus the raw payload.
type FileRecord struct {
	ID          int64     `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Payload     []byte    `json:"-"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// Info returns the metadata projection of the record.
func (r FileRecord) Info() FileInfo {
	return FileInfo{
		ID:          r.ID,
		FileName:    r.FileName,
		ContentType: r.ContentType,
		SizeBytes:   r.SizeBytes,
		UploadedAt:  r.UploadedAt,
	}
}

// FileInfo is the payload-free view of a FileRecord, used for listings and
// upload/update responses.
type FileInfo struct {
	ID          int64     `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// Tables holds configurable table names for file storage.
// This allows multi-tenant deployments to use different table names.
type Tables struct {
	Files string `mapstructure:"files"`
}

var validTableNameRegex = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// IsValidTableName checks if a table name is valid (lowercase, alphanumeric with underscores, max 63 chars).
func IsValidTableName(name string) bool {
	return validTableNameRegex.MatchString(name) && len(name) <= 63
}

// Validate checks that all required table names are set and valid.
func (t Tables) Validate() error {
	if t.Files == "" {
		return errors.New("validate tables: files table name cannot be empty")
	}

	if !IsValidTableName(t.Files) {
		return fmt.Errorf("validate tables: invalid files table name: %s (must match ^[a-z_][a-z0-9_]*$ and be <= 63 chars)", t.Files)
	}

	return nil
}
