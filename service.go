package filedepot

import (
	"context"
	"fmt"
	"io"
	"time"
)

// FileRepo defines the interface for file record persistence.
// Implementations must handle concurrent access safely; all concurrency
// control is delegated to the backing store.
//
// All methods accept a context for cancellation and timeout control.
type FileRepo interface {
	// Insert stores a new record and returns it with the assigned ID.
	Insert(ctx context.Context, rec FileRecord) (FileRecord, error)

	// Get retrieves a full record, payload included.
	// Returns ErrNotFound if no record has the given ID.
	Get(ctx context.Context, id int64) (FileRecord, error)

	// List returns the metadata of every stored record. Returns an empty
	// slice (not nil) when the table is empty.
	List(ctx context.Context) ([]FileInfo, error)

	// Update replaces every field of the record identified by rec.ID.
	// Returns ErrNotFound if no record has that ID.
	Update(ctx context.Context, rec FileRecord) (FileRecord, error)

	// Delete removes the record with the given ID.
	// Returns ErrNotFound if no record has that ID.
	Delete(ctx context.Context, id int64) error
}

// FileUpload is a candidate file as received from a client: the declared
// name and content type plus the raw byte stream.
type FileUpload struct {
	Name        string
	ContentType string
	Content     io.Reader
}

// FileService validates uploads and persists them through a FileRepo.
type FileService struct {
	repo FileRepo
}

func NewFileService(repo FileRepo) *FileService {
	return &FileService{repo: repo}
}

// buildRecord validates the candidate upload against the given allow-list,
// buffers the entire stream into memory, and constructs a record stamped
// with the current wall-clock time. SizeBytes always equals len(Payload).
func buildRecord(up FileUpload, typeAllowed func(string) bool) (FileRecord, error) {
	if up.Content == nil {
		return FileRecord{}, fmt.Errorf("%w: no file provided", ErrInvalidInput)
	}

	if !typeAllowed(up.ContentType) {
		return FileRecord{}, fmt.Errorf("%w: content type %q is not allowed", ErrInvalidInput, up.ContentType)
	}

	// Read one byte past the ceiling so oversized streams are detectable
	// without buffering them in full.
	payload, err := io.ReadAll(io.LimitReader(up.Content, MaxUploadBytes+1))
	if err != nil {
		return FileRecord{}, fmt.Errorf("buffer upload: %w", err)
	}

	if len(payload) == 0 {
		return FileRecord{}, fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}

	if int64(len(payload)) > MaxUploadBytes {
		return FileRecord{}, fmt.Errorf("%w: file exceeds maximum size of %d bytes", ErrInvalidInput, MaxUploadBytes)
	}

	return FileRecord{
		FileName:    up.Name,
		ContentType: up.ContentType,
		Payload:     payload,
		SizeBytes:   int64(len(payload)),
		UploadedAt:  time.Now().UTC(),
	}, nil
}

// Upload validates and stores a new file, returning its metadata.
//
// Error types returned:
//   - ErrInvalidInput: missing/empty stream, oversized payload, or a content
//     type outside the upload allow-list
//   - Wrapped repository errors: issues persisting the record
func (s *FileService) Upload(ctx context.Context, up FileUpload) (FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return FileInfo{}, fmt.Errorf("upload file: %w", err)
	}

	rec, err := buildRecord(up, IsAllowedUploadType)
	if err != nil {
		return FileInfo{}, fmt.Errorf("upload file: %w", err)
	}

	stored, err := s.repo.Insert(ctx, rec)
	if err != nil {
		return FileInfo{}, fmt.Errorf("upload file: %w", err)
	}

	return stored.Info(), nil
}

// Get retrieves a stored file with its payload.
func (s *FileService) Get(ctx context.Context, id int64) (FileRecord, error) {
	if err := ctx.Err(); err != nil {
		return FileRecord{}, fmt.Errorf("get file: %w", err)
	}

	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return FileRecord{}, fmt.Errorf("get file: %w", err)
	}

	return rec, nil
}

// List returns metadata for every stored file.
func (s *FileService) List(ctx context.Context) ([]FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	return items, nil
}

// Update replaces an existing file wholesale: name, content type, payload,
// size, and upload timestamp are all overwritten. Only image content types
// are accepted on update.
//
// Error types returned:
//   - ErrInvalidInput: same validation failures as Upload, with the
//     narrower update allow-list
//   - ErrNotFound: no record with the given ID
//   - Wrapped repository errors: issues persisting the record
func (s *FileService) Update(ctx context.Context, id int64, up FileUpload) (FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return FileInfo{}, fmt.Errorf("update file: %w", err)
	}

	rec, err := buildRecord(up, IsAllowedUpdateType)
	if err != nil {
		return FileInfo{}, fmt.Errorf("update file %d: %w", id, err)
	}
	rec.ID = id

	stored, err := s.repo.Update(ctx, rec)
	if err != nil {
		return FileInfo{}, fmt.Errorf("update file %d: %w", id, err)
	}

	return stored.Info(), nil
}

// Delete removes a stored file.
func (s *FileService) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete file %d: %w", id, err)
	}

	return nil
}
