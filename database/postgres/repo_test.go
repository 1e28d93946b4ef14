package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	filedepot "github.com/filedepot/filedepot"
)

func testRecord(name string) filedepot.FileRecord {
	return filedepot.FileRecord{
		FileName:    name,
		ContentType: "image/jpeg",
		Payload:     []byte("jpeg bytes for " + name),
		SizeBytes:   int64(len("jpeg bytes for " + name)),
		UploadedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestRepo_InsertGetRoundtrip(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	rec := testRecord("photo.jpg")
	stored, err := repo.Insert(ctx, rec)
	require.NoError(t, err)
	assert.NotZero(t, stored.ID)

	got, err := repo.Get(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.FileName, got.FileName)
	assert.Equal(t, rec.ContentType, got.ContentType)
	assert.Equal(t, rec.Payload, got.Payload)
	assert.Equal(t, rec.SizeBytes, got.SizeBytes)
	assert.True(t, rec.UploadedAt.Equal(got.UploadedAt))
}

func TestRepo_GetMissing(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.Get(context.Background(), 98765)
	assert.ErrorIs(t, err, filedepot.ErrNotFound)
}

func TestRepo_List(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = repo.Insert(ctx, testRecord("a.jpg"))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, testRecord("b.jpg"))
	require.NoError(t, err)

	items, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a.jpg", items[0].FileName)
	assert.Equal(t, "b.jpg", items[1].FileName)
}

func TestRepo_Update(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	stored, err := repo.Insert(ctx, testRecord("old.jpg"))
	require.NoError(t, err)

	replacement := filedepot.FileRecord{
		ID:          stored.ID,
		FileName:    "new.png",
		ContentType: "image/png",
		Payload:     []byte("replacement"),
		SizeBytes:   11,
		UploadedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err = repo.Update(ctx, replacement)
	require.NoError(t, err)

	got, err := repo.Get(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "new.png", got.FileName)
	assert.Equal(t, []byte("replacement"), got.Payload)
	assert.Equal(t, int64(11), got.SizeBytes)

	replacement.ID = 98765
	_, err = repo.Update(ctx, replacement)
	assert.ErrorIs(t, err, filedepot.ErrNotFound)
}

func TestRepo_Delete(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	stored, err := repo.Insert(ctx, testRecord("gone.jpg"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, stored.ID))

	_, err = repo.Get(ctx, stored.ID)
	assert.ErrorIs(t, err, filedepot.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, stored.ID), filedepot.ErrNotFound)
}
