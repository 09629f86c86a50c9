package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fileharbor/internal/models"
)

func newTestRepo(t *testing.T) *FileRepo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "meta.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return NewFileRepo(db)
}

func record(uid, name, ftype string, size int64, createdAt time.Time) *models.FileRecord {
	return &models.FileRecord{
		UID:       uid,
		Name:      name,
		NameLower: name,
		Type:      ftype,
		Size:      size,
		ObjectKey: "users/" + uid + "/" + uuid.NewString() + "_" + name,
		CreatedAt: createdAt,
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rec := record("u1", "a.json", "json", 7, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, rec))
	require.NotEqual(t, uuid.Nil, rec.ID, "id assigned on create")

	got, err := repo.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "a.json", got.Name)
	assert.Equal(t, "u1", got.UID)
	assert.Equal(t, int64(7), got.Size)
}

func TestGetUnknownID(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTwiceReportsNotFound(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rec := record("u1", "a.txt", "txt", 1, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, rec))

	require.NoError(t, repo.Delete(ctx, rec.ID))
	assert.ErrorIs(t, repo.Delete(ctx, rec.ID), ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), ErrNotFound)
}

func TestQueryFilters(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, record("u1", "a.json", "json", 10, now)))
	require.NoError(t, repo.Create(ctx, record("u1", "b.txt", "txt", 20, now)))
	require.NoError(t, repo.Create(ctx, record("u2", "c.txt", "txt", 30, now)))

	mine, err := repo.Query(ctx, "u1", "")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	txt, err := repo.Query(ctx, "u1", "txt")
	require.NoError(t, err)
	require.Len(t, txt, 1)
	assert.Equal(t, "b.txt", txt[0].Name)

	all, err := repo.Query(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := repo.Query(ctx, "u3", "")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
