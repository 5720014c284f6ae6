package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/ports"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreSaveLoad(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "snapshots"))
	rs := assembledRouteSet(t)

	require.NoError(t, store.Save(ctx, "warehouse-a", rs))

	got, err := store.Load(ctx, "warehouse-a")
	require.NoError(t, err)
	assert.True(t, rs.Equal(got))

	entries, err := os.ReadDir(store.Dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFileStoreMissingKey(t *testing.T) {
	store := NewFileStore(t.TempDir())

	_, err := store.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ports.ErrSnapshotNotFound)
}

func TestFileStoreCorruptFile(t *testing.T) {
	store := NewFileStore(t.TempDir())
	require.NoError(t, os.WriteFile(store.Path("bad"), []byte(`{"version":1,"stops":`), 0o644))

	_, err := store.Load(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrCorruptSnapshot)
}

func TestFileStorePathSanitizesKey(t *testing.T) {
	store := NewFileStore("/data")
	assert.Equal(t, "/data/.._etc_passwd.json", store.Path("../etc/passwd"))
}

func TestFileStoreSaveRejectsUnassembled(t *testing.T) {
	store := NewFileStore(t.TempDir())
	rs := domain.NewRouteSet([]domain.Coordinate{{X: 1, Y: 1}}, domain.PathSpecification{})

	err := store.Save(context.Background(), "partial", rs)
	assert.ErrorIs(t, err, domain.ErrNotAssembled)

	entries, err := os.ReadDir(store.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = store.Load(context.Background(), "partial")
	assert.ErrorIs(t, err, ports.ErrSnapshotNotFound)
}
