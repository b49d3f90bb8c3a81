package kv

import (
	"context"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupDB instantiates and returns a Store instance.
func setupDB(t testing.TB) *Store {
	db, err := NewKVStore(context.Background(), t.TempDir())
	require.NoError(t, err, "Failed to instantiate DB")
	t.Cleanup(func() {
		require.NoError(t, db.Close(), "Failed to close database")
	})
	return db
}

func TestStore_ClearDB(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.ClearDB())
	_, err := os.Stat(path.Join(db.DatabasePath(), DatabaseFileName))
	require.True(t, os.IsNotExist(err))
}

func TestStore_Backup(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	require.NoError(t, db.LightClientStore("mainnet").SaveFinalizedHeader(ctx, testHeader(100)))

	out, err := db.Backup(ctx, "", false)
	require.NoError(t, err)
	info, err := os.Stat(out)
	require.NoError(t, err)
	require.NotZero(t, info.Size())

	restoredDir := t.TempDir()
	require.NoError(t, os.Rename(out, path.Join(restoredDir, DatabaseFileName)))
	restored, err := NewKVStore(ctx, restoredDir)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, restored.Close())
	}()
	h, err := restored.LightClientStore("mainnet").FinalizedHeader(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(100), uint64(h.Slot))
}
