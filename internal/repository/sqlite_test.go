package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ascend-local-store/internal/model"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestOpen_CreatesSchema(t *testing.T) {
	db := openTestDB(t)

	version, err := db.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, schemaVersion, version)

	// All three collections must exist and be queryable.
	for _, table := range []string{CollectionProducts, CollectionImages, CollectionSystem} {
		var count int
		err := db.sql.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
		require.NoError(t, err, "collection %s should exist", table)
		assert.Equal(t, 0, count)
	}
}

func TestOpen_ReopenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Second open must not fail or re-run setup destructively.
	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	version, err := db.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, schemaVersion, version)
}

func TestOpen_BadPathIsStorageUnavailable(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "nested", "store.db"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

// Simulates the reload scenario: seed, close, reopen, read back identical
// records.
func TestReopen_PreservesRecords(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.db")

	db, err := Open(path)
	require.NoError(t, err)

	products := []model.Product{
		{ID: 1, Name: "ASCEND Classic Tee", Price: 35.00, Category: "Apparel", Rating: 4.5, Slug: "ascend-classic-tee", InStock: true, Colors: []string{"#000000", "#FFFFFF"}},
		{ID: 2, Name: "Urban Explorer Backpack", Price: 120.00, Category: "Accessories", Rating: 4.8, Slug: "urban-explorer-backpack", InStock: true},
	}
	require.NoError(t, NewSQLiteCatalogRepository(db).CacheCatalog(ctx, products))
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	got, err := NewSQLiteCatalogRepository(db).GetCachedCatalog(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, products, got)
}
