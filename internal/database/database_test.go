package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthieukhl/giftlab/internal/config"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	cfg := config.DBConfig{
		Path:         filepath.Join(t.TempDir(), "shop.db"),
		MaxOpenConns: 1,
	}
	db, err := NewConnection(&cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countTable(t *testing.T, db *DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.EnsureSchema())
	require.NoError(t, db.EnsureSchema())

	for _, table := range tableNames {
		assert.Equal(t, 0, countTable(t, db, table), table)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.EnsureSchema())

	_, err := db.Exec(
		"INSERT INTO subcategories (parent_id, name, created_at) VALUES (99, 'Orphan', 0)")
	assert.Error(t, err, "foreign_keys pragma must be on")
}

func TestSeedIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.EnsureSchema())

	require.NoError(t, db.Seed())
	categories := countTable(t, db, "categories")
	products := countTable(t, db, "products")
	require.Equal(t, len(seedCategories), categories)
	require.Equal(t, len(seedProducts), products)

	// A second run must not duplicate the demo catalog.
	require.NoError(t, db.Seed())
	assert.Equal(t, categories, countTable(t, db, "categories"))
	assert.Equal(t, products, countTable(t, db, "products"))
}

func TestDropSchema(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.EnsureSchema())
	require.NoError(t, db.Seed())

	require.NoError(t, db.DropSchema())
	require.NoError(t, db.EnsureSchema())
	assert.Equal(t, 0, countTable(t, db, "categories"))
}

func TestHealthCheck(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, db.HealthCheck())
}
