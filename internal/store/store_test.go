package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matthieukhl/giftlab/internal/config"
	"github.com/matthieukhl/giftlab/internal/database"
	"github.com/matthieukhl/giftlab/internal/models"
)

// newTestDB opens a fresh SQLite database in a temp dir with the full shop
// schema applied.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	cfg := config.DBConfig{
		Path:         filepath.Join(t.TempDir(), "shop.db"),
		MaxOpenConns: 1,
	}
	db, err := database.NewConnection(&cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.EnsureSchema())
	return db
}

// seedTree creates one category, one subcategory beneath it and one product
// beneath that, returning all three.
func seedTree(t *testing.T, db *database.DB, categoryName string, hasComments bool) (models.Category, models.Subcategory, models.Product) {
	t.Helper()

	catalog := NewCatalogStore(db)

	category := models.Category{Name: categoryName, HasComments: hasComments}
	require.NoError(t, catalog.CreateCategory(&category))

	subcategory := models.Subcategory{ParentID: category.ID, Name: categoryName + " subcategory"}
	require.NoError(t, catalog.CreateSubcategory(&subcategory))

	product := models.Product{
		Name:          categoryName + " product",
		Price:         350,
		SubcategoryID: subcategory.ID,
	}
	require.NoError(t, catalog.CreateProduct(&product))

	return category, subcategory, product
}

func countRows(t *testing.T, db *database.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}
