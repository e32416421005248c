package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/matthieukhl/giftlab/internal/database"
	"github.com/matthieukhl/giftlab/internal/models"
)

// CatalogStore manages the category → subcategory → product tree. Deletes
// cascade down the tree through the schema's foreign keys.
type CatalogStore struct {
	db *database.DB
}

func NewCatalogStore(db *database.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// --- Categories ---

func (s *CatalogStore) ListCategories() ([]models.Category, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, image, has_comments, created_at
		FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		var createdAt int64
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.HasComments, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		c.CreatedAt = fromMillis(createdAt)
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *CatalogStore) GetCategory(id int64) (*models.Category, error) {
	var c models.Category
	var createdAt int64
	err := s.db.QueryRow(`
		SELECT id, name, description, image, has_comments, created_at
		FROM categories WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.HasComments, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	c.CreatedAt = fromMillis(createdAt)
	return &c, nil
}

func (s *CatalogStore) CreateCategory(c *models.Category) error {
	c.CreatedAt = time.Now().UTC()
	res, err := s.db.Exec(`
		INSERT INTO categories (name, description, image, has_comments, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		c.Name, c.Description, c.Image, c.HasComments, toMillis(c.CreatedAt))
	if isUniqueViolation(err) {
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	c.ID, err = res.LastInsertId()
	return err
}

func (s *CatalogStore) UpdateCategory(c *models.Category) error {
	res, err := s.db.Exec(`
		UPDATE categories SET name = ?, description = ?, image = ?, has_comments = ?
		WHERE id = ?`,
		c.Name, c.Description, c.Image, c.HasComments, c.ID)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return requireRowsAffected(res)
}

// DeleteCategory removes the category together with every subcategory and
// product beneath it.
func (s *CatalogStore) DeleteCategory(id int64) error {
	res, err := s.db.Exec("DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return requireRowsAffected(res)
}

// --- Subcategories ---

func (s *CatalogStore) ListSubcategories(categoryID int64) ([]models.Subcategory, error) {
	rows, err := s.db.Query(`
		SELECT id, parent_id, name, description, image, created_at
		FROM subcategories WHERE parent_id = ? ORDER BY name`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}
	defer rows.Close()

	subcategories := []models.Subcategory{}
	for rows.Next() {
		var sub models.Subcategory
		var createdAt int64
		if err := rows.Scan(&sub.ID, &sub.ParentID, &sub.Name, &sub.Description, &sub.Image, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan subcategory: %w", err)
		}
		sub.CreatedAt = fromMillis(createdAt)
		subcategories = append(subcategories, sub)
	}
	return subcategories, rows.Err()
}

// ListAllSubcategories returns every subcategory joined with its category
// name, for the flat admin listing.
func (s *CatalogStore) ListAllSubcategories() ([]models.Subcategory, error) {
	rows, err := s.db.Query(`
		SELECT s.id, s.parent_id, s.name, s.description, s.image, s.created_at, c.name
		FROM subcategories s
		JOIN categories c ON s.parent_id = c.id
		ORDER BY s.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}
	defer rows.Close()

	subcategories := []models.Subcategory{}
	for rows.Next() {
		var sub models.Subcategory
		var createdAt int64
		if err := rows.Scan(&sub.ID, &sub.ParentID, &sub.Name, &sub.Description, &sub.Image, &createdAt, &sub.CategoryName); err != nil {
			return nil, fmt.Errorf("failed to scan subcategory: %w", err)
		}
		sub.CreatedAt = fromMillis(createdAt)
		subcategories = append(subcategories, sub)
	}
	return subcategories, rows.Err()
}

func (s *CatalogStore) CreateSubcategory(sub *models.Subcategory) error {
	sub.CreatedAt = time.Now().UTC()
	res, err := s.db.Exec(`
		INSERT INTO subcategories (parent_id, name, description, image, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		sub.ParentID, sub.Name, sub.Description, sub.Image, toMillis(sub.CreatedAt))
	if isForeignKeyViolation(err) {
		return ErrInvalidReference
	}
	if err != nil {
		return fmt.Errorf("failed to create subcategory: %w", err)
	}
	sub.ID, err = res.LastInsertId()
	return err
}

func (s *CatalogStore) UpdateSubcategory(sub *models.Subcategory) error {
	res, err := s.db.Exec(`
		UPDATE subcategories SET parent_id = ?, name = ?, description = ?, image = ?
		WHERE id = ?`,
		sub.ParentID, sub.Name, sub.Description, sub.Image, sub.ID)
	if isForeignKeyViolation(err) {
		return ErrInvalidReference
	}
	if err != nil {
		return fmt.Errorf("failed to update subcategory: %w", err)
	}
	return requireRowsAffected(res)
}

// DeleteSubcategory removes the subcategory and every product beneath it.
func (s *CatalogStore) DeleteSubcategory(id int64) error {
	res, err := s.db.Exec("DELETE FROM subcategories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete subcategory: %w", err)
	}
	return requireRowsAffected(res)
}

// --- Products ---

const productColumns = "id, name, price, price_from, subcategory_id, description, image, is_hit, is_new, created_at"

func scanProduct(rows *sql.Rows) (models.Product, error) {
	var p models.Product
	var createdAt int64
	err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.PriceFrom, &p.SubcategoryID,
		&p.Description, &p.Image, &p.IsHit, &p.IsNew, &createdAt)
	p.CreatedAt = fromMillis(createdAt)
	return p, err
}

func (s *CatalogStore) ListProducts() ([]models.Product, error) {
	return s.queryProducts("SELECT " + productColumns + " FROM products")
}

func (s *CatalogStore) ListProductsBySubcategory(subcategoryID int64) ([]models.Product, error) {
	return s.queryProducts("SELECT "+productColumns+" FROM products WHERE subcategory_id = ?", subcategoryID)
}

func (s *CatalogStore) queryProducts(query string, args ...any) ([]models.Product, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *CatalogStore) GetProduct(id int64) (*models.Product, error) {
	var p models.Product
	var createdAt int64
	err := s.db.QueryRow("SELECT "+productColumns+" FROM products WHERE id = ?", id).
		Scan(&p.ID, &p.Name, &p.Price, &p.PriceFrom, &p.SubcategoryID,
			&p.Description, &p.Image, &p.IsHit, &p.IsNew, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	p.CreatedAt = fromMillis(createdAt)
	return &p, nil
}

func (s *CatalogStore) CreateProduct(p *models.Product) error {
	p.CreatedAt = time.Now().UTC()
	res, err := s.db.Exec(`
		INSERT INTO products (name, price, price_from, subcategory_id, description, image, is_hit, is_new, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Price, p.PriceFrom, p.SubcategoryID, p.Description, p.Image,
		p.IsHit, p.IsNew, toMillis(p.CreatedAt))
	if isForeignKeyViolation(err) {
		return ErrInvalidReference
	}
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	p.ID, err = res.LastInsertId()
	return err
}

func (s *CatalogStore) UpdateProduct(p *models.Product) error {
	res, err := s.db.Exec(`
		UPDATE products SET name = ?, price = ?, price_from = ?, subcategory_id = ?,
			description = ?, image = ?, is_hit = ?, is_new = ?
		WHERE id = ?`,
		p.Name, p.Price, p.PriceFrom, p.SubcategoryID, p.Description, p.Image,
		p.IsHit, p.IsNew, p.ID)
	if isForeignKeyViolation(err) {
		return ErrInvalidReference
	}
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return requireRowsAffected(res)
}

func (s *CatalogStore) DeleteProduct(id int64) error {
	res, err := s.db.Exec("DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return requireRowsAffected(res)
}

func requireRowsAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
