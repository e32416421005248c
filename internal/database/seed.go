package database

import (
	"fmt"
	"time"
)

type seedCategory struct {
	name, description string
	hasComments       bool
}

type seedSubcategory struct {
	parentID          int64
	name, description string
}

type seedProduct struct {
	name          string
	price         float64
	priceFrom     bool
	subcategoryID int64
	description   string
	isHit, isNew  bool
}

var seedCategories = []seedCategory{
	{"Masterclasses", "Hands-on craft and cooking kits", false},
	{"Birthdays", "Birthday party programs", true},
	{"Souvenirs", "Custom souvenir production", false},
	{"Gifts", "Gifts and keepsakes", false},
}

var seedSubcategories = []seedSubcategory{
	{1, "Cooking kits", "Cooking masterclass kits for all ages"},
	{1, "Technology kits", "Technical and engineering masterclass kits"},
	{2, "Party programs", "Hosted birthday party programs"},
	{3, "Textile", "Textile souvenirs"},
	{3, "Print", "Printed souvenirs"},
	{4, "Puzzles", "Puzzles and logic games"},
	{4, "Stationery", "Stationery goods"},
}

var seedProducts = []seedProduct{
	{"Holiday ornaments kit", 350, false, 1, "Kit for painting a set of holiday ornaments", true, true},
	{"Gingerbread house kit", 500, false, 1, "Kit for building and decorating a gingerbread house", false, false},
	{"Chocolate cookie kit", 400, false, 1, "Kit for baking chocolate cookies", true, false},
	{"Cinnamon roll kit", 400, false, 1, "Kit for baking cinnamon rolls", true, true},
	{"Cooking school set", 3900, false, 1, "Complete set for a home cooking school", true, false},
	{"Glowing house kit", 400, false, 2, "Kit for assembling a glowing house model", true, false},
	{"Wizard school party", 14000, true, 3, "Wizard-themed birthday program. Price depends on the number of guests and selected options.", true, false},
	{"Printed mug", 350, false, 5, "Mug with a custom print", true, false},
	{"Phone stand", 400, false, 6, "Phone stand with a custom design", false, true},
	{"Walnut cookie kit", 350, false, 1, "Kit for baking walnut-shaped cookies", false, true},
}

// Seed populates the demo catalog. It is a no-op when categories already
// exist, so init-db stays idempotent.
func (db *DB) Seed() error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("failed to check existing categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC().UnixMilli()

	for _, c := range seedCategories {
		if _, err := db.Exec(
			"INSERT INTO categories (name, description, has_comments, created_at) VALUES (?, ?, ?, ?)",
			c.name, c.description, c.hasComments, now,
		); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.name, err)
		}
	}

	for _, s := range seedSubcategories {
		if _, err := db.Exec(
			"INSERT INTO subcategories (parent_id, name, description, created_at) VALUES (?, ?, ?, ?)",
			s.parentID, s.name, s.description, now,
		); err != nil {
			return fmt.Errorf("failed to seed subcategory %q: %w", s.name, err)
		}
	}

	for _, p := range seedProducts {
		if _, err := db.Exec(
			"INSERT INTO products (name, price, price_from, subcategory_id, description, is_hit, is_new, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			p.name, p.price, p.priceFrom, p.subcategoryID, p.description, p.isHit, p.isNew, now,
		); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.name, err)
		}
	}

	return nil
}
