package store

import (
	"fmt"
	"time"

	"github.com/matthieukhl/giftlab/internal/database"
	"github.com/matthieukhl/giftlab/internal/models"
)

// ReviewStore persists per-product customer reviews. There is no
// de-duplication: a customer may leave any number of reviews. Averages are
// derived by callers, never stored.
type ReviewStore struct {
	db *database.DB
}

func NewReviewStore(db *database.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

func (s *ReviewStore) CreateReview(r *models.Review) error {
	if r.Rating < models.MinRating || r.Rating > models.MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrValidation, models.MinRating, models.MaxRating)
	}
	r.CreatedAt = time.Now().UTC()
	res, err := s.db.Exec(`
		INSERT INTO reviews (product_id, customer_name, rating, comment, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		r.ProductID, r.CustomerName, r.Rating, r.Comment, toMillis(r.CreatedAt))
	if isForeignKeyViolation(err) {
		return ErrInvalidReference
	}
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	r.ID, err = res.LastInsertId()
	return err
}

func (s *ReviewStore) ListByProduct(productID int64) ([]models.Review, error) {
	rows, err := s.db.Query(`
		SELECT id, product_id, customer_name, rating, comment, created_at
		FROM reviews WHERE product_id = ?
		ORDER BY created_at DESC, id DESC`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var r models.Review
		var createdAt int64
		if err := rows.Scan(&r.ID, &r.ProductID, &r.CustomerName, &r.Rating, &r.Comment, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		r.CreatedAt = fromMillis(createdAt)
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}
