package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/matthieukhl/giftlab/internal/database"
	"github.com/matthieukhl/giftlab/internal/models"
)

// UserStore manages shop accounts. Password is always the bcrypt hash;
// hashing itself lives in the auth service.
type UserStore struct {
	db *database.DB
}

func NewUserStore(db *database.DB) *UserStore {
	return &UserStore{db: db}
}

// CreateUser persists a new account. A duplicate email returns ErrConflict.
func (s *UserStore) CreateUser(u *models.User) error {
	u.CreatedAt = time.Now().UTC()
	res, err := s.db.Exec(`
		INSERT INTO users (email, password, name, is_admin, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		u.Email, u.Password, u.Name, u.IsAdmin, toMillis(u.CreatedAt))
	if isUniqueViolation(err) {
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	u.ID, err = res.LastInsertId()
	return err
}

func (s *UserStore) GetUserByEmail(email string) (*models.User, error) {
	return s.getUser("SELECT id, email, password, name, is_admin, created_at FROM users WHERE email = ?", email)
}

func (s *UserStore) GetUserByID(id int64) (*models.User, error) {
	return s.getUser("SELECT id, email, password, name, is_admin, created_at FROM users WHERE id = ?", id)
}

func (s *UserStore) getUser(query string, arg any) (*models.User, error) {
	var u models.User
	var createdAt int64
	err := s.db.QueryRow(query, arg).
		Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.IsAdmin, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	u.CreatedAt = fromMillis(createdAt)
	return &u, nil
}

// SetAdmin flips the admin flag on an existing account.
func (s *UserStore) SetAdmin(id int64, admin bool) error {
	res, err := s.db.Exec("UPDATE users SET is_admin = ? WHERE id = ?", admin, id)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return requireRowsAffected(res)
}
