package store

import (
	"fmt"
	"time"

	"github.com/matthieukhl/giftlab/internal/database"
	"github.com/matthieukhl/giftlab/internal/models"
)

// ContactStore persists contact-form inquiries. Messages are durably stored
// before any delivery attempt; outward relay is the caller's concern.
type ContactStore struct {
	db *database.DB
}

func NewContactStore(db *database.DB) *ContactStore {
	return &ContactStore{db: db}
}

func (s *ContactStore) CreateMessage(m *models.ContactMessage) error {
	m.CreatedAt = time.Now().UTC()
	res, err := s.db.Exec(`
		INSERT INTO contact_messages (name, email, phone, message, attachment, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.Name, m.Email, m.Phone, m.Message, m.Attachment, toMillis(m.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	m.ID, err = res.LastInsertId()
	return err
}

func (s *ContactStore) ListMessages() ([]models.ContactMessage, error) {
	rows, err := s.db.Query(`
		SELECT id, name, email, phone, message, attachment, created_at
		FROM contact_messages ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		var m models.ContactMessage
		var createdAt int64
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message, &m.Attachment, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		m.CreatedAt = fromMillis(createdAt)
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
