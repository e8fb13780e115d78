package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ContactMessage is one stored contact form submission.
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// SaveContactMessage stores a contact form submission and returns its ID.
func (db *DB) SaveContactMessage(ctx context.Context, name, email, subject, message string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.pool.Exec(ctx,
		`INSERT INTO contact_messages (id, name, email, subject, message)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, name, email, subject, message,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save contact message: %w", err)
	}
	return id, nil
}

// ListContactMessages returns the most recent contact messages, newest
// first, up to limit.
func (db *DB) ListContactMessages(ctx context.Context, limit int) ([]ContactMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, email, subject, message, created_at
		 FROM contact_messages
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []ContactMessage
	for rows.Next() {
		var m ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contact messages: %w", err)
	}
	return messages, nil
}
