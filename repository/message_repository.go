package repository

import (
	"context"
	"database/sql"

	"lawmate-backend/models"
)

// MessageRepository handles database operations for chat messages.
type MessageRepository struct {
	db *sql.DB
}

// NewMessageRepository creates a new message repository.
func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Append inserts a message and bumps the session's updated_at. Messages are
// append-only; there is no update path.
func (r *MessageRepository) Append(ctx context.Context, m *models.Message) error {
	m.CreatedAt = utcNowISO()

	var light interface{}
	if m.TrafficLight != "" {
		light = string(m.TrafficLight)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO messages (session_id, role, content, traffic_light, sources_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.SessionID, m.Role, m.Content, light, m.Sources, m.CreatedAt)
	if err != nil {
		return err
	}
	if m.ID, err = res.LastInsertId(); err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE sessions SET updated_at = ? WHERE id = ?`, utcNowISO(), m.SessionID)
	return err
}

// ListBySession retrieves a session's messages in creation order.
func (r *MessageRepository) ListBySession(ctx context.Context, sessionID int64) ([]*models.Message, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, role, content, traffic_light, sources_json, created_at
		 FROM messages
		 WHERE session_id = ?
		 ORDER BY id ASC`,
		sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		m := &models.Message{}
		var light sql.NullString
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content,
			&light, &m.Sources, &m.CreatedAt); err != nil {
			return nil, err
		}
		if light.Valid {
			m.TrafficLight = models.TrafficLight(light.String)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
