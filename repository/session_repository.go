package repository

import (
	"context"
	"database/sql"
	"time"

	"lawmate-backend/models"
)

// utcNowISO is the timestamp format stored in both tables: UTC ISO-8601
// with second precision.
func utcNowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05")
}

// SessionRepository handles database operations for chat sessions.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session.
func (r *SessionRepository) Create(ctx context.Context, title string, category models.Category) (*models.Session, error) {
	now := utcNowISO()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (title, category, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		title, string(category), now, now)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Session{
		ID:        id,
		Title:     title,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetByID retrieves a session by ID.
func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	session := &models.Session{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, category, created_at, updated_at FROM sessions WHERE id = ?`, id).
		Scan(&session.ID, &session.Title, &session.Category, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// List retrieves all sessions, newest-updated first.
func (r *SessionRepository) List(ctx context.Context) ([]*models.Session, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, category, created_at, updated_at
		 FROM sessions
		 ORDER BY updated_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		session := &models.Session{}
		if err := rows.Scan(&session.ID, &session.Title, &session.Category,
			&session.CreatedAt, &session.UpdatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// Delete removes a session; its messages go with it via the FK cascade.
func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	return err
}
