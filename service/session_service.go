// Package service wires the submission pipeline and session lifecycle on
// top of the repositories and the provider backends.
package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"lawmate-backend/models"
	"lawmate-backend/repository"

	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

// SessionService handles chat-session lifecycle operations.
type SessionService struct {
	sessionRepo *repository.SessionRepository
	messageRepo *repository.MessageRepository
	logger      *zap.Logger
}

// SessionServiceOption is a functional option for SessionService.
type SessionServiceOption func(*SessionService)

// WithSessionRepository sets the session repository.
func WithSessionRepository(repo *repository.SessionRepository) SessionServiceOption {
	return func(s *SessionService) {
		s.sessionRepo = repo
	}
}

// WithMessageRepository sets the message repository.
func WithMessageRepository(repo *repository.MessageRepository) SessionServiceOption {
	return func(s *SessionService) {
		s.messageRepo = repo
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) SessionServiceOption {
	return func(s *SessionService) {
		s.logger = logger
	}
}

// NewSessionService creates a new session service.
func NewSessionService(opts ...SessionServiceOption) *SessionService {
	s := &SessionService{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewChat creates a session with a timestamp title, so history entries stay
// distinguishable after deletes.
func (s *SessionService) NewChat(ctx context.Context, category models.Category) (*models.Session, error) {
	if category == "" {
		category = models.CategoryAuto
	}
	title := "Chat " + time.Now().Format("02.01.2006 15:04:05")
	session, err := s.sessionRepo.Create(ctx, title, category)
	if err != nil {
		return nil, err
	}
	s.logger.Info("session created",
		zap.Int64("sessionId", session.ID),
		zap.String("category", string(category)))
	return session, nil
}

// ListSessions returns all sessions, newest-updated first.
func (s *SessionService) ListSessions(ctx context.Context) ([]*models.Session, error) {
	return s.sessionRepo.List(ctx)
}

// GetSession retrieves one session.
func (s *SessionService) GetSession(ctx context.Context, id int64) (*models.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	return session, err
}

// DeleteSession removes a session and all its messages.
func (s *SessionService) DeleteSession(ctx context.Context, id int64) error {
	if _, err := s.GetSession(ctx, id); err != nil {
		return err
	}
	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("session deleted", zap.Int64("sessionId", id))
	return nil
}

// ListMessages returns a session's messages in creation order.
func (s *SessionService) ListMessages(ctx context.Context, sessionID int64) ([]*models.Message, error) {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.messageRepo.ListBySession(ctx, sessionID)
}
