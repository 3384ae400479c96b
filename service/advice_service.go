package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"lawmate-backend/analysis"
	"lawmate-backend/justice"
	"lawmate-backend/llm"
	"lawmate-backend/models"
	"lawmate-backend/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmptyQuestion      = errors.New("question is empty")
	ErrSessionBusy        = errors.New("a submission is already running for this session")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrSetupInProgress    = errors.New("provider setup is still running")
)

// Submission states.
const (
	SubmissionPending   = "pending"
	SubmissionCompleted = "completed"
	SubmissionFailed    = "failed"
)

// Submission tracks one ask from acceptance to its persisted reply. Even a
// failed submission carries a persisted assistant message.
type Submission struct {
	ID        uuid.UUID       `json:"id"`
	SessionID int64           `json:"session_id"`
	Status    string          `json:"status"`
	Category  models.Category `json:"category"`
	Message   *models.Message `json:"message,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// AdviceService runs the submission pipeline: retrieval, prompt assembly,
// generation, heuristic merge, rendering and persistence.
type AdviceService struct {
	sessionRepo    *repository.SessionRepository
	messageRepo    *repository.MessageRepository
	provider       llm.Provider
	searcher       justice.Searcher
	lookbackDays   int
	maxItemsPerDay int
	gate           *SetupGate
	logger         *zap.Logger

	mu          sync.Mutex
	submissions map[uuid.UUID]*Submission
	inFlight    map[int64]uuid.UUID
}

// AdviceServiceOption is a functional option for AdviceService.
type AdviceServiceOption func(*AdviceService)

// AdviceWithSessionRepository sets the session repository.
func AdviceWithSessionRepository(repo *repository.SessionRepository) AdviceServiceOption {
	return func(s *AdviceService) {
		s.sessionRepo = repo
	}
}

// AdviceWithMessageRepository sets the message repository.
func AdviceWithMessageRepository(repo *repository.MessageRepository) AdviceServiceOption {
	return func(s *AdviceService) {
		s.messageRepo = repo
	}
}

// AdviceWithProvider sets the answer-generating backend.
func AdviceWithProvider(p llm.Provider) AdviceServiceOption {
	return func(s *AdviceService) {
		s.provider = p
	}
}

// AdviceWithSearcher sets the decision-index searcher. Without one the
// pipeline runs with no sources.
func AdviceWithSearcher(sr justice.Searcher) AdviceServiceOption {
	return func(s *AdviceService) {
		s.searcher = sr
	}
}

// AdviceWithRetrievalWindow sets the lookback window and the per-day item
// bound for retrieval.
func AdviceWithRetrievalWindow(lookbackDays, maxItemsPerDay int) AdviceServiceOption {
	return func(s *AdviceService) {
		s.lookbackDays = lookbackDays
		s.maxItemsPerDay = maxItemsPerDay
	}
}

// AdviceWithSetupGate sets the bootstrap gate.
func AdviceWithSetupGate(gate *SetupGate) AdviceServiceOption {
	return func(s *AdviceService) {
		s.gate = gate
	}
}

// AdviceWithLogger sets the logger.
func AdviceWithLogger(logger *zap.Logger) AdviceServiceOption {
	return func(s *AdviceService) {
		s.logger = logger
	}
}

// NewAdviceService creates a new advice service.
func NewAdviceService(opts ...AdviceServiceOption) *AdviceService {
	s := &AdviceService{
		logger:      zap.NewNop(),
		submissions: make(map[uuid.UUID]*Submission),
		inFlight:    make(map[int64]uuid.UUID),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AskRequest is one submitted question.
type AskRequest struct {
	SessionID int64
	Category  models.Category
	Question  string
}

// AskResult acknowledges an accepted submission.
type AskResult struct {
	SubmissionID uuid.UUID
	Category     models.Category
}

// Ask validates and accepts a submission, persists the user message, and
// runs the pipeline in the background. At most one submission per session is
// in flight; there is no cancellation, an accepted submission always runs to
// completion.
func (s *AdviceService) Ask(ctx context.Context, req AskRequest) (*AskResult, error) {
	question := analysis.NormalizeText(req.Question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	if s.gate != nil {
		switch status, message, _ := s.gate.Status(); status {
		case SetupRunning:
			return nil, ErrSetupInProgress
		case SetupFailed:
			return nil, fmt.Errorf("provider setup failed: %s", message)
		}
	}

	if _, err := s.sessionRepo.GetByID(ctx, req.SessionID); err != nil {
		return nil, ErrSessionNotFound
	}

	// The auto sentinel is resolved here; a concrete client choice is
	// authoritative.
	category := req.Category
	if category == "" || category == models.CategoryAuto || !category.Valid() {
		category = analysis.InferCategory(question)
	}

	sub := &Submission{
		ID:        uuid.New(),
		SessionID: req.SessionID,
		Status:    SubmissionPending,
		Category:  category,
	}

	s.mu.Lock()
	if _, busy := s.inFlight[req.SessionID]; busy {
		s.mu.Unlock()
		return nil, ErrSessionBusy
	}
	s.inFlight[req.SessionID] = sub.ID
	s.submissions[sub.ID] = sub
	s.mu.Unlock()

	userMsg := &models.Message{
		SessionID: req.SessionID,
		Role:      models.RoleUser,
		Content:   question,
	}
	if err := s.messageRepo.Append(ctx, userMsg); err != nil {
		s.mu.Lock()
		delete(s.inFlight, req.SessionID)
		delete(s.submissions, sub.ID)
		s.mu.Unlock()
		return nil, fmt.Errorf("failed to store user message: %w", err)
	}

	go s.process(sub, category, question)

	return &AskResult{SubmissionID: sub.ID, Category: category}, nil
}

// process runs the pipeline to completion off the request goroutine. It
// deliberately uses a fresh context: the submission outlives the HTTP
// request that started it.
func (s *AdviceService) process(sub *Submission, category models.Category, question string) {
	ctx := context.Background()
	started := time.Now()

	var decisions []models.Decision
	if s.searcher != nil {
		// Retrieval failures degrade to "no sources" inside the searcher and
		// are never surfaced to the user.
		decisions = s.searcher.SearchRecentDecisions(ctx, question, s.lookbackDays, s.maxItemsPerDay)
	}
	sources := justice.DecisionsToSources(decisions)

	userPrompt := llm.BuildUserPrompt(category, question, llm.SourcesBlock(sources))
	ans, err := s.provider.Generate(ctx, llm.SystemPrompt, userPrompt, 0.2)

	msg := &models.Message{
		SessionID: sub.SessionID,
		Role:      models.RoleAssistant,
	}

	if err != nil {
		s.logger.Error("generation failed",
			zap.Int64("sessionId", sub.SessionID),
			zap.String("provider", s.provider.Name()),
			zap.Error(err))
		// An error must never leave the conversation unsaved: persist it as
		// an assistant message with the most severe light and no sources.
		msg.Content = formatErrorHTML(err)
		msg.TrafficLight = models.LightRed
		msg.Sources = models.SourceList{}
	} else {
		heurScore := analysis.HeuristicRiskScore(question, category)
		analysis.MergeAssessment(ans, analysis.TrafficLightFromScore(heurScore), heurScore)

		msg.Content = FormatAnswerHTML(ans)
		msg.TrafficLight = ans.TrafficLight
		msg.Sources = models.SourceList(ans.Sources)
	}

	storeErr := s.messageRepo.Append(ctx, msg)
	if storeErr != nil {
		s.logger.Error("failed to store assistant message",
			zap.Int64("sessionId", sub.SessionID),
			zap.Error(storeErr))
	}

	s.mu.Lock()
	switch {
	case storeErr != nil:
		sub.Status = SubmissionFailed
		sub.Error = storeErr.Error()
	case err != nil:
		sub.Status = SubmissionFailed
		sub.Error = err.Error()
		sub.Message = msg
	default:
		sub.Status = SubmissionCompleted
		sub.Message = msg
	}
	delete(s.inFlight, sub.SessionID)
	s.mu.Unlock()

	s.logger.Info("submission finished",
		zap.Int64("sessionId", sub.SessionID),
		zap.String("status", sub.Status),
		zap.Duration("took", time.Since(started)))
}

// GetSubmission returns a snapshot of a submission's state.
func (s *AdviceService) GetSubmission(id uuid.UUID) (*Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.submissions[id]
	if !ok {
		return nil, ErrSubmissionNotFound
	}
	copy := *sub
	return &copy, nil
}
