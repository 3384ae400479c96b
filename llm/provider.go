// Package llm holds the answer-generation backends. Every provider turns a
// system prompt and a user prompt into a validated structured answer or
// fails with a classified provider error.
package llm

import (
	"context"
	"fmt"

	"lawmate-backend/config"
	"lawmate-backend/models"

	"go.uber.org/zap"
)

// ErrorKind classifies provider failures.
type ErrorKind string

const (
	// ErrKindConfig is a missing or unusable setting, caught at construction.
	ErrKindConfig ErrorKind = "config"
	// ErrKindTransport is a network failure or a non-200 status.
	ErrKindTransport ErrorKind = "transport"
	// ErrKindBadResponse is an un-parseable or schema-invalid backend reply.
	ErrKindBadResponse ErrorKind = "bad_response"
)

// ProviderError is any failure of an answer-generating backend.
type ProviderError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func configError(format string, args ...interface{}) *ProviderError {
	return &ProviderError{Kind: ErrKindConfig, Message: fmt.Sprintf(format, args...)}
}

func transportError(err error, format string, args ...interface{}) *ProviderError {
	return &ProviderError{Kind: ErrKindTransport, Message: fmt.Sprintf(format, args...), Err: err}
}

func badResponseError(err error, format string, args ...interface{}) *ProviderError {
	return &ProviderError{Kind: ErrKindBadResponse, Message: fmt.Sprintf(format, args...), Err: err}
}

// Provider generates a validated structured answer from a prompt pair.
type Provider interface {
	Name() string
	Generate(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (*models.Answer, error)
}

// NewProvider builds the backend selected by configuration. Missing required
// credentials fail here, not at first use.
func NewProvider(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) (Provider, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		return NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	case config.ProviderOllama:
		return NewOllamaProvider(cfg.OllamaBaseURL, cfg.OllamaAPIKey, cfg.OllamaModel, logger), nil
	case config.ProviderMock, "":
		return NewMockProvider(), nil
	default:
		return nil, configError("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
}
