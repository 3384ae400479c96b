package llm

import (
	"context"
	"strings"

	"lawmate-backend/models"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiProvider is the hosted backend. It requests a JSON response from the
// model and validates it against the answer schema.
type GeminiProvider struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiProvider creates the hosted provider. A missing API key fails
// fast with a configuration error naming the setting.
func NewGeminiProvider(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, configError("GEMINI_API_KEY is not set")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &ProviderError{Kind: ErrKindConfig, Message: "failed to create Gemini client", Err: err}
	}

	return &GeminiProvider{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Generate calls the hosted model and parses its JSON reply.
func (p *GeminiProvider) Generate(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (*models.Answer, error) {
	m := p.client.GenerativeModel(p.model)
	m.SetTemperature(float32(temperature))
	m.ResponseMIMEType = "application/json"
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return nil, transportError(err, "Gemini request failed")
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, badResponseError(nil, "Gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	ans, err := models.ParseAnswer([]byte(sb.String()))
	if err != nil {
		p.logger.Warn("Gemini reply failed validation", zap.Error(err))
		return nil, badResponseError(err, "Gemini did not return a valid answer")
	}
	return ans, nil
}
