package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"lawmate-backend/models"

	"go.uber.org/zap"
)

// OllamaProvider is the self-hosted (or ollama.com cloud) backend. Models
// behind it often wrap the JSON in prose, so the reply is scanned for the
// outermost braces before parsing.
type OllamaProvider struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewOllamaProvider creates the local-model provider. No key is required for
// a localhost server; cloud reachability is checked by the bootstrap step.
func NewOllamaProvider(baseURL, apiKey, model string, logger *zap.Logger) *OllamaProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OllamaProvider{
		baseURL:    strings.TrimSpace(baseURL),
		apiKey:     strings.TrimSpace(apiKey),
		model:      model,
		httpClient: &http.Client{Timeout: 120 * time.Second},
		logger:     logger,
	}
}

func (p *OllamaProvider) Name() string {
	return "ollama"
}

// ollamaAPIURL joins an endpoint onto a base URL that may or may not already
// end with /api (localhost vs. ollama.com styles).
func ollamaAPIURL(baseURL, endpoint string) string {
	base := strings.TrimRight(baseURL, "/")
	if strings.HasSuffix(base, "/api") {
		return base + endpoint
	}
	return base + "/api" + endpoint
}

type ollamaChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string              `json:"model"`
	Messages []ollamaChatMessage `json:"messages"`
	Options  ollamaChatOptions   `json:"options"`
	Stream   bool                `json:"stream"`
}

type ollamaChatOptions struct {
	Temperature float64 `json:"temperature"`
}

type ollamaChatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

// Generate calls /api/chat and extracts the JSON object from the reply.
func (p *OllamaProvider) Generate(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (*models.Answer, error) {
	reqBody := ollamaChatRequest{
		Model: p.model,
		Messages: []ollamaChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Options: ollamaChatOptions{Temperature: temperature},
		Stream:  false,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, badResponseError(err, "failed to marshal chat request")
	}

	url := ollamaAPIURL(p.baseURL, "/chat")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, transportError(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err, "Ollama request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err, "failed to read Ollama response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, transportError(nil, "Ollama returned %d: %s", resp.StatusCode, snippet(body, 500))
	}

	var chatResp ollamaChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, badResponseError(err, "failed to parse Ollama response")
	}

	content := chatResp.Message.Content
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end <= start {
		return nil, badResponseError(nil, "Ollama reply contains no JSON object; try a different model")
	}

	ans, err := models.ParseAnswer([]byte(content[start : end+1]))
	if err != nil {
		p.logger.Warn("Ollama reply failed validation", zap.Error(err))
		return nil, badResponseError(err, "Ollama did not return a valid answer")
	}
	return ans, nil
}

func snippet(body []byte, max int) string {
	s := string(body)
	if len(s) > max {
		return s[:max]
	}
	return s
}
