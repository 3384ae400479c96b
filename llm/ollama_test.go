package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lawmate-backend/models"
)

const validAnswerJSON = `{
	"traffic_light": "yellow",
	"risk_score": 40,
	"summary": "Shrnutí.",
	"what_to_do_now": ["krok"],
	"what_to_prepare": [],
	"relevant_laws": [],
	"important_deadlines": [],
	"when_to_contact_lawyer": [],
	"notes": [],
	"sources": []
}`

func ollamaServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("request path = %q, want /api/chat", r.URL.Path)
		}
		var req ollamaChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode chat request: %v", err)
		}
		if req.Stream {
			t.Error("chat request has stream enabled")
		}
		resp := map[string]interface{}{
			"message": map[string]string{"content": content},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestOllamaGenerateExtractsJSON(t *testing.T) {
	// Local models tend to wrap the JSON object in prose.
	srv := ollamaServer(t, "Tady je odpověď:\n"+validAnswerJSON+"\nSnad pomůže.")
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "", "llama3.1:8b", nil)
	ans, err := p.Generate(context.Background(), SystemPrompt, "otázka", 0.2)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if ans.TrafficLight != models.LightYellow || ans.RiskScore != 40 {
		t.Errorf("answer = (%q, %d), want (yellow, 40)", ans.TrafficLight, ans.RiskScore)
	}
}

func TestOllamaGenerateNoJSONObject(t *testing.T) {
	srv := ollamaServer(t, "Bohužel nemohu odpovědět.")
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "", "llama3.1:8b", nil)
	_, err := p.Generate(context.Background(), "", "otázka", 0.2)

	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Kind != ErrKindBadResponse {
		t.Errorf("error = %v, want a bad_response provider error", err)
	}
}

func TestOllamaGenerateTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "", "missing-model", nil)
	_, err := p.Generate(context.Background(), "", "otázka", 0.2)

	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Kind != ErrKindTransport {
		t.Errorf("error = %v, want a transport provider error", err)
	}
}

func TestOllamaSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprintf(w, `{"message":{"content":%q}}`, validAnswerJSON)
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "secret", "llama3.1:8b", nil)
	if _, err := p.Generate(context.Background(), "", "otázka", 0.2); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer secret")
	}
}

func TestOllamaAPIURL(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"http://localhost:11434", "http://localhost:11434/api/chat"},
		{"http://localhost:11434/", "http://localhost:11434/api/chat"},
		{"https://ollama.com/api", "https://ollama.com/api/chat"},
	}
	for _, tt := range tests {
		if got := ollamaAPIURL(tt.base, "/chat"); got != tt.want {
			t.Errorf("ollamaAPIURL(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}
