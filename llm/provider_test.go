package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lawmate-backend/config"
	"lawmate-backend/models"
)

func TestMockProviderAnswerIsValid(t *testing.T) {
	p := NewMockProvider()
	ans, err := p.Generate(context.Background(), SystemPrompt, "otázka", 0.2)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if err := ans.Validate(); err != nil {
		t.Errorf("mock answer invalid: %v", err)
	}
	if ans.TrafficLight != models.LightYellow || ans.RiskScore != 45 {
		t.Errorf("mock answer = (%q, %d), want (yellow, 45)", ans.TrafficLight, ans.RiskScore)
	}
}

func TestMockProviderCopiesAnswer(t *testing.T) {
	p := NewMockProvider()
	first, _ := p.Generate(context.Background(), "", "", 0)
	first.WhatToDoNow[0] = "changed"
	second, _ := p.Generate(context.Background(), "", "", 0)
	if second.WhatToDoNow[0] == "changed" {
		t.Error("mock answer shares state between calls")
	}
}

func TestNewGeminiProviderRequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), "", "gemini-1.5-flash", nil)
	if err == nil {
		t.Fatal("expected an error for a missing API key")
	}
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Kind != ErrKindConfig {
		t.Errorf("error = %v, want a config provider error", err)
	}
	if !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Errorf("error %q does not name the missing setting", err)
	}
}

func TestNewProviderSelection(t *testing.T) {
	tests := []struct {
		provider string
		wantName string
		wantErr  bool
	}{
		{"mock", "mock", false},
		{"", "mock", false},
		{"ollama", "ollama", false},
		{"nonsense", "", true},
	}
	for _, tt := range tests {
		cfg := &config.AppConfig{
			LLMProvider:   tt.provider,
			OllamaBaseURL: "http://localhost:11434",
			OllamaModel:   "llama3.1:8b",
		}
		p, err := NewProvider(context.Background(), cfg, nil)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NewProvider(%q) expected an error", tt.provider)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewProvider(%q) error = %v", tt.provider, err)
			continue
		}
		if p.Name() != tt.wantName {
			t.Errorf("NewProvider(%q).Name() = %q, want %q", tt.provider, p.Name(), tt.wantName)
		}
	}
}
