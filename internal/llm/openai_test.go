package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func openaiForTest(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg), model: "gpt-4o-mini"}
}

func completionBody(content, finishReason string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1756600000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": finishReason,
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     33,
			"completion_tokens": 12,
			"total_tokens":      45,
		},
	}
}

func TestOpenAIProvider_Generate(t *testing.T) {
	var seen struct {
		Model          string `json:"model"`
		Messages       []struct{ Role string }
		ResponseFormat *struct {
			Type       string `json:"type"`
			JSONSchema struct {
				Name string `json:"name"`
			} `json:"json_schema"`
		} `json:"response_format"`
	}

	p := openaiForTest(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&seen); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody(`{"keywords":["tcp","handshake"]}`, "stop"))
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are an indexer for a study-note archive.",
		Messages:  UserTurn("Notes on the TCP three-way handshake."),
		Schema:    extractionSchema(),
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if seen.Model != "gpt-4o-mini" {
		t.Errorf("request model = %q", seen.Model)
	}
	// System prompt travels as the first chat message.
	if len(seen.Messages) != 2 || seen.Messages[0].Role != "system" || seen.Messages[1].Role != "user" {
		t.Errorf("messages = %+v", seen.Messages)
	}
	if seen.ResponseFormat == nil || seen.ResponseFormat.Type != "json_schema" {
		t.Errorf("response_format = %+v", seen.ResponseFormat)
	} else if seen.ResponseFormat.JSONSchema.Name != "keyword-list" {
		t.Errorf("schema name = %q", seen.ResponseFormat.JSONSchema.Name)
	}

	if string(resp.Content) != `{"keywords":["tcp","handshake"]}` {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage != (Usage{InputTokens: 33, OutputTokens: 12, TotalTokens: 45}) {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q", resp.StopReason)
	}
}

func TestOpenAIProvider_TruncationMapsToMaxTokens(t *testing.T) {
	p := openaiForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody(`{"keywords":["partial`, "length"))
	})

	resp, err := p.Generate(context.Background(), Request{
		Messages:  UserTurn("long note"),
		MaxTokens: 8,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.StopReason != "max_tokens" {
		t.Errorf("stop reason = %q, want max_tokens", resp.StopReason)
	}
}

func TestOpenAIProvider_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr any
	}{
		{"rate limited", http.StatusTooManyRequests, new(*ErrRateLimit)},
		{"server error", http.StatusInternalServerError, new(*ErrProviderUnavailable)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := openaiForTest(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"type": "server_error", "message": "nope"},
				})
			})

			_, err := p.Generate(context.Background(), Request{
				Messages:  UserTurn("anything"),
				MaxTokens: 64,
			})
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.As(err, tt.wantErr) {
				t.Fatalf("error = %T (%v)", err, err)
			}
		})
	}
}

func TestNewOpenAIProvider(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o"}); err == nil {
		t.Fatal("expected error for missing API key")
	}

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "sk-test", Model: "gpt-4o-mini"})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}
	if p.ModelID() != "gpt-4o-mini" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
}
