package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func anthropicForTest(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func TestAnthropicProvider_Generate(t *testing.T) {
	var seen struct {
		Model  string `json:"model"`
		System []struct {
			Text string `json:"text"`
		} `json:"system"`
		Messages []struct {
			Role string `json:"role"`
		} `json:"messages"`
	}

	p := anthropicForTest(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&seen); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_01",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": `{"keywords":["normalization","3nf"]}`},
			},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 61, "output_tokens": 14},
		})
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are an indexer for a study-note archive.",
		Messages:  UserTurn("Notes on database normalization."),
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if seen.Model != "claude-haiku-4-5-20251001" {
		t.Errorf("request model = %q", seen.Model)
	}
	if len(seen.System) != 1 || seen.System[0].Text == "" {
		t.Errorf("system prompt not forwarded: %+v", seen.System)
	}
	if len(seen.Messages) != 1 || seen.Messages[0].Role != "user" {
		t.Errorf("messages not forwarded: %+v", seen.Messages)
	}

	if string(resp.Content) != `{"keywords":["normalization","3nf"]}` {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage != (Usage{InputTokens: 61, OutputTokens: 14, TotalTokens: 75}) {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want end", resp.StopReason)
	}
}

func TestAnthropicProvider_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr any
	}{
		{"rate limited", http.StatusTooManyRequests, new(*ErrRateLimit)},
		{"server error", http.StatusInternalServerError, new(*ErrProviderUnavailable)},
		{"bad gateway", http.StatusBadGateway, new(*ErrProviderUnavailable)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := anthropicForTest(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"type":  "error",
					"error": map[string]any{"type": "api_error", "message": "nope"},
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

func TestAnthropicProvider_SchemaViolationRejected(t *testing.T) {
	p := anthropicForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_02",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": `{"topics":["wrong field"]}`},
			},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 10, "output_tokens": 5},
		})
	})

	_, err := p.Generate(context.Background(), Request{
		Messages:  UserTurn("extract keywords"),
		Schema:    extractionSchema(),
		MaxTokens: 64,
	})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %T, want *ErrInvalidResponse", err)
	}
}

func TestAnthropicModelAliases(t *testing.T) {
	tests := []struct{ in, want string }{
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-opus-x", "claude-opus-x"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.in, anthropicModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
