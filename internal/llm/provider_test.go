package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ServesQueueInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"keywords":["thread","lock"]}`),
			Usage:   Usage{InputTokens: 42, OutputTokens: 7, TotalTokens: 49},
		},
	)
	mock.AddResponse(MockResponse{Content: json.RawMessage(`{"keywords":[]}`)})

	first, err := mock.Generate(context.Background(), Request{Messages: UserTurn("note one")})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(first.Content) != `{"keywords":["thread","lock"]}` {
		t.Errorf("first content = %s", first.Content)
	}
	if first.Usage.InputTokens != 42 || first.Usage.TotalTokens != 49 {
		t.Errorf("first usage = %+v", first.Usage)
	}
	if first.StopReason != "end" || first.Model != "mock" {
		t.Errorf("first = model %q stop %q", first.Model, first.StopReason)
	}

	second, err := mock.Generate(context.Background(), Request{Messages: UserTurn("note two")})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(second.Content) != `{"keywords":[]}` {
		t.Errorf("second content = %s", second.Content)
	}
}

func TestMockProvider_EmptyQueueReadsAsDown(t *testing.T) {
	mock := NewMockProvider()

	_, err := mock.Generate(context.Background(), Request{})
	var down *ErrProviderUnavailable
	if !errors.As(err, &down) {
		t.Fatalf("error = %T, want *ErrProviderUnavailable", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("failed calls must still be recorded, count = %d", mock.CallCount())
	}
}

func TestMockProvider_RecordsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	req := Request{
		System:    "You are an indexer for a study-note archive.",
		Messages:  UserTurn("SQL joins: inner vs outer."),
		MaxTokens: 128,
	}
	if _, err := mock.Generate(context.Background(), req); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("Calls = %d, want 1", len(mock.Calls))
	}
	got := mock.Calls[0]
	if got.System != req.System {
		t.Errorf("System = %q", got.System)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != RoleUser {
		t.Errorf("Messages = %+v", got.Messages)
	}
}

func TestMockProvider_QueuedError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("slow down")}})

	_, err := mock.Generate(context.Background(), Request{})
	var limited *ErrRateLimit
	if !errors.As(err, &limited) {
		t.Fatalf("error = %T, want *ErrRateLimit", err)
	}
}

func TestUserTurn(t *testing.T) {
	msgs := UserTurn("classify this note")
	if len(msgs) != 1 {
		t.Fatalf("len = %d, want 1", len(msgs))
	}
	if msgs[0].Role != RoleUser || msgs[0].Content != "classify this note" {
		t.Fatalf("message = %+v", msgs[0])
	}
}

func TestPurposeRoundTrip(t *testing.T) {
	ctx := context.Background()
	if got := PurposeFrom(ctx); got != "unknown" {
		t.Fatalf("unlabeled context purpose = %q, want unknown", got)
	}
	ctx = WithPurpose(ctx, "keyword-extract")
	if got := PurposeFrom(ctx); got != "keyword-extract" {
		t.Fatalf("purpose = %q, want keyword-extract", got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic missing key", Config{Provider: "anthropic"}, true},
		{"anthropic keyed", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-a"}}, false},
		{"openai missing key", Config{Provider: "openai"}, true},
		{"gemini keyed", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g-key"}}, false},
		{"openrouter missing key", Config{Provider: "openrouter"}, true},
		{"mock never needs a key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "llama-local"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
