package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func keywordsJSON() json.RawMessage {
	return json.RawMessage(`{"keywords":["join","index"]}`)
}

func TestWithRetry_CallCounts(t *testing.T) {
	down := func() MockResponse {
		return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}}
	}
	badJSON := func() MockResponse {
		return MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`oops`), Err: errors.New("not JSON")}}
	}

	tests := []struct {
		name      string
		queue     []MockResponse
		wantCalls int
		wantErr   bool
	}{
		{
			name:      "clean first attempt",
			queue:     []MockResponse{{Content: keywordsJSON()}},
			wantCalls: 1,
		},
		{
			name:      "recovers after outage",
			queue:     []MockResponse{down(), {Content: keywordsJSON()}},
			wantCalls: 2,
		},
		{
			name:      "gives up after max attempts",
			queue:     []MockResponse{down(), down(), down(), down()},
			wantCalls: 3,
			wantErr:   true,
		},
		{
			name:      "invalid output retried exactly once",
			queue:     []MockResponse{badJSON(), badJSON(), {Content: keywordsJSON()}},
			wantCalls: 2,
			wantErr:   true,
		},
		{
			name:      "invalid output then recovery",
			queue:     []MockResponse{badJSON(), {Content: keywordsJSON()}},
			wantCalls: 2,
		},
		{
			name:      "truncation not retried",
			queue:     []MockResponse{{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{"keywo`)}}},
			wantCalls: 1,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.queue...)
			p := WithRetry(mock, fastRetry())

			_, err := p.Generate(context.Background(), Request{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Generate error = %v, wantErr %v", err, tt.wantErr)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Fatalf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestWithRetry_LastErrorSurfaces(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{}})
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{})
	var truncated *ErrMaxTokensExceeded
	if !errors.As(err, &truncated) {
		t.Fatalf("error = %T, want *ErrMaxTokensExceeded", err)
	}
}

func TestWithRetry_HonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: keywordsJSON()},
	)
	p := WithRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != string(keywordsJSON()) {
		t.Fatalf("content = %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2", mock.CallCount())
	}
}

func TestWithRetry_CancelledContextStopsBackoff(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Content: keywordsJSON()},
	)
	p := WithRetry(mock, fastRetry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
}

func TestWithRetry_ModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry())
	if p.ModelID() != "mock" {
		t.Fatalf("ModelID = %q, want mock", p.ModelID())
	}
}
