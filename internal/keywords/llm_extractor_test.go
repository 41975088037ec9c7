package keywords

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/daehan/examly/internal/llm"
)

func TestExtract_NormalizesAndTruncates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"keywords":["List"," MAP ","set","list","queue"]}`)},
	)
	cfg := DefaultConfig()
	cfg.MaxKeywords = 3
	e := New(mock, cfg)

	got, err := e.Extract(context.Background(), "Java collections overview.")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	want := []string{"list", "map", "set"}
	if len(got) != len(want) {
		t.Fatalf("keywords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keywords[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtract_SendsSchemaAndPurpose(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"keywords":["index"]}`)},
	)
	e := New(mock, DefaultConfig())

	if _, err := e.Extract(context.Background(), "B-tree indexes."); err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "note-keywords" {
		t.Errorf("schema = %+v, want note-keywords", req.Schema)
	}
	if req.System == "" {
		t.Error("system prompt missing")
	}
}

func TestExtract_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	e := New(mock, DefaultConfig())

	_, err := e.Extract(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %T, want *llm.ErrProviderUnavailable", err)
	}
}

func TestExtract_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json`)},
	)
	e := New(mock, DefaultConfig())

	if _, err := e.Extract(context.Background(), "anything"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestExtract_EmptyKeywordList(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"keywords":[]}`)},
	)
	e := New(mock, DefaultConfig())

	got, err := e.Extract(context.Background(), "short note")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("keywords = %v, want empty", got)
	}
}
