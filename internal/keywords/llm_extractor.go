package keywords

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/daehan/examly/internal/llm"
	"github.com/daehan/examly/internal/tagmatch"
)

// LLMExtractor implements Extractor using the LLM provider.
type LLMExtractor struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMExtractor with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMExtractor {
	return &LLMExtractor{provider: provider, config: cfg}
}

// keywordOutput is the raw LLM response before normalization.
type keywordOutput struct {
	Keywords []string `json:"keywords"`
}

// Extract returns normalized keywords for the given note text.
func (e *LLMExtractor) Extract(ctx context.Context, noteText string) ([]string, error) {
	ctx = llm.WithPurpose(ctx, "keyword-extract")

	req := llm.Request{
		System:      systemPrompt,
		Messages:    llm.UserTurn(buildUserMessage(noteText, e.config)),
		Schema:      KeywordSchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("keyword extraction failed: %w", err)
	}

	var raw keywordOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	// Lowercase, trim, and dedup while preserving relevance order.
	kws := tagmatch.Normalize(raw.Keywords)
	if e.config.MaxKeywords > 0 && len(kws) > e.config.MaxKeywords {
		kws = kws[:e.config.MaxKeywords]
	}
	return kws, nil
}
