// Package llm abstracts the hosted language models used for keyword
// extraction. A Provider takes one Request and returns schema-validated
// JSON; everything else (retry, event logging, provider selection) is
// layered on top as decorators.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is implemented by every model backend, including the mock.
type Provider interface {
	// Generate runs a single completion. When Request.Schema is set the
	// returned Content is JSON already validated against that schema;
	// otherwise Content carries the raw model text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Role marks who authored a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation sent to the model.
type Message struct {
	Role    Role
	Content string
}

// UserTurn wraps a single user message. Keyword extraction is single-turn,
// so most requests are built this way.
func UserTurn(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}

// Request carries everything a backend needs for one completion.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far, oldest first.
	Messages []Message

	// Schema, when non-nil, switches the backend to its native structured
	// output mechanism and gates the response through validateResponse.
	Schema *Schema

	// MaxTokens caps the completion length.
	MaxTokens int

	// Temperature in [0,1]; the zero value means deterministic sampling.
	Temperature float64
}

// Schema names a JSON Schema the model output must satisfy.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "note-keywords". Backends use
	// it as the tool or response-format name; validateResponse uses it as
	// the compile-cache key, so it must be stable per definition.
	Name string

	// Description tells the model what the object represents.
	Description string

	// Definition is the schema itself, as a plain map.
	Definition map[string]any
}

// Response is the normalized result shared by all backends.
type Response struct {
	// Content is validated JSON when the request carried a Schema, raw
	// model text otherwise.
	Content json.RawMessage

	// Usage is the token accounting reported by the backend.
	Usage Usage

	// Model is the model that actually served the request, which can
	// differ from the configured one behind routing gateways.
	Model string

	// StopReason is normalized across backends to "end" or "max_tokens".
	StopReason string
}

// Usage counts tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type purposeKeyType struct{}

var purposeKey purposeKeyType

// WithPurpose labels the context with what the request is for. The logging
// decorator stores the label on the event, e.g. "keyword-extract".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose label, or "unknown" when none was attached.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey).(string); ok {
		return p
	}
	return "unknown"
}
