package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

var geminiModels = map[string]string{
	"gemini-flash": "gemini-2.0-flash",
	"gemini-pro":   "gemini-2.0-pro",
}

// GeminiProvider drives the Gemini API through the genai SDK.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider builds a provider for the given config.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &GeminiProvider{
		client: client,
		model:  resolveModel(cfg.Model, geminiModels),
	}, nil
}

func (p *GeminiProvider) ModelID() string { return p.model }

func (p *GeminiProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	cfg := &genai.GenerateContentConfig{MaxOutputTokens: int32(req.MaxTokens)}
	if req.Temperature > 0 {
		temp := float32(req.Temperature)
		cfg.Temperature = &temp
	}
	if req.System != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.System}}}
	}
	if req.Schema != nil {
		// Gemini takes a typed schema rather than raw JSON Schema.
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = genaiSchema(req.Schema.Definition)
	}

	contents := make([]*genai.Content, len(req.Messages))
	for i, m := range req.Messages {
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		contents[i] = &genai.Content{Role: role, Parts: []*genai.Part{{Text: m.Content}}}
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, cfg)
	if err != nil {
		var apiErr *genai.APIError
		if errors.As(err, &apiErr) {
			return nil, statusError(apiErr.Code, err)
		}
		return nil, &ErrProviderUnavailable{Err: err}
	}

	content := json.RawMessage(result.Text())
	if err := validateResponse(req.Schema, content); err != nil {
		return nil, err
	}

	resp := &Response{
		Content:    content,
		Model:      p.model,
		StopReason: "end",
	}
	if len(result.Candidates) > 0 && result.Candidates[0].FinishReason == "MAX_TOKENS" {
		resp.StopReason = "max_tokens"
	}
	if meta := result.UsageMetadata; meta != nil {
		resp.Usage = Usage{
			InputTokens:  int(meta.PromptTokenCount),
			OutputTokens: int(meta.CandidatesTokenCount),
			TotalTokens:  int(meta.TotalTokenCount),
		}
	}
	return resp, nil
}

// genaiSchema translates a JSON Schema definition map into the SDK's typed
// schema. Only the subset the extraction schemas use is covered: object,
// array, scalar types, required and enum.
func genaiSchema(def map[string]any) *genai.Schema {
	out := &genai.Schema{}

	switch def["type"] {
	case "object":
		out.Type = genai.TypeObject
	case "array":
		out.Type = genai.TypeArray
	case "integer":
		out.Type = genai.TypeInteger
	case "number":
		out.Type = genai.TypeNumber
	case "boolean":
		out.Type = genai.TypeBoolean
	default:
		out.Type = genai.TypeString
	}

	if desc, ok := def["description"].(string); ok {
		out.Description = desc
	}
	if props, ok := def["properties"].(map[string]any); ok {
		out.Properties = make(map[string]*genai.Schema, len(props))
		for name, raw := range props {
			if prop, ok := raw.(map[string]any); ok {
				out.Properties[name] = genaiSchema(prop)
			}
		}
	}
	if items, ok := def["items"].(map[string]any); ok {
		out.Items = genaiSchema(items)
	}
	for _, raw := range asStrings(def["required"]) {
		out.Required = append(out.Required, raw)
	}
	for _, raw := range asStrings(def["enum"]) {
		out.Enum = append(out.Enum, raw)
	}
	return out
}

func asStrings(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
