package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// extractionSchema mirrors the shape the keyword extractor requests: a
// required string array plus an optional confidence field.
func extractionSchema() *Schema {
	return &Schema{
		Name:        "keyword-list",
		Description: "Keywords extracted from a study note",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"keywords": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"confidence": map[string]any{
					"type":    "string",
					"enum":    []any{"low", "medium", "high"},
					"minimum": 0,
				},
			},
			"required":             []any{"keywords"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"all fields", `{"keywords":["b-tree","index"],"confidence":"high"}`, false},
		{"required only", `{"keywords":[]}`, false},
		{"missing required", `{"confidence":"low"}`, true},
		{"wrong item type", `{"keywords":[1,2]}`, true},
		{"enum violation", `{"keywords":["x"],"confidence":"certain"}`, true},
		{"extra property", `{"keywords":["x"],"source":"note"}`, true},
		{"not json", `keywords: x`, true},
		{"empty output", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(extractionSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("error = %T, want *ErrInvalidResponse", err)
			}
			if string(invalid.Content) != tt.raw {
				t.Errorf("Content = %s, want the offending output", invalid.Content)
			}
		})
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`plain text, not JSON`)); err != nil {
		t.Fatalf("nil schema should accept raw text, got %v", err)
	}
}

func TestValidateResponse_NestedDefinition(t *testing.T) {
	schema := &Schema{
		Name: "classified-note",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"category": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"large": map[string]any{"type": "string"},
						"small": map[string]any{"type": "string"},
					},
					"required": []any{"large"},
				},
				"keywords": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"category", "keywords"},
		},
	}

	ok := json.RawMessage(`{"category":{"large":"database","small":"joins"},"keywords":["inner","outer"]}`)
	if err := validateResponse(schema, ok); err != nil {
		t.Fatalf("valid nested object rejected: %v", err)
	}

	missing := json.RawMessage(`{"category":{"small":"joins"},"keywords":[]}`)
	if err := validateResponse(schema, missing); err == nil {
		t.Fatal("expected error for missing nested required field")
	}
}

func TestValidateResponse_CacheReusesCompiledSchema(t *testing.T) {
	schema := extractionSchema()
	for range 3 {
		if err := validateResponse(schema, json.RawMessage(`{"keywords":["sort"]}`)); err != nil {
			t.Fatalf("repeated validation failed: %v", err)
		}
	}

	compiled.RLock()
	_, ok := compiled.byName[schema.Name]
	compiled.RUnlock()
	if !ok {
		t.Fatalf("schema %q not cached after validation", schema.Name)
	}
}
