package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelAliases(t *testing.T) {
	tests := []struct{ in, want string }{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.in, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenaiSchema_KeywordList(t *testing.T) {
	s := genaiSchema(extractionSchema().Definition)

	if s.Type != genai.TypeObject {
		t.Fatalf("type = %v, want object", s.Type)
	}
	kw := s.Properties["keywords"]
	if kw == nil || kw.Type != genai.TypeArray {
		t.Fatalf("keywords property = %+v", kw)
	}
	if kw.Items == nil || kw.Items.Type != genai.TypeString {
		t.Fatalf("keywords items = %+v", kw.Items)
	}
	if len(s.Required) != 1 || s.Required[0] != "keywords" {
		t.Errorf("required = %v", s.Required)
	}

	conf := s.Properties["confidence"]
	if conf == nil || len(conf.Enum) != 3 {
		t.Fatalf("confidence enum = %+v", conf)
	}
}

func TestGenaiSchema_NestedCategory(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "a classified note",
		"properties": map[string]any{
			"category": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"large":      map[string]any{"type": "string"},
					"difficulty": map[string]any{"type": "integer"},
				},
				"required": []any{"large"},
			},
		},
		"required": []any{"category"},
	}

	s := genaiSchema(def)
	if s.Description != "a classified note" {
		t.Errorf("description = %q", s.Description)
	}
	cat := s.Properties["category"]
	if cat == nil || cat.Type != genai.TypeObject {
		t.Fatalf("category = %+v", cat)
	}
	if cat.Properties["difficulty"].Type != genai.TypeInteger {
		t.Errorf("difficulty type = %v", cat.Properties["difficulty"].Type)
	}
	if len(cat.Required) != 1 || cat.Required[0] != "large" {
		t.Errorf("nested required = %v", cat.Required)
	}
}

func TestGenaiSchema_UnknownTypeDefaultsToString(t *testing.T) {
	s := genaiSchema(map[string]any{"type": "date-time"})
	if s.Type != genai.TypeString {
		t.Errorf("type = %v, want string fallback", s.Type)
	}
}

func TestAsStrings(t *testing.T) {
	if got := asStrings([]any{"a", 1, "b"}); len(got) != 2 {
		t.Errorf("asStrings = %v, want the two strings", got)
	}
	if got := asStrings("not a list"); got != nil {
		t.Errorf("asStrings = %v, want nil", got)
	}
	if got := asStrings(nil); got != nil {
		t.Errorf("asStrings(nil) = %v, want nil", got)
	}
}
