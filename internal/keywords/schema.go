package keywords

import "github.com/daehan/examly/internal/llm"

// KeywordSchema defines the JSON schema for LLM keyword extraction responses.
var KeywordSchema = &llm.Schema{
	Name:        "note-keywords",
	Description: "Technical keywords extracted from a study note",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"keywords": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Lowercase technical terms that characterize the note's subject, most relevant first",
			},
		},
		"required":             []any{"keywords"},
		"additionalProperties": false,
	},
}
