package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       OpenRouterConfig
		wantErr   bool
		wantModel string
	}{
		{
			name:    "missing API key",
			cfg:     OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
			wantErr: true,
		},
		{
			name:      "default base URL",
			cfg:       OpenRouterConfig{APIKey: "sk-or-1", Model: "google/gemini-2.0-flash-exp"},
			wantModel: "google/gemini-2.0-flash-exp",
		},
		{
			name: "custom base URL",
			cfg: OpenRouterConfig{
				APIKey:  "sk-or-1",
				Model:   "meta-llama/llama-3-8b",
				BaseURL: "https://gateway.example/v1",
			},
			wantModel: "meta-llama/llama-3-8b",
		},
		{
			// Namespaced IDs must never go through alias resolution, even
			// ones that collide with an alias prefix.
			name:      "namespaced model passes through",
			cfg:       OpenRouterConfig{APIKey: "sk-or-1", Model: "anthropic/claude-3-haiku"},
			wantModel: "anthropic/claude-3-haiku",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewOpenRouterProvider error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if p.ModelID() != tt.wantModel {
				t.Errorf("ModelID = %q, want %q", p.ModelID(), tt.wantModel)
			}
		})
	}
}
