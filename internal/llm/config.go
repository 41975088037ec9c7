package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config selects and configures the model backend.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one request including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string

	// BaseURL points the SDK at an OpenAI-compatible gateway when set.
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig shapes the backoff applied to transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks the cheapest model per backend and a conservative
// backoff.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays EXAMLY_* environment variables on the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	overlay(&cfg.Provider, "EXAMLY_LLM_PROVIDER")
	overlay(&cfg.Anthropic.APIKey, "EXAMLY_ANTHROPIC_API_KEY")
	overlay(&cfg.Anthropic.Model, "EXAMLY_ANTHROPIC_MODEL")
	overlay(&cfg.OpenAI.APIKey, "EXAMLY_OPENAI_API_KEY")
	overlay(&cfg.OpenAI.Model, "EXAMLY_OPENAI_MODEL")
	overlay(&cfg.OpenAI.BaseURL, "EXAMLY_OPENAI_BASE_URL")
	overlay(&cfg.Gemini.APIKey, "EXAMLY_GEMINI_API_KEY")
	overlay(&cfg.Gemini.Model, "EXAMLY_GEMINI_MODEL")
	overlay(&cfg.OpenRouter.APIKey, "EXAMLY_OPENROUTER_API_KEY")
	overlay(&cfg.OpenRouter.Model, "EXAMLY_OPENROUTER_MODEL")

	return cfg
}

func overlay(dst *string, envKey string) {
	if v := os.Getenv(envKey); v != "" {
		*dst = v
	}
}

// DiscoverConfig probes the vendors' own API key variables, in order of
// preference, and returns a config for the first one found. The second
// return is false when no key is set anywhere.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	switch {
	case os.Getenv("GEMINI_API_KEY") != "":
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	case os.Getenv("OPENAI_API_KEY") != "":
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	case os.Getenv("OPENROUTER_API_KEY") != "":
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = os.Getenv("OPENROUTER_API_KEY")
	default:
		return Config{}, false
	}
	return cfg, true
}

// Validate checks that the selected backend has its API key.
func (c Config) Validate() error {
	keys := map[string]string{
		"anthropic":  c.Anthropic.APIKey,
		"openai":     c.OpenAI.APIKey,
		"gemini":     c.Gemini.APIKey,
		"openrouter": c.OpenRouter.APIKey,
	}
	key, known := keys[c.Provider]
	switch {
	case c.Provider == "mock":
		return nil
	case !known:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	case key == "":
		return fmt.Errorf("EXAMLY_%s_API_KEY is required for the %s provider",
			strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}

// resolveModel maps a friendly alias to the backend model ID, passing
// unrecognized names through untouched.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
