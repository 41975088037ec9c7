package keywords

// Config holds extraction limits and generation parameters.
type Config struct {
	// MaxKeywords caps how many keywords are returned per note.
	MaxKeywords int

	// MaxTokens is the response token budget for the LLM call.
	MaxTokens int

	// Temperature for the LLM call. Extraction wants determinism.
	Temperature float64
}

// DefaultConfig returns the standard extraction configuration.
func DefaultConfig() Config {
	return Config{
		MaxKeywords: 10,
		MaxTokens:   512,
		Temperature: 0.0,
	}
}
