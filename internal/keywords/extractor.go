// Package keywords extracts classification keywords from free-form study
// notes using an LLM provider.
package keywords

import "context"

// Extractor produces keywords for a note's text.
type Extractor interface {
	// Extract returns normalized keywords for the given note text,
	// ordered most-relevant first.
	Extract(ctx context.Context, noteText string) ([]string, error)
}
