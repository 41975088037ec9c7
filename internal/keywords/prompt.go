package keywords

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an indexer for a study-note archive.

Rules:
- Extract the technical terms that best characterize the note's subject matter.
- Return lowercase single words or short established phrases (e.g. "hash table"), most relevant first.
- Prefer concrete technology and concept names over generic words like "code" or "data".
- Do not invent terms that are not supported by the note's content.
- Return at most the requested number of keywords. Fewer is fine for short notes.`

// buildUserMessage constructs the user message for a note.
func buildUserMessage(noteText string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Extract at most %d keywords from this note.\n\n", cfg.MaxKeywords)
	b.WriteString("Note:\n")
	b.WriteString(noteText)

	return b.String()
}
