package grading

import (
	"strings"

	"github.com/daehan/examly/internal/exam"
)

// equalAnswers compares a submitted answer to the stored answer.
//
// Normalization rules:
//   - Whitespace is trimmed for every type
//   - Non-subjective types compare case-insensitively
//   - Fill-blank additionally collapses inner whitespace runs
//   - Subjective answers require an exact match after trimming; semantic
//     grading belongs to a human-review workflow, not this engine
func equalAnswers(typ exam.Type, stored, submitted string, cfg Config) bool {
	stored = strings.TrimSpace(stored)
	submitted = strings.TrimSpace(submitted)
	if submitted == "" {
		return false
	}

	switch typ {
	case exam.TypeSubjective:
		if cfg.SubjectiveCaseSensitive {
			return submitted == stored
		}
		return strings.EqualFold(submitted, stored)

	case exam.TypeFillBlank:
		return strings.EqualFold(collapseSpaces(submitted), collapseSpaces(stored))

	default:
		return strings.EqualFold(submitted, stored)
	}
}

// collapseSpaces reduces every inner whitespace run to a single space.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
