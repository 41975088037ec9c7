// Package exam assembles exams from the question bank under category,
// difficulty, type, and count constraints, with optional adaptive-difficulty
// weighting driven by the user's recent accuracy.
package exam

import "time"

// Type is the question type.
type Type string

const (
	TypeMultipleChoice Type = "multiple_choice"
	TypeFillBlank      Type = "fill_blank"
	TypeConcept        Type = "concept"
	TypeSubjective     Type = "subjective"
)

// MinDifficulty and MaxDifficulty bound the difficulty scale.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// CategoryPath is a large/medium/small category path. Empty fields act as
// wildcards when used in a Spec, and mean "not yet classified" on a Question.
type CategoryPath struct {
	Large  string `json:"large"`
	Medium string `json:"medium"`
	Small  string `json:"small"`
}

// IsZero reports whether no level is set.
func (p CategoryPath) IsZero() bool {
	return p.Large == "" && p.Medium == "" && p.Small == ""
}

// Covers reports whether the path, treated as a constraint with empty
// levels as wildcards, matches the candidate path.
func (p CategoryPath) Covers(q CategoryPath) bool {
	if p.Large != "" && p.Large != q.Large {
		return false
	}
	if p.Medium != "" && p.Medium != q.Medium {
		return false
	}
	if p.Small != "" && p.Small != q.Small {
		return false
	}
	return true
}

// Question is a single question-bank entry. Immutable once created; the
// category path may be back-filled by classification before the question
// enters the bank.
type Question struct {
	ID          string       `json:"id"`
	Text        string       `json:"text"`
	Answer      string       `json:"answer"`
	Explanation string       `json:"explanation"`
	Type        Type         `json:"type"`
	Difficulty  int          `json:"difficulty"` // 1-5
	Category    CategoryPath `json:"category"`
	Score       int          `json:"score"` // score weight
}

// Exam is an assembled question set. Immutable after assembly; question
// order is the draw order and doubles as the sequence number (1-based).
type Exam struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Desc       string     `json:"desc"`
	Questions  []Question `json:"questions"`
	TotalScore int        `json:"totalScore"`
	CreatedAt  time.Time  `json:"createdAt"`
}
