package exam

import "context"

// DifficultyRange is an inclusive [Min,Max] difficulty constraint.
type DifficultyRange struct {
	Min int
	Max int
}

// Contains reports whether d lies in the range.
func (r DifficultyRange) Contains(d int) bool {
	return d >= r.Min && d <= r.Max
}

// Midpoint returns the integer midpoint of the range.
func (r DifficultyRange) Midpoint() int {
	return (r.Min + r.Max) / 2
}

// QuestionBankView is the question-bank collaborator. Implementations may
// over-approximate (return a superset); the assembler re-filters in memory.
type QuestionBankView interface {
	// QueryByConstraints returns candidate questions for the given category
	// path (empty levels wildcard), difficulty range, and type ("" = any).
	QueryByConstraints(ctx context.Context, category CategoryPath, diff DifficultyRange, typ Type) ([]Question, error)
}

// AttemptHistoryView is the attempt-history collaborator consulted for
// adaptive difficulty.
type AttemptHistoryView interface {
	// RecentAccuracyByDifficulty returns the user's rolling accuracy per
	// difficulty level over the last windowSize answers at each level.
	// Levels with no history are absent from the map.
	RecentAccuracyByDifficulty(ctx context.Context, userID string, windowSize int) (map[int]float64, error)
}
