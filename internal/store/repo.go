package store

import (
	"context"
	"time"

	"github.com/daehan/examly/internal/exam"
	"github.com/daehan/examly/internal/grading"
	"github.com/daehan/examly/internal/recommend"
	"github.com/daehan/examly/internal/stats"
)

// QuestionRepo manages the question bank. It satisfies the assembler's
// bank view so exams can be drawn straight from the store.
type QuestionRepo interface {
	exam.QuestionBankView

	// Put upserts questions into the bank, keyed by question ID.
	Put(ctx context.Context, questions []exam.Question) error

	// Count returns the number of questions in the bank.
	Count(ctx context.Context) (int, error)
}

// LectureRepo manages the lecture catalog for recommendation.
type LectureRepo interface {
	// All returns every lecture in the catalog.
	All(ctx context.Context) ([]recommend.Lecture, error)

	// Put upserts lectures, keyed by lecture ID.
	Put(ctx context.Context, lectures []recommend.Lecture) error
}

// AttemptRepo appends and reads graded attempts. It satisfies the
// assembler's history view for adaptive difficulty.
type AttemptRepo interface {
	exam.AttemptHistoryView

	// Append records a graded result as attempt and answer events.
	Append(ctx context.Context, res *grading.ResultDetail) error

	// ByUser returns all of a user's attempts in event order, shaped for
	// statistics aggregation.
	ByUser(ctx context.Context, userID string) ([]stats.Attempt, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a recorded LLM request, read back for inspection.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and inspection access to operational events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns the newest LLM events, newest first.
	// limit 0 means no limit.
	QueryLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
}
