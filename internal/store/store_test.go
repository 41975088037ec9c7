package store

import (
	"context"
	"testing"
	"time"

	"github.com/daehan/examly/internal/exam"
	"github.com/daehan/examly/internal/grading"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func bankQuestion(id string, difficulty int, large string) exam.Question {
	return exam.Question{
		ID:         id,
		Text:       "q " + id,
		Answer:     "a",
		Type:       exam.TypeConcept,
		Difficulty: difficulty,
		Category:   exam.CategoryPath{Large: large},
		Score:      10,
	}
}

func TestQuestionPutAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	err := repo.Put(ctx, []exam.Question{
		bankQuestion("q1", 2, "programming"),
		bankQuestion("q2", 4, "programming"),
		bankQuestion("q3", 2, "database"),
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}

	got, err := repo.QueryByConstraints(ctx,
		exam.CategoryPath{Large: "programming"},
		exam.DifficultyRange{Min: 1, Max: 3},
		"",
	)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 || got[0].ID != "q1" {
		t.Errorf("query = %v, want [q1]", got)
	}
}

func TestQuestionPutIsUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	q := bankQuestion("q1", 2, "programming")
	if err := repo.Put(ctx, []exam.Question{q}); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Re-put with a back-filled category.
	q.Category = exam.CategoryPath{Large: "programming", Medium: "java", Small: "collections"}
	if err := repo.Put(ctx, []exam.Question{q}); err != nil {
		t.Fatalf("re-put: %v", err)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1 (upsert, not duplicate)", n)
	}

	got, err := repo.QueryByConstraints(ctx,
		exam.CategoryPath{Large: "programming", Medium: "java", Small: "collections"},
		exam.DifficultyRange{Min: 1, Max: 5},
		"",
	)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("query after upsert = %v, want 1 row", got)
	}
}

func gradedResult(userID string, correct bool) *grading.ResultDetail {
	score := 0
	correctCount, wrongCount := 0, 1
	if correct {
		score = 10
		correctCount, wrongCount = 1, 0
	}
	now := time.Now().UTC()
	return &grading.ResultDetail{
		ExamID:       "ex-1",
		UserID:       userID,
		CorrectCount: correctCount,
		WrongCount:   wrongCount,
		UserScore:    score,
		TotalScore:   10,
		PassRate:     float64(score) * 10,
		Passed:       correct,
		Duration:     5,
		StartedAt:    now.Add(-5 * time.Minute),
		EndedAt:      now,
		Questions: []grading.QuestionResult{
			{Seq: 1, QuestionID: "q1", Correct: correct, Difficulty: 3,
				CategoryLarge: "programming", Type: exam.TypeConcept, Score: 10},
		},
	}
}

func TestAttemptAppendAndByUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	if err := repo.Append(ctx, gradedResult("u1", true)); err != nil {
		t.Fatalf("append 1: %v", err)
	}
	if err := repo.Append(ctx, gradedResult("u1", false)); err != nil {
		t.Fatalf("append 2: %v", err)
	}
	if err := repo.Append(ctx, gradedResult("u2", true)); err != nil {
		t.Fatalf("append other user: %v", err)
	}

	attempts, err := repo.ByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("attempts = %d, want 2", len(attempts))
	}
	if !attempts[0].Passed || attempts[1].Passed {
		t.Errorf("attempt order wrong: %+v", attempts)
	}
	if len(attempts[0].Questions) != 1 {
		t.Errorf("questions = %d, want 1", len(attempts[0].Questions))
	}
	if attempts[0].Questions[0].CategoryLarge != "programming" {
		t.Errorf("category = %q, want programming", attempts[0].Questions[0].CategoryLarge)
	}
}

func TestAttemptByUserEmpty(t *testing.T) {
	s := openTestStore(t)

	attempts, err := s.AttemptRepo().ByUser(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if len(attempts) != 0 {
		t.Errorf("attempts = %d, want 0", len(attempts))
	}
}

func TestRecentAccuracyByDifficulty(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	// 3 correct, 1 wrong at difficulty 3.
	for _, correct := range []bool{true, true, false, true} {
		if err := repo.Append(ctx, gradedResult("u1", correct)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	acc, err := repo.RecentAccuracyByDifficulty(ctx, "u1", 20)
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if got := acc[3]; got != 0.75 {
		t.Errorf("accuracy[3] = %f, want 0.75", got)
	}
	if _, ok := acc[1]; ok {
		t.Error("unanswered level must be absent from the map")
	}
}

func TestLLMRequestEventAppend(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:  "mock",
		Model:     "mock",
		Purpose:   "keyword-extract",
		Success:   true,
		LatencyMs: 12,
	})
	if err != nil {
		t.Fatalf("append llm event: %v", err)
	}

	n, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}
