package exam

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
)

// mockBank implements QuestionBankView over an in-memory slice.
type mockBank struct {
	questions []Question
	err       error
}

func (m *mockBank) QueryByConstraints(_ context.Context, _ CategoryPath, _ DifficultyRange, _ Type) ([]Question, error) {
	return m.questions, m.err
}

// mockHistory implements AttemptHistoryView with a fixed accuracy map.
type mockHistory struct {
	accuracy map[int]float64
	err      error
}

func (m *mockHistory) RecentAccuracyByDifficulty(_ context.Context, _ string, _ int) (map[int]float64, error) {
	return m.accuracy, m.err
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func bankOf(n int, difficulty int) *mockBank {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			ID:         fmt.Sprintf("q-%d-%d", difficulty, i),
			Text:       fmt.Sprintf("question %d", i),
			Answer:     "answer",
			Type:       TypeConcept,
			Difficulty: difficulty,
			Category:   CategoryPath{Large: "programming", Medium: "java", Small: "collections"},
			Score:      5,
		}
	}
	return &mockBank{questions: qs}
}

func TestAssemble_Basic(t *testing.T) {
	a := NewAssembler(bankOf(10, 3), nil, DefaultConfig(), testRNG())

	ex, err := a.Assemble(context.Background(), Spec{
		Title:            "Java quiz",
		Count:            5,
		ScorePerQuestion: 20,
	})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	if len(ex.Questions) != 5 {
		t.Errorf("question count = %d, want 5", len(ex.Questions))
	}
	if ex.TotalScore != 100 {
		t.Errorf("TotalScore = %d, want 100", ex.TotalScore)
	}
	if ex.ID == "" {
		t.Error("exam ID not assigned")
	}
	if ex.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	seen := make(map[string]bool)
	for _, q := range ex.Questions {
		if seen[q.ID] {
			t.Errorf("question %q drawn twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestAssemble_InsufficientPool(t *testing.T) {
	a := NewAssembler(bankOf(7, 3), nil, DefaultConfig(), testRNG())

	_, err := a.Assemble(context.Background(), Spec{Count: 10, ScorePerQuestion: 10})

	var insufficient *ErrInsufficientQuestions
	if !errors.As(err, &insufficient) {
		t.Fatalf("error = %v, want *ErrInsufficientQuestions", err)
	}
	if insufficient.Requested != 10 || insufficient.Available != 7 {
		t.Errorf("got %+v, want requested 10 available 7", insufficient)
	}
}

func TestAssemble_FiltersCategoryTypeDifficulty(t *testing.T) {
	bank := &mockBank{questions: []Question{
		{ID: "keep", Type: TypeConcept, Difficulty: 3,
			Category: CategoryPath{Large: "programming", Medium: "java", Small: "collections"}},
		{ID: "wrong-category", Type: TypeConcept, Difficulty: 3,
			Category: CategoryPath{Large: "database", Medium: "sql", Small: "joins"}},
		{ID: "wrong-type", Type: TypeSubjective, Difficulty: 3,
			Category: CategoryPath{Large: "programming", Medium: "java", Small: "collections"}},
		{ID: "too-hard", Type: TypeConcept, Difficulty: 5,
			Category: CategoryPath{Large: "programming", Medium: "java", Small: "collections"}},
		{ID: "unclassified", Type: TypeConcept, Difficulty: 3},
	}}
	a := NewAssembler(bank, nil, DefaultConfig(), testRNG())

	ex, err := a.Assemble(context.Background(), Spec{
		Category: CategoryPath{Large: "programming"},
		MinDiff:  2,
		MaxDiff:  4,
		Type:     TypeConcept,
		Count:    1,
	})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if ex.Questions[0].ID != "keep" {
		t.Errorf("selected %q, want the only matching question", ex.Questions[0].ID)
	}
}

func TestAssemble_WildcardCategoryMatchesUnclassified(t *testing.T) {
	bank := &mockBank{questions: []Question{
		{ID: "unclassified", Type: TypeConcept, Difficulty: 3},
	}}
	a := NewAssembler(bank, nil, DefaultConfig(), testRNG())

	ex, err := a.Assemble(context.Background(), Spec{Count: 1})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(ex.Questions) != 1 {
		t.Fatalf("want the unclassified question selected under full wildcard")
	}
}

func TestAssemble_FixedDifficulty(t *testing.T) {
	bank := &mockBank{questions: append(bankOf(3, 2).questions, bankOf(3, 4).questions...)}
	a := NewAssembler(bank, nil, DefaultConfig(), testRNG())

	ex, err := a.Assemble(context.Background(), Spec{Difficulty: 4, Count: 3})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	for _, q := range ex.Questions {
		if q.Difficulty != 4 {
			t.Errorf("question %q difficulty = %d, want 4", q.ID, q.Difficulty)
		}
	}
}

func TestAssemble_BankError(t *testing.T) {
	a := NewAssembler(&mockBank{err: errors.New("db down")}, nil, DefaultConfig(), testRNG())

	if _, err := a.Assemble(context.Background(), Spec{Count: 1}); err == nil {
		t.Fatal("expected wrapped bank error")
	}
}

func TestAssemble_DeterministicWithSeed(t *testing.T) {
	spec := Spec{Count: 4, ScorePerQuestion: 25}

	run := func() []string {
		a := NewAssembler(bankOf(10, 3), nil, DefaultConfig(), rand.New(rand.NewPCG(7, 7)))
		ex, err := a.Assemble(context.Background(), spec)
		if err != nil {
			t.Fatalf("Assemble: %v", err)
		}
		ids := make([]string, len(ex.Questions))
		for i, q := range ex.Questions {
			ids[i] = q.ID
		}
		return ids
	}

	first, second := run(), run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed drew different sequences: %v vs %v", first, second)
		}
	}
}

func TestSpecRange(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want DifficultyRange
	}{
		{"fixed", Spec{Difficulty: 4}, DifficultyRange{4, 4}},
		{"range", Spec{MinDiff: 2, MaxDiff: 4}, DifficultyRange{2, 4}},
		{"unconstrained", Spec{}, DifficultyRange{1, 5}},
		{"open max", Spec{MinDiff: 3}, DifficultyRange{3, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.Range(); got != tt.want {
				t.Errorf("Range() = %v, want %v", got, tt.want)
			}
		})
	}
}
