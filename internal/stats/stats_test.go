package stats

import (
	"testing"

	"github.com/daehan/examly/internal/grading"
)

func attempt(passed bool, score int, qs ...AnsweredQuestion) Attempt {
	correct, wrong := 0, 0
	for _, q := range qs {
		if q.Correct {
			correct++
		} else {
			wrong++
		}
	}
	return Attempt{
		UserScore:    score,
		TotalScore:   100,
		Passed:       passed,
		CorrectCount: correct,
		WrongCount:   wrong,
		Questions:    qs,
	}
}

func TestAggregate_Empty(t *testing.T) {
	s := Aggregate(nil)

	if s.TotalTests != 0 || s.PassedTests != 0 || s.FailedTests != 0 {
		t.Errorf("counts = %d/%d/%d, want zeros", s.TotalTests, s.PassedTests, s.FailedTests)
	}
	if s.AverageScore != 0 || s.CorrectRate != 0 {
		t.Errorf("AverageScore = %f CorrectRate = %f, want zeros", s.AverageScore, s.CorrectRate)
	}
	if len(s.WeakCategories) != 0 {
		t.Errorf("WeakCategories = %v, want empty", s.WeakCategories)
	}
	if len(s.DifficultyStats) != 5 {
		t.Fatalf("DifficultyStats has %d keys, want 5", len(s.DifficultyStats))
	}
	for _, k := range []string{"1", "2", "3", "4", "5"} {
		ds, ok := s.DifficultyStats[k]
		if !ok {
			t.Errorf("missing difficulty key %q", k)
		}
		if ds.TotalQuestions != 0 || ds.CorrectRate != 0 {
			t.Errorf("level %s = %+v, want zeros", k, ds)
		}
	}
}

func TestAggregate_Counts(t *testing.T) {
	attempts := []Attempt{
		attempt(true, 80,
			AnsweredQuestion{CategoryLarge: "programming", Difficulty: 2, Correct: true},
			AnsweredQuestion{CategoryLarge: "database", Difficulty: 3, Correct: false},
		),
		attempt(false, 40,
			AnsweredQuestion{CategoryLarge: "database", Difficulty: 3, Correct: false},
			AnsweredQuestion{CategoryLarge: "programming", Difficulty: 2, Correct: true},
		),
	}

	s := Aggregate(attempts)

	if s.TotalTests != 2 || s.PassedTests != 1 || s.FailedTests != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1", s.TotalTests, s.PassedTests, s.FailedTests)
	}
	if s.AverageScore != 60 {
		t.Errorf("AverageScore = %f, want 60", s.AverageScore)
	}
	// 2 of 4 answers correct.
	if s.CorrectRate != 50 {
		t.Errorf("CorrectRate = %f, want 50", s.CorrectRate)
	}
}

func TestWeakCategories(t *testing.T) {
	attempts := []Attempt{
		attempt(true, 70,
			AnsweredQuestion{CategoryLarge: "database", Difficulty: 3, Correct: false},
			AnsweredQuestion{CategoryLarge: "database", Difficulty: 3, Correct: false},
			AnsweredQuestion{CategoryLarge: "database", Difficulty: 2, Correct: true},
			AnsweredQuestion{CategoryLarge: "programming", Difficulty: 1, Correct: true},
			AnsweredQuestion{Difficulty: 1, Correct: false}, // no category, skipped
		),
	}

	rates := WeakCategories(attempts)

	if got := rates["database"]; got != 0.67 {
		t.Errorf("database rate = %f, want 0.67", got)
	}
	if got := rates["programming"]; got != 0 {
		t.Errorf("programming rate = %f, want 0", got)
	}
	if _, ok := rates[""]; ok {
		t.Error("uncategorized answers must not produce a key")
	}
}

func TestSortedWeakCategories(t *testing.T) {
	rates := map[string]float64{
		"database":         0.5,
		"programming":      0.5,
		"computer-science": 0.8,
	}

	got := SortedWeakCategories(rates)

	want := []string{"computer-science", "database", "programming"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Category != w {
			t.Errorf("position %d = %q, want %q", i, got[i].Category, w)
		}
	}
}

func TestByDifficulty(t *testing.T) {
	attempts := []Attempt{
		attempt(true, 50,
			AnsweredQuestion{CategoryLarge: "programming", Difficulty: 2, Correct: true},
			AnsweredQuestion{CategoryLarge: "programming", Difficulty: 2, Correct: false},
			AnsweredQuestion{CategoryLarge: "programming", Difficulty: 2, Correct: true},
			AnsweredQuestion{CategoryLarge: "programming", Difficulty: 5, Correct: false},
			AnsweredQuestion{CategoryLarge: "programming", Difficulty: 9, Correct: true}, // out of range, skipped
		),
	}

	ds := ByDifficulty(attempts)

	if got := ds["2"]; got.TotalQuestions != 3 || got.CorrectAnswers != 2 || got.CorrectRate != 66.67 {
		t.Errorf("level 2 = %+v, want 3/2/66.67", got)
	}
	if got := ds["5"]; got.TotalQuestions != 1 || got.CorrectRate != 0 {
		t.Errorf("level 5 = %+v, want 1 total, 0 rate", got)
	}
	if got := ds["1"]; got.TotalQuestions != 0 {
		t.Errorf("level 1 = %+v, want zeros", got)
	}
}

func TestFromResult(t *testing.T) {
	res := &grading.ResultDetail{
		UserScore:    75,
		TotalScore:   100,
		PassRate:     75,
		Passed:       true,
		CorrectCount: 3,
		WrongCount:   1,
		Questions: []grading.QuestionResult{
			{QuestionID: "q1", Correct: true, Difficulty: 2, CategoryLarge: "programming"},
			{QuestionID: "q2", Correct: false, Difficulty: 4, CategoryLarge: "database"},
		},
	}

	a := FromResult(res)

	if a.UserScore != 75 || !a.Passed || a.CorrectCount != 3 {
		t.Errorf("attempt = %+v, mismatch with result", a)
	}
	if len(a.Questions) != 2 {
		t.Fatalf("len(Questions) = %d, want 2", len(a.Questions))
	}
	if a.Questions[1].CategoryLarge != "database" || a.Questions[1].Difficulty != 4 || a.Questions[1].Correct {
		t.Errorf("question[1] = %+v, mismatch", a.Questions[1])
	}
}
