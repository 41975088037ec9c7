package grading

import (
	"errors"
	"testing"
	"time"

	"github.com/daehan/examly/internal/exam"
)

func fourQuestionExam() *exam.Exam {
	return &exam.Exam{
		ID: "ex-1",
		Questions: []exam.Question{
			{ID: "q1", Text: "1+1?", Answer: "2", Type: exam.TypeFillBlank, Difficulty: 1,
				Category: exam.CategoryPath{Large: "programming"}, Score: 25},
			{ID: "q2", Text: "TCP or UDP?", Answer: "TCP", Type: exam.TypeMultipleChoice, Difficulty: 2,
				Category: exam.CategoryPath{Large: "computer-science"}, Score: 25},
			{ID: "q3", Text: "What is a deadlock?", Answer: "circular wait", Type: exam.TypeConcept, Difficulty: 3,
				Category: exam.CategoryPath{Large: "computer-science"}, Score: 25},
			{ID: "q4", Text: "Explain GC.", Answer: "Mark and sweep", Type: exam.TypeSubjective, Difficulty: 4,
				Category: exam.CategoryPath{Large: "programming"}, Score: 25},
		},
		TotalScore: 100,
	}
}

func submissionAt(answers map[string]string, minutes int) Submission {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return Submission{
		ExamID:    "ex-1",
		UserID:    "u1",
		Answers:   answers,
		StartedAt: start,
		EndedAt:   start.Add(time.Duration(minutes) * time.Minute),
	}
}

func TestGrade_ThreeOfFourCorrect(t *testing.T) {
	g := NewGrader(DefaultConfig())
	sub := submissionAt(map[string]string{
		"q1": "2",
		"q2": "tcp",           // case-insensitive
		"q3": " circular wait ", // trimmed
		"q4": "mark and sweep", // subjective: wrong case, exact match fails
	}, 30)

	res, err := g.Grade(fourQuestionExam(), sub, 60)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}

	if res.CorrectCount != 3 || res.WrongCount != 1 {
		t.Errorf("correct/wrong = %d/%d, want 3/1", res.CorrectCount, res.WrongCount)
	}
	if res.UserScore != 75 {
		t.Errorf("UserScore = %d, want 75", res.UserScore)
	}
	if res.PassRate != 75.0 {
		t.Errorf("PassRate = %f, want 75.0", res.PassRate)
	}
	if !res.Passed {
		t.Error("75 >= 60 should pass")
	}
	if res.Duration != 30 {
		t.Errorf("Duration = %d, want 30", res.Duration)
	}
}

func TestGrade_SubjectiveExactMatch(t *testing.T) {
	g := NewGrader(DefaultConfig())
	sub := submissionAt(map[string]string{"q4": " Mark and sweep "}, 10)

	res, err := g.Grade(fourQuestionExam(), sub, 0)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if !res.Questions[3].Correct {
		t.Error("exact subjective answer (after trim) should be correct")
	}
}

func TestGrade_FillBlankCollapsesInnerSpaces(t *testing.T) {
	g := NewGrader(DefaultConfig())
	ex := &exam.Exam{
		ID:         "ex-2",
		Questions:  []exam.Question{{ID: "q1", Answer: "hash table", Type: exam.TypeFillBlank, Score: 10}},
		TotalScore: 10,
	}
	sub := submissionAt(map[string]string{"q1": "Hash   Table"}, 5)

	res, err := g.Grade(ex, sub, 50)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if !res.Questions[0].Correct {
		t.Error("fill-blank should collapse inner whitespace")
	}
}

func TestGrade_UnansweredIsWrong(t *testing.T) {
	g := NewGrader(DefaultConfig())

	res, err := g.Grade(fourQuestionExam(), submissionAt(nil, 5), 60)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.CorrectCount != 0 || res.WrongCount != 4 {
		t.Errorf("correct/wrong = %d/%d, want 0/4", res.CorrectCount, res.WrongCount)
	}
	if res.PassRate != 0 || res.Passed {
		t.Errorf("PassRate = %f Passed = %v, want 0 and false", res.PassRate, res.Passed)
	}
}

func TestGrade_InvalidTimeRange(t *testing.T) {
	g := NewGrader(DefaultConfig())
	sub := submissionAt(nil, 0)
	sub.EndedAt = sub.StartedAt.Add(-time.Minute)

	_, err := g.Grade(fourQuestionExam(), sub, 60)

	var tr *ErrInvalidTimeRange
	if !errors.As(err, &tr) {
		t.Fatalf("error = %v, want *ErrInvalidTimeRange", err)
	}
}

func TestGrade_DurationFloored(t *testing.T) {
	g := NewGrader(DefaultConfig())
	sub := submissionAt(nil, 0)
	sub.EndedAt = sub.StartedAt.Add(12*time.Minute + 59*time.Second)

	res, err := g.Grade(fourQuestionExam(), sub, 60)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Duration != 12 {
		t.Errorf("Duration = %d, want 12 (floored)", res.Duration)
	}
}

func TestGrade_PassRateRounding(t *testing.T) {
	g := NewGrader(DefaultConfig())
	ex := &exam.Exam{
		ID: "ex-3",
		Questions: []exam.Question{
			{ID: "q1", Answer: "a", Type: exam.TypeConcept, Score: 1},
			{ID: "q2", Answer: "b", Type: exam.TypeConcept, Score: 1},
			{ID: "q3", Answer: "c", Type: exam.TypeConcept, Score: 1},
		},
		TotalScore: 3,
	}
	sub := submissionAt(map[string]string{"q1": "a"}, 1)

	res, err := g.Grade(ex, sub, 100)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	// 1/3 of 100 rounds to 33.33.
	if res.PassRate != 33.33 {
		t.Errorf("PassRate = %f, want 33.33", res.PassRate)
	}
}

func TestGrade_EmptyExamNoDivideByZero(t *testing.T) {
	g := NewGrader(DefaultConfig())
	ex := &exam.Exam{ID: "ex-empty"}

	res, err := g.Grade(ex, submissionAt(nil, 1), 60)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.PassRate != 0 {
		t.Errorf("PassRate = %f, want 0", res.PassRate)
	}
}

func TestGrade_PureFunction(t *testing.T) {
	g := NewGrader(DefaultConfig())
	ex := fourQuestionExam()
	sub := submissionAt(map[string]string{"q1": "2"}, 10)

	a, err := g.Grade(ex, sub, 60)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	b, err := g.Grade(ex, sub, 60)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if a.UserScore != b.UserScore || a.PassRate != b.PassRate || a.CorrectCount != b.CorrectCount {
		t.Error("grading twice with identical inputs produced different results")
	}
}

func TestSummary(t *testing.T) {
	g := NewGrader(DefaultConfig())
	res, err := g.Grade(fourQuestionExam(), submissionAt(map[string]string{"q1": "2"}, 10), 60)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}

	sum := res.Summary()
	if sum.UserScore != res.UserScore || sum.PassRate != res.PassRate || sum.Duration != res.Duration {
		t.Errorf("Summary %+v does not match detail", sum)
	}
}
