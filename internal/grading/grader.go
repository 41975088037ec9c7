// Package grading compares submitted answers to an exam's stored answers
// and computes the attempt result.
package grading

import (
	"math"
	"time"

	"github.com/daehan/examly/internal/exam"
)

// Submission is one submitted attempt at an exam. Resubmitting creates a
// new Submission; results are never mutated after grading.
type Submission struct {
	ExamID string
	UserID string

	// Answers maps question ID to the submitted answer. Questions absent
	// from the map are graded as unanswered (wrong).
	Answers map[string]string

	StartedAt time.Time
	EndedAt   time.Time
}

// QuestionResult is the grading outcome for one question, in exam order.
type QuestionResult struct {
	Seq           int       `json:"seq"`
	QuestionID    string    `json:"questionId"`
	Text          string    `json:"text"`
	Submitted     string    `json:"submitted"`
	CorrectAnswer string    `json:"correctAnswer"`
	Explanation   string    `json:"explanation"`
	Correct       bool      `json:"correct"`
	Score         int       `json:"score"`
	Difficulty    int       `json:"difficulty"`
	CategoryLarge string    `json:"categoryLarge"`
	Type          exam.Type `json:"type"`
}

// ResultDetail is the full grading result, a superset of Summary.
type ResultDetail struct {
	ExamID       string           `json:"examId"`
	UserID       string           `json:"userId"`
	CorrectCount int              `json:"correctCount"`
	WrongCount   int              `json:"wrongCount"`
	UserScore    int              `json:"userScore"`
	TotalScore   int              `json:"totalScore"`
	PassRate     float64          `json:"passRate"` // percent, 2 decimals
	Passed       bool             `json:"passed"`
	Duration     int              `json:"durationMinutes"` // whole minutes, floored
	StartedAt    time.Time        `json:"startedAt"`
	EndedAt      time.Time        `json:"endedAt"`
	Questions    []QuestionResult `json:"questions"`
}

// Summary is the abbreviated result for list views.
type Summary struct {
	ExamID       string  `json:"examId"`
	UserID       string  `json:"userId"`
	CorrectCount int     `json:"correctCount"`
	WrongCount   int     `json:"wrongCount"`
	UserScore    int     `json:"userScore"`
	TotalScore   int     `json:"totalScore"`
	PassRate     float64 `json:"passRate"`
	Passed       bool    `json:"passed"`
	Duration     int     `json:"durationMinutes"`
}

// Summary projects the detail down to the list-view shape.
func (r *ResultDetail) Summary() Summary {
	return Summary{
		ExamID:       r.ExamID,
		UserID:       r.UserID,
		CorrectCount: r.CorrectCount,
		WrongCount:   r.WrongCount,
		UserScore:    r.UserScore,
		TotalScore:   r.TotalScore,
		PassRate:     r.PassRate,
		Passed:       r.Passed,
		Duration:     r.Duration,
	}
}

// Grader grades submissions. Grading is a pure function of
// (exam, submission, pass threshold); it never consults other attempts.
type Grader struct {
	cfg Config
}

// NewGrader creates a grader.
func NewGrader(cfg Config) *Grader {
	return &Grader{cfg: cfg}
}

// Grade scores a submission against the exam.
//
// Answers are compared normalized per question type (see Correct). The pass
// threshold is caller-supplied per exam, in percent. Returns
// *ErrInvalidTimeRange when the submission ends before it starts.
func (g *Grader) Grade(ex *exam.Exam, sub Submission, passThreshold float64) (*ResultDetail, error) {
	if sub.EndedAt.Before(sub.StartedAt) {
		return nil, &ErrInvalidTimeRange{Start: sub.StartedAt, End: sub.EndedAt}
	}

	res := &ResultDetail{
		ExamID:     ex.ID,
		UserID:     sub.UserID,
		TotalScore: ex.TotalScore,
		StartedAt:  sub.StartedAt,
		EndedAt:    sub.EndedAt,
		Duration:   int(sub.EndedAt.Sub(sub.StartedAt).Minutes()),
		Questions:  make([]QuestionResult, 0, len(ex.Questions)),
	}

	for i, q := range ex.Questions {
		submitted := sub.Answers[q.ID]
		correct := g.Correct(q, submitted)

		if correct {
			res.CorrectCount++
			res.UserScore += q.Score
		} else {
			res.WrongCount++
		}

		res.Questions = append(res.Questions, QuestionResult{
			Seq:           i + 1,
			QuestionID:    q.ID,
			Text:          q.Text,
			Submitted:     submitted,
			CorrectAnswer: q.Answer,
			Explanation:   q.Explanation,
			Correct:       correct,
			Score:         q.Score,
			Difficulty:    q.Difficulty,
			CategoryLarge: q.Category.Large,
			Type:          q.Type,
		})
	}

	if res.TotalScore > 0 {
		res.PassRate = round2(float64(res.UserScore) / float64(res.TotalScore) * 100)
	}
	res.Passed = res.PassRate >= passThreshold

	return res, nil
}

// Correct reports whether a submitted answer matches the stored answer
// under the question type's normalization rules.
func (g *Grader) Correct(q exam.Question, submitted string) bool {
	return equalAnswers(q.Type, q.Answer, submitted, g.cfg)
}

// round2 rounds to two decimal places, the fixed pass-rate policy.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
