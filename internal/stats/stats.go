// Package stats rolls historical graded attempts up into weak-category
// rates and per-difficulty accuracy.
package stats

import (
	"math"
	"sort"
	"strconv"

	"github.com/daehan/examly/internal/grading"
)

// AnsweredQuestion is one graded answer within an attempt.
type AnsweredQuestion struct {
	CategoryLarge string
	Difficulty    int
	Correct       bool
}

// Attempt is one graded attempt, the unit of aggregation.
type Attempt struct {
	UserScore    int
	TotalScore   int
	PassRate     float64
	Passed       bool
	CorrectCount int
	WrongCount   int
	Questions    []AnsweredQuestion
}

// FromResult converts a grading result into the aggregation shape.
func FromResult(res *grading.ResultDetail) Attempt {
	a := Attempt{
		UserScore:    res.UserScore,
		TotalScore:   res.TotalScore,
		PassRate:     res.PassRate,
		Passed:       res.Passed,
		CorrectCount: res.CorrectCount,
		WrongCount:   res.WrongCount,
		Questions:    make([]AnsweredQuestion, 0, len(res.Questions)),
	}
	for _, q := range res.Questions {
		a.Questions = append(a.Questions, AnsweredQuestion{
			CategoryLarge: q.CategoryLarge,
			Difficulty:    q.Difficulty,
			Correct:       q.Correct,
		})
	}
	return a
}

// DifficultyStats summarizes answers at one difficulty level.
type DifficultyStats struct {
	TotalQuestions int     `json:"totalQuestions"`
	CorrectAnswers int     `json:"correctAnswers"`
	CorrectRate    float64 `json:"correctRate"` // percent, 0 when unanswered
}

// Statistics is the aggregated view over a user's attempt history.
type Statistics struct {
	TotalTests  int     `json:"totalTests"`
	PassedTests int     `json:"passedTests"`
	FailedTests int     `json:"failedTests"`

	// AverageScore is the mean user score, 0 when there are no attempts.
	AverageScore float64 `json:"averageScore"`

	// CorrectRate is total correct answers over total answers, in percent.
	CorrectRate float64 `json:"correctRate"`

	// WeakCategories maps category-large label to wrong-answer rate.
	// Map order is unspecified; use SortedWeakCategories for presentation.
	WeakCategories map[string]float64 `json:"weakCategories"`

	// DifficultyStats is keyed by difficulty level "1".."5".
	DifficultyStats map[string]DifficultyStats `json:"difficultyStats"`
}

// Aggregate rolls attempts up into a Statistics response. Empty input is a
// normal state and yields zeroed results, never an error.
func Aggregate(attempts []Attempt) Statistics {
	s := Statistics{
		TotalTests:      len(attempts),
		WeakCategories:  WeakCategories(attempts),
		DifficultyStats: ByDifficulty(attempts),
	}

	var scoreSum, correct, answered int
	for _, a := range attempts {
		if a.Passed {
			s.PassedTests++
		} else {
			s.FailedTests++
		}
		scoreSum += a.UserScore
		correct += a.CorrectCount
		answered += a.CorrectCount + a.WrongCount
	}

	if len(attempts) > 0 {
		s.AverageScore = round2(float64(scoreSum) / float64(len(attempts)))
	}
	if answered > 0 {
		s.CorrectRate = round2(float64(correct) / float64(answered) * 100)
	}
	return s
}

// WeakCategories groups wrong answers by category-large label. Only
// categories with at least one answered question appear.
func WeakCategories(attempts []Attempt) map[string]float64 {
	wrong := make(map[string]int)
	total := make(map[string]int)

	for _, a := range attempts {
		for _, q := range a.Questions {
			if q.CategoryLarge == "" {
				continue
			}
			total[q.CategoryLarge]++
			if !q.Correct {
				wrong[q.CategoryLarge]++
			}
		}
	}

	rates := make(map[string]float64, len(total))
	for cat, n := range total {
		rates[cat] = round2(float64(wrong[cat]) / float64(n))
	}
	return rates
}

// WeakCategory pairs a category label with its wrong-answer rate.
type WeakCategory struct {
	Category  string  `json:"category"`
	WrongRate float64 `json:"wrongRate"`
}

// SortedWeakCategories orders weak categories for presentation: wrong rate
// descending, then label ascending.
func SortedWeakCategories(rates map[string]float64) []WeakCategory {
	out := make([]WeakCategory, 0, len(rates))
	for cat, rate := range rates {
		out = append(out, WeakCategory{Category: cat, WrongRate: rate})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WrongRate != out[j].WrongRate {
			return out[i].WrongRate > out[j].WrongRate
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// ByDifficulty computes per-level answer stats for every level 1-5.
// Levels with no answers report zeros.
func ByDifficulty(attempts []Attempt) map[string]DifficultyStats {
	out := make(map[string]DifficultyStats, 5)
	for d := 1; d <= 5; d++ {
		out[strconv.Itoa(d)] = DifficultyStats{}
	}

	totals := make(map[int]int)
	corrects := make(map[int]int)
	for _, a := range attempts {
		for _, q := range a.Questions {
			if q.Difficulty < 1 || q.Difficulty > 5 {
				continue
			}
			totals[q.Difficulty]++
			if q.Correct {
				corrects[q.Difficulty]++
			}
		}
	}

	for d, n := range totals {
		ds := DifficultyStats{
			TotalQuestions: n,
			CorrectAnswers: corrects[d],
		}
		if n > 0 {
			ds.CorrectRate = round2(float64(corrects[d]) / float64(n) * 100)
		}
		out[strconv.Itoa(d)] = ds
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
