package store

import (
	"context"
	"fmt"

	"github.com/daehan/examly/ent"
	"github.com/daehan/examly/ent/answerevent"
	"github.com/daehan/examly/ent/attemptevent"
	"github.com/daehan/examly/internal/exam"
	"github.com/daehan/examly/internal/grading"
	"github.com/daehan/examly/internal/stats"
)

// attemptRepo implements AttemptRepo using the ent client and the global
// sequence counter.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

// Append records a graded result as one AttemptEvent plus one AnswerEvent
// per question. Answer events reference the attempt's sequence number.
func (r *attemptRepo) Append(ctx context.Context, res *grading.ResultDetail) error {
	attemptSeq, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(attemptSeq).
		SetUserID(res.UserID).
		SetExamID(res.ExamID).
		SetUserScore(res.UserScore).
		SetTotalScore(res.TotalScore).
		SetPassRate(res.PassRate).
		SetPassed(res.Passed).
		SetCorrectCount(res.CorrectCount).
		SetWrongCount(res.WrongCount).
		SetDurationMinutes(res.Duration).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}

	for _, q := range res.Questions {
		seqNum, err := r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}

		_, err = r.client.AnswerEvent.Create().
			SetSequence(seqNum).
			SetUserID(res.UserID).
			SetExamID(res.ExamID).
			SetAttemptSequence(attemptSeq).
			SetQuestionID(q.QuestionID).
			SetQuestionType(string(q.Type)).
			SetDifficulty(q.Difficulty).
			SetCategoryLarge(q.CategoryLarge).
			SetSubmitted(q.Submitted).
			SetCorrect(q.Correct).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save answer event: %w", err)
		}
	}

	return nil
}

// ByUser returns the user's attempts in event order, shaped for aggregation.
func (r *attemptRepo) ByUser(ctx context.Context, userID string) ([]stats.Attempt, error) {
	attempts, err := r.client.AttemptEvent.Query().
		Where(attemptevent.UserID(userID)).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	if len(attempts) == 0 {
		return nil, nil
	}

	answers, err := r.client.AnswerEvent.Query().
		Where(answerevent.UserID(userID)).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}

	byAttempt := make(map[int64][]stats.AnsweredQuestion, len(attempts))
	for _, a := range answers {
		byAttempt[a.AttemptSequence] = append(byAttempt[a.AttemptSequence], stats.AnsweredQuestion{
			CategoryLarge: a.CategoryLarge,
			Difficulty:    a.Difficulty,
			Correct:       a.Correct,
		})
	}

	out := make([]stats.Attempt, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, stats.Attempt{
			UserScore:    a.UserScore,
			TotalScore:   a.TotalScore,
			PassRate:     a.PassRate,
			Passed:       a.Passed,
			CorrectCount: a.CorrectCount,
			WrongCount:   a.WrongCount,
			Questions:    byAttempt[a.Sequence],
		})
	}
	return out, nil
}

// RecentAccuracyByDifficulty computes the rolling accuracy over the newest
// windowSize answers at each difficulty level. Levels the user has never
// answered are absent from the map.
func (r *attemptRepo) RecentAccuracyByDifficulty(ctx context.Context, userID string, windowSize int) (map[int]float64, error) {
	acc := make(map[int]float64)

	for d := exam.MinDifficulty; d <= exam.MaxDifficulty; d++ {
		rows, err := r.client.AnswerEvent.Query().
			Where(
				answerevent.UserID(userID),
				answerevent.Difficulty(d),
			).
			Order(ent.Desc(answerevent.FieldSequence)).
			Limit(windowSize).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("query answers at difficulty %d: %w", d, err)
		}
		if len(rows) == 0 {
			continue
		}

		correct := 0
		for _, row := range rows {
			if row.Correct {
				correct++
			}
		}
		acc[d] = float64(correct) / float64(len(rows))
	}

	return acc, nil
}
