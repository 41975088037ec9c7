package store

import (
	"context"
	"fmt"

	"github.com/daehan/examly/ent"
	"github.com/daehan/examly/ent/question"
	"github.com/daehan/examly/internal/exam"
)

// questionRepo implements QuestionRepo using the ent client.
type questionRepo struct {
	client *ent.Client
}

// QueryByConstraints returns candidate questions for the assembler. The
// category filter is pushed down per level; empty levels wildcard.
func (r *questionRepo) QueryByConstraints(ctx context.Context, category exam.CategoryPath, diff exam.DifficultyRange, typ exam.Type) ([]exam.Question, error) {
	q := r.client.Question.Query().
		Where(
			question.DifficultyGTE(diff.Min),
			question.DifficultyLTE(diff.Max),
		)

	if typ != "" {
		q = q.Where(question.QuestionType(string(typ)))
	}
	if category.Large != "" {
		q = q.Where(question.CategoryLarge(category.Large))
	}
	if category.Medium != "" {
		q = q.Where(question.CategoryMedium(category.Medium))
	}
	if category.Small != "" {
		q = q.Where(question.CategorySmall(category.Small))
	}

	rows, err := q.Order(ent.Asc(question.FieldQuestionID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	out := make([]exam.Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, entQuestionToQuestion(row))
	}
	return out, nil
}

func (r *questionRepo) Put(ctx context.Context, questions []exam.Question) error {
	for _, q := range questions {
		exists, err := r.client.Question.Query().
			Where(question.QuestionID(q.ID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check question %s: %w", q.ID, err)
		}

		if exists {
			_, err = r.client.Question.Update().
				Where(question.QuestionID(q.ID)).
				SetText(q.Text).
				SetAnswer(q.Answer).
				SetExplanation(q.Explanation).
				SetQuestionType(string(q.Type)).
				SetDifficulty(q.Difficulty).
				SetCategoryLarge(q.Category.Large).
				SetCategoryMedium(q.Category.Medium).
				SetCategorySmall(q.Category.Small).
				SetScore(q.Score).
				Save(ctx)
		} else {
			_, err = r.client.Question.Create().
				SetQuestionID(q.ID).
				SetText(q.Text).
				SetAnswer(q.Answer).
				SetExplanation(q.Explanation).
				SetQuestionType(string(q.Type)).
				SetDifficulty(q.Difficulty).
				SetCategoryLarge(q.Category.Large).
				SetCategoryMedium(q.Category.Medium).
				SetCategorySmall(q.Category.Small).
				SetScore(q.Score).
				Save(ctx)
		}
		if err != nil {
			return fmt.Errorf("put question %s: %w", q.ID, err)
		}
	}
	return nil
}

func (r *questionRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Question.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

func entQuestionToQuestion(row *ent.Question) exam.Question {
	return exam.Question{
		ID:          row.QuestionID,
		Text:        row.Text,
		Answer:      row.Answer,
		Explanation: row.Explanation,
		Type:        exam.Type(row.QuestionType),
		Difficulty:  row.Difficulty,
		Category: exam.CategoryPath{
			Large:  row.CategoryLarge,
			Medium: row.CategoryMedium,
			Small:  row.CategorySmall,
		},
		Score: row.Score,
	}
}
