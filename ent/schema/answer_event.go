package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single graded answer within an attempt.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("User who answered"),
		field.String("exam_id").
			NotEmpty().
			Comment("Exam the question was answered in"),
		field.Int64("attempt_sequence").
			Comment("Sequence of the parent AttemptEvent"),
		field.String("question_id").
			NotEmpty().
			Comment("Question-bank entry this answer was for"),
		field.String("question_type").
			NotEmpty().
			Comment("multiple_choice, fill_blank, concept, or subjective"),
		field.Int("difficulty").
			Comment("Difficulty of the answered question"),
		field.String("category_large").
			Default("").
			Comment("Large category for weak-area aggregation"),
		field.String("submitted").
			Default("").
			Comment("What the user entered, empty when unanswered"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("attempt_sequence"),
		index.Fields("user_id", "difficulty"),
		index.Fields("correct"),
	}
}
