package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one graded exam attempt.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("User who took the exam"),
		field.String("exam_id").
			NotEmpty().
			Comment("Assembled exam this attempt graded"),
		field.Int("user_score").
			Comment("Points earned"),
		field.Int("total_score").
			Comment("Points possible"),
		field.Float("pass_rate").
			Comment("Score percentage, rounded to 2 decimals"),
		field.Bool("passed"),
		field.Int("correct_count"),
		field.Int("wrong_count"),
		field.Int("duration_minutes").
			Comment("Whole minutes between start and submission"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("exam_id"),
	}
}
