package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a question-bank entry.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("Stable external identifier"),
		field.Text("text").
			NotEmpty().
			Comment("The question shown to the user"),
		field.String("answer").
			NotEmpty().
			Comment("The canonical correct answer"),
		field.Text("explanation").
			Default("").
			Comment("Worked explanation shown after grading"),
		field.String("question_type").
			NotEmpty().
			Comment("multiple_choice, fill_blank, concept, or subjective"),
		field.Int("difficulty").
			Range(1, 5).
			Comment("Difficulty from 1 (easy) to 5 (hard)"),
		field.String("category_large").
			Default("").
			Comment("Large category level, empty until classified"),
		field.String("category_medium").
			Default(""),
		field.String("category_small").
			Default(""),
		field.Int("score").
			Positive().
			Comment("Score weight when assembled into an exam"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_type"),
		index.Fields("difficulty"),
		index.Fields("category_large", "category_medium", "category_small"),
	}
}
