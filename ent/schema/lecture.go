package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Lecture is a recommendable lecture with its tag set.
type Lecture struct {
	ent.Schema
}

func (Lecture) Fields() []ent.Field {
	return []ent.Field{
		field.String("lecture_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("Stable external identifier"),
		field.String("title").
			NotEmpty(),
		field.String("url").
			Default(""),
		field.Strings("tags").
			Comment("Normalized lowercase tags used for overlap scoring"),
	}
}
