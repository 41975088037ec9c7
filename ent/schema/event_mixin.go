package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin carries the fields common to the append-only event tables
// (attempt, answer and LLM request events). The sequence comes from the
// store's global counter, so events from different tables interleave into
// one total order; answer events use it to reference their parent attempt.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Global append order, shared across all event tables"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("Wall-clock time the event was recorded"),
	}
}

func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
		index.Fields("timestamp"),
	}
}
