// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Lecture is the predicate function for lecture builders.
type Lecture func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)
