// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daehan/examly/ent/answerevent"
)

// AnswerEvent is the model entity for the AnswerEvent schema.
type AnswerEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global append order, shared across all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// Wall-clock time the event was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// User who answered
	UserID string `json:"user_id,omitempty"`
	// Exam the question was answered in
	ExamID string `json:"exam_id,omitempty"`
	// Sequence of the parent AttemptEvent
	AttemptSequence int64 `json:"attempt_sequence,omitempty"`
	// Question-bank entry this answer was for
	QuestionID string `json:"question_id,omitempty"`
	// multiple_choice, fill_blank, concept, or subjective
	QuestionType string `json:"question_type,omitempty"`
	// Difficulty of the answered question
	Difficulty int `json:"difficulty,omitempty"`
	// Large category for weak-area aggregation
	CategoryLarge string `json:"category_large,omitempty"`
	// What the user entered, empty when unanswered
	Submitted string `json:"submitted,omitempty"`
	// Whether the answer was correct
	Correct      bool `json:"correct,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnswerEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case answerevent.FieldCorrect:
			values[i] = new(sql.NullBool)
		case answerevent.FieldID, answerevent.FieldSequence, answerevent.FieldAttemptSequence, answerevent.FieldDifficulty:
			values[i] = new(sql.NullInt64)
		case answerevent.FieldUserID, answerevent.FieldExamID, answerevent.FieldQuestionID, answerevent.FieldQuestionType, answerevent.FieldCategoryLarge, answerevent.FieldSubmitted:
			values[i] = new(sql.NullString)
		case answerevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnswerEvent fields.
func (_m *AnswerEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case answerevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case answerevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case answerevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case answerevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case answerevent.FieldExamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam_id", values[i])
			} else if value.Valid {
				_m.ExamID = value.String
			}
		case answerevent.FieldAttemptSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_sequence", values[i])
			} else if value.Valid {
				_m.AttemptSequence = value.Int64
			}
		case answerevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case answerevent.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				_m.QuestionType = value.String
			}
		case answerevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = int(value.Int64)
			}
		case answerevent.FieldCategoryLarge:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_large", values[i])
			} else if value.Valid {
				_m.CategoryLarge = value.String
			}
		case answerevent.FieldSubmitted:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submitted", values[i])
			} else if value.Valid {
				_m.Submitted = value.String
			}
		case answerevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnswerEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AnswerEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnswerEvent.
// Note that you need to call AnswerEvent.Unwrap() before calling this method if this AnswerEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnswerEvent) Update() *AnswerEventUpdateOne {
	return NewAnswerEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnswerEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnswerEvent) Unwrap() *AnswerEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnswerEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnswerEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AnswerEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("exam_id=")
	builder.WriteString(_m.ExamID)
	builder.WriteString(", ")
	builder.WriteString("attempt_sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptSequence))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(_m.QuestionType)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("category_large=")
	builder.WriteString(_m.CategoryLarge)
	builder.WriteString(", ")
	builder.WriteString("submitted=")
	builder.WriteString(_m.Submitted)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteByte(')')
	return builder.String()
}

// AnswerEvents is a parsable slice of AnswerEvent.
type AnswerEvents []*AnswerEvent
