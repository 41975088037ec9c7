// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daehan/examly/ent/attemptevent"
)

// AttemptEvent is the model entity for the AttemptEvent schema.
type AttemptEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global append order, shared across all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// Wall-clock time the event was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// User who took the exam
	UserID string `json:"user_id,omitempty"`
	// Assembled exam this attempt graded
	ExamID string `json:"exam_id,omitempty"`
	// Points earned
	UserScore int `json:"user_score,omitempty"`
	// Points possible
	TotalScore int `json:"total_score,omitempty"`
	// Score percentage, rounded to 2 decimals
	PassRate float64 `json:"pass_rate,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed bool `json:"passed,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// WrongCount holds the value of the "wrong_count" field.
	WrongCount int `json:"wrong_count,omitempty"`
	// Whole minutes between start and submission
	DurationMinutes int `json:"duration_minutes,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AttemptEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attemptevent.FieldPassed:
			values[i] = new(sql.NullBool)
		case attemptevent.FieldPassRate:
			values[i] = new(sql.NullFloat64)
		case attemptevent.FieldID, attemptevent.FieldSequence, attemptevent.FieldUserScore, attemptevent.FieldTotalScore, attemptevent.FieldCorrectCount, attemptevent.FieldWrongCount, attemptevent.FieldDurationMinutes:
			values[i] = new(sql.NullInt64)
		case attemptevent.FieldUserID, attemptevent.FieldExamID:
			values[i] = new(sql.NullString)
		case attemptevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AttemptEvent fields.
func (_m *AttemptEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attemptevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case attemptevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case attemptevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case attemptevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case attemptevent.FieldExamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam_id", values[i])
			} else if value.Valid {
				_m.ExamID = value.String
			}
		case attemptevent.FieldUserScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_score", values[i])
			} else if value.Valid {
				_m.UserScore = int(value.Int64)
			}
		case attemptevent.FieldTotalScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_score", values[i])
			} else if value.Valid {
				_m.TotalScore = int(value.Int64)
			}
		case attemptevent.FieldPassRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pass_rate", values[i])
			} else if value.Valid {
				_m.PassRate = value.Float64
			}
		case attemptevent.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case attemptevent.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case attemptevent.FieldWrongCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wrong_count", values[i])
			} else if value.Valid {
				_m.WrongCount = int(value.Int64)
			}
		case attemptevent.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AttemptEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AttemptEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AttemptEvent.
// Note that you need to call AttemptEvent.Unwrap() before calling this method if this AttemptEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AttemptEvent) Update() *AttemptEventUpdateOne {
	return NewAttemptEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AttemptEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AttemptEvent) Unwrap() *AttemptEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AttemptEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AttemptEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AttemptEvent(")
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
	builder.WriteString("user_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserScore))
	builder.WriteString(", ")
	builder.WriteString("total_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalScore))
	builder.WriteString(", ")
	builder.WriteString("pass_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.PassRate))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("wrong_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WrongCount))
	builder.WriteString(", ")
	builder.WriteString("duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMinutes))
	builder.WriteByte(')')
	return builder.String()
}

// AttemptEvents is a parsable slice of AttemptEvent.
type AttemptEvents []*AttemptEvent
