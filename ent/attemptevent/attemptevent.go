// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attemptevent type in the database.
	Label = "attempt_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldExamID holds the string denoting the exam_id field in the database.
	FieldExamID = "exam_id"
	// FieldUserScore holds the string denoting the user_score field in the database.
	FieldUserScore = "user_score"
	// FieldTotalScore holds the string denoting the total_score field in the database.
	FieldTotalScore = "total_score"
	// FieldPassRate holds the string denoting the pass_rate field in the database.
	FieldPassRate = "pass_rate"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldWrongCount holds the string denoting the wrong_count field in the database.
	FieldWrongCount = "wrong_count"
	// FieldDurationMinutes holds the string denoting the duration_minutes field in the database.
	FieldDurationMinutes = "duration_minutes"
	// Table holds the table name of the attemptevent in the database.
	Table = "attempt_events"
)

// Columns holds all SQL columns for attemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserID,
	FieldExamID,
	FieldUserScore,
	FieldTotalScore,
	FieldPassRate,
	FieldPassed,
	FieldCorrectCount,
	FieldWrongCount,
	FieldDurationMinutes,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	ExamIDValidator func(string) error
)

// OrderOption defines the ordering options for the AttemptEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByExamID orders the results by the exam_id field.
func ByExamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamID, opts...).ToFunc()
}

// ByUserScore orders the results by the user_score field.
func ByUserScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserScore, opts...).ToFunc()
}

// ByTotalScore orders the results by the total_score field.
func ByTotalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalScore, opts...).ToFunc()
}

// ByPassRate orders the results by the pass_rate field.
func ByPassRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassRate, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByWrongCount orders the results by the wrong_count field.
func ByWrongCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWrongCount, opts...).ToFunc()
}

// ByDurationMinutes orders the results by the duration_minutes field.
func ByDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMinutes, opts...).ToFunc()
}
