// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the answerevent type in the database.
	Label = "answer_event"
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
	// FieldAttemptSequence holds the string denoting the attempt_sequence field in the database.
	FieldAttemptSequence = "attempt_sequence"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldQuestionType holds the string denoting the question_type field in the database.
	FieldQuestionType = "question_type"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldCategoryLarge holds the string denoting the category_large field in the database.
	FieldCategoryLarge = "category_large"
	// FieldSubmitted holds the string denoting the submitted field in the database.
	FieldSubmitted = "submitted"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// Table holds the table name of the answerevent in the database.
	Table = "answer_events"
)

// Columns holds all SQL columns for answerevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserID,
	FieldExamID,
	FieldAttemptSequence,
	FieldQuestionID,
	FieldQuestionType,
	FieldDifficulty,
	FieldCategoryLarge,
	FieldSubmitted,
	FieldCorrect,
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
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	QuestionTypeValidator func(string) error
	// DefaultCategoryLarge holds the default value on creation for the "category_large" field.
	DefaultCategoryLarge string
	// DefaultSubmitted holds the default value on creation for the "submitted" field.
	DefaultSubmitted string
)

// OrderOption defines the ordering options for the AnswerEvent queries.
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

// ByAttemptSequence orders the results by the attempt_sequence field.
func ByAttemptSequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptSequence, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByQuestionType orders the results by the question_type field.
func ByQuestionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionType, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByCategoryLarge orders the results by the category_large field.
func ByCategoryLarge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryLarge, opts...).ToFunc()
}

// BySubmitted orders the results by the submitted field.
func BySubmitted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmitted, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}
