// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldAnswer holds the string denoting the answer field in the database.
	FieldAnswer = "answer"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// FieldQuestionType holds the string denoting the question_type field in the database.
	FieldQuestionType = "question_type"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldCategoryLarge holds the string denoting the category_large field in the database.
	FieldCategoryLarge = "category_large"
	// FieldCategoryMedium holds the string denoting the category_medium field in the database.
	FieldCategoryMedium = "category_medium"
	// FieldCategorySmall holds the string denoting the category_small field in the database.
	FieldCategorySmall = "category_small"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// Table holds the table name of the question in the database.
	Table = "questions"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldQuestionID,
	FieldText,
	FieldAnswer,
	FieldExplanation,
	FieldQuestionType,
	FieldDifficulty,
	FieldCategoryLarge,
	FieldCategoryMedium,
	FieldCategorySmall,
	FieldScore,
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
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// TextValidator is a validator for the "text" field. It is called by the builders before save.
	TextValidator func(string) error
	// AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	AnswerValidator func(string) error
	// DefaultExplanation holds the default value on creation for the "explanation" field.
	DefaultExplanation string
	// QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	QuestionTypeValidator func(string) error
	// DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	DifficultyValidator func(int) error
	// DefaultCategoryLarge holds the default value on creation for the "category_large" field.
	DefaultCategoryLarge string
	// DefaultCategoryMedium holds the default value on creation for the "category_medium" field.
	DefaultCategoryMedium string
	// DefaultCategorySmall holds the default value on creation for the "category_small" field.
	DefaultCategorySmall string
	// ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	ScoreValidator func(int) error
)

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByAnswer orders the results by the answer field.
func ByAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswer, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
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

// ByCategoryMedium orders the results by the category_medium field.
func ByCategoryMedium(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryMedium, opts...).ToFunc()
}

// ByCategorySmall orders the results by the category_small field.
func ByCategorySmall(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategorySmall, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}
