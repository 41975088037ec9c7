// Code generated by ent, DO NOT EDIT.

package lecture

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lecture type in the database.
	Label = "lecture"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLectureID holds the string denoting the lecture_id field in the database.
	FieldLectureID = "lecture_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// Table holds the table name of the lecture in the database.
	Table = "lectures"
)

// Columns holds all SQL columns for lecture fields.
var Columns = []string{
	FieldID,
	FieldLectureID,
	FieldTitle,
	FieldURL,
	FieldTags,
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
	// LectureIDValidator is a validator for the "lecture_id" field. It is called by the builders before save.
	LectureIDValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultURL holds the default value on creation for the "url" field.
	DefaultURL string
)

// OrderOption defines the ordering options for the Lecture queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLectureID orders the results by the lecture_id field.
func ByLectureID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLectureID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}
