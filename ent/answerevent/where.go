// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/daehan/examly/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldUserID, v))
}

// ExamID applies equality check predicate on the "exam_id" field. It's identical to ExamIDEQ.
func ExamID(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldExamID, v))
}

// AttemptSequence applies equality check predicate on the "attempt_sequence" field. It's identical to AttemptSequenceEQ.
func AttemptSequence(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldAttemptSequence, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionType applies equality check predicate on the "question_type" field. It's identical to QuestionTypeEQ.
func QuestionType(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldQuestionType, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldDifficulty, v))
}

// CategoryLarge applies equality check predicate on the "category_large" field. It's identical to CategoryLargeEQ.
func CategoryLarge(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldCategoryLarge, v))
}

// Submitted applies equality check predicate on the "submitted" field. It's identical to SubmittedEQ.
func Submitted(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldSubmitted, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldCorrect, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldUserID, v))
}

// ExamIDEQ applies the EQ predicate on the "exam_id" field.
func ExamIDEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldExamID, v))
}

// ExamIDNEQ applies the NEQ predicate on the "exam_id" field.
func ExamIDNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldExamID, v))
}

// ExamIDIn applies the In predicate on the "exam_id" field.
func ExamIDIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldExamID, vs...))
}

// ExamIDNotIn applies the NotIn predicate on the "exam_id" field.
func ExamIDNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldExamID, vs...))
}

// ExamIDGT applies the GT predicate on the "exam_id" field.
func ExamIDGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldExamID, v))
}

// ExamIDGTE applies the GTE predicate on the "exam_id" field.
func ExamIDGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldExamID, v))
}

// ExamIDLT applies the LT predicate on the "exam_id" field.
func ExamIDLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldExamID, v))
}

// ExamIDLTE applies the LTE predicate on the "exam_id" field.
func ExamIDLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldExamID, v))
}

// ExamIDContains applies the Contains predicate on the "exam_id" field.
func ExamIDContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldExamID, v))
}

// ExamIDHasPrefix applies the HasPrefix predicate on the "exam_id" field.
func ExamIDHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldExamID, v))
}

// ExamIDHasSuffix applies the HasSuffix predicate on the "exam_id" field.
func ExamIDHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldExamID, v))
}

// ExamIDEqualFold applies the EqualFold predicate on the "exam_id" field.
func ExamIDEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldExamID, v))
}

// ExamIDContainsFold applies the ContainsFold predicate on the "exam_id" field.
func ExamIDContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldExamID, v))
}

// AttemptSequenceEQ applies the EQ predicate on the "attempt_sequence" field.
func AttemptSequenceEQ(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldAttemptSequence, v))
}

// AttemptSequenceNEQ applies the NEQ predicate on the "attempt_sequence" field.
func AttemptSequenceNEQ(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldAttemptSequence, v))
}

// AttemptSequenceIn applies the In predicate on the "attempt_sequence" field.
func AttemptSequenceIn(vs ...int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldAttemptSequence, vs...))
}

// AttemptSequenceNotIn applies the NotIn predicate on the "attempt_sequence" field.
func AttemptSequenceNotIn(vs ...int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldAttemptSequence, vs...))
}

// AttemptSequenceGT applies the GT predicate on the "attempt_sequence" field.
func AttemptSequenceGT(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldAttemptSequence, v))
}

// AttemptSequenceGTE applies the GTE predicate on the "attempt_sequence" field.
func AttemptSequenceGTE(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldAttemptSequence, v))
}

// AttemptSequenceLT applies the LT predicate on the "attempt_sequence" field.
func AttemptSequenceLT(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldAttemptSequence, v))
}

// AttemptSequenceLTE applies the LTE predicate on the "attempt_sequence" field.
func AttemptSequenceLTE(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldAttemptSequence, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldQuestionType, vs...))
}

// QuestionTypeGT applies the GT predicate on the "question_type" field.
func QuestionTypeGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldQuestionType, v))
}

// QuestionTypeGTE applies the GTE predicate on the "question_type" field.
func QuestionTypeGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldQuestionType, v))
}

// QuestionTypeLT applies the LT predicate on the "question_type" field.
func QuestionTypeLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldQuestionType, v))
}

// QuestionTypeLTE applies the LTE predicate on the "question_type" field.
func QuestionTypeLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldQuestionType, v))
}

// QuestionTypeContains applies the Contains predicate on the "question_type" field.
func QuestionTypeContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldQuestionType, v))
}

// QuestionTypeHasPrefix applies the HasPrefix predicate on the "question_type" field.
func QuestionTypeHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldQuestionType, v))
}

// QuestionTypeHasSuffix applies the HasSuffix predicate on the "question_type" field.
func QuestionTypeHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldQuestionType, v))
}

// QuestionTypeEqualFold applies the EqualFold predicate on the "question_type" field.
func QuestionTypeEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldQuestionType, v))
}

// QuestionTypeContainsFold applies the ContainsFold predicate on the "question_type" field.
func QuestionTypeContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldQuestionType, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldDifficulty, v))
}

// CategoryLargeEQ applies the EQ predicate on the "category_large" field.
func CategoryLargeEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldCategoryLarge, v))
}

// CategoryLargeNEQ applies the NEQ predicate on the "category_large" field.
func CategoryLargeNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldCategoryLarge, v))
}

// CategoryLargeIn applies the In predicate on the "category_large" field.
func CategoryLargeIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldCategoryLarge, vs...))
}

// CategoryLargeNotIn applies the NotIn predicate on the "category_large" field.
func CategoryLargeNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldCategoryLarge, vs...))
}

// CategoryLargeGT applies the GT predicate on the "category_large" field.
func CategoryLargeGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldCategoryLarge, v))
}

// CategoryLargeGTE applies the GTE predicate on the "category_large" field.
func CategoryLargeGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldCategoryLarge, v))
}

// CategoryLargeLT applies the LT predicate on the "category_large" field.
func CategoryLargeLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldCategoryLarge, v))
}

// CategoryLargeLTE applies the LTE predicate on the "category_large" field.
func CategoryLargeLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldCategoryLarge, v))
}

// CategoryLargeContains applies the Contains predicate on the "category_large" field.
func CategoryLargeContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldCategoryLarge, v))
}

// CategoryLargeHasPrefix applies the HasPrefix predicate on the "category_large" field.
func CategoryLargeHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldCategoryLarge, v))
}

// CategoryLargeHasSuffix applies the HasSuffix predicate on the "category_large" field.
func CategoryLargeHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldCategoryLarge, v))
}

// CategoryLargeEqualFold applies the EqualFold predicate on the "category_large" field.
func CategoryLargeEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldCategoryLarge, v))
}

// CategoryLargeContainsFold applies the ContainsFold predicate on the "category_large" field.
func CategoryLargeContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldCategoryLarge, v))
}

// SubmittedEQ applies the EQ predicate on the "submitted" field.
func SubmittedEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldSubmitted, v))
}

// SubmittedNEQ applies the NEQ predicate on the "submitted" field.
func SubmittedNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldSubmitted, v))
}

// SubmittedIn applies the In predicate on the "submitted" field.
func SubmittedIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldSubmitted, vs...))
}

// SubmittedNotIn applies the NotIn predicate on the "submitted" field.
func SubmittedNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldSubmitted, vs...))
}

// SubmittedGT applies the GT predicate on the "submitted" field.
func SubmittedGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldSubmitted, v))
}

// SubmittedGTE applies the GTE predicate on the "submitted" field.
func SubmittedGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldSubmitted, v))
}

// SubmittedLT applies the LT predicate on the "submitted" field.
func SubmittedLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldSubmitted, v))
}

// SubmittedLTE applies the LTE predicate on the "submitted" field.
func SubmittedLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldSubmitted, v))
}

// SubmittedContains applies the Contains predicate on the "submitted" field.
func SubmittedContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldSubmitted, v))
}

// SubmittedHasPrefix applies the HasPrefix predicate on the "submitted" field.
func SubmittedHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldSubmitted, v))
}

// SubmittedHasSuffix applies the HasSuffix predicate on the "submitted" field.
func SubmittedHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldSubmitted, v))
}

// SubmittedEqualFold applies the EqualFold predicate on the "submitted" field.
func SubmittedEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldSubmitted, v))
}

// SubmittedContainsFold applies the ContainsFold predicate on the "submitted" field.
func SubmittedContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldSubmitted, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldCorrect, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnswerEvent) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnswerEvent) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnswerEvent) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.NotPredicates(p))
}
