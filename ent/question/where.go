// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
	"github.com/daehan/examly/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldText, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAnswer, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExplanation, v))
}

// QuestionType applies equality check predicate on the "question_type" field. It's identical to QuestionTypeEQ.
func QuestionType(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionType, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficulty, v))
}

// CategoryLarge applies equality check predicate on the "category_large" field. It's identical to CategoryLargeEQ.
func CategoryLarge(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCategoryLarge, v))
}

// CategoryMedium applies equality check predicate on the "category_medium" field. It's identical to CategoryMediumEQ.
func CategoryMedium(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCategoryMedium, v))
}

// CategorySmall applies equality check predicate on the "category_small" field. It's identical to CategorySmallEQ.
func CategorySmall(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCategorySmall, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldScore, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQuestionID, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldText, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldAnswer, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldExplanation, v))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuestionType, vs...))
}

// QuestionTypeGT applies the GT predicate on the "question_type" field.
func QuestionTypeGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQuestionType, v))
}

// QuestionTypeGTE applies the GTE predicate on the "question_type" field.
func QuestionTypeGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQuestionType, v))
}

// QuestionTypeLT applies the LT predicate on the "question_type" field.
func QuestionTypeLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQuestionType, v))
}

// QuestionTypeLTE applies the LTE predicate on the "question_type" field.
func QuestionTypeLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQuestionType, v))
}

// QuestionTypeContains applies the Contains predicate on the "question_type" field.
func QuestionTypeContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQuestionType, v))
}

// QuestionTypeHasPrefix applies the HasPrefix predicate on the "question_type" field.
func QuestionTypeHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQuestionType, v))
}

// QuestionTypeHasSuffix applies the HasSuffix predicate on the "question_type" field.
func QuestionTypeHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQuestionType, v))
}

// QuestionTypeEqualFold applies the EqualFold predicate on the "question_type" field.
func QuestionTypeEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQuestionType, v))
}

// QuestionTypeContainsFold applies the ContainsFold predicate on the "question_type" field.
func QuestionTypeContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQuestionType, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldDifficulty, v))
}

// CategoryLargeEQ applies the EQ predicate on the "category_large" field.
func CategoryLargeEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCategoryLarge, v))
}

// CategoryLargeNEQ applies the NEQ predicate on the "category_large" field.
func CategoryLargeNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCategoryLarge, v))
}

// CategoryLargeIn applies the In predicate on the "category_large" field.
func CategoryLargeIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCategoryLarge, vs...))
}

// CategoryLargeNotIn applies the NotIn predicate on the "category_large" field.
func CategoryLargeNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCategoryLarge, vs...))
}

// CategoryLargeGT applies the GT predicate on the "category_large" field.
func CategoryLargeGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCategoryLarge, v))
}

// CategoryLargeGTE applies the GTE predicate on the "category_large" field.
func CategoryLargeGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCategoryLarge, v))
}

// CategoryLargeLT applies the LT predicate on the "category_large" field.
func CategoryLargeLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCategoryLarge, v))
}

// CategoryLargeLTE applies the LTE predicate on the "category_large" field.
func CategoryLargeLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCategoryLarge, v))
}

// CategoryLargeContains applies the Contains predicate on the "category_large" field.
func CategoryLargeContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldCategoryLarge, v))
}

// CategoryLargeHasPrefix applies the HasPrefix predicate on the "category_large" field.
func CategoryLargeHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldCategoryLarge, v))
}

// CategoryLargeHasSuffix applies the HasSuffix predicate on the "category_large" field.
func CategoryLargeHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldCategoryLarge, v))
}

// CategoryLargeEqualFold applies the EqualFold predicate on the "category_large" field.
func CategoryLargeEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldCategoryLarge, v))
}

// CategoryLargeContainsFold applies the ContainsFold predicate on the "category_large" field.
func CategoryLargeContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldCategoryLarge, v))
}

// CategoryMediumEQ applies the EQ predicate on the "category_medium" field.
func CategoryMediumEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCategoryMedium, v))
}

// CategoryMediumNEQ applies the NEQ predicate on the "category_medium" field.
func CategoryMediumNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCategoryMedium, v))
}

// CategoryMediumIn applies the In predicate on the "category_medium" field.
func CategoryMediumIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCategoryMedium, vs...))
}

// CategoryMediumNotIn applies the NotIn predicate on the "category_medium" field.
func CategoryMediumNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCategoryMedium, vs...))
}

// CategoryMediumGT applies the GT predicate on the "category_medium" field.
func CategoryMediumGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCategoryMedium, v))
}

// CategoryMediumGTE applies the GTE predicate on the "category_medium" field.
func CategoryMediumGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCategoryMedium, v))
}

// CategoryMediumLT applies the LT predicate on the "category_medium" field.
func CategoryMediumLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCategoryMedium, v))
}

// CategoryMediumLTE applies the LTE predicate on the "category_medium" field.
func CategoryMediumLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCategoryMedium, v))
}

// CategoryMediumContains applies the Contains predicate on the "category_medium" field.
func CategoryMediumContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldCategoryMedium, v))
}

// CategoryMediumHasPrefix applies the HasPrefix predicate on the "category_medium" field.
func CategoryMediumHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldCategoryMedium, v))
}

// CategoryMediumHasSuffix applies the HasSuffix predicate on the "category_medium" field.
func CategoryMediumHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldCategoryMedium, v))
}

// CategoryMediumEqualFold applies the EqualFold predicate on the "category_medium" field.
func CategoryMediumEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldCategoryMedium, v))
}

// CategoryMediumContainsFold applies the ContainsFold predicate on the "category_medium" field.
func CategoryMediumContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldCategoryMedium, v))
}

// CategorySmallEQ applies the EQ predicate on the "category_small" field.
func CategorySmallEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCategorySmall, v))
}

// CategorySmallNEQ applies the NEQ predicate on the "category_small" field.
func CategorySmallNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCategorySmall, v))
}

// CategorySmallIn applies the In predicate on the "category_small" field.
func CategorySmallIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCategorySmall, vs...))
}

// CategorySmallNotIn applies the NotIn predicate on the "category_small" field.
func CategorySmallNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCategorySmall, vs...))
}

// CategorySmallGT applies the GT predicate on the "category_small" field.
func CategorySmallGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCategorySmall, v))
}

// CategorySmallGTE applies the GTE predicate on the "category_small" field.
func CategorySmallGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCategorySmall, v))
}

// CategorySmallLT applies the LT predicate on the "category_small" field.
func CategorySmallLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCategorySmall, v))
}

// CategorySmallLTE applies the LTE predicate on the "category_small" field.
func CategorySmallLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCategorySmall, v))
}

// CategorySmallContains applies the Contains predicate on the "category_small" field.
func CategorySmallContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldCategorySmall, v))
}

// CategorySmallHasPrefix applies the HasPrefix predicate on the "category_small" field.
func CategorySmallHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldCategorySmall, v))
}

// CategorySmallHasSuffix applies the HasSuffix predicate on the "category_small" field.
func CategorySmallHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldCategorySmall, v))
}

// CategorySmallEqualFold applies the EqualFold predicate on the "category_small" field.
func CategorySmallEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldCategorySmall, v))
}

// CategorySmallContainsFold applies the ContainsFold predicate on the "category_small" field.
func CategorySmallContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldCategorySmall, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldScore, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
