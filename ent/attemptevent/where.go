// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/daehan/examly/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldUserID, v))
}

// ExamID applies equality check predicate on the "exam_id" field. It's identical to ExamIDEQ.
func ExamID(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldExamID, v))
}

// UserScore applies equality check predicate on the "user_score" field. It's identical to UserScoreEQ.
func UserScore(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldUserScore, v))
}

// TotalScore applies equality check predicate on the "total_score" field. It's identical to TotalScoreEQ.
func TotalScore(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldTotalScore, v))
}

// PassRate applies equality check predicate on the "pass_rate" field. It's identical to PassRateEQ.
func PassRate(v float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldPassRate, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldPassed, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// WrongCount applies equality check predicate on the "wrong_count" field. It's identical to WrongCountEQ.
func WrongCount(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldWrongCount, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldDurationMinutes, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContainsFold(FieldUserID, v))
}

// ExamIDEQ applies the EQ predicate on the "exam_id" field.
func ExamIDEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldExamID, v))
}

// ExamIDNEQ applies the NEQ predicate on the "exam_id" field.
func ExamIDNEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldExamID, v))
}

// ExamIDIn applies the In predicate on the "exam_id" field.
func ExamIDIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldExamID, vs...))
}

// ExamIDNotIn applies the NotIn predicate on the "exam_id" field.
func ExamIDNotIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldExamID, vs...))
}

// ExamIDGT applies the GT predicate on the "exam_id" field.
func ExamIDGT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldExamID, v))
}

// ExamIDGTE applies the GTE predicate on the "exam_id" field.
func ExamIDGTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldExamID, v))
}

// ExamIDLT applies the LT predicate on the "exam_id" field.
func ExamIDLT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldExamID, v))
}

// ExamIDLTE applies the LTE predicate on the "exam_id" field.
func ExamIDLTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldExamID, v))
}

// ExamIDContains applies the Contains predicate on the "exam_id" field.
func ExamIDContains(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContains(FieldExamID, v))
}

// ExamIDHasPrefix applies the HasPrefix predicate on the "exam_id" field.
func ExamIDHasPrefix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasPrefix(FieldExamID, v))
}

// ExamIDHasSuffix applies the HasSuffix predicate on the "exam_id" field.
func ExamIDHasSuffix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasSuffix(FieldExamID, v))
}

// ExamIDEqualFold applies the EqualFold predicate on the "exam_id" field.
func ExamIDEqualFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEqualFold(FieldExamID, v))
}

// ExamIDContainsFold applies the ContainsFold predicate on the "exam_id" field.
func ExamIDContainsFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContainsFold(FieldExamID, v))
}

// UserScoreEQ applies the EQ predicate on the "user_score" field.
func UserScoreEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldUserScore, v))
}

// UserScoreNEQ applies the NEQ predicate on the "user_score" field.
func UserScoreNEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldUserScore, v))
}

// UserScoreIn applies the In predicate on the "user_score" field.
func UserScoreIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldUserScore, vs...))
}

// UserScoreNotIn applies the NotIn predicate on the "user_score" field.
func UserScoreNotIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldUserScore, vs...))
}

// UserScoreGT applies the GT predicate on the "user_score" field.
func UserScoreGT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldUserScore, v))
}

// UserScoreGTE applies the GTE predicate on the "user_score" field.
func UserScoreGTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldUserScore, v))
}

// UserScoreLT applies the LT predicate on the "user_score" field.
func UserScoreLT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldUserScore, v))
}

// UserScoreLTE applies the LTE predicate on the "user_score" field.
func UserScoreLTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldUserScore, v))
}

// TotalScoreEQ applies the EQ predicate on the "total_score" field.
func TotalScoreEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldTotalScore, v))
}

// TotalScoreNEQ applies the NEQ predicate on the "total_score" field.
func TotalScoreNEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldTotalScore, v))
}

// TotalScoreIn applies the In predicate on the "total_score" field.
func TotalScoreIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldTotalScore, vs...))
}

// TotalScoreNotIn applies the NotIn predicate on the "total_score" field.
func TotalScoreNotIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldTotalScore, vs...))
}

// TotalScoreGT applies the GT predicate on the "total_score" field.
func TotalScoreGT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldTotalScore, v))
}

// TotalScoreGTE applies the GTE predicate on the "total_score" field.
func TotalScoreGTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldTotalScore, v))
}

// TotalScoreLT applies the LT predicate on the "total_score" field.
func TotalScoreLT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldTotalScore, v))
}

// TotalScoreLTE applies the LTE predicate on the "total_score" field.
func TotalScoreLTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldTotalScore, v))
}

// PassRateEQ applies the EQ predicate on the "pass_rate" field.
func PassRateEQ(v float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldPassRate, v))
}

// PassRateNEQ applies the NEQ predicate on the "pass_rate" field.
func PassRateNEQ(v float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldPassRate, v))
}

// PassRateIn applies the In predicate on the "pass_rate" field.
func PassRateIn(vs ...float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldPassRate, vs...))
}

// PassRateNotIn applies the NotIn predicate on the "pass_rate" field.
func PassRateNotIn(vs ...float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldPassRate, vs...))
}

// PassRateGT applies the GT predicate on the "pass_rate" field.
func PassRateGT(v float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldPassRate, v))
}

// PassRateGTE applies the GTE predicate on the "pass_rate" field.
func PassRateGTE(v float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldPassRate, v))
}

// PassRateLT applies the LT predicate on the "pass_rate" field.
func PassRateLT(v float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldPassRate, v))
}

// PassRateLTE applies the LTE predicate on the "pass_rate" field.
func PassRateLTE(v float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldPassRate, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldPassed, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldCorrectCount, v))
}

// WrongCountEQ applies the EQ predicate on the "wrong_count" field.
func WrongCountEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldWrongCount, v))
}

// WrongCountNEQ applies the NEQ predicate on the "wrong_count" field.
func WrongCountNEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldWrongCount, v))
}

// WrongCountIn applies the In predicate on the "wrong_count" field.
func WrongCountIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldWrongCount, vs...))
}

// WrongCountNotIn applies the NotIn predicate on the "wrong_count" field.
func WrongCountNotIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldWrongCount, vs...))
}

// WrongCountGT applies the GT predicate on the "wrong_count" field.
func WrongCountGT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldWrongCount, v))
}

// WrongCountGTE applies the GTE predicate on the "wrong_count" field.
func WrongCountGTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldWrongCount, v))
}

// WrongCountLT applies the LT predicate on the "wrong_count" field.
func WrongCountLT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldWrongCount, v))
}

// WrongCountLTE applies the LTE predicate on the "wrong_count" field.
func WrongCountLTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldWrongCount, v))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldDurationMinutes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AttemptEvent) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AttemptEvent) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AttemptEvent) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.NotPredicates(p))
}
