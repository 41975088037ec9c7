// Code generated by ent, DO NOT EDIT.

package lecture

import (
	"entgo.io/ent/dialect/sql"
	"github.com/daehan/examly/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Lecture {
	return predicate.Lecture(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Lecture {
	return predicate.Lecture(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Lecture {
	return predicate.Lecture(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Lecture {
	return predicate.Lecture(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Lecture {
	return predicate.Lecture(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Lecture {
	return predicate.Lecture(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Lecture {
	return predicate.Lecture(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Lecture {
	return predicate.Lecture(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Lecture {
	return predicate.Lecture(sql.FieldLTE(FieldID, id))
}

// LectureID applies equality check predicate on the "lecture_id" field. It's identical to LectureIDEQ.
func LectureID(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldEQ(FieldLectureID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldEQ(FieldTitle, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldEQ(FieldURL, v))
}

// LectureIDEQ applies the EQ predicate on the "lecture_id" field.
func LectureIDEQ(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldEQ(FieldLectureID, v))
}

// LectureIDNEQ applies the NEQ predicate on the "lecture_id" field.
func LectureIDNEQ(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldNEQ(FieldLectureID, v))
}

// LectureIDIn applies the In predicate on the "lecture_id" field.
func LectureIDIn(vs ...string) predicate.Lecture {
	return predicate.Lecture(sql.FieldIn(FieldLectureID, vs...))
}

// LectureIDNotIn applies the NotIn predicate on the "lecture_id" field.
func LectureIDNotIn(vs ...string) predicate.Lecture {
	return predicate.Lecture(sql.FieldNotIn(FieldLectureID, vs...))
}

// LectureIDGT applies the GT predicate on the "lecture_id" field.
func LectureIDGT(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldGT(FieldLectureID, v))
}

// LectureIDGTE applies the GTE predicate on the "lecture_id" field.
func LectureIDGTE(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldGTE(FieldLectureID, v))
}

// LectureIDLT applies the LT predicate on the "lecture_id" field.
func LectureIDLT(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldLT(FieldLectureID, v))
}

// LectureIDLTE applies the LTE predicate on the "lecture_id" field.
func LectureIDLTE(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldLTE(FieldLectureID, v))
}

// LectureIDContains applies the Contains predicate on the "lecture_id" field.
func LectureIDContains(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldContains(FieldLectureID, v))
}

// LectureIDHasPrefix applies the HasPrefix predicate on the "lecture_id" field.
func LectureIDHasPrefix(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldHasPrefix(FieldLectureID, v))
}

// LectureIDHasSuffix applies the HasSuffix predicate on the "lecture_id" field.
func LectureIDHasSuffix(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldHasSuffix(FieldLectureID, v))
}

// LectureIDEqualFold applies the EqualFold predicate on the "lecture_id" field.
func LectureIDEqualFold(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldEqualFold(FieldLectureID, v))
}

// LectureIDContainsFold applies the ContainsFold predicate on the "lecture_id" field.
func LectureIDContainsFold(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldContainsFold(FieldLectureID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Lecture {
	return predicate.Lecture(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Lecture {
	return predicate.Lecture(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldContainsFold(FieldTitle, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.Lecture {
	return predicate.Lecture(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.Lecture {
	return predicate.Lecture(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.Lecture {
	return predicate.Lecture(sql.FieldContainsFold(FieldURL, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Lecture) predicate.Lecture {
	return predicate.Lecture(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Lecture) predicate.Lecture {
	return predicate.Lecture(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Lecture) predicate.Lecture {
	return predicate.Lecture(sql.NotPredicates(p))
}
