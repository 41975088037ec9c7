// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daehan/examly/ent/answerevent"
	"github.com/daehan/examly/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AnswerEventUpdate) SetUserID(v string) *AnswerEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableUserID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetExamID sets the "exam_id" field.
func (_u *AnswerEventUpdate) SetExamID(v string) *AnswerEventUpdate {
	_u.mutation.SetExamID(v)
	return _u
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableExamID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetExamID(*v)
	}
	return _u
}

// SetAttemptSequence sets the "attempt_sequence" field.
func (_u *AnswerEventUpdate) SetAttemptSequence(v int64) *AnswerEventUpdate {
	_u.mutation.ResetAttemptSequence()
	_u.mutation.SetAttemptSequence(v)
	return _u
}

// SetNillableAttemptSequence sets the "attempt_sequence" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableAttemptSequence(v *int64) *AnswerEventUpdate {
	if v != nil {
		_u.SetAttemptSequence(*v)
	}
	return _u
}

// AddAttemptSequence adds value to the "attempt_sequence" field.
func (_u *AnswerEventUpdate) AddAttemptSequence(v int64) *AnswerEventUpdate {
	_u.mutation.AddAttemptSequence(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdate) SetQuestionID(v string) *AnswerEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *AnswerEventUpdate) SetQuestionType(v string) *AnswerEventUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionType(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerEventUpdate) SetDifficulty(v int) *AnswerEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableDifficulty(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *AnswerEventUpdate) AddDifficulty(v int) *AnswerEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetCategoryLarge sets the "category_large" field.
func (_u *AnswerEventUpdate) SetCategoryLarge(v string) *AnswerEventUpdate {
	_u.mutation.SetCategoryLarge(v)
	return _u
}

// SetNillableCategoryLarge sets the "category_large" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCategoryLarge(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetCategoryLarge(*v)
	}
	return _u
}

// SetSubmitted sets the "submitted" field.
func (_u *AnswerEventUpdate) SetSubmitted(v string) *AnswerEventUpdate {
	_u.mutation.SetSubmitted(v)
	return _u
}

// SetNillableSubmitted sets the "submitted" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSubmitted(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSubmitted(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := answerevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamID(); ok {
		if err := answerevent.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.exam_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := answerevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(answerevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamID(); ok {
		_spec.SetField(answerevent.FieldExamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptSequence(); ok {
		_spec.SetField(answerevent.FieldAttemptSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAttemptSequence(); ok {
		_spec.AddField(answerevent.FieldAttemptSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(answerevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(answerevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CategoryLarge(); ok {
		_spec.SetField(answerevent.FieldCategoryLarge, field.TypeString, value)
	}
	if value, ok := _u.mutation.Submitted(); ok {
		_spec.SetField(answerevent.FieldSubmitted, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *AnswerEventUpdateOne) SetUserID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableUserID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetExamID sets the "exam_id" field.
func (_u *AnswerEventUpdateOne) SetExamID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetExamID(v)
	return _u
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableExamID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetExamID(*v)
	}
	return _u
}

// SetAttemptSequence sets the "attempt_sequence" field.
func (_u *AnswerEventUpdateOne) SetAttemptSequence(v int64) *AnswerEventUpdateOne {
	_u.mutation.ResetAttemptSequence()
	_u.mutation.SetAttemptSequence(v)
	return _u
}

// SetNillableAttemptSequence sets the "attempt_sequence" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableAttemptSequence(v *int64) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetAttemptSequence(*v)
	}
	return _u
}

// AddAttemptSequence adds value to the "attempt_sequence" field.
func (_u *AnswerEventUpdateOne) AddAttemptSequence(v int64) *AnswerEventUpdateOne {
	_u.mutation.AddAttemptSequence(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdateOne) SetQuestionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *AnswerEventUpdateOne) SetQuestionType(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionType(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerEventUpdateOne) SetDifficulty(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableDifficulty(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *AnswerEventUpdateOne) AddDifficulty(v int) *AnswerEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetCategoryLarge sets the "category_large" field.
func (_u *AnswerEventUpdateOne) SetCategoryLarge(v string) *AnswerEventUpdateOne {
	_u.mutation.SetCategoryLarge(v)
	return _u
}

// SetNillableCategoryLarge sets the "category_large" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCategoryLarge(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCategoryLarge(*v)
	}
	return _u
}

// SetSubmitted sets the "submitted" field.
func (_u *AnswerEventUpdateOne) SetSubmitted(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSubmitted(v)
	return _u
}

// SetNillableSubmitted sets the "submitted" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSubmitted(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSubmitted(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := answerevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamID(); ok {
		if err := answerevent.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.exam_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := answerevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(answerevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamID(); ok {
		_spec.SetField(answerevent.FieldExamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptSequence(); ok {
		_spec.SetField(answerevent.FieldAttemptSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAttemptSequence(); ok {
		_spec.AddField(answerevent.FieldAttemptSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(answerevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(answerevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CategoryLarge(); ok {
		_spec.SetField(answerevent.FieldCategoryLarge, field.TypeString, value)
	}
	if value, ok := _u.mutation.Submitted(); ok {
		_spec.SetField(answerevent.FieldSubmitted, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
