// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daehan/examly/ent/attemptevent"
	"github.com/daehan/examly/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AttemptEventUpdate) SetUserID(v string) *AttemptEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableUserID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetExamID sets the "exam_id" field.
func (_u *AttemptEventUpdate) SetExamID(v string) *AttemptEventUpdate {
	_u.mutation.SetExamID(v)
	return _u
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableExamID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetExamID(*v)
	}
	return _u
}

// SetUserScore sets the "user_score" field.
func (_u *AttemptEventUpdate) SetUserScore(v int) *AttemptEventUpdate {
	_u.mutation.ResetUserScore()
	_u.mutation.SetUserScore(v)
	return _u
}

// SetNillableUserScore sets the "user_score" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableUserScore(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetUserScore(*v)
	}
	return _u
}

// AddUserScore adds value to the "user_score" field.
func (_u *AttemptEventUpdate) AddUserScore(v int) *AttemptEventUpdate {
	_u.mutation.AddUserScore(v)
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *AttemptEventUpdate) SetTotalScore(v int) *AttemptEventUpdate {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTotalScore(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *AttemptEventUpdate) AddTotalScore(v int) *AttemptEventUpdate {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetPassRate sets the "pass_rate" field.
func (_u *AttemptEventUpdate) SetPassRate(v float64) *AttemptEventUpdate {
	_u.mutation.ResetPassRate()
	_u.mutation.SetPassRate(v)
	return _u
}

// SetNillablePassRate sets the "pass_rate" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillablePassRate(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetPassRate(*v)
	}
	return _u
}

// AddPassRate adds value to the "pass_rate" field.
func (_u *AttemptEventUpdate) AddPassRate(v float64) *AttemptEventUpdate {
	_u.mutation.AddPassRate(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *AttemptEventUpdate) SetPassed(v bool) *AttemptEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillablePassed(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *AttemptEventUpdate) SetCorrectCount(v int) *AttemptEventUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrectCount(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *AttemptEventUpdate) AddCorrectCount(v int) *AttemptEventUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetWrongCount sets the "wrong_count" field.
func (_u *AttemptEventUpdate) SetWrongCount(v int) *AttemptEventUpdate {
	_u.mutation.ResetWrongCount()
	_u.mutation.SetWrongCount(v)
	return _u
}

// SetNillableWrongCount sets the "wrong_count" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableWrongCount(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetWrongCount(*v)
	}
	return _u
}

// AddWrongCount adds value to the "wrong_count" field.
func (_u *AttemptEventUpdate) AddWrongCount(v int) *AttemptEventUpdate {
	_u.mutation.AddWrongCount(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *AttemptEventUpdate) SetDurationMinutes(v int) *AttemptEventUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableDurationMinutes(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *AttemptEventUpdate) AddDurationMinutes(v int) *AttemptEventUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := attemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamID(); ok {
		if err := attemptevent.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.exam_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(attemptevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamID(); ok {
		_spec.SetField(attemptevent.FieldExamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserScore(); ok {
		_spec.SetField(attemptevent.FieldUserScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserScore(); ok {
		_spec.AddField(attemptevent.FieldUserScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(attemptevent.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(attemptevent.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PassRate(); ok {
		_spec.SetField(attemptevent.FieldPassRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPassRate(); ok {
		_spec.AddField(attemptevent.FieldPassRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(attemptevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(attemptevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(attemptevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WrongCount(); ok {
		_spec.SetField(attemptevent.FieldWrongCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrongCount(); ok {
		_spec.AddField(attemptevent.FieldWrongCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(attemptevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(attemptevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *AttemptEventUpdateOne) SetUserID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableUserID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetExamID sets the "exam_id" field.
func (_u *AttemptEventUpdateOne) SetExamID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetExamID(v)
	return _u
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableExamID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetExamID(*v)
	}
	return _u
}

// SetUserScore sets the "user_score" field.
func (_u *AttemptEventUpdateOne) SetUserScore(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetUserScore()
	_u.mutation.SetUserScore(v)
	return _u
}

// SetNillableUserScore sets the "user_score" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableUserScore(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetUserScore(*v)
	}
	return _u
}

// AddUserScore adds value to the "user_score" field.
func (_u *AttemptEventUpdateOne) AddUserScore(v int) *AttemptEventUpdateOne {
	_u.mutation.AddUserScore(v)
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *AttemptEventUpdateOne) SetTotalScore(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTotalScore(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *AttemptEventUpdateOne) AddTotalScore(v int) *AttemptEventUpdateOne {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetPassRate sets the "pass_rate" field.
func (_u *AttemptEventUpdateOne) SetPassRate(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetPassRate()
	_u.mutation.SetPassRate(v)
	return _u
}

// SetNillablePassRate sets the "pass_rate" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillablePassRate(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetPassRate(*v)
	}
	return _u
}

// AddPassRate adds value to the "pass_rate" field.
func (_u *AttemptEventUpdateOne) AddPassRate(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddPassRate(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *AttemptEventUpdateOne) SetPassed(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillablePassed(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *AttemptEventUpdateOne) SetCorrectCount(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrectCount(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *AttemptEventUpdateOne) AddCorrectCount(v int) *AttemptEventUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetWrongCount sets the "wrong_count" field.
func (_u *AttemptEventUpdateOne) SetWrongCount(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetWrongCount()
	_u.mutation.SetWrongCount(v)
	return _u
}

// SetNillableWrongCount sets the "wrong_count" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableWrongCount(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetWrongCount(*v)
	}
	return _u
}

// AddWrongCount adds value to the "wrong_count" field.
func (_u *AttemptEventUpdateOne) AddWrongCount(v int) *AttemptEventUpdateOne {
	_u.mutation.AddWrongCount(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *AttemptEventUpdateOne) SetDurationMinutes(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableDurationMinutes(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *AttemptEventUpdateOne) AddDurationMinutes(v int) *AttemptEventUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := attemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamID(); ok {
		if err := attemptevent.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.exam_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
		_spec.SetField(attemptevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamID(); ok {
		_spec.SetField(attemptevent.FieldExamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserScore(); ok {
		_spec.SetField(attemptevent.FieldUserScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserScore(); ok {
		_spec.AddField(attemptevent.FieldUserScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(attemptevent.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(attemptevent.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PassRate(); ok {
		_spec.SetField(attemptevent.FieldPassRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPassRate(); ok {
		_spec.AddField(attemptevent.FieldPassRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(attemptevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(attemptevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(attemptevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WrongCount(); ok {
		_spec.SetField(attemptevent.FieldWrongCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrongCount(); ok {
		_spec.AddField(attemptevent.FieldWrongCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(attemptevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(attemptevent.FieldDurationMinutes, field.TypeInt, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
