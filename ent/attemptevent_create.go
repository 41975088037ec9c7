// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daehan/examly/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AttemptEventCreate) SetUserID(v string) *AttemptEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetExamID sets the "exam_id" field.
func (_c *AttemptEventCreate) SetExamID(v string) *AttemptEventCreate {
	_c.mutation.SetExamID(v)
	return _c
}

// SetUserScore sets the "user_score" field.
func (_c *AttemptEventCreate) SetUserScore(v int) *AttemptEventCreate {
	_c.mutation.SetUserScore(v)
	return _c
}

// SetTotalScore sets the "total_score" field.
func (_c *AttemptEventCreate) SetTotalScore(v int) *AttemptEventCreate {
	_c.mutation.SetTotalScore(v)
	return _c
}

// SetPassRate sets the "pass_rate" field.
func (_c *AttemptEventCreate) SetPassRate(v float64) *AttemptEventCreate {
	_c.mutation.SetPassRate(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *AttemptEventCreate) SetPassed(v bool) *AttemptEventCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *AttemptEventCreate) SetCorrectCount(v int) *AttemptEventCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetWrongCount sets the "wrong_count" field.
func (_c *AttemptEventCreate) SetWrongCount(v int) *AttemptEventCreate {
	_c.mutation.SetWrongCount(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *AttemptEventCreate) SetDurationMinutes(v int) *AttemptEventCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AttemptEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := attemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExamID(); !ok {
		return &ValidationError{Name: "exam_id", err: errors.New(`ent: missing required field "AttemptEvent.exam_id"`)}
	}
	if v, ok := _c.mutation.ExamID(); ok {
		if err := attemptevent.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.exam_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserScore(); !ok {
		return &ValidationError{Name: "user_score", err: errors.New(`ent: missing required field "AttemptEvent.user_score"`)}
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		return &ValidationError{Name: "total_score", err: errors.New(`ent: missing required field "AttemptEvent.total_score"`)}
	}
	if _, ok := _c.mutation.PassRate(); !ok {
		return &ValidationError{Name: "pass_rate", err: errors.New(`ent: missing required field "AttemptEvent.pass_rate"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "AttemptEvent.passed"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "AttemptEvent.correct_count"`)}
	}
	if _, ok := _c.mutation.WrongCount(); !ok {
		return &ValidationError{Name: "wrong_count", err: errors.New(`ent: missing required field "AttemptEvent.wrong_count"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`ent: missing required field "AttemptEvent.duration_minutes"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(attemptevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ExamID(); ok {
		_spec.SetField(attemptevent.FieldExamID, field.TypeString, value)
		_node.ExamID = value
	}
	if value, ok := _c.mutation.UserScore(); ok {
		_spec.SetField(attemptevent.FieldUserScore, field.TypeInt, value)
		_node.UserScore = value
	}
	if value, ok := _c.mutation.TotalScore(); ok {
		_spec.SetField(attemptevent.FieldTotalScore, field.TypeInt, value)
		_node.TotalScore = value
	}
	if value, ok := _c.mutation.PassRate(); ok {
		_spec.SetField(attemptevent.FieldPassRate, field.TypeFloat64, value)
		_node.PassRate = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(attemptevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(attemptevent.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.WrongCount(); ok {
		_spec.SetField(attemptevent.FieldWrongCount, field.TypeInt, value)
		_node.WrongCount = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(attemptevent.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	return _node, _spec
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
