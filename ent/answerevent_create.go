// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daehan/examly/ent/answerevent"
)

// AnswerEventCreate is the builder for creating a AnswerEvent entity.
type AnswerEventCreate struct {
	config
	mutation *AnswerEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnswerEventCreate) SetSequence(v int64) *AnswerEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnswerEventCreate) SetTimestamp(v time.Time) *AnswerEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableTimestamp(v *time.Time) *AnswerEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AnswerEventCreate) SetUserID(v string) *AnswerEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetExamID sets the "exam_id" field.
func (_c *AnswerEventCreate) SetExamID(v string) *AnswerEventCreate {
	_c.mutation.SetExamID(v)
	return _c
}

// SetAttemptSequence sets the "attempt_sequence" field.
func (_c *AnswerEventCreate) SetAttemptSequence(v int64) *AnswerEventCreate {
	_c.mutation.SetAttemptSequence(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AnswerEventCreate) SetQuestionID(v string) *AnswerEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *AnswerEventCreate) SetQuestionType(v string) *AnswerEventCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *AnswerEventCreate) SetDifficulty(v int) *AnswerEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetCategoryLarge sets the "category_large" field.
func (_c *AnswerEventCreate) SetCategoryLarge(v string) *AnswerEventCreate {
	_c.mutation.SetCategoryLarge(v)
	return _c
}

// SetNillableCategoryLarge sets the "category_large" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableCategoryLarge(v *string) *AnswerEventCreate {
	if v != nil {
		_c.SetCategoryLarge(*v)
	}
	return _c
}

// SetSubmitted sets the "submitted" field.
func (_c *AnswerEventCreate) SetSubmitted(v string) *AnswerEventCreate {
	_c.mutation.SetSubmitted(v)
	return _c
}

// SetNillableSubmitted sets the "submitted" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableSubmitted(v *string) *AnswerEventCreate {
	if v != nil {
		_c.SetSubmitted(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AnswerEventCreate) SetCorrect(v bool) *AnswerEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_c *AnswerEventCreate) Mutation() *AnswerEventMutation {
	return _c.mutation
}

// Save creates the AnswerEvent in the database.
func (_c *AnswerEventCreate) Save(ctx context.Context) (*AnswerEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerEventCreate) SaveX(ctx context.Context) *AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := answerevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.CategoryLarge(); !ok {
		v := answerevent.DefaultCategoryLarge
		_c.mutation.SetCategoryLarge(v)
	}
	if _, ok := _c.mutation.Submitted(); !ok {
		v := answerevent.DefaultSubmitted
		_c.mutation.SetSubmitted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnswerEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnswerEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AnswerEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := answerevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExamID(); !ok {
		return &ValidationError{Name: "exam_id", err: errors.New(`ent: missing required field "AnswerEvent.exam_id"`)}
	}
	if v, ok := _c.mutation.ExamID(); ok {
		if err := answerevent.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.exam_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptSequence(); !ok {
		return &ValidationError{Name: "attempt_sequence", err: errors.New(`ent: missing required field "AnswerEvent.attempt_sequence"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "AnswerEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "AnswerEvent.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := answerevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "AnswerEvent.difficulty"`)}
	}
	if _, ok := _c.mutation.CategoryLarge(); !ok {
		return &ValidationError{Name: "category_large", err: errors.New(`ent: missing required field "AnswerEvent.category_large"`)}
	}
	if _, ok := _c.mutation.Submitted(); !ok {
		return &ValidationError{Name: "submitted", err: errors.New(`ent: missing required field "AnswerEvent.submitted"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AnswerEvent.correct"`)}
	}
	return nil
}

func (_c *AnswerEventCreate) sqlSave(ctx context.Context) (*AnswerEvent, error) {
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

func (_c *AnswerEventCreate) createSpec() (*AnswerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answerevent.Table, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(answerevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(answerevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(answerevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ExamID(); ok {
		_spec.SetField(answerevent.FieldExamID, field.TypeString, value)
		_node.ExamID = value
	}
	if value, ok := _c.mutation.AttemptSequence(); ok {
		_spec.SetField(answerevent.FieldAttemptSequence, field.TypeInt64, value)
		_node.AttemptSequence = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(answerevent.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.CategoryLarge(); ok {
		_spec.SetField(answerevent.FieldCategoryLarge, field.TypeString, value)
		_node.CategoryLarge = value
	}
	if value, ok := _c.mutation.Submitted(); ok {
		_spec.SetField(answerevent.FieldSubmitted, field.TypeString, value)
		_node.Submitted = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	return _node, _spec
}

// AnswerEventCreateBulk is the builder for creating many AnswerEvent entities in bulk.
type AnswerEventCreateBulk struct {
	config
	err      error
	builders []*AnswerEventCreate
}

// Save creates the AnswerEvent entities in the database.
func (_c *AnswerEventCreateBulk) Save(ctx context.Context) ([]*AnswerEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnswerEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerEventMutation)
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
func (_c *AnswerEventCreateBulk) SaveX(ctx context.Context) []*AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
