// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daehan/examly/ent/question"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
}

// SetQuestionID sets the "question_id" field.
func (_c *QuestionCreate) SetQuestionID(v string) *QuestionCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetText sets the "text" field.
func (_c *QuestionCreate) SetText(v string) *QuestionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *QuestionCreate) SetAnswer(v string) *QuestionCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *QuestionCreate) SetExplanation(v string) *QuestionCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableExplanation(v *string) *QuestionCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *QuestionCreate) SetQuestionType(v string) *QuestionCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuestionCreate) SetDifficulty(v int) *QuestionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetCategoryLarge sets the "category_large" field.
func (_c *QuestionCreate) SetCategoryLarge(v string) *QuestionCreate {
	_c.mutation.SetCategoryLarge(v)
	return _c
}

// SetNillableCategoryLarge sets the "category_large" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCategoryLarge(v *string) *QuestionCreate {
	if v != nil {
		_c.SetCategoryLarge(*v)
	}
	return _c
}

// SetCategoryMedium sets the "category_medium" field.
func (_c *QuestionCreate) SetCategoryMedium(v string) *QuestionCreate {
	_c.mutation.SetCategoryMedium(v)
	return _c
}

// SetNillableCategoryMedium sets the "category_medium" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCategoryMedium(v *string) *QuestionCreate {
	if v != nil {
		_c.SetCategoryMedium(*v)
	}
	return _c
}

// SetCategorySmall sets the "category_small" field.
func (_c *QuestionCreate) SetCategorySmall(v string) *QuestionCreate {
	_c.mutation.SetCategorySmall(v)
	return _c
}

// SetNillableCategorySmall sets the "category_small" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCategorySmall(v *string) *QuestionCreate {
	if v != nil {
		_c.SetCategorySmall(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *QuestionCreate) SetScore(v int) *QuestionCreate {
	_c.mutation.SetScore(v)
	return _c
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.Explanation(); !ok {
		v := question.DefaultExplanation
		_c.mutation.SetExplanation(v)
	}
	if _, ok := _c.mutation.CategoryLarge(); !ok {
		v := question.DefaultCategoryLarge
		_c.mutation.SetCategoryLarge(v)
	}
	if _, ok := _c.mutation.CategoryMedium(); !ok {
		v := question.DefaultCategoryMedium
		_c.mutation.SetCategoryMedium(v)
	}
	if _, ok := _c.mutation.CategorySmall(); !ok {
		v := question.DefaultCategorySmall
		_c.mutation.SetCategorySmall(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "Question.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := question.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Question.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Question.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := question.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Question.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "Question.answer"`)}
	}
	if v, ok := _c.mutation.Answer(); ok {
		if err := question.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Question.answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "Question.explanation"`)}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "Question.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := question.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "Question.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Question.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CategoryLarge(); !ok {
		return &ValidationError{Name: "category_large", err: errors.New(`ent: missing required field "Question.category_large"`)}
	}
	if _, ok := _c.mutation.CategoryMedium(); !ok {
		return &ValidationError{Name: "category_medium", err: errors.New(`ent: missing required field "Question.category_medium"`)}
	}
	if _, ok := _c.mutation.CategorySmall(); !ok {
		return &ValidationError{Name: "category_small", err: errors.New(`ent: missing required field "Question.category_small"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Question.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := question.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Question.score": %w`, err)}
		}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(question.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(question.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(question.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.CategoryLarge(); ok {
		_spec.SetField(question.FieldCategoryLarge, field.TypeString, value)
		_node.CategoryLarge = value
	}
	if value, ok := _c.mutation.CategoryMedium(); ok {
		_spec.SetField(question.FieldCategoryMedium, field.TypeString, value)
		_node.CategoryMedium = value
	}
	if value, ok := _c.mutation.CategorySmall(); ok {
		_spec.SetField(question.FieldCategorySmall, field.TypeString, value)
		_node.CategorySmall = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(question.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	return _node, _spec
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
