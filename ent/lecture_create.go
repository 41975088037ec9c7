// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daehan/examly/ent/lecture"
)

// LectureCreate is the builder for creating a Lecture entity.
type LectureCreate struct {
	config
	mutation *LectureMutation
	hooks    []Hook
}

// SetLectureID sets the "lecture_id" field.
func (_c *LectureCreate) SetLectureID(v string) *LectureCreate {
	_c.mutation.SetLectureID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *LectureCreate) SetTitle(v string) *LectureCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *LectureCreate) SetURL(v string) *LectureCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *LectureCreate) SetNillableURL(v *string) *LectureCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *LectureCreate) SetTags(v []string) *LectureCreate {
	_c.mutation.SetTags(v)
	return _c
}

// Mutation returns the LectureMutation object of the builder.
func (_c *LectureCreate) Mutation() *LectureMutation {
	return _c.mutation
}

// Save creates the Lecture in the database.
func (_c *LectureCreate) Save(ctx context.Context) (*Lecture, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LectureCreate) SaveX(ctx context.Context) *Lecture {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LectureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LectureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LectureCreate) defaults() {
	if _, ok := _c.mutation.URL(); !ok {
		v := lecture.DefaultURL
		_c.mutation.SetURL(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LectureCreate) check() error {
	if _, ok := _c.mutation.LectureID(); !ok {
		return &ValidationError{Name: "lecture_id", err: errors.New(`ent: missing required field "Lecture.lecture_id"`)}
	}
	if v, ok := _c.mutation.LectureID(); ok {
		if err := lecture.LectureIDValidator(v); err != nil {
			return &ValidationError{Name: "lecture_id", err: fmt.Errorf(`ent: validator failed for field "Lecture.lecture_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Lecture.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := lecture.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lecture.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "Lecture.url"`)}
	}
	if _, ok := _c.mutation.Tags(); !ok {
		return &ValidationError{Name: "tags", err: errors.New(`ent: missing required field "Lecture.tags"`)}
	}
	return nil
}

func (_c *LectureCreate) sqlSave(ctx context.Context) (*Lecture, error) {
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

func (_c *LectureCreate) createSpec() (*Lecture, *sqlgraph.CreateSpec) {
	var (
		_node = &Lecture{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lecture.Table, sqlgraph.NewFieldSpec(lecture.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LectureID(); ok {
		_spec.SetField(lecture.FieldLectureID, field.TypeString, value)
		_node.LectureID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(lecture.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(lecture.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(lecture.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	return _node, _spec
}

// LectureCreateBulk is the builder for creating many Lecture entities in bulk.
type LectureCreateBulk struct {
	config
	err      error
	builders []*LectureCreate
}

// Save creates the Lecture entities in the database.
func (_c *LectureCreateBulk) Save(ctx context.Context) ([]*Lecture, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lecture, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LectureMutation)
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
func (_c *LectureCreateBulk) SaveX(ctx context.Context) []*Lecture {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LectureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LectureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
