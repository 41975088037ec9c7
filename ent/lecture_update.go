// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/daehan/examly/ent/lecture"
	"github.com/daehan/examly/ent/predicate"
)

// LectureUpdate is the builder for updating Lecture entities.
type LectureUpdate struct {
	config
	hooks    []Hook
	mutation *LectureMutation
}

// Where appends a list predicates to the LectureUpdate builder.
func (_u *LectureUpdate) Where(ps ...predicate.Lecture) *LectureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *LectureUpdate) SetTitle(v string) *LectureUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LectureUpdate) SetNillableTitle(v *string) *LectureUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *LectureUpdate) SetURL(v string) *LectureUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *LectureUpdate) SetNillableURL(v *string) *LectureUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *LectureUpdate) SetTags(v []string) *LectureUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *LectureUpdate) AppendTags(v []string) *LectureUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// Mutation returns the LectureMutation object of the builder.
func (_u *LectureUpdate) Mutation() *LectureMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LectureUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LectureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LectureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LectureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LectureUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := lecture.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lecture.title": %w`, err)}
		}
	}
	return nil
}

func (_u *LectureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lecture.Table, lecture.Columns, sqlgraph.NewFieldSpec(lecture.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lecture.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(lecture.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(lecture.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lecture.FieldTags, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lecture.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LectureUpdateOne is the builder for updating a single Lecture entity.
type LectureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LectureMutation
}

// SetTitle sets the "title" field.
func (_u *LectureUpdateOne) SetTitle(v string) *LectureUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LectureUpdateOne) SetNillableTitle(v *string) *LectureUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *LectureUpdateOne) SetURL(v string) *LectureUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *LectureUpdateOne) SetNillableURL(v *string) *LectureUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *LectureUpdateOne) SetTags(v []string) *LectureUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *LectureUpdateOne) AppendTags(v []string) *LectureUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// Mutation returns the LectureMutation object of the builder.
func (_u *LectureUpdateOne) Mutation() *LectureMutation {
	return _u.mutation
}

// Where appends a list predicates to the LectureUpdate builder.
func (_u *LectureUpdateOne) Where(ps ...predicate.Lecture) *LectureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LectureUpdateOne) Select(field string, fields ...string) *LectureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lecture entity.
func (_u *LectureUpdateOne) Save(ctx context.Context) (*Lecture, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LectureUpdateOne) SaveX(ctx context.Context) *Lecture {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LectureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LectureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LectureUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := lecture.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lecture.title": %w`, err)}
		}
	}
	return nil
}

func (_u *LectureUpdateOne) sqlSave(ctx context.Context) (_node *Lecture, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lecture.Table, lecture.Columns, sqlgraph.NewFieldSpec(lecture.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lecture.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lecture.FieldID)
		for _, f := range fields {
			if !lecture.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lecture.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lecture.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(lecture.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(lecture.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lecture.FieldTags, value)
		})
	}
	_node = &Lecture{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lecture.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
