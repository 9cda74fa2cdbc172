// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mach-hub-g1/edugamers-engine/ent/pathevent"
	"github.com/mach-hub-g1/edugamers-engine/ent/predicate"
)

// PathEventUpdate is the builder for updating PathEvent entities.
type PathEventUpdate struct {
	config
	hooks    []Hook
	mutation *PathEventMutation
}

// Where appends a list predicates to the PathEventUpdate builder.
func (_u *PathEventUpdate) Where(ps ...predicate.PathEvent) *PathEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *PathEventUpdate) SetLearnerID(v string) *PathEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableLearnerID(v *string) *PathEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PathEventUpdate) SetSubject(v string) *PathEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableSubject(v *string) *PathEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PathEventUpdate) SetDifficulty(v int) *PathEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableDifficulty(v *int) *PathEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *PathEventUpdate) AddDifficulty(v int) *PathEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetData sets the "data" field.
func (_u *PathEventUpdate) SetData(v map[string]interface{}) *PathEventUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the PathEventMutation object of the builder.
func (_u *PathEventUpdate) Mutation() *PathEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PathEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PathEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathEventUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := pathevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PathEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := pathevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "PathEvent.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *PathEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathevent.Table, pathevent.Columns, sqlgraph.NewFieldSpec(pathevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(pathevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(pathevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(pathevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(pathevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(pathevent.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PathEventUpdateOne is the builder for updating a single PathEvent entity.
type PathEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PathEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *PathEventUpdateOne) SetLearnerID(v string) *PathEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableLearnerID(v *string) *PathEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PathEventUpdateOne) SetSubject(v string) *PathEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableSubject(v *string) *PathEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PathEventUpdateOne) SetDifficulty(v int) *PathEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableDifficulty(v *int) *PathEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *PathEventUpdateOne) AddDifficulty(v int) *PathEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetData sets the "data" field.
func (_u *PathEventUpdateOne) SetData(v map[string]interface{}) *PathEventUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the PathEventMutation object of the builder.
func (_u *PathEventUpdateOne) Mutation() *PathEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PathEventUpdate builder.
func (_u *PathEventUpdateOne) Where(ps ...predicate.PathEvent) *PathEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PathEventUpdateOne) Select(field string, fields ...string) *PathEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PathEvent entity.
func (_u *PathEventUpdateOne) Save(ctx context.Context) (*PathEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathEventUpdateOne) SaveX(ctx context.Context) *PathEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PathEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathEventUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := pathevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PathEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := pathevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "PathEvent.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *PathEventUpdateOne) sqlSave(ctx context.Context) (_node *PathEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathevent.Table, pathevent.Columns, sqlgraph.NewFieldSpec(pathevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PathEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pathevent.FieldID)
		for _, f := range fields {
			if !pathevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pathevent.FieldID {
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
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(pathevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(pathevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(pathevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(pathevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(pathevent.FieldData, field.TypeJSON, value)
	}
	_node = &PathEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
