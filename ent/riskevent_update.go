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
	"github.com/mach-hub-g1/edugamers-engine/ent/predicate"
	"github.com/mach-hub-g1/edugamers-engine/ent/riskevent"
)

// RiskEventUpdate is the builder for updating RiskEvent entities.
type RiskEventUpdate struct {
	config
	hooks    []Hook
	mutation *RiskEventMutation
}

// Where appends a list predicates to the RiskEventUpdate builder.
func (_u *RiskEventUpdate) Where(ps ...predicate.RiskEvent) *RiskEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *RiskEventUpdate) SetLearnerID(v string) *RiskEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *RiskEventUpdate) SetNillableLearnerID(v *string) *RiskEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *RiskEventUpdate) SetLevel(v string) *RiskEventUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *RiskEventUpdate) SetNillableLevel(v *string) *RiskEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetFactors sets the "factors" field.
func (_u *RiskEventUpdate) SetFactors(v []string) *RiskEventUpdate {
	_u.mutation.SetFactors(v)
	return _u
}

// AppendFactors appends value to the "factors" field.
func (_u *RiskEventUpdate) AppendFactors(v []string) *RiskEventUpdate {
	_u.mutation.AppendFactors(v)
	return _u
}

// SetData sets the "data" field.
func (_u *RiskEventUpdate) SetData(v map[string]interface{}) *RiskEventUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the RiskEventMutation object of the builder.
func (_u *RiskEventUpdate) Mutation() *RiskEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RiskEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RiskEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RiskEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RiskEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RiskEventUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := riskevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "RiskEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := riskevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "RiskEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *RiskEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(riskevent.Table, riskevent.Columns, sqlgraph.NewFieldSpec(riskevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(riskevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(riskevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Factors(); ok {
		_spec.SetField(riskevent.FieldFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, riskevent.FieldFactors, value)
		})
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(riskevent.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{riskevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RiskEventUpdateOne is the builder for updating a single RiskEvent entity.
type RiskEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RiskEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *RiskEventUpdateOne) SetLearnerID(v string) *RiskEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *RiskEventUpdateOne) SetNillableLearnerID(v *string) *RiskEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *RiskEventUpdateOne) SetLevel(v string) *RiskEventUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *RiskEventUpdateOne) SetNillableLevel(v *string) *RiskEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetFactors sets the "factors" field.
func (_u *RiskEventUpdateOne) SetFactors(v []string) *RiskEventUpdateOne {
	_u.mutation.SetFactors(v)
	return _u
}

// AppendFactors appends value to the "factors" field.
func (_u *RiskEventUpdateOne) AppendFactors(v []string) *RiskEventUpdateOne {
	_u.mutation.AppendFactors(v)
	return _u
}

// SetData sets the "data" field.
func (_u *RiskEventUpdateOne) SetData(v map[string]interface{}) *RiskEventUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the RiskEventMutation object of the builder.
func (_u *RiskEventUpdateOne) Mutation() *RiskEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RiskEventUpdate builder.
func (_u *RiskEventUpdateOne) Where(ps ...predicate.RiskEvent) *RiskEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RiskEventUpdateOne) Select(field string, fields ...string) *RiskEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RiskEvent entity.
func (_u *RiskEventUpdateOne) Save(ctx context.Context) (*RiskEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RiskEventUpdateOne) SaveX(ctx context.Context) *RiskEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RiskEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RiskEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RiskEventUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := riskevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "RiskEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := riskevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "RiskEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *RiskEventUpdateOne) sqlSave(ctx context.Context) (_node *RiskEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(riskevent.Table, riskevent.Columns, sqlgraph.NewFieldSpec(riskevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RiskEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, riskevent.FieldID)
		for _, f := range fields {
			if !riskevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != riskevent.FieldID {
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
		_spec.SetField(riskevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(riskevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Factors(); ok {
		_spec.SetField(riskevent.FieldFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, riskevent.FieldFactors, value)
		})
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(riskevent.FieldData, field.TypeJSON, value)
	}
	_node = &RiskEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{riskevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
