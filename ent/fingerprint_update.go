// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	entfingerprint "visitor-identity-api/ent/fingerprint"
	"visitor-identity-api/ent/predicate"
	"visitor-identity-api/ent/user"
	"visitor-identity-api/internal/fingerprint"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// FingerprintUpdate is the builder for updating Fingerprint entities.
type FingerprintUpdate struct {
	config
	hooks    []Hook
	mutation *FingerprintMutation
}

// Where appends a list predicates to the FingerprintUpdate builder.
func (_u *FingerprintUpdate) Where(ps ...predicate.Fingerprint) *FingerprintUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHash sets the "hash" field.
func (_u *FingerprintUpdate) SetHash(v string) *FingerprintUpdate {
	_u.mutation.SetHash(v)
	return _u
}

// SetNillableHash sets the "hash" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableHash(v *string) *FingerprintUpdate {
	if v != nil {
		_u.SetHash(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *FingerprintUpdate) SetPayload(v *fingerprint.Composite) *FingerprintUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetIP sets the "ip" field.
func (_u *FingerprintUpdate) SetIP(v string) *FingerprintUpdate {
	_u.mutation.SetIP(v)
	return _u
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableIP(v *string) *FingerprintUpdate {
	if v != nil {
		_u.SetIP(*v)
	}
	return _u
}

// ClearIP clears the value of the "ip" field.
func (_u *FingerprintUpdate) ClearIP() *FingerprintUpdate {
	_u.mutation.ClearIP()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *FingerprintUpdate) SetConfidence(v float64) *FingerprintUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableConfidence(v *float64) *FingerprintUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *FingerprintUpdate) AddConfidence(v float64) *FingerprintUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSuspicious sets the "suspicious" field.
func (_u *FingerprintUpdate) SetSuspicious(v bool) *FingerprintUpdate {
	_u.mutation.SetSuspicious(v)
	return _u
}

// SetNillableSuspicious sets the "suspicious" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableSuspicious(v *bool) *FingerprintUpdate {
	if v != nil {
		_u.SetSuspicious(*v)
	}
	return _u
}

// SetSuspicionReasons sets the "suspicion_reasons" field.
func (_u *FingerprintUpdate) SetSuspicionReasons(v []string) *FingerprintUpdate {
	_u.mutation.SetSuspicionReasons(v)
	return _u
}

// AppendSuspicionReasons appends value to the "suspicion_reasons" field.
func (_u *FingerprintUpdate) AppendSuspicionReasons(v []string) *FingerprintUpdate {
	_u.mutation.AppendSuspicionReasons(v)
	return _u
}

// ClearSuspicionReasons clears the value of the "suspicion_reasons" field.
func (_u *FingerprintUpdate) ClearSuspicionReasons() *FingerprintUpdate {
	_u.mutation.ClearSuspicionReasons()
	return _u
}

// SetSeenCount sets the "seen_count" field.
func (_u *FingerprintUpdate) SetSeenCount(v int) *FingerprintUpdate {
	_u.mutation.ResetSeenCount()
	_u.mutation.SetSeenCount(v)
	return _u
}

// SetNillableSeenCount sets the "seen_count" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableSeenCount(v *int) *FingerprintUpdate {
	if v != nil {
		_u.SetSeenCount(*v)
	}
	return _u
}

// AddSeenCount adds value to the "seen_count" field.
func (_u *FingerprintUpdate) AddSeenCount(v int) *FingerprintUpdate {
	_u.mutation.AddSeenCount(v)
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *FingerprintUpdate) SetLastSeenAt(v time.Time) *FingerprintUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableLastSeenAt(v *time.Time) *FingerprintUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *FingerprintUpdate) SetUserID(id uuid.UUID) *FingerprintUpdate {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *FingerprintUpdate) SetUser(v *User) *FingerprintUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the FingerprintMutation object of the builder.
func (_u *FingerprintUpdate) Mutation() *FingerprintMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *FingerprintUpdate) ClearUser() *FingerprintUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FingerprintUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FingerprintUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FingerprintUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FingerprintUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FingerprintUpdate) check() error {
	if v, ok := _u.mutation.Hash(); ok {
		if err := entfingerprint.HashValidator(v); err != nil {
			return &ValidationError{Name: "hash", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IP(); ok {
		if err := entfingerprint.IPValidator(v); err != nil {
			return &ValidationError{Name: "ip", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.ip": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Fingerprint.user"`)
	}
	return nil
}

func (_u *FingerprintUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entfingerprint.Table, entfingerprint.Columns, sqlgraph.NewFieldSpec(entfingerprint.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Hash(); ok {
		_spec.SetField(entfingerprint.FieldHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(entfingerprint.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.IP(); ok {
		_spec.SetField(entfingerprint.FieldIP, field.TypeString, value)
	}
	if _u.mutation.IPCleared() {
		_spec.ClearField(entfingerprint.FieldIP, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(entfingerprint.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(entfingerprint.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Suspicious(); ok {
		_spec.SetField(entfingerprint.FieldSuspicious, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SuspicionReasons(); ok {
		_spec.SetField(entfingerprint.FieldSuspicionReasons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuspicionReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, entfingerprint.FieldSuspicionReasons, value)
		})
	}
	if _u.mutation.SuspicionReasonsCleared() {
		_spec.ClearField(entfingerprint.FieldSuspicionReasons, field.TypeJSON)
	}
	if value, ok := _u.mutation.SeenCount(); ok {
		_spec.SetField(entfingerprint.FieldSeenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeenCount(); ok {
		_spec.AddField(entfingerprint.FieldSeenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(entfingerprint.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entfingerprint.UserTable,
			Columns: []string{entfingerprint.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entfingerprint.UserTable,
			Columns: []string{entfingerprint.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entfingerprint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FingerprintUpdateOne is the builder for updating a single Fingerprint entity.
type FingerprintUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FingerprintMutation
}

// SetHash sets the "hash" field.
func (_u *FingerprintUpdateOne) SetHash(v string) *FingerprintUpdateOne {
	_u.mutation.SetHash(v)
	return _u
}

// SetNillableHash sets the "hash" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableHash(v *string) *FingerprintUpdateOne {
	if v != nil {
		_u.SetHash(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *FingerprintUpdateOne) SetPayload(v *fingerprint.Composite) *FingerprintUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetIP sets the "ip" field.
func (_u *FingerprintUpdateOne) SetIP(v string) *FingerprintUpdateOne {
	_u.mutation.SetIP(v)
	return _u
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableIP(v *string) *FingerprintUpdateOne {
	if v != nil {
		_u.SetIP(*v)
	}
	return _u
}

// ClearIP clears the value of the "ip" field.
func (_u *FingerprintUpdateOne) ClearIP() *FingerprintUpdateOne {
	_u.mutation.ClearIP()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *FingerprintUpdateOne) SetConfidence(v float64) *FingerprintUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableConfidence(v *float64) *FingerprintUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *FingerprintUpdateOne) AddConfidence(v float64) *FingerprintUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSuspicious sets the "suspicious" field.
func (_u *FingerprintUpdateOne) SetSuspicious(v bool) *FingerprintUpdateOne {
	_u.mutation.SetSuspicious(v)
	return _u
}

// SetNillableSuspicious sets the "suspicious" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableSuspicious(v *bool) *FingerprintUpdateOne {
	if v != nil {
		_u.SetSuspicious(*v)
	}
	return _u
}

// SetSuspicionReasons sets the "suspicion_reasons" field.
func (_u *FingerprintUpdateOne) SetSuspicionReasons(v []string) *FingerprintUpdateOne {
	_u.mutation.SetSuspicionReasons(v)
	return _u
}

// AppendSuspicionReasons appends value to the "suspicion_reasons" field.
func (_u *FingerprintUpdateOne) AppendSuspicionReasons(v []string) *FingerprintUpdateOne {
	_u.mutation.AppendSuspicionReasons(v)
	return _u
}

// ClearSuspicionReasons clears the value of the "suspicion_reasons" field.
func (_u *FingerprintUpdateOne) ClearSuspicionReasons() *FingerprintUpdateOne {
	_u.mutation.ClearSuspicionReasons()
	return _u
}

// SetSeenCount sets the "seen_count" field.
func (_u *FingerprintUpdateOne) SetSeenCount(v int) *FingerprintUpdateOne {
	_u.mutation.ResetSeenCount()
	_u.mutation.SetSeenCount(v)
	return _u
}

// SetNillableSeenCount sets the "seen_count" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableSeenCount(v *int) *FingerprintUpdateOne {
	if v != nil {
		_u.SetSeenCount(*v)
	}
	return _u
}

// AddSeenCount adds value to the "seen_count" field.
func (_u *FingerprintUpdateOne) AddSeenCount(v int) *FingerprintUpdateOne {
	_u.mutation.AddSeenCount(v)
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *FingerprintUpdateOne) SetLastSeenAt(v time.Time) *FingerprintUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableLastSeenAt(v *time.Time) *FingerprintUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *FingerprintUpdateOne) SetUserID(id uuid.UUID) *FingerprintUpdateOne {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *FingerprintUpdateOne) SetUser(v *User) *FingerprintUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the FingerprintMutation object of the builder.
func (_u *FingerprintUpdateOne) Mutation() *FingerprintMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *FingerprintUpdateOne) ClearUser() *FingerprintUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the FingerprintUpdate builder.
func (_u *FingerprintUpdateOne) Where(ps ...predicate.Fingerprint) *FingerprintUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FingerprintUpdateOne) Select(field string, fields ...string) *FingerprintUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Fingerprint entity.
func (_u *FingerprintUpdateOne) Save(ctx context.Context) (*Fingerprint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FingerprintUpdateOne) SaveX(ctx context.Context) *Fingerprint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FingerprintUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FingerprintUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FingerprintUpdateOne) check() error {
	if v, ok := _u.mutation.Hash(); ok {
		if err := entfingerprint.HashValidator(v); err != nil {
			return &ValidationError{Name: "hash", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IP(); ok {
		if err := entfingerprint.IPValidator(v); err != nil {
			return &ValidationError{Name: "ip", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.ip": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Fingerprint.user"`)
	}
	return nil
}

func (_u *FingerprintUpdateOne) sqlSave(ctx context.Context) (_node *Fingerprint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entfingerprint.Table, entfingerprint.Columns, sqlgraph.NewFieldSpec(entfingerprint.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Fingerprint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entfingerprint.FieldID)
		for _, f := range fields {
			if !entfingerprint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entfingerprint.FieldID {
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
	if value, ok := _u.mutation.Hash(); ok {
		_spec.SetField(entfingerprint.FieldHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(entfingerprint.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.IP(); ok {
		_spec.SetField(entfingerprint.FieldIP, field.TypeString, value)
	}
	if _u.mutation.IPCleared() {
		_spec.ClearField(entfingerprint.FieldIP, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(entfingerprint.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(entfingerprint.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Suspicious(); ok {
		_spec.SetField(entfingerprint.FieldSuspicious, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SuspicionReasons(); ok {
		_spec.SetField(entfingerprint.FieldSuspicionReasons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuspicionReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, entfingerprint.FieldSuspicionReasons, value)
		})
	}
	if _u.mutation.SuspicionReasonsCleared() {
		_spec.ClearField(entfingerprint.FieldSuspicionReasons, field.TypeJSON)
	}
	if value, ok := _u.mutation.SeenCount(); ok {
		_spec.SetField(entfingerprint.FieldSeenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeenCount(); ok {
		_spec.AddField(entfingerprint.FieldSeenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(entfingerprint.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entfingerprint.UserTable,
			Columns: []string{entfingerprint.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entfingerprint.UserTable,
			Columns: []string{entfingerprint.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Fingerprint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entfingerprint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
