// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	entfingerprint "visitor-identity-api/ent/fingerprint"
	"visitor-identity-api/ent/user"
	"visitor-identity-api/internal/fingerprint"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// FingerprintCreate is the builder for creating a Fingerprint entity.
type FingerprintCreate struct {
	config
	mutation *FingerprintMutation
	hooks    []Hook
}

// SetHash sets the "hash" field.
func (_c *FingerprintCreate) SetHash(v string) *FingerprintCreate {
	_c.mutation.SetHash(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *FingerprintCreate) SetPayload(v *fingerprint.Composite) *FingerprintCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetIP sets the "ip" field.
func (_c *FingerprintCreate) SetIP(v string) *FingerprintCreate {
	_c.mutation.SetIP(v)
	return _c
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableIP(v *string) *FingerprintCreate {
	if v != nil {
		_c.SetIP(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *FingerprintCreate) SetConfidence(v float64) *FingerprintCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableConfidence(v *float64) *FingerprintCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetSuspicious sets the "suspicious" field.
func (_c *FingerprintCreate) SetSuspicious(v bool) *FingerprintCreate {
	_c.mutation.SetSuspicious(v)
	return _c
}

// SetNillableSuspicious sets the "suspicious" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableSuspicious(v *bool) *FingerprintCreate {
	if v != nil {
		_c.SetSuspicious(*v)
	}
	return _c
}

// SetSuspicionReasons sets the "suspicion_reasons" field.
func (_c *FingerprintCreate) SetSuspicionReasons(v []string) *FingerprintCreate {
	_c.mutation.SetSuspicionReasons(v)
	return _c
}

// SetSeenCount sets the "seen_count" field.
func (_c *FingerprintCreate) SetSeenCount(v int) *FingerprintCreate {
	_c.mutation.SetSeenCount(v)
	return _c
}

// SetNillableSeenCount sets the "seen_count" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableSeenCount(v *int) *FingerprintCreate {
	if v != nil {
		_c.SetSeenCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FingerprintCreate) SetCreatedAt(v time.Time) *FingerprintCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableCreatedAt(v *time.Time) *FingerprintCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *FingerprintCreate) SetLastSeenAt(v time.Time) *FingerprintCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableLastSeenAt(v *time.Time) *FingerprintCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FingerprintCreate) SetID(v uuid.UUID) *FingerprintCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableID(v *uuid.UUID) *FingerprintCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_c *FingerprintCreate) SetUserID(id uuid.UUID) *FingerprintCreate {
	_c.mutation.SetUserID(id)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *FingerprintCreate) SetUser(v *User) *FingerprintCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the FingerprintMutation object of the builder.
func (_c *FingerprintCreate) Mutation() *FingerprintMutation {
	return _c.mutation
}

// Save creates the Fingerprint in the database.
func (_c *FingerprintCreate) Save(ctx context.Context) (*Fingerprint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FingerprintCreate) SaveX(ctx context.Context) *Fingerprint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FingerprintCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FingerprintCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FingerprintCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := entfingerprint.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Suspicious(); !ok {
		v := entfingerprint.DefaultSuspicious
		_c.mutation.SetSuspicious(v)
	}
	if _, ok := _c.mutation.SeenCount(); !ok {
		v := entfingerprint.DefaultSeenCount
		_c.mutation.SetSeenCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := entfingerprint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		v := entfingerprint.DefaultLastSeenAt()
		_c.mutation.SetLastSeenAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := entfingerprint.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FingerprintCreate) check() error {
	if _, ok := _c.mutation.Hash(); !ok {
		return &ValidationError{Name: "hash", err: errors.New(`ent: missing required field "Fingerprint.hash"`)}
	}
	if v, ok := _c.mutation.Hash(); ok {
		if err := entfingerprint.HashValidator(v); err != nil {
			return &ValidationError{Name: "hash", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "Fingerprint.payload"`)}
	}
	if v, ok := _c.mutation.IP(); ok {
		if err := entfingerprint.IPValidator(v); err != nil {
			return &ValidationError{Name: "ip", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.ip": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Fingerprint.confidence"`)}
	}
	if _, ok := _c.mutation.Suspicious(); !ok {
		return &ValidationError{Name: "suspicious", err: errors.New(`ent: missing required field "Fingerprint.suspicious"`)}
	}
	if _, ok := _c.mutation.SeenCount(); !ok {
		return &ValidationError{Name: "seen_count", err: errors.New(`ent: missing required field "Fingerprint.seen_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Fingerprint.created_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "Fingerprint.last_seen_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Fingerprint.user"`)}
	}
	return nil
}

func (_c *FingerprintCreate) sqlSave(ctx context.Context) (*Fingerprint, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FingerprintCreate) createSpec() (*Fingerprint, *sqlgraph.CreateSpec) {
	var (
		_node = &Fingerprint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entfingerprint.Table, sqlgraph.NewFieldSpec(entfingerprint.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Hash(); ok {
		_spec.SetField(entfingerprint.FieldHash, field.TypeString, value)
		_node.Hash = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(entfingerprint.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.IP(); ok {
		_spec.SetField(entfingerprint.FieldIP, field.TypeString, value)
		_node.IP = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(entfingerprint.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Suspicious(); ok {
		_spec.SetField(entfingerprint.FieldSuspicious, field.TypeBool, value)
		_node.Suspicious = value
	}
	if value, ok := _c.mutation.SuspicionReasons(); ok {
		_spec.SetField(entfingerprint.FieldSuspicionReasons, field.TypeJSON, value)
		_node.SuspicionReasons = value
	}
	if value, ok := _c.mutation.SeenCount(); ok {
		_spec.SetField(entfingerprint.FieldSeenCount, field.TypeInt, value)
		_node.SeenCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(entfingerprint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(entfingerprint.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.user_fingerprints = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FingerprintCreateBulk is the builder for creating many Fingerprint entities in bulk.
type FingerprintCreateBulk struct {
	config
	err      error
	builders []*FingerprintCreate
}

// Save creates the Fingerprint entities in the database.
func (_c *FingerprintCreateBulk) Save(ctx context.Context) ([]*Fingerprint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Fingerprint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FingerprintMutation)
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
func (_c *FingerprintCreateBulk) SaveX(ctx context.Context) []*Fingerprint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FingerprintCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FingerprintCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
