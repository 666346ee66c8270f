// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	entfingerprint "visitor-identity-api/ent/fingerprint"
	"visitor-identity-api/ent/predicate"
	"visitor-identity-api/ent/user"
	"visitor-identity-api/internal/fingerprint"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeFingerprint = "Fingerprint"
	TypeUser        = "User"
)

// FingerprintMutation represents an operation that mutates the Fingerprint nodes in the graph.
type FingerprintMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	hash                    *string
	payload                 **fingerprint.Composite
	ip                      *string
	confidence              *float64
	addconfidence           *float64
	suspicious              *bool
	suspicion_reasons       *[]string
	appendsuspicion_reasons []string
	seen_count              *int
	addseen_count           *int
	created_at              *time.Time
	last_seen_at            *time.Time
	clearedFields           map[string]struct{}
	user                    *uuid.UUID
	cleareduser             bool
	done                    bool
	oldValue                func(context.Context) (*Fingerprint, error)
	predicates              []predicate.Fingerprint
}

var _ ent.Mutation = (*FingerprintMutation)(nil)

// fingerprintOption allows management of the mutation configuration using functional options.
type fingerprintOption func(*FingerprintMutation)

// newFingerprintMutation creates new mutation for the Fingerprint entity.
func newFingerprintMutation(c config, op Op, opts ...fingerprintOption) *FingerprintMutation {
	m := &FingerprintMutation{
		config:        c,
		op:            op,
		typ:           TypeFingerprint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFingerprintID sets the ID field of the mutation.
func withFingerprintID(id uuid.UUID) fingerprintOption {
	return func(m *FingerprintMutation) {
		var (
			err   error
			once  sync.Once
			value *Fingerprint
		)
		m.oldValue = func(ctx context.Context) (*Fingerprint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Fingerprint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFingerprint sets the old Fingerprint of the mutation.
func withFingerprint(node *Fingerprint) fingerprintOption {
	return func(m *FingerprintMutation) {
		m.oldValue = func(context.Context) (*Fingerprint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FingerprintMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FingerprintMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Fingerprint entities.
func (m *FingerprintMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FingerprintMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FingerprintMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Fingerprint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHash sets the "hash" field.
func (m *FingerprintMutation) SetHash(s string) {
	m.hash = &s
}

// Hash returns the value of the "hash" field in the mutation.
func (m *FingerprintMutation) Hash() (r string, exists bool) {
	v := m.hash
	if v == nil {
		return
	}
	return *v, true
}

// OldHash returns the old "hash" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHash: %w", err)
	}
	return oldValue.Hash, nil
}

// ResetHash resets all changes to the "hash" field.
func (m *FingerprintMutation) ResetHash() {
	m.hash = nil
}

// SetPayload sets the "payload" field.
func (m *FingerprintMutation) SetPayload(f *fingerprint.Composite) {
	m.payload = &f
}

// Payload returns the value of the "payload" field in the mutation.
func (m *FingerprintMutation) Payload() (r *fingerprint.Composite, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldPayload(ctx context.Context) (v *fingerprint.Composite, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *FingerprintMutation) ResetPayload() {
	m.payload = nil
}

// SetIP sets the "ip" field.
func (m *FingerprintMutation) SetIP(s string) {
	m.ip = &s
}

// IP returns the value of the "ip" field in the mutation.
func (m *FingerprintMutation) IP() (r string, exists bool) {
	v := m.ip
	if v == nil {
		return
	}
	return *v, true
}

// OldIP returns the old "ip" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldIP(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIP is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIP requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIP: %w", err)
	}
	return oldValue.IP, nil
}

// ClearIP clears the value of the "ip" field.
func (m *FingerprintMutation) ClearIP() {
	m.ip = nil
	m.clearedFields[entfingerprint.FieldIP] = struct{}{}
}

// IPCleared returns if the "ip" field was cleared in this mutation.
func (m *FingerprintMutation) IPCleared() bool {
	_, ok := m.clearedFields[entfingerprint.FieldIP]
	return ok
}

// ResetIP resets all changes to the "ip" field.
func (m *FingerprintMutation) ResetIP() {
	m.ip = nil
	delete(m.clearedFields, entfingerprint.FieldIP)
}

// SetConfidence sets the "confidence" field.
func (m *FingerprintMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *FingerprintMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *FingerprintMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *FingerprintMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *FingerprintMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSuspicious sets the "suspicious" field.
func (m *FingerprintMutation) SetSuspicious(b bool) {
	m.suspicious = &b
}

// Suspicious returns the value of the "suspicious" field in the mutation.
func (m *FingerprintMutation) Suspicious() (r bool, exists bool) {
	v := m.suspicious
	if v == nil {
		return
	}
	return *v, true
}

// OldSuspicious returns the old "suspicious" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldSuspicious(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuspicious is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuspicious requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuspicious: %w", err)
	}
	return oldValue.Suspicious, nil
}

// ResetSuspicious resets all changes to the "suspicious" field.
func (m *FingerprintMutation) ResetSuspicious() {
	m.suspicious = nil
}

// SetSuspicionReasons sets the "suspicion_reasons" field.
func (m *FingerprintMutation) SetSuspicionReasons(s []string) {
	m.suspicion_reasons = &s
	m.appendsuspicion_reasons = nil
}

// SuspicionReasons returns the value of the "suspicion_reasons" field in the mutation.
func (m *FingerprintMutation) SuspicionReasons() (r []string, exists bool) {
	v := m.suspicion_reasons
	if v == nil {
		return
	}
	return *v, true
}

// OldSuspicionReasons returns the old "suspicion_reasons" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldSuspicionReasons(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuspicionReasons is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuspicionReasons requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuspicionReasons: %w", err)
	}
	return oldValue.SuspicionReasons, nil
}

// AppendSuspicionReasons adds s to the "suspicion_reasons" field.
func (m *FingerprintMutation) AppendSuspicionReasons(s []string) {
	m.appendsuspicion_reasons = append(m.appendsuspicion_reasons, s...)
}

// AppendedSuspicionReasons returns the list of values that were appended to the "suspicion_reasons" field in this mutation.
func (m *FingerprintMutation) AppendedSuspicionReasons() ([]string, bool) {
	if len(m.appendsuspicion_reasons) == 0 {
		return nil, false
	}
	return m.appendsuspicion_reasons, true
}

// ClearSuspicionReasons clears the value of the "suspicion_reasons" field.
func (m *FingerprintMutation) ClearSuspicionReasons() {
	m.suspicion_reasons = nil
	m.appendsuspicion_reasons = nil
	m.clearedFields[entfingerprint.FieldSuspicionReasons] = struct{}{}
}

// SuspicionReasonsCleared returns if the "suspicion_reasons" field was cleared in this mutation.
func (m *FingerprintMutation) SuspicionReasonsCleared() bool {
	_, ok := m.clearedFields[entfingerprint.FieldSuspicionReasons]
	return ok
}

// ResetSuspicionReasons resets all changes to the "suspicion_reasons" field.
func (m *FingerprintMutation) ResetSuspicionReasons() {
	m.suspicion_reasons = nil
	m.appendsuspicion_reasons = nil
	delete(m.clearedFields, entfingerprint.FieldSuspicionReasons)
}

// SetSeenCount sets the "seen_count" field.
func (m *FingerprintMutation) SetSeenCount(i int) {
	m.seen_count = &i
	m.addseen_count = nil
}

// SeenCount returns the value of the "seen_count" field in the mutation.
func (m *FingerprintMutation) SeenCount() (r int, exists bool) {
	v := m.seen_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSeenCount returns the old "seen_count" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldSeenCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeenCount: %w", err)
	}
	return oldValue.SeenCount, nil
}

// AddSeenCount adds i to the "seen_count" field.
func (m *FingerprintMutation) AddSeenCount(i int) {
	if m.addseen_count != nil {
		*m.addseen_count += i
	} else {
		m.addseen_count = &i
	}
}

// AddedSeenCount returns the value that was added to the "seen_count" field in this mutation.
func (m *FingerprintMutation) AddedSeenCount() (r int, exists bool) {
	v := m.addseen_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeenCount resets all changes to the "seen_count" field.
func (m *FingerprintMutation) ResetSeenCount() {
	m.seen_count = nil
	m.addseen_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FingerprintMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FingerprintMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FingerprintMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *FingerprintMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *FingerprintMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *FingerprintMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// SetUserID sets the "user" edge to the User entity by id.
func (m *FingerprintMutation) SetUserID(id uuid.UUID) {
	m.user = &id
}

// ClearUser clears the "user" edge to the User entity.
func (m *FingerprintMutation) ClearUser() {
	m.cleareduser = true
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *FingerprintMutation) UserCleared() bool {
	return m.cleareduser
}

// UserID returns the "user" edge ID in the mutation.
func (m *FingerprintMutation) UserID() (id uuid.UUID, exists bool) {
	if m.user != nil {
		return *m.user, true
	}
	return
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *FingerprintMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *FingerprintMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the FingerprintMutation builder.
func (m *FingerprintMutation) Where(ps ...predicate.Fingerprint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FingerprintMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FingerprintMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Fingerprint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FingerprintMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FingerprintMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Fingerprint).
func (m *FingerprintMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FingerprintMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.hash != nil {
		fields = append(fields, entfingerprint.FieldHash)
	}
	if m.payload != nil {
		fields = append(fields, entfingerprint.FieldPayload)
	}
	if m.ip != nil {
		fields = append(fields, entfingerprint.FieldIP)
	}
	if m.confidence != nil {
		fields = append(fields, entfingerprint.FieldConfidence)
	}
	if m.suspicious != nil {
		fields = append(fields, entfingerprint.FieldSuspicious)
	}
	if m.suspicion_reasons != nil {
		fields = append(fields, entfingerprint.FieldSuspicionReasons)
	}
	if m.seen_count != nil {
		fields = append(fields, entfingerprint.FieldSeenCount)
	}
	if m.created_at != nil {
		fields = append(fields, entfingerprint.FieldCreatedAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, entfingerprint.FieldLastSeenAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FingerprintMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entfingerprint.FieldHash:
		return m.Hash()
	case entfingerprint.FieldPayload:
		return m.Payload()
	case entfingerprint.FieldIP:
		return m.IP()
	case entfingerprint.FieldConfidence:
		return m.Confidence()
	case entfingerprint.FieldSuspicious:
		return m.Suspicious()
	case entfingerprint.FieldSuspicionReasons:
		return m.SuspicionReasons()
	case entfingerprint.FieldSeenCount:
		return m.SeenCount()
	case entfingerprint.FieldCreatedAt:
		return m.CreatedAt()
	case entfingerprint.FieldLastSeenAt:
		return m.LastSeenAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FingerprintMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entfingerprint.FieldHash:
		return m.OldHash(ctx)
	case entfingerprint.FieldPayload:
		return m.OldPayload(ctx)
	case entfingerprint.FieldIP:
		return m.OldIP(ctx)
	case entfingerprint.FieldConfidence:
		return m.OldConfidence(ctx)
	case entfingerprint.FieldSuspicious:
		return m.OldSuspicious(ctx)
	case entfingerprint.FieldSuspicionReasons:
		return m.OldSuspicionReasons(ctx)
	case entfingerprint.FieldSeenCount:
		return m.OldSeenCount(ctx)
	case entfingerprint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case entfingerprint.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	}
	return nil, fmt.Errorf("unknown Fingerprint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FingerprintMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entfingerprint.FieldHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHash(v)
		return nil
	case entfingerprint.FieldPayload:
		v, ok := value.(*fingerprint.Composite)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case entfingerprint.FieldIP:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIP(v)
		return nil
	case entfingerprint.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case entfingerprint.FieldSuspicious:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuspicious(v)
		return nil
	case entfingerprint.FieldSuspicionReasons:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuspicionReasons(v)
		return nil
	case entfingerprint.FieldSeenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeenCount(v)
		return nil
	case entfingerprint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case entfingerprint.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	}
	return fmt.Errorf("unknown Fingerprint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FingerprintMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, entfingerprint.FieldConfidence)
	}
	if m.addseen_count != nil {
		fields = append(fields, entfingerprint.FieldSeenCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FingerprintMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entfingerprint.FieldConfidence:
		return m.AddedConfidence()
	case entfingerprint.FieldSeenCount:
		return m.AddedSeenCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FingerprintMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entfingerprint.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case entfingerprint.FieldSeenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeenCount(v)
		return nil
	}
	return fmt.Errorf("unknown Fingerprint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FingerprintMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entfingerprint.FieldIP) {
		fields = append(fields, entfingerprint.FieldIP)
	}
	if m.FieldCleared(entfingerprint.FieldSuspicionReasons) {
		fields = append(fields, entfingerprint.FieldSuspicionReasons)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FingerprintMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FingerprintMutation) ClearField(name string) error {
	switch name {
	case entfingerprint.FieldIP:
		m.ClearIP()
		return nil
	case entfingerprint.FieldSuspicionReasons:
		m.ClearSuspicionReasons()
		return nil
	}
	return fmt.Errorf("unknown Fingerprint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FingerprintMutation) ResetField(name string) error {
	switch name {
	case entfingerprint.FieldHash:
		m.ResetHash()
		return nil
	case entfingerprint.FieldPayload:
		m.ResetPayload()
		return nil
	case entfingerprint.FieldIP:
		m.ResetIP()
		return nil
	case entfingerprint.FieldConfidence:
		m.ResetConfidence()
		return nil
	case entfingerprint.FieldSuspicious:
		m.ResetSuspicious()
		return nil
	case entfingerprint.FieldSuspicionReasons:
		m.ResetSuspicionReasons()
		return nil
	case entfingerprint.FieldSeenCount:
		m.ResetSeenCount()
		return nil
	case entfingerprint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case entfingerprint.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	}
	return fmt.Errorf("unknown Fingerprint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FingerprintMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, entfingerprint.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FingerprintMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entfingerprint.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FingerprintMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FingerprintMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FingerprintMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, entfingerprint.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FingerprintMutation) EdgeCleared(name string) bool {
	switch name {
	case entfingerprint.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FingerprintMutation) ClearEdge(name string) error {
	switch name {
	case entfingerprint.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Fingerprint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FingerprintMutation) ResetEdge(name string) error {
	switch name {
	case entfingerprint.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Fingerprint edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	public_id           *string
	created_at          *time.Time
	last_seen_at        *time.Time
	clearedFields       map[string]struct{}
	fingerprints        map[uuid.UUID]struct{}
	removedfingerprints map[uuid.UUID]struct{}
	clearedfingerprints bool
	done                bool
	oldValue            func(context.Context) (*User, error)
	predicates          []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPublicID sets the "public_id" field.
func (m *UserMutation) SetPublicID(s string) {
	m.public_id = &s
}

// PublicID returns the value of the "public_id" field in the mutation.
func (m *UserMutation) PublicID() (r string, exists bool) {
	v := m.public_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicID returns the old "public_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPublicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicID: %w", err)
	}
	return oldValue.PublicID, nil
}

// ResetPublicID resets all changes to the "public_id" field.
func (m *UserMutation) ResetPublicID() {
	m.public_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *UserMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *UserMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *UserMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// AddFingerprintIDs adds the "fingerprints" edge to the Fingerprint entity by ids.
func (m *UserMutation) AddFingerprintIDs(ids ...uuid.UUID) {
	if m.fingerprints == nil {
		m.fingerprints = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.fingerprints[ids[i]] = struct{}{}
	}
}

// ClearFingerprints clears the "fingerprints" edge to the Fingerprint entity.
func (m *UserMutation) ClearFingerprints() {
	m.clearedfingerprints = true
}

// FingerprintsCleared reports if the "fingerprints" edge to the Fingerprint entity was cleared.
func (m *UserMutation) FingerprintsCleared() bool {
	return m.clearedfingerprints
}

// RemoveFingerprintIDs removes the "fingerprints" edge to the Fingerprint entity by IDs.
func (m *UserMutation) RemoveFingerprintIDs(ids ...uuid.UUID) {
	if m.removedfingerprints == nil {
		m.removedfingerprints = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.fingerprints, ids[i])
		m.removedfingerprints[ids[i]] = struct{}{}
	}
}

// RemovedFingerprints returns the removed IDs of the "fingerprints" edge to the Fingerprint entity.
func (m *UserMutation) RemovedFingerprintsIDs() (ids []uuid.UUID) {
	for id := range m.removedfingerprints {
		ids = append(ids, id)
	}
	return
}

// FingerprintsIDs returns the "fingerprints" edge IDs in the mutation.
func (m *UserMutation) FingerprintsIDs() (ids []uuid.UUID) {
	for id := range m.fingerprints {
		ids = append(ids, id)
	}
	return
}

// ResetFingerprints resets all changes to the "fingerprints" edge.
func (m *UserMutation) ResetFingerprints() {
	m.fingerprints = nil
	m.clearedfingerprints = false
	m.removedfingerprints = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.public_id != nil {
		fields = append(fields, user.FieldPublicID)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, user.FieldLastSeenAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldPublicID:
		return m.PublicID()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldLastSeenAt:
		return m.LastSeenAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldPublicID:
		return m.OldPublicID(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldPublicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicID(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldPublicID:
		m.ResetPublicID()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.fingerprints != nil {
		edges = append(edges, user.EdgeFingerprints)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeFingerprints:
		ids := make([]ent.Value, 0, len(m.fingerprints))
		for id := range m.fingerprints {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedfingerprints != nil {
		edges = append(edges, user.EdgeFingerprints)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeFingerprints:
		ids := make([]ent.Value, 0, len(m.removedfingerprints))
		for id := range m.removedfingerprints {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfingerprints {
		edges = append(edges, user.EdgeFingerprints)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeFingerprints:
		return m.clearedfingerprints
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeFingerprints:
		m.ResetFingerprints()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
