// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	entfingerprint "visitor-identity-api/ent/fingerprint"
	"visitor-identity-api/ent/user"
	"visitor-identity-api/internal/fingerprint"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Fingerprint is the model entity for the Fingerprint schema.
type Fingerprint struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Hash holds the value of the "hash" field.
	Hash string `json:"hash,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload *fingerprint.Composite `json:"payload,omitempty"`
	// IP holds the value of the "ip" field.
	IP string `json:"ip,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Suspicious holds the value of the "suspicious" field.
	Suspicious bool `json:"suspicious,omitempty"`
	// SuspicionReasons holds the value of the "suspicion_reasons" field.
	SuspicionReasons []string `json:"suspicion_reasons,omitempty"`
	// SeenCount holds the value of the "seen_count" field.
	SeenCount int `json:"seen_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// LastSeenAt holds the value of the "last_seen_at" field.
	LastSeenAt time.Time `json:"last_seen_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FingerprintQuery when eager-loading is set.
	Edges             FingerprintEdges `json:"edges"`
	user_fingerprints *uuid.UUID
	selectValues      sql.SelectValues
}

// FingerprintEdges holds the relations/edges for other nodes in the graph.
type FingerprintEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FingerprintEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Fingerprint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entfingerprint.FieldPayload, entfingerprint.FieldSuspicionReasons:
			values[i] = new([]byte)
		case entfingerprint.FieldSuspicious:
			values[i] = new(sql.NullBool)
		case entfingerprint.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case entfingerprint.FieldSeenCount:
			values[i] = new(sql.NullInt64)
		case entfingerprint.FieldHash, entfingerprint.FieldIP:
			values[i] = new(sql.NullString)
		case entfingerprint.FieldCreatedAt, entfingerprint.FieldLastSeenAt:
			values[i] = new(sql.NullTime)
		case entfingerprint.FieldID:
			values[i] = new(uuid.UUID)
		case entfingerprint.ForeignKeys[0]: // user_fingerprints
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Fingerprint fields.
func (_m *Fingerprint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entfingerprint.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case entfingerprint.FieldHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hash", values[i])
			} else if value.Valid {
				_m.Hash = value.String
			}
		case entfingerprint.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case entfingerprint.FieldIP:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ip", values[i])
			} else if value.Valid {
				_m.IP = value.String
			}
		case entfingerprint.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case entfingerprint.FieldSuspicious:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field suspicious", values[i])
			} else if value.Valid {
				_m.Suspicious = value.Bool
			}
		case entfingerprint.FieldSuspicionReasons:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field suspicion_reasons", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SuspicionReasons); err != nil {
					return fmt.Errorf("unmarshal field suspicion_reasons: %w", err)
				}
			}
		case entfingerprint.FieldSeenCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seen_count", values[i])
			} else if value.Valid {
				_m.SeenCount = int(value.Int64)
			}
		case entfingerprint.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case entfingerprint.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = value.Time
			}
		case entfingerprint.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field user_fingerprints", values[i])
			} else if value.Valid {
				_m.user_fingerprints = new(uuid.UUID)
				*_m.user_fingerprints = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Fingerprint.
// This includes values selected through modifiers, order, etc.
func (_m *Fingerprint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Fingerprint entity.
func (_m *Fingerprint) QueryUser() *UserQuery {
	return NewFingerprintClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this Fingerprint.
// Note that you need to call Fingerprint.Unwrap() before calling this method if this Fingerprint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Fingerprint) Update() *FingerprintUpdateOne {
	return NewFingerprintClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Fingerprint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Fingerprint) Unwrap() *Fingerprint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Fingerprint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Fingerprint) String() string {
	var builder strings.Builder
	builder.WriteString("Fingerprint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("hash=")
	builder.WriteString(_m.Hash)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("ip=")
	builder.WriteString(_m.IP)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("suspicious=")
	builder.WriteString(fmt.Sprintf("%v", _m.Suspicious))
	builder.WriteString(", ")
	builder.WriteString("suspicion_reasons=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuspicionReasons))
	builder.WriteString(", ")
	builder.WriteString("seen_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SeenCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen_at=")
	builder.WriteString(_m.LastSeenAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Fingerprints is a parsable slice of Fingerprint.
type Fingerprints []*Fingerprint
