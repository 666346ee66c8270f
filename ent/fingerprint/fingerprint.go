// Code generated by ent, DO NOT EDIT.

package entfingerprint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the fingerprint type in the database.
	Label = "fingerprint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldHash holds the string denoting the hash field in the database.
	FieldHash = "hash"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldIP holds the string denoting the ip field in the database.
	FieldIP = "ip"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSuspicious holds the string denoting the suspicious field in the database.
	FieldSuspicious = "suspicious"
	// FieldSuspicionReasons holds the string denoting the suspicion_reasons field in the database.
	FieldSuspicionReasons = "suspicion_reasons"
	// FieldSeenCount holds the string denoting the seen_count field in the database.
	FieldSeenCount = "seen_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// Table holds the table name of the fingerprint in the database.
	Table = "fingerprints"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "fingerprints"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_fingerprints"
)

// Columns holds all SQL columns for fingerprint fields.
var Columns = []string{
	FieldID,
	FieldHash,
	FieldPayload,
	FieldIP,
	FieldConfidence,
	FieldSuspicious,
	FieldSuspicionReasons,
	FieldSeenCount,
	FieldCreatedAt,
	FieldLastSeenAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "fingerprints"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"user_fingerprints",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// HashValidator is a validator for the "hash" field. It is called by the builders before save.
	HashValidator func(string) error
	// IPValidator is a validator for the "ip" field. It is called by the builders before save.
	IPValidator func(string) error
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultSuspicious holds the default value on creation for the "suspicious" field.
	DefaultSuspicious bool
	// DefaultSeenCount holds the default value on creation for the "seen_count" field.
	DefaultSeenCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultLastSeenAt holds the default value on creation for the "last_seen_at" field.
	DefaultLastSeenAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Fingerprint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByHash orders the results by the hash field.
func ByHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHash, opts...).ToFunc()
}

// ByIP orders the results by the ip field.
func ByIP(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIP, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySuspicious orders the results by the suspicious field.
func BySuspicious(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuspicious, opts...).ToFunc()
}

// BySeenCount orders the results by the seen_count field.
func BySeenCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeenCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
