// Code generated by ent, DO NOT EDIT.

package entfingerprint

import (
	"time"
	"visitor-identity-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldID, id))
}

// Hash applies equality check predicate on the "hash" field. It's identical to HashEQ.
func Hash(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldHash, v))
}

// IP applies equality check predicate on the "ip" field. It's identical to IPEQ.
func IP(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldIP, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldConfidence, v))
}

// Suspicious applies equality check predicate on the "suspicious" field. It's identical to SuspiciousEQ.
func Suspicious(v bool) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldSuspicious, v))
}

// SeenCount applies equality check predicate on the "seen_count" field. It's identical to SeenCountEQ.
func SeenCount(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldSeenCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldCreatedAt, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldLastSeenAt, v))
}

// HashEQ applies the EQ predicate on the "hash" field.
func HashEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldHash, v))
}

// HashNEQ applies the NEQ predicate on the "hash" field.
func HashNEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldHash, v))
}

// HashIn applies the In predicate on the "hash" field.
func HashIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldHash, vs...))
}

// HashNotIn applies the NotIn predicate on the "hash" field.
func HashNotIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldHash, vs...))
}

// HashGT applies the GT predicate on the "hash" field.
func HashGT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldHash, v))
}

// HashGTE applies the GTE predicate on the "hash" field.
func HashGTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldHash, v))
}

// HashLT applies the LT predicate on the "hash" field.
func HashLT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldHash, v))
}

// HashLTE applies the LTE predicate on the "hash" field.
func HashLTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldHash, v))
}

// HashContains applies the Contains predicate on the "hash" field.
func HashContains(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContains(FieldHash, v))
}

// HashHasPrefix applies the HasPrefix predicate on the "hash" field.
func HashHasPrefix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasPrefix(FieldHash, v))
}

// HashHasSuffix applies the HasSuffix predicate on the "hash" field.
func HashHasSuffix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasSuffix(FieldHash, v))
}

// HashEqualFold applies the EqualFold predicate on the "hash" field.
func HashEqualFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEqualFold(FieldHash, v))
}

// HashContainsFold applies the ContainsFold predicate on the "hash" field.
func HashContainsFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContainsFold(FieldHash, v))
}

// IPEQ applies the EQ predicate on the "ip" field.
func IPEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldIP, v))
}

// IPNEQ applies the NEQ predicate on the "ip" field.
func IPNEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldIP, v))
}

// IPIn applies the In predicate on the "ip" field.
func IPIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldIP, vs...))
}

// IPNotIn applies the NotIn predicate on the "ip" field.
func IPNotIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldIP, vs...))
}

// IPGT applies the GT predicate on the "ip" field.
func IPGT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldIP, v))
}

// IPGTE applies the GTE predicate on the "ip" field.
func IPGTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldIP, v))
}

// IPLT applies the LT predicate on the "ip" field.
func IPLT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldIP, v))
}

// IPLTE applies the LTE predicate on the "ip" field.
func IPLTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldIP, v))
}

// IPContains applies the Contains predicate on the "ip" field.
func IPContains(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContains(FieldIP, v))
}

// IPHasPrefix applies the HasPrefix predicate on the "ip" field.
func IPHasPrefix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasPrefix(FieldIP, v))
}

// IPHasSuffix applies the HasSuffix predicate on the "ip" field.
func IPHasSuffix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasSuffix(FieldIP, v))
}

// IPIsNil applies the IsNil predicate on the "ip" field.
func IPIsNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIsNull(FieldIP))
}

// IPNotNil applies the NotNil predicate on the "ip" field.
func IPNotNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotNull(FieldIP))
}

// IPEqualFold applies the EqualFold predicate on the "ip" field.
func IPEqualFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEqualFold(FieldIP, v))
}

// IPContainsFold applies the ContainsFold predicate on the "ip" field.
func IPContainsFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContainsFold(FieldIP, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldConfidence, v))
}

// SuspiciousEQ applies the EQ predicate on the "suspicious" field.
func SuspiciousEQ(v bool) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldSuspicious, v))
}

// SuspiciousNEQ applies the NEQ predicate on the "suspicious" field.
func SuspiciousNEQ(v bool) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldSuspicious, v))
}

// SuspicionReasonsIsNil applies the IsNil predicate on the "suspicion_reasons" field.
func SuspicionReasonsIsNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIsNull(FieldSuspicionReasons))
}

// SuspicionReasonsNotNil applies the NotNil predicate on the "suspicion_reasons" field.
func SuspicionReasonsNotNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotNull(FieldSuspicionReasons))
}

// SeenCountEQ applies the EQ predicate on the "seen_count" field.
func SeenCountEQ(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldSeenCount, v))
}

// SeenCountNEQ applies the NEQ predicate on the "seen_count" field.
func SeenCountNEQ(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldSeenCount, v))
}

// SeenCountIn applies the In predicate on the "seen_count" field.
func SeenCountIn(vs ...int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldSeenCount, vs...))
}

// SeenCountNotIn applies the NotIn predicate on the "seen_count" field.
func SeenCountNotIn(vs ...int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldSeenCount, vs...))
}

// SeenCountGT applies the GT predicate on the "seen_count" field.
func SeenCountGT(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldSeenCount, v))
}

// SeenCountGTE applies the GTE predicate on the "seen_count" field.
func SeenCountGTE(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldSeenCount, v))
}

// SeenCountLT applies the LT predicate on the "seen_count" field.
func SeenCountLT(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldSeenCount, v))
}

// SeenCountLTE applies the LTE predicate on the "seen_count" field.
func SeenCountLTE(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldSeenCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldCreatedAt, v))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldLastSeenAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Fingerprint {
	return predicate.Fingerprint(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Fingerprint {
	return predicate.Fingerprint(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Fingerprint) predicate.Fingerprint {
	return predicate.Fingerprint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Fingerprint) predicate.Fingerprint {
	return predicate.Fingerprint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Fingerprint) predicate.Fingerprint {
	return predicate.Fingerprint(sql.NotPredicates(p))
}
