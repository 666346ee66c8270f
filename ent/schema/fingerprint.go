package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"visitor-identity-api/internal/fingerprint"
)

// Fingerprint is one stored browser fingerprint observation: the canonical
// hash, the raw composite payload, and the resolution outcome.
type Fingerprint struct{ ent.Schema }

// Fields of the Fingerprint.
func (Fingerprint) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("hash").NotEmpty().Unique().MaxLen(64),
		field.JSON("payload", &fingerprint.Composite{}),
		field.String("ip").Optional().MaxLen(45),
		field.Float("confidence").Default(0),
		field.Bool("suspicious").Default(false),
		field.JSON("suspicion_reasons", []string{}).Optional(),
		field.Int("seen_count").Default(1),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("last_seen_at").Default(time.Now),
	}
}

// Edges of the Fingerprint.
func (Fingerprint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).Ref("fingerprints").Unique().Required(),
	}
}

// Indexes of the Fingerprint.
func (Fingerprint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("last_seen_at"),
		index.Fields("ip", "last_seen_at"),
		index.Edges("user"),
	}
}
