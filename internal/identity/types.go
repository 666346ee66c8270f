// Package identity turns fingerprint observations into stable visitor
// identities through a tiered matching pipeline.
package identity

import (
	"context"
	"time"

	"visitor-identity-api/internal/fingerprint"
)

// Method names the resolution tier that produced an identity.
type Method string

const (
	MethodExact   Method = "exact_fingerprint"
	MethodFuzzy   Method = "fuzzy_fingerprint"
	MethodIP      Method = "ip_recent"
	MethodNewUser Method = "new_user"
)

// Record is one stored fingerprint observation.
type Record struct {
	ID               string
	Hash             string
	UserID           string
	Composite        *fingerprint.Composite
	IP               string
	Confidence       float64
	Suspicious       bool
	SuspicionReasons []string
	SeenCount        int
	CreatedAt        time.Time
	LastSeenAt       time.Time
}

// FingerprintAttributes makes Record a match candidate.
func (r *Record) FingerprintAttributes() *fingerprint.Attributes {
	if r.Composite == nil {
		return nil
	}
	return &r.Composite.Fingerprint
}

// SeenAt reports the record's recency for tie-breaking.
func (r *Record) SeenAt() time.Time { return r.LastSeenAt }

// User is a resolved visitor identity.
type User struct {
	PublicID   string
	CreatedAt  time.Time
	LastSeenAt time.Time
}

// Stats is the aggregate view served by the stats endpoint.
type Stats struct {
	TotalFingerprints int
	UniqueHashes      int
	TotalUsers        int
	SuspiciousCount   int
	AverageConfidence float64
	AverageSeenCount  float64
	SeenLastHour      int
	SeenLastDay       int
	OldestRecordAt    time.Time
	NewestRecordAt    time.Time
}

// Store is the persistence surface the resolver runs against. Lookups that
// find nothing return (nil, nil); errors are reserved for infrastructure
// failures.
type Store interface {
	FindByHash(ctx context.Context, hash string) (*Record, error)
	RecentRecords(ctx context.Context, since time.Time, limit int) ([]*Record, error)
	RecentByIP(ctx context.Context, ip string, since time.Time, limit int) ([]*Record, error)
	RecordsByUser(ctx context.Context, publicID string) ([]*Record, error)
	CreateRecord(ctx context.Context, rec *Record) error
	TouchRecord(ctx context.Context, id string, at time.Time) error

	GetUser(ctx context.Context, publicID string) (*User, error)
	CreateUser(ctx context.Context, u *User) error
	TouchUser(ctx context.Context, publicID string, at time.Time) error
	EraseUser(ctx context.Context, publicID string) (int, error)

	Stats(ctx context.Context) (*Stats, error)
	HashCounts(ctx context.Context) (map[string]int, error)
}
