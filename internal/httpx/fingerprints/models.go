package fingerprints

import (
	"time"

	"visitor-identity-api/internal/entropy"
	"visitor-identity-api/internal/fingerprint"
	"visitor-identity-api/internal/geo"
)

// IngestRequest is the client payload: the collected attribute bundle plus
// the collector's preliminary hash. The server recomputes its own hash and
// never trusts the client's for lookups.
type IngestRequest struct {
	Fingerprint fingerprint.Attributes `json:"fingerprint"`
	Hash        string                 `json:"hash"`
}

// IngestResult is the resolution outcome returned to the client.
type IngestResult struct {
	Success          bool          `json:"success"`
	UserID           string        `json:"userId"`
	FingerprintID    string        `json:"fingerprintId"`
	IsNewUser        bool          `json:"isNewUser"`
	Confidence       float64       `json:"confidence"`
	Method           string        `json:"method"`
	Suspicious       bool          `json:"suspicious"`
	SuspicionReasons []string      `json:"suspicionReasons,omitempty"`
	BotScore         int           `json:"botScore"`
	Location         *geo.Location `json:"location,omitempty"`
}

// RecordSummary is one stored observation in a user profile.
// CurrentConfidence is the stored confidence decayed by the record's age, so
// stale matches read as less trustworthy than fresh ones.
type RecordSummary struct {
	FingerprintID     string    `json:"fingerprintId"`
	Hash              string    `json:"hash"`
	IP                string    `json:"ip,omitempty"`
	Confidence        float64   `json:"confidence"`
	CurrentConfidence float64   `json:"currentConfidence"`
	Suspicious        bool      `json:"suspicious"`
	SeenCount         int       `json:"seenCount"`
	FirstSeenAt       time.Time `json:"firstSeenAt"`
	LastSeenAt        time.Time `json:"lastSeenAt"`
}

// UserProfile is the lookup response for one resolved identity.
type UserProfile struct {
	UserID       string          `json:"userId"`
	CreatedAt    time.Time       `json:"createdAt"`
	LastSeenAt   time.Time       `json:"lastSeenAt"`
	Fingerprints []RecordSummary `json:"fingerprints"`
}

// EntropyReport summarizes how identifying the collected signals are.
type EntropyReport struct {
	TheoreticalBits       float64 `json:"theoreticalBits"`
	ObservedBits          float64 `json:"observedBits"`
	Uniqueness            string  `json:"uniqueness"`
	TheoreticalUniqueness string  `json:"theoreticalUniqueness"`
	CollisionProbability  float64 `json:"collisionProbability"`
}

// StatsResult is the aggregate view of the fingerprint population.
type StatsResult struct {
	TotalFingerprints int               `json:"totalFingerprints"`
	UniqueHashes      int               `json:"uniqueHashes"`
	TotalUsers        int               `json:"totalUsers"`
	SuspiciousCount   int               `json:"suspiciousCount"`
	AverageConfidence float64           `json:"averageConfidence"`
	AverageSeenCount  float64           `json:"averageSeenCount"`
	SeenLastHour      int               `json:"seenLastHour"`
	SeenLastDay       int               `json:"seenLastDay"`
	OldestRecordAt    *time.Time        `json:"oldestRecordAt,omitempty"`
	NewestRecordAt    *time.Time        `json:"newestRecordAt,omitempty"`
	Entropy           EntropyReport     `json:"entropy"`
	Distributions     []entropy.Summary `json:"distributions"`
}
