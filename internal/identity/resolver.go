package identity

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"visitor-identity-api/internal/fingerprint"
)

// Config tunes the resolution tiers.
type Config struct {
	// FuzzyThreshold is the minimum weighted similarity for a fuzzy match,
	// inclusive.
	FuzzyThreshold float64
	// FuzzyWindow bounds how far back fuzzy candidates are drawn from.
	FuzzyWindow time.Duration
	// FuzzyMaxCandidates caps the fuzzy scan.
	FuzzyMaxCandidates int
	// IPWindow bounds the same-IP fallback tier.
	IPWindow time.Duration
	// IPMaxCandidates caps the same-IP scan.
	IPMaxCandidates int
}

// DefaultConfig mirrors production tuning: 30 days of fuzzy history capped
// at 500 records, 24 hours of same-IP history capped at 50.
func DefaultConfig() Config {
	return Config{
		FuzzyThreshold:     fingerprint.DefaultThreshold,
		FuzzyWindow:        30 * 24 * time.Hour,
		FuzzyMaxCandidates: 500,
		IPWindow:           24 * time.Hour,
		IPMaxCandidates:    50,
	}
}

// Resolution is the outcome of one observation.
type Resolution struct {
	UserID        string  `json:"userId"`
	FingerprintID string  `json:"fingerprintId"`
	Method        Method  `json:"method"`
	Confidence    float64 `json:"confidence"`
	IsNew         bool    `json:"isNewUser"`
}

// Observation carries everything the resolver persists with a record.
type Observation struct {
	Hash             string
	Composite        *fingerprint.Composite
	IP               string
	Suspicious       bool
	SuspicionReasons []string
}

// Resolver matches observations to users across four tiers: exact hash,
// fuzzy similarity, recent same-IP, and finally a fresh identity.
type Resolver struct {
	store Store
	cfg   Config

	// now is swappable in tests.
	now func() time.Time
}

// NewResolver builds a resolver over the given store.
func NewResolver(store Store, cfg Config) *Resolver {
	if cfg.FuzzyThreshold <= 0 {
		cfg = DefaultConfig()
	}
	return &Resolver{store: store, cfg: cfg, now: time.Now}
}

// Resolve runs the tier pipeline for one observation and persists the
// outcome. The exact tier updates the existing record in place; every other
// tier stores a new record under the resolved user.
func (r *Resolver) Resolve(ctx context.Context, obs *Observation) (*Resolution, error) {
	now := r.now()

	// Tier 1: the hash has been seen before.
	if rec, err := r.store.FindByHash(ctx, obs.Hash); err != nil {
		return nil, fmt.Errorf("exact lookup: %w", err)
	} else if rec != nil {
		if err := r.store.TouchRecord(ctx, rec.ID, now); err != nil {
			return nil, fmt.Errorf("touch record: %w", err)
		}
		if err := r.store.TouchUser(ctx, rec.UserID, now); err != nil {
			return nil, fmt.Errorf("touch user: %w", err)
		}
		return &Resolution{
			UserID:        rec.UserID,
			FingerprintID: rec.ID,
			Method:        MethodExact,
			Confidence:    0.95,
		}, nil
	}

	// Tier 2: a similar enough fingerprint from the fuzzy window.
	candidates, err := r.store.RecentRecords(ctx, now.Add(-r.cfg.FuzzyWindow), r.cfg.FuzzyMaxCandidates)
	if err != nil {
		return nil, fmt.Errorf("fuzzy candidates: %w", err)
	}
	if len(candidates) > 0 {
		pool := make([]fingerprint.Candidate, len(candidates))
		for i, c := range candidates {
			pool[i] = c
		}
		if best, sim := fingerprint.FindBestMatch(&obs.Composite.Fingerprint, pool, r.cfg.FuzzyThreshold); best != nil {
			matched := best.(*Record)
			return r.attach(ctx, obs, matched.UserID, MethodFuzzy, sim*0.9, now)
		}
	}

	// Tier 3: same IP within the fallback window. Weak signal, capped
	// confidence.
	if obs.IP != "" {
		byIP, err := r.store.RecentByIP(ctx, obs.IP, now.Add(-r.cfg.IPWindow), r.cfg.IPMaxCandidates)
		if err != nil {
			return nil, fmt.Errorf("ip candidates: %w", err)
		}
		if len(byIP) > 0 {
			latest := byIP[0]
			for _, rec := range byIP[1:] {
				if rec.LastSeenAt.After(latest.LastSeenAt) {
					latest = rec
				}
			}
			return r.attach(ctx, obs, latest.UserID, MethodIP, 0.6, now)
		}
	}

	// Tier 4: nobody we know.
	u := &User{PublicID: NewUserID(now), CreatedAt: now, LastSeenAt: now}
	if err := r.store.CreateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	res, err := r.attach(ctx, obs, u.PublicID, MethodNewUser, 1.0, now)
	if err != nil {
		return nil, err
	}
	res.IsNew = true
	return res, nil
}

func (r *Resolver) attach(ctx context.Context, obs *Observation, userID string, method Method, confidence float64, now time.Time) (*Resolution, error) {
	rec := &Record{
		ID:               uuid.NewString(),
		Hash:             obs.Hash,
		UserID:           userID,
		Composite:        obs.Composite,
		IP:               obs.IP,
		Confidence:       confidence,
		Suspicious:       obs.Suspicious,
		SuspicionReasons: obs.SuspicionReasons,
		SeenCount:        1,
		CreatedAt:        now,
		LastSeenAt:       now,
	}
	if err := r.store.CreateRecord(ctx, rec); err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}
	if method != MethodNewUser {
		if err := r.store.TouchUser(ctx, userID, now); err != nil {
			return nil, fmt.Errorf("touch user: %w", err)
		}
	}
	return &Resolution{
		UserID:        userID,
		FingerprintID: rec.ID,
		Method:        method,
		Confidence:    confidence,
	}, nil
}

// NewUserID mints a visitor identifier: a millisecond timestamp and a random
// suffix, both base36, e.g. "usr_lx2c81kq_3f9gz0kd".
func NewUserID(now time.Time) string {
	var buf [8]byte
	_, _ = rand.Read(buf[:])
	n := binary.BigEndian.Uint64(buf[:]) & 0x7fffffffff // 39 bits, 8 base36 chars max
	return "usr_" + strconv.FormatInt(now.UnixMilli(), 36) + "_" + strconv.FormatUint(n, 36)
}
