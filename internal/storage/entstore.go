// Package storage backs the identity store with Postgres through ent.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"visitor-identity-api/ent"
	entfp "visitor-identity-api/ent/fingerprint"
	entuser "visitor-identity-api/ent/user"
	"visitor-identity-api/internal/identity"
)

// EntStore implements identity.Store on top of an ent client.
type EntStore struct {
	client *ent.Client
}

// NewEntStore wraps an opened ent client.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

func toRecord(e *ent.Fingerprint) *identity.Record {
	rec := &identity.Record{
		ID:               e.ID.String(),
		Hash:             e.Hash,
		Composite:        e.Payload,
		IP:               e.IP,
		Confidence:       e.Confidence,
		Suspicious:       e.Suspicious,
		SuspicionReasons: e.SuspicionReasons,
		SeenCount:        e.SeenCount,
		CreatedAt:        e.CreatedAt,
		LastSeenAt:       e.LastSeenAt,
	}
	if e.Edges.User != nil {
		rec.UserID = e.Edges.User.PublicID
	}
	return rec
}

func toRecords(es []*ent.Fingerprint) []*identity.Record {
	out := make([]*identity.Record, len(es))
	for i, e := range es {
		out[i] = toRecord(e)
	}
	return out
}

func (s *EntStore) FindByHash(ctx context.Context, hash string) (*identity.Record, error) {
	e, err := s.client.Fingerprint.Query().
		Where(entfp.HashEQ(hash)).
		WithUser().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find by hash: %w", err)
	}
	return toRecord(e), nil
}

func (s *EntStore) RecentRecords(ctx context.Context, since time.Time, limit int) ([]*identity.Record, error) {
	q := s.client.Fingerprint.Query().
		Where(entfp.LastSeenAtGTE(since)).
		Order(ent.Desc(entfp.FieldLastSeenAt)).
		WithUser()
	if limit > 0 {
		q = q.Limit(limit)
	}
	es, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent records: %w", err)
	}
	return toRecords(es), nil
}

func (s *EntStore) RecentByIP(ctx context.Context, ip string, since time.Time, limit int) ([]*identity.Record, error) {
	q := s.client.Fingerprint.Query().
		Where(entfp.IPEQ(ip), entfp.LastSeenAtGTE(since)).
		Order(ent.Desc(entfp.FieldLastSeenAt)).
		WithUser()
	if limit > 0 {
		q = q.Limit(limit)
	}
	es, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent by ip: %w", err)
	}
	return toRecords(es), nil
}

func (s *EntStore) RecordsByUser(ctx context.Context, publicID string) ([]*identity.Record, error) {
	es, err := s.client.Fingerprint.Query().
		Where(entfp.HasUserWith(entuser.PublicIDEQ(publicID))).
		Order(ent.Desc(entfp.FieldLastSeenAt)).
		WithUser().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("records by user: %w", err)
	}
	return toRecords(es), nil
}

func (s *EntStore) CreateRecord(ctx context.Context, rec *identity.Record) error {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return fmt.Errorf("record id: %w", err)
	}
	owner, err := s.client.User.Query().
		Where(entuser.PublicIDEQ(rec.UserID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("record owner: %w", err)
	}
	_, err = s.client.Fingerprint.Create().
		SetID(id).
		SetHash(rec.Hash).
		SetPayload(rec.Composite).
		SetIP(rec.IP).
		SetConfidence(rec.Confidence).
		SetSuspicious(rec.Suspicious).
		SetSuspicionReasons(rec.SuspicionReasons).
		SetSeenCount(rec.SeenCount).
		SetCreatedAt(rec.CreatedAt).
		SetLastSeenAt(rec.LastSeenAt).
		SetUser(owner).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create record: %w", err)
	}
	return nil
}

func (s *EntStore) TouchRecord(ctx context.Context, id string, at time.Time) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("record id: %w", err)
	}
	if err := s.client.Fingerprint.UpdateOneID(uid).
		AddSeenCount(1).
		SetLastSeenAt(at).
		Exec(ctx); err != nil {
		return fmt.Errorf("touch record: %w", err)
	}
	return nil
}

func (s *EntStore) GetUser(ctx context.Context, publicID string) (*identity.User, error) {
	e, err := s.client.User.Query().
		Where(entuser.PublicIDEQ(publicID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &identity.User{PublicID: e.PublicID, CreatedAt: e.CreatedAt, LastSeenAt: e.LastSeenAt}, nil
}

func (s *EntStore) CreateUser(ctx context.Context, u *identity.User) error {
	if err := s.client.User.Create().
		SetPublicID(u.PublicID).
		SetCreatedAt(u.CreatedAt).
		SetLastSeenAt(u.LastSeenAt).
		Exec(ctx); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *EntStore) TouchUser(ctx context.Context, publicID string, at time.Time) error {
	if _, err := s.client.User.Update().
		Where(entuser.PublicIDEQ(publicID)).
		SetLastSeenAt(at).
		Save(ctx); err != nil {
		return fmt.Errorf("touch user: %w", err)
	}
	return nil
}

func (s *EntStore) EraseUser(ctx context.Context, publicID string) (int, error) {
	removed, err := s.client.Fingerprint.Delete().
		Where(entfp.HasUserWith(entuser.PublicIDEQ(publicID))).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("erase records: %w", err)
	}
	if _, err := s.client.User.Delete().
		Where(entuser.PublicIDEQ(publicID)).
		Exec(ctx); err != nil {
		return removed, fmt.Errorf("erase user: %w", err)
	}
	return removed, nil
}

func (s *EntStore) Stats(ctx context.Context) (*identity.Stats, error) {
	total, err := s.client.Fingerprint.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count fingerprints: %w", err)
	}
	users, err := s.client.User.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	// Hash is a unique column, so stored records and unique hashes coincide.
	st := &identity.Stats{TotalFingerprints: total, UniqueHashes: total, TotalUsers: users}
	if total == 0 {
		return st, nil
	}
	suspicious, err := s.client.Fingerprint.Query().
		Where(entfp.SuspiciousEQ(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count suspicious: %w", err)
	}
	st.SuspiciousCount = suspicious

	avgConf, err := s.client.Fingerprint.Query().
		Aggregate(ent.Mean(entfp.FieldConfidence)).
		Float64(ctx)
	if err != nil {
		return nil, fmt.Errorf("mean confidence: %w", err)
	}
	st.AverageConfidence = avgConf

	avgSeen, err := s.client.Fingerprint.Query().
		Aggregate(ent.Mean(entfp.FieldSeenCount)).
		Float64(ctx)
	if err != nil {
		return nil, fmt.Errorf("mean seen count: %w", err)
	}
	st.AverageSeenCount = avgSeen

	now := time.Now()
	lastHour, err := s.client.Fingerprint.Query().
		Where(entfp.LastSeenAtGT(now.Add(-time.Hour))).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count last hour: %w", err)
	}
	st.SeenLastHour = lastHour

	lastDay, err := s.client.Fingerprint.Query().
		Where(entfp.LastSeenAtGT(now.Add(-24 * time.Hour))).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count last day: %w", err)
	}
	st.SeenLastDay = lastDay

	oldest, err := s.client.Fingerprint.Query().
		Order(ent.Asc(entfp.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		return nil, fmt.Errorf("oldest record: %w", err)
	}
	st.OldestRecordAt = oldest.CreatedAt

	newest, err := s.client.Fingerprint.Query().
		Order(ent.Desc(entfp.FieldLastSeenAt)).
		First(ctx)
	if err != nil {
		return nil, fmt.Errorf("newest record: %w", err)
	}
	st.NewestRecordAt = newest.LastSeenAt
	return st, nil
}

func (s *EntStore) HashCounts(ctx context.Context) (map[string]int, error) {
	es, err := s.client.Fingerprint.Query().
		Select(entfp.FieldHash, entfp.FieldSeenCount).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("hash counts: %w", err)
	}
	out := make(map[string]int, len(es))
	for _, e := range es {
		out[e.Hash] += e.SeenCount
	}
	return out, nil
}
