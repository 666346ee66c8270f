package identity

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemStore is a mutex-guarded Store for development runs without Postgres
// and for tests.
type MemStore struct {
	mu      sync.RWMutex
	records map[string]*Record // by record ID
	byHash  map[string]string  // hash -> record ID
	users   map[string]*User   // by public ID
}

// NewMemStore builds an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		records: make(map[string]*Record),
		byHash:  make(map[string]string),
		users:   make(map[string]*User),
	}
}

func cloneRecord(r *Record) *Record {
	cp := *r
	cp.SuspicionReasons = append([]string(nil), r.SuspicionReasons...)
	return &cp
}

func (s *MemStore) FindByHash(_ context.Context, hash string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byHash[hash]
	if !ok {
		return nil, nil
	}
	return cloneRecord(s.records[id]), nil
}

func (s *MemStore) RecentRecords(_ context.Context, since time.Time, limit int) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Record
	for _, r := range s.records {
		if r.LastSeenAt.Before(since) {
			continue
		}
		out = append(out, cloneRecord(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastSeenAt.After(out[j].LastSeenAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemStore) RecentByIP(_ context.Context, ip string, since time.Time, limit int) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Record
	for _, r := range s.records {
		if r.IP != ip || r.LastSeenAt.Before(since) {
			continue
		}
		out = append(out, cloneRecord(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastSeenAt.After(out[j].LastSeenAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemStore) RecordsByUser(_ context.Context, publicID string) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Record
	for _, r := range s.records {
		if r.UserID == publicID {
			out = append(out, cloneRecord(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastSeenAt.After(out[j].LastSeenAt) })
	return out, nil
}

func (s *MemStore) CreateRecord(_ context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = cloneRecord(rec)
	s.byHash[rec.Hash] = rec.ID
	return nil
}

func (s *MemStore) TouchRecord(_ context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.records[id]; ok {
		r.SeenCount++
		r.LastSeenAt = at
	}
	return nil
}

func (s *MemStore) GetUser(_ context.Context, publicID string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[publicID]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *MemStore) CreateUser(_ context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.users[u.PublicID] = &cp
	return nil
}

func (s *MemStore) TouchUser(_ context.Context, publicID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[publicID]; ok {
		u.LastSeenAt = at
	}
	return nil
}

func (s *MemStore) EraseUser(_ context.Context, publicID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, r := range s.records {
		if r.UserID != publicID {
			continue
		}
		delete(s.records, id)
		if s.byHash[r.Hash] == id {
			delete(s.byHash, r.Hash)
		}
		removed++
	}
	delete(s.users, publicID)
	return removed, nil
}

func (s *MemStore) Stats(_ context.Context) (*Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := &Stats{
		TotalFingerprints: len(s.records),
		UniqueHashes:      len(s.byHash),
		TotalUsers:        len(s.users),
	}
	now := time.Now()
	var confSum, seenSum float64
	for _, r := range s.records {
		if r.Suspicious {
			st.SuspiciousCount++
		}
		confSum += r.Confidence
		seenSum += float64(r.SeenCount)
		if r.LastSeenAt.After(now.Add(-time.Hour)) {
			st.SeenLastHour++
		}
		if r.LastSeenAt.After(now.Add(-24 * time.Hour)) {
			st.SeenLastDay++
		}
		if st.OldestRecordAt.IsZero() || r.CreatedAt.Before(st.OldestRecordAt) {
			st.OldestRecordAt = r.CreatedAt
		}
		if r.LastSeenAt.After(st.NewestRecordAt) {
			st.NewestRecordAt = r.LastSeenAt
		}
	}
	if len(s.records) > 0 {
		st.AverageConfidence = confSum / float64(len(s.records))
		st.AverageSeenCount = seenSum / float64(len(s.records))
	}
	return st, nil
}

func (s *MemStore) HashCounts(_ context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int, len(s.byHash))
	for _, r := range s.records {
		out[r.Hash] += r.SeenCount
	}
	return out, nil
}
