package identity

import (
	"context"
	"testing"
	"time"
)

func seedMemStore(t *testing.T) (*MemStore, string) {
	t.Helper()
	store := NewMemStore()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := store.CreateUser(ctx, &User{PublicID: "usr_a", CreatedAt: now, LastSeenAt: now}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	recs := []*Record{
		{ID: "r1", Hash: "h1", UserID: "usr_a", IP: "203.0.113.9", Confidence: 1.0, SeenCount: 3, Suspicious: false, CreatedAt: now.Add(-48 * time.Hour), LastSeenAt: now},
		{ID: "r2", Hash: "h2", UserID: "usr_a", IP: "203.0.113.9", Confidence: 0.9, SeenCount: 1, Suspicious: true, SuspicionReasons: []string{"software webgl renderer"}, CreatedAt: now.Add(-24 * time.Hour), LastSeenAt: now.Add(-time.Hour)},
	}
	for _, r := range recs {
		if err := store.CreateRecord(ctx, r); err != nil {
			t.Fatalf("create record: %v", err)
		}
	}
	return store, "usr_a"
}

func TestMemStoreStats(t *testing.T) {
	store, _ := seedMemStore(t)
	st, err := store.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.TotalFingerprints != 2 || st.UniqueHashes != 2 || st.TotalUsers != 1 {
		t.Fatalf("counts wrong: %+v", st)
	}
	if st.SuspiciousCount != 1 {
		t.Fatalf("suspicious: want 1, got %d", st.SuspiciousCount)
	}
	if st.AverageConfidence != 0.95 {
		t.Fatalf("avg confidence: want 0.95, got %v", st.AverageConfidence)
	}
	if st.AverageSeenCount != 2 {
		t.Fatalf("avg seen count: want 2, got %v", st.AverageSeenCount)
	}
}

func TestMemStoreHashCounts(t *testing.T) {
	store, _ := seedMemStore(t)
	counts, err := store.HashCounts(context.Background())
	if err != nil {
		t.Fatalf("hash counts: %v", err)
	}
	if counts["h1"] != 3 || counts["h2"] != 1 {
		t.Fatalf("counts wrong: %v", counts)
	}
}

func TestMemStoreEraseUser(t *testing.T) {
	store, userID := seedMemStore(t)
	ctx := context.Background()

	removed, err := store.EraseUser(ctx, userID)
	if err != nil {
		t.Fatalf("erase: %v", err)
	}
	if removed != 2 {
		t.Fatalf("removed: want 2, got %d", removed)
	}
	if u, _ := store.GetUser(ctx, userID); u != nil {
		t.Fatal("user must be gone")
	}
	if rec, _ := store.FindByHash(ctx, "h1"); rec != nil {
		t.Fatal("records must be gone")
	}
	if recs, _ := store.RecordsByUser(ctx, userID); len(recs) != 0 {
		t.Fatalf("records by user after erase: %d", len(recs))
	}
}

func TestMemStoreRecentFilters(t *testing.T) {
	store, _ := seedMemStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	recent, err := store.RecentRecords(ctx, now.Add(-30*time.Minute), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 || recent[0].ID != "r1" {
		t.Fatalf("window filter wrong: %+v", recent)
	}

	byIP, err := store.RecentByIP(ctx, "203.0.113.9", now.Add(-2*time.Hour), 10)
	if err != nil {
		t.Fatalf("by ip: %v", err)
	}
	if len(byIP) != 2 || byIP[0].ID != "r1" {
		t.Fatalf("ip ordering wrong: %+v", byIP)
	}

	if capped, _ := store.RecentByIP(ctx, "203.0.113.9", now.Add(-2*time.Hour), 1); len(capped) != 1 {
		t.Fatalf("limit must cap results, got %d", len(capped))
	}
}

func TestMemStoreClonesRecords(t *testing.T) {
	store, _ := seedMemStore(t)
	ctx := context.Background()

	rec, _ := store.FindByHash(ctx, "h2")
	rec.SuspicionReasons[0] = "mutated"
	again, _ := store.FindByHash(ctx, "h2")
	if again.SuspicionReasons[0] != "software webgl renderer" {
		t.Fatal("store must hand out copies, not shared slices")
	}
}
