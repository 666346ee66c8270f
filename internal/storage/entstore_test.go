package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"visitor-identity-api/ent"
	"visitor-identity-api/internal/fingerprint"
	"visitor-identity-api/internal/identity"
)

func newTestStore(t *testing.T) *EntStore {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_fk=1"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, _ = db.Exec("PRAGMA foreign_keys = ON")
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return NewEntStore(client)
}

func testRecord(userID, hash, ip string, at time.Time) *identity.Record {
	return &identity.Record{
		ID:     uuid.NewString(),
		Hash:   hash,
		UserID: userID,
		Composite: &fingerprint.Composite{
			Fingerprint: fingerprint.Attributes{
				UserAgent:  "Mozilla/5.0 Chrome/126.0",
				CanvasHash: "c4nv4s",
				Fonts:      []string{"Arial", "Verdana"},
			},
			Network: fingerprint.Network{IP: ip},
		},
		IP:         ip,
		Confidence: 1.0,
		SeenCount:  1,
		CreatedAt:  at,
		LastSeenAt: at,
	}
}

func TestEntStoreRecordRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	u := &identity.User{PublicID: "usr_abc", CreatedAt: now, LastSeenAt: now}
	if err := store.CreateUser(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	rec := testRecord("usr_abc", "hash-1", "203.0.113.9", now)
	rec.Suspicious = true
	rec.SuspicionReasons = []string{"automation marker in user agent"}
	if err := store.CreateRecord(ctx, rec); err != nil {
		t.Fatalf("create record: %v", err)
	}

	got, err := store.FindByHash(ctx, "hash-1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil {
		t.Fatal("stored record not found")
	}
	if got.UserID != "usr_abc" {
		t.Fatalf("owner: want usr_abc, got %q", got.UserID)
	}
	if got.Composite == nil || got.Composite.Fingerprint.CanvasHash != "c4nv4s" {
		t.Fatalf("payload did not round-trip: %+v", got.Composite)
	}
	if !got.Suspicious || len(got.SuspicionReasons) != 1 {
		t.Fatalf("suspicion flags lost: %+v", got)
	}

	if miss, err := store.FindByHash(ctx, "no-such-hash"); err != nil || miss != nil {
		t.Fatalf("miss must be (nil, nil), got %v / %v", miss, err)
	}
}

func TestEntStoreTouchRecord(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := store.CreateUser(ctx, &identity.User{PublicID: "usr_abc", CreatedAt: now, LastSeenAt: now}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	rec := testRecord("usr_abc", "hash-1", "203.0.113.9", now)
	if err := store.CreateRecord(ctx, rec); err != nil {
		t.Fatalf("create record: %v", err)
	}

	later := now.Add(time.Hour)
	if err := store.TouchRecord(ctx, rec.ID, later); err != nil {
		t.Fatalf("touch: %v", err)
	}
	got, _ := store.FindByHash(ctx, "hash-1")
	if got.SeenCount != 2 {
		t.Fatalf("seen count: want 2, got %d", got.SeenCount)
	}
	if !got.LastSeenAt.Equal(later) {
		t.Fatalf("last seen: want %v, got %v", later, got.LastSeenAt)
	}
}

func TestEntStoreRecentQueries(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := store.CreateUser(ctx, &identity.User{PublicID: "usr_abc", CreatedAt: now, LastSeenAt: now}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	old := testRecord("usr_abc", "hash-old", "203.0.113.9", now.Add(-40*24*time.Hour))
	fresh := testRecord("usr_abc", "hash-fresh", "203.0.113.9", now)
	for _, r := range []*identity.Record{old, fresh} {
		if err := store.CreateRecord(ctx, r); err != nil {
			t.Fatalf("create record: %v", err)
		}
	}

	recent, err := store.RecentRecords(ctx, now.Add(-30*24*time.Hour), 100)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 || recent[0].Hash != "hash-fresh" {
		t.Fatalf("window filter wrong: %+v", recent)
	}
	if recent[0].UserID != "usr_abc" {
		t.Fatal("recent records must carry the owner")
	}

	byIP, err := store.RecentByIP(ctx, "203.0.113.9", now.Add(-time.Hour), 100)
	if err != nil {
		t.Fatalf("by ip: %v", err)
	}
	if len(byIP) != 1 || byIP[0].Hash != "hash-fresh" {
		t.Fatalf("ip filter wrong: %+v", byIP)
	}

	byUser, err := store.RecordsByUser(ctx, "usr_abc")
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if len(byUser) != 2 || byUser[0].Hash != "hash-fresh" {
		t.Fatalf("user records ordering wrong: %+v", byUser)
	}
}

func TestEntStoreEraseUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := store.CreateUser(ctx, &identity.User{PublicID: "usr_abc", CreatedAt: now, LastSeenAt: now}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	for _, h := range []string{"hash-1", "hash-2"} {
		if err := store.CreateRecord(ctx, testRecord("usr_abc", h, "203.0.113.9", now)); err != nil {
			t.Fatalf("create record: %v", err)
		}
	}

	removed, err := store.EraseUser(ctx, "usr_abc")
	if err != nil {
		t.Fatalf("erase: %v", err)
	}
	if removed != 2 {
		t.Fatalf("removed: want 2, got %d", removed)
	}
	if u, _ := store.GetUser(ctx, "usr_abc"); u != nil {
		t.Fatal("user must be gone")
	}
	if rec, _ := store.FindByHash(ctx, "hash-1"); rec != nil {
		t.Fatal("records must be gone")
	}
}

func TestEntStoreStatsAndHashCounts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	empty, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("empty stats: %v", err)
	}
	if empty.TotalFingerprints != 0 || empty.TotalUsers != 0 {
		t.Fatalf("empty stats wrong: %+v", empty)
	}

	if err := store.CreateUser(ctx, &identity.User{PublicID: "usr_abc", CreatedAt: now, LastSeenAt: now}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	a := testRecord("usr_abc", "hash-1", "203.0.113.9", now.Add(-time.Hour))
	a.Confidence = 1.0
	b := testRecord("usr_abc", "hash-2", "203.0.113.9", now)
	b.Confidence = 0.6
	b.Suspicious = true
	for _, r := range []*identity.Record{a, b} {
		if err := store.CreateRecord(ctx, r); err != nil {
			t.Fatalf("create record: %v", err)
		}
	}
	if err := store.TouchRecord(ctx, a.ID, now); err != nil {
		t.Fatalf("touch: %v", err)
	}

	st, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.TotalFingerprints != 2 || st.UniqueHashes != 2 || st.TotalUsers != 1 {
		t.Fatalf("counts wrong: %+v", st)
	}
	if st.SuspiciousCount != 1 {
		t.Fatalf("suspicious: want 1, got %d", st.SuspiciousCount)
	}
	if st.AverageConfidence < 0.79 || st.AverageConfidence > 0.81 {
		t.Fatalf("avg confidence: want 0.8, got %v", st.AverageConfidence)
	}

	counts, err := store.HashCounts(ctx)
	if err != nil {
		t.Fatalf("hash counts: %v", err)
	}
	if counts["hash-1"] != 2 || counts["hash-2"] != 1 {
		t.Fatalf("hash counts wrong: %v", counts)
	}
}
