package identity

import (
	"context"
	"strings"
	"testing"
	"time"

	"visitor-identity-api/internal/fingerprint"
)

func chromeAttrs() fingerprint.Attributes {
	return fingerprint.Attributes{
		UserAgent:           "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/126.0 Safari/537.36",
		Language:            "de-DE",
		Platform:            "Win32",
		HardwareConcurrency: 8,
		Screen:              &fingerprint.Screen{Width: 1920, Height: 1080, ColorDepth: 24},
		Timezone:            "Europe/Berlin",
		CanvasHash:          "c4nv4s",
		WebGL:               &fingerprint.WebGL{UnmaskedVendor: "NVIDIA Corporation", UnmaskedRenderer: "NVIDIA GeForce RTX 3060"},
		Audio:               &fingerprint.Audio{Checksum: "aud-123", SampleRate: 44100},
		Fonts:               []string{"Arial", "Calibri", "Consolas", "Verdana"},
	}
}

func observation(hash, ip string, attrs fingerprint.Attributes) *Observation {
	return &Observation{
		Hash: hash,
		IP:   ip,
		Composite: &fingerprint.Composite{
			Fingerprint: attrs,
			Network:     fingerprint.Network{IP: ip, UserAgent: attrs.UserAgent},
		},
	}
}

func newTestResolver(store Store) *Resolver {
	r := NewResolver(store, DefaultConfig())
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return base }
	return r
}

func TestResolveNewUser(t *testing.T) {
	store := NewMemStore()
	r := newTestResolver(store)

	res, err := r.Resolve(context.Background(), observation("hash-a", "203.0.113.9", chromeAttrs()))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Method != MethodNewUser {
		t.Fatalf("want %s, got %s", MethodNewUser, res.Method)
	}
	if !res.IsNew {
		t.Fatal("first visitor must be flagged new")
	}
	if res.Confidence != 1.0 {
		t.Fatalf("new identity confidence: want 1.0, got %v", res.Confidence)
	}
	if !strings.HasPrefix(res.UserID, "usr_") {
		t.Fatalf("user id format: %q", res.UserID)
	}
	if u, _ := store.GetUser(context.Background(), res.UserID); u == nil {
		t.Fatal("user must be persisted")
	}
	if rec, _ := store.FindByHash(context.Background(), "hash-a"); rec == nil || rec.UserID != res.UserID {
		t.Fatal("record must be persisted under the new user")
	}
}

func TestResolveExactHash(t *testing.T) {
	store := NewMemStore()
	r := newTestResolver(store)
	ctx := context.Background()

	first, err := r.Resolve(ctx, observation("hash-a", "203.0.113.9", chromeAttrs()))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	second, err := r.Resolve(ctx, observation("hash-a", "198.51.100.2", chromeAttrs()))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if second.Method != MethodExact {
		t.Fatalf("want %s, got %s", MethodExact, second.Method)
	}
	if second.UserID != first.UserID {
		t.Fatal("exact match must reuse the identity")
	}
	if second.Confidence != 0.95 {
		t.Fatalf("exact confidence: want 0.95, got %v", second.Confidence)
	}
	if second.IsNew {
		t.Fatal("returning visitor flagged new")
	}
	rec, _ := store.FindByHash(ctx, "hash-a")
	if rec.SeenCount != 2 {
		t.Fatalf("seen count must bump: want 2, got %d", rec.SeenCount)
	}
}

func TestResolveFuzzyMatch(t *testing.T) {
	store := NewMemStore()
	r := newTestResolver(store)
	ctx := context.Background()

	first, err := r.Resolve(ctx, observation("hash-a", "203.0.113.9", chromeAttrs()))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Browser update: new hash, slightly drifted fonts, everything else equal.
	drifted := chromeAttrs()
	drifted.Fonts = []string{"Arial", "Calibri", "Consolas"}
	res, err := r.Resolve(ctx, observation("hash-b", "198.51.100.2", drifted))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Method != MethodFuzzy {
		t.Fatalf("want %s, got %s", MethodFuzzy, res.Method)
	}
	if res.UserID != first.UserID {
		t.Fatal("fuzzy match must reuse the identity")
	}
	// Jaccard 3/4: similarity 0.85 + 0.15*0.75 = 0.9625, scaled by 0.9.
	want := (0.85 + 0.15*0.75) * 0.9
	if diff := res.Confidence - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("fuzzy confidence: want %v, got %v", want, res.Confidence)
	}
	if rec, _ := store.FindByHash(ctx, "hash-b"); rec == nil || rec.UserID != first.UserID {
		t.Fatal("drifted fingerprint must be stored under the matched user")
	}
}

func TestResolveIPFallback(t *testing.T) {
	store := NewMemStore()
	r := newTestResolver(store)
	ctx := context.Background()

	first, err := r.Resolve(ctx, observation("hash-a", "203.0.113.9", chromeAttrs()))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Different device entirely, same IP within the window.
	other := fingerprint.Attributes{
		UserAgent:           "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_5) Safari/605.1",
		Language:            "en-US",
		Platform:            "MacIntel",
		HardwareConcurrency: 10,
		Screen:              &fingerprint.Screen{Width: 2560, Height: 1600, ColorDepth: 30},
		Timezone:            "America/New_York",
		CanvasHash:          "other-canvas",
		WebGL:               &fingerprint.WebGL{UnmaskedRenderer: "Apple M3"},
		Audio:               &fingerprint.Audio{Checksum: "aud-777"},
		Fonts:               []string{"Helvetica", "Monaco"},
	}
	res, err := r.Resolve(ctx, observation("hash-b", "203.0.113.9", other))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Method != MethodIP {
		t.Fatalf("want %s, got %s", MethodIP, res.Method)
	}
	if res.UserID != first.UserID {
		t.Fatal("same-IP fallback must reuse the identity")
	}
	if res.Confidence != 0.6 {
		t.Fatalf("ip confidence: want 0.6, got %v", res.Confidence)
	}
}

func TestResolveIPOutsideWindowMintsNewUser(t *testing.T) {
	store := NewMemStore()
	cfg := DefaultConfig()
	r := NewResolver(store, cfg)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := base
	r.now = func() time.Time { return now }
	ctx := context.Background()

	first, err := r.Resolve(ctx, observation("hash-a", "203.0.113.9", chromeAttrs()))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	// 40 days later: fuzzy and IP windows are both closed.
	now = base.Add(40 * 24 * time.Hour)
	other := fingerprint.Attributes{UserAgent: "curl/8.6", Platform: "Linux x86_64"}
	res, err := r.Resolve(ctx, observation("hash-b", "203.0.113.9", other))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Method != MethodNewUser {
		t.Fatalf("stale history must not link: want %s, got %s", MethodNewUser, res.Method)
	}
	if res.UserID == first.UserID {
		t.Fatal("expired windows must mint a fresh identity")
	}
}

func TestNewUserIDShape(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	id := NewUserID(now)
	parts := strings.Split(id, "_")
	if len(parts) != 3 || parts[0] != "usr" {
		t.Fatalf("id shape: %q", id)
	}
	if parts[1] == "" || parts[2] == "" {
		t.Fatalf("empty segment in %q", id)
	}
	if NewUserID(now) == id {
		t.Fatal("random suffix must differ between calls")
	}
}
