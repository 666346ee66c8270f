package fingerprints

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"visitor-identity-api/internal/fingerprint"
	testutil "visitor-identity-api/internal/httpx/kit/testutil"
	"visitor-identity-api/internal/httpx/mw"
	"visitor-identity-api/internal/identity"
	"visitor-identity-api/internal/ratelimit"
)

func chromeAttrs() fingerprint.Attributes {
	return fingerprint.Attributes{
		UserAgent:           "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/126.0 Safari/537.36",
		Language:            "de-DE",
		Platform:            "Win32",
		HardwareConcurrency: 8,
		DeviceMemory:        8,
		Screen:              &fingerprint.Screen{Width: 1920, Height: 1080, ColorDepth: 24},
		Timezone:            "Europe/Berlin",
		CanvasHash:          "c4nv4s",
		WebGL:               &fingerprint.WebGL{UnmaskedVendor: "NVIDIA Corporation", UnmaskedRenderer: "NVIDIA GeForce RTX 3060"},
		Audio:               &fingerprint.Audio{Checksum: "aud-123", SampleRate: 44100},
		Fonts:               []string{"Arial", "Calibri", "Consolas", "Verdana"},
	}
}

func newDeps() *Deps {
	store := identity.NewMemStore()
	return &Deps{
		Store:    store,
		Resolver: identity.NewResolver(store, identity.DefaultConfig()),
	}
}

func newApp(d *Deps) *fiber.App {
	return testutil.NewApp(func(app *fiber.App) {
		app.Post("/api/v1/fingerprint", IngestHandler(d))
		app.Get("/api/v1/fingerprint", LookupHandler(d.Store))
		app.Get("/api/v1/fingerprint/stats", StatsHandler(d.Store))
		app.Delete("/api/v1/fingerprint", EraseHandler(d))
		app.Get("/api/v1/fingerprint/search", SearchHandler(d))
	})
}

// clientHash mimics the collector's preliminary hash over the attribute bag.
func clientHash(t *testing.T, attrs fingerprint.Attributes) string {
	t.Helper()
	h, err := fingerprint.Hash(attrs)
	if err != nil {
		t.Fatalf("client hash: %v", err)
	}
	return h
}

func ingest(t *testing.T, app *fiber.App, attrs fingerprint.Attributes) (*http.Response, map[string]any) {
	t.Helper()
	b, _ := json.Marshal(IngestRequest{Fingerprint: attrs, Hash: clientHash(t, attrs)})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fingerprint", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", attrs.UserAgent)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	var body map[string]any
	_ = json.NewDecoder(res.Body).Decode(&body)
	return res, body
}

func dataOf(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data envelope: %v", body)
	}
	return data
}

func TestIngestNewVisitor(t *testing.T) {
	app := newApp(newDeps())
	res, body := ingest(t, app, chromeAttrs())
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status: want 200, got %d (%v)", res.StatusCode, body)
	}
	data := dataOf(t, body)
	if data["isNewUser"] != true {
		t.Fatalf("first visit must mint a user: %v", data)
	}
	if data["method"] != string(identity.MethodNewUser) {
		t.Fatalf("method: got %v", data["method"])
	}
	if data["confidence"].(float64) != 1.0 {
		t.Fatalf("confidence: got %v", data["confidence"])
	}
	if data["suspicious"] != false {
		t.Fatalf("clean fingerprint flagged: %v", data)
	}
}

func TestIngestReturningVisitorExact(t *testing.T) {
	app := newApp(newDeps())
	_, first := ingest(t, app, chromeAttrs())
	_, second := ingest(t, app, chromeAttrs())

	fd, sd := dataOf(t, first), dataOf(t, second)
	if sd["userId"] != fd["userId"] {
		t.Fatal("same fingerprint must resolve to the same user")
	}
	if sd["method"] != string(identity.MethodExact) {
		t.Fatalf("method: got %v", sd["method"])
	}
	if sd["isNewUser"] != false {
		t.Fatal("returning visitor flagged new")
	}
	if sd["confidence"].(float64) != 0.95 {
		t.Fatalf("confidence: got %v", sd["confidence"])
	}
}

func TestIngestDriftedFingerprintFuzzy(t *testing.T) {
	app := newApp(newDeps())
	_, first := ingest(t, app, chromeAttrs())

	drifted := chromeAttrs()
	drifted.Fonts = []string{"Arial", "Calibri", "Consolas"}
	_, second := ingest(t, app, drifted)

	fd, sd := dataOf(t, first), dataOf(t, second)
	if sd["userId"] != fd["userId"] {
		t.Fatal("drifted fingerprint must link to the existing user")
	}
	if sd["method"] != string(identity.MethodFuzzy) {
		t.Fatalf("method: got %v", sd["method"])
	}
	conf := sd["confidence"].(float64)
	if conf <= 0.6 || conf >= 0.95 {
		t.Fatalf("fuzzy confidence out of band: %v", conf)
	}
}

func TestIngestBlocksHeadlessClient(t *testing.T) {
	app := newApp(newDeps())
	bot := fingerprint.Attributes{
		UserAgent:           "Mozilla/5.0 HeadlessChrome/126.0",
		Platform:            "Linux x86_64",
		HardwareConcurrency: 4,
		Screen:              &fingerprint.Screen{Width: 1920, Height: 1080, ColorDepth: 24},
		WebGL:               &fingerprint.WebGL{Renderer: "Google SwiftShader"},
	}
	res, body := ingest(t, app, bot)
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("status: want 403, got %d (%v)", res.StatusCode, body)
	}
	if body["code"] != "E_FORBIDDEN" {
		t.Fatalf("code: got %v", body["code"])
	}
	details := body["details"].(map[string]any)
	if details["botScore"].(float64) <= 85 {
		t.Fatalf("bot score must exceed the block threshold: %v", details)
	}
}

func TestIngestRejectsEmptyPayload(t *testing.T) {
	app := newApp(newDeps())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fingerprint", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status: want 400, got %d", res.StatusCode)
	}
}

func TestIngestRejectsMissingOrMalformedHash(t *testing.T) {
	app := newApp(newDeps())
	for _, hash := range []string{"", "not-a-digest", "ABC123"} {
		b, _ := json.Marshal(IngestRequest{Fingerprint: chromeAttrs(), Hash: hash})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/fingerprint", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if res.StatusCode != http.StatusBadRequest {
			t.Fatalf("hash %q: want 400, got %d", hash, res.StatusCode)
		}
		var body map[string]any
		_ = json.NewDecoder(res.Body).Decode(&body)
		if body["code"] != "E_INVALID_PARAM" {
			t.Fatalf("hash %q: code %v", hash, body["code"])
		}
	}
}

func TestIngestNetworkChangeFallsToFuzzy(t *testing.T) {
	app := newApp(newDeps())
	attrs := chromeAttrs()
	_, first := ingest(t, app, attrs)

	// Same attribute bag, different network identity: the composite hash
	// changes, so the exact tier must miss and fuzzy must reattach.
	b, _ := json.Marshal(IngestRequest{Fingerprint: attrs, Hash: clientHash(t, attrs)})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fingerprint", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) Chrome/126.0 Safari/537.36")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status: want 200, got %d", res.StatusCode)
	}
	var out map[string]any
	_ = json.NewDecoder(res.Body).Decode(&out)
	fd, sd := dataOf(t, first), dataOf(t, out)
	if sd["userId"] != fd["userId"] {
		t.Fatal("network change must still link to the existing user")
	}
	if sd["method"] != string(identity.MethodFuzzy) {
		t.Fatalf("method: want fuzzy, got %v", sd["method"])
	}
	if sd["confidence"].(float64) != 0.9 {
		t.Fatalf("identical attributes over fuzzy: want 0.9, got %v", sd["confidence"])
	}
}

func TestIngestRateLimited(t *testing.T) {
	d := newDeps()
	limiter := ratelimit.NewMemory(2, time.Minute)
	app := testutil.NewApp(func(app *fiber.App) {
		app.Post("/api/v1/fingerprint", mw.RateLimit(limiter), IngestHandler(d))
	})

	for i := 0; i < 2; i++ {
		res, _ := ingest(t, app, chromeAttrs())
		if res.StatusCode != http.StatusOK {
			t.Fatalf("request %d: want 200, got %d", i+1, res.StatusCode)
		}
	}
	res, body := ingest(t, app, chromeAttrs())
	if res.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("status: want 429, got %d", res.StatusCode)
	}
	if body["code"] != "E_RATE_LIMITED" {
		t.Fatalf("code: got %v", body["code"])
	}
	if res.Header.Get("Retry-After") == "" {
		t.Fatal("missing Retry-After header")
	}
}

func TestLookupProfile(t *testing.T) {
	app := newApp(newDeps())
	_, body := ingest(t, app, chromeAttrs())
	userID := dataOf(t, body)["userId"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/fingerprint?userId="+userID, nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status: want 200, got %d", res.StatusCode)
	}
	var out map[string]any
	_ = json.NewDecoder(res.Body).Decode(&out)
	data := dataOf(t, out)
	if data["userId"] != userID {
		t.Fatalf("profile user mismatch: %v", data)
	}
	fps := data["fingerprints"].([]any)
	if len(fps) != 1 {
		t.Fatalf("want 1 stored fingerprint, got %d", len(fps))
	}
}

func TestLookupDecaysStaleConfidence(t *testing.T) {
	d := newDeps()
	app := newApp(d)
	ctx := context.Background()

	seen := time.Now().Add(-30 * 24 * time.Hour)
	if err := d.Store.CreateUser(ctx, &identity.User{PublicID: "usr_stale", CreatedAt: seen, LastSeenAt: seen}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	attrs := chromeAttrs()
	err := d.Store.CreateRecord(ctx, &identity.Record{
		ID:         "rec-stale",
		Hash:       clientHash(t, attrs),
		UserID:     "usr_stale",
		Composite:  &fingerprint.Composite{Fingerprint: attrs},
		Confidence: 0.95,
		SeenCount:  1,
		CreatedAt:  seen,
		LastSeenAt: seen,
	})
	if err != nil {
		t.Fatalf("create record: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/fingerprint?userId=usr_stale", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status: want 200, got %d", res.StatusCode)
	}
	var out map[string]any
	_ = json.NewDecoder(res.Body).Decode(&out)
	rec := dataOf(t, out)["fingerprints"].([]any)[0].(map[string]any)
	if rec["confidence"].(float64) != 0.95 {
		t.Fatalf("stored confidence changed: %v", rec["confidence"])
	}
	// One half-life elapsed, so the current confidence reads about half.
	current := rec["currentConfidence"].(float64)
	if current < 0.44 || current > 0.51 {
		t.Fatalf("30-day-old record should decay to ~0.475, got %v", current)
	}
}

func TestLookupUnknownUser(t *testing.T) {
	app := newApp(newDeps())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/fingerprint?userId=usr_nope", nil)
	res, _ := app.Test(req)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status: want 404, got %d", res.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/fingerprint", nil)
	res, _ = app.Test(req)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing userId: want 400, got %d", res.StatusCode)
	}
}

func TestStatsReport(t *testing.T) {
	app := newApp(newDeps())
	ingest(t, app, chromeAttrs())
	other := chromeAttrs()
	other.Timezone = "America/New_York"
	other.CanvasHash = "other-canvas"
	other.Language = "en-US"
	ingest(t, app, other)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/fingerprint/stats", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status: want 200, got %d", res.StatusCode)
	}
	var out map[string]any
	_ = json.NewDecoder(res.Body).Decode(&out)
	data := dataOf(t, out)
	if data["totalFingerprints"].(float64) != 2 {
		t.Fatalf("total: got %v", data["totalFingerprints"])
	}
	if data["seenLastHour"].(float64) != 2 || data["seenLastDay"].(float64) != 2 {
		t.Fatalf("window counts: got %v / %v", data["seenLastHour"], data["seenLastDay"])
	}
	ent := data["entropy"].(map[string]any)
	if ent["theoreticalBits"].(float64) < 90 {
		t.Fatalf("theoretical bits: got %v", ent["theoreticalBits"])
	}
	if ent["observedBits"].(float64) <= 0 {
		t.Fatalf("observed bits must be positive with two distinct hashes: %v", ent["observedBits"])
	}
	dists := data["distributions"].([]any)
	if len(dists) != 4 {
		t.Fatalf("want 4 distributions, got %d", len(dists))
	}
}

func TestEraseUser(t *testing.T) {
	d := newDeps()
	app := newApp(d)
	_, body := ingest(t, app, chromeAttrs())
	userID := dataOf(t, body)["userId"].(string)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/fingerprint?userId="+userID, nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status: want 200, got %d", res.StatusCode)
	}
	var out map[string]any
	_ = json.NewDecoder(res.Body).Decode(&out)
	if dataOf(t, out)["erasedRecords"].(float64) != 1 {
		t.Fatalf("erased count wrong: %v", out)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/fingerprint?userId="+userID, nil)
	res, _ = app.Test(req)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("erased user must be gone: got %d", res.StatusCode)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/fingerprint?userId=usr_nope", nil)
	res, _ = app.Test(req)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown user: want 404, got %d", res.StatusCode)
	}
}

func TestSearchWithoutES(t *testing.T) {
	app := newApp(newDeps())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/fingerprint/search?q=swiftshader", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status: want 200, got %d", res.StatusCode)
	}
	var out map[string]any
	_ = json.NewDecoder(res.Body).Decode(&out)
	hits := dataOf(t, out)["hits"].([]any)
	if len(hits) != 0 {
		t.Fatalf("no ES configured: want empty hits, got %v", hits)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/fingerprint/search", nil)
	res, _ = app.Test(req)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing q: want 400, got %d", res.StatusCode)
	}
}
