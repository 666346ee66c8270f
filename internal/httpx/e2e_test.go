// Package httpx provides HTTP handling utilities and middleware
package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"visitor-identity-api/internal/config"
	"visitor-identity-api/internal/fingerprint"
	"visitor-identity-api/internal/httpx/auth"
	"visitor-identity-api/internal/identity"
)

func e2eApp(t *testing.T) (*fiber.App, *config.Config) {
	t.Helper()
	hash, err := auth.HashPassword("e2e-admin-pass")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	cfg := &config.Config{}
	cfg.JWT.HSSecret = "e2e-secret"
	cfg.JWT.Issuer = "visitor-identity-api"
	cfg.JWT.Audience = "visitor-identity"
	cfg.JWT.AccessMin = 30
	cfg.Admin.Username = "admin"
	cfg.Admin.PasswordHash = hash
	// Limits stay zero: no rate limiting in this test.

	store := identity.NewMemStore()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterCommonMiddlewares(app)
	Register(app, &Providers{
		Cfg:      cfg,
		Store:    store,
		Resolver: identity.NewResolver(store, identity.DefaultConfig()),
	})
	return app, cfg
}

func TestE2E_Health(t *testing.T) {
	app, _ := e2eApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", res.StatusCode)
	}
	var body struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != "OK" || body.Data["status"] != "ok" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Data["uptime"] == "" {
		t.Fatal("missing uptime")
	}
}

func TestE2E_NotFoundEnvelope(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", res.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["code"] != "E_NOT_FOUND" {
		t.Fatalf("unexpected body: %v", body)
	}
}

// Full flow: ingest a fingerprint, look the user up, then erase it through
// the admin-guarded endpoint.
func TestE2E_IngestLookupErase(t *testing.T) {
	app, _ := e2eApp(t)

	attrs := fingerprint.Attributes{
		UserAgent:           "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/126.0",
		Language:            "de-DE",
		Platform:            "Win32",
		HardwareConcurrency: 8,
		Screen:              &fingerprint.Screen{Width: 1920, Height: 1080, ColorDepth: 24},
		Timezone:            "Europe/Berlin",
		CanvasHash:          "e2e-canvas",
		WebGL:               &fingerprint.WebGL{UnmaskedRenderer: "NVIDIA GeForce RTX 3060"},
		Audio:               &fingerprint.Audio{Checksum: "e2e-audio"},
		Fonts:               []string{"Arial", "Verdana"},
	}
	preliminary, err := fingerprint.Hash(attrs)
	if err != nil {
		t.Fatalf("client hash: %v", err)
	}
	b, _ := json.Marshal(map[string]any{"fingerprint": attrs, "hash": preliminary})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fingerprint", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("ingest status: %d", res.StatusCode)
	}
	var out map[string]any
	_ = json.NewDecoder(res.Body).Decode(&out)
	userID := out["data"].(map[string]any)["userId"].(string)

	// Lookup and erase are admin surfaces; without a token both reject.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/fingerprint?userId="+userID, nil)
	res, _ = app.Test(req)
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated lookup: want 401, got %d", res.StatusCode)
	}
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/fingerprint?userId="+userID, nil)
	res, _ = app.Test(req)
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated erase: want 401, got %d", res.StatusCode)
	}

	// Login, then walk the admin flow with the bearer token.
	lb, _ := json.Marshal(map[string]string{"username": "admin", "password": "e2e-admin-pass"})
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(lb))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login status: %d", res.StatusCode)
	}
	var login map[string]any
	_ = json.NewDecoder(res.Body).Decode(&login)
	token := login["data"].(map[string]any)["accessToken"].(string)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/fingerprint?userId="+userID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, _ = app.Test(req)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("lookup status: %d", res.StatusCode)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/fingerprint?userId="+userID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, _ = app.Test(req)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("authorized erase: want 200, got %d", res.StatusCode)
	}

	// The identity is gone, and the handler error renders as the standard
	// envelope.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/fingerprint?userId="+userID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, _ = app.Test(req)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("post-erase lookup: want 404, got %d", res.StatusCode)
	}
	var gone map[string]any
	_ = json.NewDecoder(res.Body).Decode(&gone)
	if gone["code"] != "E_NOT_FOUND" {
		t.Fatalf("post-erase lookup code: %v", gone["code"])
	}
}
