package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"visitor-identity-api/internal/config"
	testutil "visitor-identity-api/internal/httpx/kit/testutil"
)

func testConfig(t *testing.T, password string) *config.Config {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	cfg := &config.Config{}
	cfg.JWT.HSSecret = "test-secret"
	cfg.JWT.Issuer = "visitor-identity-api"
	cfg.JWT.Audience = "visitor-identity"
	cfg.JWT.AccessMin = 30
	cfg.Admin.Username = "admin"
	cfg.Admin.PasswordHash = hash
	return cfg
}

func loginApp(cfg *config.Config) *fiber.App {
	return testutil.NewApp(func(app *fiber.App) {
		app.Post("/auth/login", LoginHandler(cfg))
	})
}

func postLogin(t *testing.T, app *fiber.App, body LoginRequest) (*http.Response, map[string]any) {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	var out map[string]any
	_ = json.NewDecoder(res.Body).Decode(&out)
	return res, out
}

func TestLoginIssuesToken(t *testing.T) {
	cfg := testConfig(t, "correct horse battery staple")
	app := loginApp(cfg)

	res, body := postLogin(t, app, LoginRequest{Username: "admin", Password: "correct horse battery staple"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status: want 200, got %d (%v)", res.StatusCode, body)
	}
	data := body["data"].(map[string]any)
	token, _ := data["accessToken"].(string)
	if token == "" {
		t.Fatal("missing access token")
	}

	claims, err := ParseAndValidate(cfg, token)
	if err != nil {
		t.Fatalf("issued token must validate: %v", err)
	}
	if claims.Kind != "user" || len(claims.Roles) != 1 || claims.Roles[0] != "admin" {
		t.Fatalf("claims wrong: %+v", claims)
	}
	if claims.Subject != "user:admin" {
		t.Fatalf("subject: got %q", claims.Subject)
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	cfg := testConfig(t, "right")
	app := loginApp(cfg)

	res, body := postLogin(t, app, LoginRequest{Username: "admin", Password: "wrong"})
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status: want 401, got %d", res.StatusCode)
	}
	if body["code"] != "E_UNAUTHORIZED" {
		t.Fatalf("code: got %v", body["code"])
	}
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	cfg := testConfig(t, "right")
	app := loginApp(cfg)
	res, _ := postLogin(t, app, LoginRequest{Username: "root", Password: "right"})
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status: want 401, got %d", res.StatusCode)
	}
}

func TestLoginDisabledWithoutHash(t *testing.T) {
	cfg := testConfig(t, "x")
	cfg.Admin.PasswordHash = ""
	app := loginApp(cfg)
	res, _ := postLogin(t, app, LoginRequest{Username: "admin", Password: "x"})
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("status: want 403, got %d", res.StatusCode)
	}
}

func TestVerifyPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword("s3cret", hash) {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword("other", hash) {
		t.Fatal("wrong password accepted")
	}
	if VerifyPassword("s3cret", "$argon2id$broken") {
		t.Fatal("malformed hash accepted")
	}
}

func TestParseAndValidateRejectsTamperedToken(t *testing.T) {
	cfg := testConfig(t, "x")
	token, _, err := SignAccess(cfg, "user:admin", "user", []string{"admin"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	other := testConfig(t, "x")
	other.JWT.HSSecret = "different-secret"
	if _, err := ParseAndValidate(other, token); err == nil {
		t.Fatal("token signed with another secret must not validate")
	}
}
