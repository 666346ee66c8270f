// Package auth issues and validates admin access tokens.
package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"visitor-identity-api/internal/config"
	"visitor-identity-api/internal/httpx/kit"
	"visitor-identity-api/internal/logx"
)

var authLogger = logx.GetScope("auth")

// LoginHandler verifies admin credentials against the configured argon2id
// hash and issues a short-lived bearer token for the guarded endpoints.
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil || req.Username == "" || req.Password == "" {
			return kit.BadRequest("username and password required", nil)
		}
		if cfg.Admin.PasswordHash == "" {
			return kit.Forbidden("admin login disabled", nil)
		}
		userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(cfg.Admin.Username)) == 1
		passOK := VerifyPassword(req.Password, cfg.Admin.PasswordHash)
		if !userOK || !passOK {
			authLogger.Warn("admin login rejected", zap.String("ip", c.IP()))
			return kit.Unauthorized("invalid credentials")
		}
		token, _, err := SignAccess(cfg, "user:"+cfg.Admin.Username, "user", []string{"admin"})
		if err != nil {
			return kit.InternalError("token signing failed", err.Error())
		}
		return kit.OK(c, LoginResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   cfg.JWT.AccessMin * 60,
		})
	}
}
