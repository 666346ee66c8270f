package httpx

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"visitor-identity-api/internal/httpx/kit"
	"visitor-identity-api/pkg"
)

var startedAt = time.Now()

// HealthHandler reports liveness and process uptime.
func HealthHandler(c *fiber.Ctx) error {
	return kit.OK(c, fiber.Map{
		"status": "ok",
		"uptime": pkg.SmartDurationFormat(time.Since(startedAt)),
	})
}
