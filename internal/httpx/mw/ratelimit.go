package mw

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"visitor-identity-api/internal/ratelimit"
)

// RateLimit guards a route group with a per-IP fixed-window limiter. A nil
// limiter disables the guard.
func RateLimit(l ratelimit.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if l == nil {
			return c.Next()
		}
		remaining, err := l.Allow(c.Context(), c.IP())
		c.Set("X-RateLimit-Limit", fmt.Sprint(l.Limit()))
		if errors.Is(err, ratelimit.ErrLimited) {
			c.Set("X-RateLimit-Remaining", "0")
			c.Set("Retry-After", fmt.Sprint(int(l.Window().Seconds())))
			return fiber.NewError(fiber.StatusTooManyRequests, "rate limit exceeded")
		}
		if err != nil {
			return c.Next()
		}
		c.Set("X-RateLimit-Remaining", fmt.Sprint(remaining))
		return c.Next()
	}
}
