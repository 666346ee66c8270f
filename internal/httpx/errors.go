package httpx

import (
	"github.com/gofiber/fiber/v2"

	"visitor-identity-api/internal/httpx/kit"
)

// ErrorHandler is the app-wide Fiber error handler. Route handlers raise
// kit.APIError values, so rendering lives in kit and is shared with the
// test harness.
func ErrorHandler() fiber.ErrorHandler {
	return kit.ErrorHandler()
}
