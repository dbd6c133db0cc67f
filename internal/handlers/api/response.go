package api

import (
	"github.com/gofiber/fiber/v3"
)

// jsonSuccess wraps a chart, table or filter payload in the envelope every
// dashboard API endpoint returns.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError returns the error envelope with the given HTTP status, e.g. 503
// for a structural dataset failure.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}
