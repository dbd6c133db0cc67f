package handlers

import (
	"github.com/gofiber/fiber/v3"

	"claydash/internal/metrics"
)

// Refresh invalidates the dataset cache so the next page load rereads the CSV
// files from disk.
func (h *Handler) Refresh(c fiber.Ctx) error {
	h.loader.Invalidate()
	metrics.InvalidationsTotal.Inc()
	return redirectBack(c)
}
