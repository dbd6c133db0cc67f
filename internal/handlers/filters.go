package handlers

import (
	"github.com/gofiber/fiber/v3"

	"claydash/internal/filters"
	"claydash/internal/metrics"
	"claydash/internal/validation"
)

// SetFilter handles a facet selection from one of the filter bars. Selecting
// "All" removes the facet; anything else overwrites the prior selection.
func (h *Handler) SetFilter(c fiber.Ctx) error {
	name := c.FormValue("name")
	if !validation.ValidateFacetName(name) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid filter name")
	}
	value := c.FormValue("value")
	if !validation.ValidateFacetValue(value) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid filter value")
	}

	state := h.State(c)
	if value == filters.All || value == "" {
		state.Remove(name)
		metrics.FilterMutationsTotal.WithLabelValues("remove").Inc()
	} else {
		state.Set(name, value)
		metrics.FilterMutationsTotal.WithLabelValues("set").Inc()
	}

	return redirectBack(c)
}

// ClearFilters drops every facet of the session.
func (h *Handler) ClearFilters(c fiber.Ctx) error {
	h.State(c).Clear()
	metrics.FilterMutationsTotal.WithLabelValues("clear").Inc()
	return redirectBack(c)
}

// redirectBack returns to the page the form was submitted from.
func redirectBack(c fiber.Ctx) error {
	target := c.FormValue("redirect")
	if target == "" {
		target = c.Get("Referer")
	}
	if target == "" {
		target = "/"
	}
	return c.Redirect().To(target)
}
