// Package api exposes the dashboard's data as JSON: chart specs, filtered
// tables, facet state and a health probe. It reuses the page handlers' view
// pipeline, so API consumers see exactly what the rendered pages see.
package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"claydash/internal/analytics"
	"claydash/internal/filters"
	"claydash/internal/handlers"
	"claydash/internal/loader"
	"claydash/internal/metrics"
	"claydash/internal/models"
	"claydash/internal/validation"
)

// Handler serves the JSON API on top of the shared handler core.
type Handler struct {
	core   *handlers.Handler
	loader *loader.Loader
}

// NewHandler creates a new API handler.
func NewHandler(core *handlers.Handler, l *loader.Loader) *Handler {
	return &Handler{core: core, loader: l}
}

// Charts returns the chart specs of a dashboard page, after the session's
// filters.
func (h *Handler) Charts(c fiber.Ctx) error {
	v, err := h.core.View(c)
	if err != nil {
		return loadError(c, err)
	}

	specs, ok := handlers.ChartSpecs(c.Params("page"), v)
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "unknown page")
	}
	return jsonSuccess(c, specs)
}

// Table returns the session's filtered rows of one entity.
func (h *Handler) Table(c fiber.Ctx) error {
	v, err := h.core.View(c)
	if err != nil {
		return loadError(c, err)
	}

	switch c.Params("entity") {
	case models.EntityCompanies:
		return jsonSuccess(c, fiber.Map{
			"summary": analytics.Companies(v.Companies),
			"rows":    v.Companies,
		})
	case models.EntityDecisionMakers:
		return jsonSuccess(c, fiber.Map{
			"summary": analytics.DecisionMakers(v.DecisionMakers),
			"rows":    v.DecisionMakers,
		})
	case models.EntityJobs:
		return jsonSuccess(c, fiber.Map{
			"summary": analytics.Jobs(v.Jobs),
			"rows":    v.Jobs,
		})
	}
	return jsonError(c, fiber.StatusNotFound, "unknown entity")
}

// Filters returns the session's active facet selections.
func (h *Handler) Filters(c fiber.Ctx) error {
	return jsonSuccess(c, h.core.State(c).Active())
}

// SetFilter updates one facet from a JSON body. Selecting "All" removes it.
func (h *Handler) SetFilter(c fiber.Ctx) error {
	var body struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if !validation.ValidateFacetName(body.Name) {
		return jsonError(c, fiber.StatusBadRequest, "invalid filter name")
	}
	if !validation.ValidateFacetValue(body.Value) {
		return jsonError(c, fiber.StatusBadRequest, "invalid filter value")
	}

	state := h.core.State(c)
	if body.Value == filters.All || body.Value == "" {
		state.Remove(body.Name)
		metrics.FilterMutationsTotal.WithLabelValues("remove").Inc()
	} else {
		state.Set(body.Name, body.Value)
		metrics.FilterMutationsTotal.WithLabelValues("set").Inc()
	}
	return jsonSuccess(c, state.Active())
}

// RemoveFilter drops one facet.
func (h *Handler) RemoveFilter(c fiber.Ctx) error {
	state := h.core.State(c)
	state.Remove(c.Params("name"))
	metrics.FilterMutationsTotal.WithLabelValues("remove").Inc()
	return jsonSuccess(c, state.Active())
}

// ClearFilters drops every facet of the session.
func (h *Handler) ClearFilters(c fiber.Ctx) error {
	state := h.core.State(c)
	state.Clear()
	metrics.FilterMutationsTotal.WithLabelValues("clear").Inc()
	return jsonSuccess(c, state.Active())
}

// Health reports whether the dataset loads, with row counts.
func (h *Handler) Health(c fiber.Ctx) error {
	raw, _, err := h.loader.LoadAll()
	if err != nil {
		return jsonError(c, fiber.StatusServiceUnavailable, err.Error())
	}
	return jsonSuccess(c, fiber.Map{
		"companies":       len(raw.Companies),
		"decision_makers": len(raw.DecisionMakers),
		"jobs":            len(raw.Jobs),
	})
}

// loadError maps a structural load failure to 503, everything else to 500.
func loadError(c fiber.Ctx, err error) error {
	if errors.Is(err, loader.ErrStructural) {
		return jsonError(c, fiber.StatusServiceUnavailable, err.Error())
	}
	return jsonError(c, fiber.StatusInternalServerError, "internal error")
}
