package handlers

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/google/uuid"

	"claydash/internal/config"
	"claydash/internal/enrich"
	"claydash/internal/filters"
	"claydash/internal/loader"
	"claydash/internal/metrics"
	"claydash/internal/models"
)

// sessionStateKey holds the filter-state ID inside the session cookie.
const sessionStateKey = "filter_state_id"

// Handler bundles the dependencies shared by all dashboard handlers.
type Handler struct {
	cfg      *config.Config
	loader   *loader.Loader
	registry *filters.Registry
	now      func() time.Time
}

// New creates the shared handler core.
func New(cfg *config.Config, l *loader.Loader, registry *filters.Registry) *Handler {
	return &Handler{cfg: cfg, loader: l, registry: registry, now: time.Now}
}

// View is the session's filtered window onto the three enriched tables.
// Enriched holds the unfiltered tables for facet option lists; the top-level
// slices have the session's facets (and cross-filter) applied.
type View struct {
	State          *filters.FilterState
	Companies      []models.Company
	DecisionMakers []models.DecisionMaker
	Jobs           []models.JobPosting

	Enriched struct {
		Companies      []models.Company
		DecisionMakers []models.DecisionMaker
		Jobs           []models.JobPosting
	}
}

// State returns the FilterState of the current session, allocating a state ID
// on first use. Requests without a session (no middleware) share no state and
// get a throwaway one.
func (h *Handler) State(c fiber.Ctx) *filters.FilterState {
	sess := session.FromContext(c)
	if sess == nil {
		return filters.NewState()
	}
	if v, _ := sess.Get(sessionStateKey).(string); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			return h.registry.Get(id)
		}
	}
	id := uuid.New()
	sess.Set(sessionStateKey, id.String())
	return h.registry.Get(id)
}

// View loads the cached dataset, enriches it and applies the session's
// filters. A structural load failure is returned as-is; the error handler
// renders it without a partial dashboard.
func (h *Handler) View(c fiber.Ctx) (*View, error) {
	raw, fromDisk, err := h.loader.LoadAll()
	if err != nil {
		metrics.LoadsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	if fromDisk {
		metrics.LoadsTotal.WithLabelValues("ok").Inc()
	}

	state := h.State(c)
	v := &View{State: state}
	v.Enriched.Companies = enrich.Companies(raw.Companies)
	v.Enriched.DecisionMakers = enrich.DecisionMakers(raw.DecisionMakers)
	v.Enriched.Jobs = enrich.Jobs(raw.Jobs, h.now())

	v.Companies = filters.Apply(v.Enriched.Companies, state, filters.CompanyColumns)
	v.DecisionMakers = filters.DecisionMakersFor(state, v.Enriched.Companies, v.Enriched.DecisionMakers)
	v.Jobs = filters.Apply(v.Enriched.Jobs, state, filters.JobColumns)
	return v, nil
}

// branding merges the site branding into template data.
func (h *Handler) branding(data fiber.Map) fiber.Map {
	data["SiteTitle"] = h.cfg.SiteTitle
	data["SiteTagline"] = h.cfg.SiteTagline
	data["SiteFooter"] = h.cfg.SiteFooter
	data["AuthEnabled"] = h.cfg.AuthEnabled()
	return data
}

// limitRows caps a table for display. Export always writes the full table.
func limitRows[T any](rows []T, limit int) []T {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
