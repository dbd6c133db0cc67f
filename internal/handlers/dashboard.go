package handlers

import (
	"encoding/json"
	"html/template"
	"sort"

	"github.com/gofiber/fiber/v3"

	"claydash/internal/analytics"
	"claydash/internal/charts"
	"claydash/internal/filters"
	"claydash/internal/models"
)

// Facet is one filter selector in a page's filter bar.
type Facet struct {
	Name     string
	Selected string
	Options  []string
}

// Overview renders the executive overview: cross-entity KPIs, market
// concentration, leadership split, geography and the posting timeline.
func (h *Handler) Overview(c fiber.Ctx) error {
	v, err := h.View(c)
	if err != nil {
		return err
	}

	specs, _ := ChartSpecs(PageOverview, v)
	return c.Render("overview", h.branding(fiber.Map{
		"Title":         "Executive Overview",
		"KPIs":          analytics.ExecutiveKPIs(v.Companies, v.DecisionMakers, v.Jobs),
		"ChartsJSON":    chartsJSON(specs),
		"ActiveFilters": v.State.Active(),
	}))
}

// Companies renders company intelligence: metrics, industry and size charts,
// facet bar and the data table.
func (h *Handler) Companies(c fiber.Ctx) error {
	v, err := h.View(c)
	if err != nil {
		return err
	}

	specs, _ := ChartSpecs(PageCompanies, v)
	return c.Render("companies", h.branding(fiber.Map{
		"Title":         "Company Intelligence",
		"Summary":       analytics.Companies(v.Companies),
		"ChartsJSON":    chartsJSON(specs),
		"Facets":        h.companyFacets(v),
		"ActiveFilters": v.State.Active(),
		"Rows":          limitRows(v.Companies, h.cfg.TableRowLimit),
		"TotalRows":     len(v.Companies),
		"ExportPath":    "/export/" + models.EntityCompanies,
	}))
}

// DecisionMakers renders leadership analysis: seniority split, geographic
// distribution and the per-company treemap.
func (h *Handler) DecisionMakers(c fiber.Ctx) error {
	v, err := h.View(c)
	if err != nil {
		return err
	}

	specs, _ := ChartSpecs(PageDecisionMakers, v)
	return c.Render("decision_makers", h.branding(fiber.Map{
		"Title":         "Decision Maker Analysis",
		"Summary":       analytics.DecisionMakers(v.DecisionMakers),
		"ChartsJSON":    chartsJSON(specs),
		"Facets":        h.decisionMakerFacets(v),
		"ActiveFilters": v.State.Active(),
		"Rows":          limitRows(v.DecisionMakers, h.cfg.TableRowLimit),
		"TotalRows":     len(v.DecisionMakers),
		"ExportPath":    "/export/" + models.EntityDecisionMakers,
	}))
}

// Jobs renders market intelligence: hiring activity and the posting timeline.
func (h *Handler) Jobs(c fiber.Ctx) error {
	v, err := h.View(c)
	if err != nil {
		return err
	}

	specs, _ := ChartSpecs(PageJobs, v)
	return c.Render("jobs", h.branding(fiber.Map{
		"Title":         "Market Intelligence",
		"Summary":       analytics.Jobs(v.Jobs),
		"ChartsJSON":    chartsJSON(specs),
		"Facets":        h.jobFacets(v),
		"ActiveFilters": v.State.Active(),
		"Rows":          limitRows(v.Jobs, h.cfg.TableRowLimit),
		"TotalRows":     len(v.Jobs),
		"ExportPath":    "/export/" + models.EntityJobs,
	}))
}

func (h *Handler) companyFacets(v *View) []Facet {
	return []Facet{
		h.facet(v.State, filters.FacetIndustry, facetOptions(v.Enriched.Companies, func(c models.Company) string { return c.Industry })),
		h.facet(v.State, filters.FacetSize, facetOptions(v.Enriched.Companies, func(c models.Company) string { return c.Size })),
		h.facet(v.State, filters.FacetType, facetOptions(v.Enriched.Companies, func(c models.Company) string { return c.Type })),
		h.facet(v.State, filters.FacetCountry, facetOptions(v.Enriched.Companies, func(c models.Company) string { return c.Country })),
		h.facet(v.State, filters.FacetRegion, facetOptions(v.Enriched.Companies, func(c models.Company) string { return c.Region })),
	}
}

func (h *Handler) decisionMakerFacets(v *View) []Facet {
	return []Facet{
		h.facet(v.State, filters.FacetSeniority, facetOptions(v.Enriched.DecisionMakers, func(d models.DecisionMaker) string { return d.Seniority })),
		h.facet(v.State, filters.FacetCompany, facetOptions(v.Enriched.DecisionMakers, func(d models.DecisionMaker) string { return d.Company })),
		h.facet(v.State, filters.FacetCountry, facetOptions(v.Enriched.DecisionMakers, func(d models.DecisionMaker) string { return d.Country })),
	}
}

func (h *Handler) jobFacets(v *View) []Facet {
	return []Facet{
		h.facet(v.State, filters.FacetCompany, facetOptions(v.Enriched.Jobs, func(j models.JobPosting) string { return j.Company })),
		h.facet(v.State, filters.FacetJobTitle, facetOptions(v.Enriched.Jobs, func(j models.JobPosting) string { return j.Title })),
	}
}

func (h *Handler) facet(state *filters.FilterState, name string, options []string) Facet {
	selected := filters.All
	if v, ok := state.Get(name); ok {
		selected = v
	}
	return Facet{Name: name, Selected: selected, Options: options}
}

// facetOptions builds the option list for a facet selector: "All" followed by
// the distinct values of the unfiltered table, sorted.
func facetOptions[T any](rows []T, key func(T) string) []string {
	seen := make(map[string]struct{})
	for _, row := range rows {
		seen[key(row)] = struct{}{}
	}
	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return append([]string{filters.All}, labels...)
}

// chartsJSON serializes chart specs for the inline script tag in the views.
func chartsJSON(specs map[string]charts.Spec) template.JS {
	data, err := json.Marshal(specs)
	if err != nil {
		return "{}"
	}
	return template.JS(data)
}
