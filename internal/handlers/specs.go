package handlers

import (
	"claydash/internal/analytics"
	"claydash/internal/charts"
	"claydash/internal/models"
)

// Page identifiers for chart-spec lookups, shared by the page handlers and
// the JSON API.
const (
	PageOverview       = "overview"
	PageCompanies      = models.EntityCompanies
	PageDecisionMakers = models.EntityDecisionMakers
	PageJobs           = models.EntityJobs
)

// ChartSpecs builds the chart set of a dashboard page from a session view.
// The second return is false for an unknown page.
func ChartSpecs(page string, v *View) (map[string]charts.Spec, bool) {
	switch page {
	case PageOverview:
		specs := map[string]charts.Spec{
			"market": charts.HorizontalBar("Market Concentration by Industry", "Number of Companies", "Industry",
				analytics.TopN(analytics.ValueCounts(v.Companies, func(c models.Company) string { return c.Industry }), 6)),
			"seniority": charts.Pie("Leadership Distribution by Seniority",
				analytics.ValueCounts(v.DecisionMakers, func(d models.DecisionMaker) string { return d.Seniority })),
			"geography": charts.VerticalBar("Companies by Geographic Market",
				analytics.TopN(analytics.ValueCounts(v.Companies, func(c models.Company) string { return c.Country }), 8)),
		}
		addTimeline(specs, v)
		return specs, true

	case PageCompanies:
		return map[string]charts.Spec{
			"industry": charts.HorizontalBar("Industry Market Share", "Number of Companies", "Industry",
				analytics.TopN(analytics.ValueCounts(v.Companies, func(c models.Company) string { return c.Industry }), 8)),
			"size": charts.Pie("Company Size Distribution",
				analytics.ValueCounts(v.Companies, func(c models.Company) string { return c.Size })),
		}, true

	case PageDecisionMakers:
		return map[string]charts.Spec{
			"seniority": charts.Pie("Leadership Hierarchy Distribution",
				analytics.ValueCounts(v.DecisionMakers, func(d models.DecisionMaker) string { return d.Seniority })),
			"region": charts.VerticalBar("Decision Makers by Geographic Location",
				analytics.TopN(analytics.ValueCounts(v.DecisionMakers, func(d models.DecisionMaker) string { return d.Region }), 10)),
			"companies": charts.Treemap("Decision Makers Across All Companies",
				analytics.ValueCounts(v.DecisionMakers, func(d models.DecisionMaker) string { return d.Company })),
		}, true

	case PageJobs:
		specs := map[string]charts.Spec{
			"hiring": charts.VerticalBar("Company Hiring Activity",
				analytics.TopN(analytics.ValueCounts(v.Jobs, func(j models.JobPosting) string { return j.Company }), 8)),
		}
		addTimeline(specs, v)
		return specs, true
	}
	return nil, false
}

func addTimeline(specs map[string]charts.Spec, v *View) {
	if timeline := analytics.PostingTimeline(v.Jobs); len(timeline) > 0 {
		specs["timeline"] = charts.Line("Job Market Activity Over Time", "Date", "Job Postings", timeline)
	}
}
