package filters

import "claydash/internal/models"

// Facet names. Facets are shared across entities; Apply only honors the ones
// present in the entity's column map.
const (
	FacetIndustry  = "Industry"
	FacetSize      = "Company Size"
	FacetType      = "Company Type"
	FacetCountry   = "Country"
	FacetRegion    = "Region"
	FacetSeniority = "Seniority"
	FacetCompany   = "Company"
	FacetJobTitle  = "Job Title"
)

// CrossFilterFacets are the company facets that, when active, also narrow the
// decision-makers table through the name-based cross-filter.
var CrossFilterFacets = []string{FacetIndustry, FacetSize}

// CompanyColumns maps facets onto enriched company columns.
var CompanyColumns = Columns[models.Company]{
	FacetIndustry: func(c models.Company) string { return c.Industry },
	FacetSize:     func(c models.Company) string { return c.Size },
	FacetType:     func(c models.Company) string { return c.Type },
	FacetCountry:  func(c models.Company) string { return c.Country },
	FacetRegion:   func(c models.Company) string { return c.Region },
}

// DecisionMakerColumns maps facets onto enriched decision-maker columns.
var DecisionMakerColumns = Columns[models.DecisionMaker]{
	FacetSeniority: func(d models.DecisionMaker) string { return d.Seniority },
	FacetCompany:   func(d models.DecisionMaker) string { return d.Company },
	FacetCountry:   func(d models.DecisionMaker) string { return d.Country },
	FacetRegion:    func(d models.DecisionMaker) string { return d.Region },
	FacetJobTitle:  func(d models.DecisionMaker) string { return d.Title },
}

// JobColumns maps facets onto enriched job-posting columns.
var JobColumns = Columns[models.JobPosting]{
	FacetCompany:  func(j models.JobPosting) string { return j.Company },
	FacetJobTitle: func(j models.JobPosting) string { return j.Title },
}
