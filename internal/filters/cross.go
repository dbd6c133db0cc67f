package filters

import (
	"strings"

	"claydash/internal/models"
)

// CompanyNames collects the lower-cased name set of a companies table.
func CompanyNames(companies []models.Company) map[string]struct{} {
	names := make(map[string]struct{}, len(companies))
	for _, c := range companies {
		names[strings.ToLower(c.Name)] = struct{}{}
	}
	return names
}

// MatchCompanies keeps decision makers whose company name is a member of the
// set. Matching is case-insensitive but exact: "Beta Inc" does not match
// "Beta".
func MatchCompanies(dms []models.DecisionMaker, names map[string]struct{}) []models.DecisionMaker {
	out := make([]models.DecisionMaker, 0, len(dms))
	for _, d := range dms {
		if _, ok := names[strings.ToLower(d.Company)]; ok {
			out = append(out, d)
		}
	}
	return out
}

// CrossFilterActive reports whether any designated company facet is active.
func CrossFilterActive(state *FilterState) bool {
	if state == nil {
		return false
	}
	for _, facet := range CrossFilterFacets {
		if _, ok := state.Get(facet); ok {
			return true
		}
	}
	return false
}

// DecisionMakersFor applies the session's facets to the decision-makers table
// and, when a cross-filter facet is active, additionally restricts it to the
// companies surviving those facets. The company set is always recomputed from
// the filtered companies table, never the raw one.
func DecisionMakersFor(state *FilterState, companies []models.Company, dms []models.DecisionMaker) []models.DecisionMaker {
	out := Apply(dms, state, DecisionMakerColumns)
	if CrossFilterActive(state) {
		filtered := Apply(companies, state, CompanyColumns)
		out = MatchCompanies(out, CompanyNames(filtered))
	}
	return out
}
