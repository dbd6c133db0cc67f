package validation

import "regexp"

// FacetNamePattern defines the valid facet name format: words of letters and
// digits separated by single spaces, like "Industry" or "Company Size".
var FacetNamePattern = regexp.MustCompile(`^[A-Za-z0-9]+( [A-Za-z0-9]+)*$`)

// ValidateFacetName checks if a facet name matches the allowed pattern.
// Facet names come from form posts and the JSON API, so garbage here would
// otherwise accumulate in session filter state.
func ValidateFacetName(name string) bool {
	if name == "" || len(name) > 64 {
		return false
	}
	return FacetNamePattern.MatchString(name)
}

// ValidateFacetValue bounds a facet value. Values are matched verbatim
// against dataset cells, so any content is fine; only the length is capped.
func ValidateFacetValue(value string) bool {
	return len(value) <= 256
}
