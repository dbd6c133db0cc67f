package enrich

import (
	"strings"

	"claydash/internal/models"
)

// countries is the fixed set of markets broken out in the geography charts.
// Anything else rolls up into "Other".
var countries = []string{
	"United States",
	"Canada",
	"United Kingdom",
	"India",
}

// Region extracts the trailing comma-separated token of a location string,
// trimmed of whitespace: "Austin, TX" yields "TX". Locations without a comma
// ("Remote") have no region and yield Unknown.
func Region(location string) string {
	if location == "" || location == models.Unknown {
		return models.Unknown
	}
	i := strings.LastIndex(location, ",")
	if i < 0 {
		return models.Unknown
	}
	region := strings.TrimSpace(location[i+1:])
	if region == "" {
		return models.Unknown
	}
	return region
}

// Country buckets a location into one of the tracked markets by substring
// match, "Other" when none matches, and Unknown when the location itself is
// missing.
func Country(location string) string {
	if location == "" || location == models.Unknown {
		return models.Unknown
	}
	for _, c := range countries {
		if strings.Contains(location, c) {
			return c
		}
	}
	return "Other"
}
