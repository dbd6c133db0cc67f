// Package enrich turns raw CSV rows into the derived tables the dashboard
// renders. Enrichment never fails on data quality: every missing or
// unparseable value degrades to a documented default and flows through.
package enrich

import (
	"strings"
	"time"

	"claydash/internal/models"
)

// postedOnLayouts are tried in order when parsing the raw posting date.
// Values matching none of them are treated as absent, not as errors.
var postedOnLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// Companies enriches the raw company table. Name, Industry, Size, Type and
// Country default to Unknown; Region is derived from Location; the presence
// flags are true iff the source value was non-missing.
func Companies(rows []models.CompanyRow) []models.Company {
	out := make([]models.Company, 0, len(rows))
	for _, r := range rows {
		location := orUnknown(r.Location)
		out = append(out, models.Company{
			Name:        orUnknown(r.Name),
			Industry:    orUnknown(r.Industry),
			Size:        orUnknown(r.Size),
			Type:        orUnknown(r.Type),
			Location:    location,
			Region:      Region(location),
			Country:     orUnknown(r.Country),
			LinkedInURL: strings.TrimSpace(r.LinkedInURL),
			Domain:      strings.TrimSpace(r.Domain),
			HasLinkedIn: strings.TrimSpace(r.LinkedInURL) != "",
			HasDomain:   strings.TrimSpace(r.Domain) != "",
		})
	}
	return out
}

// DecisionMakers enriches the raw decision-maker table, deriving seniority
// from the job title and region/country from the location string.
func DecisionMakers(rows []models.DecisionMakerRow) []models.DecisionMaker {
	out := make([]models.DecisionMaker, 0, len(rows))
	for _, r := range rows {
		title := orUnknown(r.Title)
		location := orUnknown(r.Location)
		out = append(out, models.DecisionMaker{
			FullName:    orUnknown(r.FullName),
			Title:       title,
			Company:     orUnknown(r.CompanyTable),
			Location:    location,
			Region:      Region(location),
			Country:     Country(location),
			Seniority:   Seniority(title),
			LinkedInURL: strings.TrimSpace(r.LinkedInURL),
		})
	}
	return out
}

// Jobs enriches the raw job table. The posting date is parsed leniently; rows
// whose date is missing or unparseable keep nil derived fields. Posting age is
// computed per row against now with timezone offsets stripped, so a single bad
// date never blanks the column for the rest of the batch.
func Jobs(rows []models.JobRow, now time.Time) []models.JobPosting {
	ref := stripZone(now)
	out := make([]models.JobPosting, 0, len(rows))
	for _, r := range rows {
		job := models.JobPosting{
			Title:    orUnknown(r.Title),
			Company:  orUnknown(r.Company),
			Location: orUnknown(r.Location),
			URL:      strings.TrimSpace(r.URL),
			PostedOn: strings.TrimSpace(r.PostedOn),
		}
		if t, ok := parsePostedOn(job.PostedOn); ok {
			job.PostedAt = &t
			job.PostDate = t.Format("2006-01-02")
			job.PostMonth = t.Format("2006-01")
			days := int(ref.Sub(stripZone(t)).Hours() / 24)
			job.DaysSincePosted = &days
		}
		out = append(out, job)
	}
	return out
}

func parsePostedOn(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range postedOnLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// stripZone re-reads a wall clock as UTC, mirroring a naive timestamp.
func stripZone(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

func orUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Unknown
	}
	return s
}
