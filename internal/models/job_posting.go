package models

import "time"

// JobRow is a single record from the jobs CSV. PostedOn carries the raw date
// string exactly as exported; parsing happens during enrichment.
type JobRow struct {
	Title    string
	Company  string
	Location string
	PostedOn string
	URL      string
}

// JobPosting is an enriched job posting record. The derived date fields are
// only populated when the raw posting date parsed; DaysSincePosted is nil for
// rows without a usable date, never zero.
type JobPosting struct {
	Title           string     `json:"title"`
	Company         string     `json:"company"`
	Location        string     `json:"location"`
	URL             string     `json:"url"`
	PostedOn        string     `json:"posted_on"`
	PostedAt        *time.Time `json:"posted_at,omitempty"`
	PostDate        string     `json:"post_date,omitempty"`
	PostMonth       string     `json:"post_month,omitempty"`
	DaysSincePosted *int       `json:"days_since_posted,omitempty"`
}

// HasPostDate reports whether the posting carries a parsed date.
func (j *JobPosting) HasPostDate() bool {
	return j.PostedAt != nil
}
