package models

// TypePrivate is the company type value used by the private-company metric.
const TypePrivate = "Privately Held"

// CompanyRow is a single record from the companies CSV. An empty string means
// the source cell was missing; no defaulting has happened yet.
type CompanyRow struct {
	Name        string
	Industry    string
	Size        string
	Type        string
	Location    string
	Country     string
	LinkedInURL string
	Domain      string
}

// Company is an enriched company record.
type Company struct {
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Size        string `json:"size"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Region      string `json:"region"`
	Country     string `json:"country"`
	LinkedInURL string `json:"linkedin_url"`
	Domain      string `json:"domain"`
	HasLinkedIn bool   `json:"has_linkedin"`
	HasDomain   bool   `json:"has_domain"`
}

// IsPrivate reports whether the company is privately held.
func (c *Company) IsPrivate() bool {
	return c.Type == TypePrivate
}
