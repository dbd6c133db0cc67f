package models

// Seniority tiers, ordered from most to least senior. Classification is
// first-match-wins over these values; titles matching no tier fall to
// SeniorityOther.
const (
	SeniorityCLevel  = "C-Level/Principal"
	SeniorityVP      = "VP/Director"
	SeniorityManager = "Manager/Senior"
	SeniorityOther   = "Other"
)

// DecisionMakerRow is a single record from the decision-makers CSV.
// The company name comes from a separate company-table column in the source
// export, hence the field name.
type DecisionMakerRow struct {
	FullName     string
	Title        string
	CompanyTable string
	Location     string
	LinkedInURL  string
}

// DecisionMaker is an enriched decision-maker record.
type DecisionMaker struct {
	FullName    string `json:"full_name"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Region      string `json:"region"`
	Country     string `json:"country"`
	Seniority   string `json:"seniority"`
	LinkedInURL string `json:"linkedin_url"`
}

// IsCLevel reports whether the decision maker sits in the top tier.
func (d *DecisionMaker) IsCLevel() bool {
	return d.Seniority == SeniorityCLevel
}

// IsVPDirector reports whether the decision maker sits in the VP/Director tier.
func (d *DecisionMaker) IsVPDirector() bool {
	return d.Seniority == SeniorityVP
}
