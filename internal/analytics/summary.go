package analytics

import "claydash/internal/models"

// CompanySummary is the metric grid of the companies page.
type CompanySummary struct {
	Total            int `json:"total"`
	UniqueIndustries int `json:"unique_industries"`
	UniqueRegions    int `json:"unique_regions"`
	Private          int `json:"private"`
	WithLinkedIn     int `json:"with_linkedin"`
	WithDomain       int `json:"with_domain"`
}

// Companies computes the company metrics.
func Companies(rows []models.Company) CompanySummary {
	s := CompanySummary{
		Total:            len(rows),
		UniqueIndustries: UniqueCount(rows, func(c models.Company) string { return c.Industry }),
		UniqueRegions:    UniqueCount(rows, func(c models.Company) string { return c.Region }),
	}
	for i := range rows {
		if rows[i].IsPrivate() {
			s.Private++
		}
		if rows[i].HasLinkedIn {
			s.WithLinkedIn++
		}
		if rows[i].HasDomain {
			s.WithDomain++
		}
	}
	return s
}

// DecisionMakerSummary is the metric grid of the decision-makers page.
type DecisionMakerSummary struct {
	Total           int `json:"total"`
	UniqueCompanies int `json:"unique_companies"`
	UniqueTitles    int `json:"unique_titles"`
	UniqueLocations int `json:"unique_locations"`
	CLevel          int `json:"c_level"`
	VPDirector      int `json:"vp_director"`
}

// DecisionMakers computes the decision-maker metrics.
func DecisionMakers(rows []models.DecisionMaker) DecisionMakerSummary {
	s := DecisionMakerSummary{
		Total:           len(rows),
		UniqueCompanies: UniqueCount(rows, func(d models.DecisionMaker) string { return d.Company }),
		UniqueTitles:    UniqueCount(rows, func(d models.DecisionMaker) string { return d.Title }),
		UniqueLocations: UniqueCount(rows, func(d models.DecisionMaker) string { return d.Location }),
	}
	for i := range rows {
		if rows[i].IsCLevel() {
			s.CLevel++
		}
		if rows[i].IsVPDirector() {
			s.VPDirector++
		}
	}
	return s
}

// JobSummary is the metric grid of the jobs page. AvgDaysSincePosted is nil
// when no posting carries a usable date.
type JobSummary struct {
	Total              int      `json:"total"`
	HiringCompanies    int      `json:"hiring_companies"`
	UniqueLocations    int      `json:"unique_locations"`
	WithPostDate       int      `json:"with_post_date"`
	AvgDaysSincePosted *float64 `json:"avg_days_since_posted,omitempty"`
}

// Jobs computes the job-posting metrics.
func Jobs(rows []models.JobPosting) JobSummary {
	s := JobSummary{
		Total:           len(rows),
		HiringCompanies: UniqueCount(rows, func(j models.JobPosting) string { return j.Company }),
		UniqueLocations: UniqueCount(rows, func(j models.JobPosting) string { return j.Location }),
	}
	sum := 0
	dated := 0
	for i := range rows {
		if rows[i].HasPostDate() {
			s.WithPostDate++
		}
		if rows[i].DaysSincePosted != nil {
			sum += *rows[i].DaysSincePosted
			dated++
		}
	}
	if dated > 0 {
		avg := float64(sum) / float64(dated)
		s.AvgDaysSincePosted = &avg
	}
	return s
}

// KPIs is the executive overview strip.
type KPIs struct {
	MarketSize          int `json:"market_size"`
	LeadershipPool      int `json:"leadership_pool"`
	ActiveOpportunities int `json:"active_opportunities"`
	CompaniesHiring     int `json:"companies_hiring"`
}

// ExecutiveKPIs computes the cross-entity headline numbers.
func ExecutiveKPIs(companies []models.Company, dms []models.DecisionMaker, jobs []models.JobPosting) KPIs {
	return KPIs{
		MarketSize:          len(companies),
		LeadershipPool:      len(dms),
		ActiveOpportunities: len(jobs),
		CompaniesHiring:     UniqueCount(jobs, func(j models.JobPosting) string { return j.Company }),
	}
}
