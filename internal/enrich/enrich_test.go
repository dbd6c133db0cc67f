package enrich

import (
	"testing"
	"time"

	"claydash/internal/models"
)

func TestSeniority(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"CEO", models.SeniorityCLevel},
		{"Founder & Owner", models.SeniorityCLevel},
		{"Principal Architect", models.SeniorityCLevel},
		// "Vice President" matches "president" in the first tier, which is
		// checked before VP/Director.
		{"Vice President of Sales", models.SeniorityCLevel},
		{"VP of Engineering", models.SeniorityVP},
		{"Director of Operations", models.SeniorityVP},
		{"Head of Marketing", models.SeniorityVP},
		{"Senior Manager", models.SeniorityManager},
		{"Project Manager", models.SeniorityManager},
		{"Tech Lead", models.SeniorityManager},
		{"Intern", models.SeniorityOther},
		{"Software Engineer", models.SeniorityOther},
		{"", models.SeniorityOther},
		{models.Unknown, models.SeniorityOther},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Seniority(tt.title); got != tt.expected {
				t.Errorf("Seniority(%q) = %q, want %q", tt.title, got, tt.expected)
			}
		})
	}
}

func TestSeniorityDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := Seniority("Senior Manager"); got != models.SeniorityManager {
			t.Fatalf("Seniority not deterministic: got %q on pass %d", got, i)
		}
	}
}

func TestRegion(t *testing.T) {
	tests := []struct {
		location string
		expected string
	}{
		{"Austin, TX", "TX"},
		{"Toronto, Ontario, Canada", "Canada"},
		{"Austin,TX", "TX"},
		{"Remote", models.Unknown},
		{"", models.Unknown},
		{models.Unknown, models.Unknown},
		{"Somewhere,", models.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			if got := Region(tt.location); got != tt.expected {
				t.Errorf("Region(%q) = %q, want %q", tt.location, got, tt.expected)
			}
		})
	}
}

func TestCountry(t *testing.T) {
	tests := []struct {
		location string
		expected string
	}{
		{"Austin, Texas, United States", "United States"},
		{"Toronto, Canada", "Canada"},
		{"London, United Kingdom", "United Kingdom"},
		{"Mumbai, India", "India"},
		{"Berlin, Germany", "Other"},
		{models.Unknown, models.Unknown},
		{"", models.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			if got := Country(tt.location); got != tt.expected {
				t.Errorf("Country(%q) = %q, want %q", tt.location, got, tt.expected)
			}
		})
	}
}

func TestCompanies_DefaultsAndFlags(t *testing.T) {
	rows := []models.CompanyRow{
		{Name: "Acme", Industry: "Construction", Size: "11-50", Type: models.TypePrivate,
			Location: "Austin, TX", Country: "United States",
			LinkedInURL: "https://linkedin.com/company/acme", Domain: "acme.com"},
		{Name: "Beta", Location: "Remote"},
		{},
	}

	got := Companies(rows)
	if len(got) != 3 {
		t.Fatalf("Companies() returned %d rows, want 3", len(got))
	}

	first := got[0]
	if first.Region != "TX" {
		t.Errorf("Region = %q, want TX", first.Region)
	}
	if !first.HasLinkedIn || !first.HasDomain {
		t.Errorf("presence flags = (%v, %v), want (true, true)", first.HasLinkedIn, first.HasDomain)
	}

	second := got[1]
	if second.Industry != models.Unknown || second.Size != models.Unknown ||
		second.Type != models.Unknown || second.Country != models.Unknown {
		t.Errorf("missing fields not defaulted to Unknown: %+v", second)
	}
	if second.HasLinkedIn || second.HasDomain {
		t.Errorf("presence flags = (%v, %v), want (false, false)", second.HasLinkedIn, second.HasDomain)
	}
	if second.Region != models.Unknown {
		t.Errorf("Region for comma-less location = %q, want Unknown", second.Region)
	}

	third := got[2]
	if third.Name != models.Unknown || third.Location != models.Unknown {
		t.Errorf("empty row not fully defaulted: %+v", third)
	}
}

func TestDecisionMakers_Derivations(t *testing.T) {
	rows := []models.DecisionMakerRow{
		{FullName: "Jane Roe", Title: "CEO", CompanyTable: "Acme", Location: "Austin, TX, United States"},
		{FullName: "Sam Doe", Title: "Senior Manager", Location: "Remote"},
	}

	got := DecisionMakers(rows)

	first := got[0]
	if first.Seniority != models.SeniorityCLevel {
		t.Errorf("Seniority = %q, want %q", first.Seniority, models.SeniorityCLevel)
	}
	if first.Country != "United States" {
		t.Errorf("Country = %q, want United States", first.Country)
	}
	if first.Region != "United States" {
		t.Errorf("Region = %q, want trailing token", first.Region)
	}

	second := got[1]
	if second.Company != models.Unknown {
		t.Errorf("missing company = %q, want Unknown", second.Company)
	}
	if second.Seniority != models.SeniorityManager {
		t.Errorf("Seniority = %q, want %q", second.Seniority, models.SeniorityManager)
	}
	if second.Country != "Other" {
		t.Errorf("Country = %q, want Other", second.Country)
	}
}

func TestJobs_PostingDates(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	rows := []models.JobRow{
		{Title: "Estimator", Company: "Acme", PostedOn: "2025-06-05"},
		{Title: "Engineer", Company: "Beta", PostedOn: "garbage"},
		{Title: "Architect", Company: "Gamma"},
	}

	got := Jobs(rows, now)

	dated := got[0]
	if dated.DaysSincePosted == nil || *dated.DaysSincePosted != 5 {
		t.Fatalf("DaysSincePosted = %v, want 5", dated.DaysSincePosted)
	}
	if dated.PostDate != "2025-06-05" {
		t.Errorf("PostDate = %q, want 2025-06-05", dated.PostDate)
	}
	if dated.PostMonth != "2025-06" {
		t.Errorf("PostMonth = %q, want 2025-06", dated.PostMonth)
	}

	// Unparseable and missing dates stay absent without affecting other rows.
	for _, j := range got[1:] {
		if j.PostedAt != nil || j.DaysSincePosted != nil {
			t.Errorf("%s: derived date fields set for bad date %q", j.Title, j.PostedOn)
		}
		if j.PostDate != "" || j.PostMonth != "" {
			t.Errorf("%s: date buckets set for bad date", j.Title)
		}
	}
}

func TestJobs_StripsTimezoneOffset(t *testing.T) {
	// Posting time carries an offset; age must be computed on naive wall
	// clocks, so exactly five days apart regardless of zones.
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.FixedZone("X", -5*3600))

	got := Jobs([]models.JobRow{{Title: "PM", PostedOn: "2025-06-05T12:00:00+09:00"}}, now)
	if got[0].DaysSincePosted == nil || *got[0].DaysSincePosted != 5 {
		t.Errorf("DaysSincePosted = %v, want 5", got[0].DaysSincePosted)
	}
}
