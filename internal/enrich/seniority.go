package enrich

import (
	"strings"

	"claydash/internal/models"
)

// seniorityTiers is checked in order; the first tier with a matching keyword
// wins. Matching is case-insensitive substring, so "Senior Manager" lands in
// Manager/Senior and "Vice President" lands in C-Level via "president".
var seniorityTiers = []struct {
	level    string
	keywords []string
}{
	{models.SeniorityCLevel, []string{"ceo", "president", "founder", "owner", "principal"}},
	{models.SeniorityVP, []string{"vp", "vice president", "director", "head"}},
	{models.SeniorityManager, []string{"manager", "lead", "senior"}},
}

// Seniority classifies a job title into one of the four tiers. It is total:
// every title, including empty or Unknown, maps to exactly one tier.
func Seniority(title string) string {
	lower := strings.ToLower(title)
	for _, tier := range seniorityTiers {
		for _, kw := range tier.keywords {
			if strings.Contains(lower, kw) {
				return tier.level
			}
		}
	}
	return models.SeniorityOther
}
