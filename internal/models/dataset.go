package models

// Unknown is the sentinel used wherever a source cell is missing. Enrichment
// guarantees that every string field used for grouping or filtering carries
// either a real value or this sentinel, never an empty string.
const Unknown = "Unknown"

// Entity identifiers used in routes and export file names.
const (
	EntityCompanies      = "companies"
	EntityDecisionMakers = "decision-makers"
	EntityJobs           = "jobs"
)

// Raw bundles the three source tables produced by one atomic load.
// A Raw value either contains all three tables or was never returned.
type Raw struct {
	Companies      []CompanyRow
	DecisionMakers []DecisionMakerRow
	Jobs           []JobRow
}
