package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Datasets names the three CSV files inside DataDir. The defaults match the
// standard export layout; datasets.yaml can override any of them.
type Datasets struct {
	Companies      string `yaml:"companies"`
	DecisionMakers string `yaml:"decision_makers"`
	Jobs           string `yaml:"jobs"`
}

// DefaultDatasets returns the standard file names.
func DefaultDatasets() Datasets {
	return Datasets{
		Companies:      "companies.csv",
		DecisionMakers: "decision-makers.csv",
		Jobs:           "jobs.csv",
	}
}

// LoadDatasets loads dataset file names from the YAML file named by the
// config, falling back to the defaults when the file doesn't exist.
func LoadDatasets(path string) (Datasets, error) {
	ds := DefaultDatasets()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return ds, nil
		}
		return ds, err
	}

	if err := yaml.Unmarshal(data, &ds); err != nil {
		return ds, err
	}

	// Partial overrides keep the remaining defaults
	defaults := DefaultDatasets()
	if ds.Companies == "" {
		ds.Companies = defaults.Companies
	}
	if ds.DecisionMakers == "" {
		ds.DecisionMakers = defaults.DecisionMakers
	}
	if ds.Jobs == "" {
		ds.Jobs = defaults.Jobs
	}

	return ds, nil
}

// Paths resolves the three dataset files against the data directory.
func (d Datasets) Paths(dataDir string) (companies, decisionMakers, jobs string) {
	return filepath.Join(dataDir, d.Companies),
		filepath.Join(dataDir, d.DecisionMakers),
		filepath.Join(dataDir, d.Jobs)
}
