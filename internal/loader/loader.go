// Package loader reads the three CSV exports from disk as one atomic unit and
// memoizes the result until explicitly invalidated.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"claydash/internal/models"
)

// ErrStructural marks a fatal load failure: an unreadable file, malformed CSV,
// or a missing required column. Data-quality problems (empty cells, bad dates)
// are not errors and are handled downstream by enrichment.
var ErrStructural = errors.New("structural load failure")

const cacheKey = "dataset:v1"

// Required column sets per CSV. Column order is irrelevant; extra columns are
// ignored.
var (
	companyColumns       = []string{"Name", "Primary Industry", "Size", "Type", "Location", "Country", "LinkedIn URL", "Domain"}
	decisionMakerColumns = []string{"Full Name", "Job Title", "Company Table Data", "Location", "LinkedIn URL"}
	jobColumns           = []string{"Job Title", "Company Name", "Location", "Post On", "Job URL"}
)

// Loader loads and caches the raw dataset. The first successful LoadAll reads
// from disk; later calls return the cached tables until Invalidate.
type Loader struct {
	mu             sync.Mutex
	companiesPath  string
	decisionMakers string
	jobsPath       string
	cache          *gocache.Cache
}

// New creates a loader over the three CSV paths.
func New(companiesPath, decisionMakersPath, jobsPath string) *Loader {
	return &Loader{
		companiesPath:  companiesPath,
		decisionMakers: decisionMakersPath,
		jobsPath:       jobsPath,
		cache:          gocache.New(gocache.NoExpiration, 0),
	}
}

// LoadAll returns the three raw tables. The bool reports whether this call
// read from disk; a cache hit returns false. It is decided under the loader's
// mutex, so concurrent first requests see exactly one disk load. Loads are
// atomic: if any file fails to read or validate, the whole call fails and
// nothing is cached.
func (l *Loader) LoadAll() (*models.Raw, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.cache.Get(cacheKey); ok {
		return v.(*models.Raw), false, nil
	}

	companies, err := readCompanies(l.companiesPath)
	if err != nil {
		return nil, false, err
	}
	decisionMakers, err := readDecisionMakers(l.decisionMakers)
	if err != nil {
		return nil, false, err
	}
	jobs, err := readJobs(l.jobsPath)
	if err != nil {
		return nil, false, err
	}

	raw := &models.Raw{
		Companies:      companies,
		DecisionMakers: decisionMakers,
		Jobs:           jobs,
	}
	l.cache.Set(cacheKey, raw, gocache.NoExpiration)
	return raw, true, nil
}

// Cached returns the memoized dataset without touching disk.
func (l *Loader) Cached() (*models.Raw, bool) {
	if v, ok := l.cache.Get(cacheKey); ok {
		return v.(*models.Raw), true
	}
	return nil, false
}

// Invalidate clears the cache so the next LoadAll rereads from disk.
func (l *Loader) Invalidate() {
	l.cache.Flush()
}

// table is one parsed CSV with columns resolved by header name.
type table struct {
	path    string
	index   map[string]int
	records [][]string
}

func readTable(path string, required []string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStructural, filepath.Base(path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStructural, filepath.Base(path), err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s: empty file", ErrStructural, filepath.Base(path))
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[name] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %s: missing column %q", ErrStructural, filepath.Base(path), name)
		}
	}

	return &table{path: path, index: index, records: rows[1:]}, nil
}

// cell returns the named column of a record, or "" for short records.
func (t *table) cell(record []string, column string) string {
	i := t.index[column]
	if i >= len(record) {
		return ""
	}
	return record[i]
}

func readCompanies(path string) ([]models.CompanyRow, error) {
	t, err := readTable(path, companyColumns)
	if err != nil {
		return nil, err
	}
	out := make([]models.CompanyRow, 0, len(t.records))
	for _, rec := range t.records {
		out = append(out, models.CompanyRow{
			Name:        t.cell(rec, "Name"),
			Industry:    t.cell(rec, "Primary Industry"),
			Size:        t.cell(rec, "Size"),
			Type:        t.cell(rec, "Type"),
			Location:    t.cell(rec, "Location"),
			Country:     t.cell(rec, "Country"),
			LinkedInURL: t.cell(rec, "LinkedIn URL"),
			Domain:      t.cell(rec, "Domain"),
		})
	}
	return out, nil
}

func readDecisionMakers(path string) ([]models.DecisionMakerRow, error) {
	t, err := readTable(path, decisionMakerColumns)
	if err != nil {
		return nil, err
	}
	out := make([]models.DecisionMakerRow, 0, len(t.records))
	for _, rec := range t.records {
		out = append(out, models.DecisionMakerRow{
			FullName:     t.cell(rec, "Full Name"),
			Title:        t.cell(rec, "Job Title"),
			CompanyTable: t.cell(rec, "Company Table Data"),
			Location:     t.cell(rec, "Location"),
			LinkedInURL:  t.cell(rec, "LinkedIn URL"),
		})
	}
	return out, nil
}

func readJobs(path string) ([]models.JobRow, error) {
	t, err := readTable(path, jobColumns)
	if err != nil {
		return nil, err
	}
	out := make([]models.JobRow, 0, len(t.records))
	for _, rec := range t.records {
		out = append(out, models.JobRow{
			Title:    t.cell(rec, "Job Title"),
			Company:  t.cell(rec, "Company Name"),
			Location: t.cell(rec, "Location"),
			PostedOn: t.cell(rec, "Post On"),
			URL:      t.cell(rec, "Job URL"),
		})
	}
	return out, nil
}
