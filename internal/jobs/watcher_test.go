package jobs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"claydash/internal/loader"
)

const minimalCompanies = `Name,Primary Industry,Size,Type,Location,Country,LinkedIn URL,Domain
Acme,Software,11-50,Privately Held,"Austin, TX",United States,,
`

func TestWatcherInvalidatesOnChange(t *testing.T) {
	dir := t.TempDir()
	companies := filepath.Join(dir, "companies.csv")
	decisionMakers := filepath.Join(dir, "decision-makers.csv")
	jobs := filepath.Join(dir, "jobs.csv")

	writeFile(t, companies, minimalCompanies)
	writeFile(t, decisionMakers, "Full Name,Job Title,Company Table Data,Location,LinkedIn URL\n")
	writeFile(t, jobs, "Job Title,Company Name,Location,Post On,Job URL\n")

	l := loader.New(companies, decisionMakers, jobs)
	if _, _, err := l.LoadAll(); err != nil {
		t.Fatalf("initial load failed: %v", err)
	}
	if _, ok := l.Cached(); !ok {
		t.Fatal("dataset not cached after load")
	}

	w := NewDatasetWatcher(l, time.Minute, companies, decisionMakers, jobs)

	// Baseline pass: nothing changed yet, cache stays warm.
	w.check(false)
	w.check(true)
	if _, ok := l.Cached(); !ok {
		t.Fatal("cache dropped without any file change")
	}

	// Rewrite one file with a mtime in the future so the change is visible
	// regardless of filesystem timestamp granularity.
	writeFile(t, companies, minimalCompanies+`Globex,Manufacturing,201-500,Public Company,"Toronto, ON",Canada,,
`)
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(companies, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	w.check(true)
	if _, ok := l.Cached(); ok {
		t.Fatal("cache not invalidated after file change")
	}

	// The next load picks up the new row.
	raw, _, err := l.LoadAll()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(raw.Companies) != 2 {
		t.Errorf("reloaded companies = %d, want 2", len(raw.Companies))
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
