package api

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"claydash/internal/config"
	"claydash/internal/filters"
	"claydash/internal/handlers"
	"claydash/internal/loader"
)

const (
	companiesCSV = `Name,Primary Industry,Size,Type,Location,Country,LinkedIn URL,Domain
Acme Software,Software,11-50,Privately Held,"Austin, TX",United States,https://linkedin.com/company/acme,acme.com
Globex Manufacturing,Manufacturing,201-500,Public Company,"Toronto, ON",Canada,,globex.com
`
	decisionMakersCSV = `Full Name,Job Title,Company Table Data,Location,LinkedIn URL
Jane Roe,VP of Sales,Acme Software,"Austin, TX",
John Doe,Plant Manager,Globex Manufacturing,"Toronto, ON",
`
	jobsCSV = `Job Title,Company Name,Location,Post On,Job URL
Software Engineer,Acme Software,"Austin, TX",2026-08-18,https://example.com/jobs/1
`
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dir := t.TempDir()
	for name, content := range map[string]string{
		"companies.csv":       companiesCSV,
		"decision-makers.csv": decisionMakersCSV,
		"jobs.csv":            jobsCSV,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture %s: %v", name, err)
		}
	}
	l := loader.New(
		filepath.Join(dir, "companies.csv"),
		filepath.Join(dir, "decision-makers.csv"),
		filepath.Join(dir, "jobs.csv"),
	)

	cfg := &config.Config{TableRowLimit: 500}
	core := handlers.New(cfg, l, filters.NewRegistry())
	h := NewHandler(core, l)

	app := fiber.New()
	sessionMiddleware, _ := session.NewWithStore(session.Config{})
	app.Use(sessionMiddleware)

	app.Get("/api/health", h.Health)
	app.Get("/api/charts/:page", h.Charts)
	app.Get("/api/tables/:entity", h.Table)
	app.Get("/api/filters", h.Filters)
	app.Post("/api/filters", h.SetFilter)
	app.Delete("/api/filters/:name", h.RemoveFilter)
	app.Delete("/api/filters", h.ClearFilters)
	return app
}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string, jar *[]*http.Cookie) (*http.Response, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, target, nil)
	}
	for _, c := range *jar {
		req.AddCookie(c)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	if cookies := resp.Cookies(); len(cookies) > 0 {
		*jar = cookies
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode envelope: %v", method, target, err)
	}
	return resp, env
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	var jar []*http.Cookie

	resp, env := doJSON(t, app, "GET", "/api/health", "", &jar)
	if resp.StatusCode != 200 || env.Status != "ok" {
		t.Fatalf("expected ok, got %d %q", resp.StatusCode, env.Status)
	}

	var counts map[string]int
	if err := json.Unmarshal(env.Data, &counts); err != nil {
		t.Fatalf("decode counts: %v", err)
	}
	if counts["companies"] != 2 || counts["decision_makers"] != 2 || counts["jobs"] != 1 {
		t.Errorf("unexpected row counts: %v", counts)
	}
}

func TestSetFilterNarrowsTable(t *testing.T) {
	app := newTestApp(t)
	var jar []*http.Cookie

	resp, env := doJSON(t, app, "POST", "/api/filters", `{"name":"Industry","value":"Software"}`, &jar)
	if resp.StatusCode != 200 {
		t.Fatalf("set filter: expected 200, got %d (%s)", resp.StatusCode, env.Error)
	}

	var table struct {
		Rows []json.RawMessage `json:"rows"`
	}
	_, env = doJSON(t, app, "GET", "/api/tables/companies", "", &jar)
	if err := json.Unmarshal(env.Data, &table); err != nil {
		t.Fatalf("decode table: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Errorf("filtered companies = %d rows, want 1", len(table.Rows))
	}

	// Cross-filter follows into the decision maker table.
	_, env = doJSON(t, app, "GET", "/api/tables/decision-makers", "", &jar)
	if err := json.Unmarshal(env.Data, &table); err != nil {
		t.Fatalf("decode table: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Errorf("cross-filtered decision makers = %d rows, want 1", len(table.Rows))
	}

	// Removing the facet restores the full table.
	doJSON(t, app, "DELETE", "/api/filters/Industry", "", &jar)
	_, env = doJSON(t, app, "GET", "/api/tables/companies", "", &jar)
	if err := json.Unmarshal(env.Data, &table); err != nil {
		t.Fatalf("decode table: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Errorf("after remove: companies = %d rows, want 2", len(table.Rows))
	}
}

func TestChartsUnknownPage(t *testing.T) {
	app := newTestApp(t)
	var jar []*http.Cookie

	resp, env := doJSON(t, app, "GET", "/api/charts/nonsense", "", &jar)
	if resp.StatusCode != 404 || env.Status != "error" {
		t.Errorf("expected 404 error, got %d %q", resp.StatusCode, env.Status)
	}
}

func TestTableUnknownEntity(t *testing.T) {
	app := newTestApp(t)
	var jar []*http.Cookie

	resp, _ := doJSON(t, app, "GET", "/api/tables/contacts", "", &jar)
	if resp.StatusCode != 404 {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestOverviewCharts(t *testing.T) {
	app := newTestApp(t)
	var jar []*http.Cookie

	resp, env := doJSON(t, app, "GET", "/api/charts/overview", "", &jar)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d (%s)", resp.StatusCode, env.Error)
	}

	var specs map[string]struct {
		Kind   string   `json:"kind"`
		Labels []string `json:"labels"`
	}
	if err := json.Unmarshal(env.Data, &specs); err != nil {
		t.Fatalf("decode specs: %v", err)
	}
	if len(specs) == 0 {
		t.Fatal("overview returned no chart specs")
	}
}
