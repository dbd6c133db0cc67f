package handlers

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"claydash/internal/metrics"
	"claydash/internal/models"
)

// Export streams the session's current filtered table as CSV, preserving all
// enriched columns. The export is never truncated by the display row limit.
func (h *Handler) Export(c fiber.Ctx) error {
	entity := c.Params("entity")

	v, err := h.View(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	var filename string
	switch entity {
	case models.EntityCompanies:
		filename = "company_intelligence_data.csv"
		writeCompanies(w, v.Companies)
	case models.EntityDecisionMakers:
		filename = "decision_maker_intelligence_data.csv"
		writeDecisionMakers(w, v.DecisionMakers)
	case models.EntityJobs:
		filename = "market_intelligence_data.csv"
		writeJobs(w, v.Jobs)
	default:
		return fiber.NewError(fiber.StatusNotFound, "unknown entity")
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	metrics.ExportsTotal.WithLabelValues(entity).Inc()

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func writeCompanies(w *csv.Writer, rows []models.Company) {
	w.Write([]string{"Name", "Primary Industry", "Size", "Type", "Location", "Region", "Country", "LinkedIn URL", "Domain", "Has LinkedIn", "Has Domain"})
	for i := range rows {
		r := &rows[i]
		w.Write([]string{
			r.Name, r.Industry, r.Size, r.Type, r.Location, r.Region, r.Country,
			r.LinkedInURL, r.Domain,
			strconv.FormatBool(r.HasLinkedIn), strconv.FormatBool(r.HasDomain),
		})
	}
}

func writeDecisionMakers(w *csv.Writer, rows []models.DecisionMaker) {
	w.Write([]string{"Full Name", "Job Title", "Company", "Location", "Region", "Country", "Seniority", "LinkedIn URL"})
	for i := range rows {
		r := &rows[i]
		w.Write([]string{r.FullName, r.Title, r.Company, r.Location, r.Region, r.Country, r.Seniority, r.LinkedInURL})
	}
}

func writeJobs(w *csv.Writer, rows []models.JobPosting) {
	w.Write([]string{"Job Title", "Company Name", "Location", "Post On", "Post Date", "Post Month", "Days Since Posted", "Job URL"})
	for i := range rows {
		r := &rows[i]
		days := ""
		if r.DaysSincePosted != nil {
			days = strconv.Itoa(*r.DaysSincePosted)
		}
		w.Write([]string{r.Title, r.Company, r.Location, r.PostedOn, r.PostDate, r.PostMonth, days, r.URL})
	}
}
