package analytics

import (
	"sort"

	"claydash/internal/models"
)

// TimelinePoint is the posting count for one day.
type TimelinePoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// PostingTimeline buckets dated postings per day, sorted by date ascending.
// Undated postings are excluded rather than lumped into a sentinel bucket.
func PostingTimeline(jobs []models.JobPosting) []TimelinePoint {
	counts := make(map[string]int)
	for i := range jobs {
		if jobs[i].HasPostDate() {
			counts[jobs[i].PostDate]++
		}
	}

	out := make([]TimelinePoint, 0, len(counts))
	for date, count := range counts {
		out = append(out, TimelinePoint{Date: date, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
