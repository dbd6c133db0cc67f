// Package charts builds renderer-agnostic chart specifications from
// aggregated counts. The views and the JSON API serialize a Spec as-is; the
// actual drawing happens client-side.
package charts

import "claydash/internal/analytics"

// Kind selects the chart family.
type Kind string

const (
	KindBar     Kind = "bar"
	KindHBar    Kind = "hbar"
	KindPie     Kind = "pie"
	KindLine    Kind = "line"
	KindTreemap Kind = "treemap"
)

// Spec describes one chart: category labels, their values and axis titles.
type Spec struct {
	Kind   Kind     `json:"kind"`
	Title  string   `json:"title"`
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
	XLabel string   `json:"x_label,omitempty"`
	YLabel string   `json:"y_label,omitempty"`
}

func fromCounts(kind Kind, title string, counts []analytics.CountedValue) Spec {
	s := Spec{Kind: kind, Title: title}
	for _, c := range counts {
		s.Labels = append(s.Labels, c.Label)
		s.Values = append(s.Values, c.Count)
	}
	return s
}

// HorizontalBar builds a horizontal bar chart spec.
func HorizontalBar(title, xLabel, yLabel string, counts []analytics.CountedValue) Spec {
	s := fromCounts(KindHBar, title, counts)
	s.XLabel = xLabel
	s.YLabel = yLabel
	return s
}

// VerticalBar builds a vertical bar chart spec.
func VerticalBar(title string, counts []analytics.CountedValue) Spec {
	return fromCounts(KindBar, title, counts)
}

// Pie builds a pie chart spec.
func Pie(title string, counts []analytics.CountedValue) Spec {
	return fromCounts(KindPie, title, counts)
}

// Treemap builds a treemap spec over all categories.
func Treemap(title string, counts []analytics.CountedValue) Spec {
	return fromCounts(KindTreemap, title, counts)
}

// Line builds a line chart spec from a posting timeline.
func Line(title, xLabel, yLabel string, points []analytics.TimelinePoint) Spec {
	s := Spec{Kind: KindLine, Title: title, XLabel: xLabel, YLabel: yLabel}
	for _, p := range points {
		s.Labels = append(s.Labels, p.Date)
		s.Values = append(s.Values, p.Count)
	}
	return s
}
