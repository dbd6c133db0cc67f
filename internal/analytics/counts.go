// Package analytics computes the aggregations behind the dashboard's charts
// and metric grids: category counts, per-entity summaries and the posting
// timeline.
package analytics

import "sort"

// CountedValue is one category label with its row count.
type CountedValue struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ValueCounts groups rows by key and returns the counts sorted by count
// descending, ties broken by label ascending.
func ValueCounts[T any](rows []T, key func(T) string) []CountedValue {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[key(row)]++
	}

	out := make([]CountedValue, 0, len(counts))
	for label, count := range counts {
		out = append(out, CountedValue{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// TopN returns at most n leading counts.
func TopN(counts []CountedValue, n int) []CountedValue {
	if len(counts) <= n {
		return counts
	}
	return counts[:n]
}

// UniqueCount returns the number of distinct key values across rows.
func UniqueCount[T any](rows []T, key func(T) string) int {
	seen := make(map[string]struct{})
	for _, row := range rows {
		seen[key(row)] = struct{}{}
	}
	return len(seen)
}
