package filters

// Columns maps facet names to column accessors for one entity. A facet absent
// from the map simply does not constrain that entity.
type Columns[T any] map[string]func(T) string

// Apply keeps the rows matching every active facet present in columns,
// combined with logical AND. The input slice is never mutated; with no
// relevant facet active the input is returned as-is. Apply is idempotent:
// reapplying the same state to its own output changes nothing.
func Apply[T any](rows []T, state *FilterState, columns Columns[T]) []T {
	if state == nil {
		return rows
	}

	type predicate struct {
		column func(T) string
		value  string
	}
	var preds []predicate
	for name, value := range state.Active() {
		if column, ok := columns[name]; ok {
			preds = append(preds, predicate{column, value})
		}
	}
	if len(preds) == 0 {
		return rows
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		keep := true
		for _, p := range preds {
			if p.column(row) != p.value {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, row)
		}
	}
	return out
}
