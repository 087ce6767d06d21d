package analytics

import (
	"sort"

	"github.com/talentops/applicant-dashboard/internal/feed"
)

// BreakdownEntry is one value of a top-N frequency breakdown.
type BreakdownEntry struct {
	Value   string  `json:"value"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// KeyBreakdown is a breakdown together with the field it was computed over.
type KeyBreakdown struct {
	Key    string           `json:"key"`
	Counts []BreakdownEntry `json:"counts"`
}

// Metrics summarizes a row set: the total count plus an optional breakdown
// over the most business-relevant field.
type Metrics struct {
	Total int           `json:"total"`
	ByKey *KeyBreakdown `json:"byKey,omitempty"`
}

// Fields tried first when picking a breakdown key, most relevant first.
var preferredBreakdownFields = []string{
	"Job Status", "Phone Status", "Source", "City", "Dealer", "Level",
}

// ComputeTotals returns the row count.
func ComputeTotals(rows []feed.Row) int {
	return len(rows)
}

// ComputeBreakdown builds a frequency breakdown of rows over one field,
// sorted by descending count and truncated to topN entries. Ties keep the
// order in which values were first encountered during the count pass; the
// sort is stable, so that order is deterministic for a given row order.
// topN <= 0 means unlimited. Percentages are of len(rows) and are 0, never
// NaN, for an empty row set.
func ComputeBreakdown(rows []feed.Row, field string, topN int) []BreakdownEntry {
	counts := make(map[string]int, len(rows))
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		v := Stringify(row.Value(field))
		if _, seen := counts[v]; !seen {
			values = append(values, v)
		}
		counts[v]++
	}

	entries := make([]BreakdownEntry, 0, len(values))
	for _, v := range values {
		entries = append(entries, BreakdownEntry{Value: v, Count: counts[v]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}

	for i := range entries {
		entries[i].Percent = percentOf(entries[i].Count, len(rows))
	}
	return entries
}

// PickBreakdownField selects the field a default breakdown is computed over:
// the first preferred field, falling back to the first field whose value in
// the sample row is a string. Reports false when no field qualifies.
func PickBreakdownField(sample feed.Row) (string, bool) {
	cols := feed.Columns()
	available := make(map[string]bool, len(cols))
	for _, k := range cols {
		available[k] = true
	}

	candidate := ""
	for _, k := range preferredBreakdownFields {
		if available[k] {
			candidate = k
			break
		}
	}
	if _, ok := sample.Value(candidate).(string); candidate == "" || !ok {
		candidate = ""
		for _, k := range cols {
			if _, ok := sample.Value(k).(string); ok {
				candidate = k
				break
			}
		}
	}
	return candidate, candidate != ""
}

// ComputeMetrics filters the row set and summarizes the result. The
// breakdown field is picked from the first filtered row, or the first raw
// row when the filter leaves nothing.
func ComputeMetrics(rows []feed.Row, filters FilterState, topN int) Metrics {
	filtered := FilterRows(rows, filters)
	m := Metrics{Total: len(filtered)}

	var sample *feed.Row
	if len(filtered) > 0 {
		sample = &filtered[0]
	} else if len(rows) > 0 {
		sample = &rows[0]
	}
	if sample == nil {
		return m
	}

	if key, ok := PickBreakdownField(*sample); ok {
		m.ByKey = &KeyBreakdown{Key: key, Counts: ComputeBreakdown(filtered, key, topN)}
	}
	return m
}

func percentOf(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(count) / float64(total)
}
