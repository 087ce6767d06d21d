// Package analytics holds the pure row-set computations behind the dashboard:
// allow-set filtering, aggregate metrics and the interview KPI cards.
package analytics

import (
	"fmt"
	"strconv"

	"github.com/talentops/applicant-dashboard/internal/feed"
)

// nullSentinel stands in for missing values during stringification, on both
// the candidate-building and the matching side, so the two always agree.
const nullSentinel = "N/A"

// AllowSet is the set of permitted stringified values for one field.
type AllowSet map[string]struct{}

// NewAllowSet builds an AllowSet from its values.
func NewAllowSet(values ...string) AllowSet {
	set := make(AllowSet, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// FilterState maps a field name to the values allowed for it. An empty
// allow-set means the field is unconstrained, exactly like an absent key;
// deselecting the last chip for a field must revert it to "show all".
type FilterState map[string]AllowSet

// FilterRows returns the rows satisfying every constrained field of the
// filter state. The input slice is returned as-is when there are no rows or
// no filter fields at all.
func FilterRows(rows []feed.Row, filters FilterState) []feed.Row {
	if len(rows) == 0 || len(filters) == 0 {
		return rows
	}
	out := make([]feed.Row, 0, len(rows))
	for _, row := range rows {
		if matchesFilters(row, filters) {
			out = append(out, row)
		}
	}
	return out
}

func matchesFilters(row feed.Row, filters FilterState) bool {
	for field, allowed := range filters {
		// Empty allow-set and absent key are both unconstrained.
		if len(allowed) == 0 {
			continue
		}
		if _, ok := allowed[Stringify(row.Value(field))]; !ok {
			return false
		}
	}
	return true
}

// Stringify coerces a row value to the string form used for filter matching
// and frequency counting. Numbers render without a trailing fraction and nil
// becomes the shared sentinel.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return nullSentinel
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
