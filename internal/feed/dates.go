package feed

import (
	"regexp"
	"strings"
)

var (
	dashedDate  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	compactDate = regexp.MustCompile(`^\d{8}$`)
)

// NormalizeRequestDate accepts a date in either YYYY-MM-DD or YYYYMMDD form
// and returns the compact 8-digit form used by the upstream feed. Any other
// shape, including the empty string, is rejected.
func NormalizeRequestDate(value string) (string, bool) {
	switch {
	case dashedDate.MatchString(value):
		return strings.ReplaceAll(value, "-", ""), true
	case compactDate.MatchString(value):
		return value, true
	default:
		return "", false
	}
}

// ToDisplayDate formats a compact 8-digit date as YYYY-MM-DD. Anything that
// is not exactly eight digits, dashed dates included, yields nil. Downstream
// consumers treat nil as "unknown", never as an error.
func ToDisplayDate(value *string) *string {
	if value == nil {
		return nil
	}
	v := *value
	if !compactDate.MatchString(v) {
		return nil
	}
	out := v[:4] + "-" + v[4:6] + "-" + v[6:8]
	return &out
}

// ToDisplayDateTime reduces an upstream "YYYY-MM-DD HH:mm:ss" timestamp to
// "YYYY-MM-DD HH:mm". When no time component is present the date part is
// returned alone; nil or empty input yields nil.
func ToDisplayDateTime(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	parts := strings.SplitN(*value, " ", 2)
	date := parts[0]
	if len(parts) == 2 && parts[1] != "" {
		hhmm := parts[1]
		if len(hhmm) > 5 {
			hhmm = hhmm[:5]
		}
		out := date + " " + hhmm
		return &out
	}
	return &date
}
