package analytics

import (
	"time"

	"github.com/talentops/applicant-dashboard/internal/feed"
)

// InterviewEntry is one scheduled interview shown on the "today" card.
type InterviewEntry struct {
	Name string `json:"name"`
	City string `json:"city"`
}

// InterviewKPI carries the interview dashboard cards: the scheduled share of
// the row set plus time-windowed counts anchored at a reference instant.
type InterviewKPI struct {
	Total            int              `json:"total"`
	Scheduled        int              `json:"scheduled"`
	ScheduledPercent float64          `json:"scheduledPercent"`
	Today            []InterviewEntry `json:"today"`
	ThisWeek         int              `json:"thisWeek"`
	ThisMonth        int              `json:"thisMonth"`
	ThisYear         int              `json:"thisYear"`
}

// ComputeInterviewKPI scans the row set for interviews whose "Phone Status"
// equals scheduledStatus. Scheduled counts every match; the windowed cards
// additionally need a parseable "Phone Date" and compare it against now
// (weeks start on Monday). The percent is scheduled over the whole row set,
// regardless of status, with the zero-denominator case pinned to 0.
func ComputeInterviewKPI(rows []feed.Row, scheduledStatus string, now time.Time) InterviewKPI {
	kpi := InterviewKPI{
		Total: len(rows),
		Today: []InterviewEntry{},
	}

	for _, row := range rows {
		status, _ := row.Value("Phone Status").(string)
		if status != scheduledStatus {
			continue
		}
		kpi.Scheduled++

		dateStr, ok := row.Value("Phone Date").(string)
		if !ok {
			continue
		}
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}

		if sameDay(date, now) {
			kpi.Today = append(kpi.Today, InterviewEntry{
				Name: stringOr(row.Value("Name"), "Unknown"),
				City: stringOr(row.Value("City"), "No City"),
			})
		}
		if sameISOWeek(date, now) {
			kpi.ThisWeek++
		}
		if date.Year() == now.Year() && date.Month() == now.Month() {
			kpi.ThisMonth++
		}
		if date.Year() == now.Year() {
			kpi.ThisYear++
		}
	}

	kpi.ScheduledPercent = percentOf(kpi.Scheduled, kpi.Total)
	return kpi
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func sameISOWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}

func stringOr(value any, fallback string) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fallback
}
