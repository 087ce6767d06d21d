package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/talentops/applicant-dashboard/internal/analytics"
	"github.com/talentops/applicant-dashboard/internal/feed"
)

// JobsHandler serves the reshaped application rows and the aggregates
// computed over them.
type JobsHandler struct {
	Feed            *feed.Client
	ScheduledStatus string
	MetricsTopN     int
}

func NewJobsHandler(client *feed.Client, scheduledStatus string, metricsTopN int) *JobsHandler {
	return &JobsHandler{
		Feed:            client,
		ScheduledStatus: scheduledStatus,
		MetricsTopN:     metricsTopN,
	}
}

// ListJobs is GET /jobs?startDate=&endDate=. Both parameters accept
// YYYY-MM-DD or YYYYMMDD.
func (h *JobsHandler) ListJobs(c *gin.Context) {
	rows, err := h.Feed.FetchRows(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		writeFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// JobMetrics is GET /jobs/metrics. Filters arrive as repeated
// filter=Field:v1|v2 parameters with allow-set semantics; "by" overrides the
// breakdown field and "top" the truncation depth.
func (h *JobsHandler) JobMetrics(c *gin.Context) {
	rows, err := h.Feed.FetchRows(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		writeFeedError(c, err)
		return
	}

	filters := parseFilterParams(c.QueryArray("filter"))

	topN := h.MetricsTopN
	if top := c.Query("top"); top != "" {
		parsed, err := strconv.Atoi(top)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "top must be an integer"})
			return
		}
		topN = parsed
	}

	if by := c.Query("by"); by != "" {
		filtered := analytics.FilterRows(rows, filters)
		c.JSON(http.StatusOK, analytics.Metrics{
			Total: len(filtered),
			ByKey: &analytics.KeyBreakdown{
				Key:    by,
				Counts: analytics.ComputeBreakdown(filtered, by, topN),
			},
		})
		return
	}

	c.JSON(http.StatusOK, analytics.ComputeMetrics(rows, filters, topN))
}

// ListInterviews is GET /interviews?year=. It fetches the whole year, keeps
// the rows whose phone status marks a scheduled interview and attaches the
// KPI block computed over the full year's rows.
func (h *JobsHandler) ListInterviews(c *gin.Context) {
	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1000 || parsed > 9999 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a four-digit year"})
			return
		}
		year = parsed
	}

	start := strconv.Itoa(year) + "0101"
	end := strconv.Itoa(year) + "1231"
	rows, err := h.Feed.FetchRows(c.Request.Context(), start, end)
	if err != nil {
		writeFeedError(c, err)
		return
	}

	scheduled := analytics.FilterRows(rows, analytics.FilterState{
		"Phone Status": analytics.NewAllowSet(h.ScheduledStatus),
	})
	kpi := analytics.ComputeInterviewKPI(rows, h.ScheduledStatus, time.Now())

	c.JSON(http.StatusOK, gin.H{"data": scheduled, "kpi": kpi})
}

// parseFilterParams decodes Field:v1|v2 pairs into a filter state. A pair
// without values yields an empty allow-set, which filtering treats as
// unconstrained.
func parseFilterParams(params []string) analytics.FilterState {
	filters := analytics.FilterState{}
	for _, param := range params {
		field, values, found := strings.Cut(param, ":")
		if field == "" {
			continue
		}
		set := analytics.AllowSet{}
		if found && values != "" {
			for _, v := range strings.Split(values, "|") {
				set[v] = struct{}{}
			}
		}
		filters[field] = set
	}
	return filters
}

// writeFeedError maps the feed error taxonomy onto the response contract:
// 400 for bad dates, 502 with the upstream status and body attached, 500 for
// transport faults.
func writeFeedError(c *gin.Context, err error) {
	var validationErr *feed.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		return
	}

	var upstreamErr *feed.UpstreamError
	if errors.As(err, &upstreamErr) {
		slog.Warn("upstream feed error", "status", upstreamErr.Status)
		c.JSON(http.StatusBadGateway, gin.H{
			"error":          "External API error",
			"upstreamStatus": upstreamErr.Status,
			"upstreamBody":   upstreamErr.Body,
		})
		return
	}

	var transportErr *feed.TransportError
	if errors.As(err, &transportErr) {
		slog.Error("feed request failed", "error", transportErr.Err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Request failed",
			"message": transportErr.Err.Error(),
		})
		return
	}

	slog.Error("unexpected feed error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Request failed", "message": err.Error()})
}
