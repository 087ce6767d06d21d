package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentops/applicant-dashboard/internal/feed"
)

// DefaultVisibleColumns is the column set shown before a user has saved any
// preference.
var DefaultVisibleColumns = []string{
	"Name", "Phone", "City", "Source", "Phone Status",
	"F2F Status", "Docs Status", "Job Status", "Level", "Submitted At",
}

// FilterKeys are the fields the dashboard offers chip filters for.
var FilterKeys = []string{
	"City", "Source", "Phone Status", "F2F Status",
	"Docs Status", "Job Status", "Level", "Dealer",
}

// Columns is GET /columns: the column universe plus the defaults, so clients
// do not hardcode the schema.
func Columns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"columns":        feed.Columns(),
		"defaultVisible": DefaultVisibleColumns,
		"filterKeys":     FilterKeys,
	})
}

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
