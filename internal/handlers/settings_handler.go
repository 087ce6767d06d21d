package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentops/applicant-dashboard/internal/auth"
	"github.com/talentops/applicant-dashboard/internal/dtos"
	"github.com/talentops/applicant-dashboard/internal/services"
)

// SettingsHandler serves per-user dashboard preferences. Every route is
// owner-only: the authenticated identity must match the userId in the path.
type SettingsHandler struct {
	Settings *services.SettingsService
}

func NewSettingsHandler(settings *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{Settings: settings}
}

// GetSettings is GET /users/:userId/settings.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID := c.Param("userId")
	if auth.UserID(c) != userID {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	columns, err := h.Settings.VisibleColumns(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"settings": gin.H{"visibleColumns": columns},
	})
}

// PutSettings is PUT /users/:userId/settings. Upserts the record keyed by
// userId.
func (h *SettingsHandler) PutSettings(c *gin.Context) {
	userID := c.Param("userId")
	if auth.UserID(c) != userID {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dtos.SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}

	if err := h.Settings.SaveVisibleColumns(userID, req.VisibleColumns); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
