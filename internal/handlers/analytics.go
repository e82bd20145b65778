package handlers

import (
	"net/http"
	"strconv"

	"github.com/Rupavathi1225/topsportss/internal/services"

	"github.com/gin-gonic/gin"
)

// SessionAnalytics returns per-session rollups, optionally filtered by
// country code and traffic source.
func (h *Handler) SessionAnalytics(c *gin.Context) {
	filter := services.SessionFilter{
		CountryCode: c.Query("country"),
		Source:      c.Query("source"),
	}

	sessions, err := h.analyticsService.SessionRollups(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to aggregate sessions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate sessions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *Handler) AnalyticsSummary(c *gin.Context) {
	summary, err := h.analyticsService.Summary(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to compute summary", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) RecentClicks(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	clicks, err := h.analyticsService.RecentClicks(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to load recent clicks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recent clicks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clicks": clicks})
}
