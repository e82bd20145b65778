package handlers

import (
	"net/http"

	"github.com/Rupavathi1225/topsportss/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())

	// Top-level catch: internal errors surface as one generic JSON 500,
	// never a partial response.
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		h.logger.Error("Panic in handler", "path", c.Request.URL.Path, "error", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}))

	// The gateway is called from arbitrary landing page origins, so CORS is
	// wide open, preflight included.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"},
	}))

	if rateLimiter != nil {
		r.Use(h.RateLimitMiddleware(rateLimiter))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Intake
	r.POST("/api/track-click", h.TrackClick)
	r.POST("/api/track-view", h.TrackPageView)

	// Redirect masking
	r.POST("/api/redirects", h.CreateRedirect)
	r.GET("/api/redirects/:code/qr", h.RedirectQR)

	// Reporting
	admin := r.Group("/api/admin")
	{
		admin.GET("/analytics/sessions", h.SessionAnalytics)
		admin.GET("/analytics/summary", h.AnalyticsSummary)
		admin.GET("/analytics/clicks", h.RecentClicks)
	}

	// Catch-all masked-link path (/lid=<code>)
	r.GET("/:code", h.FollowRedirect)

	return r
}
