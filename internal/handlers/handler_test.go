package handlers

import (
	"context"
	"log/slog"
	"os"

	"github.com/Rupavathi1225/topsportss/internal/config"
	"github.com/Rupavathi1225/topsportss/internal/models"
	"github.com/Rupavathi1225/topsportss/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestHandler() (*Handler, *gorm.DB) {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	db.AutoMigrate(&models.ClickEvent{}, &models.PageView{}, &models.AccessPolicy{}, &models.RedirectMapping{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		LandingURL: "/landing",
	}

	geoIP := services.NewGeoIPService(cfg, logger)
	tracking := services.NewTrackingService(db, logger, geoIP)
	policy := services.NewPolicyService(db, logger)
	redirects := services.NewRedirectService(db, nil, logger)
	analytics := services.NewAnalyticsService(db, logger)

	h := NewHandler(cfg, logger, db, nil, tracking, policy, redirects, analytics)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter(nil)
}

func startWorker(h *Handler) context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go h.trackingService.Start(ctx)
	return cancel
}
