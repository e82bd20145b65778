package handlers

import (
	"log/slog"

	"github.com/Rupavathi1225/topsportss/internal/config"
	"github.com/Rupavathi1225/topsportss/internal/services"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Handler struct {
	cfg              config.Config
	logger           *slog.Logger
	db               *gorm.DB
	rdb              *redis.Client
	trackingService  *services.TrackingService
	policyService    *services.PolicyService
	redirectService  *services.RedirectService
	analyticsService *services.AnalyticsService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	rdb *redis.Client,
	trackingService *services.TrackingService,
	policyService *services.PolicyService,
	redirectService *services.RedirectService,
	analyticsService *services.AnalyticsService,
) *Handler {
	return &Handler{
		cfg:              cfg,
		logger:           logger,
		db:               db,
		rdb:              rdb,
		trackingService:  trackingService,
		policyService:    policyService,
		redirectService:  redirectService,
		analyticsService: analyticsService,
	}
}
