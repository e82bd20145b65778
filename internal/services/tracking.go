package services

import (
	"context"
	"log/slog"

	"github.com/Rupavathi1225/topsportss/internal/models"

	"github.com/mssola/user_agent"
	"gorm.io/gorm"
)

// TrackingService persists click and page-view facts. Clicks are written
// synchronously because the ingest response must be able to report whether
// exactly one event was stored; page views go through a buffered channel
// worker and are best-effort.
type TrackingService struct {
	db           *gorm.DB
	logger       *slog.Logger
	viewChannel  chan models.PageView
	geoIPService *GeoIPService
}

func NewTrackingService(db *gorm.DB, logger *slog.Logger, geoIPService *GeoIPService) *TrackingService {
	return &TrackingService{
		db:           db,
		logger:       logger,
		viewChannel:  make(chan models.PageView, 1000),
		geoIPService: geoIPService,
	}
}

func (s *TrackingService) Start(ctx context.Context) {
	s.logger.Info("Page view worker starting")
	for {
		select {
		case view := <-s.viewChannel:
			if err := s.db.Create(&view).Error; err != nil {
				s.logger.Error("Failed to record page view", "error", err)
			}
		case <-ctx.Done():
			s.logger.Info("Page view worker stopping")
			return
		}
	}
}

// RecordClick enriches and stores one click event. Callers treat failures as
// non-fatal: the gating decision never depends on this write.
func (s *TrackingService) RecordClick(ctx context.Context, event *models.ClickEvent) error {
	s.enrichClickEvent(event)
	return s.db.WithContext(ctx).Create(event).Error
}

func (s *TrackingService) RecordPageViewAsync(view models.PageView) {
	select {
	case s.viewChannel <- view:
		// Sent
	default:
		s.logger.Warn("Page view channel full, dropping event")
	}
}

func (s *TrackingService) enrichClickEvent(event *models.ClickEvent) {
	// 1. Parse User Agent for browser/OS breakdowns
	ua := user_agent.New(event.UserAgent)
	browserName, browserVer := ua.Browser()
	event.Browser = browserName + " " + browserVer
	event.OS = ua.OS()

	// 2. GeoIP fallback, only when the edge did not supply a country
	if event.CountryCode == "" || event.CountryCode == "unknown" {
		if code := s.geoIPService.CountryCode(event.IPAddress); code != "" {
			event.CountryCode = code
		}
	}
	if event.CountryCode == "" {
		event.CountryCode = "unknown"
	}
}
