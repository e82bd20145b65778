package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/Rupavathi1225/topsportss/internal/models"

	"gorm.io/gorm"
)

// SessionFilter restricts which click events take part in an aggregation.
// Empty fields match everything. Filtering happens before folding, so it
// changes uniqueness counts as well.
type SessionFilter struct {
	CountryCode string
	Source      string
}

func (f SessionFilter) matches(event models.ClickEvent) bool {
	if f.CountryCode != "" && event.CountryCode != f.CountryCode {
		return false
	}
	if f.Source != "" && event.Source != f.Source {
		return false
	}
	return true
}

// SessionAnalytics is a per-session rollup derived from click and page-view
// facts. It is recomputed on demand and never persisted.
type SessionAnalytics struct {
	SessionID             string    `json:"session_id"`
	IPAddress             string    `json:"ip_address"`
	CountryCode           string    `json:"country_code"`
	Source                string    `json:"source"`
	DeviceType            string    `json:"device_type"`
	PageViews             int       `json:"page_views"`
	TotalClicks           int       `json:"total_clicks"`
	CategoryClicks        int       `json:"category_clicks"`
	WebResultClicks       int       `json:"web_result_clicks"`
	UniqueCategoryClicks  int       `json:"unique_category_clicks"`
	UniqueWebResultClicks int       `json:"unique_web_result_clicks"`
	LastActive            time.Time `json:"last_active"`
}

// Summary mirrors the admin dashboard's headline counters.
type Summary struct {
	TotalClicks     int64 `json:"total_clicks"`
	MobileClicks    int64 `json:"mobile_clicks"`
	DesktopClicks   int64 `json:"desktop_clicks"`
	UniqueCountries int64 `json:"unique_countries"`
	CategoryClicks  int64 `json:"category_clicks"`
	WebResultClicks int64 `json:"web_result_clicks"`
}

// AggregateSessions folds click and page-view facts into one rollup per
// session seen in the click set. Order-independent over its inputs. Sessions
// with page views but no clicks are deliberately absent: iteration seeds only
// from click events.
func AggregateSessions(clicks []models.ClickEvent, views []models.PageView, filter SessionFilter) []SessionAnalytics {
	accumulators := make(map[string]*SessionAnalytics)
	uniqueCategories := make(map[string]map[string]struct{})
	uniqueWebResults := make(map[string]map[string]struct{})

	for _, event := range clicks {
		if !filter.matches(event) {
			continue
		}

		acc, seen := accumulators[event.SessionID]
		if !seen {
			acc = &SessionAnalytics{
				SessionID:   event.SessionID,
				IPAddress:   maskIP(event.IPAddress),
				CountryCode: event.CountryCode,
				Source:      event.Source,
				DeviceType:  event.DeviceType,
			}
			accumulators[event.SessionID] = acc
			uniqueCategories[event.SessionID] = make(map[string]struct{})
			uniqueWebResults[event.SessionID] = make(map[string]struct{})
		}

		acc.TotalClicks++
		switch event.ClickedItemType {
		case models.ItemTypeCategory:
			acc.CategoryClicks++
			uniqueCategories[event.SessionID][event.ClickedItemID] = struct{}{}
		case models.ItemTypeWebResult:
			acc.WebResultClicks++
			uniqueWebResults[event.SessionID][event.ClickedItemID] = struct{}{}
		}

		if event.Timestamp.After(acc.LastActive) {
			acc.LastActive = event.Timestamp
		}
	}

	for _, view := range views {
		if acc, seen := accumulators[view.SessionID]; seen {
			acc.PageViews++
		}
	}

	sessions := make([]SessionAnalytics, 0, len(accumulators))
	for sessionID, acc := range accumulators {
		acc.UniqueCategoryClicks = len(uniqueCategories[sessionID])
		acc.UniqueWebResultClicks = len(uniqueWebResults[sessionID])
		sessions = append(sessions, *acc)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].LastActive.After(sessions[j].LastActive)
	})

	return sessions
}

type AnalyticsService struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewAnalyticsService(db *gorm.DB, logger *slog.Logger) *AnalyticsService {
	return &AnalyticsService{
		db:     db,
		logger: logger,
	}
}

// SessionRollups loads a point-in-time snapshot of both fact tables and folds
// it. Freshness is whatever the store's snapshot isolation gives us; the
// result is informational, never a system of record.
func (s *AnalyticsService) SessionRollups(ctx context.Context, filter SessionFilter) ([]SessionAnalytics, error) {
	var clicks []models.ClickEvent
	if err := s.db.WithContext(ctx).Find(&clicks).Error; err != nil {
		return nil, err
	}

	var views []models.PageView
	if err := s.db.WithContext(ctx).Find(&views).Error; err != nil {
		return nil, err
	}

	return AggregateSessions(clicks, views, filter), nil
}

func (s *AnalyticsService) Summary(ctx context.Context) (*Summary, error) {
	var summary Summary
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.ClickEvent{}).Count(&summary.TotalClicks).Error; err != nil {
		return nil, err
	}
	db.Model(&models.ClickEvent{}).Where("device_type = ?", models.DeviceMobile).Count(&summary.MobileClicks)
	db.Model(&models.ClickEvent{}).Where("device_type = ?", models.DeviceDesktop).Count(&summary.DesktopClicks)
	db.Model(&models.ClickEvent{}).Distinct("country_code").Count(&summary.UniqueCountries)
	db.Model(&models.ClickEvent{}).Where("clicked_item_type = ?", models.ItemTypeCategory).Count(&summary.CategoryClicks)
	db.Model(&models.ClickEvent{}).Where("clicked_item_type = ?", models.ItemTypeWebResult).Count(&summary.WebResultClicks)

	return &summary, nil
}

func (s *AnalyticsService) RecentClicks(ctx context.Context, limit int) ([]models.ClickEvent, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var clicks []models.ClickEvent
	err := s.db.WithContext(ctx).Order("timestamp desc").Limit(limit).Find(&clicks).Error
	if err != nil {
		return nil, err
	}
	return clicks, nil
}

// maskIP zeroes the host octet so rollups never expose a full address.
func maskIP(ip string) string {
	for i := len(ip) - 1; i >= 0; i-- {
		if ip[i] == '.' {
			return ip[:i] + ".0"
		}
		if ip[i] == ':' {
			return "IPv6 (Masked)"
		}
	}
	return ip
}
