package services

import (
	"log/slog"
	"net"
	"os"
	"sync"

	"github.com/Rupavathi1225/topsportss/internal/config"

	"github.com/oschwald/geoip2-golang"
)

// GeoIPService resolves a country code from an IP address. It is an optional
// fallback for requests that arrive without the edge-injected geo headers;
// the headers stay authoritative when present. Without a configured database
// every lookup returns "".
type GeoIPService struct {
	cfg       config.Config
	logger    *slog.Logger
	geoReader *geoip2.Reader
	geoLock   sync.RWMutex
}

func NewGeoIPService(cfg config.Config, logger *slog.Logger) *GeoIPService {
	return &GeoIPService{
		cfg:    cfg,
		logger: logger,
	}
}

func (s *GeoIPService) Init() {
	if s.cfg.GeoIPDBPath == "" {
		s.logger.Warn("GeoIP: no database path configured, header-less requests stay 'unknown'")
		return
	}

	if _, err := os.Stat(s.cfg.GeoIPDBPath); os.IsNotExist(err) {
		s.logger.Warn("GeoIP: database missing, lookups disabled", "path", s.cfg.GeoIPDBPath)
		return
	}

	s.reloadReader(s.cfg.GeoIPDBPath)
}

func (s *GeoIPService) reloadReader(path string) {
	s.geoLock.Lock()
	defer s.geoLock.Unlock()

	if s.geoReader != nil {
		s.geoReader.Close()
	}

	reader, err := geoip2.Open(path)
	if err != nil {
		s.logger.Error("GeoIP: Failed to open database", "path", path, "error", err)
		return
	}
	s.geoReader = reader

	meta := reader.Metadata()
	s.logger.Info("GeoIP: Loaded database", "epoch", meta.BuildEpoch)
}

// CountryCode returns the ISO country code for ipStr, or "" when the lookup
// cannot be performed.
func (s *GeoIPService) CountryCode(ipStr string) string {
	s.geoLock.RLock()
	reader := s.geoReader
	s.geoLock.RUnlock()

	if reader == nil {
		return ""
	}

	ip := net.ParseIP(ipStr)
	if ip == nil {
		return ""
	}

	record, err := reader.Country(ip)
	if err != nil {
		s.logger.Error("GeoIP: Lookup error", "ip", ipStr, "error", err)
		return ""
	}

	return record.Country.IsoCode
}
