package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/Rupavathi1225/topsportss/internal/models"
	"github.com/Rupavathi1225/topsportss/pkg/utils"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	redirectCodeLength = 8
	redirectCacheTTL   = 10 * time.Minute
)

type RedirectService struct {
	db            *gorm.DB
	rdb           *redis.Client
	logger        *slog.Logger
	codeGenerator func(int) string
}

func NewRedirectService(db *gorm.DB, rdb *redis.Client, logger *slog.Logger) *RedirectService {
	return &RedirectService{
		db:            db,
		rdb:           rdb,
		logger:        logger,
		codeGenerator: utils.GenerateRedirectCode,
	}
}

// Resolve returns the mapping for originalURL, creating one on first sight.
// Idempotent: the unique constraint on original_url turns the concurrent
// lookup-then-create race into a re-read of whichever insert won.
func (s *RedirectService) Resolve(ctx context.Context, originalURL string) (*models.RedirectMapping, error) {
	// 1. Exact-match lookup. No normalization of casing, slashes or query order.
	var existing models.RedirectMapping
	err := s.db.WithContext(ctx).Where("original_url = ?", originalURL).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 2. Mint a new mapping, retrying on code collisions.
	for {
		mapping := models.RedirectMapping{
			Code:        s.codeGenerator(redirectCodeLength),
			OriginalURL: originalURL,
			CreatedAt:   time.Now(),
		}

		err := s.db.WithContext(ctx).Create(&mapping).Error
		if err == nil {
			return &mapping, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}

		// A duplicate on original_url means a concurrent request won the
		// insert; return its row. A duplicate code just means we rolled an
		// already-taken code and should retry.
		if readErr := s.db.WithContext(ctx).Where("original_url = ?", originalURL).First(&existing).Error; readErr == nil {
			return &existing, nil
		} else if !errors.Is(readErr, gorm.ErrRecordNotFound) {
			return nil, readErr
		}
	}
}

// Lookup resolves an opaque code back to its mapping, consulting the Redis
// cache first. Cache outages degrade silently to DB lookups.
func (s *RedirectService) Lookup(ctx context.Context, code string) (*models.RedirectMapping, error) {
	var mapping models.RedirectMapping

	if s.rdb != nil {
		val, err := s.rdb.Get(ctx, "lid:"+code).Result()
		if err == nil {
			if err := json.Unmarshal([]byte(val), &mapping); err == nil {
				return &mapping, nil
			}
		}
	}

	if err := s.db.WithContext(ctx).Where("code = ?", code).First(&mapping).Error; err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if data, err := json.Marshal(mapping); err == nil {
			s.rdb.Set(ctx, "lid:"+code, data, redirectCacheTTL)
		}
	}

	return &mapping, nil
}
