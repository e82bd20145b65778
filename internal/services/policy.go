package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Rupavathi1225/topsportss/internal/models"

	"gorm.io/gorm"
)

// PolicyDecision is the outcome of evaluating a country access policy.
// Backlink is only set on denial, and only when the policy configures one.
type PolicyDecision struct {
	Allowed  bool
	Backlink *string
}

type PolicyService struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewPolicyService(db *gorm.DB, logger *slog.Logger) *PolicyService {
	return &PolicyService{
		db:     db,
		logger: logger,
	}
}

// Evaluate checks whether countryCode may open the given web result. A
// missing policy means the result is unrestricted. "unknown" country codes
// get no special treatment and fail membership against any real allow list.
func (s *PolicyService) Evaluate(ctx context.Context, webResultID string, countryCode string) (PolicyDecision, error) {
	var policy models.AccessPolicy
	err := s.db.WithContext(ctx).Where("web_result_id = ?", webResultID).First(&policy).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PolicyDecision{Allowed: true}, nil
	}
	if err != nil {
		return PolicyDecision{}, err
	}

	if policy.IsWorldwide {
		return PolicyDecision{Allowed: true}, nil
	}

	if policy.AllowsCountry(countryCode) {
		return PolicyDecision{Allowed: true}, nil
	}

	decision := PolicyDecision{Allowed: false}
	if policy.BacklinkURL != "" {
		backlink := policy.BacklinkURL
		decision.Backlink = &backlink
	}
	return decision, nil
}
