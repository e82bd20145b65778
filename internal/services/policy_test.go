package services

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/Rupavathi1225/topsportss/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPolicyService_Evaluate(t *testing.T) {
	db := setupTestDB()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	service := NewPolicyService(db, logger)
	ctx := context.Background()

	t.Run("Missing policy is unrestricted", func(t *testing.T) {
		decision, err := service.Evaluate(ctx, "no-policy-result", "US")
		assert.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Nil(t, decision.Backlink)
	})

	t.Run("Worldwide allows any country", func(t *testing.T) {
		db.Create(&models.AccessPolicy{WebResultID: "wr-worldwide", IsWorldwide: true})

		for _, country := range []string{"US", "DE", "unknown", ""} {
			decision, err := service.Evaluate(ctx, "wr-worldwide", country)
			assert.NoError(t, err)
			assert.True(t, decision.Allowed, country)
		}
	})

	t.Run("Allow list membership", func(t *testing.T) {
		db.Create(&models.AccessPolicy{
			WebResultID:      "wr-restricted",
			AllowedCountries: "US,CA",
			BacklinkURL:      "https://alt.example",
		})

		decision, err := service.Evaluate(ctx, "wr-restricted", "US")
		assert.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Nil(t, decision.Backlink)

		decision, err = service.Evaluate(ctx, "wr-restricted", "DE")
		assert.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.NotNil(t, decision.Backlink)
		assert.Equal(t, "https://alt.example", *decision.Backlink)
	})

	t.Run("Unknown country fails membership", func(t *testing.T) {
		decision, err := service.Evaluate(ctx, "wr-restricted", "unknown")
		assert.NoError(t, err)
		assert.False(t, decision.Allowed)
	})

	t.Run("Denied without backlink configured", func(t *testing.T) {
		db.Create(&models.AccessPolicy{
			WebResultID:      "wr-no-backlink",
			AllowedCountries: "GB",
		})

		decision, err := service.Evaluate(ctx, "wr-no-backlink", "FR")
		assert.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Nil(t, decision.Backlink)
	})

	t.Run("DB Error", func(t *testing.T) {
		dbErr := setupTestDB()
		dbErr.Migrator().DropTable(&models.AccessPolicy{})
		serviceErr := NewPolicyService(dbErr, logger)

		_, err := serviceErr.Evaluate(ctx, "wr-any", "US")
		assert.Error(t, err)
	})
}
