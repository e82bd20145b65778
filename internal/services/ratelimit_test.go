package services

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	t.Run("Same IP gets same limiter", func(t *testing.T) {
		limiter := NewIPRateLimiter(5, 10, logger)

		a := limiter.GetLimiter("1.2.3.4")
		b := limiter.GetLimiter("1.2.3.4")
		assert.Same(t, a, b)
	})

	t.Run("Different IPs get different limiters", func(t *testing.T) {
		limiter := NewIPRateLimiter(5, 10, logger)

		a := limiter.GetLimiter("1.2.3.4")
		b := limiter.GetLimiter("5.6.7.8")
		assert.NotSame(t, a, b)
	})

	t.Run("Burst is enforced", func(t *testing.T) {
		limiter := NewIPRateLimiter(1, 2, logger)
		l := limiter.GetLimiter("9.9.9.9")

		assert.True(t, l.Allow())
		assert.True(t, l.Allow())
		assert.False(t, l.Allow())
	})

	t.Run("Cleanup keeps small maps", func(t *testing.T) {
		limiter := NewIPRateLimiter(5, 10, logger)
		limiter.GetLimiter("1.2.3.4")
		limiter.StartCleanup(10 * time.Millisecond)

		time.Sleep(30 * time.Millisecond)
		assert.NotNil(t, limiter.GetLimiter("1.2.3.4"))
	})
}
