package services

import (
	"net/url"
	"testing"

	"github.com/Rupavathi1225/topsportss/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDevice(t *testing.T) {
	t.Run("iPhone is mobile", func(t *testing.T) {
		ua := "Mozilla/5.0 (iPhone; CPU iPhone OS 14_0 like Mac OS X) AppleWebKit/605.1.15"
		assert.Equal(t, models.DeviceMobile, ClassifyDevice(ua))
	})

	t.Run("Windows desktop", func(t *testing.T) {
		ua := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
		assert.Equal(t, models.DeviceDesktop, ClassifyDevice(ua))
	})

	t.Run("Android is mobile", func(t *testing.T) {
		ua := "Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36 Mobile Safari/537.36"
		assert.Equal(t, models.DeviceMobile, ClassifyDevice(ua))
	})

	t.Run("Case insensitive", func(t *testing.T) {
		assert.Equal(t, models.DeviceMobile, ClassifyDevice("SOMETHING IPAD SOMETHING"))
		assert.Equal(t, models.DeviceMobile, ClassifyDevice("Opera Mini/7.6"))
		assert.Equal(t, models.DeviceMobile, ClassifyDevice("BlackBerry9700"))
	})

	t.Run("Empty agent is desktop", func(t *testing.T) {
		assert.Equal(t, models.DeviceDesktop, ClassifyDevice(""))
	})

	t.Run("Deterministic", func(t *testing.T) {
		ua := "Mozilla/5.0 (iPhone; CPU iPhone OS 14_0)"
		first := ClassifyDevice(ua)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, ClassifyDevice(ua))
		}
	})
}

func TestClassifySource(t *testing.T) {
	noQuery := url.Values{}

	t.Run("Empty referrer is direct", func(t *testing.T) {
		assert.Equal(t, "direct", ClassifySource("", noQuery))
	})

	t.Run("Known platforms", func(t *testing.T) {
		assert.Equal(t, "facebook", ClassifySource("https://www.facebook.com/", noQuery))
		assert.Equal(t, "facebook", ClassifySource("https://m.fb.com/story", noQuery))
		assert.Equal(t, "instagram", ClassifySource("https://www.instagram.com/p/abc", noQuery))
		assert.Equal(t, "linkedin", ClassifySource("https://www.linkedin.com/feed", noQuery))
		assert.Equal(t, "twitter", ClassifySource("https://twitter.com/home", noQuery))
		assert.Equal(t, "twitter", ClassifySource("https://x.com/home", noQuery))
		assert.Equal(t, "youtube", ClassifySource("https://www.youtube.com/watch?v=1", noQuery))
		assert.Equal(t, "google", ClassifySource("https://www.google.com/search?q=x", noQuery))
		assert.Equal(t, "bing", ClassifySource("https://www.bing.com/search", noQuery))
		assert.Equal(t, "yahoo", ClassifySource("https://search.yahoo.com/", noQuery))
	})

	t.Run("Case insensitive referrer", func(t *testing.T) {
		assert.Equal(t, "facebook", ClassifySource("HTTPS://WWW.FACEBOOK.COM/", noQuery))
	})

	t.Run("UTM source wins over empty referrer", func(t *testing.T) {
		query := url.Values{"utm_source": []string{"newsletter"}}
		assert.Equal(t, "newsletter", ClassifySource("", query))
	})

	t.Run("Platform wins over UTM", func(t *testing.T) {
		query := url.Values{"utm_source": []string{"newsletter"}}
		assert.Equal(t, "google", ClassifySource("https://google.com/", query))
	})

	t.Run("Unknown referrer is referral", func(t *testing.T) {
		assert.Equal(t, "referral", ClassifySource("https://unknown-blog.example", noQuery))
	})

	t.Run("Unknown referrer with UTM uses UTM", func(t *testing.T) {
		query := url.Values{"utm_source": []string{"partner42"}}
		assert.Equal(t, "partner42", ClassifySource("https://unknown-blog.example", query))
	})
}
