package services

import (
	"net/url"
	"strings"

	"github.com/Rupavathi1225/topsportss/internal/models"
)

// mobileTokens are matched case-insensitively against the raw user agent.
var mobileTokens = []string{
	"mobile", "android", "iphone", "ipad", "ipod",
	"blackberry", "iemobile", "opera mini",
}

// sourcePlatforms is checked in order; the first hostname fragment found in
// the referrer wins. Order matters and is covered by tests.
var sourcePlatforms = []struct {
	fragments []string
	tag       string
}{
	{[]string{"facebook.com", "fb.com"}, "facebook"},
	{[]string{"instagram.com"}, "instagram"},
	{[]string{"linkedin.com"}, "linkedin"},
	{[]string{"twitter.com", "x.com"}, "twitter"},
	{[]string{"youtube.com"}, "youtube"},
	{[]string{"google.com"}, "google"},
	{[]string{"bing.com"}, "bing"},
	{[]string{"yahoo.com"}, "yahoo"},
}

// ClassifyDevice derives mobile/desktop from a user agent string. Pure and
// total: an empty agent is desktop.
func ClassifyDevice(userAgent string) string {
	ua := strings.ToLower(userAgent)
	for _, token := range mobileTokens {
		if strings.Contains(ua, token) {
			return models.DeviceMobile
		}
	}
	return models.DeviceDesktop
}

// ClassifySource derives a traffic source tag from the referrer and the page
// query parameters. Known platforms win over utm_source; with neither, an
// empty referrer is direct and anything else is a generic referral.
func ClassifySource(referrer string, query url.Values) string {
	ref := strings.ToLower(referrer)

	for _, platform := range sourcePlatforms {
		for _, fragment := range platform.fragments {
			if strings.Contains(ref, fragment) {
				return platform.tag
			}
		}
	}

	if utm := query.Get("utm_source"); utm != "" {
		return utm
	}

	if ref == "" {
		return "direct"
	}

	return "referral"
}
