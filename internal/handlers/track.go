package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/Rupavathi1225/topsportss/internal/models"
	"github.com/Rupavathi1225/topsportss/internal/services"

	"github.com/gin-gonic/gin"
)

type TrackClickRequest struct {
	ClickedItemType  string `json:"clickedItemType" binding:"required,oneof=category web_result"`
	ClickedItemID    string `json:"clickedItemId" binding:"required"`
	SessionID        string `json:"sessionId" binding:"required"`
	ScreenResolution string `json:"screenResolution"`
	Referrer         string `json:"referrer"`
	Source           string `json:"source"`
	PageURL          string `json:"pageUrl"`
}

type TrackClickResponse struct {
	Success     bool    `json:"success"`
	Allowed     bool    `json:"allowed"`
	Backlink    *string `json:"backlink"`
	CountryCode string  `json:"countryCode"`
	DeviceType  string  `json:"deviceType"`
}

type TrackPageViewRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	PageURL   string `json:"pageUrl"`
	Referrer  string `json:"referrer"`
	Source    string `json:"source"`
}

// TrackClick ingests one click event and returns the country gating decision.
// The event write is best-effort: a failed insert is logged but the browser
// still gets its decision.
func (h *Handler) TrackClick(c *gin.Context) {
	var req TrackClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 1. Server-derived request context
	ip := clientIP(c)
	userAgent := c.Request.UserAgent()
	if userAgent == "" {
		userAgent = "unknown"
	}
	countryCode := c.GetHeader("CF-IPCountry")
	city := c.GetHeader("CF-IPCity")
	if city == "" {
		city = "unknown"
	}

	deviceType := services.ClassifyDevice(userAgent)
	pageURL := req.PageURL
	if pageURL == "" {
		pageURL = "/"
	}
	referrer := req.Referrer
	if referrer == "" {
		referrer = "direct"
	}

	// 2. Recompute the traffic source; the client-supplied value is a hint,
	// not authoritative.
	source := services.ClassifySource(rawReferrer(req.Referrer), pageQuery(pageURL))

	// 3. Persist the click fact. Losing it must never block the navigation.
	event := models.ClickEvent{
		SessionID:        req.SessionID,
		ClickedItemType:  req.ClickedItemType,
		ClickedItemID:    req.ClickedItemID,
		PageURL:          pageURL,
		Referrer:         referrer,
		Source:           source,
		DeviceType:       deviceType,
		ScreenResolution: req.ScreenResolution,
		IPAddress:        ip,
		UserAgent:        userAgent,
		CountryCode:      countryCode,
		City:             city,
	}
	if err := h.trackingService.RecordClick(c.Request.Context(), &event); err != nil {
		h.logger.Error("Failed to record click", "session_id", req.SessionID, "error", err)
	}

	resp := TrackClickResponse{
		Success:     true,
		Allowed:     true,
		CountryCode: event.CountryCode,
		DeviceType:  deviceType,
	}

	// 4. Country gating applies to web results only; category clicks are
	// always allowed.
	if req.ClickedItemType == models.ItemTypeWebResult {
		decision, err := h.policyService.Evaluate(c.Request.Context(), req.ClickedItemID, event.CountryCode)
		if err != nil {
			h.logger.Error("Policy evaluation failed", "web_result_id", req.ClickedItemID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "policy evaluation failed"})
			return
		}
		resp.Allowed = decision.Allowed
		resp.Backlink = decision.Backlink
	}

	c.JSON(http.StatusOK, resp)
}

// TrackPageView queues one page-view fact. Always accepted; persistence is
// handled by the background worker.
func (h *Handler) TrackPageView(c *gin.Context) {
	var req TrackPageViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pageURL := req.PageURL
	if pageURL == "" {
		pageURL = "/"
	}
	referrer := req.Referrer
	if referrer == "" {
		referrer = "direct"
	}

	h.trackingService.RecordPageViewAsync(models.PageView{
		SessionID: req.SessionID,
		PageURL:   pageURL,
		Referrer:  referrer,
		Source:    services.ClassifySource(rawReferrer(req.Referrer), pageQuery(pageURL)),
	})

	c.JSON(http.StatusAccepted, gin.H{"success": true})
}

// clientIP prefers the edge-injected headers over the socket address; the
// forwarded-for list keeps only its first entry.
func clientIP(c *gin.Context) string {
	if ip := c.GetHeader("CF-Connecting-IP"); ip != "" {
		return ip
	}
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	return "unknown"
}

// rawReferrer undoes the client-side "direct" placeholder so classification
// sees an empty referrer as empty.
func rawReferrer(referrer string) string {
	if referrer == "direct" {
		return ""
	}
	return referrer
}

func pageQuery(pageURL string) url.Values {
	u, err := url.Parse(pageURL)
	if err != nil {
		return url.Values{}
	}
	return u.Query()
}
