package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Rupavathi1225/topsportss/internal/services"

	"github.com/gin-gonic/gin"
)

type CreateRedirectRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// CreateRedirect returns the opaque mapping for a destination URL, minting
// one on first sight. A 500 here means the caller should fall open to the
// unmasked URL.
func (h *Handler) CreateRedirect(c *gin.Context) {
	var req CreateRedirectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mapping, err := h.redirectService.Resolve(c.Request.Context(), req.URL)
	if err != nil {
		h.logger.Error("Failed to resolve redirect", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create redirect"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":       mapping.Code,
		"maskedPath": mapping.MaskedPath(),
	})
}

// FollowRedirect serves the public masked-link path /lid=<code>. Unknown
// codes land on the default landing destination instead of an error page.
func (h *Handler) FollowRedirect(c *gin.Context) {
	param := c.Param("code")
	if !strings.HasPrefix(param, "lid=") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	code := strings.TrimPrefix(param, "lid=")

	mapping, err := h.redirectService.Lookup(c.Request.Context(), code)
	if err != nil {
		c.Redirect(http.StatusFound, h.cfg.LandingURL)
		return
	}

	c.Redirect(http.StatusFound, mapping.OriginalURL)
}

// RedirectQR renders a QR code for an existing masked link.
func (h *Handler) RedirectQR(c *gin.Context) {
	code := c.Param("code")

	mapping, err := h.redirectService.Lookup(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "redirect not found"})
		return
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", "256"))
	if err != nil || size < 64 || size > 1024 {
		size = 256
	}

	_, pngBytes, err := services.GenerateQRCode(services.QROptions{
		Content: "https://" + c.Request.Host + mapping.MaskedPath(),
		Size:    size,
		FgColor: c.Query("fg"),
		BgColor: c.Query("bg"),
	})
	if err != nil {
		h.logger.Error("Failed to generate QR code", "code", code, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", pngBytes)
}
