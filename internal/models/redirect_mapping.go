package models

import (
	"time"
)

// RedirectMapping hides a real destination URL behind an opaque code so the
// browser never sees the affiliate link directly. At most one mapping exists
// per original URL, enforced by the unique index.
type RedirectMapping struct {
	Code        string    `gorm:"primaryKey;size:20" json:"code"`
	OriginalURL string    `gorm:"uniqueIndex;not null;type:text" json:"original_url"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (RedirectMapping) TableName() string {
	return "link_redirects"
}

// MaskedPath is the public path a browser opens instead of the original URL.
func (m *RedirectMapping) MaskedPath() string {
	return "/lid=" + m.Code
}
