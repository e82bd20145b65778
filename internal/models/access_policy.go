package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessPolicy gates a web result by requester country. Managed by the admin
// side; the gateway only ever reads it.
type AccessPolicy struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	WebResultID      string    `gorm:"size:64;uniqueIndex;not null" json:"web_result_id"`
	IsWorldwide      bool      `gorm:"default:false" json:"is_worldwide"`
	AllowedCountries string    `gorm:"type:text" json:"allowed_countries"` // Comma separated ISO codes
	BacklinkURL      string    `gorm:"type:text" json:"backlink_url"`
	CreatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (AccessPolicy) TableName() string {
	return "web_result_countries"
}

func (p *AccessPolicy) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// AllowsCountry reports whether countryCode is on the allow list. Worldwide
// policies are handled by the caller; this is a plain membership test.
func (p *AccessPolicy) AllowsCountry(countryCode string) bool {
	for _, c := range strings.Split(p.AllowedCountries, ",") {
		c = strings.TrimSpace(c)
		if c != "" && c == countryCode {
			return true
		}
	}
	return false
}
