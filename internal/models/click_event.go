package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ItemTypeCategory  = "category"
	ItemTypeWebResult = "web_result"
)

const (
	DeviceMobile  = "mobile"
	DeviceDesktop = "desktop"
)

type ClickEvent struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	Timestamp        time.Time `gorm:"index;default:CURRENT_TIMESTAMP" json:"timestamp"`
	SessionID        string    `gorm:"size:64;index" json:"session_id"`
	ClickedItemType  string    `gorm:"size:20;not null" json:"clicked_item_type"`
	ClickedItemID    string    `gorm:"size:64;not null" json:"clicked_item_id"`
	PageURL          string    `gorm:"size:255;default:'/'" json:"page_url"`
	Referrer         string    `gorm:"size:255;default:'direct'" json:"referrer"`
	Source           string    `gorm:"size:100;default:'direct'" json:"source"`
	DeviceType       string    `gorm:"size:20" json:"device_type"`
	ScreenResolution string    `gorm:"size:20" json:"screen_resolution"`
	IPAddress        string    `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent        string    `gorm:"size:255" json:"user_agent"`
	Browser          string    `gorm:"size:50" json:"browser"`
	OS               string    `gorm:"size:100" json:"os"`
	CountryCode      string    `gorm:"size:10;default:'unknown'" json:"country_code"`
	City             string    `gorm:"size:100;default:'unknown'" json:"city"`
}

func (ClickEvent) TableName() string {
	return "click_tracking"
}

func (e *ClickEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	return nil
}
