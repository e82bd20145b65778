package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PageView struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Timestamp time.Time `gorm:"index;default:CURRENT_TIMESTAMP" json:"timestamp"`
	SessionID string    `gorm:"size:64;index" json:"session_id"`
	PageURL   string    `gorm:"size:255;default:'/'" json:"page_url"`
	Referrer  string    `gorm:"size:255;default:'direct'" json:"referrer"`
	Source    string    `gorm:"size:100;default:'direct'" json:"source"`
}

func (PageView) TableName() string {
	return "page_views"
}

func (v *PageView) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.Timestamp.IsZero() {
		v.Timestamp = time.Now()
	}
	return nil
}
