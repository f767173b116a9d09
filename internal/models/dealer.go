package models

import (
	"time"

	"gorm.io/datatypes"
)

// Dealer is a dealership profile, either seeded at import time or created by a
// user through registration. ShowroomImages and BusinessHours are stored
// encoded and are decoded on every read path (see internal/hydrate).
type Dealer struct {
	ID             uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         *uint64        `gorm:"uniqueIndex" json:"user_id,omitempty"`
	Name           string         `gorm:"type:text;not null" json:"name"`
	Location       string         `gorm:"type:text;not null" json:"location"`
	Latitude       *float64       `json:"latitude"`
	Longitude      *float64       `json:"longitude"`
	ContactEmail   string         `gorm:"type:text;not null" json:"contact_email"`
	ContactPhone   string         `gorm:"type:text;not null" json:"contact_phone"`
	Description    string         `gorm:"type:text" json:"description"`
	Verified       bool           `gorm:"not null;default:false;index" json:"verified"`
	Rating         float64        `gorm:"not null;default:0" json:"rating"`
	ReviewsCount   int            `gorm:"not null;default:0" json:"reviews_count"`
	ShowroomImages datatypes.JSON `gorm:"type:jsonb" json:"-"`
	BusinessHours  datatypes.JSON `gorm:"type:jsonb" json:"-"`
	ImageURL       string         `gorm:"type:text" json:"image_url"`
	CreatedAt      time.Time      `gorm:"type:timestamptz;not null" json:"created_at"`
}

func (Dealer) TableName() string {
	return "dealers"
}
