package models

import "time"

// Review is attached to a car listing, not to a dealer; dealer reviews are the
// reviews on the cars owned by the dealer's user.
type Review struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	CarID     uint64    `gorm:"not null;index" json:"car_id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
