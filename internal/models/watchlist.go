package models

import "time"

type WatchlistItem struct {
	UserID    uint64    `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	CarID     uint64    `gorm:"primaryKey;autoIncrement:false" json:"car_id"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null" json:"created_at"`
}

func (WatchlistItem) TableName() string {
	return "watchlist"
}
