package models

import "time"

// User rows are owned by the authentication service; this model only exists
// for joins (review usernames, inventory ownership) and is never written here.
type User struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"type:text;not null;uniqueIndex" json:"username"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
