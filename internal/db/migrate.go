package db

import (
	"intelliwheels/internal/models"
)

// AutoMigrate creates every table at service startup. The watchlist table in
// particular must exist before the first request; it is never created lazily
// inside a handler.
func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.User{},
		&models.Car{},
		&models.Dealer{},
		&models.Review{},
		&models.WatchlistItem{},
	)
}
