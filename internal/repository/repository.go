package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"intelliwheels/internal/models"
)

// Store is the persistence surface threaded explicitly through every service;
// nothing holds an ambient database handle.
type Store interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error

	// Bulk load. The Tx variants run inside the importer's transaction so
	// that count, wipe and insert of one invocation commit together.
	CountCarsTx(ctx context.Context, tx *gorm.DB) (int64, error)
	DeleteAllCarsTx(ctx context.Context, tx *gorm.DB) error
	InsertCarsTx(ctx context.Context, tx *gorm.DB, items []models.Car) error
	CountDealersTx(ctx context.Context, tx *gorm.DB) (int64, error)
	DeleteAllDealersTx(ctx context.Context, tx *gorm.DB) error
	InsertDealersTx(ctx context.Context, tx *gorm.DB, items []models.Dealer) error

	// Catalog reads.
	ListCars(ctx context.Context, params ListCarsParams) ([]models.Car, error)
	CountCars(ctx context.Context, params ListCarsParams) (int64, error)
	GetCarByID(ctx context.Context, id uint64) (*models.Car, error)
	ListCarsByOwner(ctx context.Context, ownerID uint64) ([]models.Car, error)

	// Dealers.
	ListVerifiedDealers(ctx context.Context) ([]models.Dealer, error)
	GetDealerByID(ctx context.Context, id uint64) (*models.Dealer, error)
	GetDealerByUserID(ctx context.Context, userID uint64) (*models.Dealer, error)
	CreateDealer(ctx context.Context, item *models.Dealer) error
	UpdateDealerFields(ctx context.Context, id uint64, fields map[string]any) error

	// Reviews on a dealer's inventory, joined through listing ownership.
	ListDealerReviews(ctx context.Context, ownerID uint64, limit int) ([]ReviewWithUser, error)

	// Watchlist.
	AddWatchlistItem(ctx context.Context, userID, carID uint64) error
	RemoveWatchlistItem(ctx context.Context, userID, carID uint64) error
	ListWatchlistCars(ctx context.Context, userID uint64) ([]models.Car, error)
}

type ListCarsParams struct {
	Limit   int
	Offset  int
	Make    *string
	Model   *string
	Year    *int
	OrderBy string
	Asc     *bool
}

// ReviewWithUser is a review row with the reviewer's username joined in.
type ReviewWithUser struct {
	ID        uint64    `json:"id"`
	CarID     uint64    `json:"car_id"`
	UserID    uint64    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
