package service

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"intelliwheels/internal/hydrate"
	"intelliwheels/internal/models"
	"intelliwheels/internal/repository"
)

// DealerView is a dealer record with its encoded fields hydrated. DistanceKm
// is set only on proximity-filtered results.
type DealerView struct {
	ID             uint64            `json:"id"`
	UserID         *uint64           `json:"user_id,omitempty"`
	Name           string            `json:"name"`
	Location       string            `json:"location"`
	Latitude       *float64          `json:"latitude"`
	Longitude      *float64          `json:"longitude"`
	ContactEmail   string            `json:"contact_email"`
	ContactPhone   string            `json:"contact_phone"`
	Description    string            `json:"description"`
	Verified       bool              `json:"verified"`
	Rating         float64           `json:"rating"`
	ReviewsCount   int               `json:"reviews_count"`
	ShowroomImages []string          `json:"showroom_images"`
	BusinessHours  map[string]string `json:"business_hours"`
	ImageURL       string            `json:"image_url"`
	CreatedAt      time.Time         `json:"created_at"`
	DistanceKm     *float64          `json:"distance_km,omitempty"`

	Inventory []CarView                   `json:"inventory,omitempty"`
	Reviews   []repository.ReviewWithUser `json:"reviews,omitempty"`
}

// CarView is a catalog record with gallery and specs hydrated.
type CarView struct {
	ID          uint64            `json:"id"`
	OwnerID     *uint64           `json:"owner_id,omitempty"`
	Make        string            `json:"make"`
	Model       string            `json:"model"`
	Year        int               `json:"year"`
	Price       *decimal.Decimal  `json:"price"`
	Currency    string            `json:"currency"`
	ImageURL    *string           `json:"image_url"`
	Gallery     []string          `json:"gallery_images"`
	Rating      float64           `json:"rating"`
	Description *string           `json:"description"`
	Specs       map[string]string `json:"specs"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func newDealerView(d models.Dealer, logger *zap.Logger) DealerView {
	return DealerView{
		ID:             d.ID,
		UserID:         d.UserID,
		Name:           d.Name,
		Location:       d.Location,
		Latitude:       d.Latitude,
		Longitude:      d.Longitude,
		ContactEmail:   d.ContactEmail,
		ContactPhone:   d.ContactPhone,
		Description:    d.Description,
		Verified:       d.Verified,
		Rating:         d.Rating,
		ReviewsCount:   d.ReviewsCount,
		ShowroomImages: hydrate.StringList(d.ShowroomImages, "showroom_images", logger),
		BusinessHours:  hydrate.StringMap(d.BusinessHours, "business_hours", logger),
		ImageURL:       d.ImageURL,
		CreatedAt:      d.CreatedAt,
	}
}

func newCarView(c models.Car, logger *zap.Logger) CarView {
	return CarView{
		ID:          c.ID,
		OwnerID:     c.OwnerID,
		Make:        c.Make,
		Model:       c.Model,
		Year:        c.Year,
		Price:       c.Price,
		Currency:    c.Currency,
		ImageURL:    c.ImageURL,
		Gallery:     hydrate.StringList(c.GalleryImages, "gallery_images", logger),
		Rating:      c.Rating,
		Description: c.Description,
		Specs:       hydrate.StringMap(c.Specs, "specs", logger),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func newCarViews(cars []models.Car, logger *zap.Logger) []CarView {
	views := make([]CarView, 0, len(cars))
	for _, c := range cars {
		views = append(views, newCarView(c, logger))
	}
	return views
}
