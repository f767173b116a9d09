package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Car is one catalog listing. Rows either come from the vendor dump import
// (OwnerID nil) or belong to a registered user's inventory.
type Car struct {
	ID            uint64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID       *uint64          `gorm:"index" json:"owner_id,omitempty"`
	Make          string           `gorm:"type:text;not null;index:idx_cars_make_model_year" json:"make"`
	Model         string           `gorm:"type:text;not null;index:idx_cars_make_model_year" json:"model"`
	Year          int              `gorm:"not null;index:idx_cars_make_model_year" json:"year"`
	Price         *decimal.Decimal `gorm:"type:numeric(12,2)" json:"price"`
	Currency      string           `gorm:"type:text;not null;default:'JOD'" json:"currency"`
	ImageURL      *string          `gorm:"type:text" json:"image_url"`
	GalleryImages datatypes.JSON   `gorm:"type:jsonb" json:"-"`
	Rating        float64          `gorm:"not null;default:0" json:"rating"`
	Description   *string          `gorm:"type:text" json:"description"`
	Specs         datatypes.JSON   `gorm:"type:jsonb" json:"-"`
	CreatedAt     time.Time        `gorm:"type:timestamptz;not null" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"type:timestamptz;not null" json:"updated_at"`
}

func (Car) TableName() string {
	return "cars"
}
