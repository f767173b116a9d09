package gormrepository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"intelliwheels/internal/models"
	"intelliwheels/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

// --- bulk load --------------------------------------------------------------

func (s *Store) CountCarsTx(ctx context.Context, tx *gorm.DB) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).Model(&models.Car{}).Count(&count).Error
	return count, err
}

func (s *Store) DeleteAllCarsTx(ctx context.Context, tx *gorm.DB) error {
	return tx.WithContext(ctx).Where("1 = 1").Delete(&models.Car{}).Error
}

func (s *Store) InsertCarsTx(ctx context.Context, tx *gorm.DB, items []models.Car) error {
	if len(items) == 0 {
		return nil
	}
	return tx.WithContext(ctx).CreateInBatches(items, 200).Error
}

func (s *Store) CountDealersTx(ctx context.Context, tx *gorm.DB) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).Model(&models.Dealer{}).Count(&count).Error
	return count, err
}

func (s *Store) DeleteAllDealersTx(ctx context.Context, tx *gorm.DB) error {
	return tx.WithContext(ctx).Where("1 = 1").Delete(&models.Dealer{}).Error
}

func (s *Store) InsertDealersTx(ctx context.Context, tx *gorm.DB, items []models.Dealer) error {
	if len(items) == 0 {
		return nil
	}
	return tx.WithContext(ctx).CreateInBatches(items, 200).Error
}

// --- catalog reads ----------------------------------------------------------

func carsQuery(db *gorm.DB, params repository.ListCarsParams) *gorm.DB {
	query := db.Model(&models.Car{})
	if params.Make != nil && strings.TrimSpace(*params.Make) != "" {
		query = query.Where("make = ?", strings.TrimSpace(*params.Make))
	}
	if params.Model != nil && strings.TrimSpace(*params.Model) != "" {
		query = query.Where("model = ?", strings.TrimSpace(*params.Model))
	}
	if params.Year != nil && *params.Year > 0 {
		query = query.Where("year = ?", *params.Year)
	}
	return query
}

func (s *Store) ListCars(ctx context.Context, params repository.ListCarsParams) ([]models.Car, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := carsQuery(s.db.WithContext(ctx), params)
	query = applyOrder(query, params.OrderBy, params.Asc, "created_at")
	limit := normalizeLimit(params.Limit, 50)
	offset := normalizeOffset(params.Offset)
	var items []models.Car
	if err := query.Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountCars(ctx context.Context, params repository.ListCarsParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var count int64
	err := carsQuery(s.db.WithContext(ctx), params).Count(&count).Error
	return count, err
}

func (s *Store) GetCarByID(ctx context.Context, id uint64) (*models.Car, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Car
	err := s.db.WithContext(ctx).Model(&models.Car{}).Where("id = ?", id).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListCarsByOwner(ctx context.Context, ownerID uint64) ([]models.Car, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Car
	if err := s.db.WithContext(ctx).
		Model(&models.Car{}).
		Where("owner_id = ?", ownerID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --- dealers ----------------------------------------------------------------

func (s *Store) ListVerifiedDealers(ctx context.Context) ([]models.Dealer, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Dealer
	if err := s.db.WithContext(ctx).
		Model(&models.Dealer{}).
		Where("verified = ?", true).
		Order("rating desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetDealerByID(ctx context.Context, id uint64) (*models.Dealer, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Dealer
	err := s.db.WithContext(ctx).Model(&models.Dealer{}).Where("id = ?", id).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) GetDealerByUserID(ctx context.Context, userID uint64) (*models.Dealer, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Dealer
	err := s.db.WithContext(ctx).Model(&models.Dealer{}).Where("user_id = ?", userID).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreateDealer(ctx context.Context, item *models.Dealer) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) UpdateDealerFields(ctx context.Context, id uint64, fields map[string]any) error {
	if s == nil || s.db == nil || len(fields) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&models.Dealer{}).
		Where("id = ?", id).
		Updates(fields).
		Error
}

// --- reviews ----------------------------------------------------------------

func (s *Store) ListDealerReviews(ctx context.Context, ownerID uint64, limit int) ([]repository.ReviewWithUser, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	limit = normalizeLimit(limit, 50)
	var rows []repository.ReviewWithUser
	err := s.db.WithContext(ctx).
		Table("reviews AS r").
		Select(`
			r.id AS id,
			r.car_id AS car_id,
			r.user_id AS user_id,
			r.rating AS rating,
			r.comment AS comment,
			r.created_at AS created_at,
			u.username AS username
		`).
		Joins("JOIN users AS u ON u.id = r.user_id").
		Joins("JOIN cars AS c ON c.id = r.car_id").
		Where("c.owner_id = ?", ownerID).
		Order("r.created_at desc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// --- watchlist --------------------------------------------------------------

func (s *Store) AddWatchlistItem(ctx context.Context, userID, carID uint64) error {
	if s == nil || s.db == nil {
		return nil
	}
	item := models.WatchlistItem{
		UserID:    userID,
		CarID:     carID,
		CreatedAt: time.Now().UTC(),
	}
	// Re-adding an already watched car is a no-op.
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "car_id"}},
		DoNothing: true,
	}).Create(&item).Error
}

func (s *Store) RemoveWatchlistItem(ctx context.Context, userID, carID uint64) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("user_id = ? AND car_id = ?", userID, carID).
		Delete(&models.WatchlistItem{}).
		Error
}

func (s *Store) ListWatchlistCars(ctx context.Context, userID uint64) ([]models.Car, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Car
	if err := s.db.WithContext(ctx).
		Model(&models.Car{}).
		Joins("INNER JOIN watchlist AS w ON w.car_id = cars.id").
		Where("w.user_id = ?", userID).
		Order("w.created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --- helpers ----------------------------------------------------------------

func normalizeLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > 500 {
		return 500
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

func applyOrder(query *gorm.DB, orderBy string, asc *bool, def string) *gorm.DB {
	column := strings.TrimSpace(orderBy)
	if column == "" {
		column = def
	}
	direction := "desc"
	if asc != nil && *asc {
		direction = "asc"
	}
	return query.Order(column + " " + direction)
}
