package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"intelliwheels/internal/models"
	"intelliwheels/internal/repository"
)

// stubStore is a test-only in-memory implementation of repository.Store.
type stubStore struct {
	cars    []models.Car
	dealers []models.Dealer
	reviews []repository.ReviewWithUser
	watch   map[uint64][]uint64

	nextCarID    uint64
	nextDealerID uint64
}

func newStubStore() *stubStore {
	return &stubStore{watch: map[uint64][]uint64{}}
}

func (s *stubStore) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func (s *stubStore) CountCarsTx(ctx context.Context, tx *gorm.DB) (int64, error) {
	return int64(len(s.cars)), nil
}

func (s *stubStore) DeleteAllCarsTx(ctx context.Context, tx *gorm.DB) error {
	s.cars = nil
	return nil
}

func (s *stubStore) InsertCarsTx(ctx context.Context, tx *gorm.DB, items []models.Car) error {
	for _, item := range items {
		s.nextCarID++
		item.ID = s.nextCarID
		s.cars = append(s.cars, item)
	}
	return nil
}

func (s *stubStore) CountDealersTx(ctx context.Context, tx *gorm.DB) (int64, error) {
	return int64(len(s.dealers)), nil
}

func (s *stubStore) DeleteAllDealersTx(ctx context.Context, tx *gorm.DB) error {
	s.dealers = nil
	return nil
}

func (s *stubStore) InsertDealersTx(ctx context.Context, tx *gorm.DB, items []models.Dealer) error {
	for _, item := range items {
		s.nextDealerID++
		item.ID = s.nextDealerID
		s.dealers = append(s.dealers, item)
	}
	return nil
}

func (s *stubStore) ListCars(ctx context.Context, params repository.ListCarsParams) ([]models.Car, error) {
	return s.cars, nil
}

func (s *stubStore) CountCars(ctx context.Context, params repository.ListCarsParams) (int64, error) {
	return int64(len(s.cars)), nil
}

func (s *stubStore) GetCarByID(ctx context.Context, id uint64) (*models.Car, error) {
	for i := range s.cars {
		if s.cars[i].ID == id {
			car := s.cars[i]
			return &car, nil
		}
	}
	return nil, nil
}

func (s *stubStore) ListCarsByOwner(ctx context.Context, ownerID uint64) ([]models.Car, error) {
	var out []models.Car
	for _, car := range s.cars {
		if car.OwnerID != nil && *car.OwnerID == ownerID {
			out = append(out, car)
		}
	}
	return out, nil
}

func (s *stubStore) ListVerifiedDealers(ctx context.Context) ([]models.Dealer, error) {
	var out []models.Dealer
	for _, d := range s.dealers {
		if d.Verified {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	return out, nil
}

func (s *stubStore) GetDealerByID(ctx context.Context, id uint64) (*models.Dealer, error) {
	for i := range s.dealers {
		if s.dealers[i].ID == id {
			dealer := s.dealers[i]
			return &dealer, nil
		}
	}
	return nil, nil
}

func (s *stubStore) GetDealerByUserID(ctx context.Context, userID uint64) (*models.Dealer, error) {
	for i := range s.dealers {
		if s.dealers[i].UserID != nil && *s.dealers[i].UserID == userID {
			dealer := s.dealers[i]
			return &dealer, nil
		}
	}
	return nil, nil
}

func (s *stubStore) CreateDealer(ctx context.Context, item *models.Dealer) error {
	s.nextDealerID++
	item.ID = s.nextDealerID
	s.dealers = append(s.dealers, *item)
	return nil
}

func (s *stubStore) UpdateDealerFields(ctx context.Context, id uint64, fields map[string]any) error {
	for i := range s.dealers {
		if s.dealers[i].ID != id {
			continue
		}
		if v, ok := fields["name"].(string); ok {
			s.dealers[i].Name = v
		}
		if v, ok := fields["location"].(string); ok {
			s.dealers[i].Location = v
		}
		if v, ok := fields["description"].(string); ok {
			s.dealers[i].Description = v
		}
		if v, ok := fields["showroom_images"].(datatypes.JSON); ok {
			s.dealers[i].ShowroomImages = v
		}
		if v, ok := fields["business_hours"].(datatypes.JSON); ok {
			s.dealers[i].BusinessHours = v
		}
	}
	return nil
}

func (s *stubStore) ListDealerReviews(ctx context.Context, ownerID uint64, limit int) ([]repository.ReviewWithUser, error) {
	if len(s.reviews) > limit {
		return s.reviews[:limit], nil
	}
	return s.reviews, nil
}

func (s *stubStore) AddWatchlistItem(ctx context.Context, userID, carID uint64) error {
	for _, existing := range s.watch[userID] {
		if existing == carID {
			return nil
		}
	}
	s.watch[userID] = append(s.watch[userID], carID)
	return nil
}

func (s *stubStore) RemoveWatchlistItem(ctx context.Context, userID, carID uint64) error {
	items := s.watch[userID]
	out := items[:0]
	for _, existing := range items {
		if existing != carID {
			out = append(out, existing)
		}
	}
	s.watch[userID] = out
	return nil
}

func (s *stubStore) ListWatchlistCars(ctx context.Context, userID uint64) ([]models.Car, error) {
	var out []models.Car
	for _, carID := range s.watch[userID] {
		for _, car := range s.cars {
			if car.ID == carID {
				out = append(out, car)
			}
		}
	}
	return out, nil
}

var _ repository.Store = (*stubStore)(nil)

func seedStubDealer(s *stubStore, name string, lat, lng *float64, rating float64, verified bool) {
	s.dealers = append(s.dealers, models.Dealer{
		ID:        uint64(len(s.dealers) + 1),
		Name:      name,
		Location:  name,
		Latitude:  lat,
		Longitude: lng,
		Rating:    rating,
		Verified:  verified,
		CreatedAt: time.Now().UTC(),
	})
	s.nextDealerID = uint64(len(s.dealers))
}
