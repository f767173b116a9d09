package service

import (
	"context"

	"go.uber.org/zap"

	"intelliwheels/internal/repository"
)

// WatchlistService manages per-user saved cars.
type WatchlistService struct {
	Repo   repository.Store
	Logger *zap.Logger
}

// List returns the user's watched cars, newest-added first, hydrated.
func (s *WatchlistService) List(ctx context.Context, userID uint64) ([]CarView, error) {
	cars, err := s.Repo.ListWatchlistCars(ctx, userID)
	if err != nil {
		return nil, err
	}
	return newCarViews(cars, s.Logger), nil
}

// Add puts a car on the user's watchlist. Unknown cars are rejected; adding
// an already watched car is a no-op.
func (s *WatchlistService) Add(ctx context.Context, userID, carID uint64) error {
	car, err := s.Repo.GetCarByID(ctx, carID)
	if err != nil {
		return err
	}
	if car == nil {
		return ErrCarNotFound
	}
	return s.Repo.AddWatchlistItem(ctx, userID, carID)
}

func (s *WatchlistService) Remove(ctx context.Context, userID, carID uint64) error {
	return s.Repo.RemoveWatchlistItem(ctx, userID, carID)
}
