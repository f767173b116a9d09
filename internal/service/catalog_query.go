package service

import (
	"context"

	"go.uber.org/zap"

	"intelliwheels/internal/repository"
)

// CatalogQueryService serves the public car catalog.
type CatalogQueryService struct {
	Repo   repository.Store
	Logger *zap.Logger
}

type CatalogCarsResult struct {
	Items []CarView
	Total int64
}

func (s *CatalogQueryService) ListCars(ctx context.Context, params repository.ListCarsParams) (CatalogCarsResult, error) {
	total, err := s.Repo.CountCars(ctx, params)
	if err != nil {
		return CatalogCarsResult{}, err
	}
	items, err := s.Repo.ListCars(ctx, params)
	if err != nil {
		return CatalogCarsResult{}, err
	}
	return CatalogCarsResult{Items: newCarViews(items, s.Logger), Total: total}, nil
}

func (s *CatalogQueryService) GetCar(ctx context.Context, id uint64) (CarView, error) {
	car, err := s.Repo.GetCarByID(ctx, id)
	if err != nil {
		return CarView{}, err
	}
	if car == nil {
		return CarView{}, ErrCarNotFound
	}
	return newCarView(*car, s.Logger), nil
}
