package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"intelliwheels/internal/models"
	"intelliwheels/internal/repository"
)

func TestCatalogListCarsHydrates(t *testing.T) {
	repo := newStubStore()
	repo.cars = []models.Car{
		{
			ID: 1, Make: "Toyota", Model: "Corolla", Year: 2021, Currency: "JOD",
			GalleryImages: datatypes.JSON(`["https://cdn.example.com/1.jpg"]`),
			Specs:         datatypes.JSON(`{"origin":"Japan"}`),
		},
		{
			ID: 2, Make: "Honda", Model: "Civic", Year: 2020, Currency: "JOD",
			GalleryImages: datatypes.JSON(`not json`),
		},
	}
	svc := &CatalogQueryService{Repo: repo, Logger: zap.NewNop()}

	result, err := svc.ListCars(context.Background(), repository.ListCarsParams{Limit: 10})
	if err != nil {
		t.Fatalf("ListCars: %v", err)
	}
	if result.Total != 2 || len(result.Items) != 2 {
		t.Fatalf("got total %d with %d items, want 2 and 2", result.Total, len(result.Items))
	}
	if got := result.Items[0].Gallery; len(got) != 1 || got[0] != "https://cdn.example.com/1.jpg" {
		t.Fatalf("gallery = %v, want the decoded list", got)
	}
	if result.Items[0].Specs["origin"] != "Japan" {
		t.Fatalf("specs = %v, want decoded origin", result.Items[0].Specs)
	}
	// Corrupt encoded fields hydrate to empty, never nil or an error.
	if result.Items[1].Gallery == nil || len(result.Items[1].Gallery) != 0 {
		t.Fatalf("corrupt gallery = %v, want empty slice", result.Items[1].Gallery)
	}
	if result.Items[1].Specs == nil {
		t.Fatal("specs of a car without any should be an empty map")
	}
}

func TestCatalogGetCar(t *testing.T) {
	repo := newStubStore()
	repo.cars = []models.Car{{ID: 7, Make: "Kia", Model: "Sportage", Year: 2022}}
	svc := &CatalogQueryService{Repo: repo, Logger: zap.NewNop()}
	ctx := context.Background()

	view, err := svc.GetCar(ctx, 7)
	if err != nil {
		t.Fatalf("GetCar: %v", err)
	}
	if view.Make != "Kia" || view.Year != 2022 {
		t.Fatalf("view = %+v, want the stored car", view)
	}

	if _, err := svc.GetCar(ctx, 99); !errors.Is(err, ErrCarNotFound) {
		t.Fatalf("unknown id: err = %v, want ErrCarNotFound", err)
	}
}
