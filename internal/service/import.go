package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"intelliwheels/internal/config"
	"intelliwheels/internal/dump"
	"intelliwheels/internal/models"
	"intelliwheels/internal/repository"
)

// ImportService loads the vendor catalog dump and the dealer seed set into
// the store. Each table goes through the same idempotency policy: an already
// populated table is skipped unless force is set, in which case it is wiped
// and reloaded. Count, wipe and insert for one table run in one transaction,
// so a failure mid-batch leaves no committed rows.
type ImportService struct {
	Store  repository.Store
	Config config.ImportConfig
	Logger *zap.Logger
}

// ImportResult summarizes one import run. CarsAccepted counts records that
// survived normalization and dedup, not raw dump tuples.
type ImportResult struct {
	CarsAccepted    int   `json:"cars_accepted"`
	CarsImported    int   `json:"cars_imported"`
	CarsExisting    int64 `json:"cars_existing"`
	CarsSkipped     bool  `json:"cars_skipped"`
	DealersImported int   `json:"dealers_imported"`
	DealersExisting int64 `json:"dealers_existing"`
	DealersSkipped  bool  `json:"dealers_skipped"`
}

// Run executes one full import: parse, normalize, dedup, load cars, load
// seeded dealers. Force wipes both tables before reloading.
func (s *ImportService) Run(ctx context.Context, force bool) (ImportResult, error) {
	if s == nil || s.Store == nil {
		return ImportResult{}, fmt.Errorf("import: store is nil")
	}

	content, err := os.ReadFile(s.Config.DumpPath)
	if err != nil {
		return ImportResult{}, fmt.Errorf("import: read dump: %w", err)
	}

	cars := s.parseCars(string(content))
	result := ImportResult{CarsAccepted: len(cars)}

	if err := s.loadCars(ctx, cars, force, &result); err != nil {
		return result, err
	}
	if err := s.loadDealers(ctx, SeedDealers(), force, &result); err != nil {
		return result, err
	}

	if s.Logger != nil {
		s.Logger.Info("import finished",
			zap.Int("cars_accepted", result.CarsAccepted),
			zap.Int("cars_imported", result.CarsImported),
			zap.Bool("cars_skipped", result.CarsSkipped),
			zap.Int("dealers_imported", result.DealersImported),
			zap.Bool("dealers_skipped", result.DealersSkipped),
		)
	}
	return result, nil
}

func (s *ImportService) parseCars(content string) []models.Car {
	normalizer := dump.Normalizer{
		AEDToJOD:      s.Config.AEDToJOD,
		DefaultRating: s.Config.DefaultRating,
	}
	deduper := dump.NewDeduper()
	scanner := dump.NewScanner(content)

	var cars []models.Car
	for {
		tuple, ok := scanner.Next()
		if !ok {
			break
		}
		car, ok := normalizer.Normalize(tuple)
		if !ok {
			continue
		}
		if !deduper.Admit(car) {
			continue
		}
		cars = append(cars, car)
	}
	return cars
}

func (s *ImportService) loadCars(ctx context.Context, cars []models.Car, force bool, result *ImportResult) error {
	return s.Store.InTx(ctx, func(tx *gorm.DB) error {
		existing, err := s.Store.CountCarsTx(ctx, tx)
		if err != nil {
			return fmt.Errorf("import: count cars: %w", err)
		}
		result.CarsExisting = existing
		if existing > 0 {
			if !force {
				result.CarsSkipped = true
				if s.Logger != nil {
					s.Logger.Info("cars table already populated, skipping import",
						zap.Int64("existing", existing))
				}
				return nil
			}
			if err := s.Store.DeleteAllCarsTx(ctx, tx); err != nil {
				return fmt.Errorf("import: wipe cars: %w", err)
			}
			if s.Logger != nil {
				s.Logger.Warn("force reimport: cleared cars table",
					zap.Int64("removed", existing))
			}
		}

		now := time.Now().UTC()
		for i := range cars {
			cars[i].CreatedAt = now
			cars[i].UpdatedAt = now
		}
		if err := s.Store.InsertCarsTx(ctx, tx, cars); err != nil {
			return fmt.Errorf("import: insert cars: %w", err)
		}
		result.CarsImported = len(cars)
		return nil
	})
}

func (s *ImportService) loadDealers(ctx context.Context, dealers []models.Dealer, force bool, result *ImportResult) error {
	return s.Store.InTx(ctx, func(tx *gorm.DB) error {
		existing, err := s.Store.CountDealersTx(ctx, tx)
		if err != nil {
			return fmt.Errorf("import: count dealers: %w", err)
		}
		result.DealersExisting = existing
		if existing > 0 {
			if !force {
				result.DealersSkipped = true
				if s.Logger != nil {
					s.Logger.Info("dealers table already populated, skipping import",
						zap.Int64("existing", existing))
				}
				return nil
			}
			if err := s.Store.DeleteAllDealersTx(ctx, tx); err != nil {
				return fmt.Errorf("import: wipe dealers: %w", err)
			}
		}

		now := time.Now().UTC()
		for i := range dealers {
			dealers[i].CreatedAt = now
		}
		if err := s.Store.InsertDealersTx(ctx, tx, dealers); err != nil {
			return fmt.Errorf("import: insert dealers: %w", err)
		}
		result.DealersImported = len(dealers)
		return nil
	})
}
