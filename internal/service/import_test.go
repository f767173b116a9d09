package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"intelliwheels/internal/config"
	"intelliwheels/internal/models"
	"intelliwheels/internal/repository"
)

// dumpRow renders one 28-field vendor tuple with the given make, model, year
// and UAE price text. Remaining fields are left empty.
func dumpRow(carMake, carModel, year, priceUAE string) string {
	fields := make([]string, 28)
	fields[0] = "https://vendor.example.com/listing"
	fields[1] = carMake
	fields[2] = carModel
	fields[3] = year
	fields[6] = priceUAE
	return "('" + strings.Join(fields, "', '") + "'),"
}

func writeDumpFixture(t *testing.T, rows ...string) string {
	t.Helper()
	content := "INSERT INTO `cars` VALUES\n" + strings.Join(rows, "\n") + "\n"
	path := filepath.Join(t.TempDir(), "dump.sql")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func newImportService(store repository.Store, dumpPath string) *ImportService {
	return &ImportService{
		Store: store,
		Config: config.ImportConfig{
			DumpPath:      dumpPath,
			AEDToJOD:      0.19,
			DefaultRating: 4.0,
		},
		Logger: zap.NewNop(),
	}
}

func TestImportRunLoadsCarsAndSeedDealers(t *testing.T) {
	path := writeDumpFixture(t,
		dumpRow("Toyota", "Corolla", "2021", "AED 10,000"),
		dumpRow("Toyota", "Corolla", "2021", "AED 99,000"), // dup of the first
		dumpRow("Honda", "Civic", "2020", "AED 20,000"),
	)
	repo := newStubStore()
	svc := newImportService(repo, path)

	result, err := svc.Run(context.Background(), false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.CarsAccepted != 2 {
		t.Fatalf("CarsAccepted = %d, want 2 accepted after dedup", result.CarsAccepted)
	}
	if result.CarsImported != 2 || result.CarsSkipped {
		t.Fatalf("result = %+v, want 2 cars imported into an empty table", result)
	}
	if len(repo.cars) != 2 {
		t.Fatalf("stored %d cars, want 2", len(repo.cars))
	}
	if repo.cars[0].CreatedAt.IsZero() || repo.cars[0].UpdatedAt.IsZero() {
		t.Fatal("imported car is missing timestamps")
	}
	if result.DealersImported != len(SeedDealers()) {
		t.Fatalf("DealersImported = %d, want the full seed set", result.DealersImported)
	}
}

func TestImportRunIsIdempotent(t *testing.T) {
	path := writeDumpFixture(t, dumpRow("Toyota", "Corolla", "2021", "AED 10,000"))
	repo := newStubStore()
	svc := newImportService(repo, path)
	ctx := context.Background()

	if _, err := svc.Run(ctx, false); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	firstCarID := repo.cars[0].ID

	result, err := svc.Run(ctx, false)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if !result.CarsSkipped || !result.DealersSkipped {
		t.Fatalf("result = %+v, want both tables skipped on rerun", result)
	}
	if result.CarsImported != 0 || result.DealersImported != 0 {
		t.Fatalf("result = %+v, want nothing imported on rerun", result)
	}
	if len(repo.cars) != 1 || repo.cars[0].ID != firstCarID {
		t.Fatalf("rerun disturbed stored rows: %+v", repo.cars)
	}
}

func TestImportRunForceReloads(t *testing.T) {
	path := writeDumpFixture(t, dumpRow("Toyota", "Corolla", "2021", "AED 10,000"))
	repo := newStubStore()
	svc := newImportService(repo, path)
	ctx := context.Background()

	if _, err := svc.Run(ctx, false); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	firstCarID := repo.cars[0].ID

	result, err := svc.Run(ctx, true)
	if err != nil {
		t.Fatalf("forced Run: %v", err)
	}
	if result.CarsSkipped || result.DealersSkipped {
		t.Fatalf("result = %+v, want no skips on force", result)
	}
	if result.CarsExisting != 1 || result.CarsImported != 1 {
		t.Fatalf("result = %+v, want one wiped and one reimported", result)
	}
	if len(repo.cars) != 1 || repo.cars[0].ID == firstCarID {
		t.Fatalf("force reload should replace rows, got %+v", repo.cars)
	}
	if len(repo.dealers) != len(SeedDealers()) {
		t.Fatalf("stored %d dealers after force, want %d", len(repo.dealers), len(SeedDealers()))
	}
}

// txStore wraps stubStore with transaction semantics: a failed InTx body
// rolls every mutation back, the way the real store's gorm transaction does.
// failCars/failDealers inject an insert error mid-load.
type txStore struct {
	*stubStore
	failCars    bool
	failDealers bool
}

func (s *txStore) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	carsBefore := append([]models.Car(nil), s.cars...)
	dealersBefore := append([]models.Dealer(nil), s.dealers...)
	nextCarBefore, nextDealerBefore := s.nextCarID, s.nextDealerID
	if err := fn(nil); err != nil {
		s.cars = carsBefore
		s.dealers = dealersBefore
		s.nextCarID, s.nextDealerID = nextCarBefore, nextDealerBefore
		return err
	}
	return nil
}

func (s *txStore) InsertCarsTx(ctx context.Context, tx *gorm.DB, items []models.Car) error {
	if s.failCars {
		// Half the batch lands before the failure, like a mid-batch
		// connection drop.
		if len(items) > 0 {
			_ = s.stubStore.InsertCarsTx(ctx, tx, items[:len(items)/2+1])
		}
		return errors.New("insert cars: connection reset")
	}
	return s.stubStore.InsertCarsTx(ctx, tx, items)
}

func (s *txStore) InsertDealersTx(ctx context.Context, tx *gorm.DB, items []models.Dealer) error {
	if s.failDealers {
		return errors.New("insert dealers: connection reset")
	}
	return s.stubStore.InsertDealersTx(ctx, tx, items)
}

func TestImportCarsFailureLeavesNoRows(t *testing.T) {
	path := writeDumpFixture(t,
		dumpRow("Toyota", "Corolla", "2021", "AED 10,000"),
		dumpRow("Honda", "Civic", "2020", "AED 20,000"),
	)
	repo := &txStore{stubStore: newStubStore(), failCars: true}
	svc := newImportService(repo, path)

	if _, err := svc.Run(context.Background(), false); err == nil {
		t.Fatal("Run should propagate the insert failure")
	}
	if len(repo.cars) != 0 {
		t.Fatalf("failed car load committed %d rows, want none", len(repo.cars))
	}
	if len(repo.dealers) != 0 {
		t.Fatalf("dealer load ran after the car load failed: %d rows", len(repo.dealers))
	}
}

func TestImportDealerFailureKeepsLoadedCars(t *testing.T) {
	path := writeDumpFixture(t, dumpRow("Toyota", "Corolla", "2021", "AED 10,000"))
	repo := &txStore{stubStore: newStubStore(), failDealers: true}
	svc := newImportService(repo, path)

	if _, err := svc.Run(context.Background(), false); err == nil {
		t.Fatal("Run should propagate the insert failure")
	}
	// Each table commits in its own transaction: the finished car load
	// stays, the failed dealer load leaves nothing.
	if len(repo.cars) != 1 {
		t.Fatalf("stored %d cars, want the committed load intact", len(repo.cars))
	}
	if len(repo.dealers) != 0 {
		t.Fatalf("failed dealer load committed %d rows, want none", len(repo.dealers))
	}
}

func TestImportRunMissingDump(t *testing.T) {
	repo := newStubStore()
	svc := newImportService(repo, filepath.Join(t.TempDir(), "absent.sql"))

	if _, err := svc.Run(context.Background(), false); err == nil {
		t.Fatal("Run with a missing dump file should fail")
	}
	if len(repo.cars) != 0 || len(repo.dealers) != 0 {
		t.Fatal("failed run must not insert rows")
	}
}
