package tests

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"carrent/internal/domain"
	"carrent/internal/repository"
	"carrent/internal/service"
)

// newSettlementService wires a SettlementService against mocks. The database
// is nil, which is fine for every path that fails before the transaction.
func newSettlementService(rentalRepo *MockRentalRepository, vehicleRepo *MockVehicleRepository, lockStore *MockLockStore) *service.SettlementService {
	return service.NewSettlementService(nil, rentalRepo, vehicleRepo, lockStore, nil, nil, nil)
}

func TestSettlement_RequiresRentalID(t *testing.T) {
	t.Parallel()

	svc := newSettlementService(NewMockRentalRepository(), NewMockVehicleRepository(), NewMockLockStore())

	_, err := svc.Settle(context.Background(), service.SettleRentalRequest{
		ActualReturnDate: day(2026, time.March, 12),
	})

	if err != service.ErrMissingRentalID {
		t.Errorf("expected ErrMissingRentalID, got %v", err)
	}
}

func TestSettlement_RequiresReturnDate(t *testing.T) {
	t.Parallel()

	svc := newSettlementService(NewMockRentalRepository(), NewMockVehicleRepository(), NewMockLockStore())

	_, err := svc.Settle(context.Background(), service.SettleRentalRequest{
		RentalID: "rental-1",
	})

	if err != service.ErrMissingReturnDate {
		t.Errorf("expected ErrMissingReturnDate, got %v", err)
	}
}

func TestSettlement_UnknownRental(t *testing.T) {
	t.Parallel()

	svc := newSettlementService(NewMockRentalRepository(), NewMockVehicleRepository(), NewMockLockStore())

	_, err := svc.Settle(context.Background(), service.SettleRentalRequest{
		RentalID:         "missing",
		ActualReturnDate: day(2026, time.March, 12),
	})

	if err != repository.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSettlement_FinishedRentalStaysFinished(t *testing.T) {
	t.Parallel()

	rentalRepo := NewMockRentalRepository()
	rental := activeRental(t, "rental-1")
	rental.Status = domain.RentalStatusFinished
	rental.ActualReturnDate = day(2026, time.March, 12)
	rental.FinalPrice = decimal.RequireFromString("1000.00")
	rentalRepo.AddRental(rental)

	svc := newSettlementService(rentalRepo, NewMockVehicleRepository(), NewMockLockStore())

	// Settling again always fails the same way, no matter the return date.
	for _, returnDate := range []time.Time{
		day(2026, time.March, 12),
		day(2026, time.March, 20),
	} {
		_, err := svc.Settle(context.Background(), service.SettleRentalRequest{
			RentalID:         "rental-1",
			ActualReturnDate: returnDate,
		})
		if err != service.ErrRentalAlreadyFinished {
			t.Errorf("return %s: expected ErrRentalAlreadyFinished, got %v", returnDate.Format("2006-01-02"), err)
		}
	}

	stored := rentalRepo.GetRental("rental-1")
	if !stored.FinalPrice.Equal(decimal.RequireFromString("1000.00")) {
		t.Errorf("expected final price unchanged, got %s", stored.FinalPrice)
	}
	if rentalRepo.UpdateCallCount != 0 {
		t.Error("expected no rental update")
	}
}

func TestSettlement_CanceledRentalIsNotSettleable(t *testing.T) {
	t.Parallel()

	rentalRepo := NewMockRentalRepository()
	rental := activeRental(t, "rental-1")
	rental.Status = domain.RentalStatusCanceled
	rentalRepo.AddRental(rental)

	svc := newSettlementService(rentalRepo, NewMockVehicleRepository(), NewMockLockStore())

	_, err := svc.Settle(context.Background(), service.SettleRentalRequest{
		RentalID:         "rental-1",
		ActualReturnDate: day(2026, time.March, 12),
	})

	if err != service.ErrRentalNotActive {
		t.Errorf("expected ErrRentalNotActive, got %v", err)
	}
}

func TestSettlement_ReturnBeforeStartIsRejected(t *testing.T) {
	t.Parallel()

	rentalRepo := NewMockRentalRepository()
	rentalRepo.AddRental(activeRental(t, "rental-1")) // Mar 2 through Mar 12

	svc := newSettlementService(rentalRepo, NewMockVehicleRepository(), NewMockLockStore())

	_, err := svc.Settle(context.Background(), service.SettleRentalRequest{
		RentalID:         "rental-1",
		ActualReturnDate: day(2026, time.March, 1),
	})

	if err != service.ErrInvalidReturnDate {
		t.Errorf("expected ErrInvalidReturnDate, got %v", err)
	}
	if rentalRepo.UpdateCallCount != 0 {
		t.Error("expected no rental update")
	}
}

func TestSettlement_ConcurrentSettleIsRejected(t *testing.T) {
	t.Parallel()

	rentalRepo := NewMockRentalRepository()
	rentalRepo.AddRental(activeRental(t, "rental-1"))
	vehicleRepo := NewMockVehicleRepository()
	vehicleRepo.AddVehicle(&domain.Vehicle{Plate: testPlate, DailyRate: decimal.RequireFromString("100.00")})
	lockStore := NewMockLockStore()
	lockStore.AcquireResult = false

	svc := newSettlementService(rentalRepo, vehicleRepo, lockStore)

	// The rental lock is held by another settlement in flight; this request
	// is turned away before the transaction starts.
	_, err := svc.Settle(context.Background(), service.SettleRentalRequest{
		RentalID:         "rental-1",
		ActualReturnDate: day(2026, time.March, 12),
	})

	if err != service.ErrSettlementInProgress {
		t.Errorf("expected ErrSettlementInProgress, got %v", err)
	}
	if lockStore.AcquireRentalCallCount != 1 {
		t.Errorf("expected 1 lock attempt, got %d", lockStore.AcquireRentalCallCount)
	}
	if rentalRepo.UpdateCallCount != 0 {
		t.Error("expected no rental update")
	}
}
