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

func activeRental(t *testing.T, id string) *domain.Rental {
	t.Helper()
	period, err := domain.NewRentalPeriod(day(2026, time.March, 2), day(2026, time.March, 12))
	if err != nil {
		t.Fatalf("failed to build period: %v", err)
	}
	return &domain.Rental{
		ID:           id,
		CustomerCPF:  testCPF,
		VehiclePlate: testPlate,
		Period:       period,
		TotalPrice:   decimal.RequireFromString("1000.00"),
		Status:       domain.RentalStatusActive,
	}
}

func TestGetRental_RequiresID(t *testing.T) {
	t.Parallel()

	svc := service.NewRentalService(NewMockRentalRepository(), nil, nil)

	_, err := svc.GetRental(context.Background(), "")
	if err != service.ErrMissingRentalID {
		t.Errorf("expected ErrMissingRentalID, got %v", err)
	}
}

func TestGetRental_UnknownID(t *testing.T) {
	t.Parallel()

	svc := service.NewRentalService(NewMockRentalRepository(), nil, nil)

	_, err := svc.GetRental(context.Background(), "missing")
	if err != repository.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCancelRental_TransitionsToCanceled(t *testing.T) {
	t.Parallel()

	rentalRepo := NewMockRentalRepository()
	rentalRepo.AddRental(activeRental(t, "rental-1"))
	svc := service.NewRentalService(rentalRepo, nil, nil)

	rental, err := svc.CancelRental(context.Background(), "rental-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rental.Status != domain.RentalStatusCanceled {
		t.Errorf("expected CANCELED, got %s", rental.Status)
	}

	stored := rentalRepo.GetRental("rental-1")
	if stored.Status != domain.RentalStatusCanceled {
		t.Errorf("expected stored rental CANCELED, got %s", stored.Status)
	}
}

func TestCancelRental_OnlyActiveRentals(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		status domain.RentalStatus
	}{
		{"finished", domain.RentalStatusFinished},
		{"canceled", domain.RentalStatusCanceled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rentalRepo := NewMockRentalRepository()
			rental := activeRental(t, "rental-1")
			rental.Status = tc.status
			rentalRepo.AddRental(rental)
			svc := service.NewRentalService(rentalRepo, nil, nil)

			_, err := svc.CancelRental(context.Background(), "rental-1")
			if err != service.ErrRentalNotActive {
				t.Errorf("expected ErrRentalNotActive, got %v", err)
			}
			if rentalRepo.UpdateCallCount != 0 {
				t.Error("expected no rental update")
			}
		})
	}
}

func TestCanceledRentalFreesTheVehicle(t *testing.T) {
	t.Parallel()

	rentalRepo := NewMockRentalRepository()
	rental := activeRental(t, "rental-1")
	rental.Status = domain.RentalStatusCanceled
	rentalRepo.AddRental(rental)

	// A canceled rental does not count toward overlap.
	overlaps, err := rentalRepo.ExistsActiveOverlap(context.Background(), testPlate, day(2026, time.March, 2), day(2026, time.March, 12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overlaps {
		t.Error("expected no overlap for canceled rental")
	}
}

func TestOverlapIsStrictHalfOpen(t *testing.T) {
	t.Parallel()

	rentalRepo := NewMockRentalRepository()
	rentalRepo.AddRental(activeRental(t, "rental-1")) // Mar 2 through Mar 12

	testCases := []struct {
		name     string
		start    time.Time
		end      time.Time
		overlaps bool
	}{
		{"identical period", day(2026, time.March, 2), day(2026, time.March, 12), true},
		{"contained period", day(2026, time.March, 5), day(2026, time.March, 8), true},
		{"overlaps tail", day(2026, time.March, 10), day(2026, time.March, 20), true},
		{"overlaps head", day(2026, time.February, 25), day(2026, time.March, 3), true},
		{"starts when existing ends", day(2026, time.March, 12), day(2026, time.March, 20), false},
		{"ends when existing starts", day(2026, time.February, 25), day(2026, time.March, 2), false},
		{"disjoint after", day(2026, time.March, 20), day(2026, time.March, 25), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			overlaps, err := rentalRepo.ExistsActiveOverlap(context.Background(), testPlate, tc.start, tc.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if overlaps != tc.overlaps {
				t.Errorf("expected overlaps=%v, got %v", tc.overlaps, overlaps)
			}
		})
	}
}

func TestOverlapIgnoresOtherVehicles(t *testing.T) {
	t.Parallel()

	rentalRepo := NewMockRentalRepository()
	rentalRepo.AddRental(activeRental(t, "rental-1"))

	overlaps, err := rentalRepo.ExistsActiveOverlap(context.Background(), "XYZ9A87", day(2026, time.March, 2), day(2026, time.March, 12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overlaps {
		t.Error("expected no overlap for a different vehicle")
	}
}
