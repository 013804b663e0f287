package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"carrent/internal/domain"
)

func settledRental(t *testing.T) *domain.Rental {
	t.Helper()
	return &domain.Rental{
		ID:           "rental-1",
		CustomerCPF:  "52998224725",
		VehiclePlate: "ABC1D23",
		Period:       period(t, day(2026, time.March, 2), day(2026, time.March, 12)),
		TotalPrice:   decimal.RequireFromString("1000.00"),
		Status:       domain.RentalStatusActive,
	}
}

func TestFinalCharge_OnTimeReturn(t *testing.T) {
	t.Parallel()

	rental := settledRental(t)
	rate := decimal.RequireFromString("100.00")

	breakdown := finalCharge(rental, rate, day(2026, time.March, 12), false, false)

	if got := breakdown.Total.StringFixed(2); got != "1000.00" {
		t.Errorf("expected 1000.00, got %s", got)
	}
	if got := breakdown.Base.StringFixed(2); got != "1000.00" {
		t.Errorf("expected base 1000.00, got %s", got)
	}
	if !breakdown.Penalty.IsZero() {
		t.Errorf("expected zero penalty, got %s", breakdown.Penalty)
	}
}

func TestFinalCharge_EarlyReturn(t *testing.T) {
	t.Parallel()

	rental := settledRental(t)
	rate := decimal.RequireFromString("100.00")

	// Returned 2 days early: 8 used days at 100.00 plus 30% of 2 unused days.
	breakdown := finalCharge(rental, rate, day(2026, time.March, 10), false, false)

	if got := breakdown.Base.StringFixed(2); got != "800.00" {
		t.Errorf("expected base 800.00, got %s", got)
	}
	if got := breakdown.Penalty.StringFixed(2); got != "60.00" {
		t.Errorf("expected penalty 60.00, got %s", got)
	}
	if got := breakdown.Total.StringFixed(2); got != "860.00" {
		t.Errorf("expected total 860.00, got %s", got)
	}
}

func TestFinalCharge_LateReturn(t *testing.T) {
	t.Parallel()

	rental := settledRental(t)
	rate := decimal.RequireFromString("100.00")

	// Returned 2 days late: quote plus 2 extra days plus 50% penalty per late day.
	breakdown := finalCharge(rental, rate, day(2026, time.March, 14), false, false)

	if got := breakdown.Base.StringFixed(2); got != "1200.00" {
		t.Errorf("expected base 1200.00, got %s", got)
	}
	if got := breakdown.Penalty.StringFixed(2); got != "100.00" {
		t.Errorf("expected penalty 100.00, got %s", got)
	}
	if got := breakdown.Total.StringFixed(2); got != "1300.00" {
		t.Errorf("expected total 1300.00, got %s", got)
	}
}

func TestFinalCharge_ConditionFees(t *testing.T) {
	t.Parallel()

	rental := settledRental(t)
	rate := decimal.RequireFromString("100.00")

	t.Run("cleaning only", func(t *testing.T) {
		breakdown := finalCharge(rental, rate, day(2026, time.March, 12), false, true)
		if got := breakdown.CleaningFee.StringFixed(2); got != "100.00" {
			t.Errorf("expected cleaning fee 100.00, got %s", got)
		}
		if got := breakdown.Total.StringFixed(2); got != "1100.00" {
			t.Errorf("expected total 1100.00, got %s", got)
		}
	})

	t.Run("maintenance only", func(t *testing.T) {
		breakdown := finalCharge(rental, rate, day(2026, time.March, 12), true, false)
		if got := breakdown.MaintenanceFee.StringFixed(2); got != "150.00" {
			t.Errorf("expected maintenance fee 150.00, got %s", got)
		}
		if got := breakdown.Total.StringFixed(2); got != "1150.00" {
			t.Errorf("expected total 1150.00, got %s", got)
		}
	})

	t.Run("late with maintenance and cleaning", func(t *testing.T) {
		// Maintenance applies to the penalty-adjusted 1300.00; cleaning is flat.
		breakdown := finalCharge(rental, rate, day(2026, time.March, 14), true, true)
		if got := breakdown.MaintenanceFee.StringFixed(2); got != "195.00" {
			t.Errorf("expected maintenance fee 195.00, got %s", got)
		}
		if got := breakdown.Total.StringFixed(2); got != "1595.00" {
			t.Errorf("expected total 1595.00, got %s", got)
		}
	})

	t.Run("early with maintenance", func(t *testing.T) {
		breakdown := finalCharge(rental, rate, day(2026, time.March, 10), true, false)
		if got := breakdown.Total.StringFixed(2); got != "989.00" {
			t.Errorf("expected total 989.00, got %s", got)
		}
	})
}

func TestFinalCharge_ReturnOnStartDate(t *testing.T) {
	t.Parallel()

	rental := settledRental(t)
	rate := decimal.RequireFromString("100.00")

	// Returned the day the rental started: no used days, all 10 unused.
	breakdown := finalCharge(rental, rate, day(2026, time.March, 2), false, false)

	if !breakdown.Base.IsZero() {
		t.Errorf("expected zero base, got %s", breakdown.Base)
	}
	if got := breakdown.Penalty.StringFixed(2); got != "300.00" {
		t.Errorf("expected penalty 300.00, got %s", got)
	}
	if got := breakdown.Total.StringFixed(2); got != "300.00" {
		t.Errorf("expected total 300.00, got %s", got)
	}
}
