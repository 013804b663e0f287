package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"carrent/internal/domain"
	"carrent/internal/redis"
	"carrent/internal/repository"
	"carrent/internal/repository/postgres"
)

const rentalLockTTL = 10 * time.Second // Lock rental during settlement

// Settlement rates and fees. Reproduced exactly.
var (
	earlyReturnPenaltyRate = decimal.RequireFromString("0.30")
	lateReturnPenaltyRate  = decimal.RequireFromString("0.50")
	maintenanceFeeRate     = decimal.RequireFromString("0.15")
	cleaningFeeAmount      = decimal.RequireFromString("100.00")
)

// SettlementService closes rentals at return time, computing the final charge
// with early/late penalties and condition fees.
type SettlementService struct {
	db           *sql.DB
	rentalRepo   repository.RentalRepository
	vehicleRepo  repository.VehicleRepository
	lockStore    redis.LockStoreInterface
	cacheStore   *redis.CacheStore
	notification *NotificationService
	receipts     *ReceiptService
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(
	db *sql.DB,
	rentalRepo repository.RentalRepository,
	vehicleRepo repository.VehicleRepository,
	lockStore redis.LockStoreInterface,
	cacheStore *redis.CacheStore,
	notification *NotificationService,
	receipts *ReceiptService,
) *SettlementService {
	return &SettlementService{
		db:           db,
		rentalRepo:   rentalRepo,
		vehicleRepo:  vehicleRepo,
		lockStore:    lockStore,
		cacheStore:   cacheStore,
		notification: notification,
		receipts:     receipts,
	}
}

// SettleRentalRequest contains the parameters for settling a rental.
type SettleRentalRequest struct {
	RentalID         string
	ActualReturnDate time.Time
	NeedsMaintenance bool
	NeedsCleaning    bool
}

// SettleRentalResponse contains the settled rental and its receipt.
type SettleRentalResponse struct {
	Rental  *domain.Rental
	Receipt *Receipt
}

// Settle finalizes a rental: it computes the final charge from the actual
// return date and condition flags, then transitions the rental to FINISHED.
// Preconditions are checked up front, then rechecked against a
// transaction-scoped read before the write, so concurrent settlements of the
// same rental cannot both succeed.
func (s *SettlementService) Settle(ctx context.Context, req SettleRentalRequest) (*SettleRentalResponse, error) {
	if req.RentalID == "" {
		return nil, ErrMissingRentalID
	}
	if req.ActualReturnDate.IsZero() {
		return nil, ErrMissingReturnDate
	}

	rental, err := s.rentalRepo.GetByID(ctx, req.RentalID)
	if err != nil {
		return nil, err
	}

	returnDate := domain.DateOnly(req.ActualReturnDate)
	if err := checkSettleable(rental, returnDate); err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetByPlate(ctx, rental.VehiclePlate)
	if err != nil {
		return nil, err
	}

	if s.lockStore != nil {
		locked, err := s.lockStore.AcquireRentalLock(ctx, req.RentalID, rentalLockTTL)
		if err != nil {
			return nil, err
		}
		if !locked {
			return nil, ErrSettlementInProgress
		}
		defer s.lockStore.ReleaseRentalLock(ctx, req.RentalID)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txRentalRepo := postgres.NewRentalRepositoryWithTx(tx)

	// Authoritative recheck; a settlement may have committed since the
	// first read.
	rental, err = txRentalRepo.GetByID(ctx, req.RentalID)
	if err != nil {
		return nil, err
	}
	if err = checkSettleable(rental, returnDate); err != nil {
		return nil, err
	}

	breakdown := finalCharge(rental, vehicle.DailyRate, returnDate, req.NeedsMaintenance, req.NeedsCleaning)

	rental.Status = domain.RentalStatusFinished
	rental.ActualReturnDate = returnDate
	rental.FinalPrice = breakdown.Total

	if err = txRentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	// Cache invalidation, receipt and notification after the transaction
	// commits.
	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidateRental(ctx, rental.ID)
	}
	var receipt *Receipt
	if s.receipts != nil {
		receipt = s.receipts.GenerateReceipt(ctx, rental, breakdown)
	}
	if s.notification != nil {
		_ = s.notification.NotifyRentalSettled(ctx, rental)
	}

	return &SettleRentalResponse{Rental: rental, Receipt: receipt}, nil
}

// checkSettleable verifies a rental can be settled with the given return
// date. FINISHED is reported before other non-ACTIVE states so a repeated
// settle always reads as already finished.
func checkSettleable(rental *domain.Rental, returnDate time.Time) error {
	if rental.Status == domain.RentalStatusFinished {
		return ErrRentalAlreadyFinished
	}
	if rental.Status != domain.RentalStatusActive {
		return ErrRentalNotActive
	}
	if returnDate.Before(rental.Period.StartDate) {
		return ErrInvalidReturnDate
	}
	return nil
}

// ChargeBreakdown details the components of a final settlement charge.
type ChargeBreakdown struct {
	Base           decimal.Decimal // quoted price or usage-adjusted price
	Penalty        decimal.Decimal // early or late return penalty
	MaintenanceFee decimal.Decimal
	CleaningFee    decimal.Decimal
	Total          decimal.Decimal
}

// finalCharge computes the settlement charge. The return date branches the
// calculation: early returns pay used days plus a 30% penalty on unused days,
// late returns pay the quote plus each extra day at 150% of the daily rate,
// on-time returns pay the quote. Condition fees apply afterwards: 15%
// maintenance on the penalty-adjusted price, then a flat cleaning fee.
func finalCharge(rental *domain.Rental, dailyRate decimal.Decimal, returnDate time.Time, needsMaintenance, needsCleaning bool) ChargeBreakdown {
	scheduledStart := rental.Period.StartDate
	scheduledEnd := rental.Period.EndDate

	var breakdown ChargeBreakdown
	var price decimal.Decimal

	switch {
	case returnDate.Before(scheduledEnd):
		daysUsed := decimal.NewFromInt(int64(domain.DaysBetween(scheduledStart, returnDate)))
		daysUnused := decimal.NewFromInt(int64(domain.DaysBetween(returnDate, scheduledEnd)))

		breakdown.Base = dailyRate.Mul(daysUsed)
		breakdown.Penalty = dailyRate.Mul(daysUnused).Mul(earlyReturnPenaltyRate)
		price = breakdown.Base.Add(breakdown.Penalty)

	case returnDate.After(scheduledEnd):
		lateDays := decimal.NewFromInt(int64(domain.DaysBetween(scheduledEnd, returnDate)))

		extraDaysCost := dailyRate.Mul(lateDays)
		breakdown.Base = rental.TotalPrice.Add(extraDaysCost)
		breakdown.Penalty = dailyRate.Mul(lateReturnPenaltyRate).Mul(lateDays)
		price = breakdown.Base.Add(breakdown.Penalty)

	default:
		breakdown.Base = rental.TotalPrice
		price = rental.TotalPrice
	}

	if needsMaintenance {
		breakdown.MaintenanceFee = price.Mul(maintenanceFeeRate)
		price = price.Add(breakdown.MaintenanceFee)
	}
	if needsCleaning {
		breakdown.CleaningFee = cleaningFeeAmount
		price = price.Add(breakdown.CleaningFee)
	}

	// Round rounds half away from zero, which is half-up for positive amounts.
	breakdown.Total = price.Round(2)
	return breakdown
}
