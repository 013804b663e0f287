package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"carrent/internal/domain"
	"carrent/internal/redis"
	"carrent/internal/repository"
	"carrent/internal/repository/postgres"
)

const vehicleLockTTL = 10 * time.Second // Lock vehicle during booking

// BookingService orchestrates rental creation: validation, lookups,
// availability check and pricing, with the overlap check and the rental
// insert in a single transaction.
type BookingService struct {
	db           *sql.DB
	customerRepo repository.CustomerRepository
	vehicleRepo  repository.VehicleRepository
	rentalRepo   repository.RentalRepository
	pricing      *PricingService
	lockStore    redis.LockStoreInterface
	notification *NotificationService
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	db *sql.DB,
	customerRepo repository.CustomerRepository,
	vehicleRepo repository.VehicleRepository,
	rentalRepo repository.RentalRepository,
	pricing *PricingService,
	lockStore redis.LockStoreInterface,
	notification *NotificationService,
) *BookingService {
	return &BookingService{
		db:           db,
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		rentalRepo:   rentalRepo,
		pricing:      pricing,
		lockStore:    lockStore,
		notification: notification,
	}
}

// BookRentalRequest contains the parameters for booking a rental.
type BookRentalRequest struct {
	Plate         string
	CPF           string
	StartDate     time.Time
	EndDate       time.Time
	WithInsurance bool
}

// Book creates a new ACTIVE rental. Each step aborts on failure; nothing is
// persisted unless every step succeeds.
func (s *BookingService) Book(ctx context.Context, req BookRentalRequest) (*domain.Rental, error) {
	if req.Plate == "" {
		return nil, ErrMissingPlate
	}
	if req.CPF == "" {
		return nil, ErrMissingCPF
	}

	// Identifier formats are checked before any lookup.
	if !domain.ValidPlate(req.Plate) {
		return nil, ErrInvalidPlate
	}
	if !domain.ValidCPF(req.CPF) {
		return nil, ErrInvalidCPF
	}
	cpf := domain.NormalizeCPF(req.CPF)

	period, err := domain.NewRentalPeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByCPF(ctx, cpf)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetByPlate(ctx, req.Plate)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	overlaps, err := s.rentalRepo.ExistsActiveOverlap(ctx, vehicle.Plate, period.StartDate, period.EndDate)
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, ErrVehicleUnavailable
	}

	// Serialize bookings per vehicle so two concurrent requests cannot both
	// observe "no overlap".
	if s.lockStore != nil {
		locked, err := s.lockStore.AcquireVehicleLock(ctx, vehicle.Plate, vehicleLockTTL)
		if err != nil {
			return nil, err
		}
		if !locked {
			return nil, ErrVehicleUnavailable
		}
		defer s.lockStore.ReleaseVehicleLock(ctx, vehicle.Plate)
	}

	// Overlap check and insert share one transaction.
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

	// Authoritative recheck; a booking may have committed since the first read.
	overlaps, err = txRentalRepo.ExistsActiveOverlap(ctx, vehicle.Plate, period.StartDate, period.EndDate)
	if err != nil {
		return nil, err
	}
	if overlaps {
		err = ErrVehicleUnavailable
		return nil, err
	}

	var quote decimal.Decimal
	quote, err = s.pricing.Quote(vehicle, period, req.WithInsurance)
	if err != nil {
		return nil, err
	}

	rental := &domain.Rental{
		ID:           uuid.New().String(),
		CustomerCPF:  customer.CPF,
		VehiclePlate: vehicle.Plate,
		Period:       period,
		TotalPrice:   quote,
		Status:       domain.RentalStatusActive,
		CreatedAt:    time.Now(),
	}

	if err = txRentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	if s.notification != nil {
		_ = s.notification.NotifyRentalBooked(ctx, rental, customer)
	}

	return rental, nil
}
