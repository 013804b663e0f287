package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"carrent/internal/domain"
	"carrent/internal/redis"
	"carrent/internal/repository"
)

// RentalService handles rental queries and administrative transitions.
type RentalService struct {
	rentalRepo   repository.RentalRepository
	cacheStore   *redis.CacheStore
	notification *NotificationService
}

// NewRentalService creates a new RentalService.
func NewRentalService(rentalRepo repository.RentalRepository, cacheStore *redis.CacheStore, notification *NotificationService) *RentalService {
	return &RentalService{
		rentalRepo:   rentalRepo,
		cacheStore:   cacheStore,
		notification: notification,
	}
}

// GetRental retrieves a rental by ID, reading through the cache. The cache
// TTL is short because a rental can be settled or canceled at any time.
func (s *RentalService) GetRental(ctx context.Context, rentalID string) (*domain.Rental, error) {
	if rentalID == "" {
		return nil, ErrMissingRentalID
	}

	if s.cacheStore != nil {
		cached, err := s.cacheStore.GetRental(ctx, rentalID)
		if err == nil && cached != nil {
			if rental, ok := rentalFromCache(cached); ok {
				return rental, nil
			}
		}
	}

	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetRental(ctx, rentalToCache(rental))
	}

	return rental, nil
}

// GetAllRentals retrieves all rentals.
func (s *RentalService) GetAllRentals(ctx context.Context) ([]*domain.Rental, error) {
	return s.rentalRepo.GetAll(ctx)
}

// CancelRental cancels an ACTIVE rental.
func (s *RentalService) CancelRental(ctx context.Context, rentalID string) (*domain.Rental, error) {
	if rentalID == "" {
		return nil, ErrMissingRentalID
	}

	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	if rental.Status != domain.RentalStatusActive {
		return nil, ErrRentalNotActive
	}

	rental.Status = domain.RentalStatusCanceled
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidateRental(ctx, rentalID)
	}
	if s.notification != nil {
		_ = s.notification.NotifyRentalCanceled(ctx, rental)
	}

	return rental, nil
}

func rentalToCache(rental *domain.Rental) *redis.CachedRental {
	cached := &redis.CachedRental{
		ID:           rental.ID,
		CustomerCPF:  rental.CustomerCPF,
		VehiclePlate: rental.VehiclePlate,
		StartDate:    rental.Period.StartDate.Format(time.RFC3339),
		EndDate:      rental.Period.EndDate.Format(time.RFC3339),
		Status:       string(rental.Status),
		TotalPrice:   rental.TotalPrice.String(),
	}
	if !rental.ActualReturnDate.IsZero() {
		cached.ActualReturnDate = rental.ActualReturnDate.Format(time.RFC3339)
		cached.FinalPrice = rental.FinalPrice.String()
	}
	return cached
}

// rentalFromCache rebuilds a rental from its cache entry. A malformed entry
// reports not-ok and falls back to the repository.
func rentalFromCache(cached *redis.CachedRental) (*domain.Rental, bool) {
	start, err := time.Parse(time.RFC3339, cached.StartDate)
	if err != nil {
		return nil, false
	}
	end, err := time.Parse(time.RFC3339, cached.EndDate)
	if err != nil {
		return nil, false
	}
	total, err := decimal.NewFromString(cached.TotalPrice)
	if err != nil {
		return nil, false
	}

	rental := &domain.Rental{
		ID:           cached.ID,
		CustomerCPF:  cached.CustomerCPF,
		VehiclePlate: cached.VehiclePlate,
		Period:       domain.RentalPeriod{StartDate: start, EndDate: end},
		TotalPrice:   total,
		Status:       domain.RentalStatus(cached.Status),
	}

	if cached.ActualReturnDate != "" {
		returned, err := time.Parse(time.RFC3339, cached.ActualReturnDate)
		if err != nil {
			return nil, false
		}
		final, err := decimal.NewFromString(cached.FinalPrice)
		if err != nil {
			return nil, false
		}
		rental.ActualReturnDate = returned
		rental.FinalPrice = final
	}

	return rental, true
}
