package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"carrent/internal/domain"
	"carrent/internal/redis"
	"carrent/internal/repository"
)

// VehicleService handles fleet management.
type VehicleService struct {
	vehicleRepo repository.VehicleRepository
	cacheStore  *redis.CacheStore
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(vehicleRepo repository.VehicleRepository, cacheStore *redis.CacheStore) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		cacheStore:  cacheStore,
	}
}

// RegisterVehicleRequest contains the parameters for registering a vehicle.
type RegisterVehicleRequest struct {
	Plate     string
	Make      string
	Model     string
	DailyRate decimal.Decimal
}

// RegisterVehicle adds a vehicle to the fleet. The daily rate is validated
// here once; pricing trusts it afterwards.
func (s *VehicleService) RegisterVehicle(ctx context.Context, req RegisterVehicleRequest) (*domain.Vehicle, error) {
	if req.Plate == "" {
		return nil, ErrMissingPlate
	}
	if !domain.ValidPlate(req.Plate) {
		return nil, ErrInvalidPlate
	}
	if !req.DailyRate.IsPositive() {
		return nil, ErrInvalidDailyRate
	}

	vehicle := &domain.Vehicle{
		Plate:     req.Plate,
		Make:      req.Make,
		Model:     req.Model,
		DailyRate: req.DailyRate,
		CreatedAt: time.Now(),
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		if err == repository.ErrDuplicate {
			return nil, ErrPlateTaken
		}
		return nil, err
	}

	return vehicle, nil
}

// GetVehicle retrieves a vehicle by plate, reading through the cache.
func (s *VehicleService) GetVehicle(ctx context.Context, plate string) (*domain.Vehicle, error) {
	if plate == "" {
		return nil, ErrMissingPlate
	}

	if s.cacheStore != nil {
		cached, err := s.cacheStore.GetVehicle(ctx, plate)
		if err == nil && cached != nil {
			if rate, err := decimal.NewFromString(cached.DailyRate); err == nil {
				return &domain.Vehicle{
					Plate:     cached.Plate,
					Make:      cached.Make,
					Model:     cached.Model,
					DailyRate: rate,
				}, nil
			}
		}
	}

	vehicle, err := s.vehicleRepo.GetByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetVehicle(ctx, &redis.CachedVehicle{
			Plate:     vehicle.Plate,
			Make:      vehicle.Make,
			Model:     vehicle.Model,
			DailyRate: vehicle.DailyRate.String(),
		})
	}

	return vehicle, nil
}

// GetAllVehicles retrieves all vehicles.
func (s *VehicleService) GetAllVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	return s.vehicleRepo.GetAll(ctx)
}

// UpdateVehicleRequest contains the parameters for updating a vehicle.
type UpdateVehicleRequest struct {
	Plate     string
	Make      string
	Model     string
	DailyRate decimal.Decimal
}

// UpdateVehicle updates a vehicle's details and invalidates its cache entry.
func (s *VehicleService) UpdateVehicle(ctx context.Context, req UpdateVehicleRequest) (*domain.Vehicle, error) {
	if req.Plate == "" {
		return nil, ErrMissingPlate
	}
	if !req.DailyRate.IsPositive() {
		return nil, ErrInvalidDailyRate
	}

	vehicle, err := s.vehicleRepo.GetByPlate(ctx, req.Plate)
	if err != nil {
		return nil, err
	}

	vehicle.Make = req.Make
	vehicle.Model = req.Model
	vehicle.DailyRate = req.DailyRate

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidateVehicle(ctx, vehicle.Plate)
	}

	return vehicle, nil
}

// DeleteVehicle removes a vehicle from the fleet and its cache entry.
func (s *VehicleService) DeleteVehicle(ctx context.Context, plate string) error {
	if plate == "" {
		return ErrMissingPlate
	}

	if err := s.vehicleRepo.Delete(ctx, plate); err != nil {
		return err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidateVehicle(ctx, plate)
	}

	return nil
}
