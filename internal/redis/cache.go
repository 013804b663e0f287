package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore handles entity caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// Cache TTL constants
const (
	VehicleCacheTTL = 5 * time.Minute  // Vehicle data changes rarely
	RentalCacheTTL  = 30 * time.Second // Rental status changes during booking/return
)

// Key prefixes
const (
	vehicleCachePrefix = "cache:vehicle:"
	rentalCachePrefix  = "cache:rental:"
)

// CachedVehicle represents a cached vehicle entity.
type CachedVehicle struct {
	Plate     string `json:"plate"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	DailyRate string `json:"daily_rate"`
}

// CachedRental represents a cached rental entity. Dates are rendered as
// RFC 3339 so the entry round-trips back into a domain rental.
type CachedRental struct {
	ID               string `json:"id"`
	CustomerCPF      string `json:"customer_cpf"`
	VehiclePlate     string `json:"vehicle_plate"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	Status           string `json:"status"`
	TotalPrice       string `json:"total_price"`
	ActualReturnDate string `json:"actual_return_date,omitempty"`
	FinalPrice       string `json:"final_price,omitempty"`
}

// GetVehicle retrieves a vehicle from cache.
func (s *CacheStore) GetVehicle(ctx context.Context, plate string) (*CachedVehicle, error) {
	key := vehicleCachePrefix + plate
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var vehicle CachedVehicle
	if err := json.Unmarshal(data, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// SetVehicle stores a vehicle in cache.
func (s *CacheStore) SetVehicle(ctx context.Context, vehicle *CachedVehicle) error {
	key := vehicleCachePrefix + vehicle.Plate
	data, err := json.Marshal(vehicle)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, VehicleCacheTTL).Err()
}

// InvalidateVehicle removes a vehicle from cache.
func (s *CacheStore) InvalidateVehicle(ctx context.Context, plate string) error {
	key := vehicleCachePrefix + plate
	return s.client.Del(ctx, key).Err()
}

// GetRental retrieves a rental from cache.
func (s *CacheStore) GetRental(ctx context.Context, rentalID string) (*CachedRental, error) {
	key := rentalCachePrefix + rentalID
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var rental CachedRental
	if err := json.Unmarshal(data, &rental); err != nil {
		return nil, err
	}
	return &rental, nil
}

// SetRental stores a rental in cache.
func (s *CacheStore) SetRental(ctx context.Context, rental *CachedRental) error {
	key := rentalCachePrefix + rental.ID
	data, err := json.Marshal(rental)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, RentalCacheTTL).Err()
}

// InvalidateRental removes a rental from cache.
func (s *CacheStore) InvalidateRental(ctx context.Context, rentalID string) error {
	key := rentalCachePrefix + rentalID
	return s.client.Del(ctx, key).Err()
}
