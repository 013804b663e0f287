package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockStore handles distributed locking in Redis.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

// AcquireVehicleLock attempts to acquire a booking lock for the given vehicle.
// Returns true if the lock was acquired, false if already held.
func (s *LockStore) AcquireVehicleLock(ctx context.Context, plate string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:vehicle:%s", plate)

	ok, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleaseVehicleLock releases the booking lock for the given vehicle.
func (s *LockStore) ReleaseVehicleLock(ctx context.Context, plate string) error {
	key := fmt.Sprintf("lock:vehicle:%s", plate)

	return s.client.Del(ctx, key).Err()
}

// AcquireRentalLock attempts to acquire a settlement lock for the given rental.
// Returns true if the lock was acquired, false if already held.
func (s *LockStore) AcquireRentalLock(ctx context.Context, rentalID string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:rental:%s", rentalID)

	ok, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleaseRentalLock releases the settlement lock for the given rental.
func (s *LockStore) ReleaseRentalLock(ctx context.Context, rentalID string) error {
	key := fmt.Sprintf("lock:rental:%s", rentalID)

	return s.client.Del(ctx, key).Err()
}
