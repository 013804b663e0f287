package redis

import (
	"context"
	"time"
)

// LockStoreInterface defines the interface for distributed locking.
type LockStoreInterface interface {
	AcquireVehicleLock(ctx context.Context, plate string, ttl time.Duration) (bool, error)
	ReleaseVehicleLock(ctx context.Context, plate string) error
	AcquireRentalLock(ctx context.Context, rentalID string, ttl time.Duration) (bool, error)
	ReleaseRentalLock(ctx context.Context, rentalID string) error
}

// Ensure concrete types implement interfaces.
var (
	_ LockStoreInterface = (*LockStore)(nil)
)
