package repository

import (
	"context"
	"time"

	"carrent/internal/domain"
)

// RentalRepository defines the persistence operations for rentals.
type RentalRepository interface {
	// Create persists a new rental.
	Create(ctx context.Context, rental *domain.Rental) error

	// GetByID retrieves a rental by ID.
	GetByID(ctx context.Context, id string) (*domain.Rental, error)

	// GetAll retrieves all rentals.
	GetAll(ctx context.Context) ([]*domain.Rental, error)

	// Update updates an existing rental.
	Update(ctx context.Context, rental *domain.Rental) error

	// ExistsActiveOverlap reports whether the vehicle has an ACTIVE rental
	// whose period overlaps [start, end). The comparison is strict half-open:
	// existingStart < end AND existingEnd > start, so a rental ending exactly
	// when another begins does not overlap.
	ExistsActiveOverlap(ctx context.Context, plate string, start, end time.Time) (bool, error)
}
