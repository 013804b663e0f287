package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"carrent/internal/domain"
	"carrent/internal/repository"
)

// RentalRepository is a PostgreSQL implementation of repository.RentalRepository.
type RentalRepository struct {
	q Querier
}

// NewRentalRepository creates a new PostgreSQL rental repository.
func NewRentalRepository(db *sql.DB) *RentalRepository {
	return &RentalRepository{q: db}
}

// NewRentalRepositoryWithTx creates a rental repository using a transaction.
func NewRentalRepositoryWithTx(tx *sql.Tx) *RentalRepository {
	return &RentalRepository{q: tx}
}

// Create persists a new rental.
func (r *RentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	query := `
		INSERT INTO rentals (id, customer_cpf, vehicle_plate, start_date, end_date, total_price, status, actual_return_date, final_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	var actualReturnDate sql.NullTime
	if !rental.ActualReturnDate.IsZero() {
		actualReturnDate = sql.NullTime{Time: rental.ActualReturnDate, Valid: true}
	}

	var finalPrice decimal.NullDecimal
	if rental.Status == domain.RentalStatusFinished {
		finalPrice = decimal.NullDecimal{Decimal: rental.FinalPrice, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		rental.ID,
		rental.CustomerCPF,
		rental.VehiclePlate,
		rental.Period.StartDate,
		rental.Period.EndDate,
		rental.TotalPrice,
		rental.Status,
		actualReturnDate,
		finalPrice,
		rental.CreatedAt,
	)

	return err
}

// GetByID retrieves a rental by ID.
func (r *RentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	query := `
		SELECT id, customer_cpf, vehicle_plate, start_date, end_date, total_price, status, actual_return_date, final_price, created_at
		FROM rentals WHERE id = $1
	`

	rental, err := scanRental(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return rental, nil
}

// GetAll retrieves all rentals, most recent first.
func (r *RentalRepository) GetAll(ctx context.Context) ([]*domain.Rental, error) {
	query := `
		SELECT id, customer_cpf, vehicle_plate, start_date, end_date, total_price, status, actual_return_date, final_price, created_at
		FROM rentals ORDER BY created_at DESC
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []*domain.Rental
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, rental)
	}

	return rentals, rows.Err()
}

// Update updates an existing rental.
func (r *RentalRepository) Update(ctx context.Context, rental *domain.Rental) error {
	query := `
		UPDATE rentals
		SET status = $2, actual_return_date = $3, final_price = $4
		WHERE id = $1
	`

	var actualReturnDate sql.NullTime
	if !rental.ActualReturnDate.IsZero() {
		actualReturnDate = sql.NullTime{Time: rental.ActualReturnDate, Valid: true}
	}

	var finalPrice decimal.NullDecimal
	if rental.Status == domain.RentalStatusFinished {
		finalPrice = decimal.NullDecimal{Decimal: rental.FinalPrice, Valid: true}
	}

	result, err := r.q.ExecContext(ctx, query,
		rental.ID,
		rental.Status,
		actualReturnDate,
		finalPrice,
	)
	if err != nil {
		return err
	}

	return requireAffected(result)
}

// ExistsActiveOverlap reports whether the vehicle has an ACTIVE rental whose
// period overlaps [start, end). Strict half-open comparison: a rental ending
// exactly when another begins does not overlap.
func (r *RentalRepository) ExistsActiveOverlap(ctx context.Context, plate string, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM rentals
			WHERE vehicle_plate = $1
			  AND status = $2
			  AND start_date < $4
			  AND end_date > $3
		)
	`

	var exists bool
	err := r.q.QueryRowContext(ctx, query, plate, domain.RentalStatusActive, start, end).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	var rental domain.Rental
	var actualReturnDate sql.NullTime
	var finalPrice decimal.NullDecimal

	err := row.Scan(
		&rental.ID,
		&rental.CustomerCPF,
		&rental.VehiclePlate,
		&rental.Period.StartDate,
		&rental.Period.EndDate,
		&rental.TotalPrice,
		&rental.Status,
		&actualReturnDate,
		&finalPrice,
		&rental.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if actualReturnDate.Valid {
		rental.ActualReturnDate = actualReturnDate.Time
	}
	if finalPrice.Valid {
		rental.FinalPrice = finalPrice.Decimal
	}

	return &rental, nil
}
