package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"carrent/internal/domain"
	"carrent/internal/repository"
)

// VehicleRepository is a PostgreSQL implementation of repository.VehicleRepository.
type VehicleRepository struct {
	q Querier
}

// NewVehicleRepository creates a new PostgreSQL vehicle repository.
func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{q: db}
}

// NewVehicleRepositoryWithTx creates a vehicle repository using a transaction.
func NewVehicleRepositoryWithTx(tx *sql.Tx) *VehicleRepository {
	return &VehicleRepository{q: tx}
}

// Create persists a new vehicle.
func (r *VehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (plate, make, model, daily_rate, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.q.ExecContext(ctx, query,
		vehicle.Plate,
		vehicle.Make,
		vehicle.Model,
		vehicle.DailyRate,
		vehicle.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}

	return nil
}

// GetByPlate retrieves a vehicle by license plate.
func (r *VehicleRepository) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	query := `
		SELECT plate, make, model, daily_rate, created_at
		FROM vehicles WHERE plate = $1
	`

	var vehicle domain.Vehicle
	err := r.q.QueryRowContext(ctx, query, plate).Scan(
		&vehicle.Plate,
		&vehicle.Make,
		&vehicle.Model,
		&vehicle.DailyRate,
		&vehicle.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &vehicle, nil
}

// GetAll retrieves all vehicles ordered by plate.
func (r *VehicleRepository) GetAll(ctx context.Context) ([]*domain.Vehicle, error) {
	query := `
		SELECT plate, make, model, daily_rate, created_at
		FROM vehicles ORDER BY plate
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*domain.Vehicle
	for rows.Next() {
		var vehicle domain.Vehicle
		if err := rows.Scan(
			&vehicle.Plate,
			&vehicle.Make,
			&vehicle.Model,
			&vehicle.DailyRate,
			&vehicle.CreatedAt,
		); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, &vehicle)
	}

	return vehicles, rows.Err()
}

// Update updates an existing vehicle.
func (r *VehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `
		UPDATE vehicles SET make = $2, model = $3, daily_rate = $4
		WHERE plate = $1
	`

	result, err := r.q.ExecContext(ctx, query,
		vehicle.Plate,
		vehicle.Make,
		vehicle.Model,
		vehicle.DailyRate,
	)
	if err != nil {
		return err
	}

	return requireAffected(result)
}

// Delete removes a vehicle by license plate.
func (r *VehicleRepository) Delete(ctx context.Context, plate string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM vehicles WHERE plate = $1`, plate)
	if err != nil {
		return err
	}

	return requireAffected(result)
}

// isUniqueViolation reports whether err is a Postgres unique constraint error.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// requireAffected maps a zero-row write to repository.ErrNotFound.
func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
