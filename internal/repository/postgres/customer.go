package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrent/internal/domain"
	"carrent/internal/repository"
)

// CustomerRepository is a PostgreSQL implementation of repository.CustomerRepository.
type CustomerRepository struct {
	q Querier
}

// NewCustomerRepository creates a new PostgreSQL customer repository.
func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{q: db}
}

// NewCustomerRepositoryWithTx creates a customer repository using a transaction.
func NewCustomerRepositoryWithTx(tx *sql.Tx) *CustomerRepository {
	return &CustomerRepository{q: tx}
}

// Create persists a new customer.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	query := `
		INSERT INTO customers (cpf, full_name, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.q.ExecContext(ctx, query,
		customer.CPF,
		customer.FullName,
		customer.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}

	return nil
}

// GetByCPF retrieves a customer by unformatted CPF digits.
func (r *CustomerRepository) GetByCPF(ctx context.Context, cpf string) (*domain.Customer, error) {
	query := `
		SELECT cpf, full_name, created_at
		FROM customers WHERE cpf = $1
	`

	var customer domain.Customer
	err := r.q.QueryRowContext(ctx, query, cpf).Scan(
		&customer.CPF,
		&customer.FullName,
		&customer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &customer, nil
}

// GetAll retrieves all customers ordered by name.
func (r *CustomerRepository) GetAll(ctx context.Context) ([]*domain.Customer, error) {
	query := `
		SELECT cpf, full_name, created_at
		FROM customers ORDER BY full_name
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*domain.Customer
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(
			&customer.CPF,
			&customer.FullName,
			&customer.CreatedAt,
		); err != nil {
			return nil, err
		}
		customers = append(customers, &customer)
	}

	return customers, rows.Err()
}

// Update updates an existing customer.
func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	query := `
		UPDATE customers SET full_name = $2
		WHERE cpf = $1
	`

	result, err := r.q.ExecContext(ctx, query, customer.CPF, customer.FullName)
	if err != nil {
		return err
	}

	return requireAffected(result)
}

// Delete removes a customer by CPF.
func (r *CustomerRepository) Delete(ctx context.Context, cpf string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM customers WHERE cpf = $1`, cpf)
	if err != nil {
		return err
	}

	return requireAffected(result)
}
