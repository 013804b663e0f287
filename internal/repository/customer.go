package repository

import (
	"context"

	"carrent/internal/domain"
)

// CustomerRepository defines the persistence operations for customers.
type CustomerRepository interface {
	// Create persists a new customer.
	Create(ctx context.Context, customer *domain.Customer) error

	// GetByCPF retrieves a customer by unformatted CPF digits.
	GetByCPF(ctx context.Context, cpf string) (*domain.Customer, error)

	// GetAll retrieves all customers.
	GetAll(ctx context.Context) ([]*domain.Customer, error)

	// Update updates an existing customer.
	Update(ctx context.Context, customer *domain.Customer) error

	// Delete removes a customer by CPF.
	Delete(ctx context.Context, cpf string) error
}
