package service

import (
	"context"
	"strings"
	"time"

	"carrent/internal/domain"
	"carrent/internal/repository"
)

// CustomerService handles customer records.
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// RegisterCustomerRequest contains the parameters for registering a customer.
type RegisterCustomerRequest struct {
	CPF      string
	FullName string
}

// RegisterCustomer adds a new customer. The CPF is normalized to bare digits
// before storage, so formatted and unformatted inputs resolve to the same
// identity.
func (s *CustomerService) RegisterCustomer(ctx context.Context, req RegisterCustomerRequest) (*domain.Customer, error) {
	if req.CPF == "" {
		return nil, ErrMissingCPF
	}
	if !domain.ValidCPF(req.CPF) {
		return nil, ErrInvalidCPF
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, ErrMissingName
	}

	customer := &domain.Customer{
		CPF:       domain.NormalizeCPF(req.CPF),
		FullName:  strings.TrimSpace(req.FullName),
		CreatedAt: time.Now(),
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		if err == repository.ErrDuplicate {
			return nil, ErrCPFTaken
		}
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by CPF.
func (s *CustomerService) GetCustomer(ctx context.Context, cpf string) (*domain.Customer, error) {
	if cpf == "" {
		return nil, ErrMissingCPF
	}
	if !domain.ValidCPF(cpf) {
		return nil, ErrInvalidCPF
	}

	return s.customerRepo.GetByCPF(ctx, domain.NormalizeCPF(cpf))
}

// GetAllCustomers retrieves all customers.
func (s *CustomerService) GetAllCustomers(ctx context.Context) ([]*domain.Customer, error) {
	return s.customerRepo.GetAll(ctx)
}

// UpdateCustomerRequest contains the parameters for updating a customer.
type UpdateCustomerRequest struct {
	CPF      string
	FullName string
}

// UpdateCustomer updates a customer's details.
func (s *CustomerService) UpdateCustomer(ctx context.Context, req UpdateCustomerRequest) (*domain.Customer, error) {
	if req.CPF == "" {
		return nil, ErrMissingCPF
	}
	if !domain.ValidCPF(req.CPF) {
		return nil, ErrInvalidCPF
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, ErrMissingName
	}

	customer, err := s.customerRepo.GetByCPF(ctx, domain.NormalizeCPF(req.CPF))
	if err != nil {
		return nil, err
	}

	customer.FullName = strings.TrimSpace(req.FullName)
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer removes a customer by CPF.
func (s *CustomerService) DeleteCustomer(ctx context.Context, cpf string) error {
	if cpf == "" {
		return ErrMissingCPF
	}
	if !domain.ValidCPF(cpf) {
		return ErrInvalidCPF
	}

	return s.customerRepo.Delete(ctx, domain.NormalizeCPF(cpf))
}
