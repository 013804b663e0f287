package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"carrent/internal/domain"
	"carrent/internal/redis"
	"carrent/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK VEHICLE REPOSITORY
// ──────────────────────────────────────────────

// MockVehicleRepository is a mock implementation of VehicleRepository.
type MockVehicleRepository struct {
	mu       sync.RWMutex
	vehicles map[string]*domain.Vehicle

	// Counters for verification
	CreateCallCount int32
	UpdateCallCount int32
	DeleteCallCount int32

	// Error injection
	CreateError error
	UpdateError error
	DeleteError error
}

// NewMockVehicleRepository creates a new mock vehicle repository.
func NewMockVehicleRepository() *MockVehicleRepository {
	return &MockVehicleRepository{
		vehicles: make(map[string]*domain.Vehicle),
	}
}

// AddVehicle adds a vehicle to the mock repository.
func (m *MockVehicleRepository) AddVehicle(vehicle *domain.Vehicle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vehicles[vehicle.Plate] = vehicle
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.vehicles[vehicle.Plate]; exists {
		return repository.ErrDuplicate
	}
	m.vehicles[vehicle.Plate] = vehicle
	return nil
}

func (m *MockVehicleRepository) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	vehicle, ok := m.vehicles[plate]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *vehicle
	return &copy, nil
}

func (m *MockVehicleRepository) GetAll(ctx context.Context) ([]*domain.Vehicle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Vehicle, 0, len(m.vehicles))
	for _, v := range m.vehicles {
		copy := *v
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockVehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.vehicles[vehicle.Plate]; !ok {
		return repository.ErrNotFound
	}
	m.vehicles[vehicle.Plate] = vehicle
	return nil
}

func (m *MockVehicleRepository) Delete(ctx context.Context, plate string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.vehicles[plate]; !ok {
		return repository.ErrNotFound
	}
	delete(m.vehicles, plate)
	return nil
}

// ──────────────────────────────────────────────
// MOCK CUSTOMER REPOSITORY
// ──────────────────────────────────────────────

// MockCustomerRepository is a mock implementation of CustomerRepository.
type MockCustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockCustomerRepository creates a new mock customer repository.
func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{
		customers: make(map[string]*domain.Customer),
	}
}

// AddCustomer adds a customer to the mock repository.
func (m *MockCustomerRepository) AddCustomer(customer *domain.Customer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[customer.CPF] = customer
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.customers[customer.CPF]; exists {
		return repository.ErrDuplicate
	}
	m.customers[customer.CPF] = customer
	return nil
}

func (m *MockCustomerRepository) GetByCPF(ctx context.Context, cpf string) (*domain.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	customer, ok := m.customers[cpf]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *customer
	return &copy, nil
}

func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]*domain.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		copy := *c
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[customer.CPF]; !ok {
		return repository.ErrNotFound
	}
	m.customers[customer.CPF] = customer
	return nil
}

func (m *MockCustomerRepository) Delete(ctx context.Context, cpf string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[cpf]; !ok {
		return repository.ErrNotFound
	}
	delete(m.customers, cpf)
	return nil
}

// ──────────────────────────────────────────────
// MOCK RENTAL REPOSITORY
// ──────────────────────────────────────────────

// MockRentalRepository is a mock implementation of RentalRepository.
type MockRentalRepository struct {
	mu      sync.RWMutex
	rentals map[string]*domain.Rental

	// Counters for verification
	CreateCallCount  int32
	UpdateCallCount  int32
	OverlapCallCount int32

	// Error injection
	CreateError  error
	UpdateError  error
	OverlapError error
}

// NewMockRentalRepository creates a new mock rental repository.
func NewMockRentalRepository() *MockRentalRepository {
	return &MockRentalRepository{
		rentals: make(map[string]*domain.Rental),
	}
}

// AddRental adds a rental to the mock repository.
func (m *MockRentalRepository) AddRental(rental *domain.Rental) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rentals[rental.ID] = rental
}

func (m *MockRentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rentals[rental.ID] = rental
	return nil
}

func (m *MockRentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rental, ok := m.rentals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *rental
	return &copy, nil
}

func (m *MockRentalRepository) GetAll(ctx context.Context) ([]*domain.Rental, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Rental, 0, len(m.rentals))
	for _, r := range m.rentals {
		copy := *r
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockRentalRepository) Update(ctx context.Context, rental *domain.Rental) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rentals[rental.ID]; !ok {
		return repository.ErrNotFound
	}
	m.rentals[rental.ID] = rental
	return nil
}

// ExistsActiveOverlap walks the stored rentals with the same strict half-open
// comparison the SQL query uses.
func (m *MockRentalRepository) ExistsActiveOverlap(ctx context.Context, plate string, start, end time.Time) (bool, error) {
	atomic.AddInt32(&m.OverlapCallCount, 1)
	if m.OverlapError != nil {
		return false, m.OverlapError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.rentals {
		if r.VehiclePlate != plate || r.Status != domain.RentalStatusActive {
			continue
		}
		if r.Period.StartDate.Before(end) && r.Period.EndDate.After(start) {
			return true, nil
		}
	}
	return false, nil
}

// GetRental returns a rental for test assertions.
func (m *MockRentalRepository) GetRental(id string) *domain.Rental {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rentals[id]
}

// CountRentals returns the number of stored rentals.
func (m *MockRentalRepository) CountRentals() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rentals)
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is a mock implementation of LockStoreInterface. Locks are
// held in memory; AcquireResult can force acquisition to fail.
type MockLockStore struct {
	mu    sync.Mutex
	locks map[string]bool

	// When false, every acquire attempt reports the lock as taken.
	AcquireResult bool

	// Counters for verification
	AcquireVehicleCallCount int32
	ReleaseVehicleCallCount int32
	AcquireRentalCallCount  int32
	ReleaseRentalCallCount  int32

	// Error injection
	AcquireError error
}

// NewMockLockStore creates a new mock lock store that grants every lock.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{
		locks:         make(map[string]bool),
		AcquireResult: true,
	}
}

func (m *MockLockStore) acquire(key string) (bool, error) {
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	if !m.AcquireResult {
		return false, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[key] {
		return false, nil
	}
	m.locks[key] = true
	return true, nil
}

func (m *MockLockStore) release(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, key)
}

func (m *MockLockStore) AcquireVehicleLock(ctx context.Context, plate string, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireVehicleCallCount, 1)
	return m.acquire("vehicle:" + plate)
}

func (m *MockLockStore) ReleaseVehicleLock(ctx context.Context, plate string) error {
	atomic.AddInt32(&m.ReleaseVehicleCallCount, 1)
	m.release("vehicle:" + plate)
	return nil
}

func (m *MockLockStore) AcquireRentalLock(ctx context.Context, rentalID string, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireRentalCallCount, 1)
	return m.acquire("rental:" + rentalID)
}

func (m *MockLockStore) ReleaseRentalLock(ctx context.Context, rentalID string) error {
	atomic.AddInt32(&m.ReleaseRentalCallCount, 1)
	m.release("rental:" + rentalID)
	return nil
}

// Ensure mocks satisfy their interfaces.
var (
	_ repository.VehicleRepository  = (*MockVehicleRepository)(nil)
	_ repository.CustomerRepository = (*MockCustomerRepository)(nil)
	_ repository.RentalRepository   = (*MockRentalRepository)(nil)
	_ redis.LockStoreInterface      = (*MockLockStore)(nil)
)
