package service

import "errors"

var (
	// ErrMissingPlate is returned when a license plate is absent.
	ErrMissingPlate = errors.New("license plate is required")

	// ErrMissingCPF is returned when a CPF is absent.
	ErrMissingCPF = errors.New("cpf is required")

	// ErrInvalidPlate is returned when a license plate is malformed.
	ErrInvalidPlate = errors.New("invalid license plate")

	// ErrInvalidCPF is returned when a CPF fails checksum validation.
	ErrInvalidCPF = errors.New("invalid cpf")

	// ErrMissingName is returned when a customer name is blank.
	ErrMissingName = errors.New("customer name is required")

	// ErrInvalidDailyRate is returned when a vehicle's daily rate is not positive.
	ErrInvalidDailyRate = errors.New("daily rate must be positive")

	// ErrInvalidQuoteInput is returned when Quote is called without a vehicle or period.
	ErrInvalidQuoteInput = errors.New("vehicle and period are required for a quote")

	// ErrCustomerNotFound is returned when no customer matches the given CPF.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrVehicleNotFound is returned when no vehicle matches the given plate.
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrVehicleUnavailable is returned when the vehicle has an overlapping active rental.
	ErrVehicleUnavailable = errors.New("vehicle unavailable for the requested period")

	// ErrPlateTaken is returned when registering a vehicle with an existing plate.
	ErrPlateTaken = errors.New("license plate already registered")

	// ErrCPFTaken is returned when registering a customer with an existing CPF.
	ErrCPFTaken = errors.New("cpf already registered")

	// ErrMissingRentalID is returned when a rental ID is empty.
	ErrMissingRentalID = errors.New("rental id is required")

	// ErrMissingReturnDate is returned when a settlement request has no return date.
	ErrMissingReturnDate = errors.New("actual return date is required")

	// ErrRentalAlreadyFinished is returned when settling an already settled rental.
	ErrRentalAlreadyFinished = errors.New("rental already finished")

	// ErrSettlementInProgress is returned when another settlement of the same
	// rental holds the lock.
	ErrSettlementInProgress = errors.New("settlement already in progress")

	// ErrRentalNotActive is returned when an operation requires an ACTIVE rental.
	ErrRentalNotActive = errors.New("rental is not active")

	// ErrInvalidReturnDate is returned when the return date precedes the rental start.
	ErrInvalidReturnDate = errors.New("return date cannot precede rental start date")
)
