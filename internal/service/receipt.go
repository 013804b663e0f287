package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"carrent/internal/domain"
)

// Receipt summarizes a settled rental's final charge.
type Receipt struct {
	ID             string
	RentalID       string
	CustomerCPF    string
	VehiclePlate   string
	ReturnedOn     time.Time
	Base           decimal.Decimal
	Penalty        decimal.Decimal
	MaintenanceFee decimal.Decimal
	CleaningFee    decimal.Decimal
	Total          decimal.Decimal
	GeneratedAt    time.Time
}

// ReceiptService handles receipt generation for settled rentals.
type ReceiptService struct {
	notification *NotificationService
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(notification *NotificationService) *ReceiptService {
	return &ReceiptService{notification: notification}
}

// GenerateReceipt builds a receipt from a settled rental and its charge
// breakdown, and notifies the customer that it is ready.
func (s *ReceiptService) GenerateReceipt(ctx context.Context, rental *domain.Rental, breakdown ChargeBreakdown) *Receipt {
	receipt := &Receipt{
		ID:             uuid.New().String(),
		RentalID:       rental.ID,
		CustomerCPF:    rental.CustomerCPF,
		VehiclePlate:   rental.VehiclePlate,
		ReturnedOn:     rental.ActualReturnDate,
		Base:           breakdown.Base,
		Penalty:        breakdown.Penalty,
		MaintenanceFee: breakdown.MaintenanceFee,
		CleaningFee:    breakdown.CleaningFee,
		Total:          breakdown.Total,
		GeneratedAt:    time.Now(),
	}

	if s.notification != nil {
		_ = s.notification.NotifyReceiptReady(ctx, receipt)
	}

	return receipt
}
