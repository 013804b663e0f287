package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// RentalStatus represents the current status of a rental contract.
type RentalStatus string

const (
	RentalStatusActive   RentalStatus = "ACTIVE"
	RentalStatusFinished RentalStatus = "FINISHED"
	RentalStatusCanceled RentalStatus = "CANCELED"
)

// MaxRentalDays is the longest span a rental period may cover.
const MaxRentalDays = 60

// ErrInvalidPeriod is returned when a rental period fails its invariants.
var ErrInvalidPeriod = errors.New("invalid rental period")

// RentalPeriod is the half-open date range [StartDate, EndDate) of a rental.
// Dates carry no time component; a 1-day period bills exactly one day.
type RentalPeriod struct {
	StartDate time.Time
	EndDate   time.Time
}

// NewRentalPeriod validates and builds a rental period. Both dates are
// required, the end must be strictly after the start, and the span cannot
// exceed MaxRentalDays. Inputs are truncated to calendar days in UTC.
func NewRentalPeriod(start, end time.Time) (RentalPeriod, error) {
	if start.IsZero() || end.IsZero() {
		return RentalPeriod{}, ErrInvalidPeriod
	}

	p := RentalPeriod{StartDate: DateOnly(start), EndDate: DateOnly(end)}
	if !p.EndDate.After(p.StartDate) {
		return RentalPeriod{}, ErrInvalidPeriod
	}
	if p.Days() > MaxRentalDays {
		return RentalPeriod{}, ErrInvalidPeriod
	}

	return p, nil
}

// Days returns the number of billable days, end date exclusive.
func (p RentalPeriod) Days() int {
	return DaysBetween(p.StartDate, p.EndDate)
}

// IsZero reports whether the period was never constructed.
func (p RentalPeriod) IsZero() bool {
	return p.StartDate.IsZero() || p.EndDate.IsZero()
}

// DateOnly truncates t to its calendar day in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole calendar days from one date to another.
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

// Rental represents a rental contract. ActualReturnDate and FinalPrice stay
// at their zero values until the rental is settled.
type Rental struct {
	ID               string
	CustomerCPF      string
	VehiclePlate     string
	Period           RentalPeriod
	TotalPrice       decimal.Decimal // price quoted at booking time
	Status           RentalStatus
	ActualReturnDate time.Time
	FinalPrice       decimal.Decimal
	CreatedAt        time.Time
}
