package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"carrent/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationRentalBooked   NotificationType = "RENTAL_BOOKED"
	NotificationRentalSettled  NotificationType = "RENTAL_SETTLED"
	NotificationRentalCanceled NotificationType = "RENTAL_CANCELED"
	NotificationReceiptReady   NotificationType = "RECEIPT_READY"
)

// Notification represents a notification to be sent.
type Notification struct {
	Type        NotificationType
	RecipientID string // customer CPF
	Title       string
	Message     string
	Data        map[string]interface{}
	CreatedAt   time.Time
}

// NotificationService handles notification delivery.
type NotificationService struct {
	// In a real system, this would have:
	// - Email client (SendGrid)
	// - SMS client (Twilio)
	// - Push notification client
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyRentalBooked notifies the customer that their booking is confirmed.
func (s *NotificationService) NotifyRentalBooked(ctx context.Context, rental *domain.Rental, customer *domain.Customer) error {
	notification := Notification{
		Type:        NotificationRentalBooked,
		RecipientID: rental.CustomerCPF,
		Title:       "Booking Confirmed",
		Message: fmt.Sprintf("%s, your rental of vehicle %s from %s to %s is confirmed. Total: %s",
			customer.FullName,
			rental.VehiclePlate,
			rental.Period.StartDate.Format("2006-01-02"),
			rental.Period.EndDate.Format("2006-01-02"),
			rental.TotalPrice.StringFixed(2)),
		Data: map[string]interface{}{
			"rental_id":     rental.ID,
			"vehicle_plate": rental.VehiclePlate,
			"total_price":   rental.TotalPrice.StringFixed(2),
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// NotifyRentalSettled notifies the customer that their rental is settled.
func (s *NotificationService) NotifyRentalSettled(ctx context.Context, rental *domain.Rental) error {
	notification := Notification{
		Type:        NotificationRentalSettled,
		RecipientID: rental.CustomerCPF,
		Title:       "Rental Settled",
		Message: fmt.Sprintf("Vehicle %s returned on %s. Final charge: %s",
			rental.VehiclePlate,
			rental.ActualReturnDate.Format("2006-01-02"),
			rental.FinalPrice.StringFixed(2)),
		Data: map[string]interface{}{
			"rental_id":   rental.ID,
			"final_price": rental.FinalPrice.StringFixed(2),
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// NotifyRentalCanceled notifies the customer that their rental was canceled.
func (s *NotificationService) NotifyRentalCanceled(ctx context.Context, rental *domain.Rental) error {
	notification := Notification{
		Type:        NotificationRentalCanceled,
		RecipientID: rental.CustomerCPF,
		Title:       "Rental Canceled",
		Message:     fmt.Sprintf("Your rental of vehicle %s has been canceled.", rental.VehiclePlate),
		Data: map[string]interface{}{
			"rental_id": rental.ID,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// NotifyReceiptReady notifies the customer that a settlement receipt is ready.
func (s *NotificationService) NotifyReceiptReady(ctx context.Context, receipt *Receipt) error {
	notification := Notification{
		Type:        NotificationReceiptReady,
		RecipientID: receipt.CustomerCPF,
		Title:       "Receipt Ready",
		Message:     fmt.Sprintf("Receipt %s for rental %s. Total: %s", receipt.ID, receipt.RentalID, receipt.Total.StringFixed(2)),
		Data: map[string]interface{}{
			"receipt_id": receipt.ID,
			"rental_id":  receipt.RentalID,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// send delivers a notification. Currently logs; swap with a real delivery
// channel in production.
func (s *NotificationService) send(ctx context.Context, n Notification) error {
	log.Printf("[NOTIFICATION] type=%s recipient=%s title=%q message=%q", n.Type, n.RecipientID, n.Title, n.Message)
	return nil
}
