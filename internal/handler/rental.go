package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"carrent/internal/domain"
	"carrent/internal/service"
)

const dateLayout = "2006-01-02"

// RentalHandler handles HTTP requests for rentals.
type RentalHandler struct {
	bookingService    *service.BookingService
	settlementService *service.SettlementService
	rentalService     *service.RentalService
}

// NewRentalHandler creates a new RentalHandler.
func NewRentalHandler(
	bookingService *service.BookingService,
	settlementService *service.SettlementService,
	rentalService *service.RentalService,
) *RentalHandler {
	return &RentalHandler{
		bookingService:    bookingService,
		settlementService: settlementService,
		rentalService:     rentalService,
	}
}

// BookRentalRequest is the HTTP request body for booking a rental.
type BookRentalRequest struct {
	Plate         string `json:"plate"`
	CPF           string `json:"cpf"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	WithInsurance bool   `json:"with_insurance"`
}

// ReturnRentalRequest is the HTTP request body for settling a rental.
type ReturnRentalRequest struct {
	ActualReturnDate string `json:"actual_return_date"`
	NeedsMaintenance bool   `json:"needs_maintenance"`
	NeedsCleaning    bool   `json:"needs_cleaning"`
}

// RentalResponse is the HTTP response for rental data.
type RentalResponse struct {
	ID               string `json:"id"`
	CustomerCPF      string `json:"customer_cpf"`
	VehiclePlate     string `json:"vehicle_plate"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	TotalPrice       string `json:"total_price"`
	Status           string `json:"status"`
	ActualReturnDate string `json:"actual_return_date,omitempty"`
	FinalPrice       string `json:"final_price,omitempty"`
}

// ReceiptResponse is the HTTP response for a settlement receipt.
type ReceiptResponse struct {
	ID             string `json:"id"`
	RentalID       string `json:"rental_id"`
	Base           string `json:"base"`
	Penalty        string `json:"penalty"`
	MaintenanceFee string `json:"maintenance_fee"`
	CleaningFee    string `json:"cleaning_fee"`
	Total          string `json:"total"`
}

// ReturnRentalResponse is the HTTP response for settling a rental.
type ReturnRentalResponse struct {
	Rental  RentalResponse   `json:"rental"`
	Receipt *ReceiptResponse `json:"receipt,omitempty"`
}

func rentalResponse(r *domain.Rental) RentalResponse {
	resp := RentalResponse{
		ID:           r.ID,
		CustomerCPF:  domain.FormatCPF(r.CustomerCPF),
		VehiclePlate: r.VehiclePlate,
		StartDate:    r.Period.StartDate.Format(dateLayout),
		EndDate:      r.Period.EndDate.Format(dateLayout),
		TotalPrice:   r.TotalPrice.StringFixed(2),
		Status:       string(r.Status),
	}
	if !r.ActualReturnDate.IsZero() {
		resp.ActualReturnDate = r.ActualReturnDate.Format(dateLayout)
	}
	if r.Status == domain.RentalStatusFinished {
		resp.FinalPrice = r.FinalPrice.StringFixed(2)
	}
	return resp
}

// Book handles POST /v1/rentals
func (h *RentalHandler) Book(c *gin.Context) {
	var req BookRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	startDate, endDate, ok := parseDates(c, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	rental, err := h.bookingService.Book(c.Request.Context(), service.BookRentalRequest{
		Plate:         req.Plate,
		CPF:           req.CPF,
		StartDate:     startDate,
		EndDate:       endDate,
		WithInsurance: req.WithInsurance,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rentalResponse(rental))
}

// Get handles GET /v1/rentals/:id
func (h *RentalHandler) Get(c *gin.Context) {
	rental, err := h.rentalService.GetRental(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rentalResponse(rental))
}

// GetAll handles GET /v1/rentals
func (h *RentalHandler) GetAll(c *gin.Context) {
	rentals, err := h.rentalService.GetAllRentals(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]RentalResponse, 0, len(rentals))
	for _, r := range rentals {
		response = append(response, rentalResponse(r))
	}

	c.JSON(http.StatusOK, response)
}

// Return handles POST /v1/rentals/:id/return
func (h *RentalHandler) Return(c *gin.Context) {
	var req ReturnRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.ActualReturnDate == "" {
		respondError(c, service.ErrMissingReturnDate)
		return
	}

	returnDate, err := time.Parse(dateLayout, req.ActualReturnDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid actual_return_date, expected YYYY-MM-DD"})
		return
	}

	result, err := h.settlementService.Settle(c.Request.Context(), service.SettleRentalRequest{
		RentalID:         c.Param("id"),
		ActualReturnDate: returnDate,
		NeedsMaintenance: req.NeedsMaintenance,
		NeedsCleaning:    req.NeedsCleaning,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response := ReturnRentalResponse{Rental: rentalResponse(result.Rental)}
	if result.Receipt != nil {
		response.Receipt = &ReceiptResponse{
			ID:             result.Receipt.ID,
			RentalID:       result.Receipt.RentalID,
			Base:           result.Receipt.Base.StringFixed(2),
			Penalty:        result.Receipt.Penalty.StringFixed(2),
			MaintenanceFee: result.Receipt.MaintenanceFee.StringFixed(2),
			CleaningFee:    result.Receipt.CleaningFee.StringFixed(2),
			Total:          result.Receipt.Total.StringFixed(2),
		}
	}

	c.JSON(http.StatusOK, response)
}

// Cancel handles POST /v1/rentals/:id/cancel
func (h *RentalHandler) Cancel(c *gin.Context) {
	rental, err := h.rentalService.CancelRental(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rentalResponse(rental))
}

// parseDates parses the booking date strings, writing a 400 on failure.
func parseDates(c *gin.Context, start, end string) (time.Time, time.Time, bool) {
	var startDate, endDate time.Time
	var err error

	if start != "" {
		startDate, err = time.Parse(dateLayout, start)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid start_date, expected YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
	}
	if end != "" {
		endDate, err = time.Parse(dateLayout, end)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid end_date, expected YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
	}

	return startDate, endDate, true
}
