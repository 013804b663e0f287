package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carrent/internal/domain"
	"carrent/internal/repository"
	"carrent/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrVehicleNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrMissingPlate),
		errors.Is(err, service.ErrMissingCPF),
		errors.Is(err, service.ErrInvalidPlate),
		errors.Is(err, service.ErrInvalidCPF),
		errors.Is(err, service.ErrMissingName),
		errors.Is(err, service.ErrInvalidDailyRate),
		errors.Is(err, service.ErrInvalidQuoteInput),
		errors.Is(err, service.ErrMissingRentalID),
		errors.Is(err, service.ErrMissingReturnDate),
		errors.Is(err, service.ErrInvalidReturnDate),
		errors.Is(err, domain.ErrInvalidPeriod):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, service.ErrVehicleUnavailable),
		errors.Is(err, service.ErrRentalAlreadyFinished),
		errors.Is(err, service.ErrSettlementInProgress),
		errors.Is(err, service.ErrRentalNotActive),
		errors.Is(err, service.ErrPlateTaken),
		errors.Is(err, service.ErrCPFTaken):
		return http.StatusConflict

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
