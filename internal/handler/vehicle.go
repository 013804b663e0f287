package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"carrent/internal/domain"
	"carrent/internal/service"
)

// VehicleHandler handles HTTP requests for vehicles.
type VehicleHandler struct {
	vehicleService *service.VehicleService
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(vehicleService *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// RegisterVehicleRequest is the HTTP request body for registering a vehicle.
type RegisterVehicleRequest struct {
	Plate     string `json:"plate"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	DailyRate string `json:"daily_rate"`
}

// UpdateVehicleRequest is the HTTP request body for updating a vehicle.
type UpdateVehicleRequest struct {
	Make      string `json:"make"`
	Model     string `json:"model"`
	DailyRate string `json:"daily_rate"`
}

// VehicleResponse is the HTTP response for vehicle data.
type VehicleResponse struct {
	Plate     string `json:"plate"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	DailyRate string `json:"daily_rate"`
}

func vehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		Plate:     v.Plate,
		Make:      v.Make,
		Model:     v.Model,
		DailyRate: v.DailyRate.StringFixed(2),
	}
}

// Register handles POST /v1/vehicles
func (h *VehicleHandler) Register(c *gin.Context) {
	var req RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	rate, err := decimal.NewFromString(req.DailyRate)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid daily rate"})
		return
	}

	vehicle, err := h.vehicleService.RegisterVehicle(c.Request.Context(), service.RegisterVehicleRequest{
		Plate:     req.Plate,
		Make:      req.Make,
		Model:     req.Model,
		DailyRate: rate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicleResponse(vehicle))
}

// Get handles GET /v1/vehicles/:plate
func (h *VehicleHandler) Get(c *gin.Context) {
	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), c.Param("plate"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicleResponse(vehicle))
}

// GetAll handles GET /v1/vehicles
func (h *VehicleHandler) GetAll(c *gin.Context) {
	vehicles, err := h.vehicleService.GetAllVehicles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		response = append(response, vehicleResponse(v))
	}

	c.JSON(http.StatusOK, response)
}

// Update handles PUT /v1/vehicles/:plate
func (h *VehicleHandler) Update(c *gin.Context) {
	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	rate, err := decimal.NewFromString(req.DailyRate)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid daily rate"})
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), service.UpdateVehicleRequest{
		Plate:     c.Param("plate"),
		Make:      req.Make,
		Model:     req.Model,
		DailyRate: rate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicleResponse(vehicle))
}

// Delete handles DELETE /v1/vehicles/:plate
func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), c.Param("plate")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
