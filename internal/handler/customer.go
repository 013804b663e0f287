package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carrent/internal/domain"
	"carrent/internal/service"
)

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// RegisterCustomerRequest is the HTTP request body for registering a customer.
type RegisterCustomerRequest struct {
	CPF      string `json:"cpf"`
	FullName string `json:"full_name"`
}

// UpdateCustomerRequest is the HTTP request body for updating a customer.
type UpdateCustomerRequest struct {
	FullName string `json:"full_name"`
}

// CustomerResponse is the HTTP response for customer data.
type CustomerResponse struct {
	CPF      string `json:"cpf"`
	FullName string `json:"full_name"`
}

func customerResponse(cust *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CPF:      domain.FormatCPF(cust.CPF),
		FullName: cust.FullName,
	}
}

// Register handles POST /v1/customers
func (h *CustomerHandler) Register(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	customer, err := h.customerService.RegisterCustomer(c.Request.Context(), service.RegisterCustomerRequest{
		CPF:      req.CPF,
		FullName: req.FullName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customerResponse(customer))
}

// Get handles GET /v1/customers/:cpf
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.customerService.GetCustomer(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customerResponse(customer))
}

// GetAll handles GET /v1/customers
func (h *CustomerHandler) GetAll(c *gin.Context) {
	customers, err := h.customerService.GetAllCustomers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]CustomerResponse, 0, len(customers))
	for _, cust := range customers {
		response = append(response, customerResponse(cust))
	}

	c.JSON(http.StatusOK, response)
}

// Update handles PUT /v1/customers/:cpf
func (h *CustomerHandler) Update(c *gin.Context) {
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), service.UpdateCustomerRequest{
		CPF:      c.Param("cpf"),
		FullName: req.FullName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customerResponse(customer))
}

// Delete handles DELETE /v1/customers/:cpf
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.customerService.DeleteCustomer(c.Request.Context(), c.Param("cpf")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
