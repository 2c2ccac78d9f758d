package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/smartstore/backoffice-api/internal/application/service"
	"github.com/smartstore/backoffice-api/internal/presentation/http/dto/request"
	"github.com/smartstore/backoffice-api/internal/presentation/http/dto/response"
)

// PaymentHandler handles payment collection HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Collect handles collecting a customer payment and spreading it across
// their open invoices
func (h *PaymentHandler) Collect(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.PaymentInput{
		UserID:       *userID,
		CustomerName: req.CustomerName,
		Amount:       req.Amount,
		Mode:         req.Mode,
		Note:         req.Note,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	result, err := h.paymentService.CollectPayment(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment collected successfully", result)
}

// Outstanding handles fetching a customer's pending amount before payment
func (h *PaymentHandler) Outstanding(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	customer := c.Query("customer")
	if customer == "" {
		response.BadRequest(c, "customer query parameter is required")
		return
	}

	due, err := h.paymentService.OutstandingBalance(c.Request.Context(), *userID, customer)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Outstanding balance retrieved successfully", gin.H{
		"customer_name": customer,
		"outstanding":   due,
	})
}
