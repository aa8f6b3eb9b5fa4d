package controllers

import (
	"errors"
	"strconv"

	"github.com/payflow-dev/payflow/services"
	"github.com/payflow-dev/payflow/utils"

	"github.com/gin-gonic/gin"
)

// PaymentController exposes the payment transaction endpoints.
type PaymentController struct {
	payments *services.PaymentService
}

// NewPaymentController creates the payment controller.
func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

// CreatePaymentRequest represents the payment creation request body.
// The referenced user ID is taken at face value; there is no foreign
// key check against the users table.
type CreatePaymentRequest struct {
	UserID        uint    `json:"userId" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Currency      string  `json:"currency" binding:"required"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
}

// Create handles POST /payments
func (pc *PaymentController) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Payment creation failed - invalid request: %v", err)
		utils.BadRequest(c, "userId, a positive amount, currency, and paymentMethod are required")
		return
	}

	payment, err := pc.payments.Create(req.UserID, req.Amount, req.Currency, req.PaymentMethod)
	if err != nil {
		utils.LogError("Payment creation failed: %v", err)
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Created(c, payment)
}

// GetAll handles GET /payments
func (pc *PaymentController) GetAll(c *gin.Context) {
	payments, err := pc.payments.GetAll()
	if err != nil {
		utils.LogError("Failed to list payments: %v", err)
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, payments)
}

// GetByID handles GET /payments/:id
func (pc *PaymentController) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := pc.payments.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrPaymentNotFound) {
			utils.NotFound(c, "Payment not found with id: "+c.Param("id"))
			return
		}
		utils.LogError("Failed to load payment %d: %v", id, err)
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, payment)
}

// GetByUser handles GET /payments/user/:userId
func (pc *PaymentController) GetByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid user ID")
		return
	}

	payments, err := pc.payments.GetByUserID(uint(userID))
	if err != nil {
		utils.LogError("Failed to list payments for user %d: %v", userID, err)
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, payments)
}

// Refund handles POST /payments/:id/refund
func (pc *PaymentController) Refund(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := pc.payments.Refund(uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPaymentNotFound):
			utils.NotFound(c, "Payment not found with id: "+c.Param("id"))
		case errors.Is(err, services.ErrInvalidPaymentState):
			utils.BadRequest(c, "Only successful payments can be refunded")
		default:
			utils.LogError("Refund failed for payment %d: %v", id, err)
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, payment)
}
