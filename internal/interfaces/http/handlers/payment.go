// internal/interfaces/http/handlers/payment.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/your-org/jeevita-backend/internal/config"
	"github.com/your-org/jeevita-backend/internal/domain/payment"
	"github.com/your-org/jeevita-backend/internal/domain/workflow"
	"github.com/your-org/jeevita-backend/internal/interfaces/http/middleware"
	"github.com/your-org/jeevita-backend/internal/pkg/pdf"
)

// PaymentHandler handles payment submission and receipt endpoints
type PaymentHandler struct {
	paymentService *payment.Service
	engine         *workflow.Engine
	pdfService     *pdf.Service
	config         *config.Config
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *payment.Service, engine *workflow.Engine, pdfService *pdf.Service, cfg *config.Config) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		engine:         engine,
		pdfService:     pdfService,
		config:         cfg,
	}
}

// submitPaymentRequest is the body for submitting a payment
type submitPaymentRequest struct {
	Type          string `json:"type" binding:"required"`
	Amount        int64  `json:"amount" binding:"required"`
	TransactionID string `json:"transaction_id"`
}

// GetInfo handles GET /payment/info
func (h *PaymentHandler) GetInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment info retrieved successfully",
		"data": gin.H{
			"merchant_number":     h.paymentService.MerchantNumber(),
			"currency":            h.config.Payment.Currency,
			"delivery_fee":        h.config.Payment.DeliveryFee,
			"verification_window": h.config.Payment.VerificationWindow.String(),
		},
	})
}

// Submit handles POST /payment/submit
func (h *PaymentHandler) Submit(c *gin.Context) {
	userName, _ := middleware.GetUserNameFromContext(c)

	var req submitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	summary := payment.Summary{
		User:   userName,
		Type:   req.Type,
		Amount: req.Amount,
	}

	sub, err := h.paymentService.Submit(summary, req.TransactionID)
	if err != nil {
		if errors.Is(err, payment.ErrEmptyTransactionID) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Transaction ID is required",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to submit payment",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment submitted for verification",
		"data": gin.H{
			"payment":           sub.Payment,
			"submitted_at":      sub.SubmittedAt,
			"window_ends":       sub.WindowEnds,
			"remaining_seconds": int(sub.Remaining(time.Now()).Seconds()),
		},
	})
}

// Receipt handles GET /admin/payments/activities/:id/receipt
func (h *PaymentHandler) Receipt(c *gin.Context) {
	id := c.Param("id")

	var activity *workflow.PaymentActivity
	for _, a := range h.engine.PaymentActivities() {
		if a.ID == id {
			activity = &a
			break
		}
	}
	if activity == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Payment activity not found",
		})
		return
	}

	buf, err := h.pdfService.GenerateReceipt(activity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", activity.TransactionID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
