// internal/interfaces/http/handlers/prescription.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/jeevita-backend/internal/domain/mailbox"
	"github.com/your-org/jeevita-backend/internal/interfaces/http/middleware"
)

// PrescriptionHandler handles prescription upload and review endpoints
type PrescriptionHandler struct {
	mailboxService *mailbox.Service
}

// NewPrescriptionHandler creates a new prescription handler
func NewPrescriptionHandler(mailboxService *mailbox.Service) *PrescriptionHandler {
	return &PrescriptionHandler{
		mailboxService: mailboxService,
	}
}

// submitPrescriptionRequest carries the uploaded image as a data URI
type submitPrescriptionRequest struct {
	Image string `json:"image" binding:"required"`
}

// List handles GET /admin/prescriptions
func (h *PrescriptionHandler) List(c *gin.Context) {
	recs, err := h.mailboxService.Prescriptions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve prescriptions",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Prescriptions retrieved successfully",
		"data":    recs,
	})
}

// Submit handles POST /prescriptions
func (h *PrescriptionHandler) Submit(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	userName, _ := middleware.GetUserNameFromContext(c)
	userEmail, _ := middleware.GetUserEmailFromContext(c)

	var req submitPrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	rec, err := h.mailboxService.SubmitPrescription(c.Request.Context(), userID, userName, userEmail, req.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to submit prescription",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Prescription submitted successfully",
		"data":    rec,
	})
}

// Approve handles PUT /admin/prescriptions/:id/approve
func (h *PrescriptionHandler) Approve(c *gin.Context) {
	rec, err := h.mailboxService.ApprovePrescription(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Prescription approved",
		"data":    rec,
	})
}

// Reject handles PUT /admin/prescriptions/:id/reject
func (h *PrescriptionHandler) Reject(c *gin.Context) {
	rec, err := h.mailboxService.RejectPrescription(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Prescription rejected",
		"data":    rec,
	})
}

// Delete handles DELETE /admin/prescriptions/:id
func (h *PrescriptionHandler) Delete(c *gin.Context) {
	if err := h.mailboxService.DeletePrescription(c.Request.Context(), c.Param("id")); err != nil {
		h.respondReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Prescription deleted successfully",
	})
}

func (h *PrescriptionHandler) respondReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, mailbox.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Entry not found",
		})
	case errors.Is(err, mailbox.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Prescription has already been reviewed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Prescription operation failed",
		})
	}
}
