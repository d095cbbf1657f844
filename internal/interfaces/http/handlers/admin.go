// internal/interfaces/http/handlers/admin.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/jeevita-backend/internal/domain/catalog"
	"github.com/your-org/jeevita-backend/internal/domain/workflow"
)

// AdminHandler handles the admin console review queues and the
// session-local catalog management
type AdminHandler struct {
	engine  *workflow.Engine
	overlay *catalog.Overlay
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(engine *workflow.Engine, overlay *catalog.Overlay) *AdminHandler {
	return &AdminHandler{
		engine:  engine,
		overlay: overlay,
	}
}

// Dashboard handles GET /admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Dashboard retrieved successfully",
		"data": gin.H{
			"stats":            h.engine.Stats(len(h.overlay.Doctors()), len(h.overlay.Medicines())),
			"verified_revenue": h.engine.VerifiedRevenue(),
			"pending_users":    h.engine.PendingUsers(),
			"pending_payments": h.engine.PendingPayments(),
		},
	})
}

// ListPendingUsers handles GET /admin/users/pending
func (h *AdminHandler) ListPendingUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Pending users retrieved successfully",
		"data":    h.engine.PendingUsers(),
	})
}

// ApproveUser handles PUT /admin/users/:id/approve
func (h *AdminHandler) ApproveUser(c *gin.Context) {
	if err := h.engine.ApproveUser(c.Param("id")); err != nil {
		h.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User approved successfully",
	})
}

// RejectUser handles PUT /admin/users/:id/reject
func (h *AdminHandler) RejectUser(c *gin.Context) {
	if err := h.engine.RejectUser(c.Param("id")); err != nil {
		h.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User rejected",
	})
}

// ListUserActivities handles GET /admin/users/activities
func (h *AdminHandler) ListUserActivities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "User activities retrieved successfully",
		"data":    h.engine.UserActivities(),
	})
}

// ListPendingPayments handles GET /admin/payments/pending
func (h *AdminHandler) ListPendingPayments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Pending payments retrieved successfully",
		"data":    h.engine.PendingPayments(),
	})
}

// VerifyPayment handles PUT /admin/payments/:id/verify
func (h *AdminHandler) VerifyPayment(c *gin.Context) {
	activity, err := h.engine.VerifyPayment(c.Param("id"))
	if err != nil {
		h.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment verified successfully",
		"data":    activity,
	})
}

// RejectPayment handles PUT /admin/payments/:id/reject
func (h *AdminHandler) RejectPayment(c *gin.Context) {
	activity, err := h.engine.RejectPayment(c.Param("id"))
	if err != nil {
		h.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment rejected",
		"data":    activity,
	})
}

// ListPaymentActivities handles GET /admin/payments/activities
func (h *AdminHandler) ListPaymentActivities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment activities retrieved successfully",
		"data": gin.H{
			"activities":       h.engine.PaymentActivities(),
			"verified_revenue": h.engine.VerifiedRevenue(),
		},
	})
}

// ListAppointments handles GET /admin/appointments
func (h *AdminHandler) ListAppointments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Appointments retrieved successfully",
		"data":    h.engine.Appointments(),
	})
}

// ConfirmAppointment handles PUT /admin/appointments/:id/confirm
func (h *AdminHandler) ConfirmAppointment(c *gin.Context) {
	if err := h.engine.ConfirmAppointment(c.Param("id")); err != nil {
		h.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Appointment confirmed",
	})
}

// CompleteAppointment handles PUT /admin/appointments/:id/complete
func (h *AdminHandler) CompleteAppointment(c *gin.Context) {
	if err := h.engine.CompleteAppointment(c.Param("id")); err != nil {
		h.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Appointment completed",
	})
}

// CancelAppointment handles PUT /admin/appointments/:id/cancel
func (h *AdminHandler) CancelAppointment(c *gin.Context) {
	if err := h.engine.CancelAppointment(c.Param("id")); err != nil {
		h.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Appointment cancelled",
	})
}

// DeleteAppointment handles DELETE /admin/appointments/:id
func (h *AdminHandler) DeleteAppointment(c *gin.Context) {
	if err := h.engine.DeleteAppointment(c.Param("id")); err != nil {
		h.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Appointment deleted successfully",
	})
}

// ListRefunds handles GET /admin/refunds
func (h *AdminHandler) ListRefunds(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Refund requests retrieved successfully",
		"data":    h.engine.RefundRequests(),
	})
}

// ApproveRefund handles PUT /admin/refunds/:id/approve
func (h *AdminHandler) ApproveRefund(c *gin.Context) {
	if err := h.engine.ApproveRefund(c.Param("id")); err != nil {
		h.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Refund approved",
	})
}

// RejectRefund handles PUT /admin/refunds/:id/reject
func (h *AdminHandler) RejectRefund(c *gin.Context) {
	if err := h.engine.RejectRefund(c.Param("id")); err != nil {
		h.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Refund rejected",
	})
}

// DeleteRefund handles DELETE /admin/refunds/:id
func (h *AdminHandler) DeleteRefund(c *gin.Context) {
	if err := h.engine.DeleteRefund(c.Param("id")); err != nil {
		h.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Refund request deleted successfully",
	})
}

// AddDoctor handles POST /admin/doctors
func (h *AdminHandler) AddDoctor(c *gin.Context) {
	var req catalog.Doctor
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	doc := h.overlay.AddDoctor(req)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Doctor added successfully",
		"data":    doc,
	})
}

// DeleteDoctor handles DELETE /admin/doctors/:id
func (h *AdminHandler) DeleteDoctor(c *gin.Context) {
	h.overlay.DeleteDoctor(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"message": "Doctor deleted successfully",
	})
}

// AddMedicine handles POST /admin/medicines
func (h *AdminHandler) AddMedicine(c *gin.Context) {
	var req catalog.Medicine
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	med := h.overlay.AddMedicine(req)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Medicine added successfully",
		"data":    med,
	})
}

// DeleteMedicine handles DELETE /admin/medicines/:id
func (h *AdminHandler) DeleteMedicine(c *gin.Context) {
	h.overlay.DeleteMedicine(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"message": "Medicine deleted successfully",
	})
}

// AddCarouselSlide handles POST /admin/carousel
func (h *AdminHandler) AddCarouselSlide(c *gin.Context) {
	var req catalog.CarouselSlide
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	slide := h.overlay.AddSlide(req)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Carousel slide added successfully",
		"data":    slide,
	})
}

// DeleteCarouselSlide handles DELETE /admin/carousel/:id
func (h *AdminHandler) DeleteCarouselSlide(c *gin.Context) {
	h.overlay.DeleteSlide(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"message": "Carousel slide deleted successfully",
	})
}

func (h *AdminHandler) respondWorkflowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, workflow.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Entry not found",
		})
	case errors.Is(err, workflow.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Operation failed",
		})
	}
}
