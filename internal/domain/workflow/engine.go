// internal/domain/workflow/engine.go
package workflow

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNotFound is returned when the id does not exist in its list
	ErrNotFound = errors.New("workflow: entry not found")
	// ErrInvalidTransition is returned when an operation is attempted
	// from a status that does not allow it
	ErrInvalidTransition = errors.New("workflow: invalid status transition")
)

const timestampLayout = "2006-01-02 03:04 PM"

// Engine holds one admin session's review queues. State lives in memory
// for the session lifetime and starts from the seed lists; transitions
// past pending are irreversible.
type Engine struct {
	mu sync.RWMutex

	pendingUsers      []PendingUser
	pendingPayments   []Payment
	appointments      []Appointment
	refundRequests    []RefundRequest
	userActivities    []UserActivity
	paymentActivities []PaymentActivity

	logger *logrus.Logger
}

// NewEngine creates a review engine seeded with the demo queues
func NewEngine(logger *logrus.Logger) *Engine {
	return &Engine{
		pendingUsers:      seedPendingUsers(),
		pendingPayments:   seedPendingPayments(),
		appointments:      seedAppointments(),
		refundRequests:    seedRefundRequests(),
		userActivities:    seedUserActivities(),
		paymentActivities: seedPaymentActivities(),
		logger:            logger,
	}
}

// PendingUsers returns the registrations awaiting review
func (e *Engine) PendingUsers() []PendingUser {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]PendingUser(nil), e.pendingUsers...)
}

// ApproveUser removes the user from the pending queue and records the
// decision in the activity feed
func (e *Engine) ApproveUser(id string) error {
	return e.reviewUser(id, "approved")
}

// RejectUser removes the user from the pending queue and records the
// decision in the activity feed
func (e *Engine) RejectUser(id string) error {
	return e.reviewUser(id, "rejected")
}

func (e *Engine) reviewUser(id, decision string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, u := range e.pendingUsers {
		if u.ID != id {
			continue
		}
		e.pendingUsers = append(e.pendingUsers[:i], e.pendingUsers[i+1:]...)
		e.userActivities = append(e.userActivities, UserActivity{
			ID:        uuid.New().String(),
			UserName:  u.Name,
			Email:     u.Email,
			Action:    fmt.Sprintf("Registration %s", decision),
			Timestamp: time.Now().Format(timestampLayout),
			Type:      "registration",
		})
		e.logger.WithFields(logrus.Fields{
			"user_id":  id,
			"decision": decision,
		}).Info("User registration reviewed")
		return nil
	}
	return ErrNotFound
}

// PendingPayments returns the payments awaiting verification
func (e *Engine) PendingPayments() []Payment {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]Payment(nil), e.pendingPayments...)
}

// SubmitPayment queues a customer payment for admin verification
func (e *Engine) SubmitPayment(user, paymentType string, amount int64, transactionID string) Payment {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := Payment{
		ID:            uuid.New().String(),
		User:          user,
		Type:          paymentType,
		Amount:        amount,
		TransactionID: transactionID,
		Status:        PaymentStatusPending,
	}
	e.pendingPayments = append(e.pendingPayments, p)
	return p
}

// VerifyPayment removes the payment from the pending queue and appends
// a Verified activity carrying the same amount and transaction id
func (e *Engine) VerifyPayment(id string) (*PaymentActivity, error) {
	return e.reviewPayment(id, "Verified")
}

// RejectPayment removes the payment from the pending queue and appends
// a Rejected activity
func (e *Engine) RejectPayment(id string) (*PaymentActivity, error) {
	return e.reviewPayment(id, "Rejected")
}

func (e *Engine) reviewPayment(id, action string) (*PaymentActivity, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, p := range e.pendingPayments {
		if p.ID != id {
			continue
		}
		e.pendingPayments = append(e.pendingPayments[:i], e.pendingPayments[i+1:]...)
		now := time.Now()
		activity := PaymentActivity{
			ID:            uuid.New().String(),
			User:          p.User,
			Type:          p.Type,
			Amount:        p.Amount,
			TransactionID: p.TransactionID,
			Action:        action,
			Timestamp:     now.Format(timestampLayout),
			Date:          now.Format("2006-01-02"),
		}
		e.paymentActivities = append(e.paymentActivities, activity)
		e.logger.WithFields(logrus.Fields{
			"payment_id":     id,
			"transaction_id": p.TransactionID,
			"action":         action,
		}).Info("Payment reviewed")
		return &activity, nil
	}
	return nil, ErrNotFound
}

// PaymentActivities returns the verify/reject decision log
func (e *Engine) PaymentActivities() []PaymentActivity {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]PaymentActivity(nil), e.paymentActivities...)
}

// VerifiedRevenue sums the amounts of verified payments. Rejected
// activities never count; the figure is recomputed on every call.
func (e *Engine) VerifiedRevenue() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var total int64
	for _, a := range e.paymentActivities {
		if a.Action == "Verified" {
			total += a.Amount
		}
	}
	return total
}

// Appointments returns all tracked appointments
func (e *Engine) Appointments() []Appointment {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]Appointment(nil), e.appointments...)
}

// ConfirmAppointment moves a pending appointment to confirmed
func (e *Engine) ConfirmAppointment(id string) error {
	return e.transitionAppointment(id, AppointmentStatusPending, AppointmentStatusConfirmed)
}

// CompleteAppointment moves a confirmed appointment to completed
func (e *Engine) CompleteAppointment(id string) error {
	return e.transitionAppointment(id, AppointmentStatusConfirmed, AppointmentStatusCompleted)
}

// CancelAppointment moves a pending appointment to cancelled
func (e *Engine) CancelAppointment(id string) error {
	return e.transitionAppointment(id, AppointmentStatusPending, AppointmentStatusCancelled)
}

func (e *Engine) transitionAppointment(id string, from, to AppointmentStatus) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.appointments {
		if e.appointments[i].ID != id {
			continue
		}
		if e.appointments[i].Status != from {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, e.appointments[i].Status, to)
		}
		e.appointments[i].Status = to
		return nil
	}
	return ErrNotFound
}

// DeleteAppointment removes a completed or cancelled appointment
func (e *Engine) DeleteAppointment(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, apt := range e.appointments {
		if apt.ID != id {
			continue
		}
		if apt.Status != AppointmentStatusCompleted && apt.Status != AppointmentStatusCancelled {
			return fmt.Errorf("%w: cannot delete %s appointment", ErrInvalidTransition, apt.Status)
		}
		e.appointments = append(e.appointments[:i], e.appointments[i+1:]...)
		return nil
	}
	return ErrNotFound
}

// RefundRequests returns all refund requests including reviewed ones
func (e *Engine) RefundRequests() []RefundRequest {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]RefundRequest(nil), e.refundRequests...)
}

// ApproveRefund moves a pending refund to approved. The record stays in
// the list so the decision remains visible.
func (e *Engine) ApproveRefund(id string) error {
	return e.reviewRefund(id, RefundStatusApproved)
}

// RejectRefund moves a pending refund to rejected
func (e *Engine) RejectRefund(id string) error {
	return e.reviewRefund(id, RefundStatusRejected)
}

func (e *Engine) reviewRefund(id string, to RefundStatus) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.refundRequests {
		if e.refundRequests[i].ID != id {
			continue
		}
		if e.refundRequests[i].Status != RefundStatusPending {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, e.refundRequests[i].Status, to)
		}
		e.refundRequests[i].Status = to
		return nil
	}
	return ErrNotFound
}

// DeleteRefund removes the refund request regardless of its status
func (e *Engine) DeleteRefund(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, req := range e.refundRequests {
		if req.ID != id {
			continue
		}
		e.refundRequests = append(e.refundRequests[:i], e.refundRequests[i+1:]...)
		return nil
	}
	return ErrNotFound
}

// UserActivities returns the user activity feed
func (e *Engine) UserActivities() []UserActivity {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]UserActivity(nil), e.userActivities...)
}

// RecordUserActivity appends an event to the user activity feed
func (e *Engine) RecordUserActivity(userName, email, action, activityType string) UserActivity {
	e.mu.Lock()
	defer e.mu.Unlock()

	a := UserActivity{
		ID:        uuid.New().String(),
		UserName:  userName,
		Email:     email,
		Action:    action,
		Timestamp: time.Now().Format(timestampLayout),
		Type:      activityType,
	}
	e.userActivities = append(e.userActivities, a)
	return a
}

// Stats builds the dashboard summary. Catalog counts come from the
// caller; the remaining figures are the fixed demo numbers.
func (e *Engine) Stats(doctorCount, medicineCount int) Stats {
	return Stats{
		TotalUsers:          1248,
		TotalDoctors:        doctorCount,
		TotalAppointments:   892,
		TotalMedicineOrders: 2340,
		TotalMedicines:      medicineCount,
		AppointmentRevenue:  1056000,
		MedicineRevenue:     784500,
		TotalRevenue:        1840500,
	}
}
