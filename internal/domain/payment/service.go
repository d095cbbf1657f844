// internal/domain/payment/service.go
package payment

import (
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/your-org/jeevita-backend/internal/config"
	"github.com/your-org/jeevita-backend/internal/domain/workflow"
)

// ErrEmptyTransactionID is returned when a submission carries no
// transaction id
var ErrEmptyTransactionID = errors.New("payment: transaction id is required")

// Summary describes what is being paid for
type Summary struct {
	User   string `json:"user"`
	Type   string `json:"type"` // Appointment or Medicine Order
	Amount int64  `json:"amount"`
}

// Submission is the result of handing a transaction id to the payment
// desk. The verification window is purely informational: nothing
// transitions when it runs out, the admin review decides the outcome.
type Submission struct {
	Payment     workflow.Payment `json:"payment"`
	SubmittedAt time.Time        `json:"submittedAt"`
	WindowEnds  time.Time        `json:"windowEnds"`
}

// Remaining reports how much of the verification window is left, never
// negative
func (s *Submission) Remaining(now time.Time) time.Duration {
	if remaining := s.WindowEnds.Sub(now); remaining > 0 {
		return remaining
	}
	return 0
}

// Expired reports whether the verification window has run out
func (s *Submission) Expired(now time.Time) bool {
	return !now.Before(s.WindowEnds)
}

// Service accepts customer payment submissions and queues them for
// admin verification
type Service struct {
	config *config.Config
	engine *workflow.Engine
	logger *logrus.Logger
}

// NewService creates a new payment service
func NewService(cfg *config.Config, engine *workflow.Engine, logger *logrus.Logger) *Service {
	return &Service{
		config: cfg,
		engine: engine,
		logger: logger,
	}
}

// MerchantNumber returns the number customers send money to
func (s *Service) MerchantNumber() string {
	return s.config.Payment.MerchantNumber
}

// Submit validates the transaction id and registers the payment as
// pending with the review engine
func (s *Service) Submit(summary Summary, transactionID string) (*Submission, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return nil, ErrEmptyTransactionID
	}

	p := s.engine.SubmitPayment(summary.User, summary.Type, summary.Amount, transactionID)

	now := time.Now()
	sub := &Submission{
		Payment:     p,
		SubmittedAt: now,
		WindowEnds:  now.Add(s.config.Payment.VerificationWindow),
	}

	s.logger.WithFields(logrus.Fields{
		"payment_id":     p.ID,
		"transaction_id": transactionID,
		"amount":         summary.Amount,
	}).Info("Payment submitted for verification")

	return sub, nil
}
