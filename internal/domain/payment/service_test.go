// internal/domain/payment/service_test.go
package payment

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/jeevita-backend/internal/config"
	"github.com/your-org/jeevita-backend/internal/domain/workflow"
)

func newTestService() (*Service, *workflow.Engine) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	cfg := &config.Config{
		Payment: config.PaymentConfig{
			MerchantNumber:     "01625691878",
			VerificationWindow: 5 * time.Minute,
			DeliveryFee:        50,
			Currency:           "BDT",
		},
	}
	engine := workflow.NewEngine(logger)
	return NewService(cfg, engine, logger), engine
}

func TestSubmit_QueuesPendingPayment(t *testing.T) {
	svc, engine := newTestService()
	before := len(engine.PendingPayments())

	sub, err := svc.Submit(Summary{User: "Test User", Type: "Medicine Order", Amount: 320}, "TX123456")
	require.NoError(t, err)

	assert.Equal(t, workflow.PaymentStatusPending, sub.Payment.Status)
	assert.Equal(t, "TX123456", sub.Payment.TransactionID)
	assert.Len(t, engine.PendingPayments(), before+1)
}

func TestSubmit_RejectsEmptyTransactionID(t *testing.T) {
	svc, engine := newTestService()
	before := len(engine.PendingPayments())

	_, err := svc.Submit(Summary{User: "Test User", Type: "Appointment", Amount: 1200}, "   ")
	assert.ErrorIs(t, err, ErrEmptyTransactionID)
	assert.Len(t, engine.PendingPayments(), before)
}

func TestSubmission_VerificationWindow(t *testing.T) {
	svc, _ := newTestService()

	sub, err := svc.Submit(Summary{User: "Test User", Type: "Appointment", Amount: 1200}, "TX123456")
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, sub.WindowEnds.Sub(sub.SubmittedAt))
	assert.False(t, sub.Expired(sub.SubmittedAt))
	assert.Equal(t, time.Minute, sub.Remaining(sub.SubmittedAt.Add(4*time.Minute)))

	// the countdown is informational: the payment stays pending past it
	after := sub.SubmittedAt.Add(6 * time.Minute)
	assert.True(t, sub.Expired(after))
	assert.Equal(t, time.Duration(0), sub.Remaining(after))
	assert.Equal(t, workflow.PaymentStatusPending, sub.Payment.Status)
}
