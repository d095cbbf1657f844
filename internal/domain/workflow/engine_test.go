// internal/domain/workflow/engine_test.go
package workflow

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewEngine(logger)
}

func TestApproveUser_RemovesFromQueueAndRecordsActivity(t *testing.T) {
	e := newTestEngine()
	require.Len(t, e.PendingUsers(), 2)

	activitiesBefore := len(e.UserActivities())

	require.NoError(t, e.ApproveUser("1"))
	users := e.PendingUsers()
	require.Len(t, users, 1)
	assert.Equal(t, "Jane Smith", users[0].Name)

	activities := e.UserActivities()
	require.Len(t, activities, activitiesBefore+1)
	last := activities[len(activities)-1]
	assert.Equal(t, "John Doe", last.UserName)
	assert.Equal(t, "Registration approved", last.Action)
}

func TestRejectUser_UnknownID(t *testing.T) {
	e := newTestEngine()
	assert.ErrorIs(t, e.RejectUser("missing"), ErrNotFound)
	assert.Len(t, e.PendingUsers(), 2)
}

func TestVerifyPayment_AppendsSingleVerifiedActivity(t *testing.T) {
	e := newTestEngine()
	before := len(e.PaymentActivities())

	activity, err := e.VerifyPayment("1")
	require.NoError(t, err)

	assert.Equal(t, "Verified", activity.Action)
	assert.Equal(t, "Alice Johnson", activity.User)
	assert.Equal(t, int64(1200), activity.Amount)
	assert.Equal(t, "BK123456789", activity.TransactionID)

	assert.Len(t, e.PaymentActivities(), before+1)
	require.Len(t, e.PendingPayments(), 1)
	assert.Equal(t, "Bob Wilson", e.PendingPayments()[0].User)

	// verifying again: the payment left the queue
	_, err = e.VerifyPayment("1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRejectPayment_DoesNotCountTowardRevenue(t *testing.T) {
	e := newTestEngine()
	seedRevenue := e.VerifiedRevenue()

	_, err := e.RejectPayment("2")
	require.NoError(t, err)
	assert.Equal(t, seedRevenue, e.VerifiedRevenue())

	_, err = e.VerifyPayment("1")
	require.NoError(t, err)
	assert.Equal(t, seedRevenue+1200, e.VerifiedRevenue())
}

func TestSubmitPayment_QueuesPending(t *testing.T) {
	e := newTestEngine()

	p := e.SubmitPayment("Test User", "Medicine Order", 320, "TX555000111")
	assert.Equal(t, PaymentStatusPending, p.Status)
	assert.NotEmpty(t, p.ID)
	assert.Len(t, e.PendingPayments(), 3)
}

func TestAppointmentLifecycle(t *testing.T) {
	e := newTestEngine()

	// pending -> confirmed -> completed
	require.NoError(t, e.ConfirmAppointment("1"))
	require.NoError(t, e.CompleteAppointment("1"))

	// completed is terminal
	assert.ErrorIs(t, e.ConfirmAppointment("1"), ErrInvalidTransition)
	assert.ErrorIs(t, e.CancelAppointment("1"), ErrInvalidTransition)

	require.NoError(t, e.DeleteAppointment("1"))
	assert.ErrorIs(t, e.DeleteAppointment("1"), ErrNotFound)
}

func TestCancelAppointment_OnlyFromPending(t *testing.T) {
	e := newTestEngine()

	// seed appointment 2 is already confirmed
	assert.ErrorIs(t, e.CancelAppointment("2"), ErrInvalidTransition)

	require.NoError(t, e.CompleteAppointment("2"))
	require.NoError(t, e.DeleteAppointment("2"))
}

func TestDeleteAppointment_RejectsActiveStatuses(t *testing.T) {
	e := newTestEngine()

	assert.ErrorIs(t, e.DeleteAppointment("1"), ErrInvalidTransition) // pending
	assert.ErrorIs(t, e.DeleteAppointment("2"), ErrInvalidTransition) // confirmed
	assert.NoError(t, e.DeleteAppointment("3"))                       // completed
}

func TestRefundLifecycle(t *testing.T) {
	e := newTestEngine()

	require.NoError(t, e.ApproveRefund("1"))
	refunds := e.RefundRequests()
	assert.Equal(t, RefundStatusApproved, refunds[0].Status)

	// the decision is final
	assert.ErrorIs(t, e.RejectRefund("1"), ErrInvalidTransition)

	require.NoError(t, e.RejectRefund("2"))
	require.NoError(t, e.DeleteRefund("1"))
	require.NoError(t, e.DeleteRefund("2"))
	assert.Empty(t, e.RefundRequests())
}

func TestStats_UsesCatalogCounts(t *testing.T) {
	e := newTestEngine()

	stats := e.Stats(4, 4)
	assert.Equal(t, 4, stats.TotalDoctors)
	assert.Equal(t, 4, stats.TotalMedicines)
	assert.Equal(t, int64(1840500), stats.TotalRevenue)
}
