// internal/domain/mailbox/service_test.go
package mailbox

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/jeevita-backend/internal/config"
	"github.com/your-org/jeevita-backend/internal/infrastructure/keyvalue"
)

func newTestService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := keyvalue.NewFromClient(rdb)

	cfg := &config.Config{
		Mailbox: config.MailboxConfig{
			MessagesBucket:      "adminMessages",
			PrescriptionsBucket: "adminPrescriptions",
		},
	}
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	return NewService(store, cfg, logger), mr
}

func TestMessages_SeedsWhenBucketMissing(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	msgs, err := svc.Messages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Sarah Ahmed", msgs[0].UserName)
	assert.Equal(t, MessageStatusUnread, msgs[0].Status)
	assert.Empty(t, msgs[0].Replies)
}

func TestMessages_SeedsWhenBucketCorrupt(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("adminMessages", "{not json"))

	msgs, err := svc.Messages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Sarah Ahmed", msgs[0].UserName)
}

func TestRequestChat_AppendsUnreadThread(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	msg, err := svc.RequestChat(ctx, "Karim Uddin", "karim@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, "User requested live chat support", msg.Message)
	assert.Equal(t, MessageStatusUnread, msg.Status)
	assert.NotEmpty(t, msg.ID)
	assert.NotEmpty(t, msg.Timestamp)

	msgs, err := svc.Messages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, msg.ID, msgs[1].ID)
}

func TestAdminReply_MarksThreadRead(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	msg, err := svc.RequestChat(ctx, "Karim Uddin", "karim@example.com", "Need a refill")
	require.NoError(t, err)

	replied, err := svc.AdminReply(ctx, msg.ID, "On it")
	require.NoError(t, err)
	assert.Equal(t, MessageStatusRead, replied.Status)
	require.Len(t, replied.Replies, 1)
	assert.True(t, replied.Replies[0].Admin)
	assert.Equal(t, "On it", replied.Replies[0].Text)
}

func TestAdminReply_UnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AdminReply(context.Background(), "nope", "hello?")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserReply_ThreadsByEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	msg, err := svc.RequestChat(ctx, "Karim Uddin", "karim@example.com", "Need a refill")
	require.NoError(t, err)

	replied, err := svc.UserReply(ctx, "karim@example.com", "Any update?")
	require.NoError(t, err)
	assert.Equal(t, msg.ID, replied.ID)
	require.Len(t, replied.Replies, 1)
	assert.False(t, replied.Replies[0].Admin)

	// reply attaches to the user's latest thread, not an older one
	second, err := svc.RequestChat(ctx, "Karim Uddin", "karim@example.com", "New issue")
	require.NoError(t, err)
	replied, err = svc.UserReply(ctx, "karim@example.com", "About the new issue")
	require.NoError(t, err)
	assert.Equal(t, second.ID, replied.ID)
}

func TestUserReply_NoThreadForEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UserReply(context.Background(), "stranger@example.com", "hi")
	assert.ErrorIs(t, err, ErrNoOpenChat)
}

func TestMarkRead_Idempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	msg, err := svc.RequestChat(ctx, "Karim Uddin", "karim@example.com", "Need a refill")
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(ctx, msg.ID))
	require.NoError(t, svc.MarkRead(ctx, msg.ID))

	count, err := svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count) // the seed message is still unread
}

func TestDeleteMessage(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	msg, err := svc.RequestChat(ctx, "Karim Uddin", "karim@example.com", "Need a refill")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMessage(ctx, msg.ID))
	assert.ErrorIs(t, svc.DeleteMessage(ctx, msg.ID), ErrNotFound)

	msgs, err := svc.Messages(ctx)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestPrescriptionLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	rec, err := svc.SubmitPrescription(ctx, "2", "Test User", "user@example.com", "data:image/png;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, PrescriptionStatusPending, rec.Status)
	assert.NotEmpty(t, rec.UploadDate)

	approved, err := svc.ApprovePrescription(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, PrescriptionStatusApproved, approved.Status)

	// review is only legal from pending
	_, err = svc.ApprovePrescription(ctx, rec.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.RejectPrescription(ctx, rec.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// delete works from any status
	require.NoError(t, svc.DeletePrescription(ctx, rec.ID))

	recs, err := svc.Prescriptions(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRejectPrescription(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	rec, err := svc.SubmitPrescription(ctx, "2", "Test User", "user@example.com", "data:image/png;base64,AAAA")
	require.NoError(t, err)

	rejected, err := svc.RejectPrescription(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, PrescriptionStatusRejected, rejected.Status)
}

func TestSaveBucket_RoundTripIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// a missing bucket loads as the seed data
	msgs, version, err := svc.loadMessages(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, msgs)

	// saving the loaded snapshot back unchanged must yield the same list
	require.NoError(t, svc.saveMessages(ctx, msgs, version))

	reloaded, _, err := svc.loadMessages(ctx)
	require.NoError(t, err)
	assert.Equal(t, msgs, reloaded)
}

func TestSaveBucket_RoundTripAfterMutation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	msg, err := svc.RequestChat(ctx, "Karim Uddin", "karim@example.com", "Need a refill")
	require.NoError(t, err)
	_, err = svc.AdminReply(ctx, msg.ID, "On it")
	require.NoError(t, err)

	msgs, version, err := svc.loadMessages(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.saveMessages(ctx, msgs, version))

	reloaded, _, err := svc.loadMessages(ctx)
	require.NoError(t, err)
	assert.Equal(t, msgs, reloaded)
}

func TestSaveBucket_PrescriptionRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SubmitPrescription(ctx, "2", "Test User", "user@example.com", "data:image/png;base64,AAAA")
	require.NoError(t, err)

	recs, version, err := svc.loadPrescriptions(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.savePrescriptions(ctx, recs, version))

	reloaded, _, err := svc.loadPrescriptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, recs, reloaded)
}

func TestSaveBucket_LastWriteWins(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	// writer A loads, then writer B loads and saves first
	msgsA, versionA, err := svc.loadMessages(ctx)
	require.NoError(t, err)

	_, err = svc.RequestChat(ctx, "Writer B", "b@example.com", "B's message")
	require.NoError(t, err)

	// A's stale snapshot overwrites B's wholesale, no merge
	msgsA = append(msgsA, Message{ID: "a1", UserName: "Writer A", Status: MessageStatusUnread})
	require.NoError(t, svc.saveMessages(ctx, msgsA, versionA))

	msgs, err := svc.Messages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "a1", msgs[1].ID)

	// the version counter recorded both writes
	version, err := mr.Get("adminMessages:version")
	require.NoError(t, err)
	assert.Equal(t, "2", version)
}
