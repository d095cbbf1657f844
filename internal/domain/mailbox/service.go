// internal/domain/mailbox/service.go
package mailbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/your-org/jeevita-backend/internal/config"
	"github.com/your-org/jeevita-backend/internal/infrastructure/keyvalue"
)

var (
	// ErrNotFound is returned when a message or prescription id does not
	// exist in its bucket
	ErrNotFound = errors.New("mailbox: entry not found")
	// ErrInvalidTransition is returned when a prescription review is
	// attempted from a non-pending status
	ErrInvalidTransition = errors.New("mailbox: invalid status transition")
	// ErrNoOpenChat is returned when a user reply finds no chat thread
	// for the user's email
	ErrNoOpenChat = errors.New("mailbox: no open chat for user")
)

const timestampLayout = "2006-01-02 03:04 PM"

// Service owns the shared message and prescription buckets. Every
// operation is a full read-transform-write cycle against the key-value
// store; concurrent writers are last-write-wins, detected (and logged)
// via a per-bucket version counter but never merged.
type Service struct {
	store  keyvalue.Store
	config *config.Config
	logger *logrus.Logger
}

// NewService creates a new mailbox service
func NewService(store keyvalue.Store, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		store:  store,
		config: cfg,
		logger: logger,
	}
}

// Messages returns the full content of the messages bucket, seeding it
// when the bucket is missing or unreadable
func (s *Service) Messages(ctx context.Context) ([]Message, error) {
	msgs, _, err := s.loadMessages(ctx)
	return msgs, err
}

// Prescriptions returns the full content of the prescriptions bucket
func (s *Service) Prescriptions(ctx context.Context) ([]Prescription, error) {
	recs, _, err := s.loadPrescriptions(ctx)
	return recs, err
}

// RequestChat appends a new unread chat thread for the user. An empty
// message gets the default chat-request text.
func (s *Service) RequestChat(ctx context.Context, userName, userEmail, message string) (*Message, error) {
	if message == "" {
		message = "User requested live chat support"
	}

	msgs, version, err := s.loadMessages(ctx)
	if err != nil {
		return nil, err
	}

	msg := Message{
		ID:        uuid.New().String(),
		UserName:  userName,
		UserEmail: userEmail,
		Message:   message,
		Timestamp: time.Now().Format(timestampLayout),
		Status:    MessageStatusUnread,
		Replies:   []Reply{},
	}
	msgs = append(msgs, msg)

	if err := s.saveMessages(ctx, msgs, version); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"message_id": msg.ID,
		"user_email": userEmail,
	}).Info("Chat request created")

	return &msg, nil
}

// UserReply appends a user-side reply to the user's most recent chat
// thread, matched by email
func (s *Service) UserReply(ctx context.Context, userEmail, text string) (*Message, error) {
	msgs, version, err := s.loadMessages(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].UserEmail == userEmail {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNoOpenChat
	}

	msgs[idx].Replies = append(msgs[idx].Replies, Reply{
		Admin:     false,
		Text:      text,
		Timestamp: time.Now().Format(timestampLayout),
	})

	if err := s.saveMessages(ctx, msgs, version); err != nil {
		return nil, err
	}

	msg := msgs[idx]
	return &msg, nil
}

// AdminReply appends an admin-side reply to the thread and marks the
// message read
func (s *Service) AdminReply(ctx context.Context, messageID, text string) (*Message, error) {
	msgs, version, err := s.loadMessages(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOfMessage(msgs, messageID)
	if idx < 0 {
		return nil, ErrNotFound
	}

	msgs[idx].Replies = append(msgs[idx].Replies, Reply{
		Admin:     true,
		Text:      text,
		Timestamp: time.Now().Format(timestampLayout),
	})
	msgs[idx].Status = MessageStatusRead

	if err := s.saveMessages(ctx, msgs, version); err != nil {
		return nil, err
	}

	msg := msgs[idx]
	return &msg, nil
}

// MarkRead marks the message as read. Marking an already-read message
// is a no-op.
func (s *Service) MarkRead(ctx context.Context, messageID string) error {
	msgs, version, err := s.loadMessages(ctx)
	if err != nil {
		return err
	}

	idx := indexOfMessage(msgs, messageID)
	if idx < 0 {
		return ErrNotFound
	}
	if msgs[idx].Status == MessageStatusRead {
		return nil
	}
	msgs[idx].Status = MessageStatusRead

	return s.saveMessages(ctx, msgs, version)
}

// DeleteMessage removes the message from the bucket regardless of its
// status
func (s *Service) DeleteMessage(ctx context.Context, messageID string) error {
	msgs, version, err := s.loadMessages(ctx)
	if err != nil {
		return err
	}

	idx := indexOfMessage(msgs, messageID)
	if idx < 0 {
		return ErrNotFound
	}
	msgs = append(msgs[:idx], msgs[idx+1:]...)

	return s.saveMessages(ctx, msgs, version)
}

// UnreadCount returns the number of unread chat threads
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	msgs, _, err := s.loadMessages(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, m := range msgs {
		if m.Status == MessageStatusUnread {
			count++
		}
	}
	return count, nil
}

// SubmitPrescription appends a new pending prescription record
func (s *Service) SubmitPrescription(ctx context.Context, userID, userName, userEmail, image string) (*Prescription, error) {
	recs, version, err := s.loadPrescriptions(ctx)
	if err != nil {
		return nil, err
	}

	rec := Prescription{
		ID:         uuid.New().String(),
		UserID:     userID,
		UserName:   userName,
		UserEmail:  userEmail,
		Image:      image,
		Status:     PrescriptionStatusPending,
		UploadDate: time.Now().Format("2006-01-02"),
	}
	recs = append(recs, rec)

	if err := s.savePrescriptions(ctx, recs, version); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"prescription_id": rec.ID,
		"user_email":      userEmail,
	}).Info("Prescription submitted")

	return &rec, nil
}

// ApprovePrescription moves a pending prescription to approved
func (s *Service) ApprovePrescription(ctx context.Context, prescriptionID string) (*Prescription, error) {
	return s.reviewPrescription(ctx, prescriptionID, PrescriptionStatusApproved)
}

// RejectPrescription moves a pending prescription to rejected
func (s *Service) RejectPrescription(ctx context.Context, prescriptionID string) (*Prescription, error) {
	return s.reviewPrescription(ctx, prescriptionID, PrescriptionStatusRejected)
}

func (s *Service) reviewPrescription(ctx context.Context, prescriptionID string, to PrescriptionStatus) (*Prescription, error) {
	recs, version, err := s.loadPrescriptions(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOfPrescription(recs, prescriptionID)
	if idx < 0 {
		return nil, ErrNotFound
	}
	if recs[idx].Status != PrescriptionStatusPending {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, recs[idx].Status, to)
	}
	recs[idx].Status = to

	if err := s.savePrescriptions(ctx, recs, version); err != nil {
		return nil, err
	}

	rec := recs[idx]
	return &rec, nil
}

// DeletePrescription removes the prescription regardless of its status
func (s *Service) DeletePrescription(ctx context.Context, prescriptionID string) error {
	recs, version, err := s.loadPrescriptions(ctx)
	if err != nil {
		return err
	}

	idx := indexOfPrescription(recs, prescriptionID)
	if idx < 0 {
		return ErrNotFound
	}
	recs = append(recs[:idx], recs[idx+1:]...)

	return s.savePrescriptions(ctx, recs, version)
}

// loadMessages reads the messages bucket along with the bucket's version
// counter at the time of the read
func (s *Service) loadMessages(ctx context.Context) ([]Message, int64, error) {
	bucket := s.config.Mailbox.MessagesBucket
	version, err := s.bucketVersion(ctx, bucket)
	if err != nil {
		return nil, 0, err
	}

	data, err := s.store.Get(ctx, bucket)
	if err != nil {
		if errors.Is(err, keyvalue.ErrKeyNotFound) {
			return seedMessages(), version, nil
		}
		return nil, 0, fmt.Errorf("failed to load messages bucket: %w", err)
	}

	var msgs []Message
	if err := json.Unmarshal([]byte(data), &msgs); err != nil {
		s.logger.WithError(err).WithField("bucket", bucket).
			Error("Messages bucket is unreadable, falling back to seed data")
		return seedMessages(), version, nil
	}
	return msgs, version, nil
}

func (s *Service) saveMessages(ctx context.Context, msgs []Message, loadedVersion int64) error {
	return s.saveBucket(ctx, s.config.Mailbox.MessagesBucket, msgs, loadedVersion)
}

// loadPrescriptions reads the prescriptions bucket along with the
// bucket's version counter at the time of the read
func (s *Service) loadPrescriptions(ctx context.Context) ([]Prescription, int64, error) {
	bucket := s.config.Mailbox.PrescriptionsBucket
	version, err := s.bucketVersion(ctx, bucket)
	if err != nil {
		return nil, 0, err
	}

	data, err := s.store.Get(ctx, bucket)
	if err != nil {
		if errors.Is(err, keyvalue.ErrKeyNotFound) {
			return seedPrescriptions(), version, nil
		}
		return nil, 0, fmt.Errorf("failed to load prescriptions bucket: %w", err)
	}

	var recs []Prescription
	if err := json.Unmarshal([]byte(data), &recs); err != nil {
		s.logger.WithError(err).WithField("bucket", bucket).
			Error("Prescriptions bucket is unreadable, falling back to seed data")
		return seedPrescriptions(), version, nil
	}
	return recs, version, nil
}

func (s *Service) savePrescriptions(ctx context.Context, recs []Prescription, loadedVersion int64) error {
	return s.saveBucket(ctx, s.config.Mailbox.PrescriptionsBucket, recs, loadedVersion)
}

// saveBucket writes a full snapshot of the bucket. A version counter
// bumped on every write lets us detect writers racing on the same
// bucket; the loser's snapshot still wins wholesale, it is only logged.
func (s *Service) saveBucket(ctx context.Context, bucket string, v interface{}, loadedVersion int64) error {
	current, err := s.bucketVersion(ctx, bucket)
	if err != nil {
		return err
	}
	if current != loadedVersion {
		s.logger.WithFields(logrus.Fields{
			"bucket":          bucket,
			"loaded_version":  loadedVersion,
			"current_version": current,
		}).Warn("Concurrent write detected on bucket, overwriting with latest snapshot")
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal bucket %s: %w", bucket, err)
	}
	if err := s.store.Set(ctx, bucket, string(data)); err != nil {
		return fmt.Errorf("failed to save bucket %s: %w", bucket, err)
	}
	if _, err := s.store.Incr(ctx, bucket+":version"); err != nil {
		return fmt.Errorf("failed to bump version for bucket %s: %w", bucket, err)
	}
	return nil
}

func (s *Service) bucketVersion(ctx context.Context, bucket string) (int64, error) {
	data, err := s.store.Get(ctx, bucket+":version")
	if err != nil {
		if errors.Is(err, keyvalue.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read version for bucket %s: %w", bucket, err)
	}
	version, err := strconv.ParseInt(data, 10, 64)
	if err != nil {
		return 0, nil
	}
	return version, nil
}

func indexOfMessage(msgs []Message, id string) int {
	for i, m := range msgs {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func indexOfPrescription(recs []Prescription, id string) int {
	for i, r := range recs {
		if r.ID == id {
			return i
		}
	}
	return -1
}
