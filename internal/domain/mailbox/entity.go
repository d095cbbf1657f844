// internal/domain/mailbox/entity.go
package mailbox

// MessageStatus represents a chat message's read state
type MessageStatus string

const (
	MessageStatusUnread MessageStatus = "unread"
	MessageStatusRead   MessageStatus = "read"
)

// PrescriptionStatus represents a prescription's review state
type PrescriptionStatus string

const (
	PrescriptionStatusPending  PrescriptionStatus = "pending"
	PrescriptionStatusApproved PrescriptionStatus = "approved"
	PrescriptionStatusRejected PrescriptionStatus = "rejected"
)

// Reply is one entry of a message's reply thread. Replies are appended,
// never edited or removed individually.
type Reply struct {
	Admin     bool   `json:"admin"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Message represents a live-chat request sitting in the messages bucket
type Message struct {
	ID        string        `json:"id"`
	UserName  string        `json:"userName"`
	UserEmail string        `json:"userEmail"`
	Message   string        `json:"message"`
	Timestamp string        `json:"timestamp"`
	Status    MessageStatus `json:"status"`
	Replies   []Reply       `json:"replies"`
}

// Prescription represents an uploaded prescription sitting in the
// prescriptions bucket
type Prescription struct {
	ID         string             `json:"id"`
	UserID     string             `json:"userId"`
	UserName   string             `json:"userName"`
	UserEmail  string             `json:"userEmail"`
	Image      string             `json:"image"` // data URI
	Status     PrescriptionStatus `json:"status"`
	UploadDate string             `json:"uploadDate"`
}

// seedMessages is the default content of a missing or unreadable
// messages bucket
func seedMessages() []Message {
	return []Message{
		{
			ID:        "1",
			UserName:  "Sarah Ahmed",
			UserEmail: "sarah@example.com",
			Message:   "I need help with my prescription order",
			Timestamp: "2025-11-05 10:30 AM",
			Status:    MessageStatusUnread,
			Replies:   []Reply{},
		},
	}
}

// seedPrescriptions is the default content of a missing or unreadable
// prescriptions bucket
func seedPrescriptions() []Prescription {
	return []Prescription{}
}
