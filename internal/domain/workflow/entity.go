// internal/domain/workflow/entity.go
package workflow

// UserStatus is the registration review state of a pending user
type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusApproved UserStatus = "approved"
	UserStatusRejected UserStatus = "rejected"
)

// PaymentStatus is the verification state of a submitted payment
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusVerified PaymentStatus = "verified"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// AppointmentStatus walks pending -> confirmed -> completed, or
// pending -> cancelled
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// RefundStatus is the review state of a refund request
type RefundStatus string

const (
	RefundStatusPending  RefundStatus = "pending"
	RefundStatusApproved RefundStatus = "approved"
	RefundStatusRejected RefundStatus = "rejected"
)

// PendingUser is a signup awaiting admin review
type PendingUser struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Status UserStatus `json:"status"`
	Date   string     `json:"date"`
}

// Payment is a customer-submitted payment awaiting verification
type Payment struct {
	ID            string        `json:"id"`
	User          string        `json:"user"`
	Type          string        `json:"type"` // Appointment or Medicine Order
	Amount        int64         `json:"amount"`
	TransactionID string        `json:"transactionId"`
	Status        PaymentStatus `json:"status"`
}

// PaymentActivity records an admin's verify or reject decision
type PaymentActivity struct {
	ID            string `json:"id"`
	User          string `json:"user"`
	Type          string `json:"type"`
	Amount        int64  `json:"amount"`
	TransactionID string `json:"transactionId"`
	Action        string `json:"action"` // Verified or Rejected
	Timestamp     string `json:"timestamp"`
	Date          string `json:"date"`
}

// UserActivity records a notable user-side event for the admin feed
type UserActivity struct {
	ID        string `json:"id"`
	UserName  string `json:"userName"`
	Email     string `json:"email"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
}

// Appointment is a doctor booking tracked through its lifecycle
type Appointment struct {
	ID            string            `json:"id"`
	PatientName   string            `json:"patientName"`
	DoctorName    string            `json:"doctorName"`
	Specialty     string            `json:"specialty"`
	Date          string            `json:"date"`
	Time          string            `json:"time"`
	Status        AppointmentStatus `json:"status"`
	Amount        int64             `json:"amount"`
	TransactionID string            `json:"transactionId"`
}

// RefundRequest is a customer refund awaiting admin review
type RefundRequest struct {
	ID            string       `json:"id"`
	UserName      string       `json:"userName"`
	OrderType     string       `json:"orderType"`
	OrderID       string       `json:"orderId"`
	Amount        int64        `json:"amount"`
	Reason        string       `json:"reason"`
	Status        RefundStatus `json:"status"`
	RequestDate   string       `json:"requestDate"`
	TransactionID string       `json:"transactionId"`
}

// Stats is the dashboard summary block
type Stats struct {
	TotalUsers          int   `json:"totalUsers"`
	TotalDoctors        int   `json:"totalDoctors"`
	TotalAppointments   int   `json:"totalAppointments"`
	TotalMedicineOrders int   `json:"totalMedicineOrders"`
	TotalMedicines      int   `json:"totalMedicines"`
	AppointmentRevenue  int64 `json:"appointmentRevenue"`
	MedicineRevenue     int64 `json:"medicineRevenue"`
	TotalRevenue        int64 `json:"totalRevenue"`
}
