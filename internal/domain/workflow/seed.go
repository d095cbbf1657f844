// internal/domain/workflow/seed.go
package workflow

func seedPendingUsers() []PendingUser {
	return []PendingUser{
		{ID: "1", Name: "John Doe", Email: "john@example.com", Status: UserStatusPending, Date: "2025-11-05"},
		{ID: "2", Name: "Jane Smith", Email: "jane@example.com", Status: UserStatusPending, Date: "2025-11-06"},
	}
}

func seedPendingPayments() []Payment {
	return []Payment{
		{ID: "1", User: "Alice Johnson", Type: "Appointment", Amount: 1200, TransactionID: "BK123456789", Status: PaymentStatusPending},
		{ID: "2", User: "Bob Wilson", Type: "Medicine Order", Amount: 550, TransactionID: "NG987654321", Status: PaymentStatusPending},
	}
}

func seedAppointments() []Appointment {
	return []Appointment{
		{ID: "1", PatientName: "Sarah Ahmed", DoctorName: "Dr. Rahman", Specialty: "Cardiology", Date: "2025-11-06", Time: "10:00 AM", Status: AppointmentStatusPending, Amount: 1200, TransactionID: "BK123456"},
		{ID: "2", PatientName: "Rakib Hassan", DoctorName: "Dr. Khan", Specialty: "Neurology", Date: "2025-11-07", Time: "02:00 PM", Status: AppointmentStatusConfirmed, Amount: 1500, TransactionID: "NG789012"},
		{ID: "3", PatientName: "Fatima Begum", DoctorName: "Dr. Islam", Specialty: "Pediatrics", Date: "2025-11-05", Time: "11:30 AM", Status: AppointmentStatusCompleted, Amount: 800, TransactionID: "BK345678"},
	}
}

func seedRefundRequests() []RefundRequest {
	return []RefundRequest{
		{ID: "1", UserName: "John Doe", OrderType: "Medicine Order", OrderID: "ORD123456", Amount: 850, Reason: "Received wrong medicine", Status: RefundStatusPending, RequestDate: "2025-11-04", TransactionID: "BK987654321"},
		{ID: "2", UserName: "Emma Wilson", OrderType: "Appointment", OrderID: "APT789012", Amount: 1200, Reason: "Doctor cancelled appointment", Status: RefundStatusPending, RequestDate: "2025-11-05", TransactionID: "NG456789123"},
	}
}

func seedUserActivities() []UserActivity {
	return []UserActivity{
		{ID: "1", UserName: "Sarah Ahmed", Email: "sarah@example.com", Action: "Booked appointment with Dr. Rahman", Timestamp: "2025-11-05 10:30 AM", Type: "appointment"},
		{ID: "2", UserName: "Rakib Hassan", Email: "rakib@example.com", Action: "Ordered medicines (Napa, Ace)", Timestamp: "2025-11-05 11:15 AM", Type: "order"},
		{ID: "3", UserName: "Fatima Begum", Email: "fatima@example.com", Action: "Cancelled appointment", Timestamp: "2025-11-05 09:45 AM", Type: "cancellation"},
	}
}

func seedPaymentActivities() []PaymentActivity {
	return []PaymentActivity{
		{ID: "1", User: "Alice Johnson", Type: "Appointment", Amount: 1200, TransactionID: "BK123456789", Action: "Verified", Timestamp: "2025-11-05 10:00 AM", Date: "2025-11-05"},
		{ID: "2", User: "Bob Wilson", Type: "Medicine Order", Amount: 550, TransactionID: "NG987654321", Action: "Verified", Timestamp: "2025-11-05 11:30 AM", Date: "2025-11-05"},
	}
}
