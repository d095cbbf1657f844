// internal/domain/session/entity.go
package session

// Role represents a session's role
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Status represents a user's approval status
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// User represents the active mock session record. There is at most one
// per store; nothing survives a restart.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	Status       Status `json:"status"`
	PasswordHash string `json:"-"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest represents a signup request
type SignupRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}
