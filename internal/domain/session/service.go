// internal/domain/session/service.go
package session

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/jeevita-backend/internal/config"
	"github.com/your-org/jeevita-backend/internal/pkg/auth"
)

// ErrNoSession is returned when an operation needs an active session
var ErrNoSession = fmt.Errorf("session: no active session")

// Service owns the single mock session for one execution context.
// Login and signup are simulations: no credential store exists, and the
// admin credential pair comes from configuration.
type Service struct {
	config    *config.Config
	passwords *auth.PasswordManager
	logger    *logrus.Logger

	mu      sync.Mutex
	current *User
}

// NewService creates a new session service
func NewService(cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		config:    cfg,
		passwords: auth.NewPasswordManager(cfg),
		logger:    logger,
	}
}

// Login performs a mock login. The configured admin credential pair
// yields an approved admin session; any other credentials yield an
// approved user session. Replaces whatever session was active.
func (s *Service) Login(req *LoginRequest) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if email == strings.ToLower(s.config.Admin.Email) && req.Password == s.config.Admin.Password {
		s.current = &User{
			ID:     "1",
			Name:   "Admin User",
			Email:  s.config.Admin.Email,
			Role:   RoleAdmin,
			Status: StatusApproved,
		}
	} else {
		s.current = &User{
			ID:     "2",
			Name:   "Test User",
			Email:  email,
			Role:   RoleUser,
			Status: StatusApproved,
		}
	}

	s.logger.WithFields(logrus.Fields{
		"email": s.current.Email,
		"role":  s.current.Role,
	}).Info("Session started")

	return s.current, nil
}

// AdminLogin authenticates against the configured admin credentials.
// When the insecure-login debug flag is set, any non-empty credential
// pair is accepted; that mode exists only for demo parity and config
// validation refuses it in production.
func (s *Service) AdminLogin(req *LoginRequest) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	if !s.config.Admin.InsecureLogin {
		if email != strings.ToLower(s.config.Admin.Email) || req.Password != s.config.Admin.Password {
			return nil, fmt.Errorf("invalid admin credentials")
		}
	} else {
		s.logger.Warn("Insecure admin login accepted arbitrary credentials")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &User{
		ID:     "1",
		Name:   "Admin User",
		Email:  s.config.Admin.Email,
		Role:   RoleAdmin,
		Status: StatusApproved,
	}

	return s.current, nil
}

// Signup performs a mock signup. The new session starts pending until
// an admin approves it. No state is mutated when validation fails.
func (s *Service) Signup(req *SignupRequest) (*User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if name == "" || email == "" || req.Password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	if req.Password != req.ConfirmPassword {
		return nil, fmt.Errorf("passwords do not match")
	}

	// Strength rules only bind outside of debug/demo mode
	if !s.config.App.Debug {
		if err := s.passwords.ValidatePassword(req.Password); err != nil {
			return nil, err
		}
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Role:         RoleUser,
		Status:       StatusPending,
		PasswordHash: hash,
	}

	s.logger.WithField("email", email).Info("Signup created pending session")

	return s.current, nil
}

// Logout clears the active session; no-op when none is active
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Current returns the active session, or ErrNoSession
func (s *Service) Current() (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, ErrNoSession
	}
	u := *s.current
	return &u, nil
}

// IsAdmin reports whether the active session carries the admin role
func (s *Service) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil && s.current.Role == RoleAdmin
}
