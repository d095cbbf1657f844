// internal/domain/session/service_test.go
package session

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/jeevita-backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test",
			Environment: "development",
			Debug:       true,
		},
		JWT: config.JWTConfig{
			Secret:            "0123456789abcdef0123456789abcdef",
			AccessTokenExpiry: time.Hour,
		},
		Security: config.SecurityConfig{BcryptCost: 4},
		Admin: config.AdminConfig{
			Email:    "admin@jeevita.com",
			Password: "admin123",
		},
	}
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestLoginAdminCredentials(t *testing.T) {
	svc := NewService(testConfig(), testLogger())

	user, err := svc.Login(&LoginRequest{Email: "admin@jeevita.com", Password: "admin123"})
	require.NoError(t, err)

	assert.Equal(t, RoleAdmin, user.Role)
	assert.Equal(t, StatusApproved, user.Status)
	assert.True(t, svc.IsAdmin())
}

func TestLoginAnyOtherCredentialIsUser(t *testing.T) {
	svc := NewService(testConfig(), testLogger())

	user, err := svc.Login(&LoginRequest{Email: "sarah@example.com", Password: "whatever"})
	require.NoError(t, err)

	assert.Equal(t, RoleUser, user.Role)
	assert.Equal(t, StatusApproved, user.Status)
	assert.Equal(t, "sarah@example.com", user.Email)
	assert.False(t, svc.IsAdmin())
}

func TestLoginRejectsEmptyFields(t *testing.T) {
	svc := NewService(testConfig(), testLogger())

	_, err := svc.Login(&LoginRequest{Email: "", Password: "x"})
	require.Error(t, err)

	_, err = svc.Current()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSignupStartsPending(t *testing.T) {
	svc := NewService(testConfig(), testLogger())

	user, err := svc.Signup(&SignupRequest{
		Name:            "Sarah Ahmed",
		Email:           "Sarah@Example.com",
		Password:        "secret",
		ConfirmPassword: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPending, user.Status)
	assert.Equal(t, RoleUser, user.Role)
	assert.Equal(t, "sarah@example.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestSignupPasswordMismatchMutatesNothing(t *testing.T) {
	svc := NewService(testConfig(), testLogger())

	_, err := svc.Signup(&SignupRequest{
		Name:            "Sarah Ahmed",
		Email:           "sarah@example.com",
		Password:        "secret",
		ConfirmPassword: "different",
	})
	require.Error(t, err)

	_, err = svc.Current()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestLogoutClearsSession(t *testing.T) {
	svc := NewService(testConfig(), testLogger())

	_, err := svc.Login(&LoginRequest{Email: "u@example.com", Password: "pw"})
	require.NoError(t, err)

	svc.Logout()

	_, err = svc.Current()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestAdminLoginRequiresConfiguredCredentials(t *testing.T) {
	svc := NewService(testConfig(), testLogger())

	_, err := svc.AdminLogin(&LoginRequest{Email: "nobody@example.com", Password: "guess"})
	require.Error(t, err)

	user, err := svc.AdminLogin(&LoginRequest{Email: "admin@jeevita.com", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, user.Role)
}

func TestAdminLoginInsecureFlagAcceptsAnything(t *testing.T) {
	cfg := testConfig()
	cfg.Admin.InsecureLogin = true
	svc := NewService(cfg, testLogger())

	user, err := svc.AdminLogin(&LoginRequest{Email: "anyone@example.com", Password: "anything"})
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, user.Role)
}
