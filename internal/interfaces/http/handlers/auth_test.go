// internal/interfaces/http/handlers/auth_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/jeevita-backend/internal/config"
	"github.com/your-org/jeevita-backend/internal/domain/session"
	"github.com/your-org/jeevita-backend/internal/pkg/auth"
)

func newAuthTestServer(t *testing.T) (*gin.Engine, *session.Service, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App: config.AppConfig{Name: "jeevita", Debug: true},
		JWT: config.JWTConfig{
			Secret:               "0123456789abcdef0123456789abcdef",
			AccessTokenExpiry:    time.Hour,
			RefreshTokenExpiry:   24 * time.Hour,
			RefreshTokenRotation: true,
		},
		Security: config.SecurityConfig{BcryptCost: 4},
		Admin: config.AdminConfig{
			Email:    "admin@jeevita.com",
			Password: "admin123",
		},
	}
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	sessionService := session.NewService(cfg, logger)
	handler := NewAuthHandler(sessionService, cfg)

	r := gin.New()
	r.POST("/auth/refresh", handler.Refresh)
	return r, sessionService, cfg
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRefresh_IssuesNewAccessToken(t *testing.T) {
	r, sessionService, cfg := newAuthTestServer(t)

	user, err := sessionService.Login(&session.LoginRequest{Email: "user@example.com", Password: "whatever"})
	require.NoError(t, err)

	jwtManager := auth.NewJWTManager(cfg)
	refreshToken, err := jwtManager.GenerateRefreshToken(user.ID, user.Email)
	require.NoError(t, err)

	w := postJSON(t, r, "/auth/refresh", gin.H{"refresh_token": refreshToken})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	claims, err := jwtManager.ValidateAccessToken(resp.Data.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)

	// rotation is on, so the response carries a usable refresh token
	require.NotEmpty(t, resp.Data.RefreshToken)
	_, err = jwtManager.ValidateRefreshToken(resp.Data.RefreshToken)
	assert.NoError(t, err)
}

func TestRefresh_RejectsGarbageToken(t *testing.T) {
	r, sessionService, _ := newAuthTestServer(t)

	_, err := sessionService.Login(&session.LoginRequest{Email: "user@example.com", Password: "whatever"})
	require.NoError(t, err)

	w := postJSON(t, r, "/auth/refresh", gin.H{"refresh_token": "not-a-token"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefresh_RejectsAccessTokenOnRefreshPath(t *testing.T) {
	r, sessionService, cfg := newAuthTestServer(t)

	user, err := sessionService.Login(&session.LoginRequest{Email: "user@example.com", Password: "whatever"})
	require.NoError(t, err)

	jwtManager := auth.NewJWTManager(cfg)
	accessToken, err := jwtManager.GenerateAccessToken(user.ID, user.Name, user.Email, string(user.Role), string(user.Status))
	require.NoError(t, err)

	w := postJSON(t, r, "/auth/refresh", gin.H{"refresh_token": accessToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefresh_RequiresLiveSession(t *testing.T) {
	r, sessionService, cfg := newAuthTestServer(t)

	user, err := sessionService.Login(&session.LoginRequest{Email: "user@example.com", Password: "whatever"})
	require.NoError(t, err)

	jwtManager := auth.NewJWTManager(cfg)
	refreshToken, err := jwtManager.GenerateRefreshToken(user.ID, user.Email)
	require.NoError(t, err)

	// logging out invalidates outstanding refresh tokens
	sessionService.Logout()

	w := postJSON(t, r, "/auth/refresh", gin.H{"refresh_token": refreshToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
