// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/jeevita-backend/internal/config"
	"github.com/your-org/jeevita-backend/internal/domain/session"
	"github.com/your-org/jeevita-backend/internal/pkg/auth"
)

// AuthHandler handles login, signup and session endpoints
type AuthHandler struct {
	sessionService *session.Service
	jwtManager     *auth.JWTManager
	config         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessionService *session.Service, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		sessionService: sessionService,
		jwtManager:     auth.NewJWTManager(cfg),
		config:         cfg,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req session.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	user, err := h.sessionService.Login(&req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": err.Error(),
		})
		return
	}

	h.respondWithTokens(c, user, "Login successful")
}

// AdminLogin handles POST /auth/admin-login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req session.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	user, err := h.sessionService.AdminLogin(&req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": err.Error(),
		})
		return
	}

	h.respondWithTokens(c, user, "Admin login successful")
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req session.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	user, err := h.sessionService.Signup(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	// Pending accounts wait for admin approval, no tokens yet
	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created, awaiting approval",
		"data":    user,
	})
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	claims, err := h.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired refresh token",
		})
		return
	}

	// The session store is single-slot: the token is only redeemable
	// while its user still holds the active session
	user, err := h.sessionService.Current()
	if err != nil || user.ID != claims.UserID {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "No active session for this token",
		})
		return
	}

	accessToken, err := h.jwtManager.GenerateAccessToken(user.ID, user.Name, user.Email, string(user.Role), string(user.Status))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate access token",
		})
		return
	}

	refreshToken := req.RefreshToken
	if h.config.JWT.RefreshTokenRotation {
		refreshToken, err = h.jwtManager.GenerateRefreshToken(user.ID, user.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to generate refresh token",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token refreshed successfully",
		"data": gin.H{
			"user":          user,
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessionService.Logout()

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.sessionService.Current()
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "No active session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Session retrieved successfully",
		"data":    user,
	})
}

func (h *AuthHandler) respondWithTokens(c *gin.Context, user *session.User, message string) {
	accessToken, err := h.jwtManager.GenerateAccessToken(user.ID, user.Name, user.Email, string(user.Role), string(user.Status))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate access token",
		})
		return
	}

	refreshToken, err := h.jwtManager.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate refresh token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data": gin.H{
			"user":          user,
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
	})
}
