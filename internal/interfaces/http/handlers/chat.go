// internal/interfaces/http/handlers/chat.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/jeevita-backend/internal/domain/mailbox"
	"github.com/your-org/jeevita-backend/internal/interfaces/http/middleware"
)

// ChatHandler handles the live chat endpoints backed by the shared
// mailbox buckets
type ChatHandler struct {
	mailboxService *mailbox.Service
}

// NewChatHandler creates a new chat handler
func NewChatHandler(mailboxService *mailbox.Service) *ChatHandler {
	return &ChatHandler{
		mailboxService: mailboxService,
	}
}

// chatRequest is the body for starting a chat
type chatRequest struct {
	Message string `json:"message"`
}

// replyRequest is the body for replying to a thread
type replyRequest struct {
	Text string `json:"text" binding:"required"`
}

// ListMessages handles GET /admin/messages
func (h *ChatHandler) ListMessages(c *gin.Context) {
	msgs, err := h.mailboxService.Messages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve messages",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Messages retrieved successfully",
		"data":    msgs,
	})
}

// UnreadCount handles GET /admin/messages/unread-count
func (h *ChatHandler) UnreadCount(c *gin.Context) {
	count, err := h.mailboxService.UnreadCount(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to count unread messages",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Unread count retrieved successfully",
		"data":    gin.H{"unread": count},
	})
}

// RequestChat handles POST /chat
func (h *ChatHandler) RequestChat(c *gin.Context) {
	userName, _ := middleware.GetUserNameFromContext(c)
	userEmail, _ := middleware.GetUserEmailFromContext(c)

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	msg, err := h.mailboxService.RequestChat(c.Request.Context(), userName, userEmail, req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to start chat",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Chat started successfully",
		"data":    msg,
	})
}

// UserReply handles POST /chat/reply
func (h *ChatHandler) UserReply(c *gin.Context) {
	userEmail, _ := middleware.GetUserEmailFromContext(c)

	var req replyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	msg, err := h.mailboxService.UserReply(c.Request.Context(), userEmail, req.Text)
	if err != nil {
		if errors.Is(err, mailbox.ErrNoOpenChat) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No chat thread found, start one first",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to send reply",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reply sent successfully",
		"data":    msg,
	})
}

// AdminReply handles POST /admin/messages/:id/reply
func (h *ChatHandler) AdminReply(c *gin.Context) {
	var req replyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	msg, err := h.mailboxService.AdminReply(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		h.respondMailboxError(c, err, "Failed to send reply")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reply sent successfully",
		"data":    msg,
	})
}

// MarkRead handles PUT /admin/messages/:id/read
func (h *ChatHandler) MarkRead(c *gin.Context) {
	if err := h.mailboxService.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		h.respondMailboxError(c, err, "Failed to mark message as read")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Message marked as read",
	})
}

// DeleteMessage handles DELETE /admin/messages/:id
func (h *ChatHandler) DeleteMessage(c *gin.Context) {
	if err := h.mailboxService.DeleteMessage(c.Request.Context(), c.Param("id")); err != nil {
		h.respondMailboxError(c, err, "Failed to delete message")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Message deleted successfully",
	})
}

func (h *ChatHandler) respondMailboxError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, mailbox.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Entry not found",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": fallback,
	})
}
