// internal/interfaces/http/handlers/navigation.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/jeevita-backend/internal/domain/navigation"
)

// NavigationHandler exposes the router state to the rendering client
type NavigationHandler struct {
	router *navigation.Router
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(router *navigation.Router) *NavigationHandler {
	return &NavigationHandler{
		router: router,
	}
}

// navigateRequest is the body for a navigation transition
type navigateRequest struct {
	Page string      `json:"page" binding:"required"`
	Data interface{} `json:"data"`
}

// Current handles GET /navigation
func (h *NavigationHandler) Current(c *gin.Context) {
	state := h.router.Current()

	c.JSON(http.StatusOK, gin.H{
		"message": "Navigation state retrieved successfully",
		"data": gin.H{
			"page":   state.Page,
			"data":   state.Data,
			"chrome": h.router.Chrome(),
		},
	})
}

// Navigate handles POST /navigation
func (h *NavigationHandler) Navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	state := h.router.Navigate(navigation.Page(req.Page), req.Data)

	c.JSON(http.StatusOK, gin.H{
		"message": "Navigated successfully",
		"data": gin.H{
			"page":          state.Page,
			"data":          state.Data,
			"chrome":        h.router.Chrome(),
			"scroll_to_top": h.router.ConsumeScrollSignal(),
		},
	})
}
