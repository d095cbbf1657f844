// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/jeevita-backend/internal/config"
	"github.com/your-org/jeevita-backend/internal/domain/cart"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartStore *cart.Store
	config    *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartStore *cart.Store, cfg *config.Config) *CartHandler {
	return &CartHandler{
		cartStore: cartStore,
		config:    cfg,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data": gin.H{
			"items":  h.cartStore.Items(),
			"totals": h.cartStore.Totals(h.config.Payment.DeliveryFee),
		},
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req cart.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	item := h.cartStore.Add(req)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data": gin.H{
			"item":   item,
			"totals": h.cartStore.Totals(h.config.Payment.DeliveryFee),
		},
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req cart.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.cartStore.UpdateQuantity(c.Param("id"), req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated successfully",
		"data": gin.H{
			"items":  h.cartStore.Items(),
			"totals": h.cartStore.Totals(h.config.Payment.DeliveryFee),
		},
	})
}

// RemoveCartItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	h.cartStore.Remove(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"data": gin.H{
			"items":  h.cartStore.Items(),
			"totals": h.cartStore.Totals(h.config.Payment.DeliveryFee),
		},
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cartStore.Clear()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}
