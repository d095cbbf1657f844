// internal/interfaces/http/handlers/language.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/jeevita-backend/internal/domain/i18n"
)

// LanguageHandler handles the English/Bangla toggle
type LanguageHandler struct {
	translator *i18n.Translator
}

// NewLanguageHandler creates a new language handler
func NewLanguageHandler(translator *i18n.Translator) *LanguageHandler {
	return &LanguageHandler{
		translator: translator,
	}
}

// Get handles GET /language
func (h *LanguageHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Language retrieved successfully",
		"data":    gin.H{"language": h.translator.Language()},
	})
}

// Toggle handles POST /language/toggle
func (h *LanguageHandler) Toggle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Language toggled successfully",
		"data":    gin.H{"language": h.translator.Toggle()},
	})
}

// Translate handles GET /language/translate?key=...
func (h *LanguageHandler) Translate(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'key' is required",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Translation retrieved successfully",
		"data": gin.H{
			"key":   key,
			"value": h.translator.T(key),
		},
	})
}
