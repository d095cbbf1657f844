// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/jeevita-backend/internal/domain/catalog"
)

// CatalogHandler serves doctors, medicines, hospitals and the home
// carousel. Listings come from the session overlay so admin additions
// show up; detail lookups fall back across overlay and seed.
type CatalogHandler struct {
	overlay  *catalog.Overlay
	provider *catalog.Provider
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(overlay *catalog.Overlay, provider *catalog.Provider) *CatalogHandler {
	return &CatalogHandler{
		overlay:  overlay,
		provider: provider,
	}
}

// ListDoctors handles GET /doctors
func (h *CatalogHandler) ListDoctors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Doctors retrieved successfully",
		"data":    h.overlay.Doctors(),
	})
}

// GetDoctor handles GET /doctors/:id
func (h *CatalogHandler) GetDoctor(c *gin.Context) {
	id := c.Param("id")
	for _, d := range h.overlay.Doctors() {
		if d.ID == id {
			c.JSON(http.StatusOK, gin.H{
				"message": "Doctor retrieved successfully",
				"data":    d,
			})
			return
		}
	}
	h.notFound(c, "doctors")
}

// ListMedicines handles GET /medicines
func (h *CatalogHandler) ListMedicines(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Medicines retrieved successfully",
		"data":    h.overlay.Medicines(),
	})
}

// GetMedicine handles GET /medicines/:id
func (h *CatalogHandler) GetMedicine(c *gin.Context) {
	id := c.Param("id")
	for _, m := range h.overlay.Medicines() {
		if m.ID == id {
			c.JSON(http.StatusOK, gin.H{
				"message": "Medicine retrieved successfully",
				"data":    m,
			})
			return
		}
	}
	h.notFound(c, "medicines")
}

// ListHospitals handles GET /hospitals
func (h *CatalogHandler) ListHospitals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Hospitals retrieved successfully",
		"data":    h.provider.Hospitals(),
	})
}

// GetHospital handles GET /hospitals/:id
func (h *CatalogHandler) GetHospital(c *gin.Context) {
	hosp, err := h.provider.HospitalByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			h.notFound(c, "hospitals")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve hospital",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Hospital retrieved successfully",
		"data":    hosp,
	})
}

// GetCarousel handles GET /carousel
func (h *CatalogHandler) GetCarousel(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Carousel retrieved successfully",
		"data":    h.overlay.Carousel(),
	})
}

// notFound renders the dedicated not-found payload with a single
// recovery action back to the listing
func (h *CatalogHandler) notFound(c *gin.Context, listing string) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": "Entry not found",
		"data": gin.H{
			"view":    "not-found",
			"back_to": listing,
		},
	})
}
