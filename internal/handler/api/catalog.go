package api

import (
	"net/http"

	"hotel-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List rooms
// @Description List all bookable rooms
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.RoomView
// @Router /rooms [get]
func (h *CatalogHandler) ListRooms(c *gin.Context) {
	rooms, err := h.catalogQueries.ListRooms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"message": "Internal server error"},
		})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// @Summary List extras
// @Description List the extras catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.ExtraView
// @Router /extras [get]
func (h *CatalogHandler) ListExtras(c *gin.Context) {
	extras, err := h.catalogQueries.ListExtras(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"message": "Internal server error"},
		})
		return
	}
	c.JSON(http.StatusOK, extras)
}
