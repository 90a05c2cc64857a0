package handler

import (
	"context"
	"net/http"

	"moving-estimate-api/internal/models"

	"github.com/gin-gonic/gin"
)

// GeoCodeHandler resolves an address within a prefecture to coordinates
type GeoCodeHandler struct {
	service GeoCodeService
}

// GeoCodeService interface for dependency injection
type GeoCodeService interface {
	ResolveCoordinate(ctx context.Context, prefectureID, address string) (models.Coordinate, error)
}

// NewGeoCodeHandler creates a new geocode handler
func NewGeoCodeHandler(svc GeoCodeService) *GeoCodeHandler {
	return &GeoCodeHandler{service: svc}
}

// GeoCode handles GET /geocode requests
//
//	@Summary	Geocode an address
//	@Param		prefecture_id	query		string	true	"prefecture id"
//	@Param		address			query		string	true	"address below the prefecture"
//	@Success	200				{object}	models.Coordinate
//	@Failure	400,500,502		{object}	map[string]string
//	@Router		/geocode [get]
func (h *GeoCodeHandler) GeoCode(c *gin.Context) {
	prefectureID := c.Query("prefecture_id")
	address := c.Query("address")
	if prefectureID == "" || address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'prefecture_id' and 'address'"})
		return
	}

	coord, err := h.service.ResolveCoordinate(c.Request.Context(), prefectureID, address)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, coord)
}
