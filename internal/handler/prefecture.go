package handler

import (
	"context"
	"net/http"

	"moving-estimate-api/internal/models"

	"github.com/gin-gonic/gin"
)

// PrefectureHandler serves prefecture reference data
type PrefectureHandler struct {
	service PrefectureService
}

// PrefectureService interface for dependency injection
type PrefectureService interface {
	Prefectures(ctx context.Context) ([]models.Prefecture, error)
	PrefectureDistance(ctx context.Context, fromID, toID string) (float64, error)
}

// NewPrefectureHandler creates a new prefecture handler
func NewPrefectureHandler(svc PrefectureService) *PrefectureHandler {
	return &PrefectureHandler{service: svc}
}

// List handles GET /prefectures requests
//
//	@Summary	List prefectures
//	@Success	200	{array}	models.Prefecture
//	@Router		/prefectures [get]
func (h *PrefectureHandler) List(c *gin.Context) {
	prefectures, err := h.service.Prefectures(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if prefectures == nil {
		prefectures = []models.Prefecture{}
	}

	c.JSON(http.StatusOK, prefectures)
}

// Distance handles GET /prefectures/distance requests. A pair without a record reports 0.
//
//	@Summary	Straight-line distance between two prefectures
//	@Param		from	query		string	true	"origin prefecture id"
//	@Param		to		query		string	true	"destination prefecture id"
//	@Success	200		{object}	models.PrefectureDistance
//	@Router		/prefectures/distance [get]
func (h *PrefectureHandler) Distance(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'from' and 'to'"})
		return
	}

	distance, err := h.service.PrefectureDistance(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PrefectureDistance{From: from, To: to, Distance: distance})
}
