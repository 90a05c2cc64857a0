package handler

import (
	"errors"
	"net/http"

	"moving-estimate-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError maps an error kind to a status code and writes {"error": ...}.
func respondError(c *gin.Context, err error) {
	status, msg := http.StatusInternalServerError, "internal server error"

	switch {
	case errors.Is(err, models.ErrInvalidInput):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, models.ErrPricingLookup):
		status, msg = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, models.ErrGeocoding):
		status, msg = http.StatusBadGateway, "address could not be geocoded"
	case errors.Is(err, models.ErrRouting):
		status, msg = http.StatusBadGateway, "route could not be resolved"
	}

	log.Ctx(c.Request.Context()).Error().Err(err).Int("status", status).Msg("request failed")
	c.JSON(status, gin.H{"error": msg})
}
