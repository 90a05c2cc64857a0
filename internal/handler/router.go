package handler

import (
	"net/http"

	_ "moving-estimate-api/docs"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter registers all routes on a new gin engine.
func NewRouter(prefectures *PrefectureHandler, geocode *GeoCodeHandler, estimates *EstimateHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/prefectures", prefectures.List)
	r.GET("/prefectures/distance", prefectures.Distance)
	r.GET("/geocode", geocode.GeoCode)
	r.POST("/estimates/quote", estimates.Quote)
	r.POST("/estimates", estimates.Register)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
