package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moving-estimate-api/internal/config"
	"moving-estimate-api/internal/geo"
	"moving-estimate-api/internal/handler"
	"moving-estimate-api/internal/obs"
	"moving-estimate-api/internal/repository"
	"moving-estimate-api/internal/service"
	"moving-estimate-api/internal/tracing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// @title		Moving Estimate API
// @version	1.0
// @BasePath	/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	if err := config.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	obs.SetupLogger(config.LogLevel, config.LogPretty)

	shutdownTracer, err := tracing.InitTracerProvider(config.ServiceName, config.JaegerURL)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot init tracer")
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Error().Err(err).Msg("tracer shutdown")
		}
	}()

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	if err := conn.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("cannot reach db")
	}

	// External APIs share one client
	client := &http.Client{Timeout: config.HTTPTimeout}

	geocoder, err := geo.NewGeocoder(config.GeocoderURL, config.UserAgent, client)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create geocoder")
	}
	router, err := geo.NewRouter(config.RouterURL, config.RouterProfile, config.RouterAPIKey, config.UserAgent, client)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create router")
	}

	// Initialize layers
	repo := repository.NewRepository(conn)

	distanceService := service.NewDistanceService(repo, geocoder, router)
	pricingService := service.NewPricingService(repo)
	estimateService := service.NewEstimateService(distanceService, pricingService, repo, config.PricePerKm)

	prefectureHandler := handler.NewPrefectureHandler(distanceService)
	geoCodeHandler := handler.NewGeoCodeHandler(distanceService)
	estimateHandler := handler.NewEstimateHandler(estimateService)

	gin.SetMode(gin.ReleaseMode)
	r := handler.NewRouter(prefectureHandler, geoCodeHandler, estimateHandler)

	srv := &http.Server{
		Addr:    config.ServerAddress,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", config.ServerAddress).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
}
