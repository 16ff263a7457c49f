package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/gilchrisn/graph-assortativity-service/api"
	"github.com/gilchrisn/graph-assortativity-service/config"
	"github.com/gilchrisn/graph-assortativity-service/service"
)

func main() {
	configFile := flag.String("config", "", "optional config file path")
	flag.Parse()

	cfg := config.New()
	if *configFile != "" {
		if err := cfg.LoadFromFile(*configFile); err != nil {
			log.Fatal().Err(err).Str("path", *configFile).Msg("Failed to load configuration")
		}
	}
	log.Logger = cfg.CreateLogger()

	log.Info().Msg("Starting graph assortativity service")
	log.Info().
		Str("address", cfg.ServerAddress()).
		Int("max_workers", cfg.MaxWorkers()).
		Dur("result_ttl", cfg.ResultTTL()).
		Msg("Configuration loaded")

	// Initialize services in dependency order
	datasetService := service.NewDatasetService(cfg.MaxUploadBytes())
	jobService := service.NewJobService(datasetService, cfg.MaxWorkers(), cfg.ResultTTL(), cfg.CleanupInterval())

	handlers := api.NewHandlers(datasetService, jobService, cfg.MaxUploadBytes())

	router := mux.NewRouter()
	api.SetupRoutes(router, handlers)
	router.Use(api.LoggingMiddleware)
	router.Use(api.RecoveryMiddleware)

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(router)

	server := &http.Server{
		Addr:         cfg.ServerAddress(),
		Handler:      handler,
		ReadTimeout:  cfg.ServerReadTimeout(),
		WriteTimeout: cfg.ServerWriteTimeout(),
	}

	go func() {
		log.Info().Str("address", cfg.ServerAddress()).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server shutdown complete")
}
