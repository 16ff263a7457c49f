package api

import (
	"github.com/gorilla/mux"
)

// SetupRoutes wires all endpoints under /api/v1.
func SetupRoutes(router *mux.Router, handlers *Handlers) {
	api := router.PathPrefix("/api/v1").Subrouter()

	// Dataset management endpoints
	datasets := api.PathPrefix("/datasets").Subrouter()
	datasets.HandleFunc("", handlers.ListDatasets).Methods("GET")
	datasets.HandleFunc("", handlers.UploadDataset).Methods("POST")
	datasets.HandleFunc("/{datasetId}", handlers.GetDataset).Methods("GET")
	datasets.HandleFunc("/{datasetId}", handlers.DeleteDataset).Methods("DELETE")

	// Statistic computation endpoints
	datasets.HandleFunc("/{datasetId}/statistics", handlers.StartStatistic).Methods("POST")
	datasets.HandleFunc("/{datasetId}/jobs", handlers.ListJobs).Methods("GET")

	// Job management endpoints
	jobs := api.PathPrefix("/jobs").Subrouter()
	jobs.HandleFunc("/{jobId}", handlers.GetJob).Methods("GET")
	jobs.HandleFunc("/{jobId}/result", handlers.GetJobResult).Methods("GET")

	// Discovery and health endpoints
	api.HandleFunc("/statistics", handlers.ListStatistics).Methods("GET")
	api.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
}
