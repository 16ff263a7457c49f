package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/gilchrisn/graph-assortativity-service/models"
	"github.com/gilchrisn/graph-assortativity-service/service"
	"github.com/gilchrisn/graph-assortativity-service/utils"
)

// Handlers contains HTTP request handlers.
type Handlers struct {
	datasetService *service.DatasetService
	jobService     *service.JobService
	maxUploadBytes int64
}

// NewHandlers creates new API handlers.
func NewHandlers(datasetService *service.DatasetService, jobService *service.JobService, maxUploadBytes int64) *Handlers {
	return &Handlers{
		datasetService: datasetService,
		jobService:     jobService,
		maxUploadBytes: maxUploadBytes,
	}
}

// UploadDataset handles edge-list uploads via multipart form. Form fields:
// "edgelistFile" (the file), "name", "directed" ("true"/"false").
func (h *Handlers) UploadDataset(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid multipart form", err)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		name = "Unnamed Dataset"
	}
	directed, _ := strconv.ParseBool(r.FormValue("directed"))

	file, header, err := r.FormFile("edgelistFile")
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required file: edgelistFile", err)
		return
	}
	defer file.Close()

	dataset, err := h.datasetService.Upload(name, directed, file, header.Size)
	if err != nil {
		log.Error().Err(err).Msg("Dataset upload failed")
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Dataset upload failed", err)
		return
	}

	utils.WriteSuccessResponse(w, "Dataset uploaded successfully", dataset)
}

// ListDatasets lists all datasets.
func (h *Handlers) ListDatasets(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccessResponse(w, "Datasets retrieved successfully", h.datasetService.List())
}

// GetDataset retrieves a specific dataset.
func (h *Handlers) GetDataset(w http.ResponseWriter, r *http.Request) {
	datasetID := mux.Vars(r)["datasetId"]

	dataset, err := h.datasetService.Get(datasetID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Dataset not found", err)
		return
	}

	utils.WriteSuccessResponse(w, "Dataset retrieved successfully", dataset)
}

// DeleteDataset removes a dataset.
func (h *Handlers) DeleteDataset(w http.ResponseWriter, r *http.Request) {
	datasetID := mux.Vars(r)["datasetId"]

	if err := h.datasetService.Delete(datasetID); err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Dataset not found", err)
		return
	}

	utils.WriteSuccessResponse(w, "Dataset deleted successfully", nil)
}

// startStatisticRequest is the JSON body of StartStatistic.
type startStatisticRequest struct {
	Statistic models.StatisticType `json:"statistic"`
	Weighted  bool                 `json:"weighted"`
	Nodes     []int64              `json:"nodes,omitempty"`
}

// StartStatistic queues a statistic computation on a dataset.
func (h *Handlers) StartStatistic(w http.ResponseWriter, r *http.Request) {
	datasetID := mux.Vars(r)["datasetId"]

	var req startStatisticRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Statistic == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing statistic name", nil)
		return
	}

	params := models.JobParameters{Weighted: req.Weighted, Nodes: req.Nodes}
	job, err := h.jobService.Submit(datasetID, req.Statistic, params)
	if err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		utils.WriteErrorResponse(w, status, "Failed to submit job", err)
		return
	}

	utils.WriteSuccessResponse(w, "Job submitted successfully", job)
}

// ListJobs lists all jobs for a dataset.
func (h *Handlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	datasetID := mux.Vars(r)["datasetId"]
	utils.WriteSuccessResponse(w, "Jobs retrieved successfully", h.jobService.List(datasetID))
}

// GetJob retrieves a job's status.
func (h *Handlers) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]

	job, err := h.jobService.Get(jobID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Job not found", err)
		return
	}

	utils.WriteSuccessResponse(w, "Job retrieved successfully", job)
}

// GetJobResult retrieves the result of a completed job.
func (h *Handlers) GetJobResult(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]

	job, err := h.jobService.Get(jobID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Job not found", err)
		return
	}
	if job.Status != models.JobStatusCompleted {
		utils.WriteErrorResponse(w, http.StatusConflict, "Job is not completed: "+string(job.Status), nil)
		return
	}

	result, err := h.jobService.GetResult(jobID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Result not found", err)
		return
	}

	utils.WriteSuccessResponse(w, "Result retrieved successfully", result)
}

// ListStatistics lists the statistics the service can compute.
func (h *Handlers) ListStatistics(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccessResponse(w, "Statistics retrieved successfully", h.jobService.Registry().List())
}

// HealthCheck reports service liveness.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccessResponse(w, "OK", map[string]string{"status": "healthy"})
}
