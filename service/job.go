package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/gilchrisn/graph-assortativity-service/models"
)

// JobService runs statistic computations in the background and keeps their
// results until they expire.
type JobService struct {
	jobs            map[string]*models.Job
	results         map[string]*models.StatisticResult
	workers         chan struct{}
	registry        *Registry
	datasetService  *DatasetService
	resultTTL       time.Duration
	cleanupInterval time.Duration
	mutex           sync.RWMutex
}

// NewJobService creates a job service with the given worker budget and
// result retention, and starts its cleanup loop.
func NewJobService(datasetService *DatasetService, maxWorkers int, resultTTL, cleanupInterval time.Duration) *JobService {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	service := &JobService{
		jobs:            make(map[string]*models.Job),
		results:         make(map[string]*models.StatisticResult),
		workers:         make(chan struct{}, maxWorkers),
		registry:        NewRegistry(),
		datasetService:  datasetService,
		resultTTL:       resultTTL,
		cleanupInterval: cleanupInterval,
	}

	go service.cleanupLoop()

	return service
}

// Registry exposes the statistic registry, e.g. for listing endpoints.
func (s *JobService) Registry() *Registry { return s.registry }

// Submit validates and queues a statistic computation for a dataset.
func (s *JobService) Submit(datasetID string, statType models.StatisticType, params models.JobParameters) (*models.Job, error) {
	statistic, exists := s.registry.Get(statType)
	if !exists {
		return nil, fmt.Errorf("unknown statistic: %s", statType)
	}

	g, err := s.datasetService.Graph(datasetID)
	if err != nil {
		return nil, err
	}
	if err := statistic.Validate(g, params); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	now := time.Now()
	job := &models.Job{
		ID:         uuid.New().String(),
		DatasetID:  datasetID,
		Statistic:  statType,
		Parameters: params,
		Status:     models.JobStatusQueued,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	s.mutex.Lock()
	s.jobs[job.ID] = job
	s.mutex.Unlock()

	log.Info().
		Str("job_id", job.ID).
		Str("dataset_id", datasetID).
		Str("statistic", string(statType)).
		Bool("weighted", params.Weighted).
		Msg("Job submitted")

	go s.processJob(job.ID)

	snapshot := *job
	return &snapshot, nil
}

// Get retrieves a snapshot of a job by ID. A copy is returned so callers
// never observe fields mid-update.
func (s *JobService) Get(jobID string) (*models.Job, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	job, exists := s.jobs[jobID]
	if !exists {
		return nil, fmt.Errorf("job not found: %s", jobID)
	}
	snapshot := *job
	return &snapshot, nil
}

// GetResult retrieves the result of a completed job.
func (s *JobService) GetResult(jobID string) (*models.StatisticResult, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	result, exists := s.results[jobID]
	if !exists {
		return nil, fmt.Errorf("result not found for job: %s", jobID)
	}
	return result, nil
}

// List returns all jobs for a dataset.
func (s *JobService) List(datasetID string) []*models.Job {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var jobs []*models.Job
	for _, job := range s.jobs {
		if job.DatasetID == datasetID {
			snapshot := *job
			jobs = append(jobs, &snapshot)
		}
	}
	return jobs
}

func (s *JobService) processJob(jobID string) {
	s.workers <- struct{}{}
	defer func() { <-s.workers }()

	s.mutex.Lock()
	job, exists := s.jobs[jobID]
	if !exists {
		s.mutex.Unlock()
		return
	}
	now := time.Now()
	job.Status = models.JobStatusRunning
	job.StartedAt = &now
	job.UpdatedAt = now
	statistic, _ := s.registry.Get(job.Statistic)
	datasetID := job.DatasetID
	params := job.Parameters
	s.mutex.Unlock()

	g, err := s.datasetService.Graph(datasetID)
	var result *models.StatisticResult
	if err == nil {
		start := time.Now()
		result, err = statistic.Compute(g, params)
		if result != nil {
			result.ProcessingTimeMS = time.Since(start).Milliseconds()
		}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	completed := time.Now()
	job.UpdatedAt = completed
	job.CompletedAt = &completed
	if err != nil {
		job.Status = models.JobStatusFailed
		job.Error = err.Error()
		log.Error().Str("job_id", jobID).Err(err).Msg("Job failed")
		return
	}
	job.Status = models.JobStatusCompleted
	s.results[jobID] = result

	log.Info().
		Str("job_id", jobID).
		Str("statistic", string(job.Statistic)).
		Int64("processing_ms", result.ProcessingTimeMS).
		Msg("Job completed")
}

func (s *JobService) cleanupLoop() {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-s.resultTTL)

		s.mutex.Lock()
		removed := 0
		for id, job := range s.jobs {
			done := job.Status == models.JobStatusCompleted || job.Status == models.JobStatusFailed
			if done && job.UpdatedAt.Before(cutoff) {
				delete(s.jobs, id)
				delete(s.results, id)
				removed++
			}
		}
		s.mutex.Unlock()

		if removed > 0 {
			log.Debug().Int("removed", removed).Msg("Expired jobs cleaned up")
		}
	}
}
