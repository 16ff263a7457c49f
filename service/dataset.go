package service

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/gilchrisn/graph-assortativity-service/models"
	"github.com/gilchrisn/graph-assortativity-service/pkg/graph"
	"github.com/gilchrisn/graph-assortativity-service/pkg/parser"
)

// DatasetService keeps uploaded graphs in memory, keyed by dataset ID.
type DatasetService struct {
	datasets map[string]*models.Dataset
	graphs   map[string]*graph.AdjacencyGraph
	maxBytes int64
	mutex    sync.RWMutex
}

// NewDatasetService creates a new dataset service. maxBytes bounds the size
// of a single uploaded edge list.
func NewDatasetService(maxBytes int64) *DatasetService {
	return &DatasetService{
		datasets: make(map[string]*models.Dataset),
		graphs:   make(map[string]*graph.AdjacencyGraph),
		maxBytes: maxBytes,
	}
}

// Upload parses an edge list into a new dataset.
func (s *DatasetService) Upload(name string, directed bool, r io.Reader, size int64) (*models.Dataset, error) {
	if size > s.maxBytes {
		return nil, fmt.Errorf("edge list too large: %d bytes (limit %d)", size, s.maxBytes)
	}

	g, err := parser.ParseEdgeList(io.LimitReader(r, s.maxBytes), directed)
	if err != nil {
		return nil, err
	}

	datasetID := uuid.New().String()
	now := time.Now()
	dataset := &models.Dataset{
		ID:       datasetID,
		Name:     name,
		Directed: directed,
		Metadata: models.DatasetMetadata{
			NodeCount: g.NumNodes(),
			EdgeCount: g.NumEdges(),
			FileSize:  size,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mutex.Lock()
	s.datasets[datasetID] = dataset
	s.graphs[datasetID] = g
	s.mutex.Unlock()

	log.Info().
		Str("dataset_id", datasetID).
		Str("name", name).
		Bool("directed", directed).
		Int("nodes", g.NumNodes()).
		Int("edges", g.NumEdges()).
		Msg("Dataset uploaded")

	return dataset, nil
}

// Get retrieves a dataset by ID.
func (s *DatasetService) Get(datasetID string) (*models.Dataset, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	dataset, exists := s.datasets[datasetID]
	if !exists {
		return nil, fmt.Errorf("dataset not found: %s", datasetID)
	}
	return dataset, nil
}

// Graph retrieves the parsed graph backing a dataset.
func (s *DatasetService) Graph(datasetID string) (graph.Graph, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	g, exists := s.graphs[datasetID]
	if !exists {
		return nil, fmt.Errorf("dataset not found: %s", datasetID)
	}
	return g, nil
}

// List returns all datasets.
func (s *DatasetService) List() []*models.Dataset {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	datasets := make([]*models.Dataset, 0, len(s.datasets))
	for _, dataset := range s.datasets {
		datasets = append(datasets, dataset)
	}
	return datasets
}

// Delete removes a dataset and its graph.
func (s *DatasetService) Delete(datasetID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.datasets[datasetID]; !exists {
		return fmt.Errorf("dataset not found: %s", datasetID)
	}
	delete(s.datasets, datasetID)
	delete(s.graphs, datasetID)

	log.Info().Str("dataset_id", datasetID).Msg("Dataset deleted")
	return nil
}
