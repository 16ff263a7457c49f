package models

import (
	"time"
)

// Dataset represents an uploaded edge-list graph held in memory.
type Dataset struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Directed  bool            `json:"directed"`
	Metadata  DatasetMetadata `json:"metadata"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type DatasetMetadata struct {
	NodeCount int   `json:"nodeCount"`
	EdgeCount int   `json:"edgeCount"`
	FileSize  int64 `json:"fileSize"`
}

// StatisticType identifies one of the degree statistics the service can
// compute.
type StatisticType string

const (
	StatAverageNeighborDegree        StatisticType = "average_neighbor_degree"
	StatAverageNeighborInDegree      StatisticType = "average_neighbor_in_degree"
	StatAverageNeighborOutDegree     StatisticType = "average_neighbor_out_degree"
	StatAverageDegreeConnectivity    StatisticType = "average_degree_connectivity"
	StatAverageInDegreeConnectivity  StatisticType = "average_in_degree_connectivity"
	StatAverageOutDegreeConnectivity StatisticType = "average_out_degree_connectivity"
	StatDegreeAssortativity          StatisticType = "degree_assortativity"
)

// JobParameters holds the caller-supplied knobs for a statistic run.
type JobParameters struct {
	Weighted bool `json:"weighted"`
	// Nodes restricts the computation to a selection; nil means all nodes.
	Nodes []int64 `json:"nodes,omitempty"`
}

// Job represents a background statistic computation.
type Job struct {
	ID          string        `json:"id"`
	DatasetID   string        `json:"datasetId"`
	Statistic   StatisticType `json:"statistic"`
	Parameters  JobParameters `json:"parameters"`
	Status      JobStatus     `json:"status"`
	Error       string        `json:"error,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	StartedAt   *time.Time    `json:"startedAt,omitempty"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
}

type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// StatisticResult is the outcome of a completed job. Exactly one of the
// value fields is set, depending on the statistic kind.
type StatisticResult struct {
	Statistic StatisticType `json:"statistic"`
	// PerNode maps node ID to average neighbor degree.
	PerNode map[int64]float64 `json:"perNode,omitempty"`
	// PerDegree maps degree class k to average nearest-neighbor degree.
	PerDegree map[int]float64 `json:"perDegree,omitempty"`
	// Coefficient holds the degree assortativity coefficient.
	Coefficient *float64 `json:"coefficient,omitempty"`

	ProcessingTimeMS int64 `json:"processingTimeMs"`
}

// APIResponse is the uniform JSON envelope for all endpoints.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
