package service

import (
	"fmt"

	"github.com/gilchrisn/graph-assortativity-service/models"
	"github.com/gilchrisn/graph-assortativity-service/pkg/assortativity"
	"github.com/gilchrisn/graph-assortativity-service/pkg/graph"
)

// Statistic defines the interface for degree statistics the service can run.
type Statistic interface {
	// Name returns the statistic identifier used by the API.
	Name() models.StatisticType

	// Validate checks that the statistic is applicable to the given graph.
	Validate(g graph.Graph, params models.JobParameters) error

	// Compute runs the statistic and fills in the matching result field.
	Compute(g graph.Graph, params models.JobParameters) (*models.StatisticResult, error)
}

// Registry manages the available statistics.
type Registry struct {
	statistics map[models.StatisticType]Statistic
	order      []models.StatisticType
}

// NewRegistry creates a registry with every supported statistic registered.
func NewRegistry() *Registry {
	r := &Registry{statistics: make(map[models.StatisticType]Statistic)}

	r.Register(&neighborDegreeStatistic{name: models.StatAverageNeighborDegree})
	r.Register(&neighborDegreeStatistic{name: models.StatAverageNeighborInDegree, directedOnly: true})
	r.Register(&neighborDegreeStatistic{name: models.StatAverageNeighborOutDegree, directedOnly: true})
	r.Register(&connectivityStatistic{name: models.StatAverageDegreeConnectivity})
	r.Register(&connectivityStatistic{name: models.StatAverageInDegreeConnectivity, directedOnly: true})
	r.Register(&connectivityStatistic{name: models.StatAverageOutDegreeConnectivity, directedOnly: true})
	r.Register(&coefficientStatistic{})

	return r
}

// Register adds a statistic to the registry.
func (r *Registry) Register(s Statistic) {
	if _, exists := r.statistics[s.Name()]; !exists {
		r.order = append(r.order, s.Name())
	}
	r.statistics[s.Name()] = s
}

// Get retrieves a statistic by name.
func (r *Registry) Get(name models.StatisticType) (Statistic, bool) {
	s, exists := r.statistics[name]
	return s, exists
}

// List returns all statistic names in registration order.
func (r *Registry) List() []models.StatisticType {
	names := make([]models.StatisticType, len(r.order))
	copy(names, r.order)
	return names
}

func validateDirected(g graph.Graph, name models.StatisticType, directedOnly bool) error {
	if directedOnly && !g.IsDirected() {
		return fmt.Errorf("%s: %w", name, assortativity.ErrNotDirected)
	}
	return nil
}

// neighborDegreeStatistic covers the three per-node averaging variants.
type neighborDegreeStatistic struct {
	name         models.StatisticType
	directedOnly bool
}

func (s *neighborDegreeStatistic) Name() models.StatisticType { return s.name }

func (s *neighborDegreeStatistic) Validate(g graph.Graph, params models.JobParameters) error {
	return validateDirected(g, s.name, s.directedOnly)
}

func (s *neighborDegreeStatistic) Compute(g graph.Graph, params models.JobParameters) (*models.StatisticResult, error) {
	var (
		perNode map[int64]float64
		err     error
	)
	switch s.name {
	case models.StatAverageNeighborInDegree:
		perNode, err = assortativity.AverageNeighborInDegree(g, params.Nodes, params.Weighted)
	case models.StatAverageNeighborOutDegree:
		perNode, err = assortativity.AverageNeighborOutDegree(g, params.Nodes, params.Weighted)
	default:
		perNode = assortativity.AverageNeighborDegree(g, params.Nodes, params.Weighted)
	}
	if err != nil {
		return nil, err
	}
	return &models.StatisticResult{Statistic: s.name, PerNode: perNode}, nil
}

// connectivityStatistic covers the three degree-class averaging variants.
type connectivityStatistic struct {
	name         models.StatisticType
	directedOnly bool
}

func (s *connectivityStatistic) Name() models.StatisticType { return s.name }

func (s *connectivityStatistic) Validate(g graph.Graph, params models.JobParameters) error {
	return validateDirected(g, s.name, s.directedOnly)
}

func (s *connectivityStatistic) Compute(g graph.Graph, params models.JobParameters) (*models.StatisticResult, error) {
	var (
		perDegree map[int]float64
		err       error
	)
	switch s.name {
	case models.StatAverageInDegreeConnectivity:
		perDegree, err = assortativity.AverageInDegreeConnectivity(g, params.Nodes, params.Weighted)
	case models.StatAverageOutDegreeConnectivity:
		perDegree, err = assortativity.AverageOutDegreeConnectivity(g, params.Nodes, params.Weighted)
	default:
		perDegree = assortativity.AverageDegreeConnectivity(g, params.Nodes, params.Weighted)
	}
	if err != nil {
		return nil, err
	}
	return &models.StatisticResult{Statistic: s.name, PerDegree: perDegree}, nil
}

// coefficientStatistic computes the scalar degree assortativity coefficient.
type coefficientStatistic struct{}

func (s *coefficientStatistic) Name() models.StatisticType {
	return models.StatDegreeAssortativity
}

func (s *coefficientStatistic) Validate(g graph.Graph, params models.JobParameters) error {
	if params.Nodes != nil {
		return fmt.Errorf("%s does not support node selections", s.Name())
	}
	return nil
}

func (s *coefficientStatistic) Compute(g graph.Graph, params models.JobParameters) (*models.StatisticResult, error) {
	coeff, err := assortativity.DegreeAssortativityCoefficient(g)
	if err != nil {
		return nil, err
	}
	return &models.StatisticResult{Statistic: s.Name(), Coefficient: &coeff}, nil
}
