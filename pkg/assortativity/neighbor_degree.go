// Package assortativity computes second-order degree statistics over a
// read-only graph: the average degree of each node's neighbors, the average
// nearest-neighbor degree per degree class (the k-nearest-neighbors curve),
// and the degree assortativity coefficient.
//
// For a node i the average neighbor degree is
//
//	k_nn(i) = (1/|N(i)|) * sum_{j in N(i)} k_j
//
// and for weighted graphs the analogous measure of Barrat et al. (PNAS 101,
// 2004) divides the weight-scaled neighbor degrees by the weighted degree
// s_i instead. Both normalizations are kept exactly as published: the
// weighted branch divides a weighted sum by the weighted degree, the
// unweighted branch divides by the plain degree count.
package assortativity

import (
	"errors"

	"github.com/gilchrisn/graph-assortativity-service/pkg/graph"
)

// ErrNotDirected is returned when an in-degree or out-degree variant is
// invoked on an undirected graph.
var ErrNotDirected = errors.New("not defined for undirected graphs")

// degreeFunc looks up one node's degree under a fixed direction.
type degreeFunc func(id int64, weighted bool) float64

func degreeOf(g graph.Graph, dir graph.Direction) degreeFunc {
	return func(id int64, weighted bool) float64 {
		return g.Degree(id, dir, weighted)
	}
}

// AverageNeighborDegree returns the average degree of the neighborhood of
// each selected node, keyed by node ID. A nil selection means all nodes.
// Nodes with zero degree map to 0.
func AverageNeighborDegree(g graph.Graph, nodes []int64, weighted bool) map[int64]float64 {
	return averageNeighborDegree(g, degreeOf(g, graph.All), nodes, weighted)
}

// AverageNeighborInDegree is AverageNeighborDegree restricted to in-degrees.
// Only defined for directed graphs.
func AverageNeighborInDegree(g graph.Graph, nodes []int64, weighted bool) (map[int64]float64, error) {
	if !g.IsDirected() {
		return nil, ErrNotDirected
	}
	return averageNeighborDegree(g, degreeOf(g, graph.In), nodes, weighted), nil
}

// AverageNeighborOutDegree is AverageNeighborDegree restricted to
// out-degrees. Only defined for directed graphs.
func AverageNeighborOutDegree(g graph.Graph, nodes []int64, weighted bool) (map[int64]float64, error) {
	if !g.IsDirected() {
		return nil, ErrNotDirected
	}
	return averageNeighborDegree(g, degreeOf(g, graph.Out), nodes, weighted), nil
}

func averageNeighborDegree(g graph.Graph, degree degreeFunc, nodes []int64, weighted bool) map[int64]float64 {
	result := make(map[int64]float64)
	for _, n := range graph.Selection(g, nodes) {
		sum := 0.0
		for _, nbr := range g.Neighbors(n) {
			d := degree(nbr.ID, false)
			if weighted {
				sum += nbr.Weight * d
			} else {
				sum += d
			}
		}

		// A zero-degree node has no neighbors, so the raw sum (0) stands.
		result[n] = sum
		if norm := degree(n, weighted); norm > 0 {
			result[n] = sum / norm
		}
	}
	return result
}
