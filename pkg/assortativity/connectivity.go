package assortativity

import (
	"github.com/gilchrisn/graph-assortativity-service/pkg/graph"
)

// AverageDegreeConnectivity computes the average nearest-neighbor degree of
// nodes with degree k, for every degree value k realized by the selection.
// Unlike AverageNeighborDegree this pools the neighbor-degree mass and the
// normalizing degree mass of all nodes sharing a degree class before
// dividing, yielding the classic k-nearest-neighbors assortativity curve.
// Grouping is always by unweighted degree; in weighted mode the class norm
// accumulates weighted degrees instead of k per node.
func AverageDegreeConnectivity(g graph.Graph, nodes []int64, weighted bool) map[int]float64 {
	return averageDegreeConnectivity(g, graph.All, nodes, weighted)
}

// AverageInDegreeConnectivity is AverageDegreeConnectivity restricted to
// in-degrees. Only defined for directed graphs.
func AverageInDegreeConnectivity(g graph.Graph, nodes []int64, weighted bool) (map[int]float64, error) {
	if !g.IsDirected() {
		return nil, ErrNotDirected
	}
	return averageDegreeConnectivity(g, graph.In, nodes, weighted), nil
}

// AverageOutDegreeConnectivity is AverageDegreeConnectivity restricted to
// out-degrees. Only defined for directed graphs.
func AverageOutDegreeConnectivity(g graph.Graph, nodes []int64, weighted bool) (map[int]float64, error) {
	if !g.IsDirected() {
		return nil, ErrNotDirected
	}
	return averageDegreeConnectivity(g, graph.Out, nodes, weighted), nil
}

// KNearestNeighbors is another common name for AverageDegreeConnectivity.
func KNearestNeighbors(g graph.Graph, nodes []int64, weighted bool) map[int]float64 {
	return AverageDegreeConnectivity(g, nodes, weighted)
}

// NeighborConnectivity is another common name for AverageDegreeConnectivity.
func NeighborConnectivity(g graph.Graph, nodes []int64, weighted bool) map[int]float64 {
	return AverageDegreeConnectivity(g, nodes, weighted)
}

func averageDegreeConnectivity(g graph.Graph, dir graph.Direction, nodes []int64, weighted bool) map[int]float64 {
	degree := degreeOf(g, dir)
	selected := graph.Selection(g, nodes)
	degrees := graph.Degrees(g, selected, dir, false)

	dsum := make(map[int]float64)
	dnorm := make(map[int]float64)
	for _, n := range selected {
		k := int(degrees[n])

		sum := 0.0
		for _, nbr := range g.Neighbors(n) {
			d := degree(nbr.ID, false)
			if weighted {
				sum += nbr.Weight * d
			} else {
				sum += d
			}
		}
		dsum[k] += sum

		if weighted {
			dnorm[k] += degree(n, true)
		} else {
			dnorm[k] += float64(k)
		}
	}

	dc := make(map[int]float64, len(dsum))
	for k, sum := range dsum {
		dc[k] = sum
		if sum > 0 {
			dc[k] = sum / dnorm[k]
		}
	}
	return dc
}
