package assortativity

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"github.com/gilchrisn/graph-assortativity-service/pkg/graph"
)

// ErrNoEdges is returned when a coefficient is requested on a graph without
// edges, where degree correlation is undefined.
var ErrNoEdges = errors.New("degree assortativity is undefined for graphs with no edges")

// DegreeAssortativityCoefficient computes the Pearson correlation of the
// degrees at either end of each edge. Positive values indicate assortative
// mixing (high-degree nodes attach to high-degree nodes), negative values
// disassortative mixing. On directed graphs the source's out-degree is
// correlated against the target's in-degree; on undirected graphs each edge
// contributes both orientations so the measure is symmetric.
func DegreeAssortativityCoefficient(g graph.Graph) (float64, error) {
	srcDir, dstDir := graph.All, graph.All
	if g.IsDirected() {
		srcDir, dstDir = graph.Out, graph.In
	}

	var x, y []float64
	for _, n := range g.Nodes() {
		dn := g.Degree(n, srcDir, false)
		for _, nbr := range g.Neighbors(n) {
			x = append(x, dn)
			y = append(y, g.Degree(nbr.ID, dstDir, false))
		}
	}
	if len(x) == 0 {
		return 0, ErrNoEdges
	}
	return stat.Correlation(x, y, nil), nil
}
