package graph

import (
	"sort"

	gonumgraph "gonum.org/v1/gonum/graph"
)

// GonumGraph adapts a gonum graph (e.g. simple.WeightedUndirectedGraph) to
// the Graph contract. Edge weights are read through the gonum Weighted
// interface when available, defaulting to 1 otherwise.
type GonumGraph struct {
	g        gonumgraph.Graph
	directed gonumgraph.Directed // nil for undirected graphs
	weighted gonumgraph.Weighted // nil for unweighted graphs
}

// FromGonum wraps g. Directedness and weighting are detected from the
// interfaces the concrete graph type satisfies.
func FromGonum(g gonumgraph.Graph) *GonumGraph {
	wrapped := &GonumGraph{g: g}
	if dg, ok := g.(gonumgraph.Directed); ok {
		wrapped.directed = dg
	}
	if wg, ok := g.(gonumgraph.Weighted); ok {
		wrapped.weighted = wg
	}
	return wrapped
}

func (g *GonumGraph) IsDirected() bool { return g.directed != nil }

// Nodes returns all node IDs in ascending order. Gonum node iteration order
// is not deterministic, so sort for a stable graph-defined order.
func (g *GonumGraph) Nodes() []int64 {
	var ids []int64
	it := g.g.Nodes()
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (g *GonumGraph) HasNode(id int64) bool {
	return g.g.Node(id) != nil
}

func (g *GonumGraph) Neighbors(id int64) []Neighbor {
	var neighbors []Neighbor
	it := g.g.From(id)
	for it.Next() {
		nid := it.Node().ID()
		neighbors = append(neighbors, Neighbor{ID: nid, Weight: g.edgeWeight(id, nid)})
	}
	return neighbors
}

func (g *GonumGraph) Degree(id int64, dir Direction, weighted bool) float64 {
	if g.g.Node(id) == nil {
		return 0
	}
	if g.directed == nil {
		return g.sumDirection(id, Out, weighted)
	}
	switch dir {
	case In:
		return g.sumDirection(id, In, weighted)
	case Out:
		return g.sumDirection(id, Out, weighted)
	default:
		return g.sumDirection(id, In, weighted) + g.sumDirection(id, Out, weighted)
	}
}

func (g *GonumGraph) sumDirection(id int64, dir Direction, weighted bool) float64 {
	var it gonumgraph.Nodes
	if dir == In {
		it = g.directed.To(id)
	} else {
		it = g.g.From(id)
	}

	total := 0.0
	for it.Next() {
		if !weighted {
			total++
			continue
		}
		nid := it.Node().ID()
		if dir == In {
			total += g.edgeWeight(nid, id)
		} else {
			total += g.edgeWeight(id, nid)
		}
	}
	return total
}

func (g *GonumGraph) edgeWeight(uid, vid int64) float64 {
	if g.weighted == nil {
		return 1.0
	}
	if w, ok := g.weighted.Weight(uid, vid); ok {
		return w
	}
	return 1.0
}
