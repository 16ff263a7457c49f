package graph

import (
	"fmt"
)

// AdjacencyGraph is a weighted graph backed by adjacency maps, usable both
// directed and undirected. Nodes keep insertion order so that Nodes() is
// deterministic across calls.
type AdjacencyGraph struct {
	directed bool
	order    []int64
	succ     map[int64]map[int64]float64
	pred     map[int64]map[int64]float64 // directed only; aliases succ when undirected
	numEdges int
}

// NewUndirectedGraph creates an empty undirected graph.
func NewUndirectedGraph() *AdjacencyGraph {
	adj := make(map[int64]map[int64]float64)
	return &AdjacencyGraph{
		directed: false,
		succ:     adj,
		pred:     adj,
	}
}

// NewDirectedGraph creates an empty directed graph.
func NewDirectedGraph() *AdjacencyGraph {
	return &AdjacencyGraph{
		directed: true,
		succ:     make(map[int64]map[int64]float64),
		pred:     make(map[int64]map[int64]float64),
	}
}

// AddNode inserts an isolated node. Adding an existing node is a no-op.
func (g *AdjacencyGraph) AddNode(id int64) {
	if _, exists := g.succ[id]; exists {
		return
	}
	g.order = append(g.order, id)
	g.succ[id] = make(map[int64]float64)
	if g.directed {
		g.pred[id] = make(map[int64]float64)
	}
}

// AddEdge adds an edge with the default weight 1. Missing endpoints are
// created. Re-adding an edge overwrites its weight.
func (g *AdjacencyGraph) AddEdge(u, v int64) {
	g.AddWeightedEdge(u, v, 1.0)
}

// AddWeightedEdge adds an edge with an explicit weight.
func (g *AdjacencyGraph) AddWeightedEdge(u, v int64, weight float64) {
	g.AddNode(u)
	g.AddNode(v)

	if _, exists := g.succ[u][v]; !exists {
		g.numEdges++
	}
	g.succ[u][v] = weight
	if g.directed {
		g.pred[v][u] = weight
	} else if u != v {
		g.succ[v][u] = weight
	}
}

// AddPath adds edges joining consecutive nodes, weight 1 each.
func (g *AdjacencyGraph) AddPath(nodes ...int64) {
	for i := 0; i+1 < len(nodes); i++ {
		g.AddEdge(nodes[i], nodes[i+1])
	}
}

// SetEdgeWeight overwrites the weight of an existing edge.
func (g *AdjacencyGraph) SetEdgeWeight(u, v int64, weight float64) error {
	if _, exists := g.succ[u][v]; !exists {
		return fmt.Errorf("no edge between %d and %d", u, v)
	}
	g.AddWeightedEdge(u, v, weight)
	return nil
}

// EdgeWeight returns the weight of edge u->v and whether it exists.
func (g *AdjacencyGraph) EdgeWeight(u, v int64) (float64, bool) {
	w, exists := g.succ[u][v]
	return w, exists
}

func (g *AdjacencyGraph) NumNodes() int { return len(g.order) }

func (g *AdjacencyGraph) NumEdges() int { return g.numEdges }

func (g *AdjacencyGraph) IsDirected() bool { return g.directed }

func (g *AdjacencyGraph) Nodes() []int64 {
	nodes := make([]int64, len(g.order))
	copy(nodes, g.order)
	return nodes
}

func (g *AdjacencyGraph) HasNode(id int64) bool {
	_, exists := g.succ[id]
	return exists
}

// Neighbors returns the adjacent nodes of id. On directed graphs these are
// the successors. A self-loop appears once.
func (g *AdjacencyGraph) Neighbors(id int64) []Neighbor {
	adj, exists := g.succ[id]
	if !exists {
		return nil
	}
	neighbors := make([]Neighbor, 0, len(adj))
	for nbr, w := range adj {
		neighbors = append(neighbors, Neighbor{ID: nbr, Weight: w})
	}
	return neighbors
}

// Degree returns the degree of id. On undirected graphs a self-loop counts
// twice; on directed graphs All is the sum of in- and out-degree, so a
// self-loop likewise contributes to both sides.
func (g *AdjacencyGraph) Degree(id int64, dir Direction, weighted bool) float64 {
	if !g.HasNode(id) {
		return 0
	}
	if !g.directed {
		return g.sumDegree(g.succ[id], id, weighted, true)
	}
	switch dir {
	case In:
		return g.sumDegree(g.pred[id], id, weighted, false)
	case Out:
		return g.sumDegree(g.succ[id], id, weighted, false)
	default:
		return g.sumDegree(g.pred[id], id, weighted, false) +
			g.sumDegree(g.succ[id], id, weighted, false)
	}
}

func (g *AdjacencyGraph) sumDegree(adj map[int64]float64, id int64, weighted, doubleSelfLoop bool) float64 {
	total := 0.0
	for nbr, w := range adj {
		contrib := 1.0
		if weighted {
			contrib = w
		}
		if doubleSelfLoop && nbr == id {
			contrib *= 2
		}
		total += contrib
	}
	return total
}
