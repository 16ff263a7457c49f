package graph

// Direction selects which incident edges count toward a node's degree.
// On undirected graphs every direction is equivalent to All.
type Direction int

const (
	All Direction = iota
	In
	Out
)

func (d Direction) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	default:
		return "all"
	}
}

// Neighbor is one adjacent node together with the weight of the connecting
// edge. Implementations report weight 1 for edges with no explicit weight.
type Neighbor struct {
	ID     int64
	Weight float64
}

// Graph is the read-only contract the statistics package consumes. On
// directed graphs Neighbors enumerates successors only, while Degree honors
// the requested direction.
type Graph interface {
	IsDirected() bool

	// Nodes returns the full node set in graph-defined, deterministic order.
	Nodes() []int64

	HasNode(id int64) bool

	// Neighbors returns the adjacent nodes of id with edge weights.
	Neighbors(id int64) []Neighbor

	// Degree returns the edge count (weighted=false) or the sum of incident
	// edge weights (weighted=true) in the given direction.
	Degree(id int64, dir Direction, weighted bool) float64
}

// Selection resolves an optional node selection against g. A nil selection
// means every node in graph order; otherwise nodes absent from g are
// filtered out and the given order is preserved.
func Selection(g Graph, nodes []int64) []int64 {
	if nodes == nil {
		return g.Nodes()
	}
	selected := make([]int64, 0, len(nodes))
	for _, id := range nodes {
		if g.HasNode(id) {
			selected = append(selected, id)
		}
	}
	return selected
}

// Degrees looks up the degree of every node in ids at once.
func Degrees(g Graph, ids []int64, dir Direction, weighted bool) map[int64]float64 {
	degrees := make(map[int64]float64, len(ids))
	for _, id := range ids {
		degrees[id] = g.Degree(id, dir, weighted)
	}
	return degrees
}
