package assortativity

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/gilchrisn/graph-assortativity-service/pkg/graph"
)

const epsilon = 1e-12

// pathGraph builds the undirected path 0-1-2-3.
func pathGraph() *graph.AdjacencyGraph {
	g := graph.NewUndirectedGraph()
	g.AddPath(0, 1, 2, 3)
	return g
}

// directedPathGraph builds the directed path 0->1->2->3.
func directedPathGraph() *graph.AdjacencyGraph {
	g := graph.NewDirectedGraph()
	g.AddPath(0, 1, 2, 3)
	return g
}

func checkNodeAverages(t *testing.T, got map[int64]float64, want map[int64]float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("result has %d entries, want %d: %v", len(got), len(want), got)
	}
	for node, expected := range want {
		actual, exists := got[node]
		if !exists {
			t.Errorf("missing node %d in result", node)
			continue
		}
		if math.Abs(actual-expected) > epsilon {
			t.Errorf("node %d: got %v, want %v", node, actual, expected)
		}
	}
}

func TestAverageNeighborDegreePath(t *testing.T) {
	got := AverageNeighborDegree(pathGraph(), nil, false)
	checkNodeAverages(t, got, map[int64]float64{
		0: 2.0, 1: 1.5, 2: 1.5, 3: 2.0,
	})
}

func TestAverageNeighborDegreeWeightedPath(t *testing.T) {
	g := pathGraph()
	if err := g.SetEdgeWeight(0, 1, 5.0); err != nil {
		t.Fatal(err)
	}
	if err := g.SetEdgeWeight(2, 3, 3.0); err != nil {
		t.Fatal(err)
	}

	// Unweighted result is unaffected by edge weights.
	checkNodeAverages(t, AverageNeighborDegree(g, nil, false), map[int64]float64{
		0: 2.0, 1: 1.5, 2: 1.5, 3: 2.0,
	})

	// Weighted: sum of weight-scaled neighbor degrees over weighted degree.
	checkNodeAverages(t, AverageNeighborDegree(g, nil, true), map[int64]float64{
		0: 2.0, 1: 1.1666666666666667, 2: 1.25, 3: 2.0,
	})
}

func TestAverageNeighborInDegreeDirectedPath(t *testing.T) {
	got, err := AverageNeighborInDegree(directedPathGraph(), nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkNodeAverages(t, got, map[int64]float64{
		0: 1.0, 1: 1.0, 2: 1.0, 3: 0.0,
	})
}

func TestAverageNeighborOutDegreeDirectedPath(t *testing.T) {
	got, err := AverageNeighborOutDegree(directedPathGraph(), nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkNodeAverages(t, got, map[int64]float64{
		0: 1.0, 1: 1.0, 2: 0.0, 3: 0.0,
	})
}

func TestDirectedVariantsRejectUndirectedGraphs(t *testing.T) {
	g := pathGraph()

	if _, err := AverageNeighborInDegree(g, nil, false); !errors.Is(err, ErrNotDirected) {
		t.Errorf("AverageNeighborInDegree: got %v, want ErrNotDirected", err)
	}
	if _, err := AverageNeighborOutDegree(g, nil, false); !errors.Is(err, ErrNotDirected) {
		t.Errorf("AverageNeighborOutDegree: got %v, want ErrNotDirected", err)
	}
	if _, err := AverageInDegreeConnectivity(g, nil, false); !errors.Is(err, ErrNotDirected) {
		t.Errorf("AverageInDegreeConnectivity: got %v, want ErrNotDirected", err)
	}
	if _, err := AverageOutDegreeConnectivity(g, nil, false); !errors.Is(err, ErrNotDirected) {
		t.Errorf("AverageOutDegreeConnectivity: got %v, want ErrNotDirected", err)
	}
}

func TestAverageNeighborDegreeIsolatedNodes(t *testing.T) {
	g := pathGraph()
	g.AddNode(10)
	g.AddNode(11)

	got := AverageNeighborDegree(g, nil, false)
	for _, isolated := range []int64{10, 11} {
		if got[isolated] != 0.0 {
			t.Errorf("isolated node %d: got %v, want 0.0", isolated, got[isolated])
		}
	}

	// Same for the weighted variant, and never a division error.
	got = AverageNeighborDegree(g, nil, true)
	if got[10] != 0.0 {
		t.Errorf("isolated node 10 weighted: got %v, want 0.0", got[10])
	}
}

func TestAverageNeighborDegreeSelection(t *testing.T) {
	g := pathGraph()

	got := AverageNeighborDegree(g, []int64{3, 1}, false)
	checkNodeAverages(t, got, map[int64]float64{3: 2.0, 1: 1.5})

	// Nodes absent from the graph are filtered, not an error.
	got = AverageNeighborDegree(g, []int64{1, 99}, false)
	checkNodeAverages(t, got, map[int64]float64{1: 1.5})

	// An explicitly empty selection yields an empty result.
	got = AverageNeighborDegree(g, []int64{}, false)
	if len(got) != 0 {
		t.Errorf("empty selection: got %v, want empty map", got)
	}
}

func TestAverageNeighborDegreeSelfLoop(t *testing.T) {
	g := graph.NewUndirectedGraph()
	g.AddEdge(0, 0)
	g.AddEdge(0, 1)

	// Node 0 has degree 3 (self-loop counts twice) and neighbors {0, 1}.
	got := AverageNeighborDegree(g, nil, false)
	checkNodeAverages(t, got, map[int64]float64{
		0: (3.0 + 1.0) / 3.0,
		1: 3.0,
	})
}

func TestAverageNeighborDegreeIdempotent(t *testing.T) {
	g := pathGraph()
	first := AverageNeighborDegree(g, nil, true)
	second := AverageNeighborDegree(g, nil, true)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ: %v vs %v", first, second)
	}
}
