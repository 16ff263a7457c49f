package assortativity

import (
	"math"
	"reflect"
	"testing"

	"github.com/gilchrisn/graph-assortativity-service/pkg/graph"
)

func checkDegreeAverages(t *testing.T, got map[int]float64, want map[int]float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("result has %d entries, want %d: %v", len(got), len(want), got)
	}
	for k, expected := range want {
		actual, exists := got[k]
		if !exists {
			t.Errorf("missing degree class %d in result", k)
			continue
		}
		if math.Abs(actual-expected) > epsilon {
			t.Errorf("degree %d: got %v, want %v", k, actual, expected)
		}
	}
}

func TestAverageDegreeConnectivityPath(t *testing.T) {
	got := AverageDegreeConnectivity(pathGraph(), nil, false)
	checkDegreeAverages(t, got, map[int]float64{1: 2.0, 2: 1.5})
}

func TestAverageDegreeConnectivityWeightedPath(t *testing.T) {
	g := pathGraph()
	if err := g.SetEdgeWeight(1, 2, 3.0); err != nil {
		t.Fatal(err)
	}

	// Degree classes are still keyed by unweighted degree; only the pooled
	// sums and norms change.
	checkDegreeAverages(t, AverageDegreeConnectivity(g, nil, false), map[int]float64{
		1: 2.0, 2: 1.5,
	})
	checkDegreeAverages(t, AverageDegreeConnectivity(g, nil, true), map[int]float64{
		1: 2.0, 2: 1.75,
	})
}

func TestAverageDegreeConnectivityAliases(t *testing.T) {
	g := pathGraph()
	want := AverageDegreeConnectivity(g, nil, false)
	if got := KNearestNeighbors(g, nil, false); !reflect.DeepEqual(got, want) {
		t.Errorf("KNearestNeighbors: got %v, want %v", got, want)
	}
	if got := NeighborConnectivity(g, nil, false); !reflect.DeepEqual(got, want) {
		t.Errorf("NeighborConnectivity: got %v, want %v", got, want)
	}
}

func TestAverageOutDegreeConnectivityDirectedPath(t *testing.T) {
	got, err := AverageOutDegreeConnectivity(directedPathGraph(), nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Node 3 has out-degree 0 and no successors, so its class pools zero
	// mass and maps to 0. Nodes 0-2 share class k=1.
	checkDegreeAverages(t, got, map[int]float64{0: 0.0, 1: 2.0 / 3.0})
}

func TestAverageDegreeConnectivityKeys(t *testing.T) {
	g := graph.NewUndirectedGraph()
	// Star: center degree 4, leaves degree 1.
	for leaf := int64(1); leaf <= 4; leaf++ {
		g.AddEdge(0, leaf)
	}
	g.AddNode(100) // isolated, degree 0

	got := AverageDegreeConnectivity(g, nil, false)
	if len(got) != 3 {
		t.Fatalf("expected degree classes {0, 1, 4}, got %v", got)
	}
	checkDegreeAverages(t, got, map[int]float64{0: 0.0, 1: 4.0, 4: 1.0})

	// Restricting the selection restricts the realized classes.
	got = AverageDegreeConnectivity(g, []int64{1, 2}, false)
	checkDegreeAverages(t, got, map[int]float64{1: 4.0})
}

func TestAverageDegreeConnectivityNormMass(t *testing.T) {
	g := graph.NewUndirectedGraph()
	g.AddPath(0, 1, 2, 3, 4)
	g.AddEdge(1, 3)
	g.AddEdge(0, 4)

	// result[k] * norm[k] must re-add to the total neighbor-degree mass,
	// where the unweighted class norm is k times the class population.
	counts := make(map[int]int)
	totalMass := 0.0
	for _, n := range g.Nodes() {
		k := int(g.Degree(n, graph.All, false))
		counts[k]++
		for _, nbr := range g.Neighbors(n) {
			totalMass += g.Degree(nbr.ID, graph.All, false)
		}
	}

	got := AverageDegreeConnectivity(g, nil, false)
	recovered := 0.0
	for k, avg := range got {
		recovered += avg * float64(k) * float64(counts[k])
	}
	if math.Abs(recovered-totalMass) > epsilon {
		t.Errorf("norm mass cross-check: recovered %v, want %v", recovered, totalMass)
	}
}

func TestAverageDegreeConnectivityIdempotent(t *testing.T) {
	g := pathGraph()
	first := AverageDegreeConnectivity(g, nil, true)
	second := AverageDegreeConnectivity(g, nil, true)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ: %v vs %v", first, second)
	}
}
