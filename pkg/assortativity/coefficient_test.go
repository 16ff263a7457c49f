package assortativity

import (
	"errors"
	"math"
	"testing"

	"github.com/gilchrisn/graph-assortativity-service/pkg/graph"
)

func TestDegreeAssortativityCoefficientPath(t *testing.T) {
	got, err := DegreeAssortativityCoefficient(pathGraph())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-(-0.5)) > epsilon {
		t.Errorf("path graph: got %v, want -0.5", got)
	}
}

func TestDegreeAssortativityCoefficientStar(t *testing.T) {
	g := graph.NewUndirectedGraph()
	for leaf := int64(1); leaf <= 3; leaf++ {
		g.AddEdge(0, leaf)
	}

	got, err := DegreeAssortativityCoefficient(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-(-1.0)) > epsilon {
		t.Errorf("star graph: got %v, want -1.0", got)
	}
}

func TestDegreeAssortativityCoefficientDirected(t *testing.T) {
	g := graph.NewDirectedGraph()
	g.AddPath(0, 1, 2, 3)
	g.AddEdge(0, 2)

	// Out-degrees of sources [2,1,1,2] against in-degrees of targets
	// [1,2,1,2] are uncorrelated.
	got, err := DegreeAssortativityCoefficient(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got) > epsilon {
		t.Errorf("directed graph: got %v, want 0.0", got)
	}
}

func TestDegreeAssortativityCoefficientNoEdges(t *testing.T) {
	g := graph.NewUndirectedGraph()
	g.AddNode(0)
	g.AddNode(1)

	if _, err := DegreeAssortativityCoefficient(g); !errors.Is(err, ErrNoEdges) {
		t.Errorf("got %v, want ErrNoEdges", err)
	}
}
