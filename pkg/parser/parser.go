// Package parser loads edge-list files into adjacency graphs. The format is
// one edge per line, "u v" or "u v weight", whitespace separated, with '#'
// starting a comment. Missing weights default to 1.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gilchrisn/graph-assortativity-service/pkg/graph"
)

// LoadEdgeList reads an edge-list file from disk.
func LoadEdgeList(path string, directed bool) (*graph.AdjacencyGraph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open edge list: %w", err)
	}
	defer file.Close()

	g, err := ParseEdgeList(file, directed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return g, nil
}

// ParseEdgeList reads edges from r into a new graph.
func ParseEdgeList(r io.Reader, directed bool) (*graph.AdjacencyGraph, error) {
	var g *graph.AdjacencyGraph
	if directed {
		g = graph.NewDirectedGraph()
	} else {
		g = graph.NewUndirectedGraph()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 'u v [weight]', got %q", lineNum, line)
		}

		u, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid source node %q", lineNum, fields[0])
		}
		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid target node %q", lineNum, fields[1])
		}

		weight := 1.0
		if len(fields) == 3 {
			weight, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid weight %q", lineNum, fields[2])
			}
			if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
				return nil, fmt.Errorf("line %d: edge weight must be positive and finite: %v", lineNum, weight)
			}
		}

		g.AddWeightedEdge(u, v, weight)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read edge list: %w", err)
	}

	return g, nil
}
