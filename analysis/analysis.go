package analysis

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/bfs"
	"github.com/katalvlaran/pathgraph/core"
	"github.com/katalvlaran/pathgraph/dfs"
)

// Analyze computes node and edge counts, undirected connected components,
// connectivity and directed density of g, and whether g is acyclic.
//
// Returns core.ErrEmptyGraph when g has no nodes (nil or zero Graph).
func Analyze(g *core.Graph) (*Result, error) {
	if g.Len() == 0 {
		return nil, core.ErrEmptyGraph
	}

	view := newUndirectedView(g)
	comps, err := components(view)
	if err != nil {
		return nil, err
	}

	nodeCount := len(view.order)
	edgeCount := g.EdgeCount()

	return &Result{
		NodeCount:   nodeCount,
		EdgeCount:   edgeCount,
		IsConnected: len(comps) == 1,
		Components:  comps,
		Density:     Density(nodeCount, edgeCount),
		IsAcyclic:   dfs.IsAcyclic(g),
	}, nil
}

// Density returns edges / (nodes·(nodes−1)), or 0 when nodes ≤ 1.
// The value is not clamped to [0,1].
func Density(nodes, edges int) float64 {
	if nodes <= 1 {
		return 0
	}

	return float64(edges) / (float64(nodes) * float64(nodes-1))
}

// components flood-fills the view from each unassigned node in order.
func components(view *undirectedView) ([][]core.Node, error) {
	assigned := make(map[core.Node]bool, len(view.order))
	var comps [][]core.Node
	for _, n := range view.order {
		if assigned[n] {
			continue
		}
		res, err := bfs.Walk(view, n)
		if err != nil {
			return nil, fmt.Errorf("analysis: component walk from %s: %w", n, err)
		}
		for _, m := range res.Order {
			assigned[m] = true
		}
		comps = append(comps, res.Order)
	}

	return comps, nil
}
