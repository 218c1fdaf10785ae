package bfs

import "github.com/katalvlaran/pathgraph/core"

// Outgoing adapts a core.Graph to Neighborhood following edge direction.
type Outgoing struct {
	G *core.Graph
}

// Contains reports whether n is a node of the graph.
func (o Outgoing) Contains(n core.Node) bool { return o.G.HasNode(n) }

// Adjacent returns the destinations of n's outgoing edges in input order.
func (o Outgoing) Adjacent(n core.Node) []core.Node {
	out := make([]core.Node, 0, o.G.OutDegree(n))
	o.G.Range(n, func(e core.Edge) bool {
		out = append(out, e.To)
		return true
	})

	return out
}
