package analysis

import "github.com/katalvlaran/pathgraph/core"

// Result is the outcome of Analyze.
type Result struct {
	// NodeCount is the number of distinct nodes.
	NodeCount int

	// EdgeCount is the number of stored directed edges.
	EdgeCount int

	// IsConnected is true iff a single component covers every node.
	IsConnected bool

	// Components partitions the nodes; every node appears in exactly one.
	Components [][]core.Node

	// Density is EdgeCount / (NodeCount·(NodeCount−1)), or 0 for ≤ 1 node.
	// It is not capped at 1.
	Density float64

	// IsAcyclic is true iff the directed graph has no cycle; a self-loop
	// counts as one.
	IsAcyclic bool
}
