// Package core declares Node, Edge and Graph.
//
// This file holds the type declarations only; constructors and the node
// predicate live in node.go, the read API in methods.go.
package core

// Kind tells which variant a Node holds.
type Kind uint8

const (
	// KindInvalid is the zero Kind: the Node holds neither text nor a number.
	KindInvalid Kind = iota

	// KindText marks a Node identified by a text label.
	KindText

	// KindNumber marks a Node identified by a numeric value.
	KindNumber
)

// String returns a lowercase name for the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "invalid"
	}
}

// Node identifies a vertex. It is either a text label or a number.
//
// Node is a small comparable value: two Nodes are equal iff they hold the
// same kind and the same value, which makes Node directly usable as a map
// key. The zero Node is invalid (KindInvalid).
type Node struct {
	kind Kind
	text string
	num  float64
}

// Edge is a directed, weighted connection From → To.
//
// Weight must be finite and non-negative for the edge to pass validation.
type Edge struct {
	// From is the source node.
	From Node

	// To is the destination node.
	To Node

	// Weight is the traversal cost of the edge.
	Weight float64
}

// Graph is an immutable adjacency-list graph.
//
// adjacency maps every known node (source or destination of some edge) to
// its outgoing edges in input order; nodes without outgoing edges map to an
// empty slice. order remembers the first-seen order of nodes so that every
// iteration over the graph is deterministic.
//
// The only way to obtain a populated Graph is Build. The zero value and a
// nil *Graph both behave as the empty graph.
type Graph struct {
	order     []Node
	adjacency map[Node][]Edge
	edgeCount int
}
