// Package core defines the Node, Edge and Graph types shared by every
// algorithm package, together with the validation and construction
// pipeline that turns a raw edge list into an immutable Graph.
//
// Model:
//
//   - Node: a text label or a finite number. Equality and hashing are by
//     value, so Node is usable as a map key. Text("1") and Number(1) are
//     different nodes; Number(-0) and Number(0) are the same node.
//   - Edge: an ordered triple (From, To, Weight). Edges are always directed;
//     an undirected relation is two edges.
//   - Graph: Node → ordered outgoing []Edge. Every endpoint (source or
//     destination) is a key; parallel edges and self-loops are kept as-is.
//
// Pipeline:
//
//	raw []Edge ──► Build ──► (empty? ErrEmptyGraph) ──► Validate ──► *Graph
//
// Validate scans edges in input order and stops at the first violation.
// For a single edge the node check runs before the weight checks:
//
//	ReasonInvalidNode     "Invalid node type"
//	ReasonNonFiniteWeight "Invalid weight: NaN or Infinity"
//	ReasonNegativeWeight  "Invalid weight: negative value"
//
// Errors:
//
//	ErrEmptyGraph    – Build received zero edges (checked before validation).
//	ErrInvalidGraph  – wrapped by *InvalidGraphError carrying the Reason.
//
// Concurrency:
//
// A Graph has no mutation API. Once Build returns, any number of goroutines
// may read it concurrently without locks; accessors hand out copies of the
// internal slices so callers cannot corrupt shared state.
//
// Complexity:
//
//	Validate: O(E) time, O(1) space.
//	Build:    O(V + E) time and space.
package core
