// Package analysis computes structural metrics of a core.Graph.
//
// Analyze reports:
//
//	NodeCount   – |keys ∪ destinations|.
//	EdgeCount   – Σ len(outgoing) over all nodes; parallel edges and
//	              self-loops each count once (a directed count).
//	Components  – connected components under undirected reachability:
//	              every edge u→v also links v to u for this pass only.
//	IsConnected – exactly one component.
//	Density     – 0 when NodeCount ≤ 1, otherwise
//	              EdgeCount / (NodeCount · (NodeCount − 1)).
//	IsAcyclic   – no directed cycle (dfs.IsAcyclic); self-loops are cycles.
//
// Density is the directed formula and is deliberately not clamped: with
// parallel edges or self-loops it can exceed 1 (e.g. three copies of A→B
// over two nodes give 1.5).
//
// The undirected view is a transient adjacency built per call; the Graph
// itself is never modified, so Analyze may run concurrently with other
// readers of the same Graph.
//
// Ordering: nodes are taken in the graph's first-seen order; components
// appear in order of their first node and list nodes in BFS visit order.
//
// Complexity: O(V + E) time and space.
package analysis
