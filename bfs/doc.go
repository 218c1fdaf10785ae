// Package bfs walks a neighborhood breadth-first from a start node.
//
// The walk is agnostic to how adjacency is stored: anything implementing
// Neighborhood can be explored. analysis uses it over a transient
// undirected view of a core.Graph to collect connected components; the
// directed graph itself can be walked through Outgoing.
//
// Result:
//
//	Order  – nodes in visit order (start first).
//	Depth  – hop count from start.
//	Parent – BFS-tree predecessor (absent for start).
//
// Options:
//
//	WithMaxDepth(d)        – do not enqueue nodes deeper than d (d > 0).
//	WithFilterNeighbor(fn) – skip the step curr→nbr when fn returns false.
//	WithOnVisit(fn)        – called per visited node; an error aborts the walk.
//
// Complexity: O(V + E) time, O(V) space.
package bfs
