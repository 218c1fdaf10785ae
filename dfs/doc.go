// Package dfs implements depth-first search over a directed core.Graph:
// single-source or forest traversal with pre- and post-order hooks, depth
// limiting, neighbor filtering and cancellation, plus TopologicalSort with
// cycle reporting.
//
// Neighbors are explored in edge insertion order and forest roots in node
// first-seen order, so every result is deterministic. The walk keeps an
// explicit stack; graph depth is not limited by the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V + E), plus the cost of hooks and filters.
//   - Memory: O(V).
package dfs
