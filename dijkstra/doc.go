// Package dijkstra finds the cheapest directed path between two nodes of a
// core.Graph with non-negative edge weights.
//
// Algorithm:
//
//  1. Every node known to the graph starts at distance +∞ with no
//     predecessor; the source starts at 0.
//  2. The source is seeded into a frontier.Frontier with priority 0.
//  3. Repeatedly extract the minimum; skip it if already finalized; mark it
//     finalized; relax each outgoing edge to an unvisited neighbor. A
//     neighbor is updated only when the candidate distance is strictly
//     smaller than its current one, and is then pushed again (lazy
//     decrease-key: stale copies are skipped at extraction).
//  4. Stop once the target is finalized or the frontier is empty.
//
// Tie-breaking: among equally cheap routes the first one relaxed wins. Edges
// are relaxed in the graph's stored order (input order) and the frontier is
// FIFO among equal priorities, so results are fully deterministic.
//
// Errors:
//
//	ErrNodeNotFound – *NodeNotFoundError: the graph is empty, the source is
//	                  not a node, or the target is not a node.
//	ErrNoPath       – *NoPathError: the target is a node but unreachable.
//
// Complexity:
//
//   - Time:  O((V + E) log V); the frontier may hold up to O(E) stale entries.
//   - Space: O(V + E).
//
// Concurrency: FindPath only reads the Graph and keeps all search state in a
// per-call runner, so concurrent calls on one shared Graph are safe.
package dijkstra
