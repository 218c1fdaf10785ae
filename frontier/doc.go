// Package frontier provides the min-priority work queue used by the
// shortest-path search.
//
// A Frontier holds (item, priority) pairs and always yields the pair with
// the smallest priority first. Pairs with equal priority come out in
// insertion order, so the queue behaves like a stable sort by priority.
//
// There is no decrease-key: the same item may sit in the queue several
// times with different priorities. Discarding stale copies is the caller's
// job (dijkstra skips already finalized nodes at extraction time).
//
// Implementation: a binary min-heap over container/heap keyed by
// (priority, sequence). Insert and ExtractMin are O(log n).
//
// A Frontier is not safe for concurrent use; each search owns its own.
// Clone returns an independent snapshot when value semantics are needed.
package frontier
