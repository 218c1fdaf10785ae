package dijkstra

import (
	"math"

	"github.com/katalvlaran/pathgraph/core"
	"github.com/katalvlaran/pathgraph/frontier"
)

// FindPath returns the cheapest path from start to target in g.
//
// Validation (in order):
//  1. g is empty, or start is not a node      → *NodeNotFoundError{start}.
//  2. start == target                         → [start], distance 0, no search.
//  3. target is not a node                    → *NodeNotFoundError{target}.
//
// After the search:
//  4. target still at +∞                      → *NoPathError{start, target}.
//
// The returned ShortestPath is freshly allocated and owned by the caller.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func FindPath(g *core.Graph, start, target core.Node) (*ShortestPath, error) {
	// 1) Source must be a key of a non-empty graph.
	if g.Len() == 0 || !g.HasNode(start) {
		return nil, &NodeNotFoundError{Node: start}
	}

	// 2) Trivial self-path.
	if start == target {
		return &ShortestPath{Path: []core.Node{start}, Distance: 0}, nil
	}

	// 3) Target must be known. Every destination is a key after core.Build,
	//    so a key lookup covers both "key" and "edge destination".
	if !g.HasNode(target) {
		return nil, &NodeNotFoundError{Node: target}
	}

	// 4) Run the search.
	r := newRunner(g, start, target)
	r.process()

	// 5) Unreachable target.
	if math.IsInf(r.dist[target], 1) {
		return nil, &NoPathError{From: start, To: target}
	}

	return &ShortestPath{Path: r.path(), Distance: r.dist[target]}, nil
}

// runner holds the mutable state of a single FindPath call.
type runner struct {
	g       *core.Graph                   // read-only input
	source  core.Node                     // search origin
	target  core.Node                     // search stops once this is final
	dist    map[core.Node]float64         // best-known distance from source
	prev    map[core.Node]core.Node       // predecessor on the best path
	visited map[core.Node]bool            // finalized nodes
	pq      *frontier.Frontier[core.Node] // lazy min-priority queue
}

// newRunner sets dist[v] = +∞ for every known node, dist[source] = 0, and
// seeds the frontier with the source.
func newRunner(g *core.Graph, source, target core.Node) *runner {
	nodes := g.Nodes()
	r := &runner{
		g:       g,
		source:  source,
		target:  target,
		dist:    make(map[core.Node]float64, len(nodes)),
		prev:    make(map[core.Node]core.Node, len(nodes)),
		visited: make(map[core.Node]bool, len(nodes)),
		pq:      frontier.New[core.Node](len(nodes)),
	}
	inf := math.Inf(1)
	for _, v := range nodes {
		r.dist[v] = inf
	}
	r.dist[source] = 0
	r.pq.Insert(source, 0)

	return r
}

// process is the main loop: extract the closest unfinished node, finalize
// it and relax its outgoing edges.
//
// Stopping when the target is finalized does not change the outcome: a
// finalized node's distance and predecessor are never touched again.
func (r *runner) process() {
	for {
		u, _, ok := r.pq.ExtractMin()
		if !ok {
			return
		}
		// Stale entry for a node already finalized.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		if u == r.target {
			return
		}
		r.relax(u)
	}
}

// relax tries to improve every unvisited neighbor of u through u.
// Only strictly shorter candidates are accepted, so the first route found
// among equal-cost alternatives is kept.
func (r *runner) relax(u core.Node) {
	du := r.dist[u]
	r.g.Range(u, func(e core.Edge) bool {
		v := e.To
		if r.visited[v] {
			return true
		}
		cand := du + e.Weight
		if cand < r.dist[v] {
			r.dist[v] = cand
			r.prev[v] = u
			r.pq.Insert(v, cand)
		}

		return true
	})
}

// path walks predecessor links back from target to source and reverses.
func (r *runner) path() []core.Node {
	var rev []core.Node
	for cur := r.target; ; {
		rev = append(rev, cur)
		if cur == r.source {
			break
		}
		cur = r.prev[cur]
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
