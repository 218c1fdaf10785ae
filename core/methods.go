package core

// Len returns the number of nodes (adjacency keys). A nil Graph has none.
// Complexity: O(1).
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}

	return len(g.order)
}

// EdgeCount returns the total number of stored directed edges, counting
// parallel edges and self-loops individually.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}

	return g.edgeCount
}

// HasNode reports whether n is a key of the graph.
// Complexity: O(1).
func (g *Graph) HasNode(n Node) bool {
	if g == nil {
		return false
	}
	_, ok := g.adjacency[n]

	return ok
}

// Nodes returns every node in first-seen order. The slice is a copy.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	if g == nil {
		return nil
	}
	out := make([]Node, len(g.order))
	copy(out, g.order)

	return out
}

// Neighbors returns a copy of n's outgoing edges in input order, and false
// if n is not in the graph.
// Complexity: O(d) where d is the out-degree of n.
func (g *Graph) Neighbors(n Node) ([]Edge, bool) {
	if g == nil {
		return nil, false
	}
	list, ok := g.adjacency[n]
	if !ok {
		return nil, false
	}
	out := make([]Edge, len(list))
	copy(out, list)

	return out, true
}

// OutDegree returns the number of outgoing edges of n (0 if n is absent).
// Complexity: O(1).
func (g *Graph) OutDegree(n Node) int {
	if g == nil {
		return 0
	}

	return len(g.adjacency[n])
}

// Edges returns every edge grouped by source node, sources in first-seen
// order and each group in input order.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	if g == nil {
		return nil
	}
	out := make([]Edge, 0, g.edgeCount)
	for _, n := range g.order {
		out = append(out, g.adjacency[n]...)
	}

	return out
}

// Range calls fn for each outgoing edge of n in input order until fn
// returns false. It does not allocate and is intended for hot loops that
// only read edges.
// Complexity: O(d).
func (g *Graph) Range(n Node, fn func(e Edge) bool) {
	if g == nil {
		return
	}
	for _, e := range g.adjacency[n] {
		if !fn(e) {
			return
		}
	}
}
