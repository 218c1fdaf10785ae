package core

// Build turns a raw edge list into an immutable Graph.
//
// Steps (in order):
//  1. len(edges) == 0            → ErrEmptyGraph (before any validation).
//  2. Validate(edges) fails      → that *InvalidGraphError, unchanged.
//  3. For each edge in input order, append it to From's outgoing list and
//     make sure To is present as a key (never touching an existing list).
//
// The resulting key set is exactly the set of endpoints in edges, and each
// node's outgoing edges keep their input order. Parallel edges and
// self-loops are retained.
//
// The input slice is not retained; the caller may reuse it.
//
// Complexity: O(V + E) time and space.
func Build(edges []Edge) (*Graph, error) {
	// 1) Reject empty input up front.
	if len(edges) == 0 {
		return nil, ErrEmptyGraph
	}

	// 2) Validate every edge, stopping at the first violation.
	if err := Validate(edges); err != nil {
		return nil, err
	}

	// 3) Populate adjacency in input order.
	g := &Graph{
		order:     make([]Node, 0, len(edges)),
		adjacency: make(map[Node][]Edge, len(edges)),
		edgeCount: len(edges),
	}
	for _, e := range edges {
		g.ensure(e.From)
		g.adjacency[e.From] = append(g.adjacency[e.From], e)
		g.ensure(e.To)
	}

	return g, nil
}

// ensure registers n as a key with an empty outgoing list if it is new.
func (g *Graph) ensure(n Node) {
	if _, ok := g.adjacency[n]; ok {
		return
	}
	g.adjacency[n] = []Edge{}
	g.order = append(g.order, n)
}
