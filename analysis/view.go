package analysis

import "github.com/katalvlaran/pathgraph/core"

// undirectedView is a symmetric adjacency over a directed core.Graph:
// u→v contributes v to adj[u] and u to adj[v]. It satisfies
// bfs.Neighborhood.
type undirectedView struct {
	order []core.Node
	adj   map[core.Node][]core.Node
}

// newUndirectedView collects the node set (keys first, then any
// destination not already seen) and mirrors every edge.
func newUndirectedView(g *core.Graph) *undirectedView {
	keys := g.Nodes()
	v := &undirectedView{
		order: make([]core.Node, 0, len(keys)),
		adj:   make(map[core.Node][]core.Node, len(keys)),
	}
	for _, n := range keys {
		v.add(n)
	}
	for _, u := range keys {
		g.Range(u, func(e core.Edge) bool {
			v.add(e.To)
			v.adj[u] = append(v.adj[u], e.To)
			if e.To != u {
				v.adj[e.To] = append(v.adj[e.To], u)
			}
			return true
		})
	}

	return v
}

// add registers n if it is new.
func (v *undirectedView) add(n core.Node) {
	if _, ok := v.adj[n]; ok {
		return
	}
	v.adj[n] = nil
	v.order = append(v.order, n)
}

// Contains reports whether n is in the view.
func (v *undirectedView) Contains(n core.Node) bool {
	_, ok := v.adj[n]
	return ok
}

// Adjacent returns the undirected neighbors of n.
func (v *undirectedView) Adjacent(n core.Node) []core.Node { return v.adj[n] }
