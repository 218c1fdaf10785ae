package dfs

import (
	"context"

	"github.com/katalvlaran/pathgraph/core"
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context. nil is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// TopologicalSort orders every node of g so that for each edge u→v, u comes
// before v. It is the reverse post-order of a full DFS. When g has a
// directed cycle (self-loops included) it returns a *CycleError holding the
// first cycle closed by a back edge. An empty graph yields an empty order.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]core.Node, error) {
	to := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&to)
	}

	res, err := DFS(g, core.Node{}, WithFullTraversal(), WithContext(to.ctx), withBackEdge(reportCycle))
	if err != nil {
		return nil, err
	}

	order := res.Order
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

// IsAcyclic reports whether g has no directed cycle.
func IsAcyclic(g *core.Graph) bool {
	_, err := TopologicalSort(g)
	return err == nil
}

func withBackEdge(fn func(from, to core.Node, parent map[core.Node]core.Node) error) Option {
	return func(o *Options) {
		o.backEdge = fn
	}
}

// reportCycle rebuilds to → … → from → to by walking tree parents from
// from; to is Gray, so it is an ancestor of from on the current path.
func reportCycle(from, to core.Node, parent map[core.Node]core.Node) error {
	rev := []core.Node{to, from}
	for cur := from; cur != to; {
		cur = parent[cur]
		rev = append(rev, cur)
	}

	cycle := make([]core.Node, len(rev))
	for i, n := range rev {
		cycle[len(rev)-1-i] = n
	}

	return &CycleError{Cycle: cycle}
}
