package dfs

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/core"
)

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	state map[core.Node]int
	res   *Result
}

// frame is one entry of the explicit DFS stack.
type frame struct {
	node  core.Node
	edges []core.Edge
	next  int
	depth int
}

// DFS performs depth-first search on g from start, or over the whole graph
// with WithFullTraversal. On a hook error or cancellation the partial
// result is discarded and the error returned.
func DFS(g *core.Graph, start core.Node, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if !o.FullTraversal && !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartVertexNotFound, start)
	}

	n := g.Len()
	w := &walker{
		graph: g,
		opts:  o,
		state: make(map[core.Node]int, n),
		res: &Result{
			Order:  make([]core.Node, 0, n),
			Depth:  make(map[core.Node]int, n),
			Parent: make(map[core.Node]core.Node, n),
		},
	}

	if o.FullTraversal {
		for _, v := range g.Nodes() {
			if w.state[v] != White {
				continue
			}
			if err := w.walk(v); err != nil {
				return nil, err
			}
		}
	} else if err := w.walk(start); err != nil {
		return nil, err
	}

	return w.res, nil
}

func (w *walker) walk(root core.Node) error {
	if err := w.discover(root, 0); err != nil {
		return err
	}
	stack := []frame{w.newFrame(root, 0)}

	for len(stack) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		top := &stack[len(stack)-1]
		if top.next == len(top.edges) {
			u := top.node
			stack = stack[:len(stack)-1]
			if err := w.finish(u); err != nil {
				return err
			}
			continue
		}

		e := top.edges[top.next]
		top.next++
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(e.To) {
			w.res.SkippedNeighbors++
			continue
		}

		switch w.state[e.To] {
		case White:
			depth := top.depth + 1
			w.res.Parent[e.To] = top.node
			if err := w.discover(e.To, depth); err != nil {
				return err
			}
			stack = append(stack, w.newFrame(e.To, depth))
		case Gray:
			if w.opts.backEdge != nil {
				if err := w.opts.backEdge(top.node, e.To, w.res.Parent); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// newFrame prepares n for expansion; nodes at MaxDepth get no edges.
func (w *walker) newFrame(n core.Node, depth int) frame {
	f := frame{node: n, depth: depth}
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		f.edges, _ = w.graph.Neighbors(n)
	}

	return f
}

func (w *walker) discover(n core.Node, depth int) error {
	w.state[n] = Gray
	w.res.Depth[n] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %s: %w", n, err)
		}
	}

	return nil
}

func (w *walker) finish(n core.Node) error {
	w.state[n] = Black
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(n); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %s: %w", n, err)
		}
	}
	w.res.Order = append(w.res.Order, n)

	return nil
}
