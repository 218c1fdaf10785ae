package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/core"
)

// queueItem pairs a node with its depth.
type queueItem struct {
	node  core.Node
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	nb    Neighborhood
	opts  Options
	queue []queueItem
	head  int
	res   *Result
}

// Walk runs breadth-first search over nb from start.
// Returns ErrNilNeighborhood, ErrOptionViolation, ErrStartVertexNotFound,
// or a wrapped OnVisit error.
func Walk(nb Neighborhood, start core.Node, opts ...Option) (*Result, error) {
	if nb == nil {
		return nil, ErrNilNeighborhood
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !nb.Contains(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartVertexNotFound, start)
	}

	w := &walker{
		nb:   nb,
		opts: o,
		res: &Result{
			Depth:  make(map[core.Node]int),
			Parent: make(map[core.Node]core.Node),
		},
	}
	w.enqueue(start, 0, core.Node{}, false)

	return w.res, w.loop()
}

// enqueue records depth and parent of n and queues it.
func (w *walker) enqueue(n core.Node, d int, parent core.Node, hasParent bool) {
	w.res.Depth[n] = d
	if hasParent {
		w.res.Parent[n] = parent
	}
	w.queue = append(w.queue, queueItem{node: n, depth: d})
}

// loop processes the queue until it drains or a hook fails.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		item := w.queue[w.head]
		w.head++

		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %s: %w", item.node, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors queues every unseen, allowed neighbor within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.nb.Adjacent(item.node) {
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		if !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.node, true)
	}
}
