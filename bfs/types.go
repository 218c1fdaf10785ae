package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathgraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start node is not part of
	// the neighborhood.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrNilNeighborhood is returned for a nil Neighborhood.
	ErrNilNeighborhood = errors.New("bfs: neighborhood is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Neighborhood is the adjacency abstraction BFS walks over.
type Neighborhood interface {
	// Contains reports whether n belongs to the neighborhood.
	Contains(n core.Node) bool

	// Adjacent returns the nodes reachable from n in one step, in a
	// deterministic order. Duplicates are allowed and ignored.
	Adjacent(n core.Node) []core.Node
}

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for a walk.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip steps by returning false.
	FilterNeighbor func(curr, neighbor core.Node) bool

	// OnVisit is called when visiting a node. A non-nil error aborts the
	// walk and is returned wrapped.
	OnVisit func(n core.Node, depth int) error

	// err records an invalid option; surfaced by Walk.
	err error
}

// DefaultOptions returns options with no depth limit, no filtering and a
// no-op visit hook.
func DefaultOptions() Options {
	return Options{
		FilterNeighbor: func(_, _ core.Node) bool { return true },
		OnVisit:        func(core.Node, int) error { return nil },
	}
}

// WithMaxDepth limits the walk to depth d.
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.Node) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithOnVisit registers a visit callback; returning an error stops the walk.
func WithOnVisit(fn func(n core.Node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a walk.
type Result struct {
	Order  []core.Node
	Depth  map[core.Node]int
	Parent map[core.Node]core.Node
}

// PathTo reconstructs the hop-minimal path from the start node to dest.
func (r *Result) PathTo(dest core.Node) ([]core.Node, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %s", dest)
	}
	path := []core.Node{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
