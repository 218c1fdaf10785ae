package dfs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathgraph/core"
)

// Visitation states.
const (
	White = iota // not yet discovered
	Gray         // on the current DFS path
	Black        // fully explored
)

var (
	// ErrStartVertexNotFound indicates that the start node is not in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that TopologicalSort found a directed cycle.
	// The concrete error is *CycleError.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// CycleError carries one directed cycle, closed: the first node is
// repeated at the end.
type CycleError struct {
	Cycle []core.Node
}

// Error implements error.
func (e *CycleError) Error() string {
	parts := make([]string, len(e.Cycle))
	for i, n := range e.Cycle {
		parts[i] = n.String()
	}

	return fmt.Sprintf("%v: %s", ErrCycleDetected, strings.Join(parts, " → "))
}

// Unwrap returns ErrCycleDetected.
func (e *CycleError) Unwrap() error { return ErrCycleDetected }

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(n core.Node) error

	// OnExit, if non-nil, runs after all descendants of a node are explored
	// (post-order), before it is appended to Result.Order.
	OnExit func(n core.Node) error

	// MaxDepth, if non-negative, stops expanding nodes at that depth.
	// 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is asked before following an edge to a
	// node; false skips it.
	FilterNeighbor func(n core.Node) bool

	// FullTraversal restarts from every undiscovered node in first-seen
	// order, covering the whole graph. The start argument is then ignored.
	FullTraversal bool

	// backEdge observes edges into a Gray node together with the live
	// parent map. Used by TopologicalSort.
	backEdge func(from, to core.Node, parent map[core.Node]core.Node) error
}

// DefaultOptions returns background context, no hooks, no depth limit, no
// filtering and single-source traversal.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxDepth: -1}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(n core.Node) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(n core.Node) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits expansion depth. Negative means unlimited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbors for which fn returns false; skipped
// steps are counted in Result.SkippedNeighbors.
func WithFilterNeighbor(fn func(n core.Node) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables forest traversal over every node.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order lists nodes in finishing (post-order) sequence.
	Order []core.Node

	// Depth maps each discovered node to its tree depth.
	Depth map[core.Node]int

	// Parent maps each discovered node to its tree parent; roots are absent.
	Parent map[core.Node]core.Node

	// SkippedNeighbors counts edges rejected by FilterNeighbor.
	SkippedNeighbors int
}

// Visited reports whether n was discovered.
func (r *Result) Visited(n core.Node) bool {
	_, ok := r.Depth[n]
	return ok
}
