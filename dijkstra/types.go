package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathgraph/core"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNodeNotFound indicates that the source or target is not a node of
	// the graph. The concrete error is *NodeNotFoundError.
	ErrNodeNotFound = errors.New("dijkstra: node not found")

	// ErrNoPath indicates that the target exists but cannot be reached from
	// the source. The concrete error is *NoPathError.
	ErrNoPath = errors.New("dijkstra: no path")
)

// NodeNotFoundError reports the missing node.
type NodeNotFoundError struct {
	Node core.Node
}

// Error implements error.
func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNodeNotFound, e.Node)
}

// Unwrap returns ErrNodeNotFound.
func (e *NodeNotFoundError) Unwrap() error { return ErrNodeNotFound }

// NoPathError reports an unreachable target.
type NoPathError struct {
	From core.Node
	To   core.Node
}

// Error implements error.
func (e *NoPathError) Error() string {
	return fmt.Sprintf("%v: %s → %s", ErrNoPath, e.From, e.To)
}

// Unwrap returns ErrNoPath.
func (e *NoPathError) Unwrap() error { return ErrNoPath }

// ShortestPath is the result of a successful query.
//
// Path runs from source to target inclusive and is never empty; it has a
// single element when source == target. Distance is the sum of the edge
// weights along Path (0 for the single-node path).
type ShortestPath struct {
	Path     []core.Node
	Distance float64
}
