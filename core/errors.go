package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyGraph indicates that Build received no edges, or that an
	// operation requiring at least one node was given an empty graph.
	ErrEmptyGraph = errors.New("core: graph is empty")

	// ErrInvalidGraph indicates that an edge failed validation. The concrete
	// error is always an *InvalidGraphError carrying the reason.
	ErrInvalidGraph = errors.New("core: invalid graph")
)

// Validation reasons reported by *InvalidGraphError.
const (
	ReasonInvalidNode     = "Invalid node type"
	ReasonNonFiniteWeight = "Invalid weight: NaN or Infinity"
	ReasonNegativeWeight  = "Invalid weight: negative value"
)

// InvalidGraphError describes the first edge that failed validation.
//
// It unwraps to ErrInvalidGraph, so callers branch with
// errors.Is(err, core.ErrInvalidGraph) and read the details with errors.As.
type InvalidGraphError struct {
	// Reason is one of ReasonInvalidNode, ReasonNonFiniteWeight or
	// ReasonNegativeWeight.
	Reason string

	// Index is the position of the offending edge in the input.
	Index int

	// Edge is the offending edge as supplied.
	Edge Edge
}

// Error implements error.
func (e *InvalidGraphError) Error() string {
	return fmt.Sprintf("%v: %s (edge #%d %s→%s)", ErrInvalidGraph, e.Reason, e.Index, e.Edge.From, e.Edge.To)
}

// Unwrap returns ErrInvalidGraph.
func (e *InvalidGraphError) Unwrap() error { return ErrInvalidGraph }
