package builder

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/core"
)

// Constructor appends the edges of one topology to out using the resolved
// configuration. Constructors validate their parameters first and return
// sentinel errors; they never panic.
type Constructor func(out []core.Edge, cfg builderConfig) ([]core.Edge, error)

// BuildEdges resolves bopts once and runs every constructor in order,
// returning the concatenated edge list. The first constructor error is
// wrapped as "BuildEdges: %w" and returned; no partial list is returned.
//
// Complexity: O(len(bopts)) + Σ cost of the constructors.
func BuildEdges(bopts []BuilderOption, cons ...Constructor) ([]core.Edge, error) {
	cfg := newBuilderConfig(bopts...)

	var out []core.Edge
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		var err error
		if out, err = fn(out, cfg); err != nil {
			return nil, fmt.Errorf("BuildEdges: %w", err)
		}
	}

	return out, nil
}

// BuildGraph is BuildEdges followed by core.Build.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	edges, err := BuildEdges(bopts, cons...)
	if err != nil {
		return nil, err
	}

	return core.Build(edges)
}
