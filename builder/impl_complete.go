package builder

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/core"
)

// Complete emits i→j for every pair i < j, rows in ascending i.
// Combine with WithBidirectional for the full directed clique.
// Requires n ≥ MinCompleteNodes.
func Complete(n int) Constructor {
	return func(out []core.Edge, cfg builderConfig) ([]core.Edge, error) {
		if n < MinCompleteNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				out = cfg.edge(out, cfg.idFn(i), cfg.idFn(j))
			}
		}

		return out, nil
	}
}
