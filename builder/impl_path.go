package builder

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/core"
)

// Path emits 0→1→…→n-1 (n-1 edges). Requires n ≥ MinPathNodes.
func Path(n int) Constructor {
	return func(out []core.Edge, cfg builderConfig) ([]core.Edge, error) {
		if n < MinPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			out = cfg.edge(out, cfg.idFn(i-1), cfg.idFn(i))
		}

		return out, nil
	}
}
