package builder

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/core"
)

// Cycle emits 0→1→…→n-1→0 (n edges). Requires n ≥ MinCycleNodes.
func Cycle(n int) Constructor {
	return func(out []core.Edge, cfg builderConfig) ([]core.Edge, error) {
		if n < MinCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			out = cfg.edge(out, cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return out, nil
	}
}
