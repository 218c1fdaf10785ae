package builder

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/core"
)

// Star emits CenterNode→i for each of the n-1 leaves. Requires n ≥ MinStarNodes.
func Star(n int) Constructor {
	return func(out []core.Edge, cfg builderConfig) ([]core.Edge, error) {
		if n < MinStarNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		for i := 0; i < n-1; i++ {
			out = cfg.edge(out, CenterNode, cfg.idFn(i))
		}

		return out, nil
	}
}
