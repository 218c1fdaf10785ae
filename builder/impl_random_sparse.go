package builder

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/core"
)

// RandomSparse emits i→j for every ordered pair i ≠ j independently with
// probability p (Erdős–Rényi over directed pairs). Pairs are visited in
// ascending (i, j) order so the output is deterministic per seed.
//
// Requires n ≥ MinSparseNodes and 0 ≤ p ≤ 1; an RNG is required unless p is
// exactly 0 or 1. The result may be empty (e.g. p == 0), in which case
// core.Build reports core.ErrEmptyGraph.
//
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(out []core.Edge, cfg builderConfig) ([]core.Edge, error) {
		if n < MinSparseNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, MinSparseNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return nil, fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if p < MaxProbability && (p == MinProbability || cfg.rng.Float64() >= p) {
					continue
				}
				out = cfg.edge(out, cfg.idFn(i), cfg.idFn(j))
			}
		}

		return out, nil
	}
}
