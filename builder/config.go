package builder

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/pathgraph/core"
)

// builderConfig is the resolved, immutable configuration handed to every
// Constructor.
type builderConfig struct {
	idFn          IDFn       // vertex index → Node
	rng           *rand.Rand // nil unless WithSeed/WithRand
	weightFn      WeightFn   // per-edge weight source
	bidirectional bool       // also emit reverse edges
}

// newBuilderConfig applies opts over the defaults: decimal text IDs,
// constant weight DefaultEdgeWeight, no RNG, one-way edges.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// edge draws a weight and returns u→v (and v→u when bidirectional).
func (cfg builderConfig) edge(out []core.Edge, u, v core.Node) []core.Edge {
	w := cfg.weightFn(cfg.rng)
	out = append(out, core.Edge{From: u, To: v, Weight: w})
	if cfg.bidirectional {
		out = append(out, core.Edge{From: v, To: u, Weight: w})
	}

	return out
}

// decimalLabel is the default textual ID.
func decimalLabel(i int) string { return strconv.Itoa(i) }
