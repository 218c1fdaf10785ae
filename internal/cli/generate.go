package cli

import (
	"flag"
	"fmt"
	"math"

	"github.com/katalvlaran/pathgraph/builder"
	"github.com/katalvlaran/pathgraph/internal/edgefile"
)

// Generator kinds accepted by -kind.
const (
	GenPath     = "path"
	GenCycle    = "cycle"
	GenStar     = "star"
	GenComplete = "complete"
	GenGrid     = "grid"
	GenRandom   = "random"
)

// maxIntWeight bounds -int-weights so that max-min+1 stays a valid Intn
// argument on every platform.
const maxIntWeight = math.MaxInt32

// symbolIDs is the number of labels the "symbol" scheme can produce.
const symbolIDs = 26

// Node naming schemes accepted by -ids.
var idSchemes = map[string]builder.IDFn{
	"default": builder.DefaultIDFn,
	"numeric": builder.NumericIDFn,
	"symbol":  builder.SymbolIDFn,
	"excel":   builder.ExcelColumnIDFn,
}

type generateFlags struct {
	kind          string
	n             int
	rows, cols    int
	p             float64
	seed          int64
	minWeight     float64
	maxWeight     float64
	intWeights    bool
	bidirectional bool
	ids           string
}

func (g *generateFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&g.kind, "kind", GenPath, "Topology: path, cycle, star, complete, grid, random.")
	fs.IntVar(&g.n, "n", 5, "Vertex count (all kinds except grid).")
	fs.IntVar(&g.rows, "rows", 3, "Grid rows.")
	fs.IntVar(&g.cols, "cols", 3, "Grid columns.")
	fs.Float64Var(&g.p, "p", 0.3, "Edge probability for random.")
	fs.Int64Var(&g.seed, "seed", 1, "Random seed.")
	fs.Float64Var(&g.minWeight, "min-weight", builder.DefaultEdgeWeight, "Lower weight bound.")
	fs.Float64Var(&g.maxWeight, "max-weight", builder.DefaultEdgeWeight, "Upper weight bound.")
	fs.BoolVar(&g.intWeights, "int-weights", false, "Draw integer weights in [min-weight, max-weight].")
	fs.BoolVar(&g.bidirectional, "bidirectional", false, "Emit the reverse of every edge.")
	fs.StringVar(&g.ids, "ids", "default", "Node naming: default, numeric, symbol, excel.")
}

func (g *generateFlags) constructor() (builder.Constructor, error) {
	switch g.kind {
	case GenPath:
		return builder.Path(g.n), nil
	case GenCycle:
		return builder.Cycle(g.n), nil
	case GenStar:
		return builder.Star(g.n), nil
	case GenComplete:
		return builder.Complete(g.n), nil
	case GenGrid:
		return builder.Grid(g.rows, g.cols), nil
	case GenRandom:
		return builder.RandomSparse(g.n, g.p), nil
	default:
		return nil, fmt.Errorf("unknown -kind %q", g.kind)
	}
}

func (g *generateFlags) options() ([]builder.BuilderOption, error) {
	idFn, ok := idSchemes[g.ids]
	if !ok {
		return nil, fmt.Errorf("unknown -ids %q", g.ids)
	}
	if g.ids == "symbol" && g.labelCount() > symbolIDs {
		return nil, fmt.Errorf("-ids symbol supports at most %d vertices, -kind %s needs %d", symbolIDs, g.kind, g.labelCount())
	}
	if g.minWeight < 0 || g.maxWeight < g.minWeight {
		return nil, fmt.Errorf("require 0 ≤ min-weight ≤ max-weight, got %g and %g", g.minWeight, g.maxWeight)
	}
	if g.intWeights {
		for _, w := range []float64{g.minWeight, g.maxWeight} {
			if w != math.Trunc(w) || w > maxIntWeight {
				return nil, fmt.Errorf("-int-weights needs whole bounds in [0, %d], got %g", maxIntWeight, w)
			}
		}
	}

	opts := []builder.BuilderOption{builder.WithSeed(g.seed), builder.WithIDScheme(idFn)}
	switch {
	case g.intWeights:
		opts = append(opts, builder.WithWeightFn(builder.IntegerWeightFn(int(g.minWeight), int(g.maxWeight))))
	case g.minWeight == g.maxWeight:
		opts = append(opts, builder.WithConstantWeight(g.minWeight))
	default:
		opts = append(opts, builder.WithUniformWeight(g.minWeight, g.maxWeight))
	}
	if g.bidirectional {
		opts = append(opts, builder.WithBidirectional())
	}

	return opts, nil
}

// labelCount is how many labels the ID scheme must produce. Grid cells
// are always named "r,c" and use none.
func (g *generateFlags) labelCount() int {
	switch g.kind {
	case GenGrid:
		return 0
	case GenStar:
		return g.n - 1
	default:
		return g.n
	}
}

func runGenerate(args []string, env Env) error {
	fs := flag.NewFlagSet("pathgraph generate", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)

	var (
		common commonFlags
		gen    generateFlags
	)
	common.register(fs)
	gen.register(fs)

	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}

	s, err := common.open(env)
	if err != nil {
		return err
	}
	cons, err := gen.constructor()
	if err != nil {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	opts, err := gen.options()
	if err != nil {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	edges, err := builder.BuildEdges(opts, cons)
	if err != nil {
		s.log.Error().Err(err).Str("kind", gen.kind).Msg("generation failed")
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	s.log.Info().Str("kind", gen.kind).Int("edges", len(edges)).Int64("seed", gen.seed).Msg("edges generated")

	if err := edgefile.Encode(s.out, s.format, edges); err != nil {
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("writing edges: %v", err)}
	}

	return nil
}
