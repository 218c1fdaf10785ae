package cli

import (
	"flag"

	"github.com/katalvlaran/pathgraph/analysis"
)

func runAnalyze(args []string, env Env) error {
	fs := flag.NewFlagSet("pathgraph analyze", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)

	var (
		common commonFlags
		input  inputFlags
	)
	common.register(fs)
	input.register(fs)

	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}

	s, err := common.open(env)
	if err != nil {
		return err
	}
	edges, err := s.loadEdges(input, env.Stdin)
	if err != nil {
		return err
	}
	g, err := s.buildGraph(edges)
	if err != nil {
		return err
	}

	res, err := analysis.Analyze(g)
	if err != nil {
		return s.fail(err)
	}
	s.log.Info().
		Int("components", len(res.Components)).
		Bool("connected", res.IsConnected).
		Float64("density", res.Density).
		Bool("acyclic", res.IsAcyclic).
		Msg("graph analyzed")

	return s.write(renderAnalysis(res))
}
