package cli

import (
	"flag"

	"github.com/katalvlaran/pathgraph/dfs"
)

type orderDoc struct {
	Order []any `json:"order" yaml:"order"`
}

func runToposort(args []string, env Env) error {
	fs := flag.NewFlagSet("pathgraph toposort", flag.ContinueOnError)
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

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return s.fail(err)
	}
	s.log.Info().Int("nodes", len(order)).Msg("topological order computed")

	return s.write(orderDoc{Order: values(order)})
}
