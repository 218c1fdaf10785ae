package cli

import (
	"flag"

	"github.com/katalvlaran/pathgraph/dijkstra"
)

func runPath(args []string, env Env) error {
	fs := flag.NewFlagSet("pathgraph path", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)

	var (
		common commonFlags
		input  inputFlags
		from   string
		to     string
	)
	common.register(fs)
	input.register(fs)
	fs.StringVar(&from, "from", "", "Source node label.")
	fs.StringVar(&to, "to", "", "Target node label.")

	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}
	if name, ok := missing(fs, "from", "to"); ok {
		return &ExitError{Code: ExitUsage, Message: "path requires -" + name}
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

	start, target := resolveNode(g, from), resolveNode(g, to)
	sp, err := dijkstra.FindPath(g, start, target)
	if err != nil {
		return s.fail(err)
	}
	s.log.Info().
		Stringer("from", start).
		Stringer("to", target).
		Int("hops", len(sp.Path)-1).
		Float64("distance", sp.Distance).
		Msg("path found")

	return s.write(renderPath(sp))
}
