package cli

import (
	"flag"

	"github.com/katalvlaran/pathgraph/bfs"
	"github.com/katalvlaran/pathgraph/dijkstra"
)

type reachEntry struct {
	Node  any `json:"node" yaml:"node"`
	Depth int `json:"depth" yaml:"depth"`
}

type reachDoc struct {
	From      any          `json:"from" yaml:"from"`
	Reachable []reachEntry `json:"reachable" yaml:"reachable"`
}

func runReach(args []string, env Env) error {
	fs := flag.NewFlagSet("pathgraph reach", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)

	var (
		common   commonFlags
		input    inputFlags
		from     string
		maxDepth int
	)
	common.register(fs)
	input.register(fs)
	fs.StringVar(&from, "from", "", "Start node label.")
	fs.IntVar(&maxDepth, "depth", 0, "Maximum number of hops; 0 means unlimited.")

	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}
	if _, ok := missing(fs, "from"); ok {
		return &ExitError{Code: ExitUsage, Message: "reach requires -from"}
	}
	if maxDepth < 0 {
		return &ExitError{Code: ExitUsage, Message: "-depth cannot be negative"}
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

	start := resolveNode(g, from)
	if !g.HasNode(start) {
		return s.fail(&dijkstra.NodeNotFoundError{Node: start})
	}
	res, err := bfs.Walk(bfs.Outgoing{G: g}, start, bfs.WithMaxDepth(maxDepth))
	if err != nil {
		return s.fail(err)
	}

	doc := reachDoc{From: start.Value(), Reachable: make([]reachEntry, len(res.Order))}
	for i, n := range res.Order {
		doc.Reachable[i] = reachEntry{Node: n.Value(), Depth: res.Depth[n]}
	}
	s.log.Info().Stringer("from", start).Int("reachable", len(res.Order)).Int("depth", maxDepth).Msg("reachability computed")

	return s.write(doc)
}
