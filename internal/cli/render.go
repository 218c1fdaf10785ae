package cli

import (
	"errors"

	"github.com/katalvlaran/pathgraph/analysis"
	"github.com/katalvlaran/pathgraph/core"
	"github.com/katalvlaran/pathgraph/dfs"
	"github.com/katalvlaran/pathgraph/dijkstra"
)

// Error kinds reported in failure documents.
const (
	KindEmptyGraph   = "EmptyGraph"
	KindInvalidGraph = "InvalidGraph"
	KindNodeNotFound = "NodeNotFound"
	KindNoPath       = "NoPath"
	KindCycle        = "Cycle"
	KindInternal     = "Internal"
)

type pathDoc struct {
	Path     []any   `json:"path" yaml:"path"`
	Distance float64 `json:"distance" yaml:"distance"`
}

type analysisDoc struct {
	NodeCount   int     `json:"nodeCount" yaml:"nodeCount"`
	EdgeCount   int     `json:"edgeCount" yaml:"edgeCount"`
	IsConnected bool    `json:"isConnected" yaml:"isConnected"`
	Components  [][]any `json:"components" yaml:"components"`
	Density     float64 `json:"density" yaml:"density"`
	IsAcyclic   bool    `json:"isAcyclic" yaml:"isAcyclic"`
}

type failureDoc struct {
	Error errorDoc `json:"error" yaml:"error"`
}

type errorDoc struct {
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
	Reason  string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Node    any    `json:"node,omitempty" yaml:"node,omitempty"`
	From    any    `json:"from,omitempty" yaml:"from,omitempty"`
	To      any    `json:"to,omitempty" yaml:"to,omitempty"`
	Cycle   []any  `json:"cycle,omitempty" yaml:"cycle,omitempty"`
}

func values(nodes []core.Node) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = n.Value()
	}

	return out
}

func renderPath(sp *dijkstra.ShortestPath) pathDoc {
	return pathDoc{Path: values(sp.Path), Distance: sp.Distance}
}

func renderAnalysis(r *analysis.Result) analysisDoc {
	comps := make([][]any, len(r.Components))
	for i, c := range r.Components {
		comps[i] = values(c)
	}

	return analysisDoc{
		NodeCount:   r.NodeCount,
		EdgeCount:   r.EdgeCount,
		IsConnected: r.IsConnected,
		Components:  comps,
		Density:     r.Density,
		IsAcyclic:   r.IsAcyclic,
	}
}

func renderError(err error) failureDoc {
	doc := errorDoc{Kind: KindInternal, Message: err.Error()}

	var (
		invalid  *core.InvalidGraphError
		notFound *dijkstra.NodeNotFoundError
		noPath   *dijkstra.NoPathError
		cycle    *dfs.CycleError
	)
	switch {
	case errors.As(err, &invalid):
		doc.Kind, doc.Reason = KindInvalidGraph, invalid.Reason
	case errors.Is(err, core.ErrEmptyGraph):
		doc.Kind = KindEmptyGraph
	case errors.As(err, &notFound):
		doc.Kind, doc.Node = KindNodeNotFound, notFound.Node.Value()
	case errors.As(err, &noPath):
		doc.Kind, doc.From, doc.To = KindNoPath, noPath.From.Value(), noPath.To.Value()
	case errors.As(err, &cycle):
		doc.Kind, doc.Cycle = KindCycle, values(cycle.Cycle)
	}

	return failureDoc{Error: doc}
}

// fail renders err as a failure document on stdout and returns the
// matching ExitError.
func (s *session) fail(err error) error {
	doc := renderError(err)
	s.log.Error().Err(err).Str("kind", doc.Error.Kind).Msg("query failed")
	if werr := s.write(doc); werr != nil {
		return werr
	}

	return &ExitError{Code: ExitFailure, Message: err.Error()}
}
