package pathgraph

import (
	"github.com/katalvlaran/pathgraph/analysis"
	"github.com/katalvlaran/pathgraph/core"
	"github.com/katalvlaran/pathgraph/dijkstra"
)

// ShortestPath is the result of FindPaths.
type ShortestPath = dijkstra.ShortestPath

// Analysis is the result of AnalyzeGraph.
type Analysis = analysis.Result

// BuildGraph validates edges and builds an immutable Graph.
// See core.Build.
func BuildGraph(edges []core.Edge) (*core.Graph, error) {
	return core.Build(edges)
}

// FindPaths returns the cheapest directed path from start to target.
// See dijkstra.FindPath.
func FindPaths(g *core.Graph, start, target core.Node) (*ShortestPath, error) {
	return dijkstra.FindPath(g, start, target)
}

// AnalyzeGraph computes counts, components, connectivity and density.
// See analysis.Analyze.
func AnalyzeGraph(g *core.Graph) (*Analysis, error) {
	return analysis.Analyze(g)
}
