// Package pathgraph computes shortest paths and structural metrics over
// weighted directed graphs supplied as edge lists.
//
// The whole external surface is three functions:
//
//	BuildGraph(edges)           → *core.Graph   | core.ErrEmptyGraph, core.ErrInvalidGraph
//	FindPaths(g, start, target) → *ShortestPath | dijkstra.ErrNodeNotFound, dijkstra.ErrNoPath
//	AnalyzeGraph(g)             → *Analysis     | core.ErrEmptyGraph
//
// Every failure is an ordinary error value; branch with errors.Is on the
// sentinel and errors.As on the typed error for its payload.
//
// Packages:
//
//	core/      - Node, Edge, Graph; validation and construction
//	frontier/  - min-priority queue with stable ties
//	dijkstra/  - single-pair shortest path
//	bfs/       - breadth-first walk over any Neighborhood
//	dfs/       - depth-first walk, topological order, cycle detection
//	analysis/  - counts, undirected components, density, acyclicity
//	builder/   - deterministic edge-list generators
//	cmd/pathgraph - command-line front end (JSON/YAML edge files)
//
// Quick example, on the road graph:
//
//	A→B 4   A→C 2   B→C 1   B→D 5
//	C→D 8   C→E 10  D→E 2
//
//	g, _ := pathgraph.BuildGraph(edges)
//	p, _ := pathgraph.FindPaths(g, core.Text("A"), core.Text("E"))
//	// p.Path = [A B D E], p.Distance = 11
//
// A built Graph is immutable and may be shared by any number of goroutines.
package pathgraph
