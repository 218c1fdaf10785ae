// Package builder generates deterministic edge lists for tests, benchmarks
// and the pathgraph CLI.
//
// Every generator is a Constructor; BuildEdges resolves the options once and
// concatenates the output of each constructor in call order:
//
//	edges, err := builder.BuildEdges(
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 10)},
//	    builder.Grid(8, 8),
//	)
//	g, err := core.Build(edges)
//
// Topologies (directed, edges emitted in a stable documented order):
//
//	Path(n)          0→1→…→n-1                           n ≥ 2
//	Cycle(n)         Path(n) plus n-1→0                  n ≥ 3
//	Star(n)          Center→i for i in [0,n-1)           n ≥ 2
//	Complete(n)      i→j for every i < j                 n ≥ 2
//	Grid(r, c)       "r,c"→right and "r,c"→down          r, c ≥ 1, r·c ≥ 2
//	RandomSparse(n,p) i→j for every i ≠ j with prob. p  n ≥ 2, 0 ≤ p ≤ 1
//
// WithBidirectional() appends the reverse of every generated edge directly
// after it, with the same weight, which models an undirected topology.
//
// Determinism: same options, same seed and same constructor order yield the
// same edge list. Generators never panic; option constructors panic on
// meaningless arguments (nil functions, negative weights).
package builder
