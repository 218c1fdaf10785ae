package builder

import "github.com/katalvlaran/pathgraph/core"

// Method names used as error prefixes.
const (
	MethodPath         = "Path"
	MethodCycle        = "Cycle"
	MethodStar         = "Star"
	MethodComplete     = "Complete"
	MethodGrid         = "Grid"
	MethodRandomSparse = "RandomSparse"
)

// Minimum sizes per topology.
const (
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinCompleteNodes = 2
	MinGridDim       = 1
	MinSparseNodes   = 2
)

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// CenterNode is the hub of Star; it never collides with generated IDs of
// the default scheme.
var CenterNode = core.Text("Center")
