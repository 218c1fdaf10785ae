package builder

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/core"
)

// gridIDFmt is the fixed "row,col" label of grid cells.
const gridIDFmt = "%d,%d"

// GridNode returns the label of cell (r, c) as emitted by Grid.
func GridNode(r, c int) core.Node {
	return core.Text(fmt.Sprintf(gridIDFmt, r, c))
}

// Grid emits, for each cell in row-major order, the edge to its right
// neighbor and then the edge to its lower neighbor. Cell IDs are "r,c" and
// ignore the configured ID scheme. Requires rows, cols ≥ MinGridDim and at
// least one edge (rows·cols ≥ 2).
func Grid(rows, cols int) Constructor {
	return func(out []core.Edge, cfg builderConfig) ([]core.Edge, error) {
		if rows < MinGridDim || cols < MinGridDim || rows*cols < 2 {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d (each ≥ %d, at least 2 cells): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridNode(r, c)
				if c+1 < cols {
					out = cfg.edge(out, u, GridNode(r, c+1))
				}
				if r+1 < rows {
					out = cfg.edge(out, u, GridNode(r+1, c))
				}
			}
		}

		return out, nil
	}
}
