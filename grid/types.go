// Package grid defines the deterministic numbering of edges, vertices, and
// cells over a rectangular Slitherlink grid, plus the neighborhood queries
// built on top of it.
//
// Layout (fixed):
//
//   - Horizontal edges come first: one per (row r, col c) with 0<=r<=H,
//     0<=c<W, indexed r*W + c. There are W*(H+1) of them.
//   - Vertical edges follow: one per (row r, col c) with 0<=r<H, 0<=c<=W,
//     indexed numHorizontal + r*(W+1) + c. There are H*(W+1) of them.
//   - Vertices are indexed r*(W+1) + c with 0<=r<=H, 0<=c<=W.
//
// Grid is built once per puzzle and never mutated afterward; every query
// method is a pure function of the precomputed tables.
package grid

import "fmt"

// BoundsError reports an out-of-range index passed to a Grid query. It
// indicates a programmer error: every caller in this repository is
// expected to stay within bounds derived from Grid's own Height/Width.
type BoundsError struct {
	Kind  string // "cell", "edge", or "vertex"
	Index int
	Bound int // exclusive upper bound that was violated
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("grid: %s index %d out of range [0,%d)", e.Kind, e.Index, e.Bound)
}

// Grid is the immutable deterministic numbering for an H-row by W-column
// Slitherlink board. Construct with New; all fields are read-only after
// construction and every method is safe for concurrent read-only use.
type Grid struct {
	Height, Width int

	numHorizontal int // W * (H+1)
	numVertical   int // H * (W+1)
	numEdges      int
	numVertices   int

	// cornerEdges[v] is the precomputed, fixed-order list of edges incident
	// to vertex v, built once so AdjacentEdges and AdjacentVertices never
	// need to scan the whole grid.
	cornerEdges [][]int
}

// New builds the indexer for an H x W grid. H and W must both be >= 1.
func New(h, w int) (*Grid, error) {
	if h < 1 || w < 1 {
		return nil, fmt.Errorf("grid: height and width must be >= 1, got %d x %d", h, w)
	}
	g := &Grid{
		Height:        h,
		Width:         w,
		numHorizontal: w * (h + 1),
		numVertical:   h * (w + 1),
	}
	g.numEdges = g.numHorizontal + g.numVertical
	g.numVertices = (h + 1) * (w + 1)
	g.cornerEdges = make([][]int, g.numVertices)
	for v := 0; v < g.numVertices; v++ {
		g.cornerEdges[v] = g.computeCornerEdges(v)
	}

	return g, nil
}

// NumEdges is the total edge count, W*(H+1) + H*(W+1).
func (g *Grid) NumEdges() int { return g.numEdges }

// NumVertices is the total vertex count, (H+1)*(W+1).
func (g *Grid) NumVertices() int { return g.numVertices }

// NumCells is the total cell count, H*W.
func (g *Grid) NumCells() int { return g.Height * g.Width }
