package grid_test

import (
	"testing"

	"github.com/katalvlaran/slitherlink/grid"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsDegenerateDimensions(t *testing.T) {
	_, err := grid.New(0, 3)
	require.Error(t, err)

	_, err = grid.New(3, 0)
	require.Error(t, err)
}

func TestCounts(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)

	require.Equal(t, 3*3+2*4, g.NumEdges()) // W*(H+1) + H*(W+1) = 9+8
	require.Equal(t, 3*4, g.NumVertices())  // (H+1)*(W+1)
	require.Equal(t, 6, g.NumCells())
}

func TestCellEdgesDistinctAndBounds(t *testing.T) {
	g, err := grid.New(3, 4)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for k := 0; k < g.NumCells(); k++ {
		u, l, le, ri, err := g.CellEdges(k)
		require.NoError(t, err)
		edges := []int{u, l, le, ri}
		for i, e := range edges {
			require.GreaterOrEqual(t, e, 0)
			require.Less(t, e, g.NumEdges())
			for j, e2 := range edges {
				if i != j {
					require.NotEqual(t, e, e2, "cell %d edges must be distinct", k)
				}
			}
		}
		_ = seen
	}

	_, _, _, _, err = g.CellEdges(-1)
	require.Error(t, err)
	_, _, _, _, err = g.CellEdges(g.NumCells())
	require.Error(t, err)
}

func TestCornerEdgesDegreeMatchesPosition(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	for v := 0; v < g.NumVertices(); v++ {
		edges, err := g.CornerEdges(v)
		require.NoError(t, err)
		d, err := g.VertexDegree(v)
		require.NoError(t, err)
		require.Equal(t, len(edges), d)
		require.GreaterOrEqual(t, d, 2)
		require.LessOrEqual(t, d, 4)

		r, c := v/(g.Width+1), v%(g.Width+1)
		onRowBorder := r == 0 || r == g.Height
		onColBorder := c == 0 || c == g.Width
		want := 4
		if onRowBorder && onColBorder {
			want = 2
		} else if onRowBorder || onColBorder {
			want = 3
		}
		require.Equal(t, want, d, "vertex %d at (%d,%d)", v, r, c)
	}
}

// Every edge returned by CellEdges must appear in CornerEdges of both of
// its own endpoints (as reported by EdgeEndpoints).
func TestCellEdgesAppearInVertexCornerEdges(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	for k := 0; k < g.NumCells(); k++ {
		u, l, le, ri, err := g.CellEdges(k)
		require.NoError(t, err)
		for _, e := range []int{u, l, le, ri} {
			v1, v2, err := g.EdgeEndpoints(e)
			require.NoError(t, err)
			c1, err := g.CornerEdges(v1)
			require.NoError(t, err)
			c2, err := g.CornerEdges(v2)
			require.NoError(t, err)
			require.Contains(t, c1, e)
			require.Contains(t, c2, e)
		}
	}
}

func TestEdgeEndpointsAreDistinctVertices(t *testing.T) {
	g, err := grid.New(4, 5)
	require.NoError(t, err)

	for e := 0; e < g.NumEdges(); e++ {
		v1, v2, err := g.EdgeEndpoints(e)
		require.NoError(t, err)
		require.NotEqual(t, v1, v2)
		require.GreaterOrEqual(t, v1, 0)
		require.Less(t, v1, g.NumVertices())
		require.GreaterOrEqual(t, v2, 0)
		require.Less(t, v2, g.NumVertices())
	}
}

func TestAdjacentEdgesExcludesSelfAndIsWithinBounds(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	for e := 0; e < g.NumEdges(); e++ {
		adj, err := g.AdjacentEdges(e)
		require.NoError(t, err)
		require.LessOrEqual(t, len(adj), 6)
		for _, a := range adj {
			require.NotEqual(t, e, a)
			require.GreaterOrEqual(t, a, 0)
			require.Less(t, a, g.NumEdges())
		}
	}
}

func TestAdjacentVerticesAreNeighborsSharingAnEdge(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)

	for v := 0; v < g.NumVertices(); v++ {
		neighbors, err := g.AdjacentVertices(v)
		require.NoError(t, err)
		vEdges, _ := g.CornerEdges(v)
		for _, n := range neighbors {
			nEdges, _ := g.CornerEdges(n)
			shared := false
			for _, e1 := range vEdges {
				for _, e2 := range nEdges {
					if e1 == e2 {
						shared = true
					}
				}
			}
			require.True(t, shared, "vertex %d and neighbor %d must share an edge", v, n)
		}
	}
}
