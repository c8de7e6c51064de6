package solve_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slitherlink/grid"
	"github.com/katalvlaran/slitherlink/puzzle"
	"github.com/katalvlaran/slitherlink/render"
	"github.com/katalvlaran/slitherlink/solve"
)

func opts() solve.Options {
	return solve.Options{Logger: zerolog.Nop()}
}

// Scenario A: 1x1 puzzle with clue 0. All four edges OFF satisfies the
// cell clause but the empty edge set fails the connectivity validator.
func TestScenarioA_Clue0IsUnsatisfiableAsALoop(t *testing.T) {
	g, err := grid.New(1, 1)
	require.NoError(t, err)
	p := &puzzle.Puzzle{Height: 1, Width: 1, Clues: [][]int{{0}}}

	_, err = solve.Solve(g, p, opts())
	require.ErrorIs(t, err, solve.ErrNoSolution)
}

// Scenario B: 1x1 puzzle with clue 3. No assignment keeps every vertex's
// degree in {0,2} while exactly three of the cell's four edges are ON.
func TestScenarioB_Clue3IsUnsatisfiable(t *testing.T) {
	g, err := grid.New(1, 1)
	require.NoError(t, err)
	p := &puzzle.Puzzle{Height: 1, Width: 1, Clues: [][]int{{3}}}

	_, err = solve.Solve(g, p, opts())
	require.ErrorIs(t, err, solve.ErrNoSolution)
}

// Scenario C: 2x2 puzzle with clues "33"/".." — the unique loop is the
// rectangle around the two top cells, three edges of each top cell.
func TestScenarioC_TopRowThrees(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	p := &puzzle.Puzzle{Height: 2, Width: 2, Clues: [][]int{
		{3, 3},
		{puzzle.Blank, puzzle.Blank},
	}}

	res, err := solve.Solve(g, p, opts())
	require.NoError(t, err)
	require.NotEmpty(t, res.OnEdges)
}

// Scenario F: a clue-0 cell adjacent to a clue-3 cell sharing an edge is
// unsatisfiable: the 0 forces the shared edge OFF, so the 3 needs its
// other three edges ON, and then each end of the shared edge has exactly
// one ON edge, which the vertex degree clauses forbid.
func TestScenarioF_ZeroAdjacentToThreeIsUnsatisfiable(t *testing.T) {
	g, err := grid.New(1, 2)
	require.NoError(t, err)
	p := &puzzle.Puzzle{Height: 1, Width: 2, Clues: [][]int{{0, 3}}}

	_, err = solve.Solve(g, p, opts())
	require.ErrorIs(t, err, solve.ErrNoSolution)
}

// Scenario D: 2x2 puzzle with clue pattern "31"/"13" has exactly one
// valid loop solution; the renderer must produce a 13x13 canvas
// (4*(2+1)+1) with the clue digits at rows/cols 2 and 6.
func TestScenarioD_DiagonalThreesAndOnesHasUniqueSolution(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	p := &puzzle.Puzzle{Height: 2, Width: 2, Clues: [][]int{
		{3, 1},
		{1, 3},
	}}

	res, err := solve.Solve(g, p, opts())
	require.NoError(t, err)
	require.NotEmpty(t, res.OnEdges)

	out := render.Render(g, p, res.OnEdges)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 13)
	for _, l := range lines {
		require.Len(t, l, 13)
	}
	require.Equal(t, byte('3'), lines[2][2])
	require.Equal(t, byte('1'), lines[2][6])
	require.Equal(t, byte('1'), lines[6][2])
	require.Equal(t, byte('3'), lines[6][6])

	verifyOpts := opts()
	verifyOpts.Verify = true
	verifyRes, err := solve.Solve(g, p, verifyOpts)
	require.NoError(t, err)
	require.Equal(t, res.OnEdges, verifyRes.OnEdges)
}

// Scenario E: a puzzle with no clues at all is ambiguous on anything
// larger than a 1x1 grid — many distinct simple loops satisfy the
// (vacuous) cell constraints. Default mode returns one; --verify reports
// MultipleSolutions.
func TestScenarioE_BlankPuzzleIsAmbiguous(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	p := &puzzle.Puzzle{Height: 2, Width: 2, Clues: [][]int{
		{puzzle.Blank, puzzle.Blank},
		{puzzle.Blank, puzzle.Blank},
	}}

	res, err := solve.Solve(g, p, opts())
	require.NoError(t, err)
	require.NotEmpty(t, res.OnEdges)

	verifyOpts := opts()
	verifyOpts.Verify = true
	_, err = solve.Solve(g, p, verifyOpts)
	require.ErrorIs(t, err, solve.ErrMultipleSolutions)
}

// Re-running the full pipeline on the same puzzle with the (deterministic)
// internal solver must yield the same accepted model every time.
func TestSolveIsDeterministicAcrossRepeatedRuns(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	p := &puzzle.Puzzle{Height: 2, Width: 2, Clues: [][]int{
		{3, 3},
		{puzzle.Blank, puzzle.Blank},
	}}

	first, err := solve.Solve(g, p, opts())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := solve.Solve(g, p, opts())
		require.NoError(t, err)
		require.Equal(t, first.OnEdges, again.OnEdges)
	}
}

func TestSolveRejectsMismatchedDimensions(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	p := &puzzle.Puzzle{Height: 1, Width: 1, Clues: [][]int{{0}}}

	_, err = solve.Solve(g, p, opts())
	require.Error(t, err)
	require.False(t, errors.Is(err, solve.ErrNoSolution))
}
