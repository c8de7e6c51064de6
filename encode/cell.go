package encode

import (
	"fmt"

	"github.com/katalvlaran/slitherlink/cnf"
	"github.com/katalvlaran/slitherlink/grid"
)

// pairs4 and triples4 are the fixed 2- and 3-element subsets of {0,1,2,3},
// used to build the pairwise/triple clause families below without
// re-deriving combinatorics for a cardinality that is always exactly
// four.
var pairs4 = [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
var triples4 = [][3]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}

// CellClauses emits the CNF clauses encoding "exactly k of these four
// edges is ON". Clue must be in {0,1,2,3}.
func CellClauses(edges [4]int, clue int) ([]cnf.Clause, error) {
	lit := func(i int, on bool) cnf.Literal { return EdgeLit(edges[i], on) }

	switch clue {
	case 0:
		out := make([]cnf.Clause, 0, 4)
		for i := 0; i < 4; i++ {
			out = append(out, cnf.Clause{lit(i, false)})
		}

		return out, nil

	case 1:
		out := make([]cnf.Clause, 0, 7)
		for _, p := range pairs4 {
			out = append(out, cnf.Clause{lit(p[0], false), lit(p[1], false)})
		}
		out = append(out, cnf.Clause{lit(0, true), lit(1, true), lit(2, true), lit(3, true)})

		return out, nil

	case 2:
		out := make([]cnf.Clause, 0, 8)
		for _, tr := range triples4 {
			out = append(out, cnf.Clause{lit(tr[0], true), lit(tr[1], true), lit(tr[2], true)})
		}
		for _, tr := range triples4 {
			out = append(out, cnf.Clause{lit(tr[0], false), lit(tr[1], false), lit(tr[2], false)})
		}

		return out, nil

	case 3:
		out := make([]cnf.Clause, 0, 7)
		for _, p := range pairs4 {
			out = append(out, cnf.Clause{lit(p[0], true), lit(p[1], true)})
		}
		out = append(out, cnf.Clause{lit(0, false), lit(1, false), lit(2, false), lit(3, false)})

		return out, nil

	default:
		return nil, fmt.Errorf("encode: clue must be in {0,1,2,3}, got %d", clue)
	}
}

// AddCellConstraints walks the clue matrix in row-major order and
// appends each clued cell's clauses to f. Blank cells contribute
// nothing.
func AddCellConstraints(f *cnf.Formula, g *grid.Grid, clues [][]int) error {
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			clue := clues[r][c]
			if clue < 0 {
				continue // blank
			}
			k := r*g.Width + c
			upper, lower, left, right, err := g.CellEdges(k)
			if err != nil {
				return fmt.Errorf("encode: cell %d: %w", k, err)
			}
			clauses, err := CellClauses([4]int{upper, lower, left, right}, clue)
			if err != nil {
				return fmt.Errorf("encode: cell %d: %w", k, err)
			}
			f.AddAll(clauses)
		}
	}

	return nil
}
