package encode

import (
	"fmt"

	"github.com/katalvlaran/slitherlink/cnf"
	"github.com/katalvlaran/slitherlink/grid"
)

// VertexClauses emits the CNF clauses forcing the count of ON edges among
// edges to be 0 or 2 (never 1, 3, or 4). len(edges) must be 2, 3, or 4
// (a Grid's vertex degree never falls outside that range).
func VertexClauses(edges []int) ([]cnf.Clause, error) {
	lit := func(i int, on bool) cnf.Literal { return EdgeLit(edges[i], on) }

	switch len(edges) {
	case 2:
		a, b := 0, 1

		return []cnf.Clause{
			{lit(a, false), lit(b, true)},
			{lit(a, true), lit(b, false)},
		}, nil

	case 3:
		a, b, c := 0, 1, 2

		return []cnf.Clause{
			{lit(a, false), lit(b, false), lit(c, false)},
			{lit(a, false), lit(b, true), lit(c, true)},
			{lit(a, true), lit(b, false), lit(c, true)},
			{lit(a, true), lit(b, true), lit(c, false)},
		}, nil

	case 4:
		out := make([]cnf.Clause, 0, 8)
		// At-most-two: every 3-subset has at least one false (forbids 3 or 4 true).
		for _, tr := range triples4 {
			out = append(out, cnf.Clause{lit(tr[0], false), lit(tr[1], false), lit(tr[2], false)})
		}
		// At-least-two-or-zero: for each candidate "lone true" variable i, forbid
		// i true with the other three all false.
		for i := 0; i < 4; i++ {
			others := make([]int, 0, 3)
			for j := 0; j < 4; j++ {
				if j != i {
					others = append(others, j)
				}
			}
			out = append(out, cnf.Clause{
				lit(i, false), lit(others[0], true), lit(others[1], true), lit(others[2], true),
			})
		}

		return out, nil

	default:
		return nil, fmt.Errorf("encode: vertex degree must be 2, 3, or 4, got %d", len(edges))
	}
}

// AddLoopLocalConstraints walks every vertex in ascending index order,
// for deterministic clause ordering, and appends its degree-0-or-2
// clauses to f.
func AddLoopLocalConstraints(f *cnf.Formula, g *grid.Grid) error {
	for v := 0; v < g.NumVertices(); v++ {
		edges, err := g.CornerEdges(v)
		if err != nil {
			return fmt.Errorf("encode: vertex %d: %w", v, err)
		}
		clauses, err := VertexClauses(edges)
		if err != nil {
			return fmt.Errorf("encode: vertex %d: %w", v, err)
		}
		f.AddAll(clauses)
	}

	return nil
}
