package puzzle

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/slitherlink/grid"
)

// GenerateFromLoop builds a known-satisfiable H x W puzzle: it picks a
// random axis-aligned sub-rectangle of cells, uses that sub-rectangle's
// outer perimeter as the loop, and derives each cell's clue from how many
// of its four edges lie on that perimeter. When the sub-rectangle is a
// single cell, that cell has all four edges on the perimeter
// (count 4); since clues only range over {0,1,2,3}, both count 0
// (interior/exterior) and count 4 are left blank — the perimeter is still
// a valid loop either way, it simply isn't clued at that cell.
//
// This is a test fixture helper, not part of the CLI surface; the
// puzzles it produces are a strict subset of real Slitherlink puzzles
// (always a rectangular loop) but are guaranteed satisfiable, which is
// all property tests need.
func GenerateFromLoop(h, w int, rng *rand.Rand) (*Puzzle, []int, error) {
	g, err := grid.New(h, w)
	if err != nil {
		return nil, nil, fmt.Errorf("puzzle: GenerateFromLoop: %w", err)
	}

	r0 := rng.Intn(h)
	r1 := r0 + 1 + rng.Intn(h-r0)
	c0 := rng.Intn(w)
	c1 := c0 + 1 + rng.Intn(w-c0)

	perimeter := rectanglePerimeterEdges(g, r0, r1, c0, c1)
	onSet := make(map[int]bool, len(perimeter))
	for _, e := range perimeter {
		onSet[e] = true
	}

	clues := make([][]int, h)
	for r := 0; r < h; r++ {
		clues[r] = make([]int, w)
		for c := 0; c < w; c++ {
			k := r*w + c
			upper, lower, left, right, err := g.CellEdges(k)
			if err != nil {
				return nil, nil, fmt.Errorf("puzzle: GenerateFromLoop: %w", err)
			}
			count := 0
			for _, e := range [4]int{upper, lower, left, right} {
				if onSet[e] {
					count++
				}
			}
			if count == 0 || count == 4 {
				clues[r][c] = Blank
			} else {
				clues[r][c] = count
			}
		}
	}

	return &Puzzle{Height: h, Width: w, Clues: clues}, perimeter, nil
}

// rectanglePerimeterEdges returns the 0-based edge indices forming the
// outer boundary of the cell sub-rectangle [r0,r1) x [c0,c1).
func rectanglePerimeterEdges(g *grid.Grid, r0, r1, c0, c1 int) []int {
	var edges []int
	for c := c0; c < c1; c++ {
		k := r0*g.Width + c
		upper, _, _, _, _ := g.CellEdges(k)
		edges = append(edges, upper)
		k = (r1-1)*g.Width + c
		_, lower, _, _, _ := g.CellEdges(k)
		edges = append(edges, lower)
	}
	for r := r0; r < r1; r++ {
		k := r*g.Width + c0
		_, _, left, _, _ := g.CellEdges(k)
		edges = append(edges, left)
		k = r*g.Width + (c1 - 1)
		_, _, _, right, _ := g.CellEdges(k)
		edges = append(edges, right)
	}

	return edges
}
