// Package puzzle implements the clue-matrix ingest: parsing the text
// puzzle file format into a 2-D clue matrix, plus (as a test-only
// supplement) generating known-satisfiable fixtures from a random loop.
package puzzle

// Blank marks a cell with no clue.
const Blank = -1

// Puzzle is a read-only clue matrix: Height rows by Width columns, each
// cell either Blank or a clue in {0,1,2,3}.
type Puzzle struct {
	Height, Width int
	Clues         [][]int // Clues[r][c]
}
