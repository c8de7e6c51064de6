// Package encode maps a puzzle's clue matrix and its grid.Grid indexer
// into a cnf.Formula: one clause family per clued cell and one per grid
// vertex. The mapping from edge index to CNF variable is the
// single conversion point every other function in this package goes
// through, so renumbering edges never requires touching clause logic.
package encode

import "github.com/katalvlaran/slitherlink/cnf"

// EdgeVar returns the 1-based CNF variable for edge e (0-based). Variable
// i represents "edge i-1 is ON".
func EdgeVar(e int) int { return e + 1 }

// EdgeLit builds the literal asserting edge e is ON (positive) or OFF
// (negative).
func EdgeLit(e int, on bool) cnf.Literal {
	return cnf.Lit(EdgeVar(e), on)
}
