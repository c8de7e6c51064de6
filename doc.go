// Package slitherlink is your toolkit for encoding, solving, and
// rendering Slitherlink loop puzzles in Go.
//
// A Slitherlink puzzle is a rectangular grid of cells, some bearing a
// clue digit 0-3 that counts how many of the cell's four edges belong to
// the solution loop. Solving means finding the unique closed, non-
// self-intersecting loop along the grid lines that satisfies every clue.
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	grid/         — deterministic edge/vertex/cell numbering for an H x W board
//	cnf/          — the Boolean formula container the solver consumes
//	encode/       — clue and loop-local constraints, lowered to CNF clauses
//	satsolver/    — a small DPLL solver with lazy model enumeration
//	connectivity/ — rejects models whose ON edges aren't a single loop
//	puzzle/       — the text puzzle file format, plus a test fixture generator
//	render/       — draws an accepted solution as an ASCII canvas
//	solve/        — the driver wiring the above into one Solve call
//	cmd/slitherlink/ — the CLI entrypoint
//
// Quick ASCII example, the solved 1x2 puzzle "33" (its only loop runs
// around both cells). The canvas is 9 rows by 13 columns; the rows and
// columns past the loop hold only spaces and are left out here:
//
//	#########
//	#       #
//	# 3   3 #
//	#       #
//	#########
//
// See DESIGN.md for the component breakdown and the reasoning behind
// each design decision.
package slitherlink
