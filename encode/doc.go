// Package encode turns a clue matrix plus a grid.Grid into a cnf.Formula:
// the cell-constraint clauses and the loop-local vertex-degree (0 or 2)
// clauses.
// Encoding is a pure function of (grid, clues); it holds no state of its
// own and never inspects a partial solution.
package encode
