// Package satsolver implements a small, self-contained DPLL solver: unit
// propagation and chronological backtracking, plus a lazy Models iterator
// that re-queries the solver with a blocking clause, producing a
// restartable lazy model sequence for uniqueness verification.
//
// It is treated as a black box by everything above it (encode, solve):
// nothing outside this package inspects its search order or internal
// state.
package satsolver
