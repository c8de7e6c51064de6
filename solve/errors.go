package solve

import "errors"

// ErrNoSolution is returned when the solver exhausts every model (or
// reports UNSAT outright) without ever finding one whose ON edges form a
// single connected loop.
var ErrNoSolution = errors.New("solve: no single-loop solution exists")

// ErrMultipleSolutions is returned only under uniqueness verification,
// when a second valid model is found after the first.
var ErrMultipleSolutions = errors.New("solve: puzzle has more than one single-loop solution")
