package satsolver

import "errors"

// SolverError wraps a failure reported by the underlying solving
// collaborator. It is distinct from "UNSAT", which is a normal negative
// result, not a failure.
type SolverError struct {
	Cause error
}

func (e *SolverError) Error() string { return "satsolver: solver failed: " + e.Cause.Error() }

func (e *SolverError) Unwrap() error { return e.Cause }

// ErrTooManyVariables is the cause Solve reports when a formula declares
// a variable count of zero or less, which leaves no room for an
// assignment array (an internal sizing sanity check, not a modeling
// limitation).
var ErrTooManyVariables = errors.New("satsolver: formula declares a non-positive variable count")
