package satsolver

import (
	"fmt"

	"github.com/katalvlaran/slitherlink/cnf"
)

// Solve runs the solver once and returns the first model found, or
// ok=false if the formula is UNSAT.
func Solve(f *cnf.Formula) (*Model, bool, error) {
	if f.NumVars <= 0 {
		return nil, false, &SolverError{Cause: ErrTooManyVariables}
	}

	assign := make([]assignState, f.NumVars)
	result, ok := dpll(f.Clauses, assign)
	if !ok {
		return nil, false, nil
	}

	m := &Model{Assignment: make([]bool, f.NumVars)}
	for i, v := range result {
		m.Assignment[i] = v == isTrue
	}

	return m, true, nil
}

// ModelIter lazily enumerates distinct satisfying models of a formula:
// each call to Next runs a fresh solve over the original clauses plus one
// blocking clause per model already yielded, so previously seen models
// can never recur.
type ModelIter struct {
	numVars   int
	base      []cnf.Clause
	blocking  []cnf.Clause
	exhausted bool
}

// Models returns a fresh iterator over f's models. f is not mutated.
func Models(f *cnf.Formula) *ModelIter {
	return &ModelIter{
		numVars: f.NumVars,
		base:    f.Clauses,
	}
}

// Next returns the next not-yet-yielded model, or ok=false once the
// formula (plus accumulated blocking clauses) is UNSAT.
func (it *ModelIter) Next() (*Model, bool, error) {
	if it.exhausted {
		return nil, false, nil
	}

	clauses := make([]cnf.Clause, 0, len(it.base)+len(it.blocking))
	clauses = append(clauses, it.base...)
	clauses = append(clauses, it.blocking...)

	f := &cnf.Formula{NumVars: it.numVars, Clauses: clauses}
	m, ok, err := Solve(f)
	if err != nil {
		return nil, false, fmt.Errorf("satsolver: model iteration: %w", err)
	}
	if !ok {
		it.exhausted = true

		return nil, false, nil
	}

	it.blocking = append(it.blocking, blockingClause(m))

	return m, true, nil
}

// blockingClause builds the clause that is false under m and only m: the
// disjunction of each variable's negated current literal.
func blockingClause(m *Model) cnf.Clause {
	c := make(cnf.Clause, len(m.Assignment))
	for i, v := range m.Assignment {
		c[i] = cnf.Lit(i+1, !v)
	}

	return c
}
