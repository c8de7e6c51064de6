// Package cnf holds the value types for conjunctive normal form: signed
// literals over 1-based variable numbers, clauses (disjunctions of
// literals), and formulas (conjunctions of clauses). It has no knowledge
// of edges, cells, or grids — encode builds these from grid indices, and
// satsolver consumes them.
package cnf

import "fmt"

// Literal is a nonzero signed variable reference: positive means the
// variable must be true, negative means it must be false. Variable 0 is
// never valid (mirrors the 1-based DIMACS variable convention).
type Literal int

// Var returns the 1-based variable number this literal refers to,
// regardless of polarity.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}

	return int(l)
}

// Negated reports whether this literal requires its variable to be false.
func (l Literal) Negated() bool { return l < 0 }

// Not returns the opposite-polarity literal for the same variable.
func (l Literal) Not() Literal { return -l }

// Clause is a disjunction of literals: satisfied iff at least one of its
// literals is true under a given assignment.
type Clause []Literal

func (c Clause) String() string {
	return fmt.Sprintf("%v", []Literal(c))
}

// Formula is a conjunction of clauses, built append-only during encoding.
type Formula struct {
	NumVars int
	Clauses []Clause
}

// NewFormula creates an empty formula over numVars variables.
func NewFormula(numVars int) *Formula {
	return &Formula{NumVars: numVars}
}

// Add appends one clause. It never mutates or reorders existing clauses.
func (f *Formula) Add(c Clause) {
	f.Clauses = append(f.Clauses, c)
}

// AddAll appends every clause in cs, preserving order.
func (f *Formula) AddAll(cs []Clause) {
	f.Clauses = append(f.Clauses, cs...)
}

// Lit builds a Literal for variable v (1-based) with the given polarity.
func Lit(v int, positive bool) Literal {
	if positive {
		return Literal(v)
	}

	return Literal(-v)
}
