package satsolver

import "github.com/katalvlaran/slitherlink/cnf"

// assignState encodes one variable's truth value: 0 unassigned, 1 true,
// 2 false. A plain []int8 keeps backtracking (copy-on-branch) cheap to
// reason about at the cost of some allocation churn — acceptable for the
// grid sizes this solver targets.
type assignState = int8

const (
	unassigned assignState = 0
	isTrue     assignState = 1
	isFalse    assignState = 2
)

func litSatisfied(l cnf.Literal, v assignState) bool {
	if v == unassigned {
		return false
	}
	varTrue := v == isTrue

	return varTrue != l.Negated()
}

func polarityOf(l cnf.Literal) assignState {
	if l.Negated() {
		return isFalse
	}

	return isTrue
}

// findUnit scans clauses for the first unit clause (all literals false
// except one unassigned) under assign, or reports a conflict if some
// clause has every literal assigned and none satisfied.
func findUnit(clauses []cnf.Clause, assign []assignState) (lit cnf.Literal, found, conflict bool) {
	for _, c := range clauses {
		satisfied := false
		unassignedCount := 0
		var pending cnf.Literal
		for _, l := range c {
			v := assign[l.Var()-1]
			if v == unassigned {
				unassignedCount++
				pending = l
				continue
			}
			if litSatisfied(l, v) {
				satisfied = true
				break
			}
		}
		if satisfied {
			continue
		}
		if unassignedCount == 0 {
			return 0, false, true
		}
		if unassignedCount == 1 {
			return pending, true, false
		}
	}

	return 0, false, false
}

// clauseUnsatisfiedWithUnassigned reports, for one clause, whether it is
// not yet satisfied and (if so) the first unassigned variable within it.
func clauseUnsatisfiedWithUnassigned(c cnf.Clause, assign []assignState) (unsatisfied bool, unassignedVar int) {
	for _, l := range c {
		v := assign[l.Var()-1]
		if v != unassigned && litSatisfied(l, v) {
			return false, 0
		}
	}
	for _, l := range c {
		if assign[l.Var()-1] == unassigned {
			return true, l.Var()
		}
	}

	return true, 0
}

// dpll searches for a satisfying assignment extending assign, via unit
// propagation to fixpoint followed by branching on the first unassigned
// variable found in an unsatisfied clause. Classic DPLL; no clause
// learning or watched literals, traded for a small, auditable
// implementation.
func dpll(clauses []cnf.Clause, assign []assignState) ([]assignState, bool) {
	cur := make([]assignState, len(assign))
	copy(cur, assign)

	for {
		lit, found, conflict := findUnit(clauses, cur)
		if conflict {
			return nil, false
		}
		if !found {
			break
		}
		cur[lit.Var()-1] = polarityOf(lit)
	}

	allSatisfied := true
	branchVar := -1
	for _, c := range clauses {
		unsatisfied, v := clauseUnsatisfiedWithUnassigned(c, cur)
		if !unsatisfied {
			continue
		}
		allSatisfied = false
		if v != 0 && branchVar == -1 {
			branchVar = v
		}
	}
	if allSatisfied {
		return cur, true
	}
	if branchVar == -1 {
		// Some clause is unsatisfied and no unsatisfied clause has an
		// unassigned literal left to branch on: conflict.
		return nil, false
	}

	for _, val := range [2]assignState{isTrue, isFalse} {
		next := make([]assignState, len(cur))
		copy(next, cur)
		next[branchVar-1] = val
		if result, ok := dpll(clauses, next); ok {
			return result, true
		}
	}

	return nil, false
}
