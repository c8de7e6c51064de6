package satsolver

// Model is a satisfying assignment over a formula's 1-based variables.
// Assignment[v-1] holds the truth value of variable v.
type Model struct {
	Assignment []bool
}

// PositiveEdges returns the 0-based edge indices whose variable (edge+1)
// is true, ascending.
func (m Model) PositiveEdges() []int {
	out := make([]int, 0, len(m.Assignment))
	for i, v := range m.Assignment {
		if v {
			out = append(out, i) // variable i+1 true => edge i ON
		}
	}

	return out
}
