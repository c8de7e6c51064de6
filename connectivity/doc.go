// Package connectivity implements the single-component validator: the
// loop-local encoder only forces every vertex's ON-edge degree into
// {0,2}, which a disjoint union of simple cycles already satisfies, so
// global "one loop, not several" has to be checked outside CNF. This
// package does that check by breadth-first walking the ON-edge adjacency
// graph.
package connectivity
