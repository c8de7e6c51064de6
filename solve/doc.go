// Package solve implements the enumeration driver: build the CNF
// formula, invoke the SAT solver lazily, discard models whose ON-edge set
// is not a single connected component, and either stop at the first
// accepted model or (in uniqueness-verification mode) keep going until a
// second accepted model turns up.
//
// One orchestrator function; errors are wrapped once at the API boundary
// with %w and no partial state leaks to the caller on failure.
package solve
