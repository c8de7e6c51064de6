// Package grid is pure arithmetic on (height, width): it has no notion of
// clues, CNF, or solutions. Everything above it (encode, connectivity,
// solve) is built on the four queries this package exposes.
//
// What:
//   - CellEdges: a cell's four bounding edges.
//   - CornerEdges / AdjacentVertices: a vertex's incident edges/neighbors.
//   - AdjacentEdges: the edges sharing an endpoint with a given edge.
//
// Why: correctly indexing edges and vertices without off-by-one drift is
// the single riskiest part of a Slitherlink encoder; concentrating all of
// it in one small, exhaustively tested package makes every other package
// trust the indices it's handed.
//
// Errors:
//   - BoundsError: an index fell outside [0, N) for its kind. Indicates a
//     caller bug; every production call path in this repository derives
//     its indices from this same Grid, so this should be unreachable.
package grid
