package grid

// EdgeEndpoints returns the two vertex indices incident to edge e.
//
// Complexity: O(1).
func (g *Grid) EdgeEndpoints(e int) (v1, v2 int, err error) {
	if e < 0 || e >= g.numEdges {
		return 0, 0, &BoundsError{Kind: "edge", Index: e, Bound: g.numEdges}
	}
	if e < g.numHorizontal {
		r, c := e/g.Width, e%g.Width
		v1 = r*(g.Width+1) + c
		v2 = v1 + 1

		return v1, v2, nil
	}
	ve := e - g.numHorizontal
	r, c := ve/(g.Width+1), ve%(g.Width+1)
	v1 = r*(g.Width+1) + c
	v2 = v1 + (g.Width + 1)

	return v1, v2, nil
}

// AdjacentEdges returns the up-to-6 distinct edges sharing a vertex with e
// (the union of CornerEdges of e's two endpoints, minus e itself).
//
// Complexity: O(1).
func (g *Grid) AdjacentEdges(e int) ([]int, error) {
	v1, v2, err := g.EdgeEndpoints(e)
	if err != nil {
		return nil, err
	}
	c1, _ := g.CornerEdges(v1)
	c2, _ := g.CornerEdges(v2)

	out := make([]int, 0, len(c1)+len(c2))
	seen := make(map[int]struct{}, len(c1)+len(c2))
	seen[e] = struct{}{}
	for _, c := range c1 {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	for _, c := range c2 {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out, nil
}

// VertexDegree is the number of edges incident to v: 2 at grid corners, 3
// along a grid boundary, 4 in the interior. It equals len(CornerEdges(v)),
// the count the loop-local encoder picks its clause family from.
//
// Complexity: O(1).
func (g *Grid) VertexDegree(v int) (int, error) {
	edges, err := g.CornerEdges(v)
	if err != nil {
		return 0, err
	}

	return len(edges), nil
}
