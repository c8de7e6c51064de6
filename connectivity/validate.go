package connectivity

import "github.com/katalvlaran/slitherlink/grid"

// queueItem is a single pending edge in the BFS frontier.
type queueItem struct {
	edge int
}

// walker holds the mutable state of one connectivity walk: a small struct
// carrying queue/visited state rather than free variables threaded
// through recursive calls.
type walker struct {
	g       *grid.Grid
	visited map[int]bool
	queue   []queueItem
}

// Validate reports whether onEdges (0-based edge indices) forms a single
// connected component under grid.Grid's edge-adjacency relation, via
// breadth-first search. An empty onEdges is never connected (a
// Slitherlink solution is always a nonempty loop).
//
// Complexity: O(|onEdges| * d) where d<=6 is the max edges adjacent to an
// edge; Memory: O(|onEdges|).
func Validate(g *grid.Grid, onEdges []int) (bool, error) {
	if len(onEdges) == 0 {
		return false, nil
	}

	members := make(map[int]bool, len(onEdges))
	for _, e := range onEdges {
		members[e] = true
	}

	w := &walker{
		g:       g,
		visited: make(map[int]bool, len(onEdges)),
		queue:   []queueItem{{edge: onEdges[0]}},
	}
	w.visited[onEdges[0]] = true

	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		neighbors, err := g.AdjacentEdges(item.edge)
		if err != nil {
			return false, err
		}
		for _, n := range neighbors {
			if !members[n] || w.visited[n] {
				continue
			}
			w.visited[n] = true
			w.queue = append(w.queue, queueItem{edge: n})
		}
	}

	return len(w.visited) == len(members), nil
}
