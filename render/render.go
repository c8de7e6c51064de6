// Package render draws an accepted Slitherlink solution as ASCII text atop
// its clue grid.
package render

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/slitherlink/grid"
	"github.com/katalvlaran/slitherlink/puzzle"
)

// Option configures Render's output. Called with no options, Render
// produces the bare canvas byte-for-byte; the legend line is opt-in.
type Option func(*config)

type config struct {
	legend bool
}

// WithLegend prepends a one-line "# = ON edge" legend above the canvas.
func WithLegend() Option {
	return func(c *config) { c.legend = true }
}

// Render draws onEdges (0-based, as returned by satsolver.Model's
// PositiveEdges) atop p's clue grid using g for edge/cell geometry.
//
// Canvas size is (4*(H+1)+1) rows by (4*(W+1)+1) columns. Clue digits
// sit at (4r+2, 4c+2); horizontal edges draw a run of
// '#' across columns 4c..4(c+1) at row 4r; vertical edges draw a run of
// '#' across rows 4r..4(r+1) at column 4c.
func Render(g *grid.Grid, p *puzzle.Puzzle, onEdges []int, opts ...Option) string {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	rows := 4*(g.Height+1) + 1
	cols := 4*(g.Width+1) + 1
	canvas := make([][]byte, rows)
	for i := range canvas {
		canvas[i] = bytes(cols, ' ')
	}

	for r := 0; r < p.Height; r++ {
		for c := 0; c < p.Width; c++ {
			if p.Clues[r][c] == puzzle.Blank {
				continue
			}
			canvas[4*r+2][4*c+2] = strconv.Itoa(p.Clues[r][c])[0]
		}
	}

	on := make(map[int]bool, len(onEdges))
	for _, e := range onEdges {
		on[e] = true
	}

	for r := 0; r <= g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			e := r*g.Width + c // horizontal edge index, per grid's layout
			if !on[e] {
				continue
			}
			for col := 4 * c; col <= 4*(c+1); col++ {
				canvas[4*r][col] = '#'
			}
		}
	}
	numHorizontal := g.Width * (g.Height + 1)
	for r := 0; r < g.Height; r++ {
		for c := 0; c <= g.Width; c++ {
			e := numHorizontal + r*(g.Width+1) + c // vertical edge index
			if !on[e] {
				continue
			}
			for row := 4 * r; row <= 4*(r+1); row++ {
				canvas[row][4*c] = '#'
			}
		}
	}

	var b strings.Builder
	if cfg.legend {
		b.WriteString("# = ON edge\n")
	}
	for i, row := range canvas {
		b.Write(row)
		if i < len(canvas)-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func bytes(n int, fill byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = fill
	}

	return b
}
