package solve

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/slitherlink/cnf"
	"github.com/katalvlaran/slitherlink/connectivity"
	"github.com/katalvlaran/slitherlink/encode"
	"github.com/katalvlaran/slitherlink/grid"
	"github.com/katalvlaran/slitherlink/puzzle"
	"github.com/katalvlaran/slitherlink/satsolver"
)

// Options configures one enumeration run.
type Options struct {
	// Verify requests uniqueness verification: continue enumerating past
	// the first accepted model to check whether a second one exists.
	Verify bool
	// Logger receives one event per solver invocation at debug level and
	// the final outcome at info level. Use zerolog.Nop() to discard.
	Logger zerolog.Logger
}

// Result is the accepted model, translated into the edge coordinate
// space callers (render) expect.
type Result struct {
	// OnEdges holds the 0-based indices of every edge the accepted loop
	// turns on.
	OnEdges []int
}

// Solve builds the CNF formula for p over g, then enumerates the
// solver's models, discarding any whose ON edges are not a single
// connected component.
func Solve(g *grid.Grid, p *puzzle.Puzzle, opts Options) (*Result, error) {
	if g.Height != p.Height || g.Width != p.Width {
		return nil, fmt.Errorf("solve: grid is %dx%d but puzzle is %dx%d", g.Height, g.Width, p.Height, p.Width)
	}

	f, err := buildFormula(g, p)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	it := satsolver.Models(f)

	var accepted []int
	haveAccepted := false

	for {
		m, ok, err := it.Next()
		if err != nil {
			opts.Logger.Debug().Err(err).Msg("solver call failed")

			return nil, fmt.Errorf("solve: %w", &satsolver.SolverError{Cause: err})
		}
		if !ok {
			opts.Logger.Debug().Msg("solver exhausted")

			break
		}

		onEdges := m.PositiveEdges()
		valid, err := connectivity.Validate(g, onEdges)
		if err != nil {
			return nil, fmt.Errorf("solve: validating model: %w", err)
		}
		if !valid {
			opts.Logger.Debug().Int("on_edges", len(onEdges)).Msg("model rejected: not a single loop")

			continue
		}

		opts.Logger.Debug().Int("on_edges", len(onEdges)).Msg("model accepted")

		if !haveAccepted {
			accepted = onEdges
			haveAccepted = true
			if !opts.Verify {
				break
			}

			continue
		}

		opts.Logger.Info().Msg("multiple solutions found under verification")

		return nil, ErrMultipleSolutions
	}

	if !haveAccepted {
		opts.Logger.Info().Msg("no solution found")

		return nil, ErrNoSolution
	}

	opts.Logger.Info().Int("on_edges", len(accepted)).Msg("solution accepted")

	return &Result{OnEdges: accepted}, nil
}

// buildFormula emits the cell-constraint clauses followed by the
// loop-local clauses, in that order, over g's edge variable space.
func buildFormula(g *grid.Grid, p *puzzle.Puzzle) (*cnf.Formula, error) {
	f := cnf.NewFormula(g.NumEdges())
	if err := encode.AddCellConstraints(f, g, p.Clues); err != nil {
		return nil, err
	}
	if err := encode.AddLoopLocalConstraints(f, g); err != nil {
		return nil, err
	}

	return f, nil
}
