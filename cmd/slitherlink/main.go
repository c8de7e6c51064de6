// Command slitherlink reads a puzzle file, solves it, and prints the
// accepted solution as an ASCII canvas.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/slitherlink/grid"
	"github.com/katalvlaran/slitherlink/puzzle"
	"github.com/katalvlaran/slitherlink/render"
	"github.com/katalvlaran/slitherlink/solve"
)

var (
	flagFile     string
	flagRow      int
	flagCol      int
	flagVerify   bool
	flagLegend   bool
	flagLogLevel string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "slitherlink",
		Short:         "Solve a Slitherlink puzzle and print the loop it encodes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSolve,
	}

	cmd.Flags().StringVarP(&flagFile, "file", "f", "", "path to a puzzle file (default: read stdin)")
	cmd.Flags().IntVar(&flagRow, "row", 0, "interactive mode: number of puzzle rows to read from standard input")
	cmd.Flags().IntVar(&flagCol, "col", 0, "interactive mode: number of puzzle columns to read from standard input")
	cmd.Flags().BoolVar(&flagVerify, "verify", false, "keep enumerating after the first solution to confirm uniqueness")
	cmd.Flags().BoolVar(&flagLegend, "legend", false, "prepend a legend line to the rendered canvas")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn, error")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}

	interactive := flagRow != 0 || flagCol != 0
	if interactive && flagFile != "" {
		return fmt.Errorf("slitherlink: --file is mutually exclusive with --row/--col interactive mode")
	}
	if interactive && (flagRow <= 0 || flagCol <= 0) {
		return fmt.Errorf("slitherlink: --row and --col must both be given, and both positive, for interactive mode")
	}

	in := cmd.InOrStdin()
	if flagFile != "" {
		f, err := os.Open(flagFile)
		if err != nil {
			return fmt.Errorf("slitherlink: opening %s: %w", flagFile, err)
		}
		defer f.Close()
		in = f
	}

	var p *puzzle.Puzzle
	if interactive {
		p, err = readInteractive(in, flagRow, flagCol)
	} else {
		p, err = puzzle.Read(in)
	}
	if err != nil {
		var perr *puzzle.ParseError
		if errors.As(err, &perr) {
			logger.Error().Err(perr).Msg("puzzle file is malformed")

			return perr
		}

		return err
	}

	g, err := grid.New(p.Height, p.Width)
	if err != nil {
		return err
	}

	res, err := solve.Solve(g, p, solve.Options{Verify: flagVerify, Logger: logger})
	if err != nil {
		switch {
		case errors.Is(err, solve.ErrNoSolution):
			logger.Error().Msg("puzzle has no single-loop solution")
		case errors.Is(err, solve.ErrMultipleSolutions):
			logger.Error().Msg("puzzle has more than one single-loop solution")
		}

		return err
	}

	var opts []render.Option
	if flagLegend {
		opts = append(opts, render.WithLegend())
	}

	fmt.Fprintln(cmd.OutOrStdout(), render.Render(g, p, res.OnEdges, opts...))

	return nil
}

// readInteractive reads exactly rows lines from in, one puzzle row per
// line, and parses them as a rows x cols puzzle. Unlike Read, it does not
// read to EOF: it stops as soon as it has the declared number of rows,
// so the same stdin stream can be followed by further interactive input.
func readInteractive(in io.Reader, rows, cols int) (*puzzle.Puzzle, error) {
	scanner := bufio.NewScanner(in)

	var lines []string
	for i := 0; i < rows; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("slitherlink: reading interactive input: %w", err)
			}

			return nil, &puzzle.ParseError{Line: i + 1, Msg: fmt.Sprintf("expected %d rows, got %d", rows, i)}
		}
		lines = append(lines, scanner.Text())
	}

	p, err := puzzle.Read(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		return nil, err
	}
	if p.Width != cols {
		return nil, &puzzle.ParseError{Line: 1, Msg: fmt.Sprintf("expected %d columns, got %d", cols, p.Width)}
	}

	return p, nil
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("slitherlink: invalid --log-level %q: %w", level, err)
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger(), nil
}
