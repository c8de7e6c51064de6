package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Read parses the text puzzle file format: H lines of W characters, '.'
// for blank, '0'-'3' for a clue. Leading/trailing whitespace per line is
// stripped before validation. All lines must have equal length; any
// other character is a ParseError.
//
// Mirrors gridgraph.NewGridGraph's rectangularity check (reject on first
// width mismatch, one pass, no partial-state leakage to the caller).
func Read(r io.Reader) (*Puzzle, error) {
	scanner := bufio.NewScanner(r)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("puzzle: reading input: %w", err)
	}
	if len(lines) == 0 {
		return nil, &ParseError{Line: 0, Msg: "input has no rows"}
	}

	width := len(lines[0])
	if width == 0 {
		return nil, &ParseError{Line: 1, Msg: "row has zero columns"}
	}
	for i, line := range lines {
		if len(line) != width {
			return nil, &ParseError{Line: i + 1, Msg: fmt.Sprintf("row width %d does not match first row's width %d", len(line), width)}
		}
	}

	clues := make([][]int, len(lines))
	for r, line := range lines {
		row := make([]int, width)
		for c, ch := range line {
			clue, err := parseCell(ch)
			if err != nil {
				return nil, &ParseError{Line: r + 1, Col: c + 1, Msg: err.Error()}
			}
			row[c] = clue
		}
		clues[r] = row
	}

	return &Puzzle{Height: len(lines), Width: width, Clues: clues}, nil
}

func parseCell(ch rune) (int, error) {
	switch {
	case ch == '.':
		return Blank, nil
	case ch >= '0' && ch <= '3':
		return int(ch - '0'), nil
	default:
		return 0, fmt.Errorf("unexpected character %q, want one of '.','0'..'3'", ch)
	}
}
