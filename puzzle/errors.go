package puzzle

import "fmt"

// ParseError reports a malformed puzzle file: a character outside
// {.,0,1,2,3}, or rows of differing length.
type ParseError struct {
	Line int // 1-based
	Col  int // 1-based, 0 if the error is row-width related
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Col > 0 {
		return fmt.Sprintf("puzzle: parse error at line %d, col %d: %s", e.Line, e.Col, e.Msg)
	}

	return fmt.Sprintf("puzzle: parse error at line %d: %s", e.Line, e.Msg)
}
