package desktop

import (
	"errors"
	"fmt"
)

// ErrInvalidLine is the only failure kind the grammar parser reports.
var ErrInvalidLine = errors.New("desktop: invalid line")

// ParseError carries the line that could not be matched by any production.
type ParseError struct {
	Line int    // 1-based
	Text string // offending line without its newline
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("desktop:%d: invalid line %q", e.Line, e.Text)
}

func (e *ParseError) Is(target error) bool { return target == ErrInvalidLine }
