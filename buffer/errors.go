package buffer

import (
	"errors"
	"fmt"
)

// ErrInvalidRange reports a position outside the document. It is a host
// contract violation; callers must not apply anything when they see it.
var ErrInvalidRange = errors.New("invalid range")

// RangeError names the position that failed validation.
type RangeError struct {
	Pos       Pos
	LineCount int
	LineLen   int
}

func (e *RangeError) Error() string {
	if e.Pos.Line < 0 || e.Pos.Line >= e.LineCount {
		return fmt.Sprintf("%v: line %d outside document of %d lines", ErrInvalidRange, e.Pos.Line, e.LineCount)
	}
	return fmt.Sprintf("%v: column %d outside line %d of length %d", ErrInvalidRange, e.Pos.Col, e.Pos.Line, e.LineLen)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }
