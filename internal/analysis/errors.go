package analysis

import (
	"errors"
	"fmt"
)

// ErrDegenerateInput is matched by every *DegenerateInputError.
var ErrDegenerateInput = errors.New("degenerate input")

// DegenerateInputError indicates input on which a statistic is undefined:
// too few points, mismatched series, or no spread in x for a fit.
type DegenerateInputError struct {
	Op     string
	N      int
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("%s: degenerate input (n=%d): %s", e.Op, e.N, e.Reason)
}

func (e *DegenerateInputError) Is(target error) bool { return target == ErrDegenerateInput }
