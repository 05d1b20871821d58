package mesh

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidResolution = errors.New("invalid resolution")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrDepthSize         = errors.New("depth samples do not match grid size")
)

// ResolutionError reports a tessellation parameter below its minimum.
type ResolutionError struct {
	Shape string
	Param string
	Value int
	Min   int
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s: %s = %d, need at least %d", e.Shape, e.Param, e.Value, e.Min)
}

func (e *ResolutionError) Unwrap() error { return ErrInvalidResolution }

func checkResolution(shape, param string, value, minimum int) error {
	if value < minimum {
		return &ResolutionError{Shape: shape, Param: param, Value: value, Min: minimum}
	}
	return nil
}
