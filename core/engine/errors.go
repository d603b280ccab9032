package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrFrame is returned by Translate for frames outside 0..5.
	ErrFrame = errors.New("reading frame must be in 0..5")
	// ErrSubstring signals a region that survived clamping but cannot be sliced.
	ErrSubstring = errors.New("substring extraction out of bounds")
)

// InvertedRangeError is returned by SnipPadded when Begin > End.
type InvertedRangeError struct {
	Begin, End int
}

func (e *InvertedRangeError) Error() string {
	return fmt.Sprintf("inverted range %d..%d: begin must not exceed end", e.Begin, e.End)
}

// RegionTooLongError is returned by SnipPadded when End-Begin+1 exceeds Max.
type RegionTooLongError struct {
	Begin, End, Max int
}

func (e *RegionTooLongError) Error() string {
	return fmt.Sprintf("region %d..%d is longer than %d positions", e.Begin, e.End, e.Max)
}
