package tricache

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize       = errors.New("tricache: invalid size")
	ErrValueTooLarge     = errors.New("tricache: value too large")
	ErrInvalidParameters = errors.New("tricache: invalid parameters")
	ErrNoProvider        = errors.New("tricache: no snapshot provider")

	// ErrIteratorOverflow is returned when an Iterator moves past the capacity bound.
	ErrIteratorOverflow = errors.New("tricache: iterator overflow")
)

// BoundError reports a request the capacity bound could not satisfy.
// Kind is ErrInvalidSize or ErrValueTooLarge.
type BoundError struct {
	Kind  error
	Value int
	Max   int
}

func (e *BoundError) Error() string {
	switch e.Kind {
	case ErrInvalidSize:
		return fmt.Sprintf("%v: %d -- max size is %d", e.Kind, e.Value, e.Max)
	case ErrValueTooLarge:
		return fmt.Sprintf("%v: %d -- exceeds max size of %d", e.Kind, e.Value, e.Max)
	default:
		return fmt.Sprintf("tricache: bound %d exceeded by %d", e.Max, e.Value)
	}
}

func (e *BoundError) Unwrap() error { return e.Kind }

// ParamsError is returned by Display for a non-positive length or offset.
type ParamsError struct {
	Length int
	Offset int
}

func (e *ParamsError) Error() string {
	return fmt.Sprintf("%v -- unable to fulfill request: %d, %d", ErrInvalidParameters, e.Length, e.Offset)
}

func (e *ParamsError) Unwrap() error { return ErrInvalidParameters }

// SyntaxError is returned when a window header is not "( offset , length )".
type SyntaxError struct {
	Input string
	Err   error // strconv failure, if any
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tricache: malformed window %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("tricache: malformed window %q: want \"( offset , length )\"", e.Input)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
