package collections

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidContainer is returned when operating on a nil or destroyed list.
	ErrInvalidContainer = errors.New("invalid container")

	// ErrIndexOutOfRange is returned when an index is outside the valid range
	// for the requested operation.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrAllocationFailure is returned when backing storage could not be
	// reserved or grown.
	ErrAllocationFailure = errors.New("allocation failure")

	// ErrInvalidArgument is returned for malformed constructor arguments
	// (negative capacity, nil equality predicate).
	ErrInvalidArgument = errors.New("invalid argument")
)

// IndexError reports an index outside the valid range of an operation.
// Len is the list length at the time of the call.
//
// It matches ErrIndexOutOfRange via errors.Is.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range for length %d", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// AllocError reports a failed reservation or growth of backing storage.
//
// It matches ErrAllocationFailure via errors.Is. The underlying cause (for
// example resource.ErrMemoryLimitExceeded) is reachable through errors.Is/As as
// well.
type AllocError struct {
	Op string
	// Capacity is the slot count held when the request was made.
	Capacity int
	// Requested is the slot count that could not be provided.
	Requested int
	cause     error
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("%s: unable to grow capacity %d to %d: %v", e.Op, e.Capacity, e.Requested, e.cause)
}

func (e *AllocError) Unwrap() []error { return []error{ErrAllocationFailure, e.cause} }

func invalidContainer(op string) error {
	return fmt.Errorf("%s: %w", op, ErrInvalidContainer)
}

func invalidArgument(op, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, ErrInvalidArgument, fmt.Sprintf(format, args...))
}
