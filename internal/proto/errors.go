package proto

import "fmt"

// BufferTooSmallError reports a decode on a buffer shorter than the variant's
// fixed minimum.
type BufferTooSmallError struct {
	Min       int
	Remaining int
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("buffer too small (min: %d, remaining: %d)", e.Min, e.Remaining)
}

// BadMessageCodeError reports an unknown leading tag byte.
type BadMessageCodeError struct {
	Code byte
}

func (e *BadMessageCodeError) Error() string {
	return fmt.Sprintf("bad message code %d", e.Code)
}

// InsufficientCapacityError reports an encode into an undersized destination.
// Seeing one means the caller sized the buffer wrong, not a wire problem.
type InsufficientCapacityError struct {
	Required  int
	Remaining int
}

func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("insufficient capacity (required: %d, remaining: %d)", e.Required, e.Remaining)
}
