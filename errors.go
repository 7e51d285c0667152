package dynlist

import "errors"

var (
	// ErrAllocFailed indicates the allocator could not provide the block a
	// create or grow operation asked for. The list is left untouched.
	ErrAllocFailed = errors.New("dynlist: allocation failed")

	// ErrIndexOutOfBounds indicates an index at or past the current length.
	ErrIndexOutOfBounds = errors.New("dynlist: index out of bounds")

	// ErrEmptyList indicates a removal from a list with no elements.
	ErrEmptyList = errors.New("dynlist: remove from empty list")

	// ErrNegativeCount indicates a negative capacity, delta or reservation.
	ErrNegativeCount = errors.New("dynlist: negative count")

	// ErrReleased indicates an operation on a list after Release.
	ErrReleased = errors.New("dynlist: list released")
)
