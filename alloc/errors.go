package alloc

import "errors"

var (
	// ErrSize indicates a negative allocation size.
	ErrSize = errors.New("alloc: negative size")

	// ErrLimit indicates that an allocation would exceed a Limit's byte budget.
	ErrLimit = errors.New("alloc: byte budget exceeded")
)
