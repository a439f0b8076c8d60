package median

import "errors"

var (
	// ErrEmptyInput indicates that both slices are empty, so no median exists.
	ErrEmptyInput = errors.New("median: both inputs are empty")

	// ErrUnsorted indicates that an input is not sorted in ascending order.
	ErrUnsorted = errors.New("median: input is not sorted ascending")
)
