package cover

import "errors"

var (
	// ErrInvalidParameter is returned for inputs no run can be defined on:
	// negative sizes or duplicate samples.
	ErrInvalidParameter = errors.New("cover: invalid parameter")

	// ErrTooLarge is returned when the candidate x target product exceeds the
	// configured limit.
	ErrTooLarge = errors.New("cover: problem too large")
)
