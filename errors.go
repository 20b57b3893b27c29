package purelambda

import "errors"

var (
	// ErrParse is returned when text cannot be converted to an integer.
	// The underlying *strconv.NumError stays reachable through errors.As.
	ErrParse = errors.New("purelambda: invalid integer text")

	// ErrInvalidBound is returned by bounded random suppliers for bounds <= 0.
	ErrInvalidBound = errors.New("purelambda: bound must be positive")
)
