package analysis

import "errors"

// ErrInsufficientData reports that too few aligned rows or columns remain
// to carry out a computation.
var ErrInsufficientData = errors.New("insufficient data")

// ErrInvalidData reports a degenerate input value, such as a non-positive
// baseline price.
var ErrInvalidData = errors.New("invalid data")
