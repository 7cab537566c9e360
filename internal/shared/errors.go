// Package shared contains canonical type definitions shared across euclid.
package shared //nolint:revive // internal shared package is intentional

import "errors"

// Semantic errors for vector operations.
var (
	// ErrInvalidArgument indicates malformed input, such as an empty coordinate sequence.
	ErrInvalidArgument = errors.New("euclid: invalid argument")

	// ErrDimensionMismatch indicates operands of incompatible dimension.
	// Also returned when a 3D-only operation receives a vector of another dimension.
	ErrDimensionMismatch = errors.New("euclid: dimension mismatch")

	// ErrDivisionByZero indicates an operation that would divide by a zero magnitude.
	ErrDivisionByZero = errors.New("euclid: division by zero")

	// ErrDomain indicates an arccosine input outside [-1, 1] beyond rounding drift.
	ErrDomain = errors.New("euclid: domain error")
)
