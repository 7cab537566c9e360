// Package euclid provides Euclidean vector arithmetic over fixed-dimension
// real coordinate sequences. Vectors are immutable values; every operation
// returns a new Vector or a scalar and never modifies its operands.
package euclid

import "github.com/zoobzio/euclid/internal/shared"

// Semantic errors for vector operations (re-exported from internal/shared).
var (
	ErrInvalidArgument   = shared.ErrInvalidArgument
	ErrDimensionMismatch = shared.ErrDimensionMismatch
	ErrDivisionByZero    = shared.ErrDivisionByZero
	ErrDomain            = shared.ErrDomain
)

// DistanceMetric is re-exported from internal/shared for the public API.
type DistanceMetric = shared.DistanceMetric

// Distance metric constants.
const (
	DistanceL2           = shared.DistanceL2
	DistanceCosine       = shared.DistanceCosine
	DistanceInnerProduct = shared.DistanceInnerProduct
)
