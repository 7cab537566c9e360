package euclid

import (
	"fmt"
	"math"
)

// cosineDrift is how far outside [-1, 1] a computed cosine may fall
// and still be treated as rounding error.
const cosineDrift = 1e-9

// AngleInRadians returns the angle between v and other in [0, π].
// Returns ErrDivisionByZero if either vector has zero magnitude,
// ErrDimensionMismatch if the dimensions differ, and ErrDomain if the
// cosine falls outside [-1, 1] by more than rounding drift.
func (v Vector) AngleInRadians(other Vector) (float64, error) {
	dot, err := v.DotProduct(other)
	if err != nil {
		return 0, err
	}
	if v.magnitude == 0 || other.magnitude == 0 {
		return 0, fmt.Errorf("%w: angle with zero vector is undefined", ErrDivisionByZero)
	}
	cosine, err := clampCosine(dot / (v.magnitude * other.magnitude))
	if err != nil {
		return 0, err
	}
	return math.Acos(cosine), nil
}

// AngleInDegrees returns the angle between v and other in [0, 180].
func (v Vector) AngleInDegrees(other Vector) (float64, error) {
	angle, err := v.AngleInRadians(other)
	if err != nil {
		return 0, err
	}
	return angle * (180 / math.Pi), nil
}

// clampCosine pulls values that drifted just past ±1 back into range.
// NaN and larger violations are reported as ErrDomain.
func clampCosine(c float64) (float64, error) {
	switch {
	case c >= -1 && c <= 1:
		return c, nil
	case c > 1 && c <= 1+cosineDrift:
		return 1, nil
	case c < -1 && c >= -1-cosineDrift:
		return -1, nil
	}
	return 0, fmt.Errorf("%w: cosine %v outside [-1, 1]", ErrDomain, c)
}

// ProjectionOn returns the component of v along the direction of other.
// Returns ErrDivisionByZero if other is the zero vector.
func (v Vector) ProjectionOn(other Vector) (Vector, error) {
	u, err := other.Normalise()
	if err != nil {
		return Vector{}, err
	}
	weight, err := v.DotProduct(u)
	if err != nil {
		return Vector{}, err
	}
	return u.ScalarMul(weight), nil
}

// OrthogonalTo returns the component of v perpendicular to other,
// so that v = v.ProjectionOn(other) + v.OrthogonalTo(other).
func (v Vector) OrthogonalTo(other Vector) (Vector, error) {
	projection, err := v.ProjectionOn(other)
	if err != nil {
		return Vector{}, err
	}
	return v.Sub(projection)
}

// AreaOfParallelogram returns the area of the parallelogram spanned by
// v and other. Both must be 3-dimensional.
func (v Vector) AreaOfParallelogram(other Vector) (float64, error) {
	w, err := v.CrossProduct(other)
	if err != nil {
		return 0, err
	}
	return w.magnitude, nil
}

// AreaOfTriangle returns half the parallelogram area.
func (v Vector) AreaOfTriangle(other Vector) (float64, error) {
	area, err := v.AreaOfParallelogram(other)
	if err != nil {
		return 0, err
	}
	return 0.5 * area, nil
}
