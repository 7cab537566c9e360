package euclid

import "fmt"

// Plus returns the element-wise sum of v and other.
// Returns ErrDimensionMismatch if the dimensions differ.
func (v Vector) Plus(other Vector) (Vector, error) {
	if err := v.sameDimension("sum", other); err != nil {
		return Vector{}, err
	}
	out := make([]float64, len(v.coordinates))
	for i, x := range v.coordinates {
		out[i] = x + other.coordinates[i]
	}
	return newOwned(out), nil
}

// Sub returns the element-wise difference v - other.
// Returns ErrDimensionMismatch if the dimensions differ.
func (v Vector) Sub(other Vector) (Vector, error) {
	if err := v.sameDimension("difference", other); err != nil {
		return Vector{}, err
	}
	out := make([]float64, len(v.coordinates))
	for i, x := range v.coordinates {
		out[i] = x - other.coordinates[i]
	}
	return newOwned(out), nil
}

// ScalarMul returns v with every coordinate multiplied by scalar.
func (v Vector) ScalarMul(scalar float64) Vector {
	out := make([]float64, len(v.coordinates))
	for i, x := range v.coordinates {
		out[i] = scalar * x
	}
	return newOwned(out)
}

// MagnitudeOf recomputes the Euclidean norm from the coordinates.
// It always agrees with Magnitude.
func (v Vector) MagnitudeOf() float64 {
	return Norm(v.coordinates)
}

// Normalise returns the unit vector pointing in the direction of v.
// Returns ErrDivisionByZero for the zero vector, which has no direction.
func (v Vector) Normalise() (Vector, error) {
	if v.magnitude == 0 {
		return Vector{}, fmt.Errorf("%w: cannot normalise zero vector", ErrDivisionByZero)
	}
	out := make([]float64, len(v.coordinates))
	for i, x := range v.coordinates {
		out[i] = x / v.magnitude
	}
	return newOwned(out), nil
}

// DotProduct returns the sum of element-wise products of v and other.
// Returns ErrDimensionMismatch if the dimensions differ.
func (v Vector) DotProduct(other Vector) (float64, error) {
	if err := v.sameDimension("dot product", other); err != nil {
		return 0, err
	}
	var sum float64
	for i, x := range v.coordinates {
		sum += x * other.coordinates[i]
	}
	return sum, nil
}

// CrossProduct returns the vector orthogonal to both v and other whose
// magnitude is the area of the parallelogram they span.
// Both operands must be 3-dimensional; otherwise ErrDimensionMismatch.
func (v Vector) CrossProduct(other Vector) (Vector, error) {
	if len(v.coordinates) != 3 || len(other.coordinates) != 3 {
		return Vector{}, fmt.Errorf("%w: cross product requires 3D vectors, got %dD and %dD",
			ErrDimensionMismatch, len(v.coordinates), len(other.coordinates))
	}
	x1, y1, z1 := v.coordinates[0], v.coordinates[1], v.coordinates[2]
	x2, y2, z2 := other.coordinates[0], other.coordinates[1], other.coordinates[2]
	return newOwned([]float64{
		y1*z2 - y2*z1,
		x2*z1 - x1*z2,
		x1*y2 - x2*y1,
	}), nil
}
