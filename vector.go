package euclid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Vector is an immutable point in n-dimensional Euclidean space.
// The coordinate slice is owned by the Vector and never exposed;
// magnitude is computed once at construction.
type Vector struct {
	coordinates []float64
	magnitude   float64
}

// New creates a Vector from a copy of coordinates.
// Returns ErrInvalidArgument if coordinates is empty.
func New(coordinates []float64) (Vector, error) {
	if len(coordinates) == 0 {
		return Vector{}, fmt.Errorf("%w: coordinates must not be empty", ErrInvalidArgument)
	}
	owned := make([]float64, len(coordinates))
	copy(owned, coordinates)
	return newOwned(owned), nil
}

// Of creates a Vector from the given coordinates.
func Of(coordinates ...float64) (Vector, error) {
	return New(coordinates)
}

// MustNew is like Of but panics if the coordinates are empty.
func MustNew(coordinates ...float64) Vector {
	v, err := New(coordinates)
	if err != nil {
		panic(err.Error())
	}
	return v
}

// Zero returns the zero vector of the given dimension.
// Returns ErrInvalidArgument if dimension is less than 1.
func Zero(dimension int) (Vector, error) {
	if dimension < 1 {
		return Vector{}, fmt.Errorf("%w: dimension must be at least 1, got %d", ErrInvalidArgument, dimension)
	}
	return newOwned(make([]float64, dimension)), nil
}

// newOwned wraps a slice the caller will not touch again.
func newOwned(coordinates []float64) Vector {
	return Vector{
		coordinates: coordinates,
		magnitude:   Norm(coordinates),
	}
}

// Norm returns the Euclidean norm of coordinates.
func Norm(coordinates []float64) float64 {
	var sum float64
	for _, x := range coordinates {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Dimension returns the number of coordinates.
func (v Vector) Dimension() int {
	return len(v.coordinates)
}

// Magnitude returns the Euclidean norm recorded at construction.
func (v Vector) Magnitude() float64 {
	return v.magnitude
}

// Coordinates returns a copy of the coordinates.
func (v Vector) Coordinates() []float64 {
	out := make([]float64, len(v.coordinates))
	copy(out, v.coordinates)
	return out
}

// At returns the i-th coordinate. Panics if i is out of range.
func (v Vector) At(i int) float64 {
	return v.coordinates[i]
}

// IsZero reports whether v has zero magnitude and therefore no direction.
func (v Vector) IsZero() bool {
	return v.magnitude == 0
}

// Equal reports whether v and other have identical coordinates.
// Vectors of different dimension are never equal.
func (v Vector) Equal(other Vector) bool {
	if len(v.coordinates) != len(other.coordinates) {
		return false
	}
	for i, x := range v.coordinates {
		if x != other.coordinates[i] {
			return false
		}
	}
	return true
}

func (v Vector) String() string {
	parts := make([]string, len(v.coordinates))
	for i, x := range v.coordinates {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return "Vector: (" + strings.Join(parts, ", ") + ")"
}

// sameDimension returns ErrDimensionMismatch if v and other differ in length.
func (v Vector) sameDimension(op string, other Vector) error {
	if len(v.coordinates) != len(other.coordinates) {
		return fmt.Errorf("%w: %s of %dD and %dD vectors", ErrDimensionMismatch, op, len(v.coordinates), len(other.coordinates))
	}
	return nil
}
