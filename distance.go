package euclid

import "fmt"

// Distance returns the distance between v and other under metric.
// Smaller values always mean closer vectors:
//   - DistanceL2: magnitude of v - other.
//   - DistanceCosine: 1 - cos θ, in [0, 2]. Undefined for zero vectors.
//   - DistanceInnerProduct: negated dot product.
//
// Returns ErrInvalidArgument for an unknown metric.
func (v Vector) Distance(other Vector, metric DistanceMetric) (float64, error) {
	switch metric {
	case DistanceL2:
		diff, err := v.Sub(other)
		if err != nil {
			return 0, err
		}
		return diff.magnitude, nil

	case DistanceCosine:
		dot, err := v.DotProduct(other)
		if err != nil {
			return 0, err
		}
		if v.magnitude == 0 || other.magnitude == 0 {
			return 0, fmt.Errorf("%w: cosine distance to zero vector", ErrDivisionByZero)
		}
		cosine, err := clampCosine(dot / (v.magnitude * other.magnitude))
		if err != nil {
			return 0, err
		}
		return 1 - cosine, nil

	case DistanceInnerProduct:
		dot, err := v.DotProduct(other)
		if err != nil {
			return 0, err
		}
		return -dot, nil
	}
	return 0, fmt.Errorf("%w: unknown distance metric %q", ErrInvalidArgument, metric)
}
