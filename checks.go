package euclid

import (
	"context"
	"math"

	"github.com/zoobzio/capitan"
)

// IsParallel reports whether v and other point along the same line,
// in the same or opposite direction. The angle between them must be
// within the tolerance (degrees, default DefaultParallelTolerance) of
// 0 or 180. Returns ErrDivisionByZero if either vector is zero.
func (v Vector) IsParallel(other Vector, opts ...Option) (bool, error) {
	cfg := applyOptions(DefaultParallelTolerance, opts)
	degrees, err := v.AngleInDegrees(other)
	if err != nil {
		return false, err
	}
	return degrees <= cfg.tolerance || math.Abs(degrees-180) <= cfg.tolerance, nil
}

// IsOrthogonal reports whether the absolute dot product of v and other
// is below the tolerance (default DefaultOrthogonalTolerance).
// The zero vector is orthogonal to everything.
func (v Vector) IsOrthogonal(other Vector, opts ...Option) (bool, error) {
	cfg := applyOptions(DefaultOrthogonalTolerance, opts)
	dot, err := v.DotProduct(other)
	if err != nil {
		return false, err
	}
	return math.Abs(dot) < cfg.tolerance, nil
}

// ParallelCheck is IsParallel plus a ParallelChecked (or
// ParallelCheckFailed) signal carrying the verdict and its status text.
func (v Vector) ParallelCheck(ctx context.Context, other Vector, opts ...Option) (bool, error) {
	cfg := applyOptions(DefaultParallelTolerance, opts)
	parallel, err := v.IsParallel(other, opts...)
	if err != nil {
		capitan.Emit(ctx, ParallelCheckFailed,
			FieldVector.Field(v),
			FieldOther.Field(other),
			FieldError.Field(err),
		)
		return false, err
	}

	status := StatusNotParallel
	if parallel {
		status = StatusParallel
	}
	capitan.Emit(ctx, ParallelChecked,
		FieldVector.Field(v),
		FieldOther.Field(other),
		FieldResult.Field(parallel),
		FieldStatus.Field(status),
		FieldTolerance.Field(cfg.tolerance),
	)
	return parallel, nil
}

// OrthogonalCheck is IsOrthogonal plus an OrthogonalChecked (or
// OrthogonalCheckFailed) signal carrying the verdict and its status text.
func (v Vector) OrthogonalCheck(ctx context.Context, other Vector, opts ...Option) (bool, error) {
	cfg := applyOptions(DefaultOrthogonalTolerance, opts)
	orthogonal, err := v.IsOrthogonal(other, opts...)
	if err != nil {
		capitan.Emit(ctx, OrthogonalCheckFailed,
			FieldVector.Field(v),
			FieldOther.Field(other),
			FieldError.Field(err),
		)
		return false, err
	}

	status := StatusNotOrthogonal
	if orthogonal {
		status = StatusOrthogonal
	}
	capitan.Emit(ctx, OrthogonalChecked,
		FieldVector.Field(v),
		FieldOther.Field(other),
		FieldResult.Field(orthogonal),
		FieldStatus.Field(status),
		FieldTolerance.Field(cfg.tolerance),
	)
	return orthogonal, nil
}
