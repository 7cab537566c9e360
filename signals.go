package euclid

import (
	"github.com/zoobzio/capitan"
	"github.com/zoobzio/sentinel"
)

// Signals for observed vector checks.
var (
	ParallelChecked       = capitan.NewSignal("euclid.parallel.checked", "Parallel check completed")
	ParallelCheckFailed   = capitan.NewSignal("euclid.parallel.failed", "Parallel check failed")
	OrthogonalChecked     = capitan.NewSignal("euclid.orthogonal.checked", "Orthogonal check completed")
	OrthogonalCheckFailed = capitan.NewSignal("euclid.orthogonal.failed", "Orthogonal check failed")
)

// vectorVariant identifies Vector payloads on events.
var vectorVariant = func() capitan.Variant {
	meta := sentinel.Inspect[Vector]()
	return capitan.Variant(meta.PackageName + "." + meta.TypeName)
}()

// Field keys for event extraction.
var (
	FieldResult    = capitan.NewBoolKey("result")
	FieldStatus    = capitan.NewStringKey("status")
	FieldError     = capitan.NewErrorKey("error")
	FieldTolerance = capitan.NewKey[float64]("tolerance", "euclid.Tolerance")
	FieldVector    = capitan.NewKey[Vector]("vector", vectorVariant)
	FieldOther     = capitan.NewKey[Vector]("other", vectorVariant)
)

// Human-readable check verdicts carried in FieldStatus.
const (
	StatusParallel      = "parallel vectors"
	StatusNotParallel   = "not parallel"
	StatusOrthogonal    = "orthogonal vectors"
	StatusNotOrthogonal = "not orthogonal"
)
