package euclid

// Default tolerances for the parallel and orthogonal checks.
const (
	// DefaultParallelTolerance is measured in degrees from 0 or 180.
	DefaultParallelTolerance = 1e-5

	// DefaultOrthogonalTolerance bounds the absolute dot product.
	DefaultOrthogonalTolerance = 1e-10
)

// Option configures a parallel or orthogonal check.
type Option func(*checkConfig)

type checkConfig struct {
	tolerance float64
}

// WithTolerance overrides the check's tolerance.
// Non-positive values keep the check's default.
func WithTolerance(tolerance float64) Option {
	return func(c *checkConfig) {
		if tolerance > 0 {
			c.tolerance = tolerance
		}
	}
}

func applyOptions(tolerance float64, opts []Option) checkConfig {
	cfg := checkConfig{tolerance: tolerance}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
