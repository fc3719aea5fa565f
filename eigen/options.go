package eigen

// Default tolerance and iteration budget for the shifted QR backend.
const (
	// DefaultTolerance is the relative magnitude below which a subdiagonal
	// entry is treated as negligible (deflation threshold).
	DefaultTolerance = 1e-12

	// DefaultMaxIterations caps shifted-QR sweeps per active window before
	// a FailedToConverge error is returned.
	DefaultMaxIterations = 500
)

// Options configures the shifted-QR eigensolver backend.
type Options struct {
	// Tolerance is the deflation threshold; see DefaultTolerance.
	Tolerance float64

	// MaxIterations caps QR sweeps per active window; see DefaultMaxIterations.
	MaxIterations int
}

// DefaultOptions returns the backend's recommended tolerance and iteration cap.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Option mutates Options in place; used by With* constructors below.
type Option func(*Options)

// WithTolerance overrides the deflation threshold. Panics if tol <= 0:
// invalid options are a programmer error caught at construction time,
// not a runtime condition to propagate through an error return.
func WithTolerance(tol float64) Option {
	if tol <= 0 {
		panic("eigen: WithTolerance requires tol > 0")
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations overrides the per-window iteration cap. Panics if
// maxIter <= 0.
func WithMaxIterations(maxIter int) Option {
	if maxIter <= 0 {
		panic("eigen: WithMaxIterations requires maxIter > 0")
	}

	return func(o *Options) { o.MaxIterations = maxIter }
}

// gatherOptions applies opts over DefaultOptions(), in order.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
