package haf

import (
	"github.com/katalvlaran/hafnian/eigen"
)

// Numeric policy defaults: a single source of truth for zero-value behavior.
const (
	// DefaultEigenTolerance is forwarded to eigen.WithTolerance.
	DefaultEigenTolerance = eigen.DefaultTolerance

	// DefaultEigenMaxIterations is forwarded to eigen.WithMaxIterations.
	DefaultEigenMaxIterations = eigen.DefaultMaxIterations
)

// Options configures the concurrency and eigensolver policy used by
// Hafnian, HafnianComplex, LoopHafnian and LoopHafnianComplex.
//
// Thread count comes from the ambient goroutine pool rather than a
// required argument: a zero Workers field (as set by DefaultOptions)
// resolves to runtime.GOMAXPROCS(0) at call time.
type Options struct {
	// Workers is the number of goroutines fanned out across subset
	// chunks when ChunkSize is zero. Zero (the default) resolves to
	// runtime.GOMAXPROCS(0). When ChunkSize is set, Workers is not
	// consulted: one goroutine runs per chunk, all at once.
	Workers int

	// ChunkSize is the number of subset indices assigned to each
	// goroutine. Zero (the default) divides the 2^(n/2) subsets evenly
	// across Workers.
	ChunkSize int

	// EigenTolerance is the deflation tolerance forwarded to the
	// eigensolver backend for each reduced matrix B(x).
	EigenTolerance float64

	// EigenMaxIterations caps the eigensolver's shifted-QR sweeps per
	// active window of each reduced matrix B(x) before returning
	// EigensolverFailure.
	EigenMaxIterations int
}

// DefaultOptions returns the zero-configuration policy: ambient worker
// count, auto chunk sizing, and the eigensolver's own recommended
// tolerance and iteration cap.
func DefaultOptions() Options {
	return Options{
		Workers:            0,
		ChunkSize:          0,
		EigenTolerance:     DefaultEigenTolerance,
		EigenMaxIterations: DefaultEigenMaxIterations,
	}
}

// Option mutates Options in place; used by With* constructors below.
type Option func(*Options)

// WithWorkers overrides the number of goroutines fanned out across
// subset chunks; it has no effect when a ChunkSize is also set.
// Panics if workers <= 0.
func WithWorkers(workers int) Option {
	if workers <= 0 {
		panic("haf: WithWorkers requires workers > 0")
	}

	return func(o *Options) { o.Workers = workers }
}

// WithChunkSize overrides the number of subset indices per goroutine.
// Panics if size <= 0.
func WithChunkSize(size int) Option {
	if size <= 0 {
		panic("haf: WithChunkSize requires size > 0")
	}

	return func(o *Options) { o.ChunkSize = size }
}

// WithEigenTolerance overrides the eigensolver's deflation tolerance.
// Panics if tol <= 0.
func WithEigenTolerance(tol float64) Option {
	if tol <= 0 {
		panic("haf: WithEigenTolerance requires tol > 0")
	}

	return func(o *Options) { o.EigenTolerance = tol }
}

// WithEigenMaxIterations overrides the eigensolver's per-window
// iteration cap. Panics if maxIter <= 0.
func WithEigenMaxIterations(maxIter int) Option {
	if maxIter <= 0 {
		panic("haf: WithEigenMaxIterations requires maxIter > 0")
	}

	return func(o *Options) { o.EigenMaxIterations = maxIter }
}

// gatherOptions applies opts over DefaultOptions(), in order.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// eigenOptions projects the eigensolver-relevant fields into eigen.Option values.
func (o Options) eigenOptions() []eigen.Option {
	return []eigen.Option{
		eigen.WithTolerance(o.EigenTolerance),
		eigen.WithMaxIterations(o.EigenMaxIterations),
	}
}
