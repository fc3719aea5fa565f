package haf

// Hafnian computes the hafnian of the real, symmetric, even-order dense
// matrix a (flat, row-major, length n*n). Symmetry is assumed and not
// verified, per the package's non-goals.
//
// Stage 1 (Validate): n even, len(a) == n*n.
// Stage 2 (Prepare): m = n/2, gather options.
// Stage 3 (Execute): fan out over the 2^m subsets via dispatchReal.
func Hafnian(a []float64, n int, opts ...Option) (float64, error) {
	if n%2 != 0 || len(a) != n*n {
		return 0, ErrEvenDimensionRequired
	}

	m := n / 2
	o := gatherOptions(opts...)

	return dispatchReal(m, o, func(x0, count uint64) (float64, error) {
		return chunkReal(a, n, m, x0, count, o)
	})
}

// HafnianComplex is Hafnian for complex, symmetric input.
func HafnianComplex(a []complex128, n int, opts ...Option) (complex128, error) {
	if n%2 != 0 || len(a) != n*n {
		return 0, ErrEvenDimensionRequired
	}

	m := n / 2
	o := gatherOptions(opts...)

	return dispatchComplex(m, o, func(x0, count uint64) (complex128, error) {
		return chunkComplex(a, n, m, x0, count, o)
	})
}
