package haf

// LoopHafnian computes the loop hafnian of the real, symmetric, even-order
// dense matrix a: the hafnian extended to matchings that may also use
// self-loops weighted by the diagonal of a.
//
// Stage 1 (Validate): n even, len(a) == n*n.
// Stage 2 (Prepare): precompute D (diagonal) and C (sibling-swapped D).
// Stage 3 (Execute): fan out over the 2^m subsets via dispatchReal, using
// the loop-mode chunk worker.
func LoopHafnian(a []float64, n int, opts ...Option) (float64, error) {
	if n%2 != 0 || len(a) != n*n {
		return 0, ErrEvenDimensionRequired
	}

	m := n / 2
	o := gatherOptions(opts...)

	d := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i] = a[i*n+i]
	}
	c := siblingSwapReal(d)

	return dispatchReal(m, o, func(x0, count uint64) (float64, error) {
		return chunkLoopReal(a, n, m, x0, count, c, d, o)
	})
}

// LoopHafnianComplex is LoopHafnian for complex, symmetric input.
func LoopHafnianComplex(a []complex128, n int, opts ...Option) (complex128, error) {
	if n%2 != 0 || len(a) != n*n {
		return 0, ErrEvenDimensionRequired
	}

	m := n / 2
	o := gatherOptions(opts...)

	d := make([]complex128, n)
	for i := 0; i < n; i++ {
		d[i] = a[i*n+i]
	}
	c := siblingSwapComplex(d)

	return dispatchComplex(m, o, func(x0, count uint64) (complex128, error) {
		return chunkLoopComplex(a, n, m, x0, count, c, d, o)
	})
}
