// Package eigen: public entry points.
//
// Stage 1 (Validate): z must be a flat, row-major, n*n slice.
// Stage 2 (Prepare): copy into a working buffer and reduce to Hessenberg form.
// Stage 3 (Execute): run shifted-QR with deflation until every diagonal
// block has collapsed to size 1 or 2.
// Stage 4 (Finalize): return the collected eigenvalues, unordered.
package eigen

import "math/cmplx"

// Eigenvalues returns the n eigenvalues of the n x n complex matrix z
// (flat, row-major, length n*n). Order of the returned eigenvalues is
// unspecified. n == 0 returns (nil, nil) without touching the backend.
//
// Complexity: O(n^3) per QR sweep, O(n) sweeps expected; O(n^2) memory.
func Eigenvalues(z []complex128, n int, opts ...Option) ([]complex128, error) {
	if n == 0 {
		return nil, nil
	}
	if len(z) != n*n {
		return nil, ErrNonSquare
	}

	o := gatherOptions(opts...)

	h := make([]complex128, n*n)
	copy(h, z)
	toHessenberg(h, n)

	eigenvalues := make([]complex128, n)
	hi := n - 1
	iterations := 0

	for hi >= 0 {
		if hi == 0 {
			eigenvalues[0] = h[0]
			hi--
			continue
		}

		lo := findDeflationStart(h, n, hi, o.Tolerance)

		switch {
		case lo == hi:
			eigenvalues[hi] = h[hi*n+hi]
			hi--
			iterations = 0
		case lo == hi-1:
			l1, l2 := eig2x2(h[lo*n+lo], h[lo*n+hi], h[hi*n+lo], h[hi*n+hi])
			eigenvalues[lo], eigenvalues[hi] = l1, l2
			hi = lo - 1
			iterations = 0
		default:
			mu := wilkinsonShift(h, n, hi)
			if iterations > 0 && iterations%10 == 0 {
				// Exceptional shift: the Wilkinson shift can stall on
				// unitary windows such as a cyclic permutation.
				mu = h[hi*n+hi] + complex(0.75*cmplx.Abs(h[hi*n+hi-1]), 0)
			}
			qrStep(h, n, lo, hi, mu)
			iterations++
			if iterations > o.MaxIterations {
				return nil, &FailedToConverge{Size: n}
			}
		}
	}

	return eigenvalues, nil
}

// EigenvaluesReal promotes the real matrix z (flat, row-major, length
// n*n) to complex128 and delegates to Eigenvalues. Eigenvalues of a
// real matrix are generally complex (they may appear as conjugate
// pairs), which is exactly why the backend always works in complex128.
func EigenvaluesReal(z []float64, n int, opts ...Option) ([]complex128, error) {
	if n == 0 {
		return nil, nil
	}
	if len(z) != n*n {
		return nil, ErrNonSquare
	}

	zc := make([]complex128, n*n)
	for i, v := range z {
		zc[i] = complex(v, 0)
	}

	return Eigenvalues(zc, n, opts...)
}
