package haf

// powerTraces returns tau where tau[k-1] = sum_j lambda_j^k for k = 1..ell,
// computed by repeated elementwise powers of a running vector rather than
// re-exponentiating from scratch at each k.
//
// Complexity: O(ell * len(lambda)).
func powerTraces(lambda []complex128, ell int) []complex128 {
	tau := make([]complex128, ell)
	pi := append([]complex128(nil), lambda...)

	for k := 0; k < ell; k++ {
		var sum complex128
		for _, p := range pi {
			sum += p
		}
		tau[k] = sum

		for j := range pi {
			pi[j] *= lambda[j]
		}
	}

	return tau
}

// powerTracesReal is powerTraces for the real entry point: the trace of a
// real matrix is real, so only the real part is kept. The imaginary part
// is provably zero up to round-off because non-real eigenvalues of a real
// matrix occur in conjugate pairs whose odd and even powers cancel.
func powerTracesReal(lambda []complex128, ell int) []float64 {
	c := powerTraces(lambda, ell)
	r := make([]float64, ell)
	for i, v := range c {
		r[i] = real(v)
	}

	return r
}
