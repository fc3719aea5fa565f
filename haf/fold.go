package haf

// foldReal accumulates the coefficients of the truncated formal power
// series Prod_i exp(factor_i * z^i), i = 1..m, where factor_i = tau[i-1]/(2i),
// and returns the degree-m coefficient — the plain (non-loop) subset
// contribution before sign.
//
// cur/nxt are two named buffers swapped at each step, per the
// reimplementation note: a parity-flag-selected pair of rows is
// unnecessary once the buffers are named directly.
func foldReal(tau []float64, m int) float64 {
	cur := make([]float64, m+1)
	nxt := make([]float64, m+1)
	cur[0] = 1

	for i := 1; i <= m; i++ {
		factor := tau[i-1] / float64(2*i)
		cur, nxt = stepReal(cur, nxt, factor, i, m)
	}

	return cur[m]
}

// foldLoopReal is foldReal extended with the loop-mode quadratic-diagonal
// correction. At each i the factor gains 0.5*<c,d1>, where c represents
// C1*B^(i-1); c is advanced by one multiplication by b after the factor
// for step i has been consumed, so that it is never precomputed ahead of
// the fold per the design's "do not refactor to compute all factors up
// front" note.
func foldLoopReal(tau []float64, m int, b []float64, c1, d1 []float64) float64 {
	cur := make([]float64, m+1)
	nxt := make([]float64, m+1)
	cur[0] = 1

	k := len(c1)
	c := append([]float64(nil), c1...)

	for i := 1; i <= m; i++ {
		factor := tau[i-1]/float64(2*i) + 0.5*dotReal(c, d1)
		cur, nxt = stepReal(cur, nxt, factor, i, m)

		if k > 0 {
			c = vecMatMulReal(c, b, k)
		}
	}

	return cur[m]
}

// stepReal performs one i-indexed convolution step of the fold, writing
// into nxt (reusing its backing array) and returning the new (cur, nxt) pair.
func stepReal(cur, nxt []float64, factor float64, i, m int) (newCur, newNxt []float64) {
	copy(nxt, cur)

	powfactor := 1.0
	for j := 1; j <= m/i; j++ {
		powfactor *= factor / float64(j)
		for kp := i*j + 1; kp <= m+1; kp++ {
			nxt[kp-1] += cur[kp-i*j-1] * powfactor
		}
	}

	return nxt, cur
}

func dotReal(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// vecMatMulReal computes the row-vector-times-matrix product c*B for a
// k x k matrix b stored row-major.
func vecMatMulReal(c []float64, b []float64, k int) []float64 {
	out := make([]float64, k)
	for j := 0; j < k; j++ {
		var sum float64
		for i := 0; i < k; i++ {
			sum += c[i] * b[i*k+j]
		}
		out[j] = sum
	}

	return out
}

// foldComplex is foldReal for complex-valued traces.
func foldComplex(tau []complex128, m int) complex128 {
	cur := make([]complex128, m+1)
	nxt := make([]complex128, m+1)
	cur[0] = 1

	for i := 1; i <= m; i++ {
		factor := tau[i-1] / complex(float64(2*i), 0)
		cur, nxt = stepComplex(cur, nxt, factor, i, m)
	}

	return cur[m]
}

// foldLoopComplex is foldLoopReal for complex-valued traces and diagonals.
func foldLoopComplex(tau []complex128, m int, b []complex128, c1, d1 []complex128) complex128 {
	cur := make([]complex128, m+1)
	nxt := make([]complex128, m+1)
	cur[0] = 1

	k := len(c1)
	c := append([]complex128(nil), c1...)

	for i := 1; i <= m; i++ {
		factor := tau[i-1]/complex(float64(2*i), 0) + 0.5*dotComplex(c, d1)
		cur, nxt = stepComplex(cur, nxt, factor, i, m)

		if k > 0 {
			c = vecMatMulComplex(c, b, k)
		}
	}

	return cur[m]
}

func stepComplex(cur, nxt []complex128, factor complex128, i, m int) (newCur, newNxt []complex128) {
	copy(nxt, cur)

	powfactor := complex(1.0, 0)
	for j := 1; j <= m/i; j++ {
		powfactor *= factor / complex(float64(j), 0)
		for kp := i*j + 1; kp <= m+1; kp++ {
			nxt[kp-1] += cur[kp-i*j-1] * powfactor
		}
	}

	return nxt, cur
}

func dotComplex(a, b []complex128) complex128 {
	var sum complex128
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

func vecMatMulComplex(c []complex128, b []complex128, k int) []complex128 {
	out := make([]complex128, k)
	for j := 0; j < k; j++ {
		var sum complex128
		for i := 0; i < k; i++ {
			sum += c[i] * b[i*k+j]
		}
		out[j] = sum
	}

	return out
}
