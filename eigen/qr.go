package eigen

import "math/cmplx"

// eig2x2 returns the two eigenvalues of [[a,b],[c,d]] via the quadratic
// formula. Always solvable in the complex plane, which is exactly why
// the shifted-QR loop below never needs the real algorithm's special
// handling of complex-conjugate pairs: a trailing 2x2 block is simply
// resolved here instead of iterated further.
func eig2x2(a, b, c, d complex128) (complex128, complex128) {
	trace := a + d
	det := a*d - b*c
	disc := cmplx.Sqrt(trace*trace - 4*det)

	return (trace + disc) / 2, (trace - disc) / 2
}

// wilkinsonShift returns whichever eigenvalue of the trailing 2x2 block
// ending at hi is closer to h[hi,hi], the standard single-shift choice
// that gives local quadratic convergence near a real or complex eigenvalue.
func wilkinsonShift(h []complex128, n, hi int) complex128 {
	a, b := h[(hi-1)*n+(hi-1)], h[(hi-1)*n+hi]
	c, d := h[hi*n+(hi-1)], h[hi*n+hi]
	l1, l2 := eig2x2(a, b, c, d)
	if cmplx.Abs(l1-d) <= cmplx.Abs(l2-d) {
		return l1
	}

	return l2
}

// findDeflationStart scans the active window's subdiagonal from hi down
// to 1 and returns the largest l such that h[l,l-1] is negligible
// relative to its neighboring diagonal entries — i.e. the top row of the
// trailing irreducible block ending at hi. Returns 0 if no such l exists.
func findDeflationStart(h []complex128, n, hi int, tol float64) int {
	for l := hi; l >= 1; l-- {
		diag := cmplx.Abs(h[(l-1)*n+l-1]) + cmplx.Abs(h[l*n+l])
		if diag == 0 {
			diag = 1
		}
		if cmplx.Abs(h[l*n+l-1]) <= tol*diag {
			return l
		}
	}

	return 0
}

// qrStep performs one shifted-QR sweep on the active window h[lo..hi,lo..hi]:
// factor (window - mu*I) = Q*R via Givens rotations eliminating the
// subdiagonal, then overwrite the window with R*Q + mu*I. Entries outside
// the window are untouched; this is safe because deflation guarantees the
// window is block-triangularly isolated from the rest of h.
func qrStep(h []complex128, n, lo, hi int, mu complex128) {
	k := hi - lo + 1
	m := make([]complex128, k*k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			m[i*k+j] = h[(lo+i)*n+lo+j]
		}
	}
	for i := 0; i < k; i++ {
		m[i*k+i] -= mu
	}

	type rotation struct {
		c float64
		s complex128
	}
	rots := make([]rotation, k-1)

	// Eliminate the subdiagonal top-to-bottom: m <- G_{k-2}...G_0 * m.
	for i := 0; i < k-1; i++ {
		c, s, r := givens(m[i*k+i], m[(i+1)*k+i])
		rots[i] = rotation{c, s}
		cc := complex(c, 0)
		for j := i; j < k; j++ {
			mp, mq := m[i*k+j], m[(i+1)*k+j]
			m[i*k+j] = cc*mp + s*mq
			m[(i+1)*k+j] = -conj(s)*mp + cc*mq
		}
		m[i*k+i] = r
		m[(i+1)*k+i] = 0
	}

	// Recombine m <- m * G_0^H * G_1^H * ... * G_{k-2}^H.
	for i := 0; i < k-1; i++ {
		c, s := rots[i].c, rots[i].s
		cc := complex(c, 0)
		for row := 0; row < k; row++ {
			mp, mq := m[row*k+i], m[row*k+i+1]
			m[row*k+i] = cc*mp + conj(s)*mq
			m[row*k+i+1] = -s*mp + cc*mq
		}
	}

	for i := 0; i < k; i++ {
		m[i*k+i] += mu
	}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			h[(lo+i)*n+lo+j] = m[i*k+j]
		}
	}
}
