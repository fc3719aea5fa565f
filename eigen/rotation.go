package eigen

import (
	"math"
	"math/cmplx"
)

// givens computes a complex Givens rotation (c real, s complex) such that
//
//	[ c        s ] [f]   [r]
//	[-conj(s)  c ] [g] = [0]
//
// with c^2+|s|^2 = 1. r is not forced real (only f's phase is preserved);
// that is sufficient here since only the zero-pattern matters, not the
// sign/phase convention of the resulting triangular factor.
//
// This is the single rotation primitive reused by both Hessenberg
// reduction (hessenberg.go) and the shifted QR sweep (qr.go): the whole
// eigensolver is built out of one real 2x2 rotation formula, generalized
// here to the complex unitary case.
func givens(f, g complex128) (c float64, s complex128, r complex128) {
	if g == 0 {
		return 1, 0, f
	}
	if f == 0 {
		return 0, cmplx.Conj(g) / complex(cmplx.Abs(g), 0), complex(cmplx.Abs(g), 0)
	}

	absF, absG := cmplx.Abs(f), cmplx.Abs(g)
	d := math.Hypot(absF, absG)

	c = absF / d
	s = (f / complex(absF, 0)) * cmplx.Conj(g) / complex(d, 0)
	r = (f / complex(absF, 0)) * complex(d, 0)

	return c, s, r
}

// conj is math/cmplx.Conj, aliased locally so hessenberg.go and qr.go
// read as plain arithmetic without repeating the cmplx. prefix on every
// rotation update line.
func conj(z complex128) complex128 {
	return complex(real(z), -imag(z))
}
