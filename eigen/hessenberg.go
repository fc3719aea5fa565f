package eigen

// toHessenberg reduces the n x n matrix h (row-major, flat) to upper
// Hessenberg form in place via a similarity transform h <- G h G^H built
// from complex Givens rotations, preserving h's eigenvalues.
//
// For each column k, entries below the subdiagonal are eliminated from
// the bottom row up, each elimination pivoting against row k+1 and
// applying the rotation from the left (to zero the entry) and its
// conjugate-transpose from the right (to keep the transform a
// similarity, not just a triangularization).
func toHessenberg(h []complex128, n int) {
	at := func(i, j int) complex128 { return h[i*n+j] }
	set := func(i, j int, v complex128) { h[i*n+j] = v }

	for k := 0; k < n-2; k++ {
		for i := n - 1; i >= k+2; i-- {
			pivot, target := at(i-1, k), at(i, k)
			if target == 0 {
				continue
			}
			c, s, r := givens(pivot, target)

			rotateRowsLeft(h, n, i-1, i, c, s)
			set(i-1, k, r)
			set(i, k, 0)
			rotateColsRight(h, n, i-1, i, c, s)
		}
	}
}

// rotateRowsLeft applies, to every column of h, the 2x2 unitary rotation
//
//	[ c        s ]
//	[-conj(s)  c ]
//
// to rows p and q (p<q): h[p,:],h[q,:] <- G * h[p,:],h[q,:].
func rotateRowsLeft(h []complex128, n, p, q int, c float64, s complex128) {
	cc := complex(c, 0)
	for j := 0; j < n; j++ {
		hp, hq := h[p*n+j], h[q*n+j]
		h[p*n+j] = cc*hp + s*hq
		h[q*n+j] = -conj(s)*hp + cc*hq
	}
}

// rotateColsRight applies, to every row of h, the conjugate-transpose
// rotation G^H = [[c,-s],[conj(s),c]] to columns p and q (p<q):
// h[:,p],h[:,q] <- h[:,p],h[:,q] * G^H.
func rotateColsRight(h []complex128, n, p, q int, c float64, s complex128) {
	cc := complex(c, 0)
	for i := 0; i < n; i++ {
		hp, hq := h[i*n+p], h[i*n+q]
		h[i*n+p] = cc*hp + conj(s)*hq
		h[i*n+q] = -s*hp + cc*hq
	}
}
