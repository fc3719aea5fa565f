// Package hafnian is a numerical library for computing the hafnian of a
// square matrix of even dimension — the matching-polynomial analogue of
// the permanent, central to Gaussian boson sampling and photonic
// quantum simulation.
//
// 🚀 What's in the box?
//
//	A modern, pure-Go, CPU-bound numerical core that brings together:
//		• Eigensolver: Hessenberg reduction + shifted QR, complex128 throughout
//		• Power-trace engine: tr(B^k) from eigenvalues in O(l*n)
//		• Cygan–Pilipczuk expansion: 2^(n/2)-subset power-sum reduction
//		• Loop hafnian: self-loop-aware variant via the same expansion
//		• Recursive integer engine: exact 64-bit hafnian, no eigendecomposition
//
// ✨ Why this shape?
//
//   - Fan-out over subsets via golang.org/x/sync/errgroup — no locks, no CLI
//   - Pure functions of their input — no persisted state, no logging of
//     business data (the core has none)
//   - complex128 throughout the eigensolver sidesteps the real Francis
//     double-shift algorithm's conjugate-pair special-casing entirely
//
// Under the hood, everything is organized under three subpackages:
//
//	eigen/  — dense eigenvalue adapter (no eigenvectors)
//	haf/    — power-trace engine, subset enumerator, Hafnian/LoopHafnian drivers
//	hafint/ — recursive integer engine, HafnianInt driver
//
// Quick example:
//
//	a := []float64{0, 1, 1, 0} // [[0,1],[1,0]]
//	got, err := haf.Hafnian(a, 2) // got == 1
//
// Out of scope, by design: array-language bindings, packaging, matrix
// I/O, sparse/structured acceleration, arbitrary-precision arithmetic.
//
//	go get github.com/katalvlaran/hafnian
package hafnian
