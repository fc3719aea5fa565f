// Package eigen adapts a dense, square, generally-unsymmetric complex
// matrix to its eigenvalues.
//
// 🚀 What is this for?
//
//	The hafnian evaluation algorithms (package haf) need, for many small
//	reduced matrices B(x), nothing more than B(x)'s eigenvalues — the
//	eigenvectors are never consulted, since the consumer only ever sums
//	powers of the eigenvalues (power traces). This package exists purely
//	to supply those eigenvalues, as cheaply and robustly as a from-scratch
//	implementation reasonably allows.
//
// ✨ Algorithm:
//
//   - Reduce the input to upper Hessenberg form via a sequence of
//     complex Givens similarity rotations.
//   - Run the shifted QR algorithm on the Hessenberg form, entirely in
//     complex128 arithmetic, with Wilkinson shifts (replaced by an
//     exceptional shift every tenth sweep on a stalled window) and
//     subdiagonal deflation.
//
// Operating in complex128 throughout (rather than the real-arithmetic
// Francis double-shift scheme) means a 2x2 trailing block is always
// solvable directly via the quadratic formula — there is no need for
// the real algorithm's special-cased handling of complex-conjugate
// eigenvalue pairs.
//
// Thread-safety: Eigenvalues is a pure function of its input; it does
// not mutate the caller's slice and holds no package-level state, so
// concurrent calls from multiple goroutines are safe.
package eigen
