// Package hafint computes the exact integer hafnian of a dense, even-
// order, symmetric 64-bit integer matrix via a recursive doubling
// procedure on polynomial arrays, avoiding eigenvalue arithmetic
// entirely at the cost of exponential memory.
//
// 🚀 Why a separate path?
//
//	Package haf's Cygan–Pilipczuk expansion relies on floating-point
//	eigendecomposition, which accumulates round-off. For matrices with
//	small integer entries, HafnianInt instead peels two vertices off the
//	matching problem at a time, folding their possible pairings into a
//	pair of polynomials of bounded degree, recursing on the remainder.
//	The result is exact, at the cost of O(n^3 * 2^n) integer operations.
//
// ✨ Representation:
//
//	The recursion's edge state is a symmetric array of polynomials keyed
//	by unordered vertex pairs. Rather than the packed triangular index
//	arithmetic of the original source, this package keys that state by
//	an ordered-pair struct directly — legible, and equivalent.
//
// ⚙️ Concurrency:
//
//	The augmentation step (folding each remaining vertex pair's
//	contribution from the two dropped vertices) is independent per pair
//	and is fanned out across goroutines via golang.org/x/sync/errgroup
//	once the pair count crosses a threshold; below it, the sequential
//	loop avoids goroutine overhead on small matrices.
//
// Failure: 64-bit overflow is not detected. Callers are responsible for
// bounding matrix size and entry magnitude such that no intermediate
// term exceeds math.MaxInt64.
package hafint
