// Package haf computes the hafnian and loop hafnian of a dense, even-
// order, symmetric matrix via the Cygan–Pilipczuk power-sum expansion.
//
// 🚀 What is a hafnian?
//
//	haf(A) = Σ over perfect matchings M of the complete graph on the
//	row/column indices of A, of the product of A[i,j] over the pairs
//	(i,j) in M. It is the matching-polynomial analogue of the permanent,
//	and shows up throughout Gaussian boson sampling and photonic quantum
//	simulation. The loop hafnian is the same sum extended to matchings
//	that may also use self-loops, weighted by the diagonal of A.
//
// ✨ Algorithm (Cygan & Pilipczuk):
//
//	Rather than enumerate the (n-1)!! matchings directly, the hafnian is
//	rewritten as a sum over the 2^(n/2) subsets x of index-pairs
//	{0,1},{2,3},...: for each subset, build a small reduced matrix B(x),
//	take its first n/2 power traces tr(B(x)^k), and fold those traces
//	into a truncated exponential generating function whose degree-(n/2)
//	coefficient is that subset's signed contribution.
//
// ⚙️ Concurrency:
//
//	The 2^(n/2) subsets are embarrassingly parallel. Hafnian and
//	LoopHafnian fan out across Options.Workers goroutines (default:
//	runtime.GOMAXPROCS(0)) via golang.org/x/sync/errgroup, one
//	goroutine per contiguous chunk of subset indices; each goroutine
//	owns private scratch and writes its partial sum to a private slot,
//	summed by the caller's goroutine after the join — no locks.
//
// Complexity: O(m·n·2^m) arithmetic operations where m = n/2, per
// spec. Non-goals: sparse/structured acceleration, incremental or
// streaming updates, symmetry verification (callers must supply a
// symmetric A), arbitrary-precision arithmetic.
package haf
