package haf

import (
	"math/bits"

	"github.com/katalvlaran/hafnian/eigen"
)

// chunkReal computes Σ_{x=x0}^{x0+count-1} summand(x) for the plain
// (non-loop) real hafnian over subset range [x0, x0+count).
func chunkReal(a []float64, n, m int, x0, count uint64, o Options) (float64, error) {
	var sum float64

	for x := x0; x < x0+count; x++ {
		pos := positions(x, m)
		b := reducedMatrixReal(a, n, pos)

		lambda, err := eigen.EigenvaluesReal(b, len(pos), o.eigenOptions()...)
		if err != nil {
			return 0, &EigensolverFailure{Subset: x, Err: err}
		}

		tau := powerTracesReal(lambda, m)
		val := foldReal(tau, m)
		sum += signedReal(val, bits.OnesCount64(x), m)
	}

	return sum, nil
}

// chunkComplex is chunkReal for complex input.
func chunkComplex(a []complex128, n, m int, x0, count uint64, o Options) (complex128, error) {
	var sum complex128

	for x := x0; x < x0+count; x++ {
		pos := positions(x, m)
		b := reducedMatrixComplex(a, n, pos)

		lambda, err := eigen.Eigenvalues(b, len(pos), o.eigenOptions()...)
		if err != nil {
			return 0, &EigensolverFailure{Subset: x, Err: err}
		}

		tau := powerTraces(lambda, m)
		val := foldComplex(tau, m)
		sum += signedComplex(val, bits.OnesCount64(x), m)
	}

	return sum, nil
}

// chunkLoopReal is chunkReal augmented with the loop-mode diagonal
// correction; cFull and dFull are the full-length loop auxiliaries
// described in the data model, restricted per-subset via gatherReal.
func chunkLoopReal(a []float64, n, m int, x0, count uint64, cFull, dFull []float64, o Options) (float64, error) {
	var sum float64

	for x := x0; x < x0+count; x++ {
		pos := positions(x, m)
		b := reducedMatrixReal(a, n, pos)
		c1 := gatherReal(cFull, pos)
		d1 := gatherReal(dFull, pos)

		lambda, err := eigen.EigenvaluesReal(b, len(pos), o.eigenOptions()...)
		if err != nil {
			return 0, &EigensolverFailure{Subset: x, Err: err}
		}

		tau := powerTracesReal(lambda, m)
		val := foldLoopReal(tau, m, b, c1, d1)
		sum += signedReal(val, bits.OnesCount64(x), m)
	}

	return sum, nil
}

// chunkLoopComplex is chunkLoopReal for complex input.
func chunkLoopComplex(a []complex128, n, m int, x0, count uint64, cFull, dFull []complex128, o Options) (complex128, error) {
	var sum complex128

	for x := x0; x < x0+count; x++ {
		pos := positions(x, m)
		b := reducedMatrixComplex(a, n, pos)
		c1 := gatherComplex(cFull, pos)
		d1 := gatherComplex(dFull, pos)

		lambda, err := eigen.Eigenvalues(b, len(pos), o.eigenOptions()...)
		if err != nil {
			return 0, &EigensolverFailure{Subset: x, Err: err}
		}

		tau := powerTraces(lambda, m)
		val := foldLoopComplex(tau, m, b, c1, d1)
		sum += signedComplex(val, bits.OnesCount64(x), m)
	}

	return sum, nil
}

// signedReal applies the sign rule: the summand for a subset selecting k
// pairs is negated unless k and m share parity.
func signedReal(val float64, k, m int) float64 {
	if k%2 != m%2 {
		return -val
	}

	return val
}

func signedComplex(val complex128, k, m int) complex128 {
	if k%2 != m%2 {
		return -val
	}

	return val
}
