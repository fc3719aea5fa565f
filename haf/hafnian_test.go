package haf_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hafnian/haf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allOnes returns a flat n*n matrix of all 1s.
func allOnes(n int) []float64 {
	a := make([]float64, n*n)
	for i := range a {
		a[i] = 1
	}

	return a
}

// doubleFactorialOdd returns (2m-1)!! = 1*3*5*...*(2m-1).
func doubleFactorialOdd(m int) float64 {
	r := 1.0
	for k := 1; k <= m; k++ {
		r *= float64(2*k - 1)
	}

	return r
}

func TestHafnian_OddDimensionRejected(t *testing.T) {
	_, err := haf.Hafnian(make([]float64, 9), 3)
	assert.ErrorIs(t, err, haf.ErrEvenDimensionRequired)
}

func TestHafnian_LengthMismatchRejected(t *testing.T) {
	_, err := haf.Hafnian(make([]float64, 5), 4)
	assert.ErrorIs(t, err, haf.ErrEvenDimensionRequired)
}

func TestHafnian_ZeroOrder(t *testing.T) {
	got, err := haf.Hafnian(nil, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestHafnian_2x2AllOnes(t *testing.T) {
	got, err := haf.Hafnian(allOnes(2), 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestHafnian_AllOnesMatchesDoubleFactorial(t *testing.T) {
	for m := 1; m <= 4; m++ {
		n := 2 * m
		got, err := haf.Hafnian(allOnes(n), n)
		require.NoError(t, err)
		assert.InDeltaf(t, doubleFactorialOdd(m), got, 1e-6, "m=%d", m)
	}
}

// TestHafnian_ZeroDiagonalMatchesAllOnes checks that the hafnian ignores
// the diagonal: a 4x4 matrix with off-diagonal 1s and zero diagonal has
// the same hafnian as the all-ones matrix (three perfect matchings of K4).
func TestHafnian_ZeroDiagonalMatchesAllOnes(t *testing.T) {
	n := 4
	a := allOnes(n)
	for i := 0; i < n; i++ {
		a[i*n+i] = 0
	}

	got, err := haf.Hafnian(a, n)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, 1e-9)
}

// TestHafnian_2x2RecursionBase checks haf([[a,b],[b,c]]) = b directly.
func TestHafnian_2x2RecursionBase(t *testing.T) {
	a := []float64{5, 7, 7, 9}
	got, err := haf.Hafnian(a, 2)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, got, 1e-9)
}

// TestHafnian_BlockDiagonalDecomposition checks haf(A) = haf(A1)*haf(A2)
// for A block-diagonal with even-sized blocks.
func TestHafnian_BlockDiagonalDecomposition(t *testing.T) {
	n := 4
	a := make([]float64, n*n)
	a[0*n+1], a[1*n+0] = 3, 3
	a[2*n+3], a[3*n+2] = 5, 5

	got, err := haf.Hafnian(a, n)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, got, 1e-9) // 3 * 5
}

// TestHafnian_PermutationInvariance checks haf(P A P^T) = haf(A) for a
// simultaneous row/column swap of a non-symmetric-looking but symmetric A.
func TestHafnian_PermutationInvariance(t *testing.T) {
	n := 4
	a := []float64{
		0, 2, 3, 4,
		2, 0, 5, 6,
		3, 5, 0, 7,
		4, 6, 7, 0,
	}
	want, err := haf.Hafnian(a, n)
	require.NoError(t, err)

	// Swap indices 0 and 3 (both rows and columns).
	p := []int{3, 1, 2, 0}
	permuted := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			permuted[i*n+j] = a[p[i]*n+p[j]]
		}
	}

	got, err := haf.Hafnian(permuted, n)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-9)
}

func TestHafnian_ComplexMatchesRealOnRealInput(t *testing.T) {
	n := 4
	real4 := allOnes(n)
	c := make([]complex128, n*n)
	for i, v := range real4 {
		c[i] = complex(v, 0)
	}

	wantReal, err := haf.Hafnian(real4, n)
	require.NoError(t, err)

	got, err := haf.HafnianComplex(c, n)
	require.NoError(t, err)

	assert.InDelta(t, wantReal, real(got), 1e-6)
	assert.InDelta(t, 0.0, imag(got), 1e-6)
}

func TestHafnian_CustomWorkersAndChunkSize(t *testing.T) {
	n := 6
	got, err := haf.Hafnian(allOnes(n), n, haf.WithWorkers(3), haf.WithChunkSize(1))
	require.NoError(t, err)
	assert.InDelta(t, 15.0, got, 1e-6)
}

func TestWithWorkers_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { haf.WithWorkers(0) })
}

func TestWithChunkSize_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { haf.WithChunkSize(-1) })
}

func TestWithEigenTolerance_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { haf.WithEigenTolerance(0) })
}

func TestWithEigenMaxIterations_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { haf.WithEigenMaxIterations(0) })
}

func TestDoubleFactorialOddSanity(t *testing.T) {
	// Sanity-check the test helper itself against the closed form
	// (2m)! / (2^m * m!) for the number of perfect matchings of K_{2m}.
	for m := 1; m <= 6; m++ {
		n := 2 * m
		want := factorial(n) / (math.Pow(2, float64(m)) * factorial(m))
		assert.InDelta(t, want, doubleFactorialOdd(m), 1e-6)
	}
}

func factorial(n int) float64 {
	r := 1.0
	for k := 2; k <= n; k++ {
		r *= float64(k)
	}

	return r
}
