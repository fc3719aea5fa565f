package haf_test

import (
	"testing"

	"github.com/katalvlaran/hafnian/haf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}

	r := 1.0
	for i := 0; i < k; i++ {
		r *= float64(n-i) / float64(i+1)
	}

	return r
}

// loopAllOnesFormula computes Σ_{k=0}^{m} C(2m,2k) * (2k-1)!! per §8,
// the closed form for loop_hafnian(J_{2m}).
func loopAllOnesFormula(m int) float64 {
	n := 2 * m
	sum := 0.0
	for k := 0; k <= m; k++ {
		sum += binomial(n, 2*k) * doubleFactorialOdd(k)
	}

	return sum
}

func TestLoopHafnian_OddDimensionRejected(t *testing.T) {
	_, err := haf.LoopHafnian(make([]float64, 9), 3)
	assert.ErrorIs(t, err, haf.ErrEvenDimensionRequired)
}

func TestLoopHafnian_2x2AllOnes(t *testing.T) {
	got, err := haf.LoopHafnian(allOnes(2), 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-9)
}

func TestLoopHafnian_4x4AllOnes(t *testing.T) {
	got, err := haf.LoopHafnian(allOnes(4), 4)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, got, 1e-6)
}

func TestLoopHafnian_AllOnesMatchesClosedForm(t *testing.T) {
	for m := 1; m <= 4; m++ {
		n := 2 * m
		got, err := haf.LoopHafnian(allOnes(n), n)
		require.NoError(t, err)
		assert.InDeltaf(t, loopAllOnesFormula(m), got, 1e-5, "m=%d", m)
	}
}

// TestLoopHafnian_2x2RecursionBase checks loop_haf([[a,b],[b,c]]) = ac + b.
func TestLoopHafnian_2x2RecursionBase(t *testing.T) {
	a, b, c := 2.0, 5.0, 3.0
	mat := []float64{a, b, b, c}
	got, err := haf.LoopHafnian(mat, 2)
	require.NoError(t, err)
	assert.InDelta(t, a*c+b, got, 1e-9)
}

// TestLoopHafnian_ZeroDiagonalMatchesHafnian checks loop_haf(A) = haf(A)
// when A has a zero diagonal.
func TestLoopHafnian_ZeroDiagonalMatchesHafnian(t *testing.T) {
	n := 6
	a := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := float64((i+1)*(j+1)%7 + 1)
			a[i*n+j] = v
			a[j*n+i] = v
		}
	}

	wantHaf, err := haf.Hafnian(a, n)
	require.NoError(t, err)
	gotLoop, err := haf.LoopHafnian(a, n)
	require.NoError(t, err)

	assert.InDelta(t, wantHaf, gotLoop, 1e-9)
}

func TestLoopHafnian_ComplexMatchesRealOnRealInput(t *testing.T) {
	n := 4
	real4 := allOnes(n)
	c := make([]complex128, n*n)
	for i, v := range real4 {
		c[i] = complex(v, 0)
	}

	wantReal, err := haf.LoopHafnian(real4, n)
	require.NoError(t, err)

	got, err := haf.LoopHafnianComplex(c, n)
	require.NoError(t, err)

	assert.InDelta(t, wantReal, real(got), 1e-6)
	assert.InDelta(t, 0.0, imag(got), 1e-6)
}

func TestLoopAllOnesFormulaSanity(t *testing.T) {
	// m=1: C(2,0)*(-1)!! + C(2,2)*1!! = 1*1 + 1*1 = 2, matching the 2x2 case directly.
	assert.InDelta(t, 2.0, loopAllOnesFormula(1), 1e-9)
}
