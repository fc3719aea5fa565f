package hafint_test

import (
	"testing"

	"github.com/katalvlaran/hafnian/hafint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allOnesInt(n int) []int64 {
	a := make([]int64, n*n)
	for i := range a {
		a[i] = 1
	}

	return a
}

func TestHafnianInt_OddDimensionRejected(t *testing.T) {
	_, err := hafint.HafnianInt(make([]int64, 9), 3)
	assert.ErrorIs(t, err, hafint.ErrEvenDimensionRequired)
}

func TestHafnianInt_ZeroOrder(t *testing.T) {
	got, err := hafint.HafnianInt(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestHafnianInt_2x2RecursionBase(t *testing.T) {
	a := []int64{5, 7, 7, 9}
	got, err := hafint.HafnianInt(a, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)
}

func TestHafnianInt_4x4AllOnes(t *testing.T) {
	got, err := hafint.HafnianInt(allOnesInt(4), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)
}

func TestHafnianInt_6x6AllOnes(t *testing.T) {
	got, err := hafint.HafnianInt(allOnesInt(6), 6)
	require.NoError(t, err)
	assert.Equal(t, int64(15), got)
}

func TestHafnianInt_8x8AllOnes(t *testing.T) {
	got, err := hafint.HafnianInt(allOnesInt(8), 8)
	require.NoError(t, err)
	assert.Equal(t, int64(105), got)
}

func TestHafnianInt_ZeroDiagonalMatchesAllOnes(t *testing.T) {
	n := 4
	a := allOnesInt(n)
	for i := 0; i < n; i++ {
		a[i*n+i] = 0
	}

	got, err := hafint.HafnianInt(a, n)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)
}

// TestHafnianInt_DeterministicAcrossCalls checks repeated calls on the
// same input agree exactly, the expected behavior for an exact-integer,
// thread-count-independent path.
func TestHafnianInt_DeterministicAcrossCalls(t *testing.T) {
	n := 8
	a := make([]int64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			a[i*n+j] = int64((i+1)*(j+2)%11 + 1)
		}
	}

	first, err := hafint.HafnianInt(a, n)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		got, err := hafint.HafnianInt(a, n)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

// TestHafnianInt_BlockDiagonalDecomposition mirrors the block-diagonal
// property tested for the floating-point path: haf(A) = haf(A1)*haf(A2)
// for even-sized diagonal blocks.
func TestHafnianInt_BlockDiagonalDecomposition(t *testing.T) {
	n := 4
	a := make([]int64, n*n)
	a[0*n+1], a[1*n+0] = 3, 3
	a[2*n+3], a[3*n+2] = 5, 5

	got, err := hafint.HafnianInt(a, n)
	require.NoError(t, err)
	assert.Equal(t, int64(15), got)
}
