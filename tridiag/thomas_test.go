// File: tridiag/thomas_test.go
package tridiag

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolveShifted_Exact solves (T − 0·I)·x = b on a 2×2 system whose
// elimination stays in dyadic rationals, so the result is bit-exact:
// T = [[2,1],[1,2]], b = [3,3] ⇒ x = [1,1].
func TestSolveShifted_Exact(t *testing.T) {
	main := []float64{2, 2}
	off := []float64{1}
	b := []float64{3, 3}
	x := make([]float64, 2)
	cp := make([]float64, 2)

	solveShifted(main, off, 0, b, x, cp, 1e-12)

	assert.Equal(t, []float64{1, 1}, x)
	assert.Equal(t, []float64{3, 3}, b, "right-hand side must be left untouched")
}

// TestSolveShifted_ZeroPivotRegularized eliminates through an interior
// zero pivot: T − I for main=[2,2,2], off=[1,1] zeroes the second pivot
// exactly. The floored solve must still return a small-residual solution
// of the (nonsingular) shifted system.
func TestSolveShifted_ZeroPivotRegularized(t *testing.T) {
	main := []float64{2, 2, 2}
	off := []float64{1, 1}
	shift := 1.0
	b := []float64{1, 2, 1}
	x := make([]float64, 3)
	cp := make([]float64, 3)

	solveShifted(main, off, shift, b, x, cp, 1e-10)

	for _, v := range x {
		require.False(t, isNonFinite(v), "regularized solve must stay finite")
	}

	// Residual of the true shifted system: (T − I)·x − b.
	shifted := Tridiag{Main: []float64{1, 1, 1}, Off: off}
	r := make([]float64, 3)
	require.NoError(t, shifted.MulVec(r, x))
	for i := range r {
		assert.InDelta(t, b[i], r[i], 1e-6, "residual component %d", i)
	}
}

// TestFlooredPivot covers the clamp cases: pass-through above the floor,
// sign-preserving clamp below it, and positive floor for ±0.
func TestFlooredPivot(t *testing.T) {
	const pf = 1e-10

	assert.Equal(t, 0.5, flooredPivot(0.5, pf), "pivot above the floor passes through")
	assert.Equal(t, -0.5, flooredPivot(-0.5, pf))
	assert.Equal(t, pf, flooredPivot(1e-300, pf), "tiny positive pivot clamps up")
	assert.Equal(t, -pf, flooredPivot(-1e-300, pf), "tiny negative pivot keeps its sign")
	assert.Equal(t, pf, flooredPivot(0, pf), "+0 clamps to the positive floor")
	assert.Equal(t, pf, flooredPivot(math.Copysign(0, -1), pf), "-0 clamps to the positive floor")
}

// TestNormInf checks the maximum absolute row sum on a hand-computed
// matrix: rows |1|+4, 4+|-2|+5, 5+|3| ⇒ 11.
func TestNormInf(t *testing.T) {
	assert.Equal(t, 11.0, normInf([]float64{1, -2, 3}, []float64{4, -5}))
	assert.Equal(t, 7.0, normInf([]float64{-7}, nil), "order-1 norm is the lone |entry|")
	assert.Equal(t, 0.0, normInf([]float64{0, 0}, []float64{0}))
}
