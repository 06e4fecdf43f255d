package tridiag_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/aidan-dc/NumericalQuantum-APMTH205/tridiag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// TestSolveLowest_AnalyticEigenvalues compares the five lowest eigenvalues
// of a 50×50 Laplacian stencil against the closed-form spectrum.
func TestSolveLowest_AnalyticEigenvalues(t *testing.T) {
	const n, k = 50, 5

	res, err := tridiag.SolveLowest(laplacian(n), k)
	require.NoError(t, err)
	require.Len(t, res.Values, k)
	require.Len(t, res.Vectors, k)

	for j := 0; j < k; j++ {
		assert.InDelta(t, laplacianEigenvalue(n, j+1), res.Values[j], 1e-9,
			"eigenvalue of rank %d", j)
	}
}

// TestSolveLowest_Ordering verifies the non-decreasing eigenvalue contract
// and that every eigenvector has matching dimension.
func TestSolveLowest_Ordering(t *testing.T) {
	const n, k = 40, 8

	res, err := tridiag.SolveLowest(laplacian(n), k)
	require.NoError(t, err)

	for j := 1; j < k; j++ {
		assert.LessOrEqual(t, res.Values[j-1], res.Values[j],
			"eigenvalues must be non-decreasing at rank %d", j)
	}
	for j, v := range res.Vectors {
		assert.Len(t, v, n, "eigenvector of rank %d", j)
	}
}

// TestSolveLowest_Orthonormality checks pairwise dot products of the
// returned eigenvectors: 1 on the diagonal, 0 off it.
func TestSolveLowest_Orthonormality(t *testing.T) {
	const n, k = 50, 5

	res, err := tridiag.SolveLowest(laplacian(n), k)
	require.NoError(t, err)

	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			dot := floats.Dot(res.Vectors[i], res.Vectors[j])
			if i == j {
				assert.InDelta(t, 1.0, dot, 1e-10, "norm of rank %d", i)
			} else {
				assert.InDelta(t, 0.0, dot, 1e-10, "overlap of ranks %d,%d", i, j)
			}
		}
	}
}

// TestSolveLowest_Residual verifies each pair satisfies T·v ≈ λ·v: the
// eigen-equation itself, independent of any analytic oracle.
func TestSolveLowest_Residual(t *testing.T) {
	const n, k = 64, 6

	m := laplacian(n)
	res, err := tridiag.SolveLowest(m, k)
	require.NoError(t, err)

	tv := make([]float64, n)
	for j := 0; j < k; j++ {
		require.NoError(t, m.MulVec(tv, res.Vectors[j]))
		floats.AddScaled(tv, -res.Values[j], res.Vectors[j])
		assert.InDelta(t, 0.0, floats.Norm(tv, 2), 1e-8, "residual of rank %d", j)
	}
}

// TestSolveLowest_FullSpectrum requests k = N, the upper edge of the valid
// range, and checks the complete spectrum against the closed form.
func TestSolveLowest_FullSpectrum(t *testing.T) {
	const n = 12

	res, err := tridiag.SolveLowest(laplacian(n), n)
	require.NoError(t, err)
	require.Len(t, res.Values, n)

	for j := 0; j < n; j++ {
		assert.InDelta(t, laplacianEigenvalue(n, j+1), res.Values[j], 1e-9,
			"eigenvalue of rank %d", j)
	}
}

// TestSolveLowest_SingleElement covers the order-1 matrix: the sole
// eigenvalue is the diagonal entry and the eigenvector is ±1.
func TestSolveLowest_SingleElement(t *testing.T) {
	m, err := tridiag.New([]float64{42}, nil)
	require.NoError(t, err)

	res, err := tridiag.SolveLowest(m, 1)
	require.NoError(t, err)
	assert.Equal(t, 42.0, res.Values[0])
	assert.Equal(t, 1.0, math.Abs(res.Vectors[0][0]))
}

// TestSolveLowest_DegenerateBlocks builds two identical 2×2 blocks joined
// by a zero coupling, so the lowest eigenvalue -1 has multiplicity two.
// The returned pair must be reported twice with orthonormal vectors drawn
// from the right eigenspace.
func TestSolveLowest_DegenerateBlocks(t *testing.T) {
	m, err := tridiag.New([]float64{0, 0, 0, 0}, []float64{1, 0, 1})
	require.NoError(t, err)

	res, err := tridiag.SolveLowest(m, 2)
	require.NoError(t, err)

	assert.InDelta(t, -1.0, res.Values[0], 1e-9)
	assert.InDelta(t, -1.0, res.Values[1], 1e-9)

	// Orthonormal pair.
	assert.InDelta(t, 1.0, floats.Dot(res.Vectors[0], res.Vectors[0]), 1e-10)
	assert.InDelta(t, 1.0, floats.Dot(res.Vectors[1], res.Vectors[1]), 1e-10)
	assert.InDelta(t, 0.0, floats.Dot(res.Vectors[0], res.Vectors[1]), 1e-8)

	// The λ=-1 eigenspace is spanned by (1,-1,0,0)/√2 and (0,0,1,-1)/√2,
	// so every member satisfies v[0]+v[1] = v[2]+v[3] = 0.
	for j, v := range res.Vectors {
		assert.InDelta(t, 0.0, v[0]+v[1], 1e-7, "rank %d outside eigenspace", j)
		assert.InDelta(t, 0.0, v[2]+v[3], 1e-7, "rank %d outside eigenspace", j)
	}
}

// TestSolveLowest_IdentityMatrix is the fully degenerate extreme: every
// eigenvalue equals 1, so every returned vector belongs to the same
// cluster and the whole answer hinges on re-orthogonalization.
func TestSolveLowest_IdentityMatrix(t *testing.T) {
	const n, k = 6, 4

	main := make([]float64, n)
	for i := range main {
		main[i] = 1
	}
	m, err := tridiag.New(main, make([]float64, n-1))
	require.NoError(t, err)

	res, err := tridiag.SolveLowest(m, k)
	require.NoError(t, err)

	for j, v := range res.Values {
		assert.InDelta(t, 1.0, v, 1e-9, "rank %d", j)
	}
	for i := 0; i < k; i++ {
		for j := 0; j <= i; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, floats.Dot(res.Vectors[i], res.Vectors[j]), 1e-8,
				"dot(%d,%d)", i, j)
		}
	}
}

// TestSolveLowest_ExtremeMagnitudes solves [[0,a,0],[a,0,b],[0,b,0]] with
// a = 1e200, b = 1e155. T·(b, 0, -a)ᵀ = 0, so the spectrum is exactly
// {-√(a²+b²), 0, +√(a²+b²)} — with a² far beyond MaxFloat64, reachable
// only through range normalization.
func TestSolveLowest_ExtremeMagnitudes(t *testing.T) {
	const a, b = 1e200, 1e155

	m, err := tridiag.New([]float64{0, 0, 0}, []float64{a, b})
	require.NoError(t, err)

	res, err := tridiag.SolveLowest(m, 2)
	require.NoError(t, err)

	// b²/a² = 1e-90, so √(a²+b²) equals a to machine precision; the kernel
	// eigenvalue resolves to the bisection tolerance in units of a.
	assert.InEpsilon(t, -a, res.Values[0], 1e-10, "lowest eigenvalue")
	assert.InDelta(t, 0.0, res.Values[1], 1e190, "kernel eigenvalue")

	// Eigenvectors are scale-free: unit norm, mutually orthogonal, and the
	// kernel direction is (b, 0, -a)/√(a²+b²) ≈ (1e-45, 0, -1) up to sign.
	assert.InDelta(t, 1.0, floats.Norm(res.Vectors[0], 2), 1e-10)
	assert.InDelta(t, 1.0, floats.Norm(res.Vectors[1], 2), 1e-10)
	assert.InDelta(t, 0.0, floats.Dot(res.Vectors[0], res.Vectors[1]), 1e-8)
	assert.InDelta(t, 0.0, res.Vectors[1][1], 1e-7, "kernel vector middle component")
	assert.InDelta(t, 1.0, math.Abs(res.Vectors[1][2]), 1e-7, "kernel vector end component")
}

// TestSolveLowest_GershgorinOverflowRow uses off-diagonals of 1e308: the
// middle Gershgorin row sums to 2e308, past MaxFloat64, yet the lowest
// eigenvalue -√2·1e308 is itself representable and must come out finite.
func TestSolveLowest_GershgorinOverflowRow(t *testing.T) {
	m, err := tridiag.New([]float64{0, 0, 0}, []float64{1e308, 1e308})
	require.NoError(t, err)

	res, err := tridiag.SolveLowest(m, 1)
	require.NoError(t, err)

	assert.InEpsilon(t, -math.Sqrt2*1e308, res.Values[0], 1e-10, "lowest eigenvalue")
	assert.InDelta(t, 1.0, floats.Norm(res.Vectors[0], 2), 1e-10, "unit norm")
}

// TestSolveLowest_GonumCrossCheck compares eigenvalues on a random
// tridiagonal against gonum's dense symmetric eigendecomposition.
func TestSolveLowest_GonumCrossCheck(t *testing.T) {
	const n, k = 30, 6

	rng := rand.New(rand.NewSource(42))
	main := make([]float64, n)
	off := make([]float64, n-1)
	for i := range main {
		main[i] = 4*rng.Float64() - 2
	}
	for i := range off {
		off[i] = 2*rng.Float64() - 1
	}

	m, err := tridiag.New(main, off)
	require.NoError(t, err)
	res, err := tridiag.SolveLowest(m, k)
	require.NoError(t, err)

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		sym.SetSym(i, i, main[i])
		if i < n-1 {
			sym.SetSym(i, i+1, off[i])
		}
	}
	var es mat.EigenSym
	require.True(t, es.Factorize(sym, true), "dense factorization must succeed")
	want := es.Values(nil) // ascending

	for j := 0; j < k; j++ {
		assert.InDelta(t, want[j], res.Values[j], 1e-8, "eigenvalue of rank %d", j)
	}
}

// TestSolveLowest_ParallelMatchesSequential runs the same solve with one
// and with four workers under a fixed seed: results must match bit for bit,
// and no goroutine may outlive the call.
func TestSolveLowest_ParallelMatchesSequential(t *testing.T) {
	defer goleak.VerifyNone(t)

	const n, k = 60, 6
	m := laplacian(n)

	seq, err := tridiag.SolveLowest(m, k, tridiag.WithSeed(7))
	require.NoError(t, err)

	par, err := tridiag.SolveLowest(m, k, tridiag.WithSeed(7), tridiag.WithWorkers(4))
	require.NoError(t, err)

	require.Equal(t, seq.Values, par.Values)
	require.Equal(t, seq.Vectors, par.Vectors)
}

// TestSolveLowest_SeedReproducibility verifies that a fixed seed pins the
// whole result down exactly across repeated calls.
func TestSolveLowest_SeedReproducibility(t *testing.T) {
	m := laplacian(32)

	first, err := tridiag.SolveLowest(m, 4, tridiag.WithSeed(99))
	require.NoError(t, err)
	second, err := tridiag.SolveLowest(m, 4, tridiag.WithSeed(99))
	require.NoError(t, err)

	require.Equal(t, first.Values, second.Values)
	require.Equal(t, first.Vectors, second.Vectors)
}

// TestSolveLowest_BadEigenCount rejects k outside 1..N and returns an
// empty result alongside the sentinel.
func TestSolveLowest_BadEigenCount(t *testing.T) {
	m := laplacian(8)

	res, err := tridiag.SolveLowest(m, 0)
	assert.ErrorIs(t, err, tridiag.ErrBadEigenCount, "k=0 must be rejected")
	assert.Empty(t, res.Values)

	_, err = tridiag.SolveLowest(m, 9)
	assert.ErrorIs(t, err, tridiag.ErrBadEigenCount, "k>N must be rejected")

	_, err = tridiag.SolveLowest(m, -3)
	assert.ErrorIs(t, err, tridiag.ErrBadEigenCount, "negative k must be rejected")
}

// TestSolveLowest_MalformedMatrix verifies that literals bypassing New are
// still validated inside SolveLowest.
func TestSolveLowest_MalformedMatrix(t *testing.T) {
	_, err := tridiag.SolveLowest(tridiag.Tridiag{}, 1)
	assert.ErrorIs(t, err, tridiag.ErrDimensionMismatch, "zero-value matrix must be rejected")

	bad := tridiag.Tridiag{Main: []float64{1, math.NaN()}, Off: []float64{0}}
	_, err = tridiag.SolveLowest(bad, 1)
	assert.ErrorIs(t, err, tridiag.ErrNonFinite, "NaN entries must be rejected")
}

// TestSolveLowest_ConvergenceBudget starves bisection with a one-iteration
// cap: the bracket cannot reach tolerance and ErrConvergence must surface.
func TestSolveLowest_ConvergenceBudget(t *testing.T) {
	res, err := tridiag.SolveLowest(laplacian(10), 2, tridiag.WithMaxBisect(1))
	assert.ErrorIs(t, err, tridiag.ErrConvergence)
	assert.Empty(t, res.Values, "no partial results on failure")
	assert.Empty(t, res.Vectors, "no partial results on failure")
}

// TestSolveLowest_LooseToleranceStillOrdered runs with a deliberately crude
// tolerance: values lose accuracy but ordering and orthonormality hold.
func TestSolveLowest_LooseToleranceStillOrdered(t *testing.T) {
	const n, k = 40, 4

	res, err := tridiag.SolveLowest(laplacian(n), k, tridiag.WithTolerance(1e-6))
	require.NoError(t, err)

	for j := 1; j < k; j++ {
		assert.LessOrEqual(t, res.Values[j-1], res.Values[j])
	}
	for j := 0; j < k; j++ {
		assert.InDelta(t, laplacianEigenvalue(n, j+1), res.Values[j], 1e-4,
			"eigenvalue of rank %d within loose tolerance", j)
	}
}

// TestOptions_Defaults pins the documented default configuration.
func TestOptions_Defaults(t *testing.T) {
	o := tridiag.DefaultOptions()

	assert.Equal(t, tridiag.DefaultTol, o.Tol)
	assert.Equal(t, tridiag.DefaultMaxBisectIter, o.MaxBisect)
	assert.Equal(t, tridiag.DefaultInverseIters, o.InverseIters)
	assert.Equal(t, tridiag.DefaultShiftRetries, o.ShiftRetries)
	assert.Equal(t, tridiag.DefaultWorkers, o.Workers)
	assert.Equal(t, tridiag.DefaultSeed, o.Seed)
}

// TestOptions_PanicOnInvalid verifies that option constructors reject
// nonsensical values eagerly, at construction time.
func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.Panics(t, func() { tridiag.WithTolerance(0) })
	assert.Panics(t, func() { tridiag.WithTolerance(-1e-9) })
	assert.Panics(t, func() { tridiag.WithTolerance(math.NaN()) })
	assert.Panics(t, func() { tridiag.WithMaxBisect(0) })
	assert.Panics(t, func() { tridiag.WithInverseIters(0) })
	assert.Panics(t, func() { tridiag.WithShiftRetries(-1) })
	assert.Panics(t, func() { tridiag.WithWorkers(0) })
}
