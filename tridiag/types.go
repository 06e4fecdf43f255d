// Package tridiag defines the compact symmetric tridiagonal matrix type,
// configuration options and sentinel errors for the partial eigensolver.
package tridiag

import (
	"errors"
	"math"
)

// Sentinel errors returned by the tridiag package.
// Callers MUST branch with errors.Is; messages are prefixed "tridiag:" for
// consistent grepping across logs.
var (
	// ErrDimensionMismatch indicates inconsistent main/off lengths: the
	// off-diagonal must hold exactly one element fewer than the diagonal,
	// and the diagonal must be non-empty.
	ErrDimensionMismatch = errors.New("tridiag: off-diagonal length must equal diagonal length minus one")

	// ErrNonFinite indicates a NaN or ±Inf entry in the matrix. Eigenvalue
	// counts and brackets are meaningless for non-finite data, so ingestion
	// rejects it up front.
	ErrNonFinite = errors.New("tridiag: matrix entries must be finite")

	// ErrBadEigenCount indicates a requested eigenpair count k outside 1..N.
	ErrBadEigenCount = errors.New("tridiag: eigenpair count must satisfy 1 ≤ k ≤ N")

	// ErrConvergence indicates bisection failed to shrink an eigenvalue
	// bracket below tolerance within the configured iteration budget.
	// This signals numerical pathology (or a hostile tolerance/budget pair),
	// not a recoverable condition.
	ErrConvergence = errors.New("tridiag: bisection did not converge within iteration budget")

	// ErrSingular indicates inverse iteration could not solve the shifted
	// system even after the configured number of perturbed-shift retries.
	ErrSingular = errors.New("tridiag: shifted tridiagonal system is numerically singular")
)

// Tridiag is a symmetric tridiagonal matrix in compact form.
//
// Main holds the N diagonal entries; Off holds the N-1 entries shared by the
// sub- and super-diagonal (symmetry by construction, as in the full matrix
//
//	| Main[0] Off[0]            |
//	| Off[0]  Main[1] Off[1]    |
//	|         Off[1]  Main[2] … |
//
// ). The zero value is not usable; construct via New. Solvers treat the
// matrix as read-only; callers must not mutate Main/Off while a solve is
// in flight.
type Tridiag struct {
	Main []float64 // diagonal entries, length N
	Off  []float64 // sub/super-diagonal entries, length N-1
}

// New validates the compact representation and wraps it in a Tridiag.
// The slices are retained, not copied: construction is O(N) validation only.
//
// Errors:
//   - ErrDimensionMismatch — len(main) == 0 or len(off) != len(main)-1.
//   - ErrNonFinite         — any NaN or ±Inf entry.
func New(main, off []float64) (Tridiag, error) {
	if len(main) == 0 || len(off) != len(main)-1 {
		return Tridiag{}, ErrDimensionMismatch
	}
	for _, v := range main {
		if isNonFinite(v) {
			return Tridiag{}, ErrNonFinite
		}
	}
	for _, v := range off {
		if isNonFinite(v) {
			return Tridiag{}, ErrNonFinite
		}
	}

	return Tridiag{Main: main, Off: off}, nil
}

// Dim returns the matrix order N.
func (t Tridiag) Dim() int { return len(t.Main) }

// Gershgorin returns an interval [lo, hi] guaranteed to contain the entire
// spectrum, from the Gershgorin circle bounds: row i contributes
// Main[i] ± (|Off[i-1]| + |Off[i]|) with the edge terms dropped at the
// boundaries.
//
// Rows are summed on a range-normalized copy (see dynScale), so a bound
// overflows to ±Inf only when the exact bound itself lies outside the
// float64 range.
//
// Complexity: O(N) time, O(1) space.
func (t Tridiag) Gershgorin() (lo, hi float64) {
	w, scale := t.dynScale()
	n := len(w.Main)
	lo, hi = math.Inf(1), math.Inf(-1)

	var r float64 // Gershgorin radius of the current row
	for i := 0; i < n; i++ {
		r = 0
		if i > 0 {
			r += math.Abs(w.Off[i-1])
		}
		if i < n-1 {
			r += math.Abs(w.Off[i])
		}
		lo = math.Min(lo, w.Main[i]-r)
		hi = math.Max(hi, w.Main[i]+r)
	}

	return lo * scale, hi * scale
}

// CountBelow returns the number of eigenvalues strictly less than x.
//
// It runs the standard LDLᵀ pivot recurrence d₀ = Main[0]−x,
// dᵢ = (Main[i]−x) − Off[i-1]²/dᵢ₋₁ and counts negative pivots (Sturm
// count). Pivots closer to zero than a matrix-scaled floor are replaced by
// a negative floor value, which keeps the count monotone in x and the
// recurrence free of division blow-ups. Matrix and threshold are first
// brought into range by an exact power-of-two factor (see dynScale), so
// the squared off-diagonal terms can neither overflow nor flush to zero
// for any finite input.
//
// Complexity: O(N) time — suitable as a bisection oracle.
func (t Tridiag) CountBelow(x float64) int {
	w, scale := t.dynScale()

	return sturmCount(w.Main, w.Off, x/scale, w.pivotFloor())
}

// MulVec computes dst = T·src. Both slices must have length Dim();
// dst and src must not alias.
//
// Errors: ErrDimensionMismatch on any length violation.
func (t Tridiag) MulVec(dst, src []float64) error {
	n := len(t.Main)
	if len(dst) != n || len(src) != n {
		return ErrDimensionMismatch
	}

	for i := 0; i < n; i++ {
		s := t.Main[i] * src[i]
		if i > 0 {
			s += t.Off[i-1] * src[i-1]
		}
		if i < n-1 {
			s += t.Off[i] * src[i+1]
		}
		dst[i] = s
	}

	return nil
}

// pivotFloor derives the minimum Sturm pivot magnitude from the squared
// off-diagonal scale, so that Off[i]²/d stays representable when d is
// floored. Callers hand it a range-normalized matrix (dynScale), which
// keeps the squares themselves finite.
func (t Tridiag) pivotFloor() float64 {
	var emax2 float64
	var e2 float64
	for _, e := range t.Off {
		e2 = e * e
		if e2 > emax2 {
			emax2 = e2
		}
	}

	return smallestNormal * math.Max(emax2, 1)
}

// dynScale brings extreme entry magnitudes into the window where squaring
// an off-diagonal entry can neither overflow nor flush to zero. It returns
// the matrix the recurrences should run on plus the power-of-two factor
// relating the two, t = scale·w. The factor is exact, so eigenvalues map
// back as λ = scale·λ_w with unchanged eigenvectors; in-window matrices
// come back as-is with scale 1.
func (t Tridiag) dynScale() (w Tridiag, scale float64) {
	var m float64
	for _, v := range t.Main {
		m = math.Max(m, math.Abs(v))
	}
	for _, v := range t.Off {
		m = math.Max(m, math.Abs(v))
	}
	if m == 0 || (m >= dynRangeLo && m <= dynRangeHi) {
		return t, 1
	}

	_, exp := math.Frexp(m)
	if exp > maxScaleExp {
		exp = maxScaleExp
	} else if exp < -maxScaleExp {
		exp = -maxScaleExp
	}

	inv := math.Ldexp(1, -exp)
	w = Tridiag{Main: make([]float64, len(t.Main)), Off: make([]float64, len(t.Off))}
	for i, v := range t.Main {
		w.Main[i] = v * inv
	}
	for i, v := range t.Off {
		w.Off[i] = v * inv
	}

	return w, math.Ldexp(1, exp)
}

// sturmCount is the shared LDLᵀ negative-pivot counter used by CountBelow
// and (with a precomputed floor) by the bisection hot loop.
func sturmCount(main, off []float64, x, pivmin float64) int {
	count := 0

	d := main[0] - x
	if math.Abs(d) < pivmin {
		d = -pivmin // treat a vanishing pivot as negative: count stays monotone
	}
	if d < 0 {
		count++
	}

	for i := 1; i < len(main); i++ {
		d = (main[i] - x) - off[i-1]*off[i-1]/d
		if math.Abs(d) < pivmin {
			d = -pivmin
		}
		if d < 0 {
			count++
		}
	}

	return count
}

// EigenResult holds the outcome of SolveLowest.
type EigenResult struct {
	// Values are the k smallest eigenvalues in non-decreasing order.
	Values []float64

	// Vectors[j] is the unit-norm eigenvector paired with Values[j],
	// length Dim(). Vectors within a degenerate cluster are mutually
	// orthogonal; signs are implementation defined.
	Vectors [][]float64
}

// Numeric constants shared across the solver.
const (
	// machEps is the double-precision unit roundoff (2⁻⁵²).
	machEps = 2.220446049250313e-16

	// smallestNormal is the smallest positive normal float64 (2⁻¹⁰²²),
	// used to scale pivot floors without drifting into denormals.
	smallestNormal = 2.2250738585072014e-308

	// dynRangeLo/dynRangeHi bracket the entry magnitudes the Sturm
	// recurrence handles as-is: squares stay clear of overflow and of
	// total underflow with half the exponent range in reserve. Matrices
	// outside the window are rescaled by dynScale first.
	dynRangeLo = 0x1p-256
	dynRangeHi = 0x1p256

	// maxScaleExp caps the normalization exponent so the scale factor and
	// its reciprocal both remain finite floats.
	maxScaleExp = 1023

	// clusterGapFactor widens the bisection tolerance into the gap below
	// which adjacent eigenvalues count as one degenerate cluster. Shifts
	// closer than the bracket error cannot separate eigenvectors by
	// iteration alone, so clustered ranks are re-orthogonalized explicitly.
	clusterGapFactor = 1e4
)

// Defaults — single source of truth for DefaultOptions.
const (
	// DefaultTol is the relative bisection tolerance: brackets shrink to
	// DefaultTol × the Gershgorin span (or the floating-point floor,
	// whichever is larger).
	DefaultTol = 1e-12

	// DefaultMaxBisectIter caps bisection steps per eigenvalue. Halving a
	// Gershgorin-wide bracket to 1e-12 relative width takes ~40 steps, so
	// the cap only trips on pathological tolerance/budget combinations.
	DefaultMaxBisectIter = 100

	// DefaultInverseIters is the number of inverse-iteration passes per
	// eigenvector; with a near-machine-precision shift, 2–3 suffice.
	DefaultInverseIters = 3

	// DefaultShiftRetries bounds the perturbed-shift retries when the
	// shifted system is numerically singular.
	DefaultShiftRetries = 3

	// DefaultWorkers runs target ranks sequentially.
	DefaultWorkers = 1

	// DefaultSeed feeds the deterministic start-vector generator; seed 0
	// is folded onto this value so defaults stay reproducible.
	DefaultSeed int64 = 1
)

// Options configures SolveLowest. Construct via DefaultOptions and override
// with functional options.
type Options struct {
	Tol          float64 // relative bisection tolerance, > 0
	MaxBisect    int     // bisection iteration cap per eigenvalue, ≥ 1
	InverseIters int     // inverse-iteration passes per vector, ≥ 1
	ShiftRetries int     // perturbed-shift retries on singular systems, ≥ 0
	Workers      int     // concurrent rank extractions, ≥ 1
	Seed         int64   // start-vector RNG seed; 0 ⇒ DefaultSeed
}

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error); runtime failures surface as sentinel errors instead.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tol:          DefaultTol,
		MaxBisect:    DefaultMaxBisectIter,
		InverseIters: DefaultInverseIters,
		ShiftRetries: DefaultShiftRetries,
		Workers:      DefaultWorkers,
		Seed:         DefaultSeed,
	}
}

// WithTolerance sets the relative bisection tolerance.
// Panics if tol is not a positive finite number.
func WithTolerance(tol float64) Option {
	if isNonFinite(tol) || tol <= 0 {
		panic("tridiag: WithTolerance: tol must be positive and finite")
	}

	return func(o *Options) { o.Tol = tol }
}

// WithMaxBisect caps the bisection iterations spent on each eigenvalue.
// Panics if n < 1.
func WithMaxBisect(n int) Option {
	if n < 1 {
		panic("tridiag: WithMaxBisect: iteration cap must be ≥ 1")
	}

	return func(o *Options) { o.MaxBisect = n }
}

// WithInverseIters sets the number of inverse-iteration passes per
// eigenvector. Panics if n < 1.
func WithInverseIters(n int) Option {
	if n < 1 {
		panic("tridiag: WithInverseIters: pass count must be ≥ 1")
	}

	return func(o *Options) { o.InverseIters = n }
}

// WithShiftRetries bounds the internal perturbed-shift retries before a
// singular system is surfaced as ErrSingular. Panics if n < 0.
func WithShiftRetries(n int) Option {
	if n < 0 {
		panic("tridiag: WithShiftRetries: retry count must be ≥ 0")
	}

	return func(o *Options) { o.ShiftRetries = n }
}

// WithWorkers extracts target ranks on up to n concurrent workers. Each
// rank only reads the shared matrix and owns a disjoint output slot, so no
// further synchronization is involved; results are identical to the
// sequential order. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("tridiag: WithWorkers: worker count must be ≥ 1")
	}

	return func(o *Options) { o.Workers = n }
}

// WithSeed fixes the start-vector RNG seed; rank-local streams are derived
// from it, so results are reproducible for a given seed at any worker count.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
