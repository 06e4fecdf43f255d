// Package tridiag implements the partial symmetric tridiagonal eigensolver.
//
// SolveLowest extracts the k smallest eigenpairs by the standard
// bisection + inverse-iteration procedure:
//
//  1. Normalize extreme entry magnitudes by an exact power-of-two factor,
//     then bracket the whole spectrum with Gershgorin circle bounds.
//  2. For each target rank r ∈ [0, k), bisect on the Sturm count — an O(N)
//     monotone oracle returning the number of eigenvalues below a trial
//     value — until the bracket is narrower than tolerance.
//  3. Recover each eigenvector by inverse iteration: repeated Thomas solves
//     of (T − λI)·v = v_prev from a deterministic Gaussian start, with
//     renormalization after every pass.
//  4. Re-orthogonalize vectors inside degenerate clusters (adjacent
//     eigenvalues closer than the cluster gap) with modified Gram–Schmidt.
//
// Complexity:
//
//   - Time:  O(k·N·log(1/ε)) for bisection + O(k·N) for inverse iteration.
//   - Space: O(N) scratch per in-flight rank; O(k·N) for the result.
//
// Determinism:
//
//   - Start vectors come from per-rank derived RNG streams, so results are
//     identical for a given seed whether ranks run sequentially or on a
//     worker pool (each worker owns a disjoint output slot; the matrix is
//     only read).
package tridiag

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// clusterRedrawNorm is the post-projection norm below which a cluster
// member counts as numerically dependent on its predecessors and is redrawn
// from a fresh stream. Above it, the normalized remainder keeps eigenvector
// quality well inside the orthogonality tolerance.
const clusterRedrawNorm = 1e-4

// SolveLowest returns the k smallest eigenvalues of t in non-decreasing
// order together with matching unit-norm eigenvectors.
//
// Preconditions (validated, not assumed): t is a well-formed finite
// tridiagonal of order N ≥ 1 and 1 ≤ k ≤ N.
//
// Entries may sit anywhere in the finite float64 range: matrices outside
// the comfortable dynamic window are rescaled by an exact power of two
// before counting and iteration, and the eigenvalues are mapped back on
// assembly (eigenvectors are scale-invariant).
//
// Degenerate eigenvalues are returned with their full multiplicity and
// mutually orthogonal vectors. On any failure the result is empty — never a
// mix of valid and invalid entries.
//
// Errors:
//   - ErrDimensionMismatch / ErrNonFinite — malformed matrix.
//   - ErrBadEigenCount — k outside 1..N.
//   - ErrConvergence   — a bisection bracket failed to shrink within the
//     iteration budget (see WithMaxBisect).
//   - ErrSingular      — a shifted system stayed singular through all
//     perturbed-shift retries (see WithShiftRetries).
func SolveLowest(t Tridiag, k int, opts ...Option) (EigenResult, error) {
	// 1) Validate the compact representation. Tridiag fields are exported,
	//    so literals may bypass New; re-run the same checks here.
	if _, err := New(t.Main, t.Off); err != nil {
		return EigenResult{}, err
	}

	// 2) Validate the requested eigenpair count.
	n := t.Dim()
	if k < 1 || k > n {
		return EigenResult{}, fmt.Errorf("SolveLowest: k=%d with N=%d: %w", k, n, ErrBadEigenCount)
	}

	// 3) Resolve options (last-writer-wins over documented defaults).
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 4) Range-normalize, then precompute the brackets, tolerances and
	//    pivot floors shared by all ranks.
	s := newSolver(t, k, cfg)

	// 5) Extract every target rank, sequentially or on the worker pool.
	if err := s.extractAll(); err != nil {
		return EigenResult{}, err
	}

	// 6) Re-orthogonalize degenerate clusters.
	if err := s.orthogonalizeClusters(); err != nil {
		return EigenResult{}, err
	}

	// 7) Assemble in ascending eigenvalue order.
	return s.assemble(), nil
}

// solver holds the shared, read-only state for one SolveLowest execution.
// Per-rank scratch lives on each extraction's stack so ranks can run in
// parallel without synchronization.
type solver struct {
	t     Tridiag // range-normalized input matrix; read-only during the solve
	scale float64 // power-of-two factor mapping t's eigenvalues back to the input's
	k     int     // requested eigenpair count
	cfg   Options // resolved configuration

	lo, hi   float64 // Gershgorin bracket containing the full spectrum
	tol      float64 // absolute bisection tolerance
	pivmin   float64 // Sturm pivot floor (overflow-safe counting)
	pivfloor float64 // Thomas pivot floor, machEps·‖T‖∞

	values  []float64   // values[r] — eigenvalue of rank r
	vectors [][]float64 // vectors[r] — unit-norm eigenvector of rank r
}

// newSolver range-normalizes the matrix, then derives the spectrum bracket,
// the absolute tolerance and the pivot floors from the normalized copy and
// the resolved options. All internal quantities live in normalized units;
// assemble maps the eigenvalues back.
func newSolver(t Tridiag, k int, cfg Options) *solver {
	w, scale := t.dynScale()
	lo, hi := w.Gershgorin()

	// Absolute tolerance: relative Tol against the spectral scale, floored
	// at the floating-point resolution around the spectrum edge.
	edge := math.Max(math.Abs(lo), math.Abs(hi))
	tol := cfg.Tol * math.Max(hi-lo, edge)
	if floor := 2 * machEps * edge; tol < floor {
		tol = floor
	}
	if tol == 0 {
		// All-zero matrix: any positive width counts as converged.
		tol = smallestNormal
	}

	// Thomas pivot floor is norm-relative; an exact zero matrix falls back
	// to machEps so regularized solves cannot overflow.
	pf := machEps * normInf(w.Main, w.Off)
	if pf == 0 {
		pf = machEps
	}

	return &solver{
		t:        w,
		scale:    scale,
		k:        k,
		cfg:      cfg,
		lo:       lo,
		hi:       hi,
		tol:      tol,
		pivmin:   w.pivotFloor(),
		pivfloor: pf,
		values:   make([]float64, k),
		vectors:  make([][]float64, k),
	}
}

// extractAll runs extract for every rank. With Workers > 1 the ranks are
// fanned out on an errgroup; each writes only its own slot, so the first
// error wins and no further synchronization is needed.
func (s *solver) extractAll() error {
	if s.cfg.Workers > 1 {
		g := new(errgroup.Group)
		g.SetLimit(s.cfg.Workers)
		for r := 0; r < s.k; r++ {
			r := r // pin per-iteration copy; language version predates Go 1.22 loop scoping
			g.Go(func() error { return s.extract(r) })
		}

		return g.Wait()
	}

	for r := 0; r < s.k; r++ {
		if err := s.extract(r); err != nil {
			return err
		}
	}

	return nil
}

// extract computes the eigenpair of a single target rank into its slot.
func (s *solver) extract(rank int) error {
	lam, err := s.bisect(rank)
	if err != nil {
		return err
	}

	vec, err := s.invIterate(lam, rank)
	if err != nil {
		return err
	}

	s.values[rank] = lam
	s.vectors[rank] = vec

	return nil
}

// bisect locates the eigenvalue of the given rank (0-based, ascending) by
// bisection on the Sturm count: count(mid) ≥ rank+1 means the target lies
// below mid. The bracket starts at the full Gershgorin interval and shrinks
// until its width drops under tolerance; a midpoint that no longer falls
// strictly inside the bracket means floating-point resolution is reached
// and also counts as converged.
//
// Complexity: O(N·log(span/tol)) time, O(1) space.
func (s *solver) bisect(rank int) (float64, error) {
	lo, hi := s.lo, s.hi
	target := rank + 1

	var mid float64
	for iter := 0; hi-lo > s.tol; iter++ {
		if iter >= s.cfg.MaxBisect {
			return 0, fmt.Errorf("SolveLowest: rank %d bracket stuck at width %g: %w", rank, s.scale*(hi-lo), ErrConvergence)
		}

		mid = lo + 0.5*(hi-lo)
		if mid <= lo || mid >= hi {
			break // bracket is one ulp wide; nothing left to halve
		}

		if sturmCount(s.t.Main, s.t.Off, mid, s.pivmin) >= target {
			hi = mid
		} else {
			lo = mid
		}
	}

	return lo + 0.5*(hi-lo), nil
}

// invIterate recovers the eigenvector for a converged eigenvalue estimate.
// Each attempt restarts from a deterministic Gaussian vector (per-rank
// stream) and runs the configured inverse-iteration passes; a solve that
// overflows into non-finite values marks the shifted system singular and
// the next attempt nudges the shift by one tolerance step.
func (s *solver) invIterate(lam float64, rank int) ([]float64, error) {
	n := s.t.Dim()
	v := make([]float64, n)  // current iterate, doubles as right-hand side
	w := make([]float64, n)  // solve output
	cp := make([]float64, n) // Thomas scratch
	rng := rankStream(s.cfg.Seed, rank)

	for attempt := 0; attempt <= s.cfg.ShiftRetries; attempt++ {
		shift := lam + float64(attempt)*s.tol
		gaussianStart(v, rng)
		if s.iterate(shift, v, w, cp) {
			return v, nil
		}
	}

	return nil, fmt.Errorf("SolveLowest: rank %d near λ=%g: %w", rank, s.scale*lam, ErrSingular)
}

// iterate normalizes v and applies the configured inverse-iteration passes
// in place. It reports false when a pass produced a zero or non-finite
// iterate, leaving the retry decision to the caller.
func (s *solver) iterate(shift float64, v, w, cp []float64) bool {
	norm := floats.Norm(v, 2)
	if norm == 0 || isNonFinite(norm) {
		return false
	}
	floats.Scale(1/norm, v)

	for pass := 0; pass < s.cfg.InverseIters; pass++ {
		solveShifted(s.t.Main, s.t.Off, shift, v, w, cp, s.pivfloor)

		norm = floats.Norm(w, 2)
		if norm == 0 || isNonFinite(norm) {
			return false
		}
		floats.Scale(1/norm, w)
		copy(v, w)
	}

	return true
}

// orthogonalizeClusters walks the ranks in ascending order, groups adjacent
// eigenvalues whose gap is below clusterGapFactor·tol into degenerate
// clusters, and re-orthogonalizes each cluster. Well-separated ranks are
// left untouched: symmetry already makes their vectors orthogonal.
func (s *solver) orthogonalizeClusters() error {
	gap := clusterGapFactor * s.tol

	start := 0
	for r := 1; r <= s.k; r++ {
		if r < s.k && s.values[r]-s.values[r-1] <= gap {
			continue // still inside the current cluster
		}
		if r-start > 1 {
			if err := s.gramSchmidt(start, r); err != nil {
				return err
			}
		}
		start = r
	}

	return nil
}

// gramSchmidt applies modified Gram–Schmidt to vectors[start:end), the
// members of one degenerate cluster. A member whose post-projection norm
// collapses below clusterRedrawNorm is numerically dependent on its
// predecessors; it is redrawn from a fresh deterministic stream, re-run
// through inverse iteration at its own eigenvalue, and projected again,
// bounded by the ShiftRetries budget.
func (s *solver) gramSchmidt(start, end int) error {
	var w, cp []float64 // lazily allocated; only the redraw path solves again

	for j := start + 1; j < end; j++ {
		vj := s.vectors[j]

		project := func() {
			var c float64
			for i := start; i < j; i++ {
				c = floats.Dot(s.vectors[i], vj)
				floats.AddScaled(vj, -c, s.vectors[i])
			}
		}

		project()
		norm := floats.Norm(vj, 2)
		for redraw := 1; norm < clusterRedrawNorm; redraw++ {
			if redraw > s.cfg.ShiftRetries {
				return fmt.Errorf("SolveLowest: rank %d cluster member dependent: %w", j, ErrSingular)
			}
			if w == nil {
				w = make([]float64, len(vj))
				cp = make([]float64, len(vj))
			}

			// Fresh stream id beyond the plain rank range keeps the redraw
			// deterministic and decorrelated from every first attempt.
			gaussianStart(vj, rankStream(s.cfg.Seed, j+redraw*s.k))
			if !s.iterate(s.values[j], vj, w, cp) {
				continue
			}
			project()
			norm = floats.Norm(vj, 2)
		}
		floats.Scale(1/norm, vj)
	}

	return nil
}

// assemble maps the eigenvalues back to input units and orders the pairs
// by value. Ranks are already ascending by construction; independent
// bisections can still land a pair of (near-)degenerate values a few ulps
// out of order, so a stable sort pins the contract down exactly.
func (s *solver) assemble() EigenResult {
	if s.scale != 1 {
		floats.Scale(s.scale, s.values)
	}

	res := EigenResult{Values: s.values, Vectors: s.vectors}
	sort.Stable(byValue{vals: res.Values, vecs: res.Vectors})

	return res
}

// byValue sorts eigenpairs in tandem by ascending eigenvalue.
type byValue struct {
	vals []float64
	vecs [][]float64
}

func (p byValue) Len() int           { return len(p.vals) }
func (p byValue) Less(i, j int) bool { return p.vals[i] < p.vals[j] }
func (p byValue) Swap(i, j int) {
	p.vals[i], p.vals[j] = p.vals[j], p.vals[i]
	p.vecs[i], p.vecs[j] = p.vecs[j], p.vecs[i]
}
