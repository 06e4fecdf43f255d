// Package tridiag - shifted tridiagonal linear solves (Thomas algorithm).
//
// This file is the O(N) building block of inverse iteration: each pass
// refines an approximate eigenvector by solving (T − λI)·x = b with the
// converged eigenvalue estimate λ as the shift.
//
// Regularization policy:
//   - λ sits within bracket tolerance of a true eigenvalue, so T − λI is
//     near-singular by design and elimination pivots may vanish.
//   - Pivots smaller in magnitude than a matrix-scaled floor are replaced
//     by the floor with their sign preserved. The solve then always
//     completes; a genuinely singular system shows up as a non-finite
//     solution, which the caller handles with a perturbed-shift retry.
package tridiag

import "math"

// solveShifted solves (T − shift·I)·x = b by forward elimination and back
// substitution, where T is given compactly by (main, off).
//
// x receives the solution; b is left untouched; cp is caller-owned scratch
// of length N (only the first N−1 entries are used). pivfloor is the
// minimum pivot magnitude, typically machEps·‖T‖∞.
//
// All slices must have length N and must not alias. The caller is
// responsible for checking the solution for non-finite growth.
//
// Complexity: O(N) time, O(1) extra space beyond the provided scratch.
func solveShifted(main, off []float64, shift float64, b, x, cp []float64, pivfloor float64) {
	n := len(main)

	// Forward elimination: cp carries the normalized super-diagonal,
	// x temporarily carries the normalized right-hand side.
	d := flooredPivot(main[0]-shift, pivfloor)
	if n > 1 {
		cp[0] = off[0] / d
	}
	x[0] = b[0] / d

	for i := 1; i < n; i++ {
		d = flooredPivot((main[i]-shift)-off[i-1]*cp[i-1], pivfloor)
		if i < n-1 {
			cp[i] = off[i] / d
		}
		x[i] = (b[i] - off[i-1]*x[i-1]) / d
	}

	// Back substitution, in place over x.
	for i := n - 2; i >= 0; i-- {
		x[i] -= cp[i] * x[i+1]
	}
}

// flooredPivot clamps a pivot away from zero, preserving its sign.
// A pivot of exactly ±0 is clamped to the positive floor.
func flooredPivot(d, pivfloor float64) float64 {
	if math.Abs(d) < pivfloor {
		if d == 0 {
			return pivfloor
		}

		return math.Copysign(pivfloor, d)
	}

	return d
}

// normInf returns the ∞-norm (maximum absolute row sum) of the compact
// matrix, used to scale the Thomas pivot floor.
func normInf(main, off []float64) float64 {
	n := len(main)

	var norm, row float64
	for i := 0; i < n; i++ {
		row = math.Abs(main[i])
		if i > 0 {
			row += math.Abs(off[i-1])
		}
		if i < n-1 {
			row += math.Abs(off[i])
		}
		if row > norm {
			norm = row
		}
	}

	return norm
}
