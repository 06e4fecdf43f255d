// SPDX-License-Identifier: MIT
// Package: numericalquantum/potential
//
// impl_wells.go — bounded well potentials: square, Gaussian and quartic
// double well.
//
// Purpose (single responsibility):
//   • SquareWell:   the textbook finite well with a sharp edge.
//   • GaussianWell: its smooth counterpart, free of discretization ringing
//     at the edges.
//   • DoubleWell:   two symmetric minima with a tunable barrier, the
//     standard source of near-degenerate tunneling doublets.
//
// Contract:
//   • All constructors validate eagerly; closures are stateless and O(1).

package potential

import (
	"math"

	"github.com/aidan-dc/NumericalQuantum-APMTH205/hamiltonian"
)

// SquareWell returns the finite rectangular well
//
//	V(x) = -depth   for |x| ≤ halfWidth,
//	V(x) = 0        otherwise.
//
// Bound states sit at negative energies; their count grows with
// depth·halfWidth². Errors: ErrBadParameter unless depth and halfWidth are
// positive and finite.
func SquareWell(depth, halfWidth float64) (hamiltonian.Potential, error) {
	if err := requirePositive("depth", depth); err != nil {
		return nil, err
	}
	if err := requirePositive("halfWidth", halfWidth); err != nil {
		return nil, err
	}

	return func(x float64) float64 {
		if math.Abs(x) <= halfWidth {
			return -depth
		}

		return 0
	}, nil
}

// GaussianWell returns the smooth well V(x) = -depth·exp(-x²/(2·width²)).
// Errors: ErrBadParameter unless depth and width are positive and finite.
func GaussianWell(depth, width float64) (hamiltonian.Potential, error) {
	if err := requirePositive("depth", depth); err != nil {
		return nil, err
	}
	if err := requirePositive("width", width); err != nil {
		return nil, err
	}

	inv := 1 / (2 * width * width)

	return func(x float64) float64 { return -depth * math.Exp(-x*x*inv) }, nil
}

// DoubleWell returns the symmetric quartic
//
//	V(x) = height·((x/halfWidth)² - 1)²
//
// with minima V = 0 at x = ±halfWidth and a barrier of exactly height at
// x = 0. Deep barriers split the low-lying spectrum into exponentially
// close even/odd doublets. Errors: ErrBadParameter unless height and
// halfWidth are positive and finite.
func DoubleWell(height, halfWidth float64) (hamiltonian.Potential, error) {
	if err := requirePositive("height", height); err != nil {
		return nil, err
	}
	if err := requirePositive("halfWidth", halfWidth); err != nil {
		return nil, err
	}

	inv2 := 1 / (halfWidth * halfWidth)

	return func(x float64) float64 {
		u := x*x*inv2 - 1

		return height * u * u
	}, nil
}
