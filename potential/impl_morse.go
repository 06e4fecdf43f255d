// SPDX-License-Identifier: MIT
// Package: numericalquantum/potential
//
// impl_morse.go — the Morse anharmonic bond potential.

package potential

import (
	"math"

	"github.com/aidan-dc/NumericalQuantum-APMTH205/hamiltonian"
)

// Morse returns the anharmonic potential
//
//	V(x) = depth·(1 - e^(-scale·(x - center)))²
//
// with its minimum V = 0 at x = center and dissociation plateau depth as
// x → +∞. The left wall rises steeply, so domains should not extend far
// below center. Errors: ErrBadParameter unless depth and scale are
// positive and finite and center is finite.
func Morse(depth, scale, center float64) (hamiltonian.Potential, error) {
	if err := requirePositive("depth", depth); err != nil {
		return nil, err
	}
	if err := requirePositive("scale", scale); err != nil {
		return nil, err
	}
	if err := requireFinite("center", center); err != nil {
		return nil, err
	}

	return func(x float64) float64 {
		u := 1 - math.Exp(-scale*(x-center))

		return depth * u * u
	}, nil
}
