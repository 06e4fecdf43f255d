// SPDX-License-Identifier: MIT
// Package: numericalquantum/potential
//
// impl_ramp.go — piecewise-linear potentials: the symmetric ramp and the
// constant offset.

package potential

import (
	"math"

	"github.com/aidan-dc/NumericalQuantum-APMTH205/hamiltonian"
)

// LinearRamp returns the symmetric triangular well V(x) = slope·|x|,
// the "quantum bouncer" whose eigenvalues follow Airy-function zeros.
// Errors: ErrBadParameter unless slope is positive and finite.
func LinearRamp(slope float64) (hamiltonian.Potential, error) {
	if err := requirePositive("slope", slope); err != nil {
		return nil, err
	}

	return func(x float64) float64 { return slope * math.Abs(x) }, nil
}

// Constant returns the uniform potential V(x) = c, which shifts every
// eigenvalue by mass·c in mesh units. Mostly useful as a Sum component.
// Errors: ErrBadParameter unless c is finite.
func Constant(c float64) (hamiltonian.Potential, error) {
	if err := requireFinite("c", c); err != nil {
		return nil, err
	}

	return func(float64) float64 { return c }, nil
}
