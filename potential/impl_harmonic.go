// SPDX-License-Identifier: MIT
// Package: numericalquantum/potential
//
// impl_harmonic.go — the quantum harmonic oscillator potential.
//
// Purpose (single responsibility):
//   • Provide V(x) = ½·m·ω²·x², the standard benchmark potential with the
//     exactly known spectrum E_n = ħω·(n + ½).
//
// Contract:
//   • Harmonic(mass, omega) validates both parameters eagerly.
//   • The returned closure is stateless, finite everywhere, O(1) per call.

package potential

import "github.com/aidan-dc/NumericalQuantum-APMTH205/hamiltonian"

// Harmonic returns the oscillator potential ½·mass·omega²·x².
//
// Note the mass convention: the discretizer multiplies the potential by
// mass once more (its diagonal is dx⁻² + mass·V), which together with the
// final ħ/mass energy rescale reproduces E_n = ħ·omega·(n+½) exactly in
// the continuum limit.
//
// Errors: ErrBadParameter if mass or omega is not positive and finite.
func Harmonic(mass, omega float64) (hamiltonian.Potential, error) {
	if err := requirePositive("mass", mass); err != nil {
		return nil, err
	}
	if err := requirePositive("omega", omega); err != nil {
		return nil, err
	}

	half := 0.5 * mass * omega * omega

	return func(x float64) float64 { return half * x * x }, nil
}
