// SPDX-License-Identifier: MIT
// Package: numericalquantum/potential
//
// combinators.go — composition of potentials: pointwise sum, scaling and
// translation.
//
// AI-Hints (practical):
//   • Combinators validate wiring (nil components) but not physics: a sum
//     of wells can still be unbounded below on an infinite domain.
//   • Compose before discretizing — each combinator adds one closure hop
//     per evaluation, and Discretize evaluates once per grid point anyway.

package potential

import "github.com/aidan-dc/NumericalQuantum-APMTH205/hamiltonian"

// Sum returns the pointwise sum of the component potentials.
// Errors: ErrNilComponent if no components are given or any is nil.
func Sum(components ...hamiltonian.Potential) (hamiltonian.Potential, error) {
	if len(components) == 0 {
		return nil, ErrNilComponent
	}
	for _, c := range components {
		if c == nil {
			return nil, ErrNilComponent
		}
	}

	vs := make([]hamiltonian.Potential, len(components))
	copy(vs, components) // detach from the caller's slice

	return func(x float64) float64 {
		var total float64
		for _, v := range vs {
			total += v(x)
		}

		return total
	}, nil
}

// Scale returns factor·V. A negative factor flips wells into barriers.
// Errors: ErrBadParameter for a non-finite factor, ErrNilComponent for a
// nil potential.
func Scale(factor float64, v hamiltonian.Potential) (hamiltonian.Potential, error) {
	if err := requireFinite("factor", factor); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNilComponent
	}

	return func(x float64) float64 { return factor * v(x) }, nil
}

// Shift translates the potential right by offset: the result evaluates
// V(x - offset). Errors: ErrBadParameter for a non-finite offset,
// ErrNilComponent for a nil potential.
func Shift(offset float64, v hamiltonian.Potential) (hamiltonian.Potential, error) {
	if err := requireFinite("offset", offset); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNilComponent
	}

	return func(x float64) float64 { return v(x - offset) }, nil
}
