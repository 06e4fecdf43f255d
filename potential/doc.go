// SPDX-License-Identifier: MIT
// Package: numericalquantum/potential
//
// Package potential is a catalog of ready-made 1-D potential energy
// functions and combinators for composing them. Every constructor returns
// a plain hamiltonian.Potential, so catalog entries, hand-written closures
// and composed potentials are interchangeable at the discretizer boundary.
//
// The package offers the following families:
//
//   - Analytic model potentials:
//     – Harmonic:     ½·m·ω²·x², the quantum oscillator.
//     – SquareWell:   finite rectangular well, -depth inside |x| ≤ halfWidth.
//     – DoubleWell:   symmetric quartic h·((x/w)² - 1)², minima at ±w.
//     – GaussianWell: smooth well -depth·exp(-x²/(2w²)).
//     – Morse:        anharmonic bond potential D·(1 - e^(-a·(x-x₀)))².
//     – LinearRamp:   symmetric triangular well s·|x| (quantum bouncer).
//     – Constant:     uniform offset, mostly useful under Sum.
//   - Combinators:
//     – Sum:   pointwise sum of component potentials.
//     – Scale: multiply a potential by a constant factor.
//     – Shift: translate a potential along x.
//
// Guarantees:
//
//   - Constructors validate parameters eagerly and return ErrBadParameter
//     (or ErrNilComponent for combinators) before any grid work happens;
//     the returned closures themselves never fail.
//   - Returned potentials are finite on any physically sensible domain;
//     the one exception is Morse's exponential wall, which overflows to
//     +Inf far below its center and is then rejected by the discretizer's
//     finiteness check rather than silently folded into the matrix.
//   - Closures are stateless and safe for concurrent use.
package potential
