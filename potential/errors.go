// SPDX-License-Identifier: MIT
// Package: numericalquantum/potential
//
// errors.go — sentinel errors for the potential catalog.
//
// Error policy (explicit and strict):
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach the offending parameter via %w wrapping.
//   • Returned closures never error: all validation is front-loaded.

package potential

import "errors"

// ErrBadParameter indicates a constructor parameter outside its documented
// range (non-positive width, non-finite coefficient, and so on).
// Usage: if errors.Is(err, potential.ErrBadParameter) { /* reject config */ }.
var ErrBadParameter = errors.New("potential: parameter out of range")

// ErrNilComponent indicates a combinator received a nil potential, or Sum
// received no components at all.
// Usage: if errors.Is(err, potential.ErrNilComponent) { /* fix wiring */ }.
var ErrNilComponent = errors.New("potential: nil or missing component potential")
