// SPDX-License-Identifier: MIT
// Package: numericalquantum/potential
//
// validators.go — shared parameter checks for catalog constructors.

package potential

import (
	"fmt"
	"math"
)

// requirePositive rejects values outside (0, ∞).
func requirePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s = %g must be positive and finite: %w", name, v, ErrBadParameter)
	}

	return nil
}

// requireFinite rejects NaN and ±Inf but allows any sign.
func requireFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s = %g must be finite: %w", name, v, ErrBadParameter)
	}

	return nil
}
