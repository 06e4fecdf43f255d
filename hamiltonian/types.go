// Package hamiltonian - core types, options and sentinel errors for the
// grid discretizer.
package hamiltonian

import (
	"errors"
	"math"
)

// Sentinel errors returned by the hamiltonian package.
// Callers MUST branch with errors.Is; messages are prefixed "hamiltonian:".
var (
	// ErrInvalidDomain indicates a malformed domain: a and b must be
	// finite with a < b.
	ErrInvalidDomain = errors.New("hamiltonian: domain bounds must be finite with a < b")

	// ErrInvalidMesh indicates an unusable grid: fewer than one interior
	// point, a mesh not built via NewMesh, or a spacing so small that
	// dx⁻² overflows.
	ErrInvalidMesh = errors.New("hamiltonian: mesh must have ≥ 1 interior point and a representable spacing")

	// ErrInvalidMass indicates a non-positive or non-finite particle mass.
	ErrInvalidMass = errors.New("hamiltonian: mass must be positive and finite")

	// ErrInvalidHbar indicates a non-positive or non-finite ħ value.
	ErrInvalidHbar = errors.New("hamiltonian: hbar must be positive and finite")

	// ErrNilPotential indicates a nil potential callback.
	ErrNilPotential = errors.New("hamiltonian: potential must not be nil")

	// ErrPotentialNotFinite indicates the potential returned NaN or ±Inf
	// at some interior grid point. The offending coordinate is attached
	// via error wrapping.
	ErrPotentialNotFinite = errors.New("hamiltonian: potential evaluated to a non-finite value")
)

// Potential is a user-supplied potential energy function V(x).
//
// Contract: Discretize calls it exactly once per interior grid point, in
// ascending x order, and requires every returned value to be finite. The
// callback must be safe for that access pattern but needs no internal
// synchronization — calls are sequential.
type Potential func(x float64) float64

// Defaults — single source of truth for DefaultOptions.
const (
	// DefaultMass is the particle mass in natural units.
	DefaultMass = 1.0

	// DefaultHbar is the reduced Planck constant in natural units.
	DefaultHbar = 1.0
)

// Options carries the physical constants of the discretization.
// The zero value is invalid; start from DefaultOptions and override fields.
type Options struct {
	// Mass is the particle mass, > 0. It multiplies the potential term
	// inside the matrix and divides ħ in the final energy rescale.
	Mass float64

	// Hbar is the reduced Planck constant, > 0. It never enters the
	// matrix itself, only the ħ/mass energy rescale downstream.
	Hbar float64
}

// DefaultOptions returns natural units: Mass = 1, Hbar = 1.
func DefaultOptions() Options {
	return Options{Mass: DefaultMass, Hbar: DefaultHbar}
}

// validate checks the physical constants, mapping each violation to its
// sentinel.
func (o Options) validate() error {
	if o.Mass <= 0 || math.IsNaN(o.Mass) || math.IsInf(o.Mass, 0) {
		return ErrInvalidMass
	}
	if o.Hbar <= 0 || math.IsNaN(o.Hbar) || math.IsInf(o.Hbar, 0) {
		return ErrInvalidHbar
	}

	return nil
}
