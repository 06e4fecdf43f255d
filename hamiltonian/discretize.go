// Package hamiltonian - three-point stencil discretization of
// T = -½·∂² + mass·V on the interior grid.
package hamiltonian

import (
	"fmt"
	"math"
)

// Hamiltonian is the discretized operator in compact symmetric tridiagonal
// form, together with the grid and constants it was built from.
//
// Main and Off follow the usual compact layout: Main has one entry per
// interior point, Off one entry per neighboring pair. Eigenvalues of this
// matrix are mesh-unit energies; multiply by Hbar/Mass for physical ones.
type Hamiltonian struct {
	Main []float64 // diagonal: dx⁻² + Mass·V(x_i), length Mesh.N()
	Off  []float64 // sub/super-diagonal: -½·dx⁻², length Mesh.N()-1

	Mesh Mesh    // interior grid the operator lives on
	Mass float64 // particle mass used in the potential term
	Hbar float64 // ħ for the downstream energy rescale
}

// Discretize builds the tridiagonal operator for potential v on mesh.
//
// The potential is evaluated exactly once per interior point, in ascending
// x order. Endpoints are Dirichlet walls and carry no rows.
//
// Errors:
//   - ErrNilPotential       — v is nil.
//   - ErrInvalidMesh        — mesh is the zero value (not from NewMesh).
//   - ErrInvalidMass        — opts.Mass outside (0, ∞).
//   - ErrInvalidHbar        — opts.Hbar outside (0, ∞).
//   - ErrPotentialNotFinite — v returned NaN or ±Inf; the offending x is
//     attached in the message.
//
// Complexity: O(N) time, O(N) memory.
func Discretize(v Potential, mesh Mesh, opts Options) (Hamiltonian, error) {
	if v == nil {
		return Hamiltonian{}, ErrNilPotential
	}
	if mesh.n < 1 {
		return Hamiltonian{}, fmt.Errorf("Discretize: zero-value mesh: %w", ErrInvalidMesh)
	}
	if err := opts.validate(); err != nil {
		return Hamiltonian{}, err
	}

	n := mesh.n
	inv2 := 1 / (mesh.dx * mesh.dx) // finite by NewMesh

	main := make([]float64, n)
	off := make([]float64, n-1)

	// Kinetic stencil: -½·(ψ_{i-1} - 2ψ_i + ψ_{i+1})/dx² contributes dx⁻²
	// on the diagonal and -½·dx⁻² off it.
	for i := range off {
		off[i] = -0.5 * inv2
	}

	var x, vx float64
	for i := 0; i < n; i++ {
		x = mesh.a + float64(i+1)*mesh.dx
		vx = v(x)
		if math.IsNaN(vx) || math.IsInf(vx, 0) {
			return Hamiltonian{}, fmt.Errorf("Discretize: V(%g) = %g: %w", x, vx, ErrPotentialNotFinite)
		}
		main[i] = inv2 + opts.Mass*vx
	}

	return Hamiltonian{Main: main, Off: off, Mesh: mesh, Mass: opts.Mass, Hbar: opts.Hbar}, nil
}
