// Package hamiltonian discretizes 1-D time-independent Schrödinger
// operators on a uniform grid with hard-wall (Dirichlet) boundaries.
//
// 🚀 What it builds
//
//	Given a potential V, a domain [a,b] and an interior resolution N, the
//	discretizer produces the symmetric tridiagonal matrix of the operator
//
//	    T = -½·∂²/∂x² + mass·V(x)
//
//	on the N interior grid points x_i = a + i·dx, dx = (b-a)/(N+1).
//	The second derivative is the standard three-point stencil, so
//
//	    Main[i] = dx⁻² + mass·V(x_{i+1})      (0 ≤ i < N)
//	    Off[i]  = -½·dx⁻²                     (0 ≤ i < N-1)
//
//	The wavefunction is pinned to zero at both endpoints; the endpoints
//	therefore carry no matrix rows. Eigenvalues of T are mesh-unit
//	energies — rescale by ħ/mass to get physical energies, which is what
//	the top-level solver does.
//
// ✨ Key features:
//   - immutable Mesh value describing the grid (endpoints, spacing, size)
//   - exactly one potential evaluation per interior point
//   - strict ingestion: invalid domains, meshes, masses and non-finite
//     potential values are rejected with sentinel errors, never folded
//     into NaN arithmetic downstream
//
// ⚙️ Usage:
//
//	mesh, err := hamiltonian.NewMesh(-15, 15, 100_000)
//	if err != nil { … }
//
//	v, err := potential.Harmonic(4, 3.5) // ½·m·ω²·x², or any func(float64) float64
//	if err != nil { … }
//
//	h, err := hamiltonian.Discretize(v, mesh, hamiltonian.Options{
//	    Mass: 4,
//	    Hbar: 6.626,
//	})
//	// h.Main, h.Off — compact tridiagonal, ready for an eigensolver
//
// Complexity: O(N) time and memory, dominated by the potential sweep.
package hamiltonian
