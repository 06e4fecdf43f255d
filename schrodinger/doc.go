// Package schrodinger solves 1-D time-independent Schrödinger bound-state
// problems end to end: discretize, diagonalize, rescale.
//
// 🚀 The pipeline
//
//	Problem ──► hamiltonian.Discretize ──► tridiag.SolveLowest ──► Result
//
//	A Problem names a potential V, a hard-wall domain [A,B], an interior
//	resolution N, the number of bound states K, and the physical constants
//	Mass and Hbar. Solve builds the symmetric tridiagonal operator
//	T = -½∂² + Mass·V on the interior grid, extracts the K lowest
//	eigenpairs, and rescales mesh-unit eigenvalues into physical energies
//
//	    E_j = λ_j · Hbar / Mass.
//
//	ħ never enters the matrix itself — only this final rescale.
//
// ✨ Key features:
//   - one call from physics to spectrum; every stage's sentinel errors
//     (domain, mesh, mass, potential, convergence) pass through errors.Is
//   - states come back as unit-norm samples on the interior grid, paired
//     with the grid coordinates X and spacing Dx for plotting/integration
//   - eigensolver options (tolerance, workers, seed) forward untouched
//
// ⚙️ Usage:
//
//	v, _ := potential.Harmonic(1, 1)
//	res, err := schrodinger.Solve(schrodinger.Problem{
//	    V: v, A: -10, B: 10, N: 2_000, K: 3, Mass: 1,
//	})
//	if err != nil { … }
//	// res.Energies ≈ [0.5, 1.5, 2.5] — ħω(n+½) in natural units
//
// Accuracy: the three-point stencil converges as O(dx²) from below;
// double N to quarter the discretization error. The domain must be wide
// enough that bound states die off before the walls, or the hard-wall
// truncation dominates instead.
package schrodinger
