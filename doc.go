// Package numericalquantum computes bound states of the one-dimensional
// time-independent Schrödinger equation — from finite-difference
// discretization to a deterministic partial tridiagonal eigensolver.
//
// 🚀 What is NumericalQuantum?
//
//	A small numeric stack that turns a potential V(x) on a hard-wall
//	interval into its lowest energy levels and wavefunctions:
//		• Potential catalog: harmonic, square/gaussian/double wells, Morse, ramps + combinators
//		• Discretizer: uniform mesh, central three-point stencil, Dirichlet walls
//		• Eigensolver: Gershgorin + Sturm bisection + inverse iteration, k smallest pairs only
//		• Top level: one Solve call from physics description to energies in physical units
//
// ✨ Why choose NumericalQuantum?
//
//   - Deterministic – fixed seeds and stable ordering give bitwise-identical
//     results at any worker count
//   - Partial by design – asks for k eigenpairs, pays O(k·N), never O(N³)
//   - Honest failure modes – sentinel errors for every malformed input,
//     no silent NaNs
//   - Pure Go numerics – gonum for vector kernels, no cgo, no LAPACK binding
//
// Under the hood, everything is organized under four subpackages:
//
//	potential/   — catalog of analytic potentials and combinators (Sum, Scale, Shift)
//	hamiltonian/ — mesh construction and symmetric tridiagonal discretization
//	tridiag/     — partial symmetric tridiagonal eigensolver
//	schrodinger/ — the high-level Problem → Solve → Result pipeline
//
// Quick ASCII example:
//
//	    V(x)
//	     │ \             / │
//	     │  \           /  │
//	     │   \_________/    │
//	     └────────────────── x
//	     a                  b
//
//	a well on [a, b]: hard walls at the ends, k lowest levels inside.
//
// Dive into the examples/ directory for runnable scenarios, or use the
// qwell command for YAML-driven solves from the shell.
//
//	go get github.com/aidan-dc/NumericalQuantum-APMTH205
package numericalquantum
