// Package schrodinger - the Problem/Result façade gluing discretizer and
// eigensolver.
package schrodinger

import (
	"github.com/aidan-dc/NumericalQuantum-APMTH205/hamiltonian"
	"github.com/aidan-dc/NumericalQuantum-APMTH205/tridiag"
)

// Problem describes one bound-state computation.
//
// All fields are required except Hbar, whose zero value selects natural
// units (ħ = 1). Mass has no such default: a zero mass is a physics error
// and is rejected, not papered over.
type Problem struct {
	V hamiltonian.Potential // potential energy V(x); must be non-nil

	A, B float64 // hard-wall domain, A < B
	N    int     // interior grid points, ≥ 1
	K    int     // bound states to extract, 1 ≤ K ≤ N

	Mass float64 // particle mass, > 0
	Hbar float64 // reduced Planck constant, > 0; zero ⇒ 1
}

// Result holds the K lowest states of a Problem.
type Result struct {
	// Energies are the physical energies λ·Hbar/Mass, non-decreasing.
	Energies []float64

	// States[j] is the unit-norm eigenstate paired with Energies[j],
	// sampled on the interior grid: States[j][i] = ψ_j(X[i]). Sign is
	// implementation defined; probability densities are sign-free.
	States [][]float64

	// X are the interior grid coordinates, ascending, length N.
	X []float64

	// Dx is the grid spacing (B-A)/(N+1).
	Dx float64
}

// Solve runs the full pipeline for p and forwards opts to the eigensolver
// (tolerance, iteration budgets, workers, seed — see package tridiag).
//
// Stage errors pass through unwrapped in meaning: hamiltonian.ErrInvalidDomain,
// ErrInvalidMesh, ErrInvalidMass, ErrInvalidHbar, ErrNilPotential,
// ErrPotentialNotFinite from discretization; tridiag.ErrBadEigenCount,
// ErrConvergence, ErrSingular from extraction. On error the Result is empty.
//
// Complexity: O(N) discretization + O(K·N·log(1/ε)) extraction.
func Solve(p Problem, opts ...tridiag.Option) (Result, error) {
	mesh, err := hamiltonian.NewMesh(p.A, p.B, p.N)
	if err != nil {
		return Result{}, err
	}

	hbar := p.Hbar
	if hbar == 0 {
		hbar = hamiltonian.DefaultHbar
	}

	h, err := hamiltonian.Discretize(p.V, mesh, hamiltonian.Options{Mass: p.Mass, Hbar: hbar})
	if err != nil {
		return Result{}, err
	}

	m, err := tridiag.New(h.Main, h.Off)
	if err != nil {
		return Result{}, err
	}

	eig, err := tridiag.SolveLowest(m, p.K, opts...)
	if err != nil {
		return Result{}, err
	}

	// Mesh-unit eigenvalues to physical energies.
	scale := h.Hbar / h.Mass
	energies := make([]float64, len(eig.Values))
	for j, lam := range eig.Values {
		energies[j] = lam * scale
	}

	return Result{
		Energies: energies,
		States:   eig.Vectors,
		X:        mesh.Interior(),
		Dx:       mesh.Dx(),
	}, nil
}
