// Package tridiag extracts the lowest eigenpairs of symmetric tridiagonal
// matrices without forming a dense matrix or computing the full spectrum.
//
// 🚀 Why a partial solver?
//
//	Discretized 1-D operators (second-difference Laplacians, Schrödinger
//	Hamiltonians, chain models) are symmetric tridiagonal, often with
//	N ~ 10⁵ rows, while only a handful of low-lying eigenstates matter.
//	Dense diagonalization is O(N³); this package delivers the k smallest
//	eigenpairs in O(k·N·log(1/ε)) using classic bisection on the Sturm
//	count plus inverse iteration.
//
// ✨ Key features:
//   - compact (main, off) storage — the matrix is never densified
//   - Gershgorin bracketing + Sturm-count bisection per target rank
//   - exact power-of-two range normalization, so entries near the float64
//     limits (where off-diagonal squares overflow) are still solved correctly
//   - inverse iteration via the Thomas algorithm, O(N) per solve
//   - modified Gram–Schmidt re-orthogonalization inside degenerate clusters
//   - optional worker pool: target ranks are independent and embarrassingly
//     parallel (WithWorkers), deterministic per seed regardless of schedule
//
// ⚙️ Usage:
//
//	t, err := tridiag.New(main, off) // len(off) == len(main)-1
//	if err != nil { … }
//
//	res, err := tridiag.SolveLowest(t, 5,
//	    tridiag.WithWorkers(4),
//	    tridiag.WithTolerance(1e-12),
//	)
//	// res.Values  — 5 smallest eigenvalues, ascending
//	// res.Vectors — matching unit-norm eigenvectors, res.Vectors[j][i] = ⟨e_i, v_j⟩
//
// Performance:
//
//   - Time:   O(k·N·log(1/ε)) bisection + O(k·N) inverse iteration
//   - Memory: O(N) per in-flight rank (three scratch vectors)
//
// Eigenvector sign is not fixed by the eigenproblem and is implementation
// defined; callers comparing states should compare up to sign.
package tridiag
