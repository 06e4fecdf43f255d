package tridiag_test

import (
	"fmt"
	"math"

	"github.com/aidan-dc/NumericalQuantum-APMTH205/tridiag"
	"gonum.org/v1/gonum/floats"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolveLowest
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Extract the three lowest eigenpairs of the 9×9 discrete Laplacian
//	stencil (2 on the diagonal, -1 off). Its spectrum is known in closed
//	form, 2 − 2·cos(jπ/10), which makes the printed values easy to verify
//	by hand.
//
// Complexity: O(k·N·log(1/ε)) time, O(k·N) memory.
func ExampleSolveLowest() {
	n := 9
	main := make([]float64, n)
	off := make([]float64, n-1)
	for i := range main {
		main[i] = 2
	}
	for i := range off {
		off[i] = -1
	}

	m, err := tridiag.New(main, off)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := tridiag.SolveLowest(m, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for j, lam := range res.Values {
		fmt.Printf("λ%d = %.6f\n", j, lam)
	}
	fmt.Printf("‖v0‖ = %.4f\n", floats.Norm(res.Vectors[0], 2))
	// Output:
	// λ0 = 0.097887
	// λ1 = 0.381966
	// λ2 = 0.824429
	// ‖v0‖ = 1.0000
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleTridiag_CountBelow
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Probe the Sturm count of the same Laplacian stencil at three points.
//	The count is the number of eigenvalues strictly below the probe — the
//	oracle the bisection solver is built on.
//
// Complexity: O(N) time per probe, O(1) memory.
func ExampleTridiag_CountBelow() {
	n := 9
	main := make([]float64, n)
	off := make([]float64, n-1)
	for i := range main {
		main[i] = 2
	}
	for i := range off {
		off[i] = -1
	}

	m, err := tridiag.New(main, off)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	lo, hi := m.Gershgorin()
	fmt.Printf("bracket = [%.0f, %.0f]\n", lo, hi)
	fmt.Println("below 0.0:", m.CountBelow(0.0))
	fmt.Println("below 2.5:", m.CountBelow(2.5))
	fmt.Println("below 4.0:", m.CountBelow(4.0))
	// Output:
	// bracket = [0, 4]
	// below 0.0: 0
	// below 2.5: 5
	// below 4.0: 9
}

// ExampleNew_invalid shows the sentinel returned for a malformed shape;
// branch on it with errors.Is.
func ExampleNew_invalid() {
	_, err := tridiag.New([]float64{1, 2, 3}, []float64{1, 2, 3})
	fmt.Println(err)

	_, err = tridiag.New([]float64{1, math.NaN()}, []float64{0})
	fmt.Println(err)
	// Output:
	// tridiag: off-diagonal length must equal diagonal length minus one
	// tridiag: matrix entries must be finite
}
