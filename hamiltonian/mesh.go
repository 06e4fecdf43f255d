// Package hamiltonian - uniform grid construction and accessors.
package hamiltonian

import (
	"fmt"
	"math"
)

// Mesh is an immutable uniform grid over [a, b] with n interior points.
//
// The full grid has n+2 points: index 0 is the endpoint a, indices 1..n are
// the interior, index n+1 is the endpoint b. Spacing is dx = (b-a)/(n+1).
// Construct via NewMesh; the zero value is not usable.
type Mesh struct {
	a, b float64 // domain endpoints, a < b
	n    int     // interior point count, ≥ 1
	dx   float64 // grid spacing
}

// NewMesh validates the domain and resolution and returns the grid.
//
// Errors:
//   - ErrInvalidDomain — a or b non-finite, or a ≥ b.
//   - ErrInvalidMesh   — n < 1, or the spacing is too small to square
//     without overflow (the kinetic stencil needs dx⁻²).
func NewMesh(a, b float64, n int) (Mesh, error) {
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) || a >= b {
		return Mesh{}, fmt.Errorf("NewMesh: [%g, %g]: %w", a, b, ErrInvalidDomain)
	}
	if n < 1 {
		return Mesh{}, fmt.Errorf("NewMesh: %d interior points: %w", n, ErrInvalidMesh)
	}

	dx := (b - a) / float64(n+1)
	inv2 := 1 / (dx * dx)
	if dx == 0 || math.IsInf(inv2, 0) {
		// (b-a)/(n+1) underflowed, or dx² left the exponent range.
		return Mesh{}, fmt.Errorf("NewMesh: spacing %g unusable: %w", dx, ErrInvalidMesh)
	}

	return Mesh{a: a, b: b, n: n, dx: dx}, nil
}

// A returns the left endpoint.
func (m Mesh) A() float64 { return m.a }

// B returns the right endpoint.
func (m Mesh) B() float64 { return m.b }

// N returns the number of interior points.
func (m Mesh) N() int { return m.n }

// Dx returns the grid spacing (b-a)/(N+1).
func (m Mesh) Dx() float64 { return m.dx }

// Point returns the coordinate of full-grid index i ∈ [0, N+1]:
// Point(0) == A(), Point(N+1) == B() exactly, interior points in between.
// Panics on an out-of-range index, mirroring slice semantics.
func (m Mesh) Point(i int) float64 {
	switch {
	case i < 0 || i > m.n+1:
		panic(fmt.Sprintf("hamiltonian: Point index %d out of range [0, %d]", i, m.n+1))
	case i == m.n+1:
		// a + (n+1)·dx can miss b by an ulp; pin the endpoint exactly.
		return m.b
	default:
		return m.a + float64(i)*m.dx
	}
}

// Interior returns a fresh slice of the n interior coordinates, ascending.
func (m Mesh) Interior() []float64 {
	xs := make([]float64, m.n)
	for i := range xs {
		xs[i] = m.a + float64(i+1)*m.dx
	}

	return xs
}
