// Package config loads and validates qwell scenario files.
//
// A scenario is a YAML document naming the potential, the domain, the mesh
// resolution, the physical constants and optional eigensolver settings:
//
//	potential:
//	  kind: harmonic
//	  omega: 3.5
//	domain:
//	  a: -15
//	  b: 15
//	mesh:
//	  points: 100000
//	states: 5
//	mass: 4
//	hbar: 6.626
//	solver:
//	  tolerance: 1e-12
//	  workers: 4
//	  seed: 1
//
// Omitted fields inherit Default values; numeric physics validation is
// deferred to the library so there is exactly one source of truth for it.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aidan-dc/NumericalQuantum-APMTH205/hamiltonian"
	"github.com/aidan-dc/NumericalQuantum-APMTH205/potential"
	"github.com/aidan-dc/NumericalQuantum-APMTH205/schrodinger"
	"github.com/aidan-dc/NumericalQuantum-APMTH205/tridiag"
)

// Sentinel errors for scenario-level validation.
var (
	// ErrUnknownKind indicates an unrecognized potential.kind value.
	ErrUnknownKind = errors.New("config: unknown potential kind")

	// ErrInvalidSolver indicates an out-of-range solver setting in the
	// scenario file.
	ErrInvalidSolver = errors.New("config: invalid solver setting")
)

// Scenario is the root of a qwell YAML document.
type Scenario struct {
	Potential PotentialConfig `yaml:"potential"`
	Domain    DomainConfig    `yaml:"domain"`
	Mesh      MeshConfig      `yaml:"mesh"`
	States    int             `yaml:"states"`
	Mass      float64         `yaml:"mass"`
	Hbar      float64         `yaml:"hbar"`
	Solver    SolverConfig    `yaml:"solver"`
}

// PotentialConfig selects a catalog potential by kind. Only the parameters
// of the chosen kind are read; the rest may stay zero.
type PotentialConfig struct {
	// Kind is one of: harmonic, square, double, gaussian, morse, ramp, free.
	Kind string `yaml:"kind"`

	Omega  float64 `yaml:"omega,omitempty"`  // harmonic: angular frequency
	Depth  float64 `yaml:"depth,omitempty"`  // square/gaussian/morse: well depth
	Width  float64 `yaml:"width,omitempty"`  // square/double/gaussian: half-width resp. width
	Height float64 `yaml:"height,omitempty"` // double: barrier height
	Scale  float64 `yaml:"scale,omitempty"`  // morse: exponential steepness
	Center float64 `yaml:"center,omitempty"` // morse: minimum position
	Slope  float64 `yaml:"slope,omitempty"`  // ramp: linear slope
}

// DomainConfig is the hard-wall interval.
type DomainConfig struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
}

// MeshConfig is the grid resolution.
type MeshConfig struct {
	Points int `yaml:"points"`
}

// SolverConfig carries optional eigensolver overrides; zero values mean
// "use the library default".
type SolverConfig struct {
	Tolerance    float64 `yaml:"tolerance,omitempty"`
	MaxBisect    int     `yaml:"max_bisect,omitempty"`
	InverseIters int     `yaml:"inverse_iters,omitempty"`
	Workers      int     `yaml:"workers,omitempty"`
	Seed         int64   `yaml:"seed,omitempty"`
}

// Default returns the natural-units harmonic oscillator scenario, the
// template emitted by `qwell init`.
func Default() *Scenario {
	return &Scenario{
		Potential: PotentialConfig{Kind: "harmonic", Omega: 1},
		Domain:    DomainConfig{A: -10, B: 10},
		Mesh:      MeshConfig{Points: 2_000},
		States:    3,
		Mass:      1,
		Hbar:      1,
	}
}

// Load reads a scenario file, layering it over Default so omitted fields
// keep their documented values. Unlike config loaders with optional files,
// a missing scenario is an error: the user named it explicitly.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Solver.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Save writes the scenario as YAML, creating parent directories as needed.
func (s *Scenario) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create scenario directory: %w", err)
		}
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scenario: %w", err)
	}

	return nil
}

// BuildPotential constructs the configured catalog potential.
// Parameter validation happens inside the potential package; this method
// only routes by kind.
func (s *Scenario) BuildPotential() (hamiltonian.Potential, error) {
	p := s.Potential
	switch p.Kind {
	case "harmonic":
		return potential.Harmonic(s.Mass, p.Omega)
	case "square":
		return potential.SquareWell(p.Depth, p.Width)
	case "double":
		return potential.DoubleWell(p.Height, p.Width)
	case "gaussian":
		return potential.GaussianWell(p.Depth, p.Width)
	case "morse":
		return potential.Morse(p.Depth, p.Scale, p.Center)
	case "ramp":
		return potential.LinearRamp(p.Slope)
	case "free":
		return potential.Constant(0)
	default:
		return nil, fmt.Errorf("%q: %w", p.Kind, ErrUnknownKind)
	}
}

// BuildProblem assembles the schrodinger.Problem described by the scenario.
func (s *Scenario) BuildProblem() (schrodinger.Problem, error) {
	v, err := s.BuildPotential()
	if err != nil {
		return schrodinger.Problem{}, err
	}

	return schrodinger.Problem{
		V: v,
		A: s.Domain.A, B: s.Domain.B,
		N: s.Mesh.Points, K: s.States,
		Mass: s.Mass, Hbar: s.Hbar,
	}, nil
}

// SolverOptions translates the solver block into eigensolver options.
// Only explicitly set fields produce options; validate has already
// rejected out-of-range values, so the WithX constructors cannot panic.
func (s *Scenario) SolverOptions() []tridiag.Option {
	var opts []tridiag.Option
	if s.Solver.Tolerance != 0 {
		opts = append(opts, tridiag.WithTolerance(s.Solver.Tolerance))
	}
	if s.Solver.MaxBisect != 0 {
		opts = append(opts, tridiag.WithMaxBisect(s.Solver.MaxBisect))
	}
	if s.Solver.InverseIters != 0 {
		opts = append(opts, tridiag.WithInverseIters(s.Solver.InverseIters))
	}
	if s.Solver.Workers != 0 {
		opts = append(opts, tridiag.WithWorkers(s.Solver.Workers))
	}
	if s.Solver.Seed != 0 {
		opts = append(opts, tridiag.WithSeed(s.Solver.Seed))
	}

	return opts
}

// validate rejects solver settings the option constructors would panic on.
func (c SolverConfig) validate() error {
	if c.Tolerance != 0 && (math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance < 0) {
		return fmt.Errorf("tolerance %g: %w", c.Tolerance, ErrInvalidSolver)
	}
	if c.MaxBisect < 0 {
		return fmt.Errorf("max_bisect %d: %w", c.MaxBisect, ErrInvalidSolver)
	}
	if c.InverseIters < 0 {
		return fmt.Errorf("inverse_iters %d: %w", c.InverseIters, ErrInvalidSolver)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalidSolver)
	}

	return nil
}
