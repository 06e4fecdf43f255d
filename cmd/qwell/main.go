// Package main - qwell command line interface
// Solves bound-state scenarios described by YAML files: discretizes the
// potential on a uniform mesh, extracts the lowest eigenpairs and prints
// the energies, optionally dumping the wavefunctions as CSV.
package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aidan-dc/NumericalQuantum-APMTH205/cmd/qwell/config"
	"github.com/aidan-dc/NumericalQuantum-APMTH205/schrodinger"
	"github.com/aidan-dc/NumericalQuantum-APMTH205/tridiag"
)

var (
	// Global flags
	verbose      bool
	scenarioPath string
	statesOut    string
	workersFlag  int
	seedFlag     int64
	initOut      string
	forceInit    bool

	// Global logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "qwell",
	Short: "1-D quantum bound-state solver",
	Long: `qwell computes the lowest bound states of a one-dimensional
quantum well. A scenario file picks the potential, the hard-wall domain,
the mesh resolution and the physical constants; qwell discretizes the
Hamiltonian, solves the partial eigenproblem and reports the energies.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a scenario file and print the bound-state energies",
	RunE:  runSolve,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a template scenario file to get started",
	RunE:  runInit,
}

func runSolve(cmd *cobra.Command, args []string) error {
	scenario, err := config.Load(scenarioPath)
	if err != nil {
		return err
	}

	// Command-line overrides win over the scenario's solver block.
	opts := scenario.SolverOptions()
	if workersFlag < 0 {
		return fmt.Errorf("workers must be at least 1, got %d", workersFlag)
	}
	if workersFlag > 0 {
		opts = append(opts, tridiag.WithWorkers(workersFlag))
	}
	if seedFlag != 0 {
		opts = append(opts, tridiag.WithSeed(seedFlag))
	}

	prob, err := scenario.BuildProblem()
	if err != nil {
		return err
	}

	logger.Info("solving scenario",
		zap.String("path", scenarioPath),
		zap.String("potential", scenario.Potential.Kind),
		zap.Int("points", prob.N),
		zap.Int("states", prob.K))

	start := time.Now()
	res, err := schrodinger.Solve(prob, opts...)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}
	logger.Info("solve complete",
		zap.Duration("elapsed", time.Since(start)),
		zap.Float64("ground_state", res.Energies[0]))

	fmt.Printf("# %s potential on [%g, %g], %d interior points, dx = %.6g\n",
		scenario.Potential.Kind, prob.A, prob.B, prob.N, res.Dx)
	for j, e := range res.Energies {
		fmt.Printf("E[%d] = %.10g\n", j, e)
	}

	if statesOut != "" {
		if err := writeStates(statesOut, res); err != nil {
			return fmt.Errorf("failed to write wavefunctions: %w", err)
		}
		logger.Info("wavefunctions written",
			zap.String("path", statesOut),
			zap.Int("rows", len(res.X)))
	}

	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(initOut); err == nil && !forceInit {
		return fmt.Errorf("%s already exists (use --force to overwrite)", initOut)
	}

	if err := config.Default().Save(initOut); err != nil {
		return err
	}
	logger.Info("scenario template written", zap.String("path", initOut))
	fmt.Printf("Wrote %s\n", initOut)

	return nil
}

// writeStates dumps the mesh and the wavefunction samples as CSV with one
// row per mesh point: x, psi0, psi1, ...
func writeStates(path string, res schrodinger.Result) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, len(res.States)+1)
	header = append(header, "x")
	for j := range res.States {
		header = append(header, fmt.Sprintf("psi%d", j))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i, x := range res.X {
		row[0] = strconv.FormatFloat(x, 'g', -1, 64)
		for j := range res.States {
			row[j+1] = strconv.FormatFloat(res.States[j][i], 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	// Solve command flags
	solveCmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "Path to the scenario YAML file (required)")
	solveCmd.Flags().StringVar(&statesOut, "states-out", "", "Optional CSV path for the wavefunction samples")
	solveCmd.Flags().IntVar(&workersFlag, "workers", 0, "Override the scenario's worker count")
	solveCmd.Flags().Int64Var(&seedFlag, "seed", 0, "Override the scenario's start-vector seed")
	solveCmd.MarkFlagRequired("scenario")

	// Init command flags
	initCmd.Flags().StringVarP(&initOut, "output", "o", "scenario.yaml", "Where to write the template")
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file")

	// Add commands
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
