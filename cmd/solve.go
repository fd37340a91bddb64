package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alexiusacademia/gotruss/internal/diagram"
	"github.com/alexiusacademia/gotruss/internal/joints"
	"github.com/alexiusacademia/gotruss/internal/loader"
	"github.com/alexiusacademia/gotruss/internal/loads"
	"github.com/spf13/cobra"
)

var (
	solveFile string

	// Solver options
	solveCombo      string
	solveMaxPasses  int
	solveTolerance  float64
	solveSimplified bool

	// Output options
	solveShowDiagram bool
	solveShowChart   bool
	solveJSON        bool
	solveExportFile  string
	solveLabel       string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve support reactions and member forces",
	Long: `Solve a statically determinate plane truss by the method of joints.

The support reactions are found first from global equilibrium (moments
about the pin give the roller reaction). The solver then sweeps the joints
in index order and resolves every joint that has at most two unknown bar
forces, until every bar is known.

Positive axial loads are tension, negative are compression.

Case loads in the file are combined with --combo (NSCP 2015 Section 203.3).
Without --combo every case is applied unfactored.

Examples:
  # Solve and print reactions and member forces
  gotruss solve -f pratt.yaml

  # Apply combination 2 (1.2D + 1.6L + 0.5(Lr or R)) and draw the forces
  gotruss solve -f pratt.yaml --combo 2 --diagram

  # Export a diagram labelled with bar forces
  gotruss solve -f pratt.yaml -o pratt.png --label force

  # Machine-readable output
  gotruss solve -f pratt.yaml --json`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "Truss file (.json, .yaml, .csv) [required]")

	solveCmd.Flags().StringVar(&solveCombo, "combo", "", "Load combination ID (see 'gotruss combos'), U for unfactored")
	solveCmd.Flags().BoolVarP(&solveSimplified, "simplified", "s", false, "Look up --combo in the simplified gravity combinations")
	solveCmd.Flags().IntVar(&solveMaxPasses, "max-passes", joints.DefaultMaxPasses, "Maximum sweeps over the joints")
	solveCmd.Flags().Float64Var(&solveTolerance, "tolerance", joints.DefaultTolerance, "Smallest determinant accepted at a two-unknown joint")

	solveCmd.Flags().BoolVarP(&solveShowDiagram, "diagram", "d", false, "Show ASCII member force diagram")
	solveCmd.Flags().BoolVar(&solveShowChart, "chart", false, "Show ASCII chart of axial load by bar index")
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "Print the result as JSON")
	solveCmd.Flags().StringVarP(&solveExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
	solveCmd.Flags().StringVar(&solveLabel, "label", string(diagram.LabelForce), "Diagram labels: index, force or none")

	solveCmd.MarkFlagRequired("file")
}

func combinationFor(id string, simplified bool) (loads.Combination, error) {
	if id == "" {
		return loads.Unfactored, nil
	}
	table := loads.Combinations
	if simplified {
		table = loads.SimplifiedCombinations
	}
	return loads.Lookup(id, table)
}

func newSolver() *joints.Solver {
	return joints.NewSolver(
		joints.WithMaxPasses(solveMaxPasses),
		joints.WithTolerance(solveTolerance),
		joints.WithLogger(newLogger()),
	)
}

func runSolve(cmd *cobra.Command, args []string) error {
	mode, err := diagram.ParseLabelMode(solveLabel)
	if err != nil {
		return err
	}
	combo, err := combinationFor(solveCombo, solveSimplified)
	if err != nil {
		return err
	}

	doc, err := loader.LoadFromFile(solveFile)
	if err != nil {
		return err
	}
	t, err := doc.BuildFor(combo)
	if err != nil {
		return err
	}

	analysis, err := newSolver().Analyze(t)
	if err != nil {
		return err
	}

	report, err := newSolveReport(doc.Name, fmt.Sprintf("%s (%s)", combo.ID, combo.Description), t, analysis)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if solveJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		printSolveReport(out, report)

		if solveShowDiagram {
			fmt.Fprintln(out, diagram.DrawForceBars(t, 30))
		}
		if solveShowChart {
			fmt.Fprintln(out, diagram.DrawForceChart(t, 10))
			fmt.Fprintln(out)
		}
	}

	// Export diagram if requested
	if solveExportFile != "" {
		if err := diagram.ExportTrussDiagram(t, doc.Name, mode, solveExportFile); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		if !solveJSON {
			fmt.Fprintf(out, "Diagram exported to: %s\n", solveExportFile)
		}
	}
	return nil
}
