package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gotruss/internal/joints"
	"github.com/alexiusacademia/gotruss/internal/loader"
	"github.com/alexiusacademia/gotruss/internal/loads"
	"github.com/alexiusacademia/gotruss/internal/truss"
	"github.com/spf13/cobra"
)

var (
	envelopeFile       string
	envelopeSimplified bool
	envelopeShowAll    bool
)

var envelopeCmd = &cobra.Command{
	Use:   "envelope",
	Short: "Member force envelope over NSCP load combinations",
	Long: `Solve the truss under every NSCP 2015 load combination and report, for
each bar, the largest tension and compression and the combination that
governs each.

Case loads are read from the "loads" section of the truss file. Node
loads given directly on a node are applied unfactored in every
combination.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  gotruss envelope -f roof.yaml
  gotruss envelope -f roof.yaml --simplified --all`,
	RunE: runEnvelope,
}

func init() {
	rootCmd.AddCommand(envelopeCmd)

	envelopeCmd.Flags().StringVarP(&envelopeFile, "file", "f", "", "Truss file (.json, .yaml, .csv) [required]")
	envelopeCmd.Flags().BoolVarP(&envelopeSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
	envelopeCmd.Flags().BoolVarP(&envelopeShowAll, "all", "a", false, "Show the force in every bar for every combination")
	envelopeCmd.Flags().IntVar(&solveMaxPasses, "max-passes", joints.DefaultMaxPasses, "Maximum sweeps over the joints")
	envelopeCmd.Flags().Float64Var(&solveTolerance, "tolerance", joints.DefaultTolerance, "Smallest determinant accepted at a two-unknown joint")

	envelopeCmd.MarkFlagRequired("file")
}

func runEnvelope(cmd *cobra.Command, args []string) error {
	doc, err := loader.LoadFromFile(envelopeFile)
	if err != nil {
		return err
	}
	base, err := doc.Build()
	if err != nil {
		return err
	}

	combos := loads.Combinations
	if envelopeSimplified {
		combos = loads.SimplifiedCombinations
	}

	solver := newSolver()
	env, err := loads.ComputeEnvelope(cmd.Context(), base, doc.CaseLoads(), combos, func(t *truss.Truss) error {
		_, err := solver.Analyze(t)
		return err
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printHeader(out, "NSCP 2015 MEMBER FORCE ENVELOPE - "+doc.Name)

	if envelopeShowAll {
		printSection(out, "AXIAL LOAD BY COMBINATION:")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprint(w, "  Bar")
		for _, c := range env.Combinations {
			fmt.Fprintf(w, "\t%s", c.ID)
		}
		fmt.Fprintln(w, "\t")
		for b := range base.Bars {
			fmt.Fprintf(w, "  %d", b)
			for _, t := range env.Solved {
				fmt.Fprintf(w, "\t%.3f", t.Bars[b].AxialLoad)
			}
			fmt.Fprintln(w, "\t")
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	printSection(out, "GOVERNING FORCES:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bar\tMax Tension\tCombo\tMax Compression\tCombo\n")
	fmt.Fprintf(w, "  ───\t───────────\t─────\t───────────────\t─────\n")
	for _, be := range env.Bars {
		fmt.Fprintf(w, "  %d\t%.3f\t%s\t%.3f\t%s\n",
			be.Bar, be.MaxTension, dash(be.TensionCombo), be.MaxCompression, dash(be.CompressionCombo))
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "COMBINATIONS:")
	fmt.Fprintln(out, rule)
	for _, c := range env.Combinations {
		fmt.Fprintf(out, "  %s  %s\n", c.ID, c.Description)
	}
	fmt.Fprintln(out)
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
