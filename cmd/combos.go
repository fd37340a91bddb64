package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gotruss/internal/loads"
	"github.com/spf13/cobra"
)

var combosSimplified bool

var combosCmd = &cobra.Command{
	Use:   "combos",
	Short: "List the NSCP load combinations",
	Long: `List the NSCP 2015 Section 203.3 load combinations and their factors.
The IDs are the values accepted by 'gotruss solve --combo'.`,
	Run: runCombos,
}

func init() {
	rootCmd.AddCommand(combosCmd)

	combosCmd.Flags().BoolVarP(&combosSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

func runCombos(cmd *cobra.Command, args []string) {
	combinations := loads.Combinations
	if combosSimplified {
		combinations = loads.SimplifiedCombinations
	}
	combinations = append(combinations[:len(combinations):len(combinations)], loads.Unfactored)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "  #\tCombination")
	for _, c := range loads.Cases {
		fmt.Fprintf(w, "\t%s", c)
	}
	fmt.Fprintln(w, "\t")
	fmt.Fprint(w, "  ─\t───────────")
	for range loads.Cases {
		fmt.Fprint(w, "\t───")
	}
	fmt.Fprintln(w, "\t")

	for _, combo := range combinations {
		fmt.Fprintf(w, "  %s\t%s", combo.ID, combo.Description)
		for _, c := range loads.Cases {
			fmt.Fprintf(w, "\t%.1f", combo.Factor(c))
		}
		fmt.Fprintln(w, "\t")
	}
	w.Flush()
	fmt.Fprintln(out)
}
