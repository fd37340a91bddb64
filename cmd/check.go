package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gotruss/internal/loader"
	"github.com/alexiusacademia/gotruss/internal/statics"
	"github.com/spf13/cobra"
)

var checkFile string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that a truss is statically determinate",
	Long: `Count joints (j), bars (b) and support reactions (r) and apply the
determinacy rule b + r = 2j.

Supported constraints:
  free             - no restraint
  pin              - restrains x and y
  roller_no_xdisp  - restrains x
  roller_no_ydisp  - restrains y

A "fixed" constraint carries a moment and cannot be used in a pin-jointed
truss.

Examples:
  gotruss check -f pratt.yaml`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Truss file (.json, .yaml, .csv) [required]")
	checkCmd.MarkFlagRequired("file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	doc, err := loader.LoadFromFile(checkFile)
	if err != nil {
		return err
	}
	t, err := doc.Build()
	if err != nil {
		return err
	}

	count, err := statics.CheckDeterminacy(t)

	out := cmd.OutOrStdout()
	printHeader(out, "DETERMINACY CHECK - "+doc.Name)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Joints (j):\t%d\n", count.Nodes)
	fmt.Fprintf(w, "  Bars (b):\t%d\n", count.Bars)
	fmt.Fprintf(w, "  Reactions (r):\t%d\n", count.Reactions)
	fmt.Fprintf(w, "  b + r:\t%d\n", count.Unknowns())
	fmt.Fprintf(w, "  2j:\t%d\n", count.Equations())
	w.Flush()
	fmt.Fprintln(out)

	if err != nil {
		fmt.Fprintln(out, "  Status: ✗ NOT SOLVABLE")
		fmt.Fprintln(out)
		return err
	}
	fmt.Fprintln(out, "  Status: ✓ STATICALLY DETERMINATE")
	fmt.Fprintln(out)
	return nil
}
