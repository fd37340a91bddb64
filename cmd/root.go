package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gotruss/internal/logging"
	"github.com/alexiusacademia/gotruss/internal/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gotruss",
	Short: "Plane Truss Analysis Tool",
	Long: `gotruss - Go Plane Truss Solver

A CLI tool for the analysis of statically determinate plane trusses
by the method of joints.

This tool helps structural engineers perform:
  - Determinacy checks (b + r = 2j)
  - Support reaction calculation for pin and roller supports
  - Member axial forces with tension / compression classification
  - Load combination envelopes based on NSCP 2015 Section 203.3

Trusses are read from JSON, YAML or CSV files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gotruss v%-47s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Plane Truss Solver                                   ║")
		fmt.Fprintf(out, "  ║   %s ©  %-36s║\n", version.Author, version.Year)
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  A CLI tool for the analysis of statically determinate")
		fmt.Fprintln(out, "  plane trusses by the method of joints.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Determinacy check and support reactions")
		fmt.Fprintln(out, "    • Member forces with tension / compression")
		fmt.Fprintln(out, "    • NSCP load combinations and force envelopes")
		fmt.Fprintln(out, "    • Truss diagrams (png, svg, pdf) and terminal charts")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gotruss --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every resolved joint to stderr")
}

func newLogger() *slog.Logger {
	if verbose {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelWarn)
}
