package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gotruss/internal/truss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kingPost = "testdata/kingpost.yaml"

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func solveJSONReport(t *testing.T, args ...string) solveReport {
	t.Helper()
	out, err := execute(t, append([]string{"solve", "--json"}, args...)...)
	require.NoError(t, err)

	var r solveReport
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	return r
}

func TestSolveUnfactored(t *testing.T) {
	r := solveJSONReport(t, "-f", kingPost)

	assert.Equal(t, "King post", r.Name)
	assert.Contains(t, r.Combination, "U (")
	assert.Equal(t, 2, r.Passes)
	assert.Equal(t, 8, r.Count.Equations())
	assert.Less(t, r.MaxResidual, 1e-9)

	want := []float64{10, 10, -12.5, -12.5, 5}
	require.Len(t, r.Bars, len(want))
	for i, f := range want {
		assert.InDelta(t, f, r.Bars[i].AxialLoad, 1e-9, "bar %d", i)
	}
	assert.Equal(t, "T", r.Bars[0].Sense)
	assert.Equal(t, "C", r.Bars[2].Sense)
	assert.InDelta(t, 5.0, r.Bars[2].Length, 1e-12)

	require.Len(t, r.Reactions, 3)
	assert.Equal(t, reactionReport{Node: 2, Direction: "x", Value: 0}, r.Reactions[0])
	assert.InDelta(t, 7.5, r.Reactions[1].Value, 1e-9)
	assert.InDelta(t, 7.5, r.Reactions[2].Value, 1e-9)
}

func TestSolveCombination(t *testing.T) {
	r := solveJSONReport(t, "-f", kingPost, "--combo", "2", "--simplified")

	assert.Equal(t, "2 (1.2D + 1.6L)", r.Combination)
	assert.InDelta(t, 40.0/3, r.Bars[0].AxialLoad, 1e-9)
	assert.InDelta(t, -50.0/3, r.Bars[3].AxialLoad, 1e-9)
	assert.InDelta(t, 8, r.Bars[4].AxialLoad, 1e-9)
}

func TestSolveTextReport(t *testing.T) {
	out, err := execute(t, "solve", "-f", kingPost, "--diagram", "--chart")
	require.NoError(t, err)

	assert.Contains(t, out, "METHOD OF JOINTS - King post")
	assert.Contains(t, out, "SUPPORT REACTIONS:")
	assert.Contains(t, out, "-12.5000")
	assert.Contains(t, out, "MEMBER FORCES")
	assert.Contains(t, out, "axial load by bar index")
	assert.Contains(t, out, "Zero-force:    0 bar(s)")
}

func TestSolveExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plots", "kingpost.svg")
	out, err := execute(t, "solve", "-f", kingPost, "-o", path, "--label", "index")
	require.NoError(t, err)
	assert.Contains(t, out, "Diagram exported to: "+path)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestSolveErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"missing file flag", []string{"solve"}, `required flag(s) "file" not set`},
		{"unknown combo", []string{"solve", "-f", kingPost, "--combo", "9"}, `unknown load combination "9"`},
		{"bad label", []string{"solve", "-f", kingPost, "--label", "colour"}, "unknown label mode"},
		{"unsupported file", []string{"solve", "-f", "truss.txt"}, "unsupported truss file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestSolveUnstable(t *testing.T) {
	_, err := execute(t, "solve", "-f", "testdata/unstable.json")
	require.ErrorIs(t, err, truss.ErrDeterminacy)
	assert.Contains(t, err.Error(), "unstable")
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "check", "-f", kingPost)
	require.NoError(t, err)
	assert.Contains(t, out, "STATICALLY DETERMINATE")

	out, err = execute(t, "check", "-f", "testdata/unstable.json")
	require.ErrorIs(t, err, truss.ErrDeterminacy)
	assert.Contains(t, out, "NOT SOLVABLE")
}

func TestEnvelope(t *testing.T) {
	out, err := execute(t, "envelope", "-f", kingPost, "--simplified", "--all")
	require.NoError(t, err)

	assert.Contains(t, out, "AXIAL LOAD BY COMBINATION:")
	assert.Contains(t, out, "GOVERNING FORCES:")
	assert.Contains(t, out, "13.333")
	assert.Contains(t, out, "-16.667")
	assert.Contains(t, out, "1.2D + 1.6L")
}

func TestCombos(t *testing.T) {
	out, err := execute(t, "combos")
	require.NoError(t, err)
	assert.Contains(t, out, "0.9D + 1.0W")
	assert.Contains(t, out, "(unfactored)")

	out, err = execute(t, "combos", "-s")
	require.NoError(t, err)
	assert.NotContains(t, out, "0.9D + 1.0W")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gotruss v")
}
