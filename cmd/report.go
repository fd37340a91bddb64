package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/gotruss/internal/diagram"
	"github.com/alexiusacademia/gotruss/internal/joints"
	"github.com/alexiusacademia/gotruss/internal/statics"
	"github.com/alexiusacademia/gotruss/internal/truss"
)

const rule = "───────────────────────────────────────────────────────────────"

func printHeader(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "     %s\n", title)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
}

func printSection(out io.Writer, title string) {
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, rule)
}

// reactionReport is one support reaction component.
type reactionReport struct {
	Node      int     `json:"node"`
	Direction string  `json:"direction"`
	Value     float64 `json:"value"`
}

// barReport is the solved state of one bar.
type barReport struct {
	Index     int     `json:"index"`
	Init      int     `json:"init"`
	End       int     `json:"end"`
	Length    float64 `json:"length"`
	AxialLoad float64 `json:"axial_load"`
	Sense     string  `json:"sense"`
}

// solveReport is the machine-readable form of a solved truss.
type solveReport struct {
	Name        string           `json:"name"`
	Combination string           `json:"combination"`
	Count       statics.Count    `json:"count"`
	Passes      int              `json:"passes"`
	MaxResidual float64          `json:"max_residual"`
	Reactions   []reactionReport `json:"reactions"`
	Bars        []barReport      `json:"bars"`
	Steps       []joints.Step    `json:"steps"`
}

func reactions(t *truss.Truss) []reactionReport {
	var out []reactionReport
	for _, n := range t.Nodes {
		if n.XReaction.Known {
			out = append(out, reactionReport{Node: n.Index, Direction: "x", Value: n.XReaction.Value})
		}
		if n.YReaction.Known {
			out = append(out, reactionReport{Node: n.Index, Direction: "y", Value: n.YReaction.Value})
		}
	}
	return out
}

func bars(t *truss.Truss) ([]barReport, error) {
	out := make([]barReport, len(t.Bars))
	for i, b := range t.Bars {
		l, err := t.Length(i)
		if err != nil {
			return nil, err
		}
		out[i] = barReport{
			Index:     b.Index,
			Init:      b.Init,
			End:       b.End,
			Length:    l,
			AxialLoad: b.AxialLoad,
			Sense:     diagram.SenseOf(b.AxialLoad).String(),
		}
	}
	return out, nil
}

func newSolveReport(name, combo string, t *truss.Truss, a *joints.Analysis) (*solveReport, error) {
	br, err := bars(t)
	if err != nil {
		return nil, err
	}
	return &solveReport{
		Name:        name,
		Combination: combo,
		Count:       a.Count,
		Passes:      a.Passes,
		MaxResidual: a.MaxResidual,
		Reactions:   reactions(t),
		Bars:        br,
		Steps:       a.Steps,
	}, nil
}

func printSolveReport(out io.Writer, r *solveReport) {
	printHeader(out, "METHOD OF JOINTS - "+r.Name)

	printSection(out, "SUPPORT REACTIONS:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Node\tDir\tReaction\n")
	fmt.Fprintf(w, "  ────\t───\t────────\n")
	for _, re := range r.Reactions {
		fmt.Fprintf(w, "  %d\t%s\t%.4f\n", re.Node, re.Direction, re.Value)
	}
	w.Flush()
	fmt.Fprintln(out)

	printSection(out, "MEMBER FORCES:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bar\tJoints\tLength\tAxial Load\t\n")
	fmt.Fprintf(w, "  ───\t──────\t──────\t──────────\t\n")
	for _, b := range r.Bars {
		fmt.Fprintf(w, "  %d\t%d-%d\t%.3f\t%.4f\t%s\n", b.Index, b.Init, b.End, b.Length, b.AxialLoad, b.Sense)
	}
	w.Flush()
	fmt.Fprintln(out)

	tension, compression, zero := 0, 0, 0
	for _, b := range r.Bars {
		switch b.Sense {
		case diagram.Tension.String():
			tension++
		case diagram.Compression.String():
			compression++
		default:
			zero++
		}
	}

	fmt.Fprint(out, diagram.DrawSummaryBox("RESULT", []string{
		fmt.Sprintf("Combination:   %s", r.Combination),
		fmt.Sprintf("b + r = 2j:    %d + %d = %d", r.Count.Bars, r.Count.Reactions, r.Count.Equations()),
		fmt.Sprintf("Passes:        %d", r.Passes),
		fmt.Sprintf("Tension:       %d bar(s)", tension),
		fmt.Sprintf("Compression:   %d bar(s)", compression),
		fmt.Sprintf("Zero-force:    %d bar(s)", zero),
		fmt.Sprintf("Max residual:  %.3g", r.MaxResidual),
	}))
	fmt.Fprintln(out)
}
