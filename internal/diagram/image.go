package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gotruss/internal/truss"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// LabelMode selects what is written next to nodes and bars.
type LabelMode string

const (
	LabelIndex LabelMode = "index"
	LabelForce LabelMode = "force"
	LabelNone  LabelMode = "none"
)

// ParseLabelMode validates a label mode flag value.
func ParseLabelMode(s string) (LabelMode, error) {
	switch m := LabelMode(strings.ToLower(s)); m {
	case LabelIndex, LabelForce, LabelNone:
		return m, nil
	}
	return "", fmt.Errorf("unknown label mode %q (expected index, force or none)", s)
}

var (
	tensionColor     = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	compressionColor = color.RGBA{R: 30, G: 60, B: 200, A: 255}
	zeroColor        = color.Gray{Y: 150}
	unsolvedColor    = color.Black
	supportColor     = color.RGBA{R: 0, G: 120, B: 0, A: 255}
)

func barColor(b truss.Bar) color.Color {
	if !b.Computed {
		return unsolvedColor
	}
	switch SenseOf(b.AxialLoad) {
	case Tension:
		return tensionColor
	case Compression:
		return compressionColor
	}
	return zeroColor
}

// BuildTrussPlot draws the truss geometry: bars coloured by force sense,
// supports as glyphs and optional labels.
func BuildTrussPlot(t *truss.Truss, title string, mode LabelMode) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for _, b := range t.Bars {
		a, e := t.Nodes[b.Init], t.Nodes[b.End]
		line, err := plotter.NewLine(plotter.XYs{{X: a.X, Y: a.Y}, {X: e.X, Y: e.Y}})
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = barColor(b)
		if b.Computed && SenseOf(b.AxialLoad) == ZeroForce {
			line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		}
		p.Add(line)
	}

	// Joints
	pts := make(plotter.XYs, len(t.Nodes))
	for i, n := range t.Nodes {
		pts[i] = plotter.XY{X: n.X, Y: n.Y}
	}
	joints, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	joints.GlyphStyle.Color = color.Black
	joints.GlyphStyle.Radius = vg.Points(3)
	joints.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(joints)

	// Supports
	for _, n := range t.Nodes {
		var shape draw.GlyphDrawer
		switch n.Constraint {
		case truss.Pin:
			shape = draw.PyramidGlyph{}
		case truss.RollerNoX, truss.RollerNoY:
			shape = draw.RingGlyph{}
		default:
			continue
		}
		s, err := plotter.NewScatter(plotter.XYs{{X: n.X, Y: n.Y}})
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = supportColor
		s.GlyphStyle.Radius = vg.Points(7)
		s.GlyphStyle.Shape = shape
		p.Add(s)
	}

	padAxes(p, t)
	if mode == LabelNone {
		return p, nil
	}

	var xys plotter.XYs
	var text []string
	for _, b := range t.Bars {
		a, e := t.Nodes[b.Init], t.Nodes[b.End]
		xys = append(xys, plotter.XY{X: (a.X + e.X) / 2, Y: (a.Y + e.Y) / 2})
		switch {
		case mode == LabelForce && b.Computed:
			text = append(text, fmt.Sprintf("%.2f", b.AxialLoad))
		case mode == LabelForce:
			text = append(text, "?")
		default:
			text = append(text, fmt.Sprintf("b%d", b.Index))
		}
	}
	if mode == LabelIndex {
		for _, n := range t.Nodes {
			xys = append(xys, plotter.XY{X: n.X, Y: n.Y})
			text = append(text, fmt.Sprintf(" n%d", n.Index))
		}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: text})
	if err != nil {
		return nil, err
	}
	p.Add(labels)
	return p, nil
}

// padAxes adds a margin around the truss so glyphs and labels are not
// clipped.
func padAxes(p *plot.Plot, t *truss.Truss) {
	if len(t.Nodes) == 0 {
		return
	}
	minX, maxX := t.Nodes[0].X, t.Nodes[0].X
	minY, maxY := t.Nodes[0].Y, t.Nodes[0].Y
	for _, n := range t.Nodes {
		minX, maxX = math.Min(minX, n.X), math.Max(maxX, n.X)
		minY, maxY = math.Min(minY, n.Y), math.Max(maxY, n.Y)
	}
	margin := 0.1 * math.Max(maxX-minX, maxY-minY)
	if margin == 0 {
		margin = 1
	}
	p.X.Min, p.X.Max = minX-margin, maxX+margin
	p.Y.Min, p.Y.Max = minY-margin, maxY+margin
}

// ExportTrussDiagram exports a truss diagram to an image file
func ExportTrussDiagram(t *truss.Truss, title string, mode LabelMode, filename string) error {
	p, err := BuildTrussPlot(t, title, mode)
	if err != nil {
		return err
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
