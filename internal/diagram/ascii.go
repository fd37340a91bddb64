package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gotruss/internal/truss"
	"github.com/guptarohit/asciigraph"
)

// Member classification thresholds
const zeroForceTolerance = 1e-9

// Sense describes whether a bar is in tension, compression or carries no
// force.
type Sense int

const (
	ZeroForce Sense = iota
	Tension
	Compression
)

func (s Sense) String() string {
	switch s {
	case Tension:
		return "T"
	case Compression:
		return "C"
	}
	return "0"
}

// SenseOf classifies an axial load.
func SenseOf(load float64) Sense {
	switch {
	case load > zeroForceTolerance:
		return Tension
	case load < -zeroForceTolerance:
		return Compression
	}
	return ZeroForce
}

// DrawForceChart plots the axial load of every bar against its index.
func DrawForceChart(t *truss.Truss, height int) string {
	if len(t.Bars) == 0 {
		return ""
	}
	data := make([]float64, len(t.Bars))
	for i, b := range t.Bars {
		data[i] = b.AxialLoad
	}
	// asciigraph needs at least two points to draw a line
	if len(data) == 1 {
		data = append(data, data[0])
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Precision(2),
		asciigraph.Caption("axial load by bar index (+ tension, - compression)"),
	)
}

// DrawForceBars draws one horizontal bar per member, scaled to the largest
// absolute axial load. Tension grows to the right of the axis, compression
// to the left.
func DrawForceBars(t *truss.Truss, width int) string {
	var sb strings.Builder

	maxLoad := 0.0
	for _, b := range t.Bars {
		maxLoad = math.Max(maxLoad, math.Abs(b.AxialLoad))
	}
	scale := 0.0
	if maxLoad > 0 {
		scale = float64(width) / maxLoad
	}

	sb.WriteString("\n")
	sb.WriteString("  MEMBER FORCES\n")
	sb.WriteString("  ─────────────\n\n")

	for _, b := range t.Bars {
		n := int(math.Round(math.Abs(b.AxialLoad) * scale))
		left := strings.Repeat(" ", width)
		right := ""
		switch SenseOf(b.AxialLoad) {
		case Compression:
			left = strings.Repeat(" ", width-n) + strings.Repeat("▒", n)
		case Tension:
			right = strings.Repeat("█", n)
		}
		sb.WriteString(fmt.Sprintf("  %4d %s│%s %.2f %s\n", b.Index, left, right, b.AxialLoad, SenseOf(b.AxialLoad)))
	}

	sb.WriteString("\n")
	sb.WriteString("  ▒▒▒ = Compression   ███ = Tension\n")
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := runeLen(title)
	for _, line := range lines {
		if l := runeLen(line); l > maxLen {
			maxLen = l
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func runeLen(s string) int {
	return len([]rune(s))
}

func pad(s string, width int) string {
	if n := runeLen(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
