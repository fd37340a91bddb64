package testutils

import (
	"testing"

	"github.com/alexiusacademia/gotruss/internal/truss"
	"github.com/stretchr/testify/require"
)

// N is shorthand for a node without reactions.
func N(index int, x, y, fx, fy float64, c truss.Constraint) truss.Node {
	return truss.Node{Index: index, X: x, Y: y, XLoad: fx, YLoad: fy, Constraint: c}
}

// B is shorthand for an unresolved bar.
func B(index, init, end int) truss.Bar {
	return truss.Bar{Index: index, Init: init, End: end}
}

// MustBuild builds a truss and fails the test on error.
func MustBuild(t *testing.T, nodes []truss.Node, bars []truss.Bar) *truss.Truss {
	t.Helper()
	tr, err := truss.New(nodes, bars)
	require.NoError(t, err, "failed to build truss")
	return tr
}

// RightTriangle is a 3-4-5 triangle: pin at the origin, roller_no_ydisp at
// (4,0) and a free apex at (0,3) carrying a downward load of 10.
//
//	bar 0: 0-1 (horizontal), bar 1: 0-2 (vertical), bar 2: 1-2 (diagonal)
func RightTriangle(t *testing.T) *truss.Truss {
	t.Helper()
	return MustBuild(t,
		[]truss.Node{
			N(0, 0, 0, 0, 0, truss.Pin),
			N(1, 4, 0, 0, 0, truss.RollerNoY),
			N(2, 0, 3, 0, -10, truss.Free),
		},
		[]truss.Bar{B(0, 0, 1), B(1, 0, 2), B(2, 1, 2)},
	)
}

// LoadedTriangle is RightTriangle with an extra horizontal load of 6 at
// the apex, so that every bar carries force.
func LoadedTriangle(t *testing.T) *truss.Truss {
	t.Helper()
	return MustBuild(t,
		[]truss.Node{
			N(0, 0, 0, 0, 0, truss.Pin),
			N(1, 4, 0, 0, 0, truss.RollerNoY),
			N(2, 0, 3, 6, -10, truss.Free),
		},
		[]truss.Bar{B(0, 0, 1), B(1, 0, 2), B(2, 1, 2)},
	)
}

// KingPost is a two-panel truss whose top node has index 0 and three
// bars, and whose bottom middle node has index 1 and three bars, so the
// solve order cannot follow node indices.
//
//	      0 (4,3)  load (0,-10)
//	     /|\
//	    / | \
//	   2--1--3     2 = pin (0,0), 1 = (4,0) load (0,-5), 3 = roller_no_ydisp (8,0)
//
//	bar 0: 2-1, bar 1: 1-3, bar 2: 2-0, bar 3: 0-3, bar 4: 0-1
func KingPost(t *testing.T) *truss.Truss {
	t.Helper()
	return MustBuild(t,
		[]truss.Node{
			N(0, 4, 3, 0, -10, truss.Free),
			N(1, 4, 0, 0, -5, truss.Free),
			N(2, 0, 0, 0, 0, truss.Pin),
			N(3, 8, 0, 0, 0, truss.RollerNoY),
		},
		[]truss.Bar{B(0, 2, 1), B(1, 1, 3), B(2, 2, 0), B(3, 0, 3), B(4, 0, 1)},
	)
}

// Pratt is a six-panel Pratt truss, 24 long and 4 deep, pinned at the
// left end and on a roller_no_ydisp at the right, with 10 downward at each
// interior bottom chord joint.
//
// Bottom chord nodes 0..6 at x = 0,4,...,24; top chord nodes 7..11 above
// bottom nodes 1..5.
func Pratt(t *testing.T) *truss.Truss {
	t.Helper()
	var nodes []truss.Node
	for i := 0; i <= 6; i++ {
		c := truss.Free
		switch i {
		case 0:
			c = truss.Pin
		case 6:
			c = truss.RollerNoY
		}
		fy := -10.0
		if i == 0 || i == 6 {
			fy = 0
		}
		nodes = append(nodes, N(i, float64(4*i), 0, 0, fy, c))
	}
	for i := 1; i <= 5; i++ {
		nodes = append(nodes, N(6+i, float64(4*i), 4, 0, 0, truss.Free))
	}

	var bars []truss.Bar
	add := func(a, b int) {
		bars = append(bars, B(len(bars), a, b))
	}
	top := func(i int) int { return 6 + i }

	// bottom chord
	for i := 0; i < 6; i++ {
		add(i, i+1)
	}
	// top chord
	for i := 1; i < 5; i++ {
		add(top(i), top(i+1))
	}
	// end posts
	add(0, top(1))
	add(6, top(5))
	// verticals
	for i := 1; i <= 5; i++ {
		add(i, top(i))
	}
	// diagonals slope down towards midspan
	add(top(1), 2)
	add(top(2), 3)
	add(top(4), 3)
	add(top(5), 4)

	return MustBuild(t, nodes, bars)
}
