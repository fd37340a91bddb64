package statics

import (
	"testing"

	"github.com/alexiusacademia/gotruss/internal/testutils"
	"github.com/alexiusacademia/gotruss/internal/truss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		c    Count
		msg  string
	}{
		{"determinate", Count{Nodes: 3, Bars: 3, Reactions: 3}, ""},
		{"indeterminate", Count{Nodes: 3, Bars: 3, Reactions: 4}, "statically indeterminate"},
		{"unstable", Count{Nodes: 3, Bars: 3, Reactions: 2}, "unstable"},
		{"empty", Count{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Classify(tt.c)
			if tt.msg == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, truss.ErrDeterminacy)
			assert.Contains(t, err.Error(), tt.msg)

			// same counts, same verdict
			assert.Equal(t, err.Error(), Classify(tt.c).Error())
		})
	}
}

func TestCheckDeterminacy(t *testing.T) {
	c, err := CheckDeterminacy(testutils.Pratt(t))
	require.NoError(t, err)
	assert.Equal(t, Count{Nodes: 12, Bars: 21, Reactions: 3}, c)

	// roller becomes a pin: b + r = 2j + 1
	tr := testutils.RightTriangle(t)
	tr.Nodes[1].Constraint = truss.Pin
	c, err = CheckDeterminacy(tr)
	require.ErrorIs(t, err, truss.ErrDeterminacy)
	assert.Contains(t, err.Error(), "indeterminate")
	assert.Equal(t, c.Equations()+1, c.Unknowns())

	// roller freed: b + r = 2j - 1
	tr = testutils.RightTriangle(t)
	tr.Nodes[1].Constraint = truss.Free
	c, err = CheckDeterminacy(tr)
	require.ErrorIs(t, err, truss.ErrDeterminacy)
	assert.Contains(t, err.Error(), "unstable")
	assert.Equal(t, c.Equations()-1, c.Unknowns())
}

func TestCheckDeterminacyRejectsConstraints(t *testing.T) {
	tr := testutils.RightTriangle(t)
	tr.Nodes[2].Constraint = truss.Fixed
	_, err := CheckDeterminacy(tr)
	require.ErrorIs(t, err, truss.ErrInput)
	assert.Contains(t, err.Error(), "moment")

	tr = testutils.RightTriangle(t)
	tr.Nodes[2].Constraint = "hinge"
	_, err = CheckDeterminacy(tr)
	require.ErrorIs(t, err, truss.ErrInput)
	assert.Contains(t, err.Error(), `invalid constraint type "hinge"`)
}

func TestComputeReactionsRollerNoY(t *testing.T) {
	tr := testutils.LoadedTriangle(t)
	require.NoError(t, ComputeReactions(tr))

	pin, roller := tr.Nodes[0], tr.Nodes[1]
	assert.InDelta(t, -6, pin.XReaction.Value, 1e-12)
	assert.InDelta(t, 5.5, pin.YReaction.Value, 1e-12)
	assert.InDelta(t, 4.5, roller.YReaction.Value, 1e-12)
	assert.True(t, pin.XReaction.Known)
	assert.False(t, roller.XReaction.Known)
	assert.False(t, tr.Nodes[2].XReaction.Known)
	assert.False(t, tr.Nodes[2].YReaction.Known)

	assertGlobalEquilibrium(t, tr)
}

func TestComputeReactionsRollerNoX(t *testing.T) {
	tr := testutils.MustBuild(t,
		[]truss.Node{
			testutils.N(0, 0, 0, 0, 0, truss.Pin),
			testutils.N(1, 0, 3, 0, 0, truss.RollerNoX),
			testutils.N(2, 4, 0, 0, -10, truss.Free),
		},
		[]truss.Bar{testutils.B(0, 0, 1), testutils.B(1, 0, 2), testutils.B(2, 1, 2)},
	)
	require.NoError(t, ComputeReactions(tr))

	assert.InDelta(t, -40.0/3, tr.Nodes[1].XReaction.Value, 1e-12)
	assert.False(t, tr.Nodes[1].YReaction.Known)
	assert.InDelta(t, 40.0/3, tr.Nodes[0].XReaction.Value, 1e-12)
	assert.InDelta(t, 10, tr.Nodes[0].YReaction.Value, 1e-12)

	assertGlobalEquilibrium(t, tr)
}

func TestComputeReactionsUnsupportedSupports(t *testing.T) {
	tr := testutils.RightTriangle(t)
	tr.Nodes[1].Constraint = truss.Pin
	err := ComputeReactions(tr)
	require.ErrorIs(t, err, truss.ErrInput)
	assert.Contains(t, err.Error(), "found 2 pin(s) and 0 roller(s)")

	tr = testutils.RightTriangle(t)
	tr.Nodes[2].Constraint = truss.RollerNoX
	err = ComputeReactions(tr)
	require.ErrorIs(t, err, truss.ErrInput)
}

func TestComputeReactionsConcurrentRoller(t *testing.T) {
	// roller_no_ydisp straight above the pin: vertical reaction through the pin
	tr := testutils.MustBuild(t,
		[]truss.Node{
			testutils.N(0, 0, 0, 0, 0, truss.Pin),
			testutils.N(1, 0, 3, 0, 0, truss.RollerNoY),
			testutils.N(2, 4, 0, 0, -10, truss.Free),
		},
		[]truss.Bar{testutils.B(0, 0, 1), testutils.B(1, 0, 2), testutils.B(2, 1, 2)},
	)
	_, err := CheckDeterminacy(tr)
	require.NoError(t, err)

	err = ComputeReactions(tr)
	require.ErrorIs(t, err, truss.ErrDeterminacy)
	assert.Contains(t, err.Error(), "no moment arm")
}

func TestComputeReactionsTwiceFails(t *testing.T) {
	tr := testutils.RightTriangle(t)
	require.NoError(t, ComputeReactions(tr))
	require.ErrorIs(t, ComputeReactions(tr), truss.ErrInput)
}

func TestResidualOfSolvedTriangle(t *testing.T) {
	tr := testutils.LoadedTriangle(t)
	require.NoError(t, ComputeReactions(tr))
	for i, f := range []float64{6, -5.5, -7.5} {
		require.NoError(t, tr.Bars[i].Resolve(f))
	}

	worst, _, err := MaxResidual(tr)
	require.NoError(t, err)
	assert.InDelta(t, 0, worst, 1e-9)

	tr.Bars[2].AxialLoad = -5
	worst, at, err := MaxResidual(tr)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, worst, 1e-9)
	assert.Contains(t, []int{1, 2}, at)
}

func assertGlobalEquilibrium(t *testing.T, tr *truss.Truss) {
	t.Helper()
	var fx, fy, m float64
	for _, n := range tr.Nodes {
		nx := n.XLoad + n.XReaction.Or(0)
		ny := n.YLoad + n.YReaction.Or(0)
		fx += nx
		fy += ny
		m += n.X*ny - n.Y*nx
	}
	assert.InDelta(t, 0, fx, 1e-9, "sum Fx")
	assert.InDelta(t, 0, fy, 1e-9, "sum Fy")
	assert.InDelta(t, 0, m, 1e-9, "sum M")
}
