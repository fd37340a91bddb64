package joints

import (
	"math"

	"github.com/alexiusacademia/gotruss/internal/truss"
	"gonum.org/v1/gonum/mat"
)

// IsViable reports whether the unresolved bars at node can be solved from
// the node's equilibrium right now.
//
// With two unknowns the node needs either a computed reaction in a
// restrained direction or an already resolved bar. External loads are not
// consulted, so a loaded free node with exactly two bars waits until one of
// them is resolved from the other end.
func IsViable(t *truss.Truss, node int) bool {
	if node < 0 || node >= len(t.Nodes) {
		return false
	}
	unknown := t.UnknownBars(node)
	switch len(unknown) {
	case 1:
		return true
	case 2:
		if t.Nodes[node].HasKnownReaction() {
			return true
		}
		return len(t.Nodes[node].Bars) > len(unknown)
	}
	return false
}

// ResolveSingleUnknown solves the only unknown bar at node from the sum of
// forces along that bar's own axis.
func ResolveSingleUnknown(t *truss.Truss, node, bar int) error {
	cos, sin, err := t.Direction(node, bar)
	if err != nil {
		return err
	}
	if t.Bars[bar].Computed {
		return truss.Solvef("bar %d at node %d is already resolved", bar, node)
	}
	fx, fy, err := t.KnownForce(node, bar)
	if err != nil {
		return err
	}
	return t.Bars[bar].Resolve(-(fx*cos + fy*sin))
}

// ResolveTwoUnknowns solves two unknown bars at node from global x and y
// equilibrium:
//
//	[cos1 cos2] [F1]   [-Sx]
//	[sin1 sin2] [F2] = [-Sy]
//
// Direction cosines are measured from the global x-axis. The system is
// singular when the bars are collinear; a determinant below tol is
// reported as a SolveError.
func ResolveTwoUnknowns(t *truss.Truss, node, bar1, bar2 int, tol float64) error {
	if bar1 == bar2 {
		return truss.Inputf("node %d: cannot resolve bar %d against itself", node, bar1)
	}
	cos1, sin1, err := t.Direction(node, bar1)
	if err != nil {
		return err
	}
	cos2, sin2, err := t.Direction(node, bar2)
	if err != nil {
		return err
	}
	for _, b := range []int{bar1, bar2} {
		if t.Bars[b].Computed {
			return truss.Solvef("bar %d at node %d is already resolved", b, node)
		}
	}
	fx, fy, err := t.KnownForce(node, -1)
	if err != nil {
		return err
	}

	a := mat.NewDense(2, 2, []float64{
		cos1, cos2,
		sin1, sin2,
	})
	if det := mat.Det(a); math.Abs(det) < tol {
		return truss.Solvef("node %d: bars %d and %d are collinear, joint equations are singular (det = %g)",
			node, bar1, bar2, det)
	}

	var f mat.VecDense
	if err := f.SolveVec(a, mat.NewVecDense(2, []float64{-fx, -fy})); err != nil {
		return truss.Solvef("node %d: cannot solve bars %d and %d: %v", node, bar1, bar2, err)
	}

	if err := t.Bars[bar1].Resolve(f.AtVec(0)); err != nil {
		return err
	}
	return t.Bars[bar2].Resolve(f.AtVec(1))
}
