package statics

import (
	"math"

	"github.com/alexiusacademia/gotruss/internal/truss"
)

// Supports identifies the single pin and single roller of a truss.
type Supports struct {
	Pin    int
	Roller int
}

// FindSupports locates exactly one pin and one roller. Any other support
// arrangement is not handled by this solver.
func FindSupports(t *truss.Truss) (Supports, error) {
	s := Supports{Pin: -1, Roller: -1}
	var pins, rollers int
	for i := range t.Nodes {
		switch c := t.Nodes[i].Constraint; {
		case c == truss.Pin:
			s.Pin = i
			pins++
		case c.IsRoller():
			s.Roller = i
			rollers++
		}
	}
	if pins != 1 || rollers != 1 {
		return s, truss.Inputf("supports not handled by this solver: need exactly one pin and one roller, found %d pin(s) and %d roller(s)",
			pins, rollers)
	}
	return s, nil
}

// ComputeReactions solves the roller reaction from moments about the pin,
// then the pin component along the roller's free direction, then the pin
// component along the roller's restrained direction.
func ComputeReactions(t *truss.Truss) error {
	s, err := FindSupports(t)
	if err != nil {
		return err
	}
	pin := &t.Nodes[s.Pin]
	roller := &t.Nodes[s.Roller]

	// Moment of external loads about the pin, counter-clockwise positive.
	var moment, sumX, sumY float64
	for i := range t.Nodes {
		n := &t.Nodes[i]
		moment += n.YLoad*(n.X-pin.X) + n.XLoad*(pin.Y-n.Y)
		sumX += n.XLoad
		sumY += n.YLoad
	}

	// restrained is the roller's reaction direction, free the other one.
	restrained, free := truss.Y, truss.X
	arm := roller.X - pin.X
	if roller.Constraint == truss.RollerNoX {
		restrained, free = truss.X, truss.Y
		arm = pin.Y - roller.Y
	}
	if arm == 0 {
		return truss.Determinacyf("roller at node %d is concurrent with pin at node %d: its reaction has no moment arm",
			s.Roller, s.Pin)
	}

	rollerReaction := -moment / arm
	if err := roller.SetReaction(restrained, rollerReaction); err != nil {
		return err
	}

	sum := map[truss.Direction]float64{truss.X: sumX, truss.Y: sumY}
	if err := pin.SetReaction(free, -sum[free]); err != nil {
		return err
	}
	return pin.SetReaction(restrained, -sum[restrained]-rollerReaction)
}

// Residual returns the unbalanced force at a node: external load plus
// known reactions plus every resolved bar's pull. It is zero at every node
// of a correctly solved truss.
func Residual(t *truss.Truss, node int) (fx, fy float64, err error) {
	return t.KnownForce(node, -1)
}

// MaxResidual returns the largest residual magnitude over all nodes and
// the node where it occurs.
func MaxResidual(t *truss.Truss) (float64, int, error) {
	worst, at := 0.0, -1
	for i := range t.Nodes {
		fx, fy, err := Residual(t, i)
		if err != nil {
			return 0, -1, err
		}
		if r := math.Hypot(fx, fy); at < 0 || r > worst {
			worst, at = r, i
		}
	}
	return worst, at, nil
}
