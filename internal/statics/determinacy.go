package statics

import (
	"github.com/alexiusacademia/gotruss/internal/truss"
)

// Count holds the quantities of the determinacy identity b + r = 2j.
type Count struct {
	Nodes     int `json:"nodes"`     // j
	Bars      int `json:"bars"`      // b
	Reactions int `json:"reactions"` // r
}

// Unknowns returns b + r.
func (c Count) Unknowns() int { return c.Bars + c.Reactions }

// Equations returns 2j.
func (c Count) Equations() int { return 2 * c.Nodes }

// Classify applies b + r = 2j. It only depends on its arguments.
func Classify(c Count) error {
	switch {
	case c.Unknowns() < c.Equations():
		return truss.Determinacyf("truss is unstable: b + r = %d + %d < 2j = %d",
			c.Bars, c.Reactions, c.Equations())
	case c.Unknowns() > c.Equations():
		return truss.Determinacyf("truss is statically indeterminate and cannot be solved by the method of joints: b + r = %d + %d > 2j = %d",
			c.Bars, c.Reactions, c.Equations())
	}
	return nil
}

// ReactionCount returns the number of translations a constraint
// restrains. Moment restraints and unknown codes are input errors.
func ReactionCount(node int, c truss.Constraint) (int, error) {
	if !c.Known() {
		return 0, truss.Inputf("node %d has invalid constraint type %q", node, c)
	}
	if c == truss.Fixed {
		return 0, truss.Inputf("node %d: a truss cannot support a moment reaction", node)
	}
	n := 0
	for _, d := range []truss.Direction{truss.X, truss.Y} {
		if c.Restrains(d) {
			n++
		}
	}
	return n, nil
}

// CheckDeterminacy counts nodes, bars and valid reaction components and
// classifies the truss.
//
// Passing is necessary but not sufficient for stability: parallel or
// concurrent reaction lines are not detected here.
func CheckDeterminacy(t *truss.Truss) (Count, error) {
	c := Count{Nodes: len(t.Nodes), Bars: len(t.Bars)}
	for i := range t.Nodes {
		r, err := ReactionCount(i, t.Nodes[i].Constraint)
		if err != nil {
			return c, err
		}
		c.Reactions += r
	}
	return c, Classify(c)
}
