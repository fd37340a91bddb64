package truss

import (
	"errors"
	"math"

	"github.com/alexiusacademia/gotruss/internal/geometry"
)

// Truss is an arena of nodes and bars. All relationships between them are
// integer indices into Nodes and Bars.
type Truss struct {
	Nodes []Node `json:"nodes"`
	Bars  []Bar  `json:"bars"`
}

// New builds a truss from nodes and bars whose Index fields match their
// slice positions. Incident-bar lists are rebuilt from the bar endpoints.
func New(nodes []Node, bars []Bar) (*Truss, error) {
	t := &Truss{
		Nodes: make([]Node, len(nodes)),
		Bars:  make([]Bar, len(bars)),
	}
	copy(t.Nodes, nodes)
	copy(t.Bars, bars)

	for i := range t.Nodes {
		n := &t.Nodes[i]
		if n.Index != i {
			return nil, Inputf("node at position %d has index %d", i, n.Index)
		}
		if !finite(n.X, n.Y) {
			return nil, Inputf("node %d has a non-finite location (%g, %g)", i, n.X, n.Y)
		}
		if !finite(n.XLoad, n.YLoad) {
			return nil, Inputf("node %d has a non-finite load (%g, %g)", i, n.XLoad, n.YLoad)
		}
		n.Bars = nil
	}

	for i := range t.Bars {
		b := &t.Bars[i]
		if b.Index != i {
			return nil, Inputf("bar at position %d has index %d", i, b.Index)
		}
		if b.Init < 0 || b.Init >= len(t.Nodes) || b.End < 0 || b.End >= len(t.Nodes) {
			return nil, Inputf("bar %d references missing node (%d, %d)", i, b.Init, b.End)
		}
		if b.Init == b.End {
			return nil, Inputf("bar %d connects node %d to itself", i, b.Init)
		}
		if _, err := t.Length(i); err != nil {
			return nil, err
		}
		t.Nodes[b.Init].Bars = append(t.Nodes[b.Init].Bars, i)
		t.Nodes[b.End].Bars = append(t.Nodes[b.End].Bars, i)
	}

	return t, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy that shares no state with t.
func (t *Truss) Clone() *Truss {
	c := &Truss{
		Nodes: make([]Node, len(t.Nodes)),
		Bars:  make([]Bar, len(t.Bars)),
	}
	copy(c.Bars, t.Bars)
	for i, n := range t.Nodes {
		n.Bars = append([]int(nil), n.Bars...)
		c.Nodes[i] = n
	}
	return c
}

func (t *Truss) node(i int) (*Node, error) {
	if i < 0 || i >= len(t.Nodes) {
		return nil, Inputf("node %d does not exist", i)
	}
	return &t.Nodes[i], nil
}

func (t *Truss) bar(i int) (*Bar, error) {
	if i < 0 || i >= len(t.Bars) {
		return nil, Inputf("bar %d does not exist", i)
	}
	return &t.Bars[i], nil
}

// Length returns the distance between the endpoints of a bar. A bar with
// coincident endpoints is an input error.
func (t *Truss) Length(bar int) (float64, error) {
	b, err := t.bar(bar)
	if err != nil {
		return 0, err
	}
	v, err := t.BarVector(b.Init, bar)
	if err != nil {
		return 0, err
	}
	l := geometry.TwoNorm(v)
	if l == 0 {
		return 0, Inputf("bar %d has zero length", bar)
	}
	return l, nil
}

// OtherNode returns the endpoint of bar that is not node.
func (t *Truss) OtherNode(node, bar int) (int, error) {
	b, err := t.bar(bar)
	if err != nil {
		return 0, err
	}
	switch node {
	case b.Init:
		return b.End, nil
	case b.End:
		return b.Init, nil
	}
	return 0, Inputf("node %d is not on bar %d", node, bar)
}

// SharedNode returns the node common to two bars.
func (t *Truss) SharedNode(bar1, bar2 int) (int, error) {
	b1, err := t.bar(bar1)
	if err != nil {
		return 0, err
	}
	b2, err := t.bar(bar2)
	if err != nil {
		return 0, err
	}
	switch {
	case b1.Init == b2.Init, b1.Init == b2.End:
		return b1.Init, nil
	case b1.End == b2.Init, b1.End == b2.End:
		return b1.End, nil
	}
	return 0, Inputf("bars %d and %d do not share a node", bar1, bar2)
}

// BarVector returns the vector from origin to the other endpoint of bar.
func (t *Truss) BarVector(origin, bar int) ([]float64, error) {
	other, err := t.OtherNode(origin, bar)
	if err != nil {
		return nil, err
	}
	o, err := t.node(origin)
	if err != nil {
		return nil, err
	}
	p := &t.Nodes[other]
	return []float64{p.X - o.X, p.Y - o.Y}, nil
}

// BarsToVectors returns the vectors of two bars pointing away from the
// node they share.
func (t *Truss) BarsToVectors(bar1, bar2 int) ([]float64, []float64, error) {
	shared, err := t.SharedNode(bar1, bar2)
	if err != nil {
		return nil, nil, err
	}
	v1, err := t.BarVector(shared, bar1)
	if err != nil {
		return nil, nil, err
	}
	v2, err := t.BarVector(shared, bar2)
	if err != nil {
		return nil, nil, err
	}
	return v1, v2, nil
}

// CosineBars returns the cosine of the angle from bar1 to bar2 about
// their shared node.
func (t *Truss) CosineBars(bar1, bar2 int) (float64, error) {
	v1, v2, err := t.BarsToVectors(bar1, bar2)
	if err != nil {
		return 0, err
	}
	c, err := geometry.Cosine(v1, v2)
	return c, t.wrapAngleErr(err, bar1, bar2)
}

// SineBars returns the signed sine of the angle from bar1 to bar2 about
// their shared node.
func (t *Truss) SineBars(bar1, bar2 int) (float64, error) {
	v1, v2, err := t.BarsToVectors(bar1, bar2)
	if err != nil {
		return 0, err
	}
	s, err := geometry.Sine(v1, v2)
	return s, t.wrapAngleErr(err, bar1, bar2)
}

// Direction returns the global direction cosines of bar measured from
// node.
func (t *Truss) Direction(node, bar int) (cos, sin float64, err error) {
	v, err := t.BarVector(node, bar)
	if err != nil {
		return 0, 0, err
	}
	cos, sin, err = geometry.Direction(v)
	if err != nil {
		return 0, 0, Inputf("bar %d has zero length at node %d", bar, node)
	}
	return cos, sin, nil
}

func (t *Truss) wrapAngleErr(err error, bar1, bar2 int) error {
	var zero *geometry.ZeroVectorError
	if errors.As(err, &zero) {
		return Inputf("angle between bars %d and %d is undefined: zero-length bar", bar1, bar2)
	}
	return err
}

// UnknownBars returns the indices of unresolved bars incident to node, in
// incidence order.
func (t *Truss) UnknownBars(node int) []int {
	if node < 0 || node >= len(t.Nodes) {
		return nil
	}
	var unknown []int
	for _, b := range t.Nodes[node].Bars {
		if !t.Bars[b].Computed {
			unknown = append(unknown, b)
		}
	}
	return unknown
}

// AllComputed reports whether every bar has a resolved axial load.
func (t *Truss) AllComputed() bool {
	for i := range t.Bars {
		if !t.Bars[i].Computed {
			return false
		}
	}
	return true
}

// KnownForce returns the sum of every force acting on node that is
// already known: external load, computed reactions and the contributions
// of resolved bars other than skip (pass -1 to include all).
func (t *Truss) KnownForce(node, skip int) (fx, fy float64, err error) {
	n, err := t.node(node)
	if err != nil {
		return 0, 0, err
	}
	fx = n.XLoad + n.XReaction.Or(0)
	fy = n.YLoad + n.YReaction.Or(0)
	for _, b := range n.Bars {
		if b == skip || !t.Bars[b].Computed {
			continue
		}
		cos, sin, err := t.Direction(node, b)
		if err != nil {
			return 0, 0, err
		}
		fx += t.Bars[b].AxialLoad * cos
		fy += t.Bars[b].AxialLoad * sin
	}
	return fx, fy, nil
}
