package truss

// Constraint is the support condition of a node.
type Constraint string

const (
	Free      Constraint = "free"
	Pin       Constraint = "pin"
	RollerNoX Constraint = "roller_no_xdisp" // restrains x, rolls in y
	RollerNoY Constraint = "roller_no_ydisp" // restrains y, rolls in x

	// Fixed restrains rotation as well and is only recognised so that it
	// can be rejected: a truss joint cannot carry a moment.
	Fixed Constraint = "fixed"
)

// Direction is a global translation direction.
type Direction int

const (
	X Direction = iota
	Y
)

func (d Direction) String() string {
	if d == X {
		return "x"
	}
	return "y"
}

// Restrains reports whether c restrains translation in d. Fixed is
// rejected before any reaction is counted, so it restrains nothing here.
func (c Constraint) Restrains(d Direction) bool {
	switch c {
	case Pin:
		return true
	case RollerNoX:
		return d == X
	case RollerNoY:
		return d == Y
	}
	return false
}

// Known reports whether c is one of the recognised constraint codes.
func (c Constraint) Known() bool {
	switch c {
	case Free, Pin, RollerNoX, RollerNoY, Fixed:
		return true
	}
	return false
}

// IsRoller reports whether c restrains exactly one direction.
func (c Constraint) IsRoller() bool {
	return c == RollerNoX || c == RollerNoY
}

// Reaction is a support reaction component that is either not yet
// computed or a real number.
type Reaction struct {
	Value float64 `json:"value"`
	Known bool    `json:"known"`
}

// Or returns the reaction value, or def when it is not known.
func (r Reaction) Or(def float64) float64 {
	if !r.Known {
		return def
	}
	return r.Value
}

// Node is a pin joint.
type Node struct {
	Index int `json:"index"`

	// Location
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// External applied load
	XLoad float64 `json:"fx"`
	YLoad float64 `json:"fy"`

	Constraint Constraint `json:"constraint"`

	XReaction Reaction `json:"x_reaction"`
	YReaction Reaction `json:"y_reaction"`

	// Indices of incident bars
	Bars []int `json:"bars"`
}

// Location returns the node position as a vector.
func (n *Node) Location() []float64 {
	return []float64{n.X, n.Y}
}

// Reaction returns the reaction component in direction d.
func (n *Node) Reaction(d Direction) Reaction {
	if d == X {
		return n.XReaction
	}
	return n.YReaction
}

// SetReaction records the reaction component in direction d. A component
// can only be set once and only in a restrained direction.
func (n *Node) SetReaction(d Direction, value float64) error {
	if !n.Constraint.Restrains(d) {
		return Inputf("node %d (%s) does not restrain %s, cannot carry a reaction", n.Index, n.Constraint, d)
	}
	r := &n.XReaction
	if d == Y {
		r = &n.YReaction
	}
	if r.Known {
		return Inputf("node %d already has a %s reaction", n.Index, d)
	}
	*r = Reaction{Value: value, Known: true}
	return nil
}

// HasKnownReaction reports whether a restrained direction of the node
// already carries a computed reaction.
func (n *Node) HasKnownReaction() bool {
	return (n.Constraint.Restrains(X) && n.XReaction.Known) ||
		(n.Constraint.Restrains(Y) && n.YReaction.Known)
}

// Bar is a two-force member between two nodes.
type Bar struct {
	Index int `json:"index"`
	Init  int `json:"init_node"`
	End   int `json:"end_node"`

	Computed  bool    `json:"is_computed"`
	AxialLoad float64 `json:"axial_load"` // tension positive
}

// Resolve fixes the axial load of the bar. It fails if the bar was
// already resolved.
func (b *Bar) Resolve(load float64) error {
	if b.Computed {
		return Solvef("bar %d is already resolved (axial load %g)", b.Index, b.AxialLoad)
	}
	b.AxialLoad = load
	b.Computed = true
	return nil
}
