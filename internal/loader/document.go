package loader

import (
	"fmt"
	"sort"

	"github.com/alexiusacademia/gotruss/internal/loads"
	"github.com/alexiusacademia/gotruss/internal/truss"
)

// Document is a truss definition as read from disk.
type Document struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Nodes []NodeRecord `json:"nodes" yaml:"nodes"`
	Bars  []BarRecord  `json:"bars" yaml:"bars"`

	// Case loads, factored by the selected combination on top of the
	// node loads.
	Loads []loads.PointLoad `json:"loads,omitempty" yaml:"loads,omitempty"`
}

// NodeRecord describes one joint.
type NodeRecord struct {
	Index      int     `json:"index" yaml:"index"`
	X          float64 `json:"x" yaml:"x"`
	Y          float64 `json:"y" yaml:"y"`
	FX         float64 `json:"fx,omitempty" yaml:"fx,omitempty"`
	FY         float64 `json:"fy,omitempty" yaml:"fy,omitempty"`
	Constraint string  `json:"constraint,omitempty" yaml:"constraint,omitempty"` // default "free"
}

// BarRecord describes one member by the indices of its end nodes.
type BarRecord struct {
	Index int `json:"index" yaml:"index"`
	Init  int `json:"init" yaml:"init"`
	End   int `json:"end" yaml:"end"`
}

// ValidationError represents a malformed truss document
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func invalid(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Validate checks that indices are unique and run from 0 without gaps and
// that load cases are recognised. Geometry is checked by Build.
func (d *Document) Validate() error {
	if len(d.Nodes) < 2 {
		return invalid("truss must have at least 2 nodes")
	}
	if len(d.Bars) == 0 {
		return invalid("truss must have at least one bar")
	}
	if err := checkIndices("node", len(d.Nodes), func(i int) int { return d.Nodes[i].Index }); err != nil {
		return err
	}
	if err := checkIndices("bar", len(d.Bars), func(i int) int { return d.Bars[i].Index }); err != nil {
		return err
	}
	for i, l := range d.Loads {
		if _, err := loads.ParseCase(string(l.Case)); err != nil {
			return invalid("load %d: %v", i+1, err)
		}
	}
	return nil
}

func checkIndices(kind string, n int, index func(int) int) error {
	seen := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		idx := index(i)
		if idx < 0 || idx >= n {
			return invalid("%s index %d out of range 0..%d", kind, idx, n-1)
		}
		if seen[idx] {
			return invalid("duplicate %s index %d", kind, idx)
		}
		seen[idx] = true
	}
	return nil
}

// Build converts the document into a truss, ordered by index.
func (d *Document) Build() (*truss.Truss, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	nodes := make([]truss.Node, len(d.Nodes))
	for _, r := range d.Nodes {
		c := truss.Constraint(r.Constraint)
		if c == "" {
			c = truss.Free
		}
		nodes[r.Index] = truss.Node{
			Index:      r.Index,
			X:          r.X,
			Y:          r.Y,
			XLoad:      r.FX,
			YLoad:      r.FY,
			Constraint: c,
		}
	}

	bars := make([]truss.Bar, len(d.Bars))
	for _, r := range d.Bars {
		bars[r.Index] = truss.Bar{Index: r.Index, Init: r.Init, End: r.End}
	}

	return truss.New(nodes, bars)
}

// CaseLoads returns the case loads with normalised case symbols, sorted by
// node for stable output.
func (d *Document) CaseLoads() []loads.PointLoad {
	out := make([]loads.PointLoad, 0, len(d.Loads))
	for _, l := range d.Loads {
		c, err := loads.ParseCase(string(l.Case))
		if err != nil {
			continue
		}
		l.Case = c
		out = append(out, l)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Node < out[j].Node })
	return out
}

// BuildFor builds the truss and applies the case loads under combo.
func (d *Document) BuildFor(combo loads.Combination) (*truss.Truss, error) {
	t, err := d.Build()
	if err != nil {
		return nil, err
	}
	if err := loads.Apply(t, d.CaseLoads(), combo); err != nil {
		return nil, err
	}
	return t, nil
}
