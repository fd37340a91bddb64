package loads

import (
	"github.com/alexiusacademia/gotruss/internal/truss"
)

// PointLoad is an unfactored joint load belonging to one load case.
type PointLoad struct {
	Node int     `json:"node" yaml:"node"`
	Case Case    `json:"case" yaml:"case"`
	FX   float64 `json:"fx" yaml:"fx"`
	FY   float64 `json:"fy" yaml:"fy"`
}

// Apply adds the factored point loads to the external loads of t.
func Apply(t *truss.Truss, pls []PointLoad, combo Combination) error {
	for i, pl := range pls {
		if pl.Node < 0 || pl.Node >= len(t.Nodes) {
			return truss.Inputf("load %d references missing node %d", i, pl.Node)
		}
		f := combo.Factor(pl.Case)
		t.Nodes[pl.Node].XLoad += f * pl.FX
		t.Nodes[pl.Node].YLoad += f * pl.FY
	}
	return nil
}
