package loads

import (
	"context"
	"fmt"

	"github.com/alexiusacademia/gotruss/internal/truss"
	"golang.org/x/sync/errgroup"
)

// SolveFunc solves a truss in place.
type SolveFunc func(t *truss.Truss) error

// BarEnvelope holds the extreme axial loads of one bar over a set of
// combinations. A bar that never goes into tension keeps MaxTension at 0
// and an empty TensionCombo; likewise for compression.
type BarEnvelope struct {
	Bar              int
	MaxTension       float64
	TensionCombo     string
	MaxCompression   float64 // most negative axial load
	CompressionCombo string
}

// Envelope is the result of solving every combination.
type Envelope struct {
	Combinations []Combination
	Solved       []*truss.Truss // parallel to Combinations
	Bars         []BarEnvelope
}

// ComputeEnvelope solves base under every combination and collects the
// governing tension and compression of each bar.
//
// Each combination is solved on its own clone of base, so the solves run
// concurrently; a single truss is still solved sequentially by solve.
func ComputeEnvelope(ctx context.Context, base *truss.Truss, pls []PointLoad, combos []Combination, solve SolveFunc) (*Envelope, error) {
	env := &Envelope{
		Combinations: combos,
		Solved:       make([]*truss.Truss, len(combos)),
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, combo := range combos {
		i, combo := i, combo
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t := base.Clone()
			if err := Apply(t, pls, combo); err != nil {
				return err
			}
			if err := solve(t); err != nil {
				return fmt.Errorf("combination %s (%s): %w", combo.ID, combo.Description, err)
			}
			env.Solved[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	env.Bars = make([]BarEnvelope, len(base.Bars))
	for b := range env.Bars {
		be := BarEnvelope{Bar: b}
		for i, t := range env.Solved {
			f := t.Bars[b].AxialLoad
			if f > be.MaxTension {
				be.MaxTension, be.TensionCombo = f, combos[i].ID
			}
			if f < be.MaxCompression {
				be.MaxCompression, be.CompressionCombo = f, combos[i].ID
			}
		}
		env.Bars[b] = be
	}
	return env, nil
}
