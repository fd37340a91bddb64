package joints

import (
	"fmt"

	"github.com/alexiusacademia/gotruss/internal/statics"
	"github.com/alexiusacademia/gotruss/internal/truss"
)

// Analysis is the outcome of the full pipeline.
type Analysis struct {
	Count       statics.Count `json:"count"`
	MaxResidual float64       `json:"max_residual"`
	*Result
}

// Analyze checks determinacy, computes the support reactions and then
// solves every bar. t is modified in place.
func (s *Solver) Analyze(t *truss.Truss) (*Analysis, error) {
	count, err := statics.CheckDeterminacy(t)
	if err != nil {
		return nil, err
	}
	if err := statics.ComputeReactions(t); err != nil {
		return nil, fmt.Errorf("computing reactions: %w", err)
	}
	for i := range t.Nodes {
		n := &t.Nodes[i]
		if n.XReaction.Known {
			s.logger.Debug("reaction", "node", i, "dir", truss.X, "value", n.XReaction.Value)
		}
		if n.YReaction.Known {
			s.logger.Debug("reaction", "node", i, "dir", truss.Y, "value", n.YReaction.Value)
		}
	}

	res, err := s.Solve(t)
	if err != nil {
		return nil, fmt.Errorf("method of joints: %w", err)
	}
	worst, _, err := statics.MaxResidual(t)
	if err != nil {
		return nil, err
	}
	return &Analysis{Count: count, MaxResidual: worst, Result: res}, nil
}
