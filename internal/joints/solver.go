package joints

import (
	"log/slog"

	"github.com/alexiusacademia/gotruss/internal/logging"
	"github.com/alexiusacademia/gotruss/internal/truss"
)

const (
	// DefaultMaxPasses bounds the number of sweeps over the nodes.
	DefaultMaxPasses = 5000

	// DefaultTolerance is the smallest determinant accepted for a
	// two-unknown joint. Direction cosines are unit vectors, so the
	// determinant is the sine of the angle between the two bars.
	DefaultTolerance = 1e-9
)

// Step records one joint resolution.
type Step struct {
	Pass int   `json:"pass"`
	Node int   `json:"node"`
	Bars []int `json:"bars"`
}

// Result describes a completed solve.
type Result struct {
	Passes int    `json:"passes"`
	Steps  []Step `json:"steps"`
}

// Solver runs the method of joints over a truss.
type Solver struct {
	maxPasses int
	tolerance float64
	logger    *slog.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithMaxPasses overrides DefaultMaxPasses.
func WithMaxPasses(n int) Option {
	return func(s *Solver) { s.maxPasses = n }
}

// WithTolerance overrides DefaultTolerance.
func WithTolerance(tol float64) Option {
	return func(s *Solver) { s.tolerance = tol }
}

// WithLogger sets the logger used for per-joint debug output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSolver returns a Solver with defaults overridden by opts.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		maxPasses: DefaultMaxPasses,
		tolerance: DefaultTolerance,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve resolves every bar of t in place. Reactions must already be
// computed.
//
// Each pass visits nodes in index order and resolves every viable node at
// once, so later nodes in the same pass see bars resolved earlier in it.
// A pass that resolves nothing, or more than the configured number of
// passes, is a SolveError. Resolved bars are never revisited.
func (s *Solver) Solve(t *truss.Truss) (*Result, error) {
	res := &Result{}

	for !t.AllComputed() {
		res.Passes++
		if res.Passes > s.maxPasses {
			return res, truss.Solvef("exceeded %d passes without resolving every bar", s.maxPasses)
		}

		progress := false
		for node := range t.Nodes {
			if !IsViable(t, node) {
				continue
			}
			unknown := t.UnknownBars(node)
			var err error
			switch len(unknown) {
			case 1:
				err = ResolveSingleUnknown(t, node, unknown[0])
			case 2:
				err = ResolveTwoUnknowns(t, node, unknown[0], unknown[1], s.tolerance)
			}
			if err != nil {
				return res, err
			}

			res.Steps = append(res.Steps, Step{Pass: res.Passes, Node: node, Bars: unknown})
			for _, b := range unknown {
				s.logger.Debug("bar resolved", "pass", res.Passes, "node", node, "bar", b, "axial_load", t.Bars[b].AxialLoad)
			}
			progress = true
		}

		if !progress {
			return res, truss.Solvef("pass %d found no solvable node; %d bar(s) unresolved, check truss geometry or constraints",
				res.Passes, countUnresolved(t))
		}
		s.logger.Debug("pass complete", "pass", res.Passes, "unresolved", countUnresolved(t))
	}

	s.logger.Info("truss solved", "bars", len(t.Bars), "passes", res.Passes)
	return res, nil
}

func countUnresolved(t *truss.Truss) int {
	n := 0
	for i := range t.Bars {
		if !t.Bars[i].Computed {
			n++
		}
	}
	return n
}
