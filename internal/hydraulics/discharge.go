package hydraulics

import (
	"math"

	"github.com/alexiusacademia/goconduit/internal/numeric"
)

// Discharge returns the Manning discharge at depth y:
// Q = A·R^(2/3)·√So / n
//
// For a circular conduit Q(y) rises to a peak below the crown and then
// falls toward the full pipe value.
func (s *Solver) Discharge(y float64) (float64, error) {
	sec, err := s.shape.Properties(y)
	if err != nil {
		return 0, err
	}
	return sec.Area * math.Pow(sec.HydraulicRadius, 2.0/3.0) * math.Sqrt(s.slope) / s.roughness, nil
}

// FullDischarge returns the discharge with the conduit flowing full
func (s *Solver) FullDischarge() (float64, error) {
	return s.Discharge(s.shape.Height())
}

// MaxConveyance returns the depth y* and discharge Qmax at the peak of
// the discharge curve. Both are computed when the solver is built.
func (s *Solver) MaxConveyance() (depth, discharge float64) {
	return s.maxDepth, s.maxDischarge
}

// solveMaxConveyance finds the zero of dQ/dy near the crown
func (s *Solver) solveMaxConveyance() (float64, float64, error) {
	d := s.shape.Height()
	step := ConveyanceStepFraction * d

	slope := func(y float64) (float64, error) {
		return numeric.Derivative(s.Discharge, y, step)
	}

	full, err := s.FullDischarge()
	if err != nil {
		return 0, 0, err
	}

	res, err := numeric.Solve(slope, ConveyanceSeedFraction*d,
		numeric.Bracket{Lo: 0.5 * d, Hi: d - s.edge()},
		numeric.Tolerance{
			X:       s.tolerance * d,
			F:       s.tolerance * full / d,
			Step:    PeakNewtonStepFraction * d,
			MaxIter: s.maxIterations,
		})
	if err != nil {
		return 0, 0, err
	}

	qmax, err := s.Discharge(res.Root)
	if err != nil {
		return 0, 0, err
	}

	s.logger.Debug("maximum conveyance", "depth", res.Root, "discharge", qmax,
		"iterations", res.Iterations, "residual", res.Residual)

	return res.Root, qmax, nil
}
