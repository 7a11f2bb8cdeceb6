package hydraulics

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goconduit/internal/numeric"
)

// UniformFlowProperties returns the state at normal depth, where the
// Manning discharge equals the solver's discharge.
//
// Only the rising branch (0, y*] of the discharge curve is searched.
// A depth supplied above y* therefore maps back to the lower depth that
// carries the same discharge.
func (s *Solver) UniformFlowProperties() (State, error) {
	residual := func(y float64) (float64, error) {
		q, err := s.Discharge(y)
		if err != nil {
			return 0, err
		}
		return s.q - q, nil
	}

	st, err := s.solveDepth("uniform depth", residual, s.maxDepth)
	if err != nil {
		return State{}, fmt.Errorf("uniform depth: %w", err)
	}
	return st, nil
}

// CriticalFlowProperties returns the state at critical depth, where the
// Froude number is one: √(gA³/T) = Q.
func (s *Solver) CriticalFlowProperties() (State, error) {
	residual := func(y float64) (float64, error) {
		sec, err := s.shape.Properties(y)
		if err != nil {
			return 0, err
		}
		return math.Sqrt(G*math.Pow(sec.Area, 3)/sec.TopWidth) - s.q, nil
	}

	st, err := s.solveDepth("critical depth", residual, s.shape.Height()-s.edge())
	if err != nil {
		return State{}, fmt.Errorf("critical depth: %w", err)
	}
	return st, nil
}

// solveDepth finds the root of residual in [ε, hi] from a shallow seed and
// evaluates the state there.
func (s *Solver) solveDepth(name string, residual numeric.Func, hi float64) (State, error) {
	if s.q == 0 {
		return State{}, ErrDischargeUnresolved
	}

	d := s.shape.Height()
	res, err := numeric.Solve(residual, FlowSeedFraction*d,
		numeric.Bracket{Lo: s.edge(), Hi: hi},
		numeric.Tolerance{
			X:       s.tolerance * d,
			F:       s.tolerance * s.q,
			Step:    NewtonStepFraction * d,
			MaxIter: s.maxIterations,
		})
	if err != nil {
		return State{}, err
	}

	s.logger.Debug(name, "depth", res.Root, "iterations", res.Iterations, "residual", res.Residual)

	return s.StateAt(res.Root)
}
