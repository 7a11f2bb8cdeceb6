package numeric_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/alexiusacademia/goconduit/internal/numeric"
)

// SolveSuite groups tests for the bracketed Newton solver.
type SolveSuite struct {
	suite.Suite
	tol numeric.Tolerance
}

func (s *SolveSuite) SetupTest() {
	s.tol = numeric.Tolerance{X: 1e-12, F: 1e-12, Step: 1e-7, MaxIter: 100}
}

func pure(g func(float64) float64) numeric.Func {
	return func(x float64) (float64, error) { return g(x), nil }
}

// TestSquareRoot: x² - 2 on [0, 2] => √2.
func (s *SolveSuite) TestSquareRoot() {
	res, err := numeric.Solve(pure(func(x float64) float64 { return x*x - 2 }), 1, numeric.Bracket{Lo: 0, Hi: 2}, s.tol)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), math.Sqrt2, res.Root, 1e-10)
}

// TestDecreasingResidual: the bracket orientation does not matter.
func (s *SolveSuite) TestDecreasingResidual() {
	res, err := numeric.Solve(pure(func(x float64) float64 { return math.Cos(x) }), 1, numeric.Bracket{Lo: 0, Hi: 3}, s.tol)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), math.Pi/2, res.Root, 1e-10)
}

// TestFlatStartFallsBackToBisection: a seed where Newton would shoot far
// outside the bracket still converges.
func (s *SolveSuite) TestFlatStartFallsBackToBisection() {
	f := pure(func(x float64) float64 { return math.Pow(x, 2.2) - 0.5 })
	res, err := numeric.Solve(f, 1e-3, numeric.Bracket{Lo: 1e-4, Hi: 1}, s.tol)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), math.Pow(0.5, 1/2.2), res.Root, 1e-10)
}

// TestSeedOutsideBracket starts from the midpoint.
func (s *SolveSuite) TestSeedOutsideBracket() {
	res, err := numeric.Solve(pure(func(x float64) float64 { return x - 0.25 }), 7, numeric.Bracket{Lo: 0, Hi: 1}, s.tol)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 0.25, res.Root, 1e-12)
}

// TestRootOnEndpoint returns the endpoint itself.
func (s *SolveSuite) TestRootOnEndpoint() {
	res, err := numeric.Solve(pure(func(x float64) float64 { return x - 1 }), 0.5, numeric.Bracket{Lo: 0, Hi: 1}, s.tol)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1.0, res.Root)
}

// TestNotBracketed yields ConvergenceError.
func (s *SolveSuite) TestNotBracketed() {
	_, err := numeric.Solve(pure(func(x float64) float64 { return x*x + 1 }), 0.5, numeric.Bracket{Lo: -1, Hi: 1}, s.tol)
	var ce *numeric.ConvergenceError
	require.True(s.T(), errors.As(err, &ce))
	require.Contains(s.T(), ce.Reason, "not bracketed")
	require.Equal(s.T(), 1.25, ce.Residual)
}

// TestBudgetExhausted reports the last iterate.
func (s *SolveSuite) TestBudgetExhausted() {
	s.tol.MaxIter = 2
	s.tol.X = 0
	s.tol.F = 0
	_, err := numeric.Solve(pure(func(x float64) float64 { return math.Atan(x - 0.3) }), 0.9, numeric.Bracket{Lo: -5, Hi: 5}, s.tol)
	var ce *numeric.ConvergenceError
	require.True(s.T(), errors.As(err, &ce))
	require.Equal(s.T(), 2, ce.Iterations)
	require.False(s.T(), math.IsNaN(ce.X))
}

// TestEvaluationErrorPropagates returns the residual's own error.
func (s *SolveSuite) TestEvaluationErrorPropagates() {
	boom := errors.New("boom")
	f := func(x float64) (float64, error) {
		if x > 0.9 {
			return 0, boom
		}
		return x - 0.5, nil
	}
	_, err := numeric.Solve(f, 0.1, numeric.Bracket{Lo: 0, Hi: 1}, s.tol)
	require.ErrorIs(s.T(), err, boom)
}

func (s *SolveSuite) TestEmptyBracket() {
	_, err := numeric.Solve(pure(func(x float64) float64 { return x }), 0, numeric.Bracket{Lo: 1, Hi: 1}, s.tol)
	var ce *numeric.ConvergenceError
	require.True(s.T(), errors.As(err, &ce))
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

func TestDerivative(t *testing.T) {
	d, err := numeric.Derivative(pure(math.Sin), 0.3, 1e-6)
	require.NoError(t, err)
	require.InDelta(t, math.Cos(0.3), d, 1e-8)

	_, err = numeric.Derivative(func(x float64) (float64, error) {
		return 0, errors.New("outside")
	}, 0, 1e-6)
	require.Error(t, err)
}
