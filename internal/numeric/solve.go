// Package numeric provides the scalar root finder and finite-difference
// derivative shared by the hydraulic solves.
package numeric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// Func is a residual evaluated at x. Evaluation errors abort the solve.
type Func func(x float64) (float64, error)

// Bracket is the closed search interval. The residual must change sign
// between Lo and Hi (or vanish at one of them).
type Bracket struct {
	Lo float64
	Hi float64
}

// Tolerance controls convergence of Solve
type Tolerance struct {
	X       float64 // absolute tolerance on the root
	F       float64 // absolute tolerance on the residual
	Step    float64 // finite-difference step for the Newton slope
	MaxIter int     // iteration budget
}

// Result is a converged root
type Result struct {
	Root       float64
	Residual   float64
	Iterations int
}

// ConvergenceError reports a solve that did not reach its tolerance.
// X and Residual are the last iterate and its residual.
type ConvergenceError struct {
	Iterations int
	X          float64
	Residual   float64
	Reason     string
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("no convergence after %d iterations: %s (x=%g, f(x)=%g)",
		e.Iterations, e.Reason, e.X, e.Residual)
}

// Derivative estimates f'(x) with a centred difference of the given step.
// The first evaluation error, if any, is returned.
func Derivative(f Func, x, step float64) (float64, error) {
	var evalErr error
	g := func(v float64) float64 {
		fv, err := f(v)
		if err != nil && evalErr == nil {
			evalErr = err
		}
		return fv
	}

	d := fd.Derivative(g, x, &fd.Settings{
		Formula: fd.Central,
		Step:    step,
	})
	if evalErr != nil {
		return 0, evalErr
	}
	return d, nil
}

// Solve finds a root of f inside b, starting from seed.
//
// Newton steps are taken with a finite-difference slope; whenever a step
// would leave the current bracket, or fails to halve the previous step,
// the bracket is bisected instead. The bracket shrinks on every iteration,
// so the iteration budget bounds the run time.
func Solve(f Func, seed float64, b Bracket, tol Tolerance) (Result, error) {
	lo, hi := b.Lo, b.Hi
	if !(lo < hi) {
		return Result{}, &ConvergenceError{X: seed, Residual: math.NaN(),
			Reason: fmt.Sprintf("empty bracket [%g, %g]", lo, hi)}
	}

	x := seed
	if !(x > lo && x < hi) {
		x = 0.5 * (lo + hi)
	}

	fx, err := f(x)
	if err != nil {
		return Result{}, err
	}
	if math.Abs(fx) <= tol.F {
		return Result{Root: x, Residual: fx}, nil
	}

	flo, err := f(lo)
	if err != nil {
		return Result{}, err
	}
	if math.Abs(flo) <= tol.F {
		return Result{Root: lo, Residual: flo}, nil
	}
	fhi, err := f(hi)
	if err != nil {
		return Result{}, err
	}
	if math.Abs(fhi) <= tol.F {
		return Result{Root: hi, Residual: fhi}, nil
	}
	if (flo > 0) == (fhi > 0) {
		return Result{}, &ConvergenceError{X: x, Residual: fx,
			Reason: fmt.Sprintf("root not bracketed: f(%g)=%g, f(%g)=%g", lo, flo, hi, fhi)}
	}

	// xl always holds the negative side
	xl, xh := lo, hi
	if flo > 0 {
		xl, xh = hi, lo
	}
	if fx < 0 {
		xl = x
	} else {
		xh = x
	}

	df, err := Derivative(f, x, tol.Step)
	if err != nil {
		return Result{}, err
	}

	dxOld := math.Abs(hi - lo)
	dx := dxOld

	for iter := 1; iter <= tol.MaxIter; iter++ {
		outside := ((x-xh)*df-fx)*((x-xl)*df-fx) > 0
		slow := math.Abs(2*fx) > math.Abs(dxOld*df)

		if outside || slow {
			dxOld = dx
			dx = 0.5 * (xh - xl)
			x = xl + dx
		} else {
			dxOld = dx
			dx = fx / df
			x -= dx
		}

		fx, err = f(x)
		if err != nil {
			return Result{}, err
		}
		if math.Abs(fx) <= tol.F || math.Abs(dx) < tol.X {
			return Result{Root: x, Residual: fx, Iterations: iter}, nil
		}

		if fx < 0 {
			xl = x
		} else {
			xh = x
		}

		df, err = Derivative(f, x, tol.Step)
		if err != nil {
			return Result{}, err
		}
	}

	return Result{}, &ConvergenceError{Iterations: tol.MaxIter, X: x, Residual: fx,
		Reason: "iteration budget exhausted"}
}
