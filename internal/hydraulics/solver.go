package hydraulics

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/alexiusacademia/goconduit/internal/geometry"
)

// Inputs are the parameters a Solver was built with
type Inputs struct {
	Discharge float64 // Q (m³/s); 0 when unresolved
	Depth     float64 // h (m); 0 when unresolved
	Slope     float64 // So (m/m)
	Roughness float64 // n
	Diameter  float64 // D (m)
}

// Solver computes flow properties in a conduit of fixed shape, slope
// and roughness. It is read-only after construction; the flow solves
// return independent snapshots and may be called concurrently.
type Solver struct {
	shape     geometry.Shape
	slope     float64
	roughness float64

	q float64 // discharge, derived from h when not supplied
	h float64 // depth, 0 until supplied

	maxDepth     float64 // y*
	maxDischarge float64 // Qmax

	initial    State
	hasInitial bool

	tolerance     float64
	maxIterations int
	logger        *slog.Logger
}

// Option configures a Solver
type Option func(*Solver)

// WithTolerance sets the relative tolerance of every nonlinear solve
func WithTolerance(tol float64) Option {
	return func(s *Solver) { s.tolerance = tol }
}

// WithMaxIterations sets the iteration budget of every nonlinear solve
func WithMaxIterations(n int) Option {
	return func(s *Solver) { s.maxIterations = n }
}

// WithLogger sets the logger used for solve diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) { s.logger = l }
}

// New creates a solver for a circular conduit.
//
// Pass q = 0 to derive the discharge from depth h, or h = 0 to leave the
// depth unresolved until a flow solve is requested.
func New(q, slope, roughness, diameter, h float64, opts ...Option) (*Solver, error) {
	if !(diameter > 0) || math.IsInf(diameter, 0) {
		return nil, &ValidationError{Field: "D", Value: diameter, Limit: 0,
			Msg: "conduit diameter must be positive"}
	}
	shape, err := geometry.NewCircular(diameter)
	if err != nil {
		return nil, err
	}
	return NewWithShape(shape, q, slope, roughness, h, opts...)
}

// NewWithShape creates a solver for any cross-section shape
func NewWithShape(shape geometry.Shape, q, slope, roughness, h float64, opts ...Option) (*Solver, error) {
	s := &Solver{
		shape:         shape,
		slope:         slope,
		roughness:     roughness,
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := validateInputs(q, slope, roughness, shape.Height(), h); err != nil {
		return nil, err
	}

	y, qmax, err := s.solveMaxConveyance()
	if err != nil {
		return nil, fmt.Errorf("maximum conveyance: %w", err)
	}
	s.maxDepth, s.maxDischarge = y, qmax

	if d := shape.Height(); h > d {
		return nil, &ValidationError{Field: "h", Value: h, Limit: d,
			Msg: "requested depth exceeds conduit diameter"}
	}
	if q > qmax {
		return nil, &ValidationError{Field: "Q", Value: q, Limit: qmax,
			Msg: "requested discharge exceeds the conduit's maximum conveyance"}
	}

	s.q = q
	if h > 0 {
		s.h = h
		if q == 0 {
			if s.q, err = s.Discharge(h); err != nil {
				return nil, err
			}
		}
		if s.initial, err = s.StateAt(h); err != nil {
			return nil, err
		}
		s.hasInitial = true
	}

	s.logger.Debug("solver ready",
		"D", shape.Height(), "So", slope, "n", roughness,
		"Q", s.q, "h", s.h, "y*", s.maxDepth, "Qmax", s.maxDischarge)

	return s, nil
}

func validateInputs(q, slope, roughness, height, h float64) error {
	switch {
	case !(height > 0):
		return &ValidationError{Field: "D", Value: height, Limit: 0, Msg: "conduit diameter must be positive"}
	case !(roughness > 0) || math.IsInf(roughness, 0):
		return &ValidationError{Field: "n", Value: roughness, Limit: 0, Msg: "roughness must be positive"}
	case !(slope >= 0) || math.IsInf(slope, 0):
		return &ValidationError{Field: "So", Value: slope, Limit: 0, Msg: "slope must not be negative"}
	case !(q >= 0) || math.IsInf(q, 0):
		return &ValidationError{Field: "Q", Value: q, Limit: 0, Msg: "discharge must not be negative"}
	case !(h >= 0):
		return &ValidationError{Field: "h", Value: h, Limit: 0, Msg: "depth must not be negative"}
	}
	return nil
}

// Inputs returns the solver's parameters, with the discharge derived from
// the depth when only the depth was supplied.
func (s *Solver) Inputs() Inputs {
	return Inputs{
		Discharge: s.q,
		Depth:     s.h,
		Slope:     s.slope,
		Roughness: s.roughness,
		Diameter:  s.shape.Height(),
	}
}

// State returns the state derived at construction from a supplied depth.
// The second result is false when no depth was supplied.
func (s *Solver) State() (State, bool) {
	return s.initial, s.hasInitial
}

// StateAt evaluates the flow at depth y carrying the solver's discharge
func (s *Solver) StateAt(y float64) (State, error) {
	sec, err := s.shape.Properties(y)
	if err != nil {
		return State{}, err
	}
	return newState(sec, s.q, s.slope, s.roughness, s.shape.Height()), nil
}

// edge is ε, the clearance kept from the empty and full pipe
func (s *Solver) edge() float64 {
	return EdgeFraction * s.shape.Height()
}
