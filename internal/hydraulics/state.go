package hydraulics

import (
	"math"

	"github.com/alexiusacademia/goconduit/internal/geometry"
)

// Regime is the flow regime implied by the Froude number
type Regime string

const (
	Subcritical   Regime = "subcritical"
	Critical      Regime = "critical"
	Supercritical Regime = "supercritical"
)

// criticalBand is the |Fr - 1| treated as critical flow
const criticalBand = 1e-6

// State is a snapshot of the flow at one depth. It holds no references,
// so every copy is independent of the solver and of other copies.
type State struct {
	// Inputs
	Depth     float64 // y (m)
	Discharge float64 // Q (m³/s)
	Slope     float64 // So (m/m)
	Roughness float64 // n - Manning coefficient
	Diameter  float64 // D (m)

	// Geometry
	Beta            float64 // β (rad)
	Area            float64 // A (m²)
	TopWidth        float64 // T (m)
	WettedPerimeter float64 // P (m)
	HydraulicRadius float64 // R = A/P (m)
	MeanDepth       float64 // Dm = A/T (m)
	Centroid        float64 // Z - centroid depth below the surface (m)

	// Flow
	Velocity       float64 // V = Q/A (m/s)
	Froude         float64 // Fr = V/√(gA/T)
	VelocityHead   float64 // hv = V²/2g (m)
	SpecificEnergy float64 // E = y + hv (m)
	Momentum       float64 // M = Q²/gA + Z·A (m³)
}

// Regime classifies the state by its Froude number
func (s State) Regime() Regime {
	switch {
	case math.Abs(s.Froude-1) <= criticalBand:
		return Critical
	case s.Froude < 1:
		return Subcritical
	default:
		return Supercritical
	}
}

// newState derives the flow quantities for discharge q over section sec
func newState(sec geometry.Section, q, slope, roughness, diameter float64) State {
	s := State{
		Depth:     sec.Depth,
		Discharge: q,
		Slope:     slope,
		Roughness: roughness,
		Diameter:  diameter,

		Beta:            sec.Beta,
		Area:            sec.Area,
		TopWidth:        sec.TopWidth,
		WettedPerimeter: sec.WettedPerimeter,
		HydraulicRadius: sec.HydraulicRadius,
		MeanDepth:       sec.MeanDepth,
		Centroid:        sec.Centroid,
	}

	s.Velocity = q / sec.Area
	s.VelocityHead = s.Velocity * s.Velocity / (2.0 * G)
	s.SpecificEnergy = sec.Depth + s.VelocityHead
	s.Froude = s.Velocity / math.Sqrt(G*sec.Area/sec.TopWidth)
	s.Momentum = q*q/(G*sec.Area) + sec.Centroid*sec.Area

	return s
}
