package diagram

import (
	"fmt"

	"github.com/alexiusacademia/goconduit/internal/geometry"
	"github.com/alexiusacademia/goconduit/internal/hydraulics"
)

// Point is one sample of the rating curve
type Point struct {
	Depth     float64 // y (m)
	Discharge float64 // Q (m³/s)
}

// RatingCurve is the discharge curve of a conduit sampled from just above
// the invert up to the crown
type RatingCurve struct {
	Diameter      float64 // D (m)
	Points        []Point
	MaxDepth      float64 // y* (m)
	MaxDischarge  float64 // Qmax (m³/s)
	FullDischarge float64 // Q at y = D (m³/s)
}

// SampleRatingCurve evaluates the solver's discharge at evenly spaced depths
func SampleRatingCurve(s *hydraulics.Solver, samples int) (*RatingCurve, error) {
	if samples < 2 {
		return nil, fmt.Errorf("at least 2 samples are required, got %d", samples)
	}

	d := s.Inputs().Diameter
	curve := &RatingCurve{
		Diameter: d,
		Points:   make([]Point, 0, samples),
	}
	curve.MaxDepth, curve.MaxDischarge = s.MaxConveyance()

	full, err := s.FullDischarge()
	if err != nil {
		return nil, err
	}
	curve.FullDischarge = full

	for i := 1; i <= samples; i++ {
		y := d * float64(i) / float64(samples)
		q, err := s.Discharge(y)
		if err != nil {
			return nil, err
		}
		curve.Points = append(curve.Points, Point{Depth: y, Discharge: q})
	}

	return curve, nil
}

// PropertyCurves holds the geometry of a unit-diameter circle against depth
type PropertyCurves struct {
	Depth     []float64 // h/D
	TopWidth  []float64 // T/D
	Area      []float64 // A/D²
	Perimeter []float64 // P/D
	Beta      []float64 // β (rad)
	Radius    []float64 // R/D
	Centroid  []float64 // Z/D
}

// SampleDimensionless evaluates the unit circle at evenly spaced depths
// in (0, 1]
func SampleDimensionless(samples int) (*PropertyCurves, error) {
	if samples < 2 {
		return nil, fmt.Errorf("at least 2 samples are required, got %d", samples)
	}

	unit, err := geometry.NewCircular(1)
	if err != nil {
		return nil, err
	}

	pc := &PropertyCurves{}
	for i := 1; i <= samples; i++ {
		h := float64(i) / float64(samples)
		sec, err := unit.Properties(h)
		if err != nil {
			return nil, err
		}
		pc.Depth = append(pc.Depth, h)
		pc.TopWidth = append(pc.TopWidth, sec.TopWidth)
		pc.Area = append(pc.Area, sec.Area)
		pc.Perimeter = append(pc.Perimeter, sec.WettedPerimeter)
		pc.Beta = append(pc.Beta, sec.Beta)
		pc.Radius = append(pc.Radius, sec.HydraulicRadius)
		pc.Centroid = append(pc.Centroid, sec.Centroid)
	}

	return pc, nil
}

func (c *RatingCurve) discharges() []float64 {
	q := make([]float64, len(c.Points))
	for i, p := range c.Points {
		q[i] = p.Discharge
	}
	return q
}
