package geometry

import (
	"fmt"
	"math"
)

// Circular is a closed circular conduit of diameter D flowing partly full
type Circular struct {
	Diameter float64 // D (m)
}

// NewCircular creates a circular section of the given diameter
func NewCircular(diameter float64) (*Circular, error) {
	if !(diameter > 0) || math.IsInf(diameter, 0) {
		return nil, fmt.Errorf("invalid diameter: D=%g", diameter)
	}
	return &Circular{Diameter: diameter}, nil
}

// Height returns the diameter
func (c *Circular) Height() float64 {
	return c.Diameter
}

// Properties computes the wetted geometry at depth y.
// The section is open at y = 0 (every ratio is 0/0 there) and closed at y = D,
// where β = 2π and the full-pipe values are returned.
func (c *Circular) Properties(y float64) (Section, error) {
	d := c.Diameter
	if math.IsNaN(y) || y <= 0 || y > d {
		return Section{}, &DomainError{Depth: y, Max: d}
	}

	beta := 2.0 * math.Acos(1.0-2.0*y/d)
	area := d * d * (beta - math.Sin(beta)) / 8.0
	topWidth := d * math.Sin(beta/2.0)
	perimeter := d * beta / 2.0

	sec := Section{
		Depth:           y,
		Beta:            beta,
		Area:            area,
		TopWidth:        topWidth,
		WettedPerimeter: perimeter,
		HydraulicRadius: area / perimeter,
		MeanDepth:       area / topWidth,
	}

	// Z = D/2 - 2(yD - y²)^1.5 / 3A
	// yD - y² is the squared half-chord; rounding can push it below zero at y = D.
	chord := math.Max(y*d-y*y, 0)
	sec.Centroid = d/2.0 - 2.0*math.Pow(chord, 1.5)/(3.0*area)

	return sec, nil
}
