package geometry

import "fmt"

// Shape computes the purely geometric properties of a cross-section
// for a given water depth measured from the invert.
type Shape interface {
	// Properties returns the wetted geometry at depth y.
	Properties(y float64) (Section, error)

	// Height is the maximum depth the section can hold (m).
	Height() float64
}

// Section holds the geometric properties of the wetted area at one depth
type Section struct {
	Depth float64 // y - water depth (m)

	Beta            float64 // β - central angle subtending the water surface chord (rad)
	Area            float64 // A - wetted area (m²)
	TopWidth        float64 // T - water surface width (m)
	WettedPerimeter float64 // P - wetted perimeter (m)
	HydraulicRadius float64 // R = A/P (m)
	MeanDepth       float64 // Dm = A/T, hydraulic mean depth (m)

	// Centroid is the depth of the wetted area's centroid below the free surface (m)
	Centroid float64
}

// DomainError reports a depth outside the section
type DomainError struct {
	Depth float64 // requested depth (m)
	Max   float64 // section height (m)
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("depth y = %g m is outside the section (0, %g]", e.Depth, e.Max)
}
