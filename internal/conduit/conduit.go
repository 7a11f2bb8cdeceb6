package conduit

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/goconduit/internal/hydraulics"
	"github.com/alexiusacademia/goconduit/internal/roughness"
)

// Conduit is a circular conduit and flow condition read from a JSON file.
// Exactly one of Discharge and Depth is normally given; the other is solved.
type Conduit struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Diameter float64 `json:"diameter"` // D (m)
	Slope    float64 `json:"slope"`    // So (m/m)

	// Roughness overrides the Manning n of Material when positive
	Roughness float64 `json:"roughness,omitempty"`
	Material  string  `json:"material,omitempty"`

	Discharge float64 `json:"discharge,omitempty"` // Q (m³/s)
	Depth     float64 `json:"depth,omitempty"`     // h (m)
}

// ValidationError represents a conduit definition error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// LoadFromFile loads a conduit definition from a JSON file
func LoadFromFile(filepath string) (*Conduit, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var c Conduit
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks that the definition is complete. Physical limits
// (depth above the crown, discharge above capacity) are left to the solver.
func (c *Conduit) Validate() error {
	if c.Diameter <= 0 {
		return &ValidationError{"diameter must be positive"}
	}
	if c.Slope < 0 {
		return &ValidationError{"slope must not be negative"}
	}
	if c.Roughness < 0 {
		return &ValidationError{"roughness must not be negative"}
	}
	if c.Roughness == 0 && c.Material == "" {
		return &ValidationError{"either roughness or material is required"}
	}
	if c.Discharge < 0 || c.Depth < 0 {
		return &ValidationError{"discharge and depth must not be negative"}
	}
	return nil
}

// ManningN resolves the roughness, falling back to the material's design value
func (c *Conduit) ManningN() (float64, error) {
	if c.Roughness > 0 {
		return c.Roughness, nil
	}
	m, err := roughness.Lookup(c.Material)
	if err != nil {
		return 0, err
	}
	return m.Normal, nil
}

// Solver builds a hydraulic solver for the conduit
func (c *Conduit) Solver(opts ...hydraulics.Option) (*hydraulics.Solver, error) {
	n, err := c.ManningN()
	if err != nil {
		return nil, err
	}
	s, err := hydraulics.New(c.Discharge, c.Slope, n, c.Diameter, c.Depth, opts...)
	if err != nil {
		return nil, fmt.Errorf("conduit %q: %w", c.Name, err)
	}
	return s, nil
}
