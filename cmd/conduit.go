package cmd

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/goconduit/internal/conduit"
	"github.com/alexiusacademia/goconduit/internal/hydraulics"
	"github.com/spf13/cobra"
)

// conduitFlags are the conduit definition flags shared by the solving commands
type conduitFlags struct {
	file      string
	diameter  float64
	slope     float64
	roughness float64
	material  string
	discharge float64
	depth     float64

	tolerance     float64
	maxIterations int
}

func (f *conduitFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Path to conduit JSON file (overrides the flags below)")
	cmd.Flags().Float64VarP(&f.diameter, "diameter", "D", 0, "Conduit diameter D (m)")
	cmd.Flags().Float64VarP(&f.slope, "slope", "s", 0, "Longitudinal slope So (m/m)")
	cmd.Flags().Float64VarP(&f.roughness, "roughness", "n", 0, "Manning roughness n")
	cmd.Flags().StringVarP(&f.material, "material", "m", "", "Conduit material, used for n when --roughness is not given")
	cmd.Flags().Float64VarP(&f.discharge, "discharge", "q", 0, "Discharge Q (m³/s)")
	cmd.Flags().Float64VarP(&f.depth, "depth", "y", 0, "Water depth h (m); Q is derived when --discharge is 0")

	// Solver options
	cmd.Flags().Float64Var(&f.tolerance, "tolerance", hydraulics.DefaultTolerance, "Relative tolerance of the nonlinear solves")
	cmd.Flags().IntVar(&f.maxIterations, "max-iter", hydraulics.DefaultMaxIterations, "Iteration budget of the nonlinear solves")
}

// load returns the conduit from the file or the flags
func (f *conduitFlags) load() (*conduit.Conduit, error) {
	if f.file != "" {
		return conduit.LoadFromFile(f.file)
	}

	c := &conduit.Conduit{
		Diameter:  f.diameter,
		Slope:     f.slope,
		Roughness: f.roughness,
		Material:  f.material,
		Discharge: f.discharge,
		Depth:     f.depth,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (f *conduitFlags) solver(c *conduit.Conduit) (*hydraulics.Solver, error) {
	return c.Solver(
		hydraulics.WithLogger(slog.Default()),
		hydraulics.WithTolerance(f.tolerance),
		hydraulics.WithMaxIterations(f.maxIterations),
	)
}

func printHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func printInputs(c *conduit.Conduit, in hydraulics.Inputs) {
	if c.Name != "" {
		fmt.Printf("  Conduit: %s\n", c.Name)
	}
	if c.Description != "" {
		fmt.Printf("  Description: %s\n", c.Description)
	}

	fmt.Println("INPUT PARAMETERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Diameter, D:\t%.4f m\n", in.Diameter)
	fmt.Fprintf(w, "  Slope, So:\t%.6f m/m\n", in.Slope)
	if c.Roughness == 0 && c.Material != "" {
		fmt.Fprintf(w, "  Manning n:\t%.4f (%s)\n", in.Roughness, c.Material)
	} else {
		fmt.Fprintf(w, "  Manning n:\t%.4f\n", in.Roughness)
	}
	fmt.Fprintf(w, "  Discharge, Q:\t%.4f m³/s\n", in.Discharge)
	if in.Depth > 0 {
		fmt.Fprintf(w, "  Depth, h:\t%.4f m\n", in.Depth)
	}
	w.Flush()
	fmt.Println()
}

func printState(title string, st hydraulics.State) {
	fmt.Println(title)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Water depth, h:\t%.4f m\t(h/D = %.4f)\n", st.Depth, st.Depth/st.Diameter)
	fmt.Fprintf(w, "  Wetted area, A:\t%.4f m²\n", st.Area)
	fmt.Fprintf(w, "  Top width, T:\t%.4f m\n", st.TopWidth)
	fmt.Fprintf(w, "  Wetted perimeter, P:\t%.4f m\n", st.WettedPerimeter)
	fmt.Fprintf(w, "  Hydraulic radius, R:\t%.4f m\n", st.HydraulicRadius)
	fmt.Fprintf(w, "  Hydraulic mean depth, Dm:\t%.4f m\n", st.MeanDepth)
	fmt.Fprintf(w, "  Velocity, V:\t%.4f m/s\n", st.Velocity)
	fmt.Fprintf(w, "  Froude number, Fr:\t%.4f\t(%s)\n", st.Froude, st.Regime())
	fmt.Fprintf(w, "  Velocity head, hv:\t%.4f m\n", st.VelocityHead)
	fmt.Fprintf(w, "  Specific energy, E:\t%.4f m\n", st.SpecificEnergy)
	fmt.Fprintf(w, "  Centroid depth, Z:\t%.4f m\n", st.Centroid)
	fmt.Fprintf(w, "  Momentum, M:\t%.4f m³\n", st.Momentum)
	fmt.Fprintf(w, "  Central angle, β:\t%.2f°\n", st.Beta*180/math.Pi)
	w.Flush()
	fmt.Println()
}
