package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goconduit/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	solveFlags       conduitFlags
	solveShowDiagram bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Uniform and critical flow properties",
	Long: `Calculate the uniform (normal) and critical flow properties of a
partially-full circular conduit.

Give either the discharge Q, or the water depth h (Q is then derived
from Manning's equation at that depth).

Examples:
  goconduit solve -D 3.5 -n 0.016 -s 0.006 -q 10
  goconduit solve -D 3.5 -n 0.016 -s 0.006 -y 2.0
  goconduit solve -D 1.2 -m concrete -s 0.002 -q 0.8 --diagram
  goconduit solve -f culvert.json`,
	Run: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveFlags.register(solveCmd)
	solveCmd.Flags().BoolVar(&solveShowDiagram, "diagram", false, "Show ASCII section sketch with normal and critical depths")
}

func runSolve(cmd *cobra.Command, args []string) {
	c, err := solveFlags.load()
	if err != nil {
		fmt.Printf("Error loading conduit: %v\n", err)
		return
	}

	s, err := solveFlags.solver(c)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printHeader("CIRCULAR CONDUIT FLOW - MANNING")
	printInputs(c, s.Inputs())

	if st, ok := s.State(); ok {
		printState("FLOW AT GIVEN DEPTH:", st)
	}

	uniform, err := s.UniformFlowProperties()
	if err != nil {
		fmt.Printf("Error solving uniform flow: %v\n", err)
		return
	}
	printState("UNIFORM FLOW:", uniform)

	critical, err := s.CriticalFlowProperties()
	if err != nil {
		fmt.Printf("Error solving critical flow: %v\n", err)
		return
	}
	printState("CRITICAL FLOW:", critical)

	fmt.Println("STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	switch {
	case uniform.Depth > critical.Depth:
		fmt.Println("  Mild slope: normal depth above critical depth (subcritical uniform flow)")
	case uniform.Depth < critical.Depth:
		fmt.Println("  Steep slope: normal depth below critical depth (supercritical uniform flow)")
	default:
		fmt.Println("  Critical slope: normal depth equals critical depth")
	}
	if in := s.Inputs(); in.Depth > 0 {
		if y, _ := s.MaxConveyance(); in.Depth > y {
			fmt.Printf("  Note: h = %.4f m lies above the depth of maximum conveyance y* = %.4f m;\n", in.Depth, y)
			fmt.Println("  the uniform depth reported is the lower depth carrying the same discharge.")
		}
	}
	fmt.Println()

	if solveShowDiagram {
		fmt.Println(diagram.DrawASCIISection(s.Inputs().Diameter, []diagram.Level{
			{Name: "yn", Depth: uniform.Depth},
			{Name: "yc", Depth: critical.Depth},
		}))
	}
}
