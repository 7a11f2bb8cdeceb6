package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/goconduit/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	capacityFlags       conduitFlags
	capacityShowDiagram bool
	capacityExportFile  string
	capacitySamples     int
)

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Full-pipe discharge and maximum conveyance",
	Long: `Calculate the full-pipe discharge and the maximum conveyance of a
circular conduit.

The discharge of a circular section peaks at about 0.94 D and then
falls toward the full-pipe value, because the wetted perimeter grows
faster than the area near the crown.

Examples:
  goconduit capacity -D 3.5 -n 0.016 -s 0.006
  goconduit capacity -D 3.5 -n 0.016 -s 0.006 --diagram
  goconduit capacity -D 3.5 -n 0.016 -s 0.006 -o rating.png`,
	Run: runCapacity,
}

func init() {
	rootCmd.AddCommand(capacityCmd)

	capacityFlags.register(capacityCmd)

	// Diagram options
	capacityCmd.Flags().BoolVar(&capacityShowDiagram, "diagram", false, "Show ASCII rating curve")
	capacityCmd.Flags().StringVarP(&capacityExportFile, "output", "o", "", "Export rating curve to file (png, svg, pdf)")
	capacityCmd.Flags().IntVar(&capacitySamples, "samples", 1000, "Number of depths sampled for the rating curve")
}

func runCapacity(cmd *cobra.Command, args []string) {
	c, err := capacityFlags.load()
	if err != nil {
		fmt.Printf("Error loading conduit: %v\n", err)
		return
	}

	s, err := capacityFlags.solver(c)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	full, err := s.FullDischarge()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	y, qmax := s.MaxConveyance()
	in := s.Inputs()

	printHeader("CIRCULAR CONDUIT CAPACITY - MANNING")
	printInputs(c, in)

	fmt.Println("CAPACITY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Full-pipe discharge, Qfull:\t%.4f m³/s\n", full)
	fmt.Fprintf(w, "  Depth of maximum conveyance, y*:\t%.4f m\t(y*/D = %.4f)\n", y, y/in.Diameter)
	fmt.Fprintf(w, "  Maximum discharge, Qmax:\t%.4f m³/s\t(Qmax/Qfull = %.4f)\n", qmax, qmax/full)
	if in.Discharge > 0 {
		fmt.Fprintf(w, "  Utilization, Q/Qmax:\t%.1f %%\n", 100*in.Discharge/qmax)
	}
	w.Flush()
	fmt.Println()

	if !capacityShowDiagram && capacityExportFile == "" {
		return
	}

	curve, err := diagram.SampleRatingCurve(s, capacitySamples)
	if err != nil {
		fmt.Printf("Error sampling rating curve: %v\n", err)
		return
	}

	if capacityShowDiagram {
		fmt.Println(diagram.DrawASCIIRatingCurve(curve, 15))
	}

	if capacityExportFile != "" {
		if err := diagram.ExportRatingCurve(curve, capacityExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Rating curve exported to: %s\n", capacityExportFile)
		}
	}
}
