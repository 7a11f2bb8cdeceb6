package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goconduit/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	curvesShowDiagram bool
	curvesExportFile  string
	curvesSamples     int
)

var curvesCmd = &cobra.Command{
	Use:   "curves",
	Short: "Dimensionless circular section property curves",
	Long: `Plot the top width T, area A, wetted perimeter P, central angle β,
hydraulic radius R and centroid depth Z of a unit-diameter circle
against the relative depth h/D.

Examples:
  goconduit curves --diagram
  goconduit curves -o properties.svg`,
	Run: runCurves,
}

func init() {
	rootCmd.AddCommand(curvesCmd)

	curvesCmd.Flags().BoolVar(&curvesShowDiagram, "diagram", true, "Show ASCII property curves")
	curvesCmd.Flags().StringVarP(&curvesExportFile, "output", "o", "", "Export curves to file (png, svg, pdf)")
	curvesCmd.Flags().IntVar(&curvesSamples, "samples", 1000, "Number of depths sampled")
}

func runCurves(cmd *cobra.Command, args []string) {
	pc, err := diagram.SampleDimensionless(curvesSamples)
	if err != nil {
		fmt.Printf("Error sampling curves: %v\n", err)
		return
	}

	if curvesShowDiagram {
		// The terminal is narrower than the sample count
		ascii := pc
		if curvesSamples > 120 {
			if ascii, err = diagram.SampleDimensionless(120); err != nil {
				fmt.Printf("Error sampling curves: %v\n", err)
				return
			}
		}
		fmt.Println(diagram.DrawASCIIDimensionlessCurves(ascii, 20))
	}

	if curvesExportFile != "" {
		if err := diagram.ExportDimensionlessCurves(pc, curvesExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Property curves exported to: %s\n", curvesExportFile)
		}
	}
}
