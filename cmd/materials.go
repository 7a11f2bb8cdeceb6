package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/goconduit/internal/roughness"
	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List conduit materials and their Manning roughness",
	Long: `List the conduit materials accepted by --material, with the
minimum, design and maximum Manning n of each.

The design value is used when --roughness is not given.`,
	Run: runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}

func runMaterials(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println("MANNING ROUGHNESS - CLOSED CONDUITS FLOWING PARTLY FULL")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID\tMin\tDesign\tMax\tDescription\n")
	fmt.Fprintf(w, "  ──\t───\t──────\t───\t───────────\n")
	for _, m := range roughness.Materials {
		fmt.Fprintf(w, "  %s\t%.3f\t%.3f\t%.3f\t%s\n", m.ID, m.Min, m.Normal, m.Max, m.Description)
	}
	w.Flush()
	fmt.Println()
}
