package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Level is a named water level drawn on the section sketch
type Level struct {
	Name  string
	Depth float64 // m
}

// DrawASCIIRatingCurve plots discharge against depth sample index
func DrawASCIIRatingCurve(c *RatingCurve, height int) string {
	graph := asciigraph.Plot(c.discharges(),
		asciigraph.Height(height),
		asciigraph.Width(60),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("Q (m³/s) for y = 0 → %.2f m   Qmax = %.2f at y* = %.2f, Qfull = %.2f",
			c.Diameter, c.MaxDischarge, c.MaxDepth, c.FullDischarge)),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  RATING CURVE\n")
	sb.WriteString("  ────────────\n")
	sb.WriteString(graph)
	sb.WriteString("\n")
	return sb.String()
}

// DrawASCIIDimensionlessCurves plots the unit-circle properties against h/D
func DrawASCIIDimensionlessCurves(pc *PropertyCurves, height int) string {
	graph := asciigraph.PlotMany(
		[][]float64{pc.TopWidth, pc.Area, pc.Perimeter, pc.Beta, pc.Radius, pc.Centroid},
		asciigraph.Height(height),
		asciigraph.Width(60),
		asciigraph.Precision(2),
		asciigraph.Caption("T, A, P, β, R, Z for D = 1, h = 0 → 1"),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  DIMENSIONLESS PROPERTIES\n")
	sb.WriteString("  ────────────────────────\n")
	sb.WriteString(graph)
	sb.WriteString("\n")
	return sb.String()
}

// DrawASCIISection sketches the conduit cross-section filled to the first
// level, with every level marked on the right.
func DrawASCIISection(diameter float64, levels []Level) string {
	const (
		rows = 16
		cols = 32 // two columns per row keeps the circle round in a terminal
	)

	r := diameter / 2
	inside := func(i, j int) bool {
		if i < 0 || i >= rows || j < 0 || j >= cols {
			return false
		}
		x := diameter * ((float64(j)+0.5)/cols - 0.5)
		y := diameter*(1-(float64(i)+0.5)/rows) - r
		return x*x+y*y <= r*r
	}

	fill := 0.0
	if len(levels) > 0 {
		fill = levels[0].Depth
	}

	// Row carrying each level's label
	labels := make(map[int][]string)
	for _, lv := range levels {
		row := int(math.Round((1 - lv.Depth/diameter) * rows))
		row = max(0, min(rows-1, row))
		labels[row] = append(labels[row], fmt.Sprintf("%s = %.3f m", lv.Name, lv.Depth))
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  CONDUIT SECTION (D = %.2f m)\n", diameter))
	sb.WriteString("  ───────────────\n")

	for i := 0; i < rows; i++ {
		yRow := diameter * (1 - (float64(i)+0.5)/rows)
		sb.WriteString("  ")
		for j := 0; j < cols; j++ {
			switch {
			case !inside(i, j):
				sb.WriteString(" ")
			case !inside(i-1, j) || !inside(i+1, j) || !inside(i, j-1) || !inside(i, j+1):
				sb.WriteString("#")
			case yRow <= fill:
				sb.WriteString("░")
			default:
				sb.WriteString(" ")
			}
		}
		if l, ok := labels[i]; ok {
			sb.WriteString(" ◄─ " + strings.Join(l, ", "))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
