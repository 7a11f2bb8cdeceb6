package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportRatingCurve exports the rating curve with its conveyance peak to an image file
func ExportRatingCurve(c *RatingCurve, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Circular Section Rating Curve\n(Qmax = %.2f m³/s, y* = %.2f m, Qfull = %.2f m³/s)",
		c.MaxDischarge, c.MaxDepth, c.FullDischarge)
	p.X.Label.Text = "Water depth (m)"
	p.Y.Label.Text = "Discharge (m³/s)"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(c.Points))
	for i, pt := range c.Points {
		pts[i] = plotter.XY{X: pt.Depth, Y: pt.Discharge}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)
	p.Legend.Add("Q(y)", line)

	peak, err := plotter.NewScatter(plotter.XYs{{X: c.MaxDepth, Y: c.MaxDischarge}})
	if err != nil {
		return err
	}
	peak.GlyphStyle.Shape = draw.CircleGlyph{}
	peak.GlyphStyle.Radius = vg.Points(4)
	peak.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	p.Add(peak)
	p.Legend.Add("maximum conveyance", peak)

	full, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: c.FullDischarge},
		{X: c.Diameter, Y: c.FullDischarge},
	})
	if err != nil {
		return err
	}
	full.LineStyle.Color = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	full.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(full)
	p.Legend.Add("full pipe", full)
	p.Legend.Top = true
	p.Legend.Left = true

	return save(p, filename)
}

// ExportDimensionlessCurves exports the unit-circle property curves to an image file
func ExportDimensionlessCurves(pc *PropertyCurves, filename string) error {
	p := plot.New()
	p.Title.Text = "Circular Section Dimensionless Properties"
	p.X.Label.Text = "h / D"
	p.Y.Label.Text = "β, T, A, P, R, Z"
	p.Add(plotter.NewGrid())

	series := []struct {
		name  string
		ys    []float64
		color color.RGBA
		dash  bool
	}{
		{"Top width (T)", pc.TopWidth, color.RGBA{R: 255, A: 255}, true},
		{"Area (A)", pc.Area, color.RGBA{G: 128, A: 255}, true},
		{"Wetted perimeter (P)", pc.Perimeter, color.RGBA{B: 255, A: 255}, false},
		{"β", pc.Beta, color.RGBA{R: 255, B: 255, A: 255}, true},
		{"Hydraulic radius (R)", pc.Radius, color.RGBA{A: 255}, false},
		{"Centroid depth (Z)", pc.Centroid, color.RGBA{G: 255, B: 255, A: 255}, true},
	}

	for _, s := range series {
		pts := make(plotter.XYs, len(pc.Depth))
		for i := range pc.Depth {
			pts[i] = plotter.XY{X: pc.Depth[i], Y: s.ys[i]}
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Color = s.color
		if s.dash {
			l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		}
		p.Add(l)
		p.Legend.Add(s.name, l)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	return save(p, filename)
}

// save writes the plot in the format given by the file extension, png by default
func save(p *plot.Plot, filename string) error {
	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
