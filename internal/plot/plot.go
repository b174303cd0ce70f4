// Package plot renders aerofoil geometry as a standalone HTML scatter chart.
package plot

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/yfoil/yfoil/internal/geometry"
)

// DefaultOutput is the file written when no output path is configured.
const DefaultOutput = "aerofoil_geometry.html"

// Options controls chart appearance.
type Options struct {
	Title      string
	Subtitle   string
	Width      int // pixels
	Height     int // pixels
	SymbolSize int
}

// DefaultOptions returns the chart settings used by the CLI.
func DefaultOptions() Options {
	return Options{
		Title:      "Aerofoil geometry",
		Width:      1200,
		Height:     600,
		SymbolSize: 4,
	}
}

// Render writes the chart for g as a complete HTML page to w.
func Render(w io.Writer, g *geometry.Geometry, o Options) error {
	o = withDefaults(o)
	xMin, xMax, yMin, yMax := axisRange(g, o)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: o.Title,
			Width:     fmt.Sprintf("%dpx", o.Width),
			Height:    fmt.Sprintf("%dpx", o.Height),
		}),
		charts.WithTitleOpts(opts.Title{Title: o.Title, Subtitle: o.Subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: true, Right: "10%"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x/c", Type: "value", Min: xMin, Max: xMax}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y/c", Type: "value", Min: yMin, Max: yMax}),
	)

	scatter.AddSeries("surface", surfaceData(g, o.SymbolSize))
	scatter.AddSeries("reference", []opts.ScatterData{{
		Name:       "reference",
		Value:      []float64{g.Reference[0], g.Reference[1]},
		Symbol:     "diamond",
		SymbolSize: o.SymbolSize * 3,
	}})

	return scatter.Render(w)
}

// WriteHTML renders g into a new file at path.
func WriteHTML(path string, g *geometry.Geometry, o Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create plot file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close plot file: %w", cerr)
		}
	}()

	if err := Render(f, g, o); err != nil {
		return fmt.Errorf("render plot: %w", err)
	}
	return nil
}

func surfaceData(g *geometry.Geometry, symbolSize int) []opts.ScatterData {
	pts := g.Points()
	data := make([]opts.ScatterData, len(pts))
	for i, p := range pts {
		data[i] = opts.ScatterData{
			Value:      []float64{p.X, p.Y},
			SymbolSize: symbolSize,
		}
	}
	return data
}

// axisRange keeps one unit of x/c and y/c the same length on screen, so the
// outline is not stretched, while still fitting every point.
func axisRange(g *geometry.Geometry, o Options) (xMin, xMax, yMin, yMax float64) {
	xMin, xMax = -0.05, 1.05
	half := (xMax - xMin) * float64(o.Height) / float64(o.Width) / 2

	if len(g.XC) > 0 && len(g.YC) > 0 {
		ext := g.Extents()
		xMin = math.Min(xMin, ext.MinX)
		xMax = math.Max(xMax, ext.MaxX)
		half = math.Max(half, math.Max(math.Abs(ext.MinY), math.Abs(ext.MaxY)))
	}
	return xMin, xMax, -round3(half), round3(half)
}

// round3 rounds up to three decimals, ignoring float noise below 1e-9.
func round3(v float64) float64 {
	return math.Ceil(v*1000-1e-9) / 1000
}

func withDefaults(o Options) Options {
	d := DefaultOptions()
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.SymbolSize <= 0 {
		o.SymbolSize = d.SymbolSize
	}
	return o
}
