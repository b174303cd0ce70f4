package geometry

import "math"

// Panel count limits. A geometry of n points describes n-1 panels.
const (
	MinPanels = 100
	MaxPanels = 250
)

// Geometry is a normalised aerofoil outline.
// It is treated as immutable once loaded.
type Geometry struct {
	// Reference is the (x/c, y/c) reference point, e.g. the moment centre.
	Reference [2]float64

	// XC holds chordwise-normalised x coordinates of the surface points.
	XC []float64

	// YC holds chord-normalised y coordinates, index-paired with XC.
	YC []float64
}

// Point is a single surface point.
type Point struct {
	X float64
	Y float64
}

// Extents holds the coordinate bounds of a geometry.
type Extents struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// PointCount returns the number of x_c points.
func (g *Geometry) PointCount() int {
	return len(g.XC)
}

// PanelCount returns the number of panels between consecutive points,
// or 0 for an empty geometry.
func (g *Geometry) PanelCount() int {
	if len(g.XC) == 0 {
		return 0
	}
	return len(g.XC) - 1
}

// Points pairs x_c with y_c. Unpaired trailing values are dropped.
func (g *Geometry) Points() []Point {
	n := min(len(g.XC), len(g.YC))
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i] = Point{X: g.XC[i], Y: g.YC[i]}
	}
	return pts
}

// Extents computes the coordinate bounds with one pass per bound.
// Bounds of an empty sequence are infinite (max -Inf, min +Inf).
func (g *Geometry) Extents() Extents {
	return Extents{
		MaxX: maxOf(g.XC),
		MaxY: maxOf(g.YC),
		MinX: minOf(g.XC),
		MinY: minOf(g.YC),
	}
}

func maxOf(vals []float64) float64 {
	m := math.Inf(-1)
	for _, v := range vals {
		m = math.Max(m, v)
	}
	return m
}

func minOf(vals []float64) float64 {
	m := math.Inf(1)
	for _, v := range vals {
		m = math.Min(m, v)
	}
	return m
}
