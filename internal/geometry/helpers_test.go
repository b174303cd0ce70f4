package geometry

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ellipse builds a valid closed outline of n points: TE, upper surface, LE,
// lower surface, TE. Thickness is 10% of chord.
func ellipse(n int) *Geometry {
	g := &Geometry{
		Reference: [2]float64{0.25, 0.0},
		XC:        make([]float64, n),
		YC:        make([]float64, n),
	}
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n-1)
		g.XC[i] = (1 + math.Cos(theta)) / 2
		g.YC[i] = 0.05 * math.Sin(theta)
	}
	return g
}

// mapX returns a copy of g with f applied to every x_c value.
func mapX(g *Geometry, f func(float64) float64) *Geometry {
	out := &Geometry{Reference: g.Reference, XC: make([]float64, len(g.XC)), YC: append([]float64(nil), g.YC...)}
	for i, x := range g.XC {
		out.XC[i] = f(x)
	}
	return out
}

// mapY returns a copy of g with f applied to every y_c value.
func mapY(g *Geometry, f func(float64) float64) *Geometry {
	out := &Geometry{Reference: g.Reference, XC: append([]float64(nil), g.XC...), YC: make([]float64, len(g.YC))}
	for i, y := range g.YC {
		out.YC[i] = f(y)
	}
	return out
}

// writeFile writes content to name inside a fresh temp dir and returns the path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func fixture(name string) string {
	return filepath.Join("testdata", name)
}
