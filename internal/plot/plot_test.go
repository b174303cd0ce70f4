package plot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yfoil/yfoil/internal/geometry"
)

func loadFixture(t *testing.T) *geometry.Geometry {
	t.Helper()
	g, err := geometry.Load(filepath.Join("..", "geometry", "testdata", "naca0012.json"))
	require.NoError(t, err)
	return g
}

func TestRender_WritesHTMLPage(t *testing.T) {
	// Given: a valid geometry
	g := loadFixture(t)
	buf := &bytes.Buffer{}

	// When: rendering with a custom title
	o := DefaultOptions()
	o.Title = "NACA 0012"
	o.Subtitle = "naca0012.json"
	err := Render(buf, g, o)

	// Then: a full page with a scatter series and the title is produced
	require.NoError(t, err)
	html := buf.String()
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "<title>NACA 0012</title>")
	assert.Contains(t, html, `"type":"scatter"`)
	assert.Contains(t, html, "naca0012.json")
	assert.Contains(t, html, `"name":"surface"`)
	assert.Contains(t, html, `"name":"reference"`)
	assert.Contains(t, html, "1200px")
}

func TestRender_ZeroOptionsUseDefaults(t *testing.T) {
	buf := &bytes.Buffer{}

	require.NoError(t, Render(buf, loadFixture(t), Options{}))

	assert.Contains(t, buf.String(), "<title>Aerofoil geometry</title>")
}

func TestWriteHTML_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultOutput)

	err := WriteHTML(path, loadFixture(t), DefaultOptions())

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "echarts")
}

func TestWriteHTML_BadDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "plot.html")

	err := WriteHTML(path, loadFixture(t), DefaultOptions())

	assert.ErrorContains(t, err, "create plot file")
}

func TestAxisRange_KeepsAspectRatio(t *testing.T) {
	g := loadFixture(t)

	xMin, xMax, yMin, yMax := axisRange(g, Options{Width: 1100, Height: 500})

	assert.Equal(t, -0.05, xMin)
	assert.Equal(t, 1.05, xMax)
	assert.Equal(t, 0.25, yMax)
	assert.Equal(t, -yMax, yMin)
}

func TestAxisRange_GrowsToFitThickSections(t *testing.T) {
	g := &geometry.Geometry{XC: []float64{1, 0, 1}, YC: []float64{0, 0.9, -0.4}}

	_, _, yMin, yMax := axisRange(g, DefaultOptions())

	assert.Equal(t, 0.9, yMax)
	assert.Equal(t, -0.9, yMin)
}
