package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidGeometry_Passes(t *testing.T) {
	for _, n := range []int{101, 160, 201, 251} {
		// Given: a well-formed outline of n points
		g := ellipse(n)

		// When/Then: it validates
		assert.NoError(t, Validate(g), "points=%d", n)
	}
}

func TestValidate_DimensionMismatch_ReportsBothLengths(t *testing.T) {
	tests := []struct {
		name string
		nx   int
		ny   int
	}{
		{"y longer", 161, 162},
		{"x longer", 161, 160},
		// Would also fail the panel floor; the mismatch must win.
		{"both short", 5, 7},
		// Would also fail the panel ceiling.
		{"both long", 300, 299},
		{"x empty", 0, 161},
		{"y empty", 161, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: arrays of different lengths
			g := &Geometry{XC: make([]float64, tt.nx), YC: make([]float64, tt.ny)}

			// When: validating
			err := Validate(g)

			// Then: the dimension error fires, carrying both lengths
			var ie *InvalidGeometryError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, RuleDimensionMismatch, ie.Rule)
			assert.Equal(t, tt.nx, ie.XLen)
			assert.Equal(t, tt.ny, ie.YLen)
			assert.True(t, errors.Is(err, ErrDimensionMismatch))
		})
	}
}

func TestValidate_PanelCountBoundaries(t *testing.T) {
	tests := []struct {
		points    int
		wantRule  Rule
		wantLimit int
	}{
		{points: 100, wantRule: RuleTooFewPanels, wantLimit: 100},
		{points: 101},
		{points: 251},
		{points: 252, wantRule: RuleTooManyPanels, wantLimit: 250},
	}

	for _, tt := range tests {
		// Given: an otherwise valid outline with the given point count
		g := ellipse(tt.points)

		// When: validating
		err := Validate(g)

		// Then: only the boundary cases are rejected, with the limit in the payload
		if tt.wantRule == 0 {
			assert.NoError(t, err, "points=%d", tt.points)
			continue
		}
		var ie *InvalidGeometryError
		require.ErrorAs(t, err, &ie, "points=%d", tt.points)
		assert.Equal(t, tt.wantRule, ie.Rule)
		assert.Equal(t, tt.wantLimit, ie.Limit)
	}
}

func TestValidate_TooFewPanels_Message(t *testing.T) {
	err := Validate(ellipse(100))
	require.Error(t, err)
	assert.Equal(t, "too few points: the geometry must describe more than 100 panels", err.Error())
}

func TestValidate_TooManyPanels_Message(t *testing.T) {
	err := Validate(ellipse(252))
	require.Error(t, err)
	assert.Equal(t, "too many points: the geometry must describe at most 250 panels", err.Error())
}

func TestValidate_EachRuleFiresAlone(t *testing.T) {
	base := ellipse(161)

	tests := []struct {
		name string
		g    *Geometry
		want *InvalidGeometryError
	}{
		{
			name: "trailing edge short of 0.95",
			g:    mapX(base, func(x float64) float64 { return 0.9 * x }),
			want: ErrTrailingEdgeRange,
		},
		{
			name: "trailing edge beyond 1.05",
			g:    mapX(base, func(x float64) float64 { return 1.1 * x }),
			want: ErrTrailingEdgeRange,
		},
		{
			name: "leading edge behind 0.05",
			g:    mapX(base, func(x float64) float64 { return 0.1 + 0.9*x }),
			want: ErrLeadingEdgeRange,
		},
		{
			name: "leading edge ahead of -0.05",
			g:    mapX(base, func(x float64) float64 { return 1.08*x - 0.08 }),
			want: ErrLeadingEdgeRange,
		},
		{
			name: "y above 1",
			g:    mapY(base, func(y float64) float64 { return 30 * y }),
			want: ErrThicknessRange,
		},
		{
			name: "all y above chord",
			g:    mapY(base, func(y float64) float64 { return math.Abs(y) + 0.01 }),
			want: ErrStraddleChord,
		},
		{
			name: "all y below chord",
			g:    mapY(base, func(y float64) float64 { return -math.Abs(y) - 0.01 }),
			want: ErrStraddleChord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.g)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestValidate_LastPointAwayFromTrailingEdge_FailsLast(t *testing.T) {
	// Given: a geometry valid on every other rule but ending at x/c = 0.90
	g := ellipse(161)
	g.XC[len(g.XC)-1] = 0.90

	// When: validating
	err := Validate(g)

	// Then: the endpoint rule fires with its guidance message
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEndpointsAtTrailingEdge))
	assert.Equal(t,
		"points should be ordered from TE, around the LE and back to the TE: the first and last x/c values must both be at least 0.95",
		err.Error())
}

func TestValidate_FirstPointAwayFromTrailingEdge_Fails(t *testing.T) {
	g := ellipse(161)
	g.XC[0] = 0.5

	err := Validate(g)

	assert.True(t, errors.Is(err, ErrEndpointsAtTrailingEdge))
}

func TestValidate_ReportsEarliestRuleOnly(t *testing.T) {
	// Given: a geometry breaking the trailing edge, thickness and endpoint rules
	g := mapY(mapX(ellipse(161), func(x float64) float64 { return 0.5 * x }), func(y float64) float64 { return 40 * y })

	// When: validating
	err := Validate(g)

	// Then: only the earliest rule is reported
	var ie *InvalidGeometryError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, RuleTrailingEdgeRange, ie.Rule)
	assert.False(t, errors.Is(err, ErrThicknessRange))
}

func TestValidate_Empty(t *testing.T) {
	tests := []struct {
		name string
		g    *Geometry
	}{
		{"nil geometry", nil},
		{"nil slices", &Geometry{}},
		{"empty slices", &Geometry{XC: []float64{}, YC: []float64{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.g)
			assert.True(t, errors.Is(err, ErrEmptyGeometry), "got %v", err)
		})
	}
}

func TestInvalidGeometryError_Is_MatchesByRule(t *testing.T) {
	// Given: two errors for the same rule with different payloads
	a := &InvalidGeometryError{Rule: RuleDimensionMismatch, XLen: 1, YLen: 2}
	b := &InvalidGeometryError{Rule: RuleDimensionMismatch, XLen: 3, YLen: 4}

	// Then: they match each other but not other rules or foreign errors
	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, ErrTooFewPanels))
	assert.False(t, errors.Is(a, errors.New("dimension_mismatch")))
}

func TestRule_String(t *testing.T) {
	assert.Equal(t, "empty_geometry", RuleEmpty.String())
	assert.Equal(t, "dimension_mismatch", RuleDimensionMismatch.String())
	assert.Equal(t, "endpoints_at_trailing_edge", RuleEndpointsAtTrailingEdge.String())
	assert.Equal(t, "unknown", Rule(99).String())
}

func TestGeometry_Extents(t *testing.T) {
	g := &Geometry{
		XC: []float64{1.0, 0.5, 0.0, 0.5, 1.0},
		YC: []float64{0.0, 0.1, 0.0, -0.2, 0.0},
	}

	ext := g.Extents()

	assert.Equal(t, Extents{MinX: 0.0, MaxX: 1.0, MinY: -0.2, MaxY: 0.1}, ext)
	assert.Equal(t, 5, g.PointCount())
	assert.Equal(t, 4, g.PanelCount())
}

func TestGeometry_Extents_EmptyIsInfinite(t *testing.T) {
	ext := (&Geometry{}).Extents()

	assert.True(t, math.IsInf(ext.MaxX, -1))
	assert.True(t, math.IsInf(ext.MinX, 1))
	assert.Equal(t, 0, (&Geometry{}).PanelCount())
}

func TestGeometry_Points_PairsCoordinates(t *testing.T) {
	g := &Geometry{XC: []float64{1, 0, 1}, YC: []float64{0, 0.1}}

	pts := g.Points()

	assert.Equal(t, []Point{{X: 1, Y: 0}, {X: 0, Y: 0.1}}, pts)
}
