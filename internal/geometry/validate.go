package geometry

import "log/slog"

// Coordinate bounds for a chord-normalised outline.
const (
	trailingEdgeMinX = 0.95
	trailingEdgeMaxX = 1.05
	leadingEdgeMinX  = -0.05
	leadingEdgeMaxX  = 0.05
	maxAbsY          = 1.0
)

// extentRule is a rule evaluated once the point counts are known to be sane.
type extentRule struct {
	rule   Rule
	failed func(g *Geometry, ext Extents) bool
}

// extentRules run in order after the count rules pass.
var extentRules = []extentRule{
	{RuleTrailingEdgeRange, func(_ *Geometry, ext Extents) bool {
		return ext.MaxX < trailingEdgeMinX || ext.MaxX > trailingEdgeMaxX
	}},
	{RuleLeadingEdgeRange, func(_ *Geometry, ext Extents) bool {
		return ext.MinX < leadingEdgeMinX || ext.MinX > leadingEdgeMaxX
	}},
	{RuleThicknessRange, func(_ *Geometry, ext Extents) bool {
		return ext.MaxY > maxAbsY || ext.MinY < -maxAbsY
	}},
	{RuleStraddleChord, func(_ *Geometry, ext Extents) bool {
		return ext.MaxY < 0.0 || ext.MinY > 0.0
	}},
	{RuleEndpointsAtTrailingEdge, func(g *Geometry, _ Extents) bool {
		return g.XC[0] < trailingEdgeMinX || g.XC[len(g.XC)-1] < trailingEdgeMinX
	}},
}

// Validate checks that g is a plausible normalised aerofoil outline.
// It returns nil or an *InvalidGeometryError for the first rule that fails.
// A nil geometry is reported as empty.
func Validate(g *Geometry) error {
	if g == nil {
		return &InvalidGeometryError{Rule: RuleEmpty}
	}

	nx, ny := len(g.XC), len(g.YC)
	switch {
	case nx == 0 && ny == 0:
		return &InvalidGeometryError{Rule: RuleEmpty}
	case nx != ny:
		return &InvalidGeometryError{Rule: RuleDimensionMismatch, XLen: nx, YLen: ny}
	case nx <= MinPanels:
		return &InvalidGeometryError{Rule: RuleTooFewPanels, Limit: MinPanels}
	case nx > MaxPanels+1:
		return &InvalidGeometryError{Rule: RuleTooManyPanels, Limit: MaxPanels}
	}

	ext := g.Extents()
	slog.Debug("geometry extents",
		slog.Int("points", nx),
		slog.Float64("min_x", ext.MinX),
		slog.Float64("max_x", ext.MaxX),
		slog.Float64("min_y", ext.MinY),
		slog.Float64("max_y", ext.MaxY))

	for _, r := range extentRules {
		if r.failed(g, ext) {
			return &InvalidGeometryError{Rule: r.rule}
		}
	}
	return nil
}
