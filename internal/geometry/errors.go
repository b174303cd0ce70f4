package geometry

import "fmt"

// Rule identifies a single validation rule.
type Rule int

// Rules in evaluation order.
const (
	RuleEmpty Rule = iota + 1
	RuleDimensionMismatch
	RuleTooFewPanels
	RuleTooManyPanels
	RuleTrailingEdgeRange
	RuleLeadingEdgeRange
	RuleThicknessRange
	RuleStraddleChord
	RuleEndpointsAtTrailingEdge
)

// String returns the snake_case rule name.
func (r Rule) String() string {
	switch r {
	case RuleEmpty:
		return "empty_geometry"
	case RuleDimensionMismatch:
		return "dimension_mismatch"
	case RuleTooFewPanels:
		return "too_few_panels"
	case RuleTooManyPanels:
		return "too_many_panels"
	case RuleTrailingEdgeRange:
		return "trailing_edge_range"
	case RuleLeadingEdgeRange:
		return "leading_edge_range"
	case RuleThicknessRange:
		return "thickness_range"
	case RuleStraddleChord:
		return "straddle_chord"
	case RuleEndpointsAtTrailingEdge:
		return "endpoints_at_trailing_edge"
	default:
		return "unknown"
	}
}

// InvalidGeometryError reports the first validation rule a geometry broke.
// Only the fields relevant to Rule are set.
type InvalidGeometryError struct {
	Rule Rule

	// XLen and YLen are set for RuleDimensionMismatch.
	XLen int
	YLen int

	// Limit is the panel bound for RuleTooFewPanels and RuleTooManyPanels.
	Limit int
}

// Sentinels for errors.Is. Matching compares Rule only.
var (
	ErrEmptyGeometry           = &InvalidGeometryError{Rule: RuleEmpty}
	ErrDimensionMismatch       = &InvalidGeometryError{Rule: RuleDimensionMismatch}
	ErrTooFewPanels            = &InvalidGeometryError{Rule: RuleTooFewPanels, Limit: MinPanels}
	ErrTooManyPanels           = &InvalidGeometryError{Rule: RuleTooManyPanels, Limit: MaxPanels}
	ErrTrailingEdgeRange       = &InvalidGeometryError{Rule: RuleTrailingEdgeRange}
	ErrLeadingEdgeRange        = &InvalidGeometryError{Rule: RuleLeadingEdgeRange}
	ErrThicknessRange          = &InvalidGeometryError{Rule: RuleThicknessRange}
	ErrStraddleChord           = &InvalidGeometryError{Rule: RuleStraddleChord}
	ErrEndpointsAtTrailingEdge = &InvalidGeometryError{Rule: RuleEndpointsAtTrailingEdge}
)

// Error implements the error interface.
func (e *InvalidGeometryError) Error() string {
	switch e.Rule {
	case RuleEmpty:
		return "geometry contains no points: x_c and y_c are both empty"
	case RuleDimensionMismatch:
		return fmt.Sprintf("x_c and y_c must be the same length (x_c has %d points, y_c has %d points)", e.XLen, e.YLen)
	case RuleTooFewPanels:
		return fmt.Sprintf("too few points: the geometry must describe more than %d panels", e.Limit)
	case RuleTooManyPanels:
		return fmt.Sprintf("too many points: the geometry must describe at most %d panels", e.Limit)
	case RuleTrailingEdgeRange:
		return "maximum x/c must lie between 0.95 and 1.05: the trailing edge should sit at x/c = 1 (is the geometry normalised by chord?)"
	case RuleLeadingEdgeRange:
		return "minimum x/c must lie between -0.05 and 0.05: the leading edge should sit at x/c = 0 (is the geometry normalised by chord?)"
	case RuleThicknessRange:
		return "y/c values must lie between -1.0 and 1.0 (is the geometry normalised by chord?)"
	case RuleStraddleChord:
		return "y/c values must lie on both sides of the chord line: the surface should pass above and below y/c = 0"
	case RuleEndpointsAtTrailingEdge:
		return "points should be ordered from TE, around the LE and back to the TE: the first and last x/c values must both be at least 0.95"
	default:
		return "invalid geometry"
	}
}

// Is matches another *InvalidGeometryError with the same Rule.
func (e *InvalidGeometryError) Is(target error) bool {
	if t, ok := target.(*InvalidGeometryError); ok {
		return e.Rule == t.Rule
	}
	return false
}

// ReadError is returned when a geometry file cannot be opened or read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read geometry file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ParseError is returned when file contents do not decode into a geometry.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse geometry as %s: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("parse geometry file %s as %s: %v", e.Path, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
