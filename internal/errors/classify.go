package errors

import (
	stderrors "errors"
	"io/fs"
	"strconv"

	"github.com/yfoil/yfoil/internal/geometry"
)

var ruleCodes = map[geometry.Rule]string{
	geometry.RuleEmpty:                   ErrCodeEmptyGeometry,
	geometry.RuleDimensionMismatch:       ErrCodeDimensionMismatch,
	geometry.RuleTooFewPanels:            ErrCodeTooFewPanels,
	geometry.RuleTooManyPanels:           ErrCodeTooManyPanels,
	geometry.RuleTrailingEdgeRange:       ErrCodeTrailingEdgeRange,
	geometry.RuleLeadingEdgeRange:        ErrCodeLeadingEdgeRange,
	geometry.RuleThicknessRange:          ErrCodeThicknessRange,
	geometry.RuleStraddleChord:           ErrCodeStraddleChord,
	geometry.RuleEndpointsAtTrailingEdge: ErrCodeEndpointsNotAtTE,
}

var ruleSuggestions = map[geometry.Rule]string{
	geometry.RuleEmpty:                   "Export the section coordinates into x_c and y_c",
	geometry.RuleDimensionMismatch:       "Every x_c value needs a matching y_c value",
	geometry.RuleTooFewPanels:            "Resample the section with more points around the surface",
	geometry.RuleTooManyPanels:           "Resample the section with fewer points around the surface",
	geometry.RuleTrailingEdgeRange:       "Divide all coordinates by the chord length",
	geometry.RuleLeadingEdgeRange:        "Translate the section so the leading edge sits at the origin",
	geometry.RuleThicknessRange:          "Divide all coordinates by the chord length",
	geometry.RuleStraddleChord:           "Check that y_c holds both upper and lower surface values",
	geometry.RuleEndpointsAtTrailingEdge: "Reorder the points to start and finish at the trailing edge",
}

// FromGeometry classifies an error returned by the geometry package.
// path is recorded as a detail when non-empty. Errors that are already
// YfoilErrors are returned unchanged.
func FromGeometry(err error, path string) *YfoilError {
	if err == nil {
		return nil
	}

	var ye *YfoilError
	if stderrors.As(err, &ye) {
		return ye
	}

	var (
		invalid  *geometry.InvalidGeometryError
		parseErr *geometry.ParseError
		readErr  *geometry.ReadError
	)

	switch {
	case stderrors.As(err, &invalid):
		code, ok := ruleCodes[invalid.Rule]
		if !ok {
			code = ErrCodeInvalidInput
		}
		ye = Wrap(code, err).
			WithDetail("rule", invalid.Rule.String()).
			WithSuggestion(ruleSuggestions[invalid.Rule])
		if invalid.Rule == geometry.RuleDimensionMismatch {
			ye.WithDetail("x_c_len", strconv.Itoa(invalid.XLen)).
				WithDetail("y_c_len", strconv.Itoa(invalid.YLen))
		}

	case stderrors.As(err, &parseErr):
		ye = Wrap(ErrCodeGeometryMalformed, err).
			WithDetail("format", string(parseErr.Format)).
			WithSuggestion("The file needs numeric reference, x_c and y_c fields")

	case stderrors.As(err, &readErr):
		switch {
		case stderrors.Is(err, fs.ErrNotExist):
			ye = Wrap(ErrCodeFileNotFound, err).
				WithSuggestion("Check the path, or set it with --file or YFOIL_FILE")
		case stderrors.Is(err, fs.ErrPermission):
			ye = Wrap(ErrCodeFilePermission, err).
				WithSuggestion("Check the file permissions")
		default:
			ye = Wrap(ErrCodeFileRead, err)
		}

	default:
		ye = Wrap(ErrCodeInternal, err)
	}

	if path != "" {
		ye.WithDetail("path", path)
	}
	return ye
}
