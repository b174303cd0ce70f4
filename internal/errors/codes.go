// Package errors provides structured error handling for yfoil.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: File errors (reading, writing, decoding)
//   - 4XX: Geometry validation errors
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates file errors, including undecodable content.
	CategoryIO Category = "IO"
	// CategoryValidation indicates a geometry that failed validation.
	CategoryValidation Category = "VALIDATION"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates a bug or broken environment.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates the requested operation failed.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates degraded operation, continuing.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound   = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    = "ERR_102_CONFIG_INVALID"
	ErrCodeConfigPermission = "ERR_103_CONFIG_PERMISSION"

	// File errors (200-299)
	ErrCodeFileNotFound      = "ERR_201_FILE_NOT_FOUND"
	ErrCodeFilePermission    = "ERR_202_FILE_PERMISSION"
	ErrCodeFileRead          = "ERR_203_FILE_READ"
	ErrCodeFileWrite         = "ERR_204_FILE_WRITE"
	ErrCodeGeometryMalformed = "ERR_205_GEOMETRY_MALFORMED"

	// Geometry validation errors (400-499)
	ErrCodeInvalidInput      = "ERR_401_INVALID_INPUT"
	ErrCodeDimensionMismatch = "ERR_402_DIMENSION_MISMATCH"
	ErrCodeTooFewPanels      = "ERR_403_TOO_FEW_PANELS"
	ErrCodeTooManyPanels     = "ERR_404_TOO_MANY_PANELS"
	ErrCodeTrailingEdgeRange = "ERR_405_TRAILING_EDGE_RANGE"
	ErrCodeLeadingEdgeRange  = "ERR_406_LEADING_EDGE_RANGE"
	ErrCodeThicknessRange    = "ERR_407_THICKNESS_RANGE"
	ErrCodeStraddleChord     = "ERR_408_STRADDLE_CHORD"
	ErrCodeEndpointsNotAtTE  = "ERR_409_ENDPOINTS_NOT_AT_TE"
	ErrCodeEmptyGeometry     = "ERR_410_EMPTY_GEOMETRY"

	// Internal errors (500-599)
	ErrCodeInternal     = "ERR_501_INTERNAL"
	ErrCodeRenderFailed = "ERR_502_RENDER_FAILED"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// Numeric portion, e.g. "101" from "ERR_101_CONFIG_NOT_FOUND"
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	case '4':
		return CategoryValidation
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
func severityFromCode(code string) Severity {
	switch code {
	case ErrCodeInternal:
		return SeverityFatal
	case ErrCodeConfigNotFound:
		return SeverityWarning
	default:
		return SeverityError
	}
}
