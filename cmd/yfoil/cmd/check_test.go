package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	yerrors "github.com/yfoil/yfoil/internal/errors"
)

func TestCheck_ValidFile(t *testing.T) {
	s := newSandbox(t)
	s.copyFixture("naca0012.json", "naca0012.json")

	stdout, _, err := run("check", "naca0012.json")

	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ naca0012.json\n")
	assert.Contains(t, stdout, "    points: 161\n")
	assert.Contains(t, stdout, "    panels: 160\n")
	assert.Contains(t, stdout, "    x/c: 0 .. 1\n")
	assert.NotContains(t, stdout, "yfoil version", "check prints no banner")
}

func TestCheck_DefaultsToConfiguredFile(t *testing.T) {
	s := newSandbox(t)
	s.copyFixture("naca2412.toml", "wing.toml")
	s.write(".yfoil.yaml", "input:\n  file: wing.toml\n")

	stdout, _, err := run("check")

	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ wing.toml\n")
}

func TestCheck_SingleFailureReturnsItsCode(t *testing.T) {
	s := newSandbox(t)
	s.copyFixture("aerofoil_with_invalid_last_point.json", "bad.json")

	stdout, stderr, err := run("check", "bad.json")

	assert.Equal(t, yerrors.ErrCodeEndpointsNotAtTE, yerrors.GetCode(err))
	assert.Contains(t, stdout, "✗ bad.json\n")
	assert.Contains(t, stdout, "    code: ERR_409_ENDPOINTS_NOT_AT_TE\n")
	assert.Contains(t, stderr, "Code: ERR_409_ENDPOINTS_NOT_AT_TE")
}

func TestCheck_ContinuesPastFailures(t *testing.T) {
	// Given: one missing, one malformed and one valid file
	s := newSandbox(t)
	s.copyFixture("malformed_x_c.json", "malformed.json")
	s.copyFixture("naca2412.yaml", "good.yaml")

	// When: checking all three
	stdout, _, err := run("check", "missing.json", "malformed.json", "good.yaml")

	// Then: every file is reported and the summary error counts failures
	require.Error(t, err)
	assert.Equal(t, yerrors.ErrCodeInvalidInput, yerrors.GetCode(err))
	assert.Contains(t, err.Error(), "2 of 3 geometry files failed validation")
	assert.Contains(t, stdout, "✗ missing.json")
	assert.Contains(t, stdout, "✗ malformed.json")
	assert.Contains(t, stdout, "✓ good.yaml")
}

func TestCheck_JSON(t *testing.T) {
	s := newSandbox(t)
	s.copyFixture("naca0012.json", "good.json")
	s.copyFixture("aerofoil_with_invalid_last_point.json", "bad.json")

	stdout, _, err := run("check", "--json", "good.json", "bad.json")
	require.Error(t, err)

	var results []struct {
		File    string `json:"file"`
		Valid   bool   `json:"valid"`
		Points  int    `json:"points"`
		Panels  int    `json:"panels"`
		Extents *struct {
			MinX float64 `json:"min_x"`
			MaxX float64 `json:"max_x"`
		} `json:"extents"`
		Error *struct {
			Code     string            `json:"code"`
			Category string            `json:"category"`
			Details  map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &results))
	require.Len(t, results, 2)

	assert.True(t, results[0].Valid)
	assert.Equal(t, 161, results[0].Points)
	assert.Equal(t, 160, results[0].Panels)
	require.NotNil(t, results[0].Extents)
	assert.Equal(t, 1.0, results[0].Extents.MaxX)
	assert.Nil(t, results[0].Error)

	assert.False(t, results[1].Valid)
	assert.Nil(t, results[1].Extents)
	require.NotNil(t, results[1].Error)
	assert.Equal(t, yerrors.ErrCodeEndpointsNotAtTE, results[1].Error.Code)
	assert.Equal(t, "VALIDATION", results[1].Error.Category)
	assert.Equal(t, "endpoints_at_trailing_edge", results[1].Error.Details["rule"])
}
