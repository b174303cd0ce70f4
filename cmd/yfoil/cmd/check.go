package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	yerrors "github.com/yfoil/yfoil/internal/errors"
	"github.com/yfoil/yfoil/internal/geometry"
	"github.com/yfoil/yfoil/internal/output"
)

// checkResult is the outcome of checking one geometry file.
type checkResult struct {
	File    string          `json:"file"`
	Valid   bool            `json:"valid"`
	Points  int             `json:"points,omitempty"`
	Panels  int             `json:"panels,omitempty"`
	Extents *checkExtents   `json:"extents,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`

	err *yerrors.YfoilError
}

type checkExtents struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
}

func newCheckCmd(opts *globalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check [FILE...]",
		Short: "Validate geometry files without plotting",
		Long: `Load and validate one or more geometry files, reporting the point count,
panel count and extents of each. With no arguments the configured input
file is checked.

The command exits non-zero if any file fails.`,
		Example: `  # Check the configured input file
  yfoil check

  # Check several files and emit JSON
  yfoil check naca0012.json naca2412.toml --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cfg, err := opts.config()
				if err != nil {
					return err
				}
				args = []string{cfg.Input.File}
			}
			return runCheck(cmd, opts, args, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *globalOptions, files []string, jsonOutput bool) error {
	results := make([]checkResult, 0, len(files))
	failed := 0
	for _, file := range files {
		r := checkFile(file)
		if !r.Valid {
			failed++
		}
		results = append(results, r)
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return yerrors.InternalError("failed to encode results", err)
		}
	} else {
		printCheckResults(output.NewStyled(cmd.OutOrStdout(), opts.noColor), results)
	}

	switch {
	case failed == 0:
		return nil
	case len(results) == 1:
		return results[0].err
	default:
		return yerrors.ValidationError(
			fmt.Sprintf("%d of %d geometry files failed validation", failed, len(results)), nil)
	}
}

func checkFile(file string) checkResult {
	g, err := geometry.Load(file)
	if err != nil {
		ye := yerrors.FromGeometry(err, file)
		r := checkResult{File: file, err: ye}
		if data, jerr := yerrors.FormatJSON(ye); jerr == nil {
			r.Error = data
		}
		return r
	}

	ext := g.Extents()
	return checkResult{
		File:   file,
		Valid:  true,
		Points: g.PointCount(),
		Panels: g.PanelCount(),
		Extents: &checkExtents{
			MinX: ext.MinX,
			MaxX: ext.MaxX,
			MinY: ext.MinY,
			MaxY: ext.MaxY,
		},
	}
}

func printCheckResults(out *output.Writer, results []checkResult) {
	for _, r := range results {
		if !r.Valid {
			out.Errorf("%s", r.File)
			out.KeyValue("error", r.err.Message)
			out.KeyValue("code", r.err.Code)
			continue
		}
		out.Successf("%s", r.File)
		out.KeyValue("points", r.Points)
		out.KeyValue("panels", r.Panels)
		out.KeyValue("x/c", fmt.Sprintf("%s .. %s", formatCoord(r.Extents.MinX), formatCoord(r.Extents.MaxX)))
		out.KeyValue("y/c", fmt.Sprintf("%s .. %s", formatCoord(r.Extents.MinY), formatCoord(r.Extents.MaxY)))
	}
}
