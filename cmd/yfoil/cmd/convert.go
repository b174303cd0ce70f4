package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	yerrors "github.com/yfoil/yfoil/internal/errors"
	"github.com/yfoil/yfoil/internal/geometry"
	"github.com/yfoil/yfoil/internal/output"
)

func newConvertCmd(opts *globalOptions) *cobra.Command {
	var to, outPath string

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Rewrite a geometry file in another format",
		Long: `Load and validate a geometry file, then write it as JSON, YAML or TOML.

The output defaults to FILE with its extension replaced. Use --out - to write
to stdout. Only valid geometry is converted.`,
		Example: `  # Write naca0012.yaml next to naca0012.json
  yfoil convert naca0012.json --to yaml

  # Print TOML
  yfoil convert naca0012.json --to toml --out -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args[0], to, outPath)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Target format: json, yaml or toml")
	cmd.Flags().StringVar(&outPath, "out", "", "Output path (default: FILE with the new extension, - for stdout)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runConvert(cmd *cobra.Command, opts *globalOptions, file, to, outPath string) error {
	format, err := geometry.ParseFormat(to)
	if err != nil {
		return yerrors.ValidationError(err.Error(), err).
			WithSuggestion("Use --to json, --to yaml or --to toml")
	}

	g, err := geometry.Load(file)
	if err != nil {
		return yerrors.FromGeometry(err, file)
	}

	if outPath == "-" {
		if err := geometry.Encode(cmd.OutOrStdout(), g, format); err != nil {
			return yerrors.InternalError(err.Error(), err)
		}
		return nil
	}

	if outPath == "" {
		outPath = strings.TrimSuffix(file, filepath.Ext(file)) + format.Extension()
	}
	if filepath.Clean(outPath) == filepath.Clean(file) {
		return yerrors.ValidationError(fmt.Sprintf("refusing to overwrite input file %s", file), nil).
			WithSuggestion("Choose a different path with --out")
	}

	if err := geometry.Write(outPath, g, format); err != nil {
		return yerrors.New(yerrors.ErrCodeFileWrite, err.Error(), err).
			WithDetail("path", outPath)
	}

	out := output.NewStyled(cmd.OutOrStdout(), opts.noColor)
	out.Successf("Converted %s to %s", file, outPath)
	out.KeyValue("format", format)
	out.KeyValue("points", g.PointCount())
	return nil
}
