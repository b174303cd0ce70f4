// Package cmd provides the CLI commands for yfoil.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yfoil/yfoil/internal/config"
	yerrors "github.com/yfoil/yfoil/internal/errors"
	"github.com/yfoil/yfoil/internal/geometry"
	"github.com/yfoil/yfoil/internal/logging"
	"github.com/yfoil/yfoil/internal/output"
	"github.com/yfoil/yfoil/internal/plot"
	"github.com/yfoil/yfoil/internal/profiling"
	"github.com/yfoil/yfoil/pkg/version"
)

// globalOptions holds persistent flags and state shared by every command.
type globalOptions struct {
	debug      bool
	noColor    bool
	profileCPU string
	profileMem string
	stderr     io.Writer
	cfg        *config.Config
	cfgErr     error
	logCleanup func()
	profiler   *profiling.Session
}

// NewRootCmd creates the root command for the yfoil CLI.
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

func newRootCmd() (*cobra.Command, *globalOptions) {
	opts := &globalOptions{stderr: os.Stderr}
	var file, out, title string

	cmd := &cobra.Command{
		Use:   "yfoil",
		Short: "Load, validate and plot aerofoil geometry",
		Long: `yfoil reads a chord-normalised aerofoil outline, checks that it is a
plausible aerofoil and writes it as an HTML scatter plot.

The geometry file holds a reference point and matching x/c and y/c arrays,
ordered from the trailing edge around the leading edge and back. JSON, YAML
and TOML are accepted; the file extension picks the format.`,
		Example: `  # Plot aerofoil.json into aerofoil_geometry.html
  yfoil

  # Plot another file with a custom title
  yfoil --file naca2412.yaml --title "NACA 2412" --output naca2412.html`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("file") {
				cfg.Input.File = file
			}
			if cmd.Flags().Changed("output") {
				cfg.Plot.Output = out
			}
			if cmd.Flags().Changed("title") {
				cfg.Plot.Title = title
			}
			return runPlot(output.NewStyled(cmd.OutOrStdout(), opts.noColor), cfg)
		},
	}

	cmd.SetVersionTemplate("yfoil version {{.Version}}\n")

	cmd.Flags().StringVarP(&file, "file", "f", config.DefaultInputFile, "Path of the aerofoil geometry file")
	cmd.Flags().StringVarP(&out, "output", "o", config.DefaultPlotOutput, "Path of the HTML plot to write")
	cmd.Flags().StringVar(&title, "title", config.DefaultPlotTitle, "Plot title")

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging to ~/.yfoil/logs/")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")
	cmd.PersistentFlags().StringVar(&opts.profileCPU, "profile-cpu", "", "Write CPU profile to file")
	cmd.PersistentFlags().StringVar(&opts.profileMem, "profile-mem", "", "Write memory profile to file")

	cmd.PersistentPreRunE = opts.start
	cmd.PersistentPostRunE = opts.stop

	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newConvertCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd, opts
}

// start loads configuration, then sets up logging and profiling.
// A configuration error is kept for the commands that need it.
func (o *globalOptions) start(_ *cobra.Command, _ []string) error {
	o.cfg, o.cfgErr = config.Load(".")

	logCfg := logging.DefaultConfig()
	if o.cfg != nil {
		logCfg.Level = o.cfg.Logging.Level
	}
	if o.debug {
		logCfg = logging.DebugConfig()
		if err := logging.EnsureLogDir(); err != nil {
			return yerrors.New(yerrors.ErrCodeFileWrite, "failed to create log directory", err)
		}
	}
	logCfg.Stderr = o.stderr

	cleanup, err := logging.SetupDefault(logCfg)
	if err != nil {
		return yerrors.New(yerrors.ErrCodeFileWrite, "failed to set up logging", err)
	}
	o.logCleanup = cleanup
	if o.debug {
		slog.Debug("debug logging enabled",
			slog.String("log_file", logCfg.FilePath),
			slog.String("version", version.Version))
	}

	o.profiler, err = profiling.Start(o.profileCPU, o.profileMem)
	if err != nil {
		return yerrors.New(yerrors.ErrCodeFileWrite, "failed to start profiling", err)
	}
	return nil
}

// stop writes profiles and closes the log file. It also runs after a
// failed command, from Execute.
func (o *globalOptions) stop(_ *cobra.Command, _ []string) error {
	var err error
	if o.profiler != nil {
		if perr := o.profiler.Stop(); perr != nil {
			err = yerrors.New(yerrors.ErrCodeFileWrite, "failed to write profile", perr)
		}
		o.profiler = nil
	}
	if o.logCleanup != nil {
		o.logCleanup()
		o.logCleanup = nil
	}
	return err
}

// config returns the loaded configuration or a coded configuration error.
func (o *globalOptions) config() (*config.Config, error) {
	if o.cfgErr != nil {
		return nil, yerrors.ConfigError(o.cfgErr.Error(), o.cfgErr).
			WithSuggestion("Fix the file or variable named above, or run 'yfoil config show' after correcting it")
	}
	if o.cfg == nil {
		return config.NewConfig(), nil
	}
	cfg := *o.cfg
	return &cfg, nil
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) error {
	cmd, opts := newRootCmd()
	opts.stderr = stderr
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return nil
	}
	ye := classify(err)
	slog.Debug("command failed", logAttrs(ye)...)
	_ = opts.stop(cmd, nil)

	if opts.debug {
		_, _ = fmt.Fprintln(opts.stderr, yerrors.FormatForUser(ye, true))
	} else {
		_, _ = fmt.Fprint(opts.stderr, yerrors.FormatForCLI(ye))
	}
	return ye
}

// classify turns any error reaching the top level into a YfoilError.
// Uncoded errors come from cobra itself: bad flags or arguments.
func classify(err error) *yerrors.YfoilError {
	var ye *yerrors.YfoilError
	if errors.As(err, &ye) {
		return ye
	}
	return yerrors.ValidationError(err.Error(), err).
		WithSuggestion("Run 'yfoil --help' for usage")
}

func logAttrs(err error) []any {
	fields := yerrors.FormatForLog(err)
	attrs := make([]any, 0, len(fields))
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	return attrs
}

// runPlot loads the configured geometry and writes its plot.
func runPlot(out *output.Writer, cfg *config.Config) error {
	out.Banner(version.Version)

	path := cfg.Input.File
	out.Linef("Reading aerofoil input file at %s", path)
	g, err := geometry.Load(path)
	if err != nil {
		return yerrors.FromGeometry(err, path)
	}

	out.Linef("Reference x/c, y/c : %s, %s", formatCoord(g.Reference[0]), formatCoord(g.Reference[1]))

	err = plot.WriteHTML(cfg.Plot.Output, g, plot.Options{
		Title:      cfg.Plot.Title,
		Subtitle:   path,
		Width:      cfg.Plot.Width,
		Height:     cfg.Plot.Height,
		SymbolSize: cfg.Plot.SymbolSize,
	})
	if err != nil {
		return plotError(err, cfg.Plot.Output)
	}

	out.Successf("Wrote geometry plot to %s", cfg.Plot.Output)
	return nil
}

func plotError(err error, path string) *yerrors.YfoilError {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return yerrors.New(yerrors.ErrCodeFileWrite, err.Error(), err).
			WithDetail("path", path).
			WithSuggestion("Check that the output directory exists and is writable")
	}
	return yerrors.New(yerrors.ErrCodeRenderFailed, err.Error(), err).
		WithDetail("path", path)
}

// formatCoord prints the shortest decimal that round-trips, never using
// an exponent.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
