package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yfoil/yfoil/configs"
	"github.com/yfoil/yfoil/internal/config"
	yerrors "github.com/yfoil/yfoil/internal/errors"
	"github.com/yfoil/yfoil/internal/output"
)

func newConfigCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage yfoil configuration",
		Long: `Manage the user configuration file and inspect the effective settings.

Configuration precedence (lowest to highest):
  1. Hardcoded defaults
  2. User config (~/.config/yfoil/config.yaml)
  3. Project config (.yfoil.yaml or .yfoil.yml)
  4. .env in the working directory
  5. Environment variables (YFOIL_*)
  6. Command-line flags`,
		Example: `  # Create user config from template
  yfoil config init

  # Show effective configuration
  yfoil config show

  # Print config file locations
  yfoil config path`,
	}

	cmd.AddCommand(newConfigInitCmd(opts))
	cmd.AddCommand(newConfigShowCmd(opts))
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd(opts *globalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create user configuration file",
		Long: `Create the user configuration file from a template at
~/.config/yfoil/config.yaml (or $XDG_CONFIG_HOME/yfoil/config.yaml).

With --force an existing file is backed up and upgraded: settings you have
made are kept and options it lacks are added with their defaults.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(output.NewStyled(cmd.OutOrStdout(), opts.noColor), force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Upgrade an existing configuration")

	return cmd
}

func newConfigShowCmd(opts *globalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			return runConfigShow(cmd, opts, cfg, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print configuration file paths",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, config.GetUserConfigPath())
			if p := config.ProjectConfigPath("."); p != "" {
				_, _ = fmt.Fprintln(w, p)
			}
			return nil
		},
	}
}

func runConfigInit(out *output.Writer, force bool) error {
	configPath := config.GetUserConfigPath()

	if config.UserConfigExists() {
		if !force {
			out.Warning("User configuration already exists")
			out.KeyValue("location", configPath)
			out.Status("", "Use --force to upgrade with new defaults (preserves your settings)")
			return nil
		}
		return runConfigUpgrade(out, configPath)
	}

	if err := os.MkdirAll(config.GetUserConfigDir(), 0o755); err != nil {
		return yerrors.New(yerrors.ErrCodeConfigPermission, "failed to create config directory", err).
			WithDetail("path", config.GetUserConfigDir())
	}
	if err := os.WriteFile(configPath, []byte(configs.UserConfigTemplate), 0o644); err != nil {
		return yerrors.New(yerrors.ErrCodeConfigPermission, "failed to write config file", err).
			WithDetail("path", configPath)
	}

	out.Success("Created user configuration")
	out.KeyValue("location", configPath)
	out.Status("", "Edit the file, then run 'yfoil config show' to verify")
	return nil
}

func runConfigUpgrade(out *output.Writer, configPath string) error {
	backupPath, err := config.BackupUserConfig()
	if err != nil {
		return yerrors.New(yerrors.ErrCodeConfigPermission, "failed to back up config", err)
	}

	existing, err := config.LoadUserConfig()
	if err != nil {
		return yerrors.ConfigError(err.Error(), err).
			WithSuggestion(fmt.Sprintf("Fix the file by hand, or move it aside and rerun; a copy is at %s", backupPath))
	}
	if existing == nil {
		return yerrors.New(yerrors.ErrCodeConfigNotFound, "config file disappeared during upgrade", nil)
	}

	added := existing.MergeNewDefaults()
	if err := existing.WriteYAML(configPath); err != nil {
		return yerrors.New(yerrors.ErrCodeConfigPermission, err.Error(), err)
	}

	out.Success("Configuration upgraded")
	out.KeyValue("location", configPath)
	out.KeyValue("backup", backupPath)
	if len(added) == 0 {
		out.Status("", "Your configuration is already up to date")
		return nil
	}
	out.Status("", "New options added with defaults:")
	for _, field := range added {
		out.Statusf("", "  - %s", field)
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, opts *globalOptions, cfg *config.Config, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return yerrors.InternalError("failed to marshal config", err)
	}

	out := output.NewStyled(cmd.OutOrStdout(), opts.noColor)
	out.KeyValue("user config", describePath(config.GetUserConfigPath(), config.UserConfigExists()))
	out.KeyValue("project config", describePath(config.ProjectConfigPath("."), true))
	out.Code(string(data))
	return nil
}

func describePath(path string, exists bool) string {
	switch {
	case path == "":
		return "(none)"
	case !exists:
		return path + " (not found)"
	default:
		return path
	}
}
