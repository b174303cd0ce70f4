// Package config loads yfoil settings from defaults, YAML files, a .env file
// and YFOIL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults used when nothing else is configured.
const (
	DefaultInputFile  = "aerofoil.json"
	DefaultPlotOutput = "aerofoil_geometry.html"
	DefaultPlotTitle  = "Aerofoil geometry"
	DefaultLogLevel   = "warn"
)

// Project config and env file names, looked up in the working directory.
const (
	ProjectConfigFile    = ".yfoil.yaml"
	ProjectConfigFileAlt = ".yfoil.yml"
	EnvFile              = ".env"
)

// Environment variables.
const (
	EnvInputFile  = "YFOIL_FILE"
	EnvPlotOutput = "YFOIL_OUTPUT"
	EnvPlotTitle  = "YFOIL_PLOT_TITLE"
	EnvPlotWidth  = "YFOIL_PLOT_WIDTH"
	EnvPlotHeight = "YFOIL_PLOT_HEIGHT"
	EnvLogLevel   = "YFOIL_LOG_LEVEL"
)

// Config represents the complete yfoil configuration.
type Config struct {
	Version int           `yaml:"version" json:"version"`
	Input   InputConfig   `yaml:"input" json:"input"`
	Plot    PlotConfig    `yaml:"plot" json:"plot"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// InputConfig names the geometry file read when none is given on the command line.
type InputConfig struct {
	File string `yaml:"file" json:"file"`
}

// PlotConfig controls the HTML plot.
type PlotConfig struct {
	Output     string `yaml:"output" json:"output"`
	Title      string `yaml:"title" json:"title"`
	Width      int    `yaml:"width" json:"width"`
	Height     int    `yaml:"height" json:"height"`
	SymbolSize int    `yaml:"symbol_size" json:"symbol_size"`
}

// LoggingConfig sets the stderr log level. --debug overrides it.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
}

// NewConfig returns a Config holding the built-in defaults.
func NewConfig() *Config {
	return &Config{
		Version: 1,
		Input: InputConfig{
			File: DefaultInputFile,
		},
		Plot: PlotConfig{
			Output:     DefaultPlotOutput,
			Title:      DefaultPlotTitle,
			Width:      1200,
			Height:     600,
			SymbolSize: 4,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}

// GetUserConfigPath returns the user config path, honouring XDG_CONFIG_HOME.
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "yfoil", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "yfoil", "config.yaml")
	}
	return filepath.Join(home, ".config", "yfoil", "config.yaml")
}

// GetUserConfigDir returns the directory holding the user config.
func GetUserConfigDir() string {
	return filepath.Dir(GetUserConfigPath())
}

// UserConfigExists reports whether the user config file exists.
func UserConfigExists() bool {
	return fileExists(GetUserConfigPath())
}

func loadUserConfig() (*Config, error) {
	configPath := GetUserConfigPath()
	if !fileExists(configPath) {
		return nil, nil
	}

	cfg := &Config{}
	if err := cfg.loadYAML(configPath); err != nil {
		return nil, fmt.Errorf("failed to load user config from %s: %w", configPath, err)
	}
	return cfg, nil
}

// LoadUserConfig loads the user configuration file on its own.
// Returns nil config and nil error if the file doesn't exist.
func LoadUserConfig() (*Config, error) {
	return loadUserConfig()
}

// Load builds the effective configuration for the project in dir.
//
// Precedence, lowest first: defaults, user config, project config
// (.yfoil.yaml or .yfoil.yml), dir/.env, process environment.
// Values in .env never override variables already set in the environment.
func Load(dir string) (*Config, error) {
	cfg := NewConfig()

	if userCfg, err := loadUserConfig(); err != nil {
		return nil, err
	} else if userCfg != nil {
		cfg.mergeWith(userCfg)
	}

	if err := cfg.loadFromFile(dir); err != nil {
		return nil, err
	}

	dotenv, err := readEnvFile(filepath.Join(dir, EnvFile))
	if err != nil {
		return nil, err
	}
	cfg.applyEnvOverrides(func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return dotenv[key]
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ProjectConfigPath returns the project config file that Load would read
// from dir, or "" if there is none.
func ProjectConfigPath(dir string) string {
	for _, name := range []string{ProjectConfigFile, ProjectConfigFileAlt} {
		if p := filepath.Join(dir, name); fileExists(p) {
			return p
		}
	}
	return ""
}

func (c *Config) loadFromFile(dir string) error {
	path := ProjectConfigPath(dir)
	if path == "" {
		return nil
	}
	var parsed Config
	if err := parsed.loadYAML(path); err != nil {
		return err
	}
	c.mergeWith(&parsed)
	return nil
}

func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func readEnvFile(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return vars, nil
}

// mergeWith copies the non-zero values of other into c.
func (c *Config) mergeWith(other *Config) {
	if other.Version != 0 {
		c.Version = other.Version
	}
	if other.Input.File != "" {
		c.Input.File = other.Input.File
	}
	if other.Plot.Output != "" {
		c.Plot.Output = other.Plot.Output
	}
	if other.Plot.Title != "" {
		c.Plot.Title = other.Plot.Title
	}
	if other.Plot.Width != 0 {
		c.Plot.Width = other.Plot.Width
	}
	if other.Plot.Height != 0 {
		c.Plot.Height = other.Plot.Height
	}
	if other.Plot.SymbolSize != 0 {
		c.Plot.SymbolSize = other.Plot.SymbolSize
	}
	if other.Logging.Level != "" {
		c.Logging.Level = other.Logging.Level
	}
}

func (c *Config) applyEnvOverrides(getenv func(string) string) {
	if v := getenv(EnvInputFile); v != "" {
		c.Input.File = v
	}
	if v := getenv(EnvPlotOutput); v != "" {
		c.Plot.Output = v
	}
	if v := getenv(EnvPlotTitle); v != "" {
		c.Plot.Title = v
	}
	if v := getenv(EnvPlotWidth); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			c.Plot.Width = n
		}
	}
	if v := getenv(EnvPlotHeight); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			c.Plot.Height = n
		}
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input.File) == "" {
		return fmt.Errorf("input.file must not be empty")
	}
	if strings.TrimSpace(c.Plot.Output) == "" {
		return fmt.Errorf("plot.output must not be empty")
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("plot.width and plot.height must be positive, got %dx%d", c.Plot.Width, c.Plot.Height)
	}
	if c.Plot.SymbolSize <= 0 {
		return fmt.Errorf("plot.symbol_size must be positive, got %d", c.Plot.SymbolSize)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("logging.level must be 'debug', 'info', 'warn', or 'error', got %s", c.Logging.Level)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// MergeNewDefaults fills fields missing from an older config file with
// their defaults. Returns the dotted names of the fields it filled.
func (c *Config) MergeNewDefaults() []string {
	defaults := NewConfig()
	var added []string

	if c.Version == 0 {
		c.Version = defaults.Version
		added = append(added, "version")
	}
	if c.Input.File == "" {
		c.Input.File = defaults.Input.File
		added = append(added, "input.file")
	}
	if c.Plot.Output == "" {
		c.Plot.Output = defaults.Plot.Output
		added = append(added, "plot.output")
	}
	if c.Plot.Title == "" {
		c.Plot.Title = defaults.Plot.Title
		added = append(added, "plot.title")
	}
	if c.Plot.Width == 0 {
		c.Plot.Width = defaults.Plot.Width
		added = append(added, "plot.width")
	}
	if c.Plot.Height == 0 {
		c.Plot.Height = defaults.Plot.Height
		added = append(added, "plot.height")
	}
	if c.Plot.SymbolSize == 0 {
		c.Plot.SymbolSize = defaults.Plot.SymbolSize
		added = append(added, "plot.symbol_size")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
		added = append(added, "logging.level")
	}
	return added
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
