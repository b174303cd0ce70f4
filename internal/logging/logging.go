package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config contains logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// FilePath is the path to the log file. Empty means stderr only.
	FilePath string
	// MaxSizeMB is the file size in MB that triggers rotation.
	MaxSizeMB int
	// MaxFiles is the number of rotated files kept beside FilePath.
	MaxFiles int
	// WriteToStderr mirrors file output to Stderr.
	WriteToStderr bool
	// Stderr overrides os.Stderr, mainly for tests.
	Stderr io.Writer
}

// DefaultConfig logs warnings and errors to stderr only.
func DefaultConfig() Config {
	return Config{
		Level:         "warn",
		MaxSizeMB:     5,
		MaxFiles:      3,
		WriteToStderr: true,
	}
}

// DebugConfig logs everything to the default log file and to stderr.
func DebugConfig() Config {
	cfg := DefaultConfig()
	cfg.Level = "debug"
	cfg.FilePath = DefaultLogPath()
	return cfg
}

// Setup builds a logger from cfg and returns it with a cleanup function that
// closes the log file, if any. Stderr output uses the text handler; file
// output uses the JSON handler so records stay machine readable.
func Setup(cfg Config) (*slog.Logger, func(), error) {
	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	if cfg.FilePath == "" {
		return slog.New(slog.NewTextHandler(stderr, opts)), func() {}, nil
	}

	file, err := newRotatingFile(cfg.FilePath, cfg.MaxSizeMB, cfg.MaxFiles)
	if err != nil {
		return nil, nil, err
	}

	var output io.Writer = file
	if cfg.WriteToStderr {
		output = io.MultiWriter(file, stderr)
	}

	cleanup := func() {
		_ = file.Close()
	}
	return slog.New(slog.NewJSONHandler(output, opts)), cleanup, nil
}

// SetupDefault installs a logger built from cfg as the slog default.
func SetupDefault(cfg Config) (func(), error) {
	logger, cleanup, err := Setup(cfg)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return cleanup, nil
}

// ValidLevel reports whether level is one parseLevel understands.
func ValidLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
