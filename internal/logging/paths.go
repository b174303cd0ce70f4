package logging

import (
	"os"
	"path/filepath"
)

// DefaultLogDir returns the default log directory (~/.yfoil/logs/).
// Falls back to the temp directory if the home directory is unavailable.
func DefaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".yfoil", "logs")
	}
	return filepath.Join(home, ".yfoil", "logs")
}

// DefaultLogPath returns the debug log path.
func DefaultLogPath() string {
	return filepath.Join(DefaultLogDir(), "yfoil.log")
}

// EnsureLogDir creates the default log directory if it doesn't exist.
func EnsureLogDir() error {
	return os.MkdirAll(DefaultLogDir(), 0o755)
}
