package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// MaxBackups is the number of user config backups kept.
	MaxBackups = 3

	// BackupSuffix separates the config file name from the backup timestamp.
	BackupSuffix = ".bak"

	backupTimeFormat = "20060102-150405.000"
)

// BackupUserConfig copies the user config to a timestamped backup beside it
// and prunes all but the newest MaxBackups backups. It returns the backup
// path, or "" if there is no user config.
func BackupUserConfig() (string, error) {
	if !UserConfigExists() {
		return "", nil
	}
	configPath := GetUserConfigPath()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return "", fmt.Errorf("failed to read config for backup: %w", err)
	}

	backupPath := fmt.Sprintf("%s%s.%s", configPath, BackupSuffix, time.Now().Format(backupTimeFormat))
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if err := cleanupOldBackups(); err != nil {
		slog.Warn("config backup cleanup failed", "error", err)
	}
	return backupPath, nil
}

// ListUserConfigBackups returns the user config backups, newest first.
func ListUserConfigBackups() ([]string, error) {
	configPath := GetUserConfigPath()
	configDir := filepath.Dir(configPath)
	prefix := filepath.Base(configPath) + BackupSuffix + "."

	entries, err := os.ReadDir(configDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list config directory: %w", err)
	}

	var backups []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), prefix) {
			backups = append(backups, filepath.Join(configDir, entry.Name()))
		}
	}

	// Timestamps sort lexically.
	sort.Sort(sort.Reverse(sort.StringSlice(backups)))
	return backups, nil
}

func cleanupOldBackups() error {
	backups, err := ListUserConfigBackups()
	if err != nil {
		return err
	}
	if len(backups) <= MaxBackups {
		return nil
	}

	var firstErr error
	for _, backup := range backups[MaxBackups:] {
		if err := os.Remove(backup); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
