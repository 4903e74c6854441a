package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mitchellh/go-homedir"
)

// DefaultDataDir returns a system-appropriate directory for confide's data.
func DefaultDataDir() string {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "confide-data"
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(homeDir, "AppData", "Roaming", "confide")
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", "confide")
	default: // Primarily Linux, but also other UNIX-like systems.
		return filepath.Join(homeDir, ".local", "share", "confide")
	}
}

// ResolveAndEnsureDataDir expands providedPath (or the default when empty) to an
// absolute path and creates the directory if needed.
func ResolveAndEnsureDataDir(providedPath string) (string, error) {
	targetPath := providedPath
	if targetPath == "" {
		targetPath = DefaultDataDir()
	}

	expanded, err := homedir.Expand(targetPath)
	if err != nil {
		return "", fmt.Errorf("failed to expand path '%s': %w", targetPath, err)
	}

	absPath, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path for '%s': %w", expanded, err)
	}

	if err := os.MkdirAll(absPath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create data directory '%s': %w", absPath, err)
	}
	return absPath, nil
}
