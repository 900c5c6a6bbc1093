package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDirPermissions is used when creating destination directories.
const DefaultDirPermissions = 0755

// EnsureDirectory creates dir (and any parents) if it does not exist.
func EnsureDirectory(dir string) error {
	if dir == "" {
		return fmt.Errorf("directory path is empty")
	}
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("not a directory: %s", dir)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.MkdirAll(dir, DefaultDirPermissions)
}

// WorkingDirectory returns the current working directory, the default
// destination when no output directory is configured.
func WorkingDirectory() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

// HomeDownloadsDir returns the user's standard Downloads directory.
func HomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Downloads"), nil
}
