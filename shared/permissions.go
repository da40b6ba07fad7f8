package shared

import (
	"os"
	"runtime"
)

const (
	// InstallDirMode is used for the app's install directory.
	InstallDirMode os.FileMode = 0o755
	// InboxDirMode keeps picked files private to the user.
	InboxDirMode os.FileMode = 0o700
)

// EnsureDir creates path if needed and gives it mode.
// On Windows, permissions are effectively a no-op.
func EnsureDir(path string, mode os.FileMode) error {
	if err := os.MkdirAll(path, mode); err != nil {
		return err
	}
	if runtime.GOOS == "windows" {
		return nil
	}
	// Chmod even if it already exists; MkdirAll leaves existing modes alone.
	return os.Chmod(path, mode)
}
