package shared

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// IsWSL checks if the program is running under Windows Subsystem for Linux.
func IsWSL() bool {
	version, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	return strings.Contains(string(version), "Microsoft")
}

// GetGoos returns the current operating system identifier.
// Returns "linux" if running under WSL.
func GetGoos() string {
	if IsWSL() {
		return "linux"
	}
	return runtime.GOOS
}

func openerCommand(path string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "windows":
		return exec.Command("explorer", path), nil
	case "darwin":
		return exec.Command("open", path), nil
	case "linux":
		return exec.Command("xdg-open", path), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// OpenFileExplorer opens the specified path in the system file explorer
func OpenFileExplorer(path string) error {
	// Ensure path is absolute and clean
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	cmd, err := openerCommand(absPath)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open file explorer: %w", err)
	}
	return nil
}

// OpenFile opens the specified file with the system default application
func OpenFile(filePath string) error {
	cmd, err := openerCommand(filePath)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	return nil
}
