package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"

	"docpicker/shared"
)

const envFileName = "docpicker.properties"

// appConfig is what the app reads from docpicker.properties.
type appConfig struct {
	Extensions  []string
	InboxDir    string
	LogLevel    string
	MetricsAddr string
	CopyPath    bool
}

func getInstallDir() string {
	switch shared.GetGoos() {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "docpicker")
	case "darwin":
		return filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "docpicker")
	case "linux":
		return filepath.Join(os.Getenv("HOME"), ".local", "share", "docpicker")
	default:
		return "./docpicker"
	}
}

// InitEnv creates docpicker.properties in installDir if it is missing, then
// loads it.
func InitEnv(installDir string) (*properties.Properties, error) {
	envFilePath := filepath.Join(installDir, envFileName)
	if _, err := os.Stat(envFilePath); os.IsNotExist(err) {
		if err := shared.EnsureDir(installDir, shared.InstallDirMode); err != nil {
			return nil, fmt.Errorf("creating install directory: %w", err)
		}

		props := properties.NewProperties()
		props.Set("PICKER_INBOX", filepath.Join(installDir, "inbox"))
		props.Set("PICKER_LOG_LEVEL", "info")

		file, err := os.Create(envFilePath)
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", envFileName, err)
		}
		defer file.Close()
		if _, err := props.Write(file, properties.UTF8); err != nil {
			return nil, fmt.Errorf("writing %s: %w", envFileName, err)
		}
		// Add commented-out entries
		rawString := `# Restrict the dialog to these extensions (remove the leading # to uncomment)
#PICKER_EXTENSIONS=pdf,txt,png

# Serve Prometheus metrics on this address (remove the leading # to uncomment)
#PICKER_METRICS_ADDR=127.0.0.1:9464

# Copy the path of each saved file to the clipboard
#PICKER_COPY_PATH=true
`
		if _, err := file.WriteString(rawString); err != nil {
			return nil, fmt.Errorf("writing %s: %w", envFileName, err)
		}
	}

	props, err := properties.LoadFile(envFilePath, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", envFilePath, err)
	}
	return props, nil
}

func loadConfig(props *properties.Properties, installDir string) appConfig {
	cfg := appConfig{
		InboxDir:    props.GetString("PICKER_INBOX", filepath.Join(installDir, "inbox")),
		LogLevel:    props.GetString("PICKER_LOG_LEVEL", "info"),
		MetricsAddr: strings.TrimSpace(props.GetString("PICKER_METRICS_ADDR", "")),
		CopyPath:    props.GetBool("PICKER_COPY_PATH", false),
	}
	for _, ext := range strings.Split(props.GetString("PICKER_EXTENSIONS", ""), ",") {
		if ext = strings.TrimSpace(ext); ext != "" {
			cfg.Extensions = append(cfg.Extensions, ext)
		}
	}
	return cfg
}
