package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"docpicker/browser"
	"docpicker/inbox"
	"docpicker/picker"
	"docpicker/shared"
)

func serveMetrics(addr string, log *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", shared.MetricsHandler())
	log.Info("serving metrics", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("metrics server stopped", zap.Error(err))
	}
}

func main() {
	installDir := getInstallDir()
	props, err := InitEnv(installDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize environment: %v\n", err)
		os.Exit(1)
	}
	cfg := loadConfig(props, installDir)

	logger := shared.NewLogger(cfg.LogLevel, os.Stderr)
	defer logger.Sync()
	logger.Info("starting document picker",
		zap.String("version", shared.GetLauncherVersionSemver()),
		zap.String("installDir", installDir),
		zap.Strings("extensions", cfg.Extensions))

	box, err := inbox.Open(cfg.InboxDir, logger)
	if err != nil {
		logger.Fatal("cannot open inbox", zap.Error(err))
	}
	defer box.Close()

	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, logger)
	}

	a := app.NewWithID("app.docpicker")
	a.Settings().SetTheme(newMyTheme())
	w := a.NewWindow("Document Picker")

	p := picker.New(browser.New(w, logger), picker.WithLogger(logger))
	ui := newPickerUI(w, p, box, cfg, logger)

	w.SetContent(ui.content())
	w.Resize(fyne.NewSize(600, 400))
	w.ShowAndRun()
}
