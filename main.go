// Package main provides the entry point for the Face Metrics desktop application.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	fyneapp "fyne.io/fyne/v2/app"

	"face-metrics/internal/app"
	"face-metrics/internal/config"
	"face-metrics/internal/reference"
	"face-metrics/internal/telemetry"
	"face-metrics/internal/version"
	"face-metrics/pkg/log"
	"face-metrics/ui/mainwindow"
	"face-metrics/ui/prefs"
)

const referenceCheckInterval = 2 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := log.Setup(log.Options{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Info(log.Fields{"version": version.Version, "commit": version.GitCommit}, "[main] starting Face Metrics")

	shutdown, err := telemetry.Setup(context.Background(), cfg.OTelEnabled, cfg.OTelEndpoint)
	if err != nil {
		log.Warn(log.Fields{"error": err.Error()}, "[main] tracing disabled")
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Warn(log.Fields{"error": err.Error()}, "[main] tracer shutdown failed")
		}
	}()

	session := app.NewSession(reference.LoadOrEmpty(cfg.ReferencePath))
	session.PickRadiusScale = cfg.PickRadiusScale
	session.ActiveMetrics = cfg.ActiveMetrics

	watcher := session.WatchReference(cfg.ReferencePath, referenceCheckInterval)
	defer watcher.Stop()

	fyneApp := fyneapp.New()
	fyneApp.Settings().SetTheme(&app.FaceMetricsTheme{})

	appPrefs := prefs.Load()
	win := mainwindow.New(fyneApp, session, appPrefs, cfg.ReferencePath)

	// Handle command line arguments
	if len(os.Args) > 1 {
		win.OpenImage(os.Args[1])
	} else {
		win.RestoreLastImage()
	}

	win.ShowAndRun()
}
