// Workout Story Composer
// Author: Ervins Strauhmanis
// License: MIT

package main

import (
	"flag"
	"os"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/sirupsen/logrus"

	"workout-story/internal/config"
	"workout-story/internal/gui"
)

const (
	AppName    = "Workout Story Composer"
	AppID      = "com.strauhmanis.workout-story"
	AppVersion = "1.0.0"
)

func main() {
	// Parse command line flags
	debugMode := flag.Bool("debug", false, "Enable debug mode with verbose logging")
	configPath := flag.String("config", "", "Path to a config.rc file (overrides the default lookup)")
	flag.Parse()

	// Initialize logger
	logger := initLogger(*debugMode)
	logger.WithFields(logrus.Fields{
		"version":    AppVersion,
		"debug_mode": *debugMode,
	}).Info("Starting Workout Story Composer")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.WithError(err).Warn("Failed to load configuration, using defaults")
		cfg = config.New()
	}
	logger.WithFields(logrus.Fields{
		"zoom_step":     cfg.ZoomStep,
		"export_format": cfg.Export.Format,
	}).Debug("Configuration loaded")

	// Create Fyne application
	myApp := app.NewWithID(AppID)
	myApp.SetIcon(theme.MediaPhotoIcon())
	myApp.Settings().SetTheme(theme.DefaultTheme())

	// Create and show main application window
	mainApp := gui.NewApplication(myApp, cfg, logger)
	mainApp.ShowAndRun()

	logger.Info("Application shutting down gracefully")
	os.Exit(0)
}

// initLogger initializes the logger with appropriate level
func initLogger(debugMode bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return logger
}
