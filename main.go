package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/quartzlabs/lazysend/pkg/app"
	"github.com/quartzlabs/lazysend/pkg/config"
	"github.com/quartzlabs/lazysend/pkg/history"
	"github.com/quartzlabs/lazysend/pkg/logging"
)

const (
	Version = "v0.1.0"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 {
		if os.Args[1] == "--version" || os.Args[1] == "-v" {
			fmt.Printf("lazysend %s\n", Version)
			os.Exit(0)
		}
	}

	if err := config.EnsureConfigFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to create config file: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to load config: %v\n", err)
		os.Exit(1)
	}

	configDir, err := config.ConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file
	log, closeLog, err := logging.New(logging.Options{
		Level: "info",
		Path:  filepath.Join(configDir, "lazysend.log"),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := history.Open(filepath.Join(configDir, "history.db"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to open history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	tuiApp, err := app.NewApp(app.AppConfig{
		DebugMode: false,
		AppName:   config.AppName,
		Version:   Version,
	}, cfg, store, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create app: %v\n", err)
		os.Exit(1)
	}

	g := tuiApp.GetGui()

	devices := app.NewDevicesPanel(g, cfg.Device.Name, cfg.Relay.URL)
	devices.SetRoomCode(tuiApp.RoomCode())
	transfers := app.NewTransfersPanel(g, tuiApp.Transfers(), store)
	preview := app.NewPreviewPanel(g)
	activity := app.NewActivityPanel(g)
	statusbar := app.NewStatusBar(g, tuiApp)

	tuiApp.RegisterPanel(devices)
	tuiApp.RegisterPanel(transfers)
	tuiApp.RegisterPanel(preview)
	tuiApp.RegisterPanel(activity)
	tuiApp.RegisterPanel(statusbar)

	if err := tuiApp.RegisterKeybindings(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to register keybindings: %v\n", err)
		os.Exit(1)
	}

	tuiApp.RegisterMouseBindings()

	log.Info().Str("version", Version).Msg("starting")

	if err := tuiApp.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "App error: %v\n", err)
		os.Exit(1)
	}
}
