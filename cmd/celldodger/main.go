// Package main is the entry point for Cell Dodger.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/devhausleipzig/cell-dodger-game/internal/game"
	"github.com/devhausleipzig/cell-dodger-game/internal/gamedata"
	"github.com/devhausleipzig/cell-dodger-game/internal/telemetry"
	"github.com/devhausleipzig/cell-dodger-game/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// run owns the terminal for the lifetime of one game session.
func run(ctx context.Context, cfg game.Config) error {
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	// The screen owns the terminal now; keep log output off it.
	restore := redirectLog()
	defer restore()

	session, err := game.NewSession(ctx, cfg, ui.NewGridView(screen, palette))
	if err != nil {
		return err
	}

	loop := game.NewLoop(session)
	loop.OnError = func(err error) {
		log.Printf("Reconfiguration rejected: %v", err)
	}

	inputCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	err = loop.Run(ctx, screen.Inputs(inputCtx))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loadConfig reads the game config from the environment, with an optional bindings file.
func loadConfig() (game.Config, error) {
	cfg, err := game.ConfigFromEnv(os.Getenv)
	if err != nil {
		return cfg, err
	}

	if path := os.Getenv("CELLDODGER_BINDINGS_FILE"); path != "" {
		bindings, err := gamedata.LoadBindingsFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if err != nil {
			return cfg, err
		}
		cfg.Bindings = bindings
	}
	return cfg, nil
}

// redirectLog sends log output to CELLDODGER_LOG_FILE, or discards it, and returns
// a function restoring stderr.
func redirectLog() func() {
	path := os.Getenv("CELLDODGER_LOG_FILE")
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// Returns false when no API key is set and telemetry should stay off.
func setupOTelEnv() bool {
	apiKey := os.Getenv("CELLDODGER_HONEYCOMB_API_KEY")
	if apiKey == "" {
		return false
	}

	dataset := os.Getenv("CELLDODGER_HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "cell-dodger" // default dataset name
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
