/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jfmyers9/strum/internal/artwork"
	"github.com/jfmyers9/strum/internal/catalog"
	"github.com/jfmyers9/strum/internal/config"
	"github.com/jfmyers9/strum/internal/history"
	"github.com/jfmyers9/strum/internal/player"
	"github.com/jfmyers9/strum/internal/session"
	"github.com/jfmyers9/strum/internal/tui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

var (
	rootLogFile  string
	rootLogLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "strum",
	Short: "SoundCloud terminal player",
	Long: `strum is a terminal player for SoundCloud.

Running it without a subcommand starts the interactive player: type a
free-text query, browse the matching tracks, and play one at a time.
Cover art is shown alongside in kitty-capable terminals.

Key bindings: '/' focuses the search field, enter plays the selected
track, space toggles play/pause, 'n'/'p' move to the next/previous
track, and ctrl-q quits.

For scripted use, 'strum search' prints results without starting the
TUI.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	RunE:    runPlayer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootLogFile, "log-file", "", "Log file path (default: discard in TUI mode, stderr otherwise)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func runPlayer(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	logger := setupLogger(rootLogFile, rootLogLevel, true)

	// Create catalog client
	client, err := catalog.NewClient(catalog.Config{
		BaseURL:   cfg.Search.BaseURL,
		UserAgent: cfg.Search.UserAgent,
		Timeout:   time.Duration(cfg.Search.TimeoutSeconds) * time.Second,
		CacheSize: cfg.Search.CacheSize,
		Resolver:  catalog.TemplateResolver{Template: cfg.Stream.URLTemplate},
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	// Open the search history store; the player works without it.
	var store *history.Store
	if store, err = history.New(cfg.History.Path); err != nil {
		logger.Warn().Err(err).Msg("Search history unavailable")
		store = nil
	} else {
		defer store.Close()
	}

	// Create the audio engine, reused across all tracks.
	engine := player.NewBeepEngine(logger)
	defer engine.Close()

	playback := player.NewController(engine, logger)
	display := artwork.NewKittyDisplay(logger)

	ui := tui.New(logger)
	if store != nil {
		if recent, err := store.Recent(rootContext(cmd), 20); err == nil {
			ui.SetRecentQueries(recent)
		}
	}

	sess := session.New(session.Config{
		Catalog:  client,
		Player:   playback,
		Artwork:  display,
		History:  store,
		Notifier: ui,
		Apply:    ui.Apply,
		Logger:   logger,
	})
	defer sess.Close()

	ui.SetSession(sess)

	logger.Info().Str("version", version).Msg("Starting player")
	return ui.Run()
}

// setupLogger creates a logger with the specified configuration. In TUI
// mode logs are discarded unless a file is given, since writing to stderr
// would corrupt the display.
func setupLogger(logFile, logLevel string, tuiMode bool) zerolog.Logger {
	// Parse log level
	level := zerolog.InfoLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			return zerolog.New(f).Level(level).With().Timestamp().Logger()
		}
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
	}

	if tuiMode {
		return zerolog.Nop()
	}

	// Pretty console output when logging to stderr
	logger := zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Logger()
	return logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// rootContext returns the command context, falling back to Background for
// direct calls in tests.
func rootContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
