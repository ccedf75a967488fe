package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/niwa/internal/config"
	"github.com/vovakirdan/niwa/internal/core"
	"github.com/vovakirdan/niwa/internal/logging"
	"github.com/vovakirdan/niwa/internal/metrics"
	"github.com/vovakirdan/niwa/internal/platform/tui"
	"github.com/vovakirdan/niwa/internal/storage"
)

// app holds the services shared by the commands.
type app struct {
	cfg    config.Config
	logger *log.Logger
	logs   io.Closer
	store  *storage.Store
}

// setup loads configuration, applies global flags and opens the logger and
// score store. Interactive commands pass io.Discard as logOut so nothing is
// written over the terminal UI unless a log file is configured.
func setup(logOut io.Writer) *app {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}

	logger, closer, err := logging.New(cfg.Log, "niwa", logOut)
	if err != nil {
		fail("%v", err)
	}

	a := &app{cfg: cfg, logger: logger, logs: closer}
	if cfg.Storage.Path != "" {
		store, err := storage.Open(cfg.Storage.Path)
		if err != nil {
			// Play continues without score persistence
			logger.Warn("Could not open scores database", "error", err)
		} else {
			a.store = store
		}
	}
	return a
}

func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
	a.logs.Close()
}

// env builds the TUI environment. rec may be nil.
func (a *app) env(rec *metrics.Recorder) tui.Env {
	theme, ok := tui.ThemeByName(flagTheme)
	if !ok {
		a.logger.Warn("Unknown theme, using default", "theme", flagTheme)
	}
	return tui.Env{
		Config:  a.cfg,
		Store:   a.store,
		Metrics: rec,
		Logger:  a.logger,
		Theme:   theme,
	}
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig(level string) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.Seed = flagSeed
	cfg.Level = level
	return cfg
}
