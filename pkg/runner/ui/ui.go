// Package ui launches the interactive terminal interface.
package ui

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"tableflip.dev/habits/pkg/app"
	"tableflip.dev/habits/pkg/router"
	teaui "tableflip.dev/habits/pkg/runner/tea"
	"tableflip.dev/habits/pkg/store"
)

// ErrNotTerminal is returned when stdout is not an interactive terminal.
var ErrNotTerminal = errors.New("ui: stdout is not a terminal, use the habit and task commands instead")

// LogFileName is created under the storage path when no log file is
// configured, so log lines never land on the screen.
const LogFileName = "habits.log"

type UI struct {
	// Path is the initial route, for example /tasks or /habit/3.
	Path   string
	Config store.Config
}

func (u *UI) Do(ctx context.Context) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ErrNotTerminal
	}

	cfg := u.Config
	if cfg == nil {
		var err error
		if cfg, err = store.LoadConfig(); err != nil {
			return err
		}
	}
	if cfg.LogFile() == "" {
		cfg = store.WithLogFile(cfg, filepath.Join(logDir(cfg), LogFileName))
	}

	logger, closer, err := store.NewLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	kv, err := store.Open(cfg, logger)
	if err != nil {
		return err
	}
	if c, ok := kv.(io.Closer); ok {
		defer c.Close()
	}

	s := app.New(kv, app.WithLogger(logger))
	rt := router.New(u.Path)
	logger.Info("starting ui", "path", rt.Path(), "backend", cfg.Backend())

	return teaui.Run(s, rt, termenv.HasDarkBackground())
}

func logDir(cfg store.Config) string {
	if cfg.Backend() == store.BackendMemory || cfg.BasePath() == "" {
		return os.TempDir()
	}
	return cfg.BasePath()
}
