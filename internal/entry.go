// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/Joule-J/joules-comic-blog--1/internal/seed"
	"github.com/Joule-J/joules-comic-blog--1/internal/store"
	"github.com/Joule-J/joules-comic-blog--1/internal/tui"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Structured JSON logging goes to a file: the terminal UI owns stdout.
	logger, closeLog, err := newLogger(cfg.App)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closeLog()
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("seed_path", cfg.Seed.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Load the seed records the session starts from.
	data, err := seed.Load(cfg.Seed.Path)
	if err != nil {
		return fmt.Errorf("load seed data: %w", err)
	}

	// Build the root state container.
	st := store.New(store.Options{
		Posts:    data.Posts,
		Comments: data.Comments,
		Videos:   data.Videos,
		Config:   data.Config,
		Logger:   logger,
	})

	// Build the terminal program.
	model := tui.New(st, tui.Options{
		SoundEffectTTL: cfg.UI.SoundEffectTTL,
	})

	progOpts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if app.input != nil {
		progOpts = append(progOpts, tea.WithInput(app.input))
	}
	if app.output != nil {
		progOpts = append(progOpts, tea.WithOutput(app.output))
	}

	g, gCtx := errgroup.WithContext(ctx)
	prog := tea.NewProgram(model, append(progOpts, tea.WithContext(gCtx))...)

	// Run the UI.
	g.Go(func() error {
		logger.Info("Starting terminal UI")
		if _, err := prog.Run(); err != nil && gCtx.Err() == nil {
			return fmt.Errorf("terminal UI error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
			prog.Quit()
		case <-gCtx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Application stopped successfully")
	return nil
}

// newLogger builds the file-backed JSON logger. With no log file configured,
// logs are discarded.
func newLogger(cfg ApplicationConfig) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel}))
	return logger, func() { _ = f.Close() }, nil
}
