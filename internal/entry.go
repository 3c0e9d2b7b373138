// Package internal provides the application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/starford/quote-it/internal/apperr"
	"github.com/starford/quote-it/internal/quoteservice"
	"github.com/starford/quote-it/internal/render"
	"github.com/starford/quote-it/internal/storage"
	"github.com/starford/quote-it/internal/store"
)

// Run performs one invocation: it validates task, bootstraps the store,
// executes task against it and closes the store.
func Run(ctx context.Context, task Task, opts ...Option) error {
	app := &application{
		stdout: os.Stdout,
		stderr: os.Stderr,
		clock:  time.Now,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	if task == nil {
		return fmt.Errorf("task is required")
	}

	cfg := app.config

	// Logs go to stderr so stdout carries only quotes.
	logger := slog.New(slog.NewJSONHandler(app.stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	// Usage errors must surface before the store is touched.
	if err := task.Validate(); err != nil {
		return err
	}

	dir := cfg.Store.Dir
	if dir == "" {
		var err error
		if dir, err = storage.DefaultDir(); err != nil {
			return err
		}
	}

	path, err := storage.Ensure(dir, cfg.Store.File)
	if err != nil {
		return err
	}

	logger.Debug("Configuration loaded",
		slog.String("store_path", path),
		slog.String("log_level", cfg.App.LogLevel.String()),
		slog.Bool("color", cfg.App.Color))

	db, err := store.Open(path)
	if err != nil {
		return apperr.NewEnvironmentError("open store", err)
	}
	defer db.Close()

	svc := quoteservice.NewService(quoteservice.Config{
		Store:  db,
		Clock:  app.clock,
		Logger: logger,
	})
	printer := render.NewPrinter(app.stdout, cfg.App.Color)

	return task.Execute(ctx, svc, printer)
}
