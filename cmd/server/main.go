package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"github.com/vancomm/minesweeper/internal/app"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

func newLogger(w io.Writer, development bool) *slog.Logger {
	if development {
		return slog.New(
			tint.NewHandler(w, &tint.Options{Level: slog.LevelDebug}),
		)
	}
	return slog.New(slog.NewJSONHandler(w, nil))
}

// run loads the config named in args and serves until ctx is cancelled.
// Failures are logged to stderr before being returned.
func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var configPath string
	fs.StringVar(&configPath, "config", "", "config file path")
	fs.StringVar(&configPath, "c", "", "config file path (shorthand)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		newLogger(stderr, config.Development()).Error("failed to load config", slog.Any("error", err))
		return err
	}

	logger := newLogger(stderr, cfg.Development)
	mines.Log = logger

	if err := app.New(logger, cfg).Start(ctx); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		return err
	}
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stderr)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}
