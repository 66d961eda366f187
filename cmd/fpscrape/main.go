package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/handiism/fpscrape/internal/config"
	"github.com/handiism/fpscrape/internal/scrape"
	"github.com/lmittmann/tint"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	settings, err := config.Load(config.DefaultPath())
	if err != nil {
		slog.Error("failed to load settings", "path", config.DefaultPath(), "err", err)
		os.Exit(1)
	}
	if err := newFlagSet(settings).Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	manager := scrape.NewManager(settings, logEvent)

	slog.Info("data extracting", "categories", len(settings.CategoryURLs), "output", settings.OutputPath)
	start := time.Now()

	results := manager.Run(ctx, settings.CategoryURLs)
	if ctx.Err() != nil {
		slog.Warn("scrape cancelled")
		os.Exit(130)
	}

	written, err := manager.Export(settings.OutputPath, results)
	if err != nil {
		slog.Error("export failed", "err", err)
		os.Exit(1)
	}

	if written {
		fmt.Println(summaryTable(results))
	}
	slog.Info("done", "seconds", time.Since(start).Seconds(), "progress", fmt.Sprintf("%+v", manager.Progress()))
}

// newFlagSet binds the command line flags to settings. Defaults come from
// the loaded settings file.
func newFlagSet(settings *config.Settings) *flag.FlagSet {
	fs := flag.NewFlagSet("fpscrape", flag.ContinueOnError)
	fs.StringVar(&settings.OutputPath, "o", settings.OutputPath, "Output CSV file")
	return fs
}

func logEvent(event scrape.ProgressEvent) {
	switch event.Level {
	case scrape.LevelError:
		slog.Error(event.Message)
	case scrape.LevelWarning:
		slog.Warn(event.Message)
	case scrape.LevelVerbose:
		slog.Debug(event.Message)
	default:
		slog.Info(event.Message)
	}
}
