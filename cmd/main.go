package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vitistack/hotel-reservations/internal/cli"
	"github.com/vitistack/hotel-reservations/internal/config"
	"github.com/vitistack/hotel-reservations/internal/metrics"
	"github.com/vitistack/hotel-reservations/internal/repositories/observe"
	"github.com/vitistack/hotel-reservations/internal/storage"
	"github.com/vitistack/hotel-reservations/pkg/bslog"
	"github.com/vitistack/hotel-reservations/pkg/persistence"
)

func main() {
	err := run(os.Args[1:])
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, flag.ErrHelp):
		fmt.Fprint(os.Stderr, cli.Usage)
		os.Exit(0)
	case errors.Is(err, cli.ErrUsage):
		fmt.Fprint(os.Stderr, cli.Usage)
		bslog.Error("invalid arguments", "reason", err.Error())
	case errors.Is(err, persistence.ErrCorruptedStore):
		bslog.Fatal("store is corrupted, refusing to touch it", "reason", err.Error())
	default:
		bslog.Error("command failed", "reason", err.Error())
	}
	os.Exit(1)
}

func run(args []string) error {
	cfg, rest, err := config.Load(os.Args[0], args, ".env")
	if err != nil {
		return err
	}

	level, err := bslog.ParseLevel(cfg.Log().Level)
	if err != nil {
		return err
	}
	logger := bslog.New(bslog.Options{
		Level:   level,
		DevMode: cfg.Log().DevMode,
	})
	bslog.SetDefault(logger)

	registry := prometheus.NewRegistry()
	storeMetrics := metrics.NewStoreMetricsWithRegisterer(registry)

	stores, err := storage.New(cfg.Storage())
	if err != nil {
		return err
	}
	defer func() {
		if err := stores.Close(); err != nil {
			bslog.Warn("unable to close storage", "reason", err.Error())
		}
	}()

	app, err := cli.NewApp(stores, os.Stdout,
		observe.WithLogger(&logger.Logger),
		observe.WithMetrics(storeMetrics),
	)
	if err != nil {
		return err
	}

	runErr := app.Run(rest)

	if path := cfg.Metrics().Textfile; path != "" {
		if err := prometheus.WriteToTextfile(path, registry); err != nil {
			bslog.Warn("unable to write metrics", "file", path, "reason", err.Error())
		}
	}

	return runErr
}
