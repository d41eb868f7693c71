package config

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/vitistack/hotel-reservations/pkg/loaders"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type Config struct {
	storage Storage
	log     Log
	metrics Metrics
}

func (c *Config) Storage() *Storage {
	return &c.storage
}

func (c *Config) Log() *Log {
	return &c.log
}

func (c *Config) Metrics() *Metrics {
	return &c.metrics
}

// Storage configuration
type Storage struct {
	Backend          string `env:"STORE_BACKEND" flag:"backend" usage:"storage backend: json or sqlite"`
	DataDir          string `env:"STORE_DATA_DIR" flag:"data-dir" usage:"directory holding the collections"`
	HotelsFile       string `env:"STORE_HOTELS_FILE" flag:"hotels-file" usage:"hotels collection file name"`
	CustomersFile    string `env:"STORE_CUSTOMERS_FILE" flag:"customers-file" usage:"customers collection file name"`
	ReservationsFile string `env:"STORE_RESERVATIONS_FILE" flag:"reservations-file" usage:"reservations collection file name"`
	SQLiteFile       string `env:"STORE_SQLITE_FILE" flag:"sqlite-file" usage:"sqlite database file name"`
}

// Path resolves a collection file name against the data directory.
func (s *Storage) Path(fileName string) string {
	if filepath.IsAbs(fileName) {
		return fileName
	}
	return filepath.Join(s.DataDir, fileName)
}

// Log configuration
type Log struct {
	Level   string `env:"LOG_LEVEL" flag:"log-level" usage:"debug, info, warn, error or fatal"`
	DevMode bool   `env:"LOG_DEV" flag:"log-dev" usage:"add caller information to log lines"`
}

// Metrics configuration
type Metrics struct {
	Textfile string `env:"METRICS_TEXTFILE" flag:"metrics-textfile" usage:"write prometheus metrics to this file on exit"`
}

// Load builds the configuration from the environment, envFile and the flags in
// args, in that order. It returns the positional arguments left after the flags.
func Load(name string, args []string, envFile string) (*Config, []string, error) {
	// creating default config variables where possible
	storageCfg := Storage{
		Backend:          BackendJSON,
		DataDir:          ".",
		HotelsFile:       "hotels.json",
		CustomersFile:    "customers.json",
		ReservationsFile: "reservations.json",
		SQLiteFile:       "reservations.db",
	}
	logCfg := Log{
		Level: "info",
	}
	metricsCfg := Metrics{}

	configs := []any{
		&storageCfg,
		&logCfg,
		&metricsCfg,
	}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	if err := loaders.DefineFlags(flags, configs...); err != nil {
		return nil, nil, err
	}
	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}

	loader := loaders.NewChainLoader(
		loaders.NewEnvloader(),
		loaders.NewFileLoader(envFile),
		loaders.NewFlagLoader(flags),
	)

	for _, cfg := range configs {
		err := loader.Load(cfg)
		if err != nil {
			return nil, nil, err
		}
	}

	// memory stays available to storage.New callers, a single command run would lose it on exit
	switch storageCfg.Backend {
	case BackendJSON, BackendSQLite:
	case BackendMemory:
		return nil, nil, fmt.Errorf("store backend %q keeps nothing between runs (supported: json, sqlite)", storageCfg.Backend)
	default:
		return nil, nil, fmt.Errorf("unknown store backend: %q (supported: json, sqlite)", storageCfg.Backend)
	}

	return &Config{
		storage: storageCfg,
		log:     logCfg,
		metrics: metricsCfg,
	}, flags.Args(), nil
}
