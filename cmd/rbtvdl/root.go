package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rbtvdl/rbtvdl/internal/catalog"
	"github.com/rbtvdl/rbtvdl/internal/catalog/live"
	"github.com/rbtvdl/rbtvdl/internal/catalog/snapshot"
	"github.com/rbtvdl/rbtvdl/internal/config"
	"github.com/rbtvdl/rbtvdl/internal/records"
	"github.com/rbtvdl/rbtvdl/pkg/rbtv"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	flagConfig   string
	flagBackend  string
	flagSnapshot string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "rbtvdl",
	Short: "Browse and download the Rocket Beans TV mediathek",
	Long: `rbtvdl - browse and download the Rocket Beans TV mediathek

Selects shows, seasons, episodes, hosts (Bohnen) and blog posts from
the mediathek, either against the live API or a local snapshot written
by 'rbtvdl dump'. Video downloads are delegated to yt-dlp.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Catalog backend: live or snapshot")
	rootCmd.PersistentFlags().StringVar(&flagSnapshot, "db-path", "", "Snapshot database path")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("rbtvdl {{.Version}}\n")
}

// loadConfig loads the configuration, applies root flag overrides and
// validates the result. A missing config file falls back to defaults;
// an invalid one is an error before any I/O happens.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	path := flagConfig
	if path == "" {
		discovered, err := config.Discover()
		if err == nil {
			path = discovered
		}
	}

	if path == "" {
		cfg = config.Default()
	} else {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flagBackend != "" {
		cfg.Backend.Mode = flagBackend
	}
	if flagSnapshot != "" {
		cfg.Backend.SnapshotPath = flagSnapshot
	}
	if flagVerbose {
		cfg.Log.Level = "debug"
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &config.ConfigError{Path: path, Errors: errs}
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newAPIClient(cfg *config.Config, log *slog.Logger) *rbtv.Client {
	opts := []rbtv.Option{rbtv.WithLogger(log)}
	if cfg.API.URL != "" {
		opts = append(opts, rbtv.WithBaseURL(cfg.API.URL))
	}
	return rbtv.New(opts...)
}

// openSource builds the catalog source for the configured backend. The
// returned func releases it.
func openSource(cfg *config.Config, log *slog.Logger) (catalog.Source, func(), error) {
	switch cfg.Backend.Mode {
	case config.BackendSnapshot:
		store, err := snapshot.Open(cfg.Backend.SnapshotPath)
		if err != nil {
			if snapshot.IsNotExist(err) {
				return nil, nil, fmt.Errorf("no snapshot at %s, run 'rbtvdl dump' first", cfg.Backend.SnapshotPath)
			}
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return live.New(newAPIClient(cfg, log), log), func() {}, nil
	}
}

// openRecords builds the record store selected by the configured path:
// none, plaintext file or SQLite.
func openRecords(cfg *config.Config) (records.Store, error) {
	switch {
	case cfg.Records.Path == "":
		return records.NewMemory(), nil
	case cfg.RecordsSQLite():
		return records.OpenSQLite(cfg.Records.Path)
	default:
		return records.OpenFile(cfg.Records.Path)
	}
}
