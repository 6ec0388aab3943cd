// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Backend modes.
const (
	BackendLive     = "live"
	BackendSnapshot = "snapshot"
)

// Config is the root configuration structure.
type Config struct {
	API      APIConfig      `toml:"api"`
	Backend  BackendConfig  `toml:"backend"`
	Download DownloadConfig `toml:"download"`
	Records  RecordsConfig  `toml:"records"`
	Log      LogConfig      `toml:"log"`
}

type APIConfig struct {
	URL string `toml:"url"` // base URL override, empty uses the public API
}

type BackendConfig struct {
	Mode         string `toml:"mode"` // live or snapshot
	SnapshotPath string `toml:"snapshot_path"`
}

type DownloadConfig struct {
	Basepath     string `toml:"basepath"`
	DirTemplate  string `toml:"outdirtpl"`
	FileTemplate string `toml:"outtmpl"`
	Format       string `toml:"format"`
	MissingValue string `toml:"missing_value"`
	Retries      int    `toml:"retries"`
	Cookies      string `toml:"cookies"`
}

type RecordsConfig struct {
	// Path of the record store. A .db or .sqlite extension selects the
	// SQLite store, anything else the plaintext file. Empty disables
	// persistent records.
	Path string `toml:"path"`
	// TokenPattern extracts the youtube token from an untracked
	// filename; the first capture group is the token.
	TokenPattern string `toml:"token_pattern"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultTokenPattern matches an 11-character youtube id before the
// file extension, as produced by yt-dlp's id-bearing templates.
const DefaultTokenPattern = `-([A-Za-z0-9_-]{11})\.[a-z0-9]+$`

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Backend.Mode == "" {
		c.Backend.Mode = BackendLive
	}
	if c.Backend.SnapshotPath == "" {
		c.Backend.SnapshotPath = DefaultSnapshotPath()
	}
	if c.Download.Basepath == "" {
		c.Download.Basepath = "."
	}
	if c.Download.DirTemplate == "" {
		c.Download.DirTemplate = "{show_name}/{season_name}"
	}
	if c.Download.FileTemplate == "" {
		c.Download.FileTemplate = "%(title)s.%(ext)s"
	}
	if c.Download.MissingValue == "" {
		c.Download.MissingValue = "-"
	}
	if c.Download.Retries == 0 {
		c.Download.Retries = 10
	}
	if c.Records.TokenPattern == "" {
		c.Records.TokenPattern = DefaultTokenPattern
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
