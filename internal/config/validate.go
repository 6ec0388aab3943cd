package config

import (
	"fmt"
	"regexp"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validBackends = map[string]bool{
	BackendLive: true, BackendSnapshot: true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validBackends[c.Backend.Mode] {
		errs = append(errs, fmt.Sprintf("backend.mode: must be live or snapshot, got %q", c.Backend.Mode))
	}
	if c.Backend.Mode == BackendSnapshot && c.Backend.SnapshotPath == "" {
		errs = append(errs, "backend.snapshot_path: required for the snapshot backend")
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if c.Download.Retries < 0 {
		errs = append(errs, fmt.Sprintf("download.retries: must not be negative, got %d", c.Download.Retries))
	}
	if c.API.URL != "" && !strings.HasPrefix(c.API.URL, "http://") && !strings.HasPrefix(c.API.URL, "https://") {
		errs = append(errs, fmt.Sprintf("api.url: must be an http(s) URL, got %q", c.API.URL))
	}

	if c.Records.TokenPattern != "" {
		if pattern, err := regexp.Compile(c.Records.TokenPattern); err != nil {
			errs = append(errs, fmt.Sprintf("records.token_pattern: %v", err))
		} else if pattern.NumSubexp() < 1 {
			errs = append(errs, "records.token_pattern: needs a capture group for the token")
		}
	}

	return errs
}

// RecordsSQLite reports whether the record path selects the SQLite
// store. Only the SQLite store supports the reorganize commands.
func (c *Config) RecordsSQLite() bool {
	return strings.HasSuffix(c.Records.Path, ".db") || strings.HasSuffix(c.Records.Path, ".sqlite")
}
