package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rbtvdl/rbtvdl/internal/catalog/live"
	"github.com/rbtvdl/rbtvdl/internal/catalog/snapshot"
	"github.com/spf13/cobra"
)

func init() {
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Write a local snapshot of the whole mediathek",
		Long: `Fetch every show, episode, host and blog post from the live API and
rewrite the local snapshot database in one transaction. The snapshot
backend answers all queries from that database.`,
		RunE: runDump,
	}
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	path := cfg.Backend.SnapshotPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	store, err := snapshot.Create(path)
	if err != nil {
		return err
	}
	defer store.Close()

	src := live.New(newAPIClient(cfg, log), log)
	if err := store.Refresh(cmd.Context(), src, log); err != nil {
		return err
	}

	log.Info("snapshot written", "path", path)
	return nil
}
