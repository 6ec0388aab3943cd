package main

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/rbtvdl/rbtvdl/internal/config"
	"github.com/rbtvdl/rbtvdl/internal/records"
	"github.com/spf13/cobra"
)

func init() {
	reorganizeCmd := &cobra.Command{
		Use:   "reorganize",
		Short: "Inspect and repair the download records",
		Long: `Reconcile the SQLite record database with the files on disk. These
commands require a .db/.sqlite records path.`,
	}

	reorganizeCmd.AddCommand(&cobra.Command{
		Use:   "list-incomplete-episodes",
		Short: "List episodes whose records are inconsistent",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRecordsDB(func(ctx context.Context, cfg *config.Config, s *records.SQLite) error {
				partsOnly, completeOnly, err := s.Incomplete(ctx)
				if err != nil {
					return err
				}
				for _, id := range partsOnly {
					fmt.Printf("%8d  has parts but no completion mark\n", id)
				}
				for _, id := range completeOnly {
					fmt.Printf("%8d  marked complete but has no parts\n", id)
				}
				return nil
			}, cmd)
		},
	})

	reorganizeCmd.AddCommand(&cobra.Command{
		Use:   "list-files",
		Short: "List every recorded part with token and path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRecordsDB(func(ctx context.Context, cfg *config.Config, s *records.SQLite) error {
				parts, err := s.Parts(ctx)
				if err != nil {
					return err
				}
				for _, p := range parts {
					fmt.Printf("%8d %3d  %-12s %s\n", p.EpisodeID, p.Index, p.YoutubeToken, p.LocalPath)
				}
				return nil
			}, cmd)
		},
	})

	reorganizeCmd.AddCommand(&cobra.Command{
		Use:   "forget-missing-files",
		Short: "Drop part records whose local file is gone",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRecordsDB(func(ctx context.Context, cfg *config.Config, s *records.SQLite) error {
				forgotten, err := records.ForgetMissingFiles(ctx, s)
				if err != nil {
					return err
				}
				for _, p := range forgotten {
					fmt.Printf("forgot %d/%d (%s)\n", p.EpisodeID, p.Index, p.LocalPath)
				}
				return nil
			}, cmd)
		},
	})

	reorganizeCmd.AddCommand(&cobra.Command{
		Use:   "list-untracked-files",
		Short: "List files under basepath that no record points at",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRecordsDB(func(ctx context.Context, cfg *config.Config, s *records.SQLite) error {
				files, err := records.UntrackedFiles(ctx, s, cfg.Download.Basepath)
				if err != nil {
					return err
				}
				for _, f := range files {
					fmt.Println(f)
				}
				return nil
			}, cmd)
		},
	})

	reorganizeCmd.AddCommand(&cobra.Command{
		Use:   "track-untracked-files",
		Short: "Match untracked files to episodes by youtube token",
		Long: `Walk basepath, extract the youtube token from each untracked
filename using records.token_pattern and insert part records for
tokens known to the catalog.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRecordsDB(trackUntracked, cmd)
		},
	})

	rootCmd.AddCommand(reorganizeCmd)
}

// withRecordsDB loads the config, insists on the SQLite record store
// and runs fn against it.
func withRecordsDB(fn func(context.Context, *config.Config, *records.SQLite) error, cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.RecordsSQLite() {
		return fmt.Errorf("reorganize needs a SQLite records path (.db/.sqlite), got %q", cfg.Records.Path)
	}

	s, err := records.OpenSQLite(cfg.Records.Path)
	if err != nil {
		return err
	}
	defer s.Close()

	return fn(cmd.Context(), cfg, s)
}

func trackUntracked(ctx context.Context, cfg *config.Config, s *records.SQLite) error {
	pattern, err := regexp.Compile(cfg.Records.TokenPattern)
	if err != nil {
		return fmt.Errorf("records.token_pattern: %w", err)
	}

	log := newLogger(cfg)
	src, release, err := openSource(cfg, log)
	if err != nil {
		return err
	}
	defer release()

	episodes, err := src.AllEpisodes(ctx, false)
	if err != nil {
		return err
	}
	index := make(records.TokenIndex)
	for _, ep := range episodes {
		for i, token := range ep.YoutubeTokens {
			index[token] = records.Part{EpisodeID: ep.ID, Index: i, YoutubeToken: token}
		}
	}

	tracked, unmatched, err := records.TrackUntrackedFiles(ctx, s, cfg.Download.Basepath, pattern, index)
	if err != nil {
		return err
	}
	for _, tf := range tracked {
		fmt.Printf("tracked %d/%d  %s\n", tf.Part.EpisodeID, tf.Part.Index, tf.Path)
	}
	for _, path := range unmatched {
		fmt.Fprintf(os.Stderr, "no match for %s\n", path)
	}
	return nil
}
