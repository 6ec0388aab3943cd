package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rbtvdl/rbtvdl/internal/catalog"
)

// Refresh replaces the snapshot contents with the current state of
// src, in a single transaction: readers either see the old snapshot or
// the new one. Shows whose episode listing the source rejects (true
// podcasts) are skipped with a warning, matching AllEpisodes.
func (s *Store) Refresh(ctx context.Context, src catalog.Source, log *slog.Logger) error {
	shows, err := src.AllShows(ctx)
	if err != nil {
		return fmt.Errorf("fetch shows: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin refresh: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"records", "episode_index"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, show := range shows {
		if err := insertRecord(ctx, tx, kindShow, show.ID, show); err != nil {
			return err
		}

		episodes, err := src.EpisodesByShows(ctx, []int{show.ID}, false)
		if errors.Is(err, catalog.ErrRejected) {
			if log != nil {
				log.Warn("skipping episodes of show", "show_id", show.ID, "title", show.Title, "podcast", show.IsTruePodcast)
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("fetch episodes of show %d: %w", show.ID, err)
		}

		for _, ep := range episodes {
			if err := insertRecord(ctx, tx, kindEpisode, ep.ID, ep); err != nil {
				return err
			}
			var seasonID any
			if ep.InSeason() {
				seasonID = ep.SeasonID
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT OR REPLACE INTO episode_index (episode_id, show_id, season_id, title)
				VALUES (?, ?, ?, ?)`,
				ep.ID, ep.ShowID, seasonID, ep.Title,
			); err != nil {
				return fmt.Errorf("index episode %d: %w", ep.ID, err)
			}
		}

		if log != nil {
			log.Debug("stored show", "show_id", show.ID, "title", show.Title, "episodes", len(episodes))
		}
	}

	bohnen, err := src.AllBohnen(ctx)
	if err != nil {
		return fmt.Errorf("fetch bohnen: %w", err)
	}
	for _, b := range bohnen {
		if err := insertRecord(ctx, tx, kindBohne, b.ID, b); err != nil {
			return err
		}
	}

	posts, err := src.AllPosts(ctx)
	if err != nil {
		return fmt.Errorf("fetch blog posts: %w", err)
	}
	for _, p := range posts {
		if err := insertRecord(ctx, tx, kindBlog, p.ID, p); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO snapshot_meta (key, value) VALUES (?, ?)`,
		metaRefreshedAt, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("store refresh time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit refresh: %w", err)
	}

	if log != nil {
		log.Info("snapshot refreshed", "shows", len(shows), "bohnen", len(bohnen), "posts", len(posts))
	}
	return nil
}

func insertRecord(ctx context.Context, tx *sql.Tx, kind string, id int, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s %d: %w", kind, id, err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO records (kind, id, payload) VALUES (?, ?, ?)`,
		kind, id, string(payload),
	); err != nil {
		return fmt.Errorf("store %s %d: %w", kind, id, err)
	}
	return nil
}

// RefreshedAt returns when the snapshot was last refreshed, or the
// zero time if it never was.
func (s *Store) RefreshedAt(ctx context.Context) (time.Time, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM snapshot_meta WHERE key = ?", metaRefreshedAt,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("read refresh time: %w", err)
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse refresh time: %w", err)
	}
	return t, nil
}
