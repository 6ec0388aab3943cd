package records

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// SQLite is a Store backed by a SQLite database. Unlike the plaintext
// file it also keeps the youtube token and the local path of every
// part, which is what the reorganize commands operate on.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) a record database and ensures the
// schema exists.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open record database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init record database: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) EpisodeDone(ctx context.Context, episodeID int) (bool, error) {
	var id int
	err := s.db.QueryRowContext(ctx,
		"SELECT episode_id FROM episodes WHERE episode_id = ?", episodeID,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query episode %d: %w", episodeID, err)
	}
	return true, nil
}

func (s *SQLite) PartDone(ctx context.Context, episodeID, index int) (bool, error) {
	var id int
	err := s.db.QueryRowContext(ctx,
		"SELECT episode_id FROM parts WHERE episode_id = ? AND episode_part = ?",
		episodeID, index,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query part %d/%d: %w", episodeID, index, err)
	}
	return true, nil
}

func (s *SQLite) RecordPart(ctx context.Context, part Part) error {
	if _, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO parts (episode_id, episode_part, youtube_token, local_path)
		VALUES (?, ?, ?, ?)`,
		part.EpisodeID, part.Index, part.YoutubeToken, part.LocalPath,
	); err != nil {
		return fmt.Errorf("record part %d/%d: %w", part.EpisodeID, part.Index, err)
	}
	return nil
}

func (s *SQLite) RecordEpisode(ctx context.Context, episodeID int) error {
	if _, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO episodes (episode_id) VALUES (?)", episodeID,
	); err != nil {
		return fmt.Errorf("record episode %d: %w", episodeID, err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// Parts lists every recorded part in episode order.
func (s *SQLite) Parts(ctx context.Context) ([]Part, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT episode_id, episode_part, youtube_token, local_path
		FROM parts ORDER BY episode_id, episode_part`)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()

	var parts []Part
	for rows.Next() {
		var p Part
		if err := rows.Scan(&p.EpisodeID, &p.Index, &p.YoutubeToken, &p.LocalPath); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

// Incomplete reports bookkeeping mismatches: episodes that have
// recorded parts but no completion mark, and completion marks with no
// recorded parts.
func (s *SQLite) Incomplete(ctx context.Context) (partsOnly, completeOnly []int, err error) {
	partsOnly, err = s.episodeIDs(ctx, `
		SELECT DISTINCT episode_id FROM parts
		WHERE episode_id NOT IN (SELECT episode_id FROM episodes)
		ORDER BY episode_id`)
	if err != nil {
		return nil, nil, err
	}
	completeOnly, err = s.episodeIDs(ctx, `
		SELECT episode_id FROM episodes
		WHERE episode_id NOT IN (SELECT DISTINCT episode_id FROM parts)
		ORDER BY episode_id`)
	if err != nil {
		return nil, nil, err
	}
	return partsOnly, completeOnly, nil
}

func (s *SQLite) episodeIDs(ctx context.Context, query string) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan episode id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// RemovePart forgets a single part record.
func (s *SQLite) RemovePart(ctx context.Context, episodeID, index int) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM parts WHERE episode_id = ? AND episode_part = ?",
		episodeID, index,
	); err != nil {
		return fmt.Errorf("remove part %d/%d: %w", episodeID, index, err)
	}
	return nil
}

// RemoveEpisode forgets an episode's completion mark.
func (s *SQLite) RemoveEpisode(ctx context.Context, episodeID int) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM episodes WHERE episode_id = ?", episodeID,
	); err != nil {
		return fmt.Errorf("remove episode %d: %w", episodeID, err)
	}
	return nil
}

var _ Store = (*SQLite)(nil)
