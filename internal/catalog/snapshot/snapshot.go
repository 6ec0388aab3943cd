// Package snapshot implements the catalog source backed by a local
// SQLite snapshot of the mediathek. The snapshot is a point-in-time
// copy written by Refresh; queries never touch the network.
package snapshot

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/rbtvdl/rbtvdl/internal/catalog"
)

//go:embed schema.sql
var schemaSQL string

// Record kinds in the records table.
const (
	kindShow    = "show"
	kindEpisode = "episode"
	kindBohne   = "bohne"
	kindBlog    = "blog"
)

// metaRefreshedAt is the snapshot_meta key holding the last refresh
// timestamp.
const metaRefreshedAt = "refreshed_at"

// Store is a snapshot-backed catalog source.
type Store struct {
	db *sql.DB
}

// Open opens an existing snapshot read-only. It fails with a wrapped
// fs.ErrNotExist when the snapshot has never been created.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	return &Store{db: db}, nil
}

// Create opens (or creates) a snapshot read-write and ensures the
// schema exists. Used by the refresh step only.
func Create(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("create snapshot: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create snapshot schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// decodeInto unmarshals a record payload, annotating failures with the
// record identity.
func decodeInto(kind string, id int, payload []byte, out any) error {
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s %d: %w", kind, id, err)
	}
	return nil
}

// payloadsByIDs loads the payloads of specific records, failing with
// ErrNotFound when any id is missing.
func (s *Store) payloadsByIDs(ctx context.Context, kind string, ids []int) (map[int][]byte, error) {
	if len(ids) == 0 {
		return map[int][]byte{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, 0, len(ids)+1)
	args = append(args, kind)
	for i, id := range ids {
		placeholders[i] = "?"
		args = append(args, id)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, payload FROM records WHERE kind = ? AND id IN ("+strings.Join(placeholders, ",")+")",
		args...)
	if err != nil {
		return nil, fmt.Errorf("query %s records: %w", kind, err)
	}
	defer func() { _ = rows.Close() }()

	payloads := make(map[int][]byte, len(ids))
	for rows.Next() {
		var id int
		var payload []byte
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("scan %s record: %w", kind, err)
		}
		payloads[id] = payload
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s records: %w", kind, err)
	}

	for _, id := range ids {
		if _, ok := payloads[id]; !ok {
			return nil, fmt.Errorf("%s %d: %w", kind, id, catalog.ErrNotFound)
		}
	}
	return payloads, nil
}

// payloadsByKind loads every payload of a record kind in id order.
func (s *Store) payloadsByKind(ctx context.Context, kind string) ([][]byte, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT payload FROM records WHERE kind = ? ORDER BY id", kind)
	if err != nil {
		return nil, fmt.Errorf("query %s records: %w", kind, err)
	}
	defer func() { _ = rows.Close() }()

	var payloads [][]byte
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan %s record: %w", kind, err)
		}
		payloads = append(payloads, payload)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s records: %w", kind, err)
	}
	return payloads, nil
}

// Episodes fetches episodes by id.
func (s *Store) Episodes(ctx context.Context, ids []int) ([]catalog.Episode, error) {
	payloads, err := s.payloadsByIDs(ctx, kindEpisode, ids)
	if err != nil {
		return nil, err
	}
	episodes := make([]catalog.Episode, 0, len(ids))
	for _, id := range ids {
		var ep catalog.Episode
		if err := decodeInto(kindEpisode, id, payloads[id], &ep); err != nil {
			return nil, err
		}
		episodes = append(episodes, ep)
	}
	return episodes, nil
}

// Season resolves a season from the stored show record.
func (s *Store) Season(ctx context.Context, showID, seasonID int) (*catalog.Season, error) {
	shows, err := s.Shows(ctx, []int{showID})
	if err != nil {
		return nil, err
	}
	for _, season := range shows[0].Seasons {
		if season.ID == seasonID {
			return &season, nil
		}
	}
	return nil, fmt.Errorf("season %d of show %d: %w", seasonID, showID, catalog.ErrNotFound)
}

// episodesWhere loads episodes through the episode index.
func (s *Store) episodesWhere(ctx context.Context, where string, args ...any) ([]catalog.Episode, error) {
	query := `
		SELECT r.id, r.payload FROM records r
		JOIN episode_index i ON i.episode_id = r.id
		WHERE r.kind = 'episode' AND ` + where + `
		ORDER BY r.id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query episodes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var episodes []catalog.Episode
	for rows.Next() {
		var id int
		var payload []byte
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		var ep catalog.Episode
		if err := decodeInto(kindEpisode, id, payload, &ep); err != nil {
			return nil, err
		}
		episodes = append(episodes, ep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate episodes: %w", err)
	}
	return episodes, nil
}

func inClause(column string, ids []int) (string, []any) {
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	return column + " IN (" + strings.Join(placeholders, ",") + ")", args
}

// EpisodesBySeasons fetches all episodes of the given seasons.
func (s *Store) EpisodesBySeasons(ctx context.Context, seasonIDs []int) ([]catalog.Episode, error) {
	if len(seasonIDs) == 0 {
		return nil, nil
	}
	where, args := inClause("i.season_id", seasonIDs)
	return s.episodesWhere(ctx, where, args...)
}

// EpisodesByShows fetches all episodes of the given shows.
func (s *Store) EpisodesByShows(ctx context.Context, showIDs []int, unsortedOnly bool) ([]catalog.Episode, error) {
	if len(showIDs) == 0 {
		return nil, nil
	}
	where, args := inClause("i.show_id", showIDs)
	if unsortedOnly {
		where += " AND i.season_id IS NULL"
	}
	return s.episodesWhere(ctx, where, args...)
}

// AllEpisodes fetches every episode in the snapshot.
func (s *Store) AllEpisodes(ctx context.Context, unsortedOnly bool) ([]catalog.Episode, error) {
	if unsortedOnly {
		return s.episodesWhere(ctx, "i.season_id IS NULL")
	}

	payloads, err := s.payloadsByKind(ctx, kindEpisode)
	if err != nil {
		return nil, err
	}
	episodes := make([]catalog.Episode, 0, len(payloads))
	for _, payload := range payloads {
		var ep catalog.Episode
		if err := decodeInto(kindEpisode, 0, payload, &ep); err != nil {
			return nil, err
		}
		episodes = append(episodes, ep)
	}
	return episodes, nil
}

// EpisodesByBohnen scans all episodes and keeps those featuring any of
// the given hosts.
func (s *Store) EpisodesByBohnen(ctx context.Context, bohneIDs []int) ([]catalog.Episode, error) {
	requested := make(map[int]bool, len(bohneIDs))
	for _, id := range bohneIDs {
		requested[id] = true
	}

	all, err := s.AllEpisodes(ctx, false)
	if err != nil {
		return nil, err
	}

	var episodes []catalog.Episode
	for _, ep := range all {
		for _, host := range ep.Hosts {
			if requested[host] {
				episodes = append(episodes, ep)
				break
			}
		}
	}
	return episodes, nil
}

// Shows fetches shows by id.
func (s *Store) Shows(ctx context.Context, ids []int) ([]catalog.Show, error) {
	payloads, err := s.payloadsByIDs(ctx, kindShow, ids)
	if err != nil {
		return nil, err
	}
	shows := make([]catalog.Show, 0, len(ids))
	for _, id := range ids {
		var show catalog.Show
		if err := decodeInto(kindShow, id, payloads[id], &show); err != nil {
			return nil, err
		}
		shows = append(shows, show)
	}
	return shows, nil
}

// AllShows fetches every show in the snapshot.
func (s *Store) AllShows(ctx context.Context) ([]catalog.Show, error) {
	payloads, err := s.payloadsByKind(ctx, kindShow)
	if err != nil {
		return nil, err
	}
	shows := make([]catalog.Show, 0, len(payloads))
	for _, payload := range payloads {
		var show catalog.Show
		if err := decodeInto(kindShow, 0, payload, &show); err != nil {
			return nil, err
		}
		shows = append(shows, show)
	}
	return shows, nil
}

// Bohnen fetches hosts by id.
func (s *Store) Bohnen(ctx context.Context, ids []int) ([]catalog.Bohne, error) {
	payloads, err := s.payloadsByIDs(ctx, kindBohne, ids)
	if err != nil {
		return nil, err
	}
	bohnen := make([]catalog.Bohne, 0, len(ids))
	for _, id := range ids {
		var b catalog.Bohne
		if err := decodeInto(kindBohne, id, payloads[id], &b); err != nil {
			return nil, err
		}
		bohnen = append(bohnen, b)
	}
	return bohnen, nil
}

// AllBohnen fetches every host in the snapshot.
func (s *Store) AllBohnen(ctx context.Context) ([]catalog.Bohne, error) {
	payloads, err := s.payloadsByKind(ctx, kindBohne)
	if err != nil {
		return nil, err
	}
	bohnen := make([]catalog.Bohne, 0, len(payloads))
	for _, payload := range payloads {
		var b catalog.Bohne
		if err := decodeInto(kindBohne, 0, payload, &b); err != nil {
			return nil, err
		}
		bohnen = append(bohnen, b)
	}
	return bohnen, nil
}

// Posts fetches blog posts by id.
func (s *Store) Posts(ctx context.Context, ids []int) ([]catalog.BlogPost, error) {
	payloads, err := s.payloadsByIDs(ctx, kindBlog, ids)
	if err != nil {
		return nil, err
	}
	posts := make([]catalog.BlogPost, 0, len(ids))
	for _, id := range ids {
		var p catalog.BlogPost
		if err := decodeInto(kindBlog, id, payloads[id], &p); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// AllPosts fetches every blog post in the snapshot.
func (s *Store) AllPosts(ctx context.Context) ([]catalog.BlogPost, error) {
	payloads, err := s.payloadsByKind(ctx, kindBlog)
	if err != nil {
		return nil, err
	}
	posts := make([]catalog.BlogPost, 0, len(payloads))
	for _, payload := range payloads {
		var p catalog.BlogPost
		if err := decodeInto(kindBlog, 0, payload, &p); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// Search scans the snapshot for case-insensitive substring matches.
// Shows match on title, episodes on title and description, blog posts
// also on their content.
func (s *Store) Search(ctx context.Context, text string) (*catalog.SearchResult, error) {
	needle := strings.ToLower(text)
	contains := func(fields ...string) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), needle) {
				return true
			}
		}
		return false
	}

	result := &catalog.SearchResult{}

	shows, err := s.AllShows(ctx)
	if err != nil {
		return nil, err
	}
	for _, show := range shows {
		if contains(show.Title) {
			result.Shows = append(result.Shows, show)
		}
	}

	episodes, err := s.AllEpisodes(ctx, false)
	if err != nil {
		return nil, err
	}
	for _, ep := range episodes {
		if contains(ep.Title, ep.Description) {
			result.Episodes = append(result.Episodes, ep)
		}
	}

	posts, err := s.AllPosts(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		if contains(p.Title, p.Subtitle, p.ContentMK, p.ContentHTML) {
			result.Posts = append(result.Posts, p)
		}
	}

	return result, nil
}

var _ catalog.Source = (*Store)(nil)

// IsNotExist reports whether err means the snapshot file is missing,
// i.e. the refresh step has never run.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
