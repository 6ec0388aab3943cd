// Package live implements the catalog source backed by the remote
// mediathek API.
package live

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rbtvdl/rbtvdl/internal/catalog"
	"github.com/rbtvdl/rbtvdl/pkg/rbtv"
)

// Source answers catalog queries from the remote API. Shows are
// memoized for the lifetime of the source so that season lookups in a
// download loop don't re-fetch the same show per episode.
type Source struct {
	api *rbtv.Client
	log *slog.Logger

	mu    sync.Mutex
	shows map[int]catalog.Show
}

// New creates a live catalog source.
func New(api *rbtv.Client, log *slog.Logger) *Source {
	return &Source{
		api:   api,
		log:   log,
		shows: make(map[int]catalog.Show),
	}
}

// mapErr translates API sentinel errors to catalog sentinels.
func mapErr(err error) error {
	switch {
	case errors.Is(err, rbtv.ErrNotFound):
		return catalog.ErrNotFound
	case errors.Is(err, rbtv.ErrBadRequest):
		return catalog.ErrRejected
	default:
		return err
	}
}

func (s *Source) show(ctx context.Context, id int) (catalog.Show, error) {
	s.mu.Lock()
	show, ok := s.shows[id]
	s.mu.Unlock()
	if ok {
		return show, nil
	}

	apiShow, err := s.api.Show(ctx, id)
	if err != nil {
		return catalog.Show{}, fmt.Errorf("show %d: %w", id, mapErr(err))
	}
	show = showFromAPI(*apiShow)

	s.mu.Lock()
	s.shows[id] = show
	s.mu.Unlock()
	return show, nil
}

// Episodes fetches episodes by id.
func (s *Source) Episodes(ctx context.Context, ids []int) ([]catalog.Episode, error) {
	episodes := make([]catalog.Episode, 0, len(ids))
	for _, id := range ids {
		ep, err := s.api.Episode(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("episode %d: %w", id, mapErr(err))
		}
		episodes = append(episodes, episodeFromAPI(*ep))
	}
	return episodes, nil
}

// Season resolves a season of a show.
func (s *Source) Season(ctx context.Context, showID, seasonID int) (*catalog.Season, error) {
	show, err := s.show(ctx, showID)
	if err != nil {
		return nil, err
	}
	for _, season := range show.Seasons {
		if season.ID == seasonID {
			return &season, nil
		}
	}
	return nil, fmt.Errorf("season %d of show %d: %w", seasonID, showID, catalog.ErrNotFound)
}

// EpisodesBySeasons fetches all episodes of the given seasons.
func (s *Source) EpisodesBySeasons(ctx context.Context, seasonIDs []int) ([]catalog.Episode, error) {
	var episodes []catalog.Episode
	for _, id := range seasonIDs {
		eps, err := s.api.EpisodesBySeason(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("season %d: %w", id, mapErr(err))
		}
		episodes = append(episodes, episodesFromAPI(eps)...)
	}
	return episodes, nil
}

// EpisodesByShows fetches all episodes of the given shows.
func (s *Source) EpisodesByShows(ctx context.Context, showIDs []int, unsortedOnly bool) ([]catalog.Episode, error) {
	var episodes []catalog.Episode
	for _, id := range showIDs {
		var (
			eps []rbtv.Episode
			err error
		)
		if unsortedOnly {
			eps, err = s.api.UnsortedEpisodesByShow(ctx, id)
		} else {
			eps, err = s.api.EpisodesByShow(ctx, id)
		}
		if err != nil {
			return nil, fmt.Errorf("show %d: %w", id, mapErr(err))
		}
		episodes = append(episodes, episodesFromAPI(eps)...)
	}
	return episodes, nil
}

// AllEpisodes fetches every episode of every show. Shows whose episode
// listing the API rejects (true podcasts) are skipped with a warning.
func (s *Source) AllEpisodes(ctx context.Context, unsortedOnly bool) ([]catalog.Episode, error) {
	shows, err := s.AllShows(ctx)
	if err != nil {
		return nil, err
	}

	var episodes []catalog.Episode
	for _, show := range shows {
		eps, err := s.EpisodesByShows(ctx, []int{show.ID}, unsortedOnly)
		if errors.Is(err, catalog.ErrRejected) {
			if s.log != nil {
				s.log.Warn("skipping show", "show_id", show.ID, "title", show.Title, "error", err)
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		episodes = append(episodes, eps...)
	}
	return episodes, nil
}

// EpisodesByBohnen fetches the union of the hosts' episodes,
// deduplicated by episode id.
func (s *Source) EpisodesByBohnen(ctx context.Context, bohneIDs []int) ([]catalog.Episode, error) {
	var episodes []catalog.Episode
	seen := make(map[int]bool)
	for _, id := range bohneIDs {
		eps, err := s.api.EpisodesByBohne(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("bohne %d: %w", id, mapErr(err))
		}
		for _, ep := range episodesFromAPI(eps) {
			if seen[ep.ID] {
				continue
			}
			seen[ep.ID] = true
			episodes = append(episodes, ep)
		}
	}
	return episodes, nil
}

// Shows fetches shows by id.
func (s *Source) Shows(ctx context.Context, ids []int) ([]catalog.Show, error) {
	shows := make([]catalog.Show, 0, len(ids))
	for _, id := range ids {
		show, err := s.show(ctx, id)
		if err != nil {
			return nil, err
		}
		shows = append(shows, show)
	}
	return shows, nil
}

// AllShows fetches every show in the catalog.
func (s *Source) AllShows(ctx context.Context) ([]catalog.Show, error) {
	apiShows, err := s.api.Shows(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	shows := make([]catalog.Show, 0, len(apiShows))
	for _, show := range apiShows {
		shows = append(shows, showFromAPI(show))
	}
	return shows, nil
}

// Bohnen fetches hosts by id.
func (s *Source) Bohnen(ctx context.Context, ids []int) ([]catalog.Bohne, error) {
	bohnen := make([]catalog.Bohne, 0, len(ids))
	for _, id := range ids {
		b, err := s.api.Bohne(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("bohne %d: %w", id, mapErr(err))
		}
		bohnen = append(bohnen, bohneFromAPI(*b))
	}
	return bohnen, nil
}

// AllBohnen fetches every host in the catalog.
func (s *Source) AllBohnen(ctx context.Context) ([]catalog.Bohne, error) {
	apiBohnen, err := s.api.Bohnen(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	bohnen := make([]catalog.Bohne, 0, len(apiBohnen))
	for _, b := range apiBohnen {
		bohnen = append(bohnen, bohneFromAPI(b))
	}
	return bohnen, nil
}

// Posts fetches blog posts by id.
func (s *Source) Posts(ctx context.Context, ids []int) ([]catalog.BlogPost, error) {
	posts := make([]catalog.BlogPost, 0, len(ids))
	for _, id := range ids {
		p, err := s.api.BlogPost(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("blog post %d: %w", id, mapErr(err))
		}
		posts = append(posts, postFromAPI(*p))
	}
	return posts, nil
}

// AllPosts fetches every blog post in the catalog.
func (s *Source) AllPosts(ctx context.Context) ([]catalog.BlogPost, error) {
	apiPosts, err := s.api.BlogPosts(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	posts := make([]catalog.BlogPost, 0, len(apiPosts))
	for _, p := range apiPosts {
		posts = append(posts, postFromAPI(p))
	}
	return posts, nil
}

// Search delegates to the API's full-text search.
func (s *Source) Search(ctx context.Context, text string) (*catalog.SearchResult, error) {
	apiResult, err := s.api.Search(ctx, text)
	if err != nil {
		return nil, mapErr(err)
	}

	result := &catalog.SearchResult{
		Episodes: episodesFromAPI(apiResult.Episodes),
	}
	for _, show := range apiResult.Shows {
		result.Shows = append(result.Shows, showFromAPI(show))
	}
	for _, post := range apiResult.Blog {
		result.Posts = append(result.Posts, postFromAPI(post))
	}
	return result, nil
}

var _ catalog.Source = (*Source)(nil)
