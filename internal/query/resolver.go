package query

import (
	"context"
	"fmt"

	"github.com/rbtvdl/rbtvdl/internal/catalog"
)

// Resolver turns a validated Selection into record sets, using a
// catalog source for lookups. Name selectors are matched against the
// full show and bohne listings with accent and case folding, so the
// behavior is identical across backends.
type Resolver struct {
	src     catalog.Source
	missing string
}

// NewResolver creates a resolver. The missing value is used as the
// sort placeholder for records lacking the sort field.
func NewResolver(src catalog.Source, missing string) *Resolver {
	return &Resolver{src: src, missing: missing}
}

// Episodes resolves a selection to episodes and applies the modifier
// pipeline: unsorted filter, host thresholds, text search, sort and
// limit.
func (r *Resolver) Episodes(ctx context.Context, sel Selection, mod Modifiers) ([]catalog.Episode, error) {
	if err := sel.Validate(mod); err != nil {
		return nil, err
	}

	var (
		episodes []catalog.Episode
		hostIDs  []int
		err      error
	)
	switch {
	case len(sel.EpisodeIDs) > 0:
		episodes, err = r.src.Episodes(ctx, sel.EpisodeIDs)
	case len(sel.SeasonIDs) > 0:
		episodes, err = r.src.EpisodesBySeasons(ctx, sel.SeasonIDs)
	case sel.AllShows:
		episodes, err = r.src.AllEpisodes(ctx, mod.UnsortedOnly)
	case sel.hasShows():
		var showIDs []int
		showIDs, err = r.resolveShowIDs(ctx, sel)
		if err == nil {
			episodes, err = r.src.EpisodesByShows(ctx, showIDs, mod.UnsortedOnly)
		}
	case sel.hasBohnen():
		hostIDs, err = r.resolveBohneIDs(ctx, sel)
		if err == nil {
			episodes, err = r.src.EpisodesByBohnen(ctx, hostIDs)
		}
	default:
		return nil, fmt.Errorf("selection does not resolve to episodes")
	}
	if err != nil {
		return nil, err
	}

	if mod.UnsortedOnly {
		episodes = Unsorted(episodes)
	}
	if len(hostIDs) > 0 {
		num := mod.MinBohnen
		if num < 1 {
			num = 1
		}
		episodes = ByHosts(episodes, hostIDs, num, mod.Exclusive)
	}
	if mod.Search != "" {
		episodes = BySearch(episodes, mod.Search)
	}
	SortEpisodes(episodes, mod.SortBy, r.missing)
	return Limit(episodes, mod.Limit), nil
}

// Shows resolves a selection to shows.
func (r *Resolver) Shows(ctx context.Context, sel Selection, mod Modifiers) ([]catalog.Show, error) {
	if err := sel.Validate(mod); err != nil {
		return nil, err
	}

	var (
		shows []catalog.Show
		err   error
	)
	switch {
	case sel.AllShows:
		shows, err = r.src.AllShows(ctx)
	case sel.hasShows():
		var ids []int
		ids, err = r.resolveShowIDs(ctx, sel)
		if err == nil {
			shows, err = r.src.Shows(ctx, ids)
		}
	default:
		return nil, fmt.Errorf("selection does not resolve to shows")
	}
	if err != nil {
		return nil, err
	}

	if mod.Search != "" {
		shows = ShowsBySearch(shows, mod.Search)
	}
	SortShows(shows, mod.SortBy, r.missing)
	return Limit(shows, mod.Limit), nil
}

// Bohnen resolves a selection to hosts.
func (r *Resolver) Bohnen(ctx context.Context, sel Selection, mod Modifiers) ([]catalog.Bohne, error) {
	if err := sel.Validate(mod); err != nil {
		return nil, err
	}

	var (
		bohnen []catalog.Bohne
		err    error
	)
	switch {
	case sel.AllBohnen:
		bohnen, err = r.src.AllBohnen(ctx)
	case sel.hasBohnen():
		var ids []int
		ids, err = r.resolveBohneIDs(ctx, sel)
		if err == nil {
			bohnen, err = r.src.Bohnen(ctx, ids)
		}
	default:
		return nil, fmt.Errorf("selection does not resolve to bohnen")
	}
	if err != nil {
		return nil, err
	}

	if mod.Search != "" {
		bohnen = BohnenBySearch(bohnen, mod.Search)
	}
	SortBohnen(bohnen, mod.SortBy, r.missing)
	return Limit(bohnen, mod.Limit), nil
}

// Posts resolves a selection to blog posts.
func (r *Resolver) Posts(ctx context.Context, sel Selection, mod Modifiers) ([]catalog.BlogPost, error) {
	if err := sel.Validate(mod); err != nil {
		return nil, err
	}

	var (
		posts []catalog.BlogPost
		err   error
	)
	switch {
	case sel.AllBlog:
		posts, err = r.src.AllPosts(ctx)
	case len(sel.BlogIDs) > 0:
		posts, err = r.src.Posts(ctx, sel.BlogIDs)
	default:
		return nil, fmt.Errorf("selection does not resolve to blog posts")
	}
	if err != nil {
		return nil, err
	}

	if mod.Search != "" {
		posts = PostsBySearch(posts, mod.Search)
	}
	SortPosts(posts, mod.SortBy, r.missing)
	return Limit(posts, mod.Limit), nil
}

// Search runs the backend's full-text search.
func (r *Resolver) Search(ctx context.Context, text string) (*catalog.SearchResult, error) {
	return r.src.Search(ctx, text)
}

// resolveShowIDs combines explicit show ids with ids matched by name.
// Every given name must match at least one show, otherwise a
// SelectionError with close candidates is returned.
func (r *Resolver) resolveShowIDs(ctx context.Context, sel Selection) ([]int, error) {
	ids := append([]int(nil), sel.ShowIDs...)
	if len(sel.ShowNames) == 0 {
		return ids, nil
	}

	shows, err := r.src.AllShows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	titles := make([]string, len(shows))
	for i, show := range shows {
		titles[i] = show.Title
	}

	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	for _, name := range sel.ShowNames {
		matches := matchNames(name, titles)
		if len(matches) == 0 {
			return nil, &SelectionError{Kind: "show", Query: name, Suggestions: suggestNames(name, titles)}
		}
		for _, i := range matches {
			if !seen[shows[i].ID] {
				seen[shows[i].ID] = true
				ids = append(ids, shows[i].ID)
			}
		}
	}
	return ids, nil
}

// resolveBohneIDs combines explicit bohne ids with ids matched by
// name, or expands to every host for an all-bohnen selection.
func (r *Resolver) resolveBohneIDs(ctx context.Context, sel Selection) ([]int, error) {
	if sel.AllBohnen {
		bohnen, err := r.src.AllBohnen(ctx)
		if err != nil {
			return nil, fmt.Errorf("list bohnen: %w", err)
		}
		ids := make([]int, len(bohnen))
		for i, b := range bohnen {
			ids[i] = b.ID
		}
		return ids, nil
	}

	ids := append([]int(nil), sel.BohneIDs...)
	if len(sel.BohneNames) == 0 {
		return ids, nil
	}

	bohnen, err := r.src.AllBohnen(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bohnen: %w", err)
	}
	names := make([]string, len(bohnen))
	for i, b := range bohnen {
		names[i] = b.Name
	}

	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	for _, name := range sel.BohneNames {
		matches := matchNames(name, names)
		if len(matches) == 0 {
			return nil, &SelectionError{Kind: "bohne", Query: name, Suggestions: suggestNames(name, names)}
		}
		for _, i := range matches {
			if !seen[bohnen[i].ID] {
				seen[bohnen[i].ID] = true
				ids = append(ids, bohnen[i].ID)
			}
		}
	}
	return ids, nil
}
