// Package catalog defines the mediathek record model and the
// read-only query surface shared by the live and snapshot backends.
package catalog

import "context"

// Source is the read-only query surface over the catalog. The live
// backend answers from the remote API, the snapshot backend from a
// local database; callers cannot tell them apart.
//
// Id lookups return ErrNotFound when any requested id does not
// resolve. List queries return records in catalog order; sorting and
// secondary filtering are the query engine's job.
type Source interface {
	// Episodes fetches episodes by id.
	Episodes(ctx context.Context, ids []int) ([]Episode, error)

	// Season resolves a season of a show.
	Season(ctx context.Context, showID, seasonID int) (*Season, error)

	// EpisodesBySeasons fetches all episodes of the given seasons.
	EpisodesBySeasons(ctx context.Context, seasonIDs []int) ([]Episode, error)

	// EpisodesByShows fetches all episodes of the given shows,
	// optionally restricted to unsorted episodes.
	EpisodesByShows(ctx context.Context, showIDs []int, unsortedOnly bool) ([]Episode, error)

	// AllEpisodes fetches every episode in the catalog.
	AllEpisodes(ctx context.Context, unsortedOnly bool) ([]Episode, error)

	// EpisodesByBohnen fetches the union of all episodes any of the
	// given hosts appears in. Host-count thresholds are applied by the
	// query engine, not here.
	EpisodesByBohnen(ctx context.Context, bohneIDs []int) ([]Episode, error)

	// Shows fetches shows by id.
	Shows(ctx context.Context, ids []int) ([]Show, error)

	// AllShows fetches every show in the catalog.
	AllShows(ctx context.Context) ([]Show, error)

	// Bohnen fetches hosts by id.
	Bohnen(ctx context.Context, ids []int) ([]Bohne, error)

	// AllBohnen fetches every host in the catalog.
	AllBohnen(ctx context.Context) ([]Bohne, error)

	// Posts fetches blog posts by id.
	Posts(ctx context.Context, ids []int) ([]BlogPost, error)

	// AllPosts fetches every blog post in the catalog.
	AllPosts(ctx context.Context) ([]BlogPost, error)

	// Search performs a case-insensitive free-text search over show,
	// episode and blog post titles.
	Search(ctx context.Context, text string) (*SearchResult, error)
}
