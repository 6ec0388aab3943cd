package live

import (
	"strconv"
	"time"

	"github.com/rbtvdl/rbtvdl/internal/catalog"
	"github.com/rbtvdl/rbtvdl/pkg/rbtv"
)

func showFromAPI(s rbtv.Show) catalog.Show {
	seasons := make([]catalog.Season, 0, len(s.Seasons))
	for _, season := range s.Seasons {
		seasons = append(seasons, seasonFromAPI(season))
	}
	return catalog.Show{
		ID:                  s.ID,
		Title:               s.Title,
		Genre:               s.Genre,
		StatusNote:          s.StatusPublicNote,
		HasUnsortedEpisodes: s.HasUnsortedEpisodes,
		IsTruePodcast:       s.IsTruePodcast,
		Seasons:             seasons,
	}
}

func seasonFromAPI(s rbtv.Season) catalog.Season {
	return catalog.Season{
		ID:     s.ID,
		ShowID: s.ShowID,
		Name:   s.Name,
		Number: optInt(s.Numeric),
	}
}

func episodeFromAPI(e rbtv.Episode) catalog.Episode {
	return catalog.Episode{
		ID:             e.ID,
		ShowID:         e.ShowID,
		ShowName:       e.ShowName,
		SeasonID:       e.SeasonID,
		Number:         optInt(e.Episode),
		Title:          e.Title,
		Description:    e.Description,
		Duration:       e.Duration,
		FirstBroadcast: parseTime(e.FirstBroadcastdate),
		Hosts:          e.Hosts,
		YoutubeTokens:  e.YoutubeTokens,
	}
}

func episodesFromAPI(eps []rbtv.Episode) []catalog.Episode {
	out := make([]catalog.Episode, 0, len(eps))
	for _, e := range eps {
		out = append(out, episodeFromAPI(e))
	}
	return out
}

func bohneFromAPI(b rbtv.Bohne) catalog.Bohne {
	return catalog.Bohne{
		ID:           b.ID,
		Name:         b.Name,
		EpisodeCount: b.EpisodeCount,
	}
}

func postFromAPI(p rbtv.BlogPost) catalog.BlogPost {
	authors := make([]string, 0, len(p.Authors))
	for _, a := range p.Authors {
		authors = append(authors, a.Name)
	}
	return catalog.BlogPost{
		ID:          p.ID,
		Title:       p.Title,
		Subtitle:    p.Subtitle,
		PublishDate: parseTime(p.PublishDate),
		Authors:     authors,
		ContentMK:   p.ContentMK,
		ContentHTML: p.ContentHTML,
	}
}

// optInt parses the API's stringly-typed numbers; empty or malformed
// values become 0.
func optInt(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// parseTime parses an ISO timestamp; empty or malformed values become
// the zero time.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
