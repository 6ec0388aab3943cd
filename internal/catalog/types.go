package catalog

import (
	"strconv"
	"time"
)

// Show is a show with its seasons. Unsorted episodes are episodes of
// the show that belong to no season.
type Show struct {
	ID                  int      `json:"id"`
	Title               string   `json:"title"`
	Genre               string   `json:"genre"`
	StatusNote          string   `json:"status_note"`
	HasUnsortedEpisodes bool     `json:"has_unsorted_episodes"`
	IsTruePodcast       bool     `json:"is_true_podcast"`
	Seasons             []Season `json:"seasons"`
}

// Season belongs to exactly one show. Number is 0 when the catalog
// carries no numeric season number.
type Season struct {
	ID     int    `json:"id"`
	ShowID int    `json:"show_id"`
	Name   string `json:"name"`
	Number int    `json:"number"`
}

// DisplayName returns the season name, falling back to the season
// number and finally the id.
func (s Season) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	if s.Number != 0 {
		return "Season " + strconv.Itoa(s.Number)
	}
	return "#" + strconv.Itoa(s.ID)
}

// Episode is a single episode. SeasonID 0 means unsorted; Number 0
// means the catalog carries no episode number; a zero FirstBroadcast
// means the broadcast date is unknown. Each youtube token is one
// downloadable part.
type Episode struct {
	ID             int       `json:"id"`
	ShowID         int       `json:"show_id"`
	ShowName       string    `json:"show_name"`
	SeasonID       int       `json:"season_id"`
	Number         int       `json:"number"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Duration       int       `json:"duration"`
	FirstBroadcast time.Time `json:"first_broadcast"`
	Hosts          []int     `json:"hosts"`
	YoutubeTokens  []string  `json:"youtube_tokens"`
}

// InSeason reports whether the episode is assigned to a season.
func (e Episode) InSeason() bool {
	return e.SeasonID != 0
}

// Bohne is a show host. Names are not unique; lookups by name may
// legitimately return several hosts.
type Bohne struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	EpisodeCount int    `json:"episode_count"`
}

// BlogPost is a blog post preview.
type BlogPost struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	PublishDate time.Time `json:"publish_date"`
	Authors     []string  `json:"authors"`
	ContentMK   string    `json:"content_mk"`
	ContentHTML string    `json:"content_html"`
}

// SearchResult groups free-text search hits by record kind.
type SearchResult struct {
	Shows    []Show
	Episodes []Episode
	Posts    []BlogPost
}
