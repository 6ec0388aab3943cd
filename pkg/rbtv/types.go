package rbtv

// Show is a show record as returned by the mediathek API.
type Show struct {
	ID                  int      `json:"id"`
	Title               string   `json:"title"`
	Genre               string   `json:"genre"`
	StatusPublicNote    string   `json:"statusPublicNote"`
	HasUnsortedEpisodes bool     `json:"hasUnsortedEpisodes"`
	IsTruePodcast       bool     `json:"isTruePodcast"`
	Seasons             []Season `json:"seasons"`
}

// Season belongs to a show. Numeric is the season number; the API
// serves it as a string and it may be empty.
type Season struct {
	ID      int    `json:"id"`
	ShowID  int    `json:"showId"`
	Name    string `json:"name"`
	Numeric string `json:"numeric"`
}

// Episode is an episode record. SeasonID is 0 for unsorted episodes
// (the API sends null). Episode is the episode number as a string and
// may be empty. YoutubeTokens holds one token per downloadable part.
type Episode struct {
	ID                 int      `json:"id"`
	ShowID             int      `json:"showId"`
	ShowName           string   `json:"showName"`
	SeasonID           int      `json:"seasonId"`
	Episode            string   `json:"episode"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Duration           int      `json:"duration"`
	FirstBroadcastdate string   `json:"firstBroadcastdate"`
	Hosts              []int    `json:"hosts"`
	YoutubeTokens      []string `json:"youtubeTokens"`
}

// Bohne is a host/presenter portrait. Names are not unique.
type Bohne struct {
	ID           int    `json:"mgmtid"`
	Name         string `json:"name"`
	EpisodeCount int    `json:"episodeCount"`
}

// BlogPost is a blog post preview.
type BlogPost struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	PublishDate string   `json:"publishDate"`
	Authors     []Author `json:"authors"`
	ContentMK   string   `json:"contentMK"`
	ContentHTML string   `json:"contentHTML"`
}

// Author of a blog post.
type Author struct {
	Name string `json:"name"`
}

// SearchResult groups the hits of a full-text search.
type SearchResult struct {
	Shows    []Show     `json:"shows"`
	Episodes []Episode  `json:"episodes"`
	Blog     []BlogPost `json:"blog"`
}

// envelope is the common response wrapper.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// episodeBatch is how episode list endpoints group their results: the
// data array holds batches, each carrying a slice of episodes.
type episodeBatch struct {
	Episodes []Episode `json:"episodes"`
}
