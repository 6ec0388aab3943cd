package live

import (
	"testing"

	"github.com/rbtvdl/rbtvdl/internal/catalog"
	"github.com/rbtvdl/rbtvdl/pkg/rbtv"
	"github.com/stretchr/testify/assert"
)

func TestEpisodeFromAPI(t *testing.T) {
	ep := episodeFromAPI(rbtv.Episode{
		ID:                 1,
		ShowID:             10,
		ShowName:           "Kino+",
		SeasonID:           3,
		Episode:            "12",
		Title:              "Folge 12",
		Duration:           3600,
		FirstBroadcastdate: "2019-03-01T20:15:00.000Z",
		Hosts:              []int{100},
		YoutubeTokens:      []string{"abc"},
	})

	assert.Equal(t, 12, ep.Number)
	assert.True(t, ep.InSeason())
	assert.Equal(t, 2019, ep.FirstBroadcast.Year())
	assert.Equal(t, []string{"abc"}, ep.YoutubeTokens)
}

func TestEpisodeFromAPI_MissingValues(t *testing.T) {
	ep := episodeFromAPI(rbtv.Episode{ID: 2, Episode: "bonus"})

	assert.Equal(t, 0, ep.Number, "non-numeric episode number becomes 0")
	assert.False(t, ep.InSeason())
	assert.True(t, ep.FirstBroadcast.IsZero())
}

func TestSeasonDisplayName(t *testing.T) {
	assert.Equal(t, "Staffel 3", catalog.Season{Name: "Staffel 3"}.DisplayName())
	assert.Equal(t, "Season 4", catalog.Season{Number: 4}.DisplayName())
	assert.Equal(t, "#9", catalog.Season{ID: 9}.DisplayName())
}

func TestPostFromAPI(t *testing.T) {
	post := postFromAPI(rbtv.BlogPost{
		ID:          7,
		Title:       "Titel",
		PublishDate: "2020-01-02T03:04:05.000Z",
		Authors:     []rbtv.Author{{Name: "Eddy"}},
	})

	assert.Equal(t, []string{"Eddy"}, post.Authors)
	assert.Equal(t, 2020, post.PublishDate.Year())
}
