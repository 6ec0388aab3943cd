package query_test

import (
	"testing"
	"time"

	"github.com/rbtvdl/rbtvdl/internal/catalog"
	"github.com/rbtvdl/rbtvdl/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	simon  = 1
	gregor = 2
	budi   = 3
)

func TestUnsorted(t *testing.T) {
	episodes := []catalog.Episode{
		{ID: 1, SeasonID: 10},
		{ID: 2},
		{ID: 3, SeasonID: 11},
		{ID: 4},
	}

	got := query.Unsorted(episodes)

	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 4, got[1].ID)
}

func TestByHosts(t *testing.T) {
	episodes := []catalog.Episode{
		{ID: 1, Hosts: []int{simon}},
		{ID: 2, Hosts: []int{simon, gregor}},
		{ID: 3, Hosts: []int{simon, gregor, budi}},
		{ID: 4, Hosts: []int{budi}},
		{ID: 5},
	}

	tests := []struct {
		name      string
		hosts     []int
		num       int
		exclusive bool
		want      []int
	}{
		{
			name:  "single host",
			hosts: []int{simon},
			num:   1,
			want:  []int{1, 2, 3},
		},
		{
			name:  "threshold two",
			hosts: []int{simon, gregor},
			num:   2,
			want:  []int{2, 3},
		},
		{
			name:      "exclusive drops episodes with other hosts",
			hosts:     []int{simon},
			num:       1,
			exclusive: true,
			want:      []int{1},
		},
		{
			name:      "exclusive pair",
			hosts:     []int{simon, gregor},
			num:       1,
			exclusive: true,
			want:      []int{1, 2},
		},
		{
			name:  "no hosts listed never matches",
			hosts: []int{simon, gregor, budi},
			num:   1,
			want:  []int{1, 2, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ByHosts(episodes, tt.hosts, tt.num, tt.exclusive)
			ids := make([]int, len(got))
			for i, ep := range got {
				ids[i] = ep.ID
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestBySearch(t *testing.T) {
	episodes := []catalog.Episode{
		{ID: 1, Title: "Kino+ #300", ShowName: "Kino+"},
		{ID: 2, Title: "Almost Daily #42", ShowName: "Almost Daily"},
		{ID: 3, Title: "Pen & Paper", ShowName: "TEARS"},
	}

	got := query.BySearch(episodes, "kino")
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	got = query.BySearch(episodes, "DAILY")
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	assert.Empty(t, query.BySearch(episodes, "nope"))
}

func TestRecordsBySearch(t *testing.T) {
	shows := query.ShowsBySearch([]catalog.Show{
		{ID: 1, Title: "Kino+"},
		{ID: 2, Title: "Almost Daily"},
	}, "kino")
	require.Len(t, shows, 1)
	assert.Equal(t, 1, shows[0].ID)

	bohnen := query.BohnenBySearch([]catalog.Bohne{
		{ID: simon, Name: "Simon"},
		{ID: gregor, Name: "Gregor"},
	}, "GREG")
	require.Len(t, bohnen, 1)
	assert.Equal(t, gregor, bohnen[0].ID)

	posts := query.PostsBySearch([]catalog.BlogPost{
		{ID: 1, Title: "Neues aus dem Studio"},
		{ID: 2, Title: "Montagsprogramm", Subtitle: "Studio-Update"},
		{ID: 3, Title: "Jahresrückblick"},
	}, "studio")
	require.Len(t, posts, 2)
	assert.Equal(t, 1, posts[0].ID)
	assert.Equal(t, 2, posts[1].ID)
}

func TestSortEpisodes(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2020, 1, d, 0, 0, 0, 0, time.UTC)
	}
	episodes := []catalog.Episode{
		{ID: 3, Title: "c", FirstBroadcast: day(2)},
		{ID: 1, Title: "", FirstBroadcast: day(3)},
		{ID: 2, Title: "a"},
	}

	byID := append([]catalog.Episode(nil), episodes...)
	query.SortEpisodes(byID, query.SortID, "-")
	assert.Equal(t, []int{1, 2, 3}, episodeIDs(byID))

	byTitle := append([]catalog.Episode(nil), episodes...)
	query.SortEpisodes(byTitle, query.SortTitle, "-")
	// missing title sorts last
	assert.Equal(t, []int{2, 3, 1}, episodeIDs(byTitle))

	byDate := append([]catalog.Episode(nil), episodes...)
	query.SortEpisodes(byDate, query.SortDate, "-")
	// missing broadcast date sorts last
	assert.Equal(t, []int{3, 1, 2}, episodeIDs(byDate))

	unsorted := append([]catalog.Episode(nil), episodes...)
	query.SortEpisodes(unsorted, query.SortNone, "-")
	assert.Equal(t, []int{3, 1, 2}, episodeIDs(unsorted))
}

func TestLimit(t *testing.T) {
	items := []int{1, 2, 3}
	assert.Equal(t, []int{1, 2}, query.Limit(items, 2))
	assert.Equal(t, items, query.Limit(items, 0))
	assert.Equal(t, items, query.Limit(items, -1))
	assert.Equal(t, items, query.Limit(items, 5))
}

func TestParseSortField(t *testing.T) {
	for _, valid := range []string{"", "id", "title", "showName", "firstBroadcastdate"} {
		_, err := query.ParseSortField(valid)
		assert.NoError(t, err, valid)
	}
	_, err := query.ParseSortField("name")
	assert.Error(t, err)
}

func episodeIDs(episodes []catalog.Episode) []int {
	ids := make([]int, len(episodes))
	for i, ep := range episodes {
		ids[i] = ep.ID
	}
	return ids
}
