package snapshot_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/rbtvdl/rbtvdl/internal/catalog"
	"github.com/rbtvdl/rbtvdl/internal/catalog/mocks"
	"github.com/rbtvdl/rbtvdl/internal/catalog/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// refreshed creates a snapshot filled from a mock source: two regular
// shows, one podcast show whose episode listing is rejected, two
// hosts and one blog post.
func refreshed(t *testing.T) *snapshot.Store {
	t.Helper()
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	shows := []catalog.Show{
		{ID: 10, Title: "Kino+", Seasons: []catalog.Season{{ID: 3, ShowID: 10, Name: "Staffel 3"}}},
		{ID: 11, Title: "Almost Daily"},
		{ID: 12, Title: "Podcast Show", IsTruePodcast: true},
	}
	src.EXPECT().AllShows(gomock.Any()).Return(shows, nil)
	src.EXPECT().EpisodesByShows(gomock.Any(), []int{10}, false).Return([]catalog.Episode{
		{ID: 1, ShowID: 10, ShowName: "Kino+", SeasonID: 3, Title: "Folge 1", Hosts: []int{100}},
		{ID: 2, ShowID: 10, ShowName: "Kino+", Title: "Spezial", Description: "Bonusfolge"},
	}, nil)
	src.EXPECT().EpisodesByShows(gomock.Any(), []int{11}, false).Return([]catalog.Episode{
		{ID: 5, ShowID: 11, ShowName: "Almost Daily", Title: "Folge 5", Hosts: []int{100, 101}},
	}, nil)
	src.EXPECT().EpisodesByShows(gomock.Any(), []int{12}, false).Return(nil, catalog.ErrRejected)
	src.EXPECT().AllBohnen(gomock.Any()).Return([]catalog.Bohne{
		{ID: 100, Name: "Simon"},
		{ID: 101, Name: "Gregor"},
	}, nil)
	src.EXPECT().AllPosts(gomock.Any()).Return([]catalog.BlogPost{
		{ID: 7, Title: "Neues aus dem Studio"},
	}, nil)

	path := filepath.Join(t.TempDir(), "snapshot.db")
	store, err := snapshot.Create(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Refresh(context.Background(), src, testLogger()))
	return store
}

func TestOpen_Missing(t *testing.T) {
	_, err := snapshot.Open(filepath.Join(t.TempDir(), "nope.db"))
	require.Error(t, err)
	assert.True(t, snapshot.IsNotExist(err))
}

func TestStore_Episodes(t *testing.T) {
	store := refreshed(t)
	ctx := context.Background()

	episodes, err := store.Episodes(ctx, []int{1, 5})
	require.NoError(t, err)
	require.Len(t, episodes, 2)
	assert.Equal(t, "Folge 1", episodes[0].Title)
	assert.Equal(t, "Almost Daily", episodes[1].ShowName)

	_, err = store.Episodes(ctx, []int{999})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestStore_EpisodesByShows(t *testing.T) {
	store := refreshed(t)
	ctx := context.Background()

	episodes, err := store.EpisodesByShows(ctx, []int{10}, false)
	require.NoError(t, err)
	assert.Len(t, episodes, 2)

	unsorted, err := store.EpisodesByShows(ctx, []int{10}, true)
	require.NoError(t, err)
	require.Len(t, unsorted, 1)
	assert.Equal(t, 2, unsorted[0].ID)
}

func TestStore_EpisodesBySeasons(t *testing.T) {
	store := refreshed(t)

	episodes, err := store.EpisodesBySeasons(context.Background(), []int{3})
	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Equal(t, 1, episodes[0].ID)
}

func TestStore_AllEpisodes(t *testing.T) {
	store := refreshed(t)

	episodes, err := store.AllEpisodes(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, episodes, 3)

	unsorted, err := store.AllEpisodes(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, unsorted, 2)
}

func TestStore_EpisodesByBohnen(t *testing.T) {
	store := refreshed(t)

	episodes, err := store.EpisodesByBohnen(context.Background(), []int{101})
	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Equal(t, 5, episodes[0].ID)
}

func TestStore_Season(t *testing.T) {
	store := refreshed(t)

	season, err := store.Season(context.Background(), 10, 3)
	require.NoError(t, err)
	assert.Equal(t, "Staffel 3", season.Name)

	_, err = store.Season(context.Background(), 10, 99)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestStore_ShowsAndBohnenAndPosts(t *testing.T) {
	store := refreshed(t)
	ctx := context.Background()

	shows, err := store.AllShows(ctx)
	require.NoError(t, err)
	assert.Len(t, shows, 3, "rejected shows still appear in the show list")

	bohnen, err := store.Bohnen(ctx, []int{100})
	require.NoError(t, err)
	require.Len(t, bohnen, 1)
	assert.Equal(t, "Simon", bohnen[0].Name)

	posts, err := store.AllPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, 7, posts[0].ID)
}

func TestStore_Search(t *testing.T) {
	store := refreshed(t)

	result, err := store.Search(context.Background(), "bonus")
	require.NoError(t, err)
	assert.Empty(t, result.Shows)
	require.Len(t, result.Episodes, 1)
	assert.Equal(t, 2, result.Episodes[0].ID)

	result, err = store.Search(context.Background(), "studio")
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
}

func TestStore_RefreshedAt(t *testing.T) {
	store := refreshed(t)

	at, err := store.RefreshedAt(context.Background())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), at, time.Minute)
}
