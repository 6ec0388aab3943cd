package query_test

import (
	"context"
	"testing"

	"github.com/rbtvdl/rbtvdl/internal/catalog"
	"github.com/rbtvdl/rbtvdl/internal/catalog/mocks"
	"github.com/rbtvdl/rbtvdl/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSelection_Validate(t *testing.T) {
	tests := []struct {
		name    string
		sel     query.Selection
		mod     query.Modifiers
		wantErr string
	}{
		{
			name:    "empty",
			wantErr: "no selection",
		},
		{
			name: "episode ids",
			sel:  query.Selection{EpisodeIDs: []int{1}},
		},
		{
			name: "show ids and names combine",
			sel:  query.Selection{ShowIDs: []int{1}, ShowNames: []string{"Kino+"}},
		},
		{
			name:    "episodes and seasons conflict",
			sel:     query.Selection{EpisodeIDs: []int{1}, SeasonIDs: []int{2}},
			wantErr: "mutually exclusive",
		},
		{
			name:    "shows and bohnen conflict",
			sel:     query.Selection{ShowIDs: []int{1}, BohneIDs: []int{2}},
			wantErr: "mutually exclusive",
		},
		{
			name:    "all shows with explicit shows",
			sel:     query.Selection{AllShows: true, ShowIDs: []int{1}},
			wantErr: "--all-shows",
		},
		{
			name:    "unsorted-only needs shows",
			sel:     query.Selection{EpisodeIDs: []int{1}},
			mod:     query.Modifiers{UnsortedOnly: true},
			wantErr: "--unsorted-only",
		},
		{
			name: "unsorted-only with shows",
			sel:  query.Selection{ShowIDs: []int{1}},
			mod:  query.Modifiers{UnsortedOnly: true},
		},
		{
			name:    "bohne-num needs bohnen",
			sel:     query.Selection{ShowIDs: []int{1}},
			mod:     query.Modifiers{MinBohnen: 2},
			wantErr: "--bohne-num",
		},
		{
			name: "exclusive with bohnen",
			sel:  query.Selection{BohneNames: []string{"Simon"}},
			mod:  query.Modifiers{Exclusive: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sel.Validate(tt.mod)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestResolver_Episodes_ByShowName(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	src.EXPECT().AllShows(gomock.Any()).Return([]catalog.Show{
		{ID: 10, Title: "Kino+"},
		{ID: 11, Title: "Almost Daily"},
	}, nil)
	src.EXPECT().EpisodesByShows(gomock.Any(), []int{10}, false).Return([]catalog.Episode{
		{ID: 1, ShowID: 10},
	}, nil)

	r := query.NewResolver(src, "-")
	episodes, err := r.Episodes(context.Background(), query.Selection{ShowNames: []string{"kino+"}}, query.Modifiers{})

	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Equal(t, 1, episodes[0].ID)
}

func TestResolver_Episodes_ShowNameFoldsAccents(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	src.EXPECT().AllShows(gomock.Any()).Return([]catalog.Show{
		{ID: 10, Title: "Café mit Böhnen"},
	}, nil)
	src.EXPECT().EpisodesByShows(gomock.Any(), []int{10}, false).Return(nil, nil)

	r := query.NewResolver(src, "-")
	_, err := r.Episodes(context.Background(), query.Selection{ShowNames: []string{"cafe mit bohnen"}}, query.Modifiers{})

	assert.NoError(t, err)
}

func TestResolver_Episodes_UnknownShowName(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	src.EXPECT().AllShows(gomock.Any()).Return([]catalog.Show{
		{ID: 10, Title: "Kino+"},
		{ID: 11, Title: "Almost Daily"},
	}, nil)

	r := query.NewResolver(src, "-")
	_, err := r.Episodes(context.Background(), query.Selection{ShowNames: []string{"Almost Dayly"}}, query.Modifiers{})

	var selErr *query.SelectionError
	require.ErrorAs(t, err, &selErr)
	assert.Equal(t, "show", selErr.Kind)
	assert.Equal(t, "Almost Dayly", selErr.Query)
	assert.Contains(t, selErr.Suggestions, "Almost Daily")
	assert.Contains(t, err.Error(), "did you mean")
}

func TestResolver_Episodes_BohneThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	src.EXPECT().AllBohnen(gomock.Any()).Return([]catalog.Bohne{
		{ID: simon, Name: "Simon"},
		{ID: gregor, Name: "Gregor"},
	}, nil)
	src.EXPECT().EpisodesByBohnen(gomock.Any(), []int{simon, gregor}).Return([]catalog.Episode{
		{ID: 1, Hosts: []int{simon}},
		{ID: 2, Hosts: []int{simon, gregor}},
		{ID: 3, Hosts: []int{simon, gregor, budi}},
	}, nil)

	r := query.NewResolver(src, "-")
	episodes, err := r.Episodes(context.Background(),
		query.Selection{BohneNames: []string{"Simon", "Gregor"}},
		query.Modifiers{MinBohnen: 2, Exclusive: true},
	)

	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Equal(t, 2, episodes[0].ID)
}

func TestResolver_Episodes_SortAndLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	src.EXPECT().Episodes(gomock.Any(), []int{3, 1, 2}).Return([]catalog.Episode{
		{ID: 3}, {ID: 1}, {ID: 2},
	}, nil)

	r := query.NewResolver(src, "-")
	episodes, err := r.Episodes(context.Background(),
		query.Selection{EpisodeIDs: []int{3, 1, 2}},
		query.Modifiers{SortBy: query.SortID, Limit: 2},
	)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, episodeIDs(episodes))
}

func TestResolver_Episodes_SearchModifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	src.EXPECT().EpisodesByShows(gomock.Any(), []int{10}, false).Return([]catalog.Episode{
		{ID: 1, Title: "Spiele mit Bart"},
		{ID: 2, Title: "Retro Club"},
	}, nil)

	r := query.NewResolver(src, "-")
	episodes, err := r.Episodes(context.Background(),
		query.Selection{ShowIDs: []int{10}},
		query.Modifiers{Search: "retro"},
	)

	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Equal(t, 2, episodes[0].ID)
}

func TestResolver_Shows_All(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	src.EXPECT().AllShows(gomock.Any()).Return([]catalog.Show{
		{ID: 2, Title: "B"},
		{ID: 1, Title: "A"},
	}, nil)

	r := query.NewResolver(src, "-")
	shows, err := r.Shows(context.Background(), query.Selection{AllShows: true}, query.Modifiers{SortBy: query.SortTitle})

	require.NoError(t, err)
	require.Len(t, shows, 2)
	assert.Equal(t, "A", shows[0].Title)
}

func TestResolver_Shows_SearchModifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	src.EXPECT().AllShows(gomock.Any()).Return([]catalog.Show{
		{ID: 10, Title: "Kino+"},
		{ID: 11, Title: "Almost Daily"},
	}, nil)

	r := query.NewResolver(src, "-")
	shows, err := r.Shows(context.Background(),
		query.Selection{AllShows: true},
		query.Modifiers{Search: "daily"},
	)

	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, 11, shows[0].ID)
}

func TestResolver_Bohnen_SearchModifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	src.EXPECT().AllBohnen(gomock.Any()).Return([]catalog.Bohne{
		{ID: simon, Name: "Simon"},
		{ID: gregor, Name: "Gregor"},
	}, nil)

	r := query.NewResolver(src, "-")
	bohnen, err := r.Bohnen(context.Background(),
		query.Selection{AllBohnen: true},
		query.Modifiers{Search: "sim"},
	)

	require.NoError(t, err)
	require.Len(t, bohnen, 1)
	assert.Equal(t, simon, bohnen[0].ID)
}

func TestResolver_Posts(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	src.EXPECT().Posts(gomock.Any(), []int{7}).Return([]catalog.BlogPost{{ID: 7}}, nil)

	r := query.NewResolver(src, "-")
	posts, err := r.Posts(context.Background(), query.Selection{BlogIDs: []int{7}}, query.Modifiers{})

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, 7, posts[0].ID)
}

func TestResolver_Bohnen_DuplicateNameAndID(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	src.EXPECT().AllBohnen(gomock.Any()).Return([]catalog.Bohne{
		{ID: simon, Name: "Simon"},
	}, nil)
	// id 1 named twice still resolves to a single host
	src.EXPECT().Bohnen(gomock.Any(), []int{simon}).Return([]catalog.Bohne{
		{ID: simon, Name: "Simon"},
	}, nil)

	r := query.NewResolver(src, "-")
	bohnen, err := r.Bohnen(context.Background(),
		query.Selection{BohneIDs: []int{simon}, BohneNames: []string{"simon"}},
		query.Modifiers{},
	)

	require.NoError(t, err)
	assert.Len(t, bohnen, 1)
}
