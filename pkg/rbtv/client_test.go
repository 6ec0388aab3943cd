package rbtv

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAPI creates a test server that simulates the mediathek API.
func mockAPI(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.URL.Path]; ok {
			handler(w, r)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
}

// writeData wraps v in the standard response envelope.
func writeData(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	resp := map[string]any{"success": true, "data": v}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		panic("test: failed to encode JSON: " + err.Error())
	}
}

func TestClient_Show(t *testing.T) {
	srv := mockAPI(t, map[string]http.HandlerFunc{
		"/media/show/92": func(w http.ResponseWriter, r *http.Request) {
			writeData(w, Show{
				ID:    92,
				Title: "Game Two",
				Genre: "Gaming",
				Seasons: []Season{
					{ID: 7, ShowID: 92, Name: "Staffel 1", Numeric: "1"},
				},
			})
		},
	})
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	show, err := c.Show(context.Background(), 92)

	require.NoError(t, err)
	assert.Equal(t, 92, show.ID)
	assert.Equal(t, "Game Two", show.Title)
	require.Len(t, show.Seasons, 1)
	assert.Equal(t, "Staffel 1", show.Seasons[0].Name)
}

func TestClient_Show_NotFound(t *testing.T) {
	srv := mockAPI(t, nil)
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	_, err := c.Show(context.Background(), 999)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_EpisodesByShow_BadRequest(t *testing.T) {
	srv := mockAPI(t, map[string]http.HandlerFunc{
		"/media/episode/byshow/13": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		},
	})
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	_, err := c.EpisodesByShow(context.Background(), 13)

	// True podcast shows are rejected with 400; dump relies on this.
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestClient_Episode(t *testing.T) {
	srv := mockAPI(t, map[string]http.HandlerFunc{
		"/media/episode/1001": func(w http.ResponseWriter, r *http.Request) {
			writeData(w, []episodeBatch{
				{Episodes: []Episode{{
					ID:            1001,
					ShowID:        92,
					ShowName:      "Game Two",
					SeasonID:      7,
					Title:         "Folge 1",
					Hosts:         []int{3, 4},
					YoutubeTokens: []string{"dQw4w9WgXcQ"},
				}}},
			})
		},
	})
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	ep, err := c.Episode(context.Background(), 1001)

	require.NoError(t, err)
	assert.Equal(t, 1001, ep.ID)
	assert.Equal(t, []int{3, 4}, ep.Hosts)
	assert.Equal(t, []string{"dQw4w9WgXcQ"}, ep.YoutubeTokens)
}

func TestClient_Shows_Paginated(t *testing.T) {
	// Two full pages then a short one; the client must walk all three.
	pages := [][]Show{
		makeShows(0, pageSize),
		makeShows(pageSize, pageSize),
		makeShows(2*pageSize, 10),
	}

	srv := mockAPI(t, map[string]http.HandlerFunc{
		"/media/show/all": func(w http.ResponseWriter, r *http.Request) {
			offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			idx := offset / pageSize
			if idx >= len(pages) {
				writeData(w, []Show{})
				return
			}
			writeData(w, pages[idx])
		},
	})
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	shows, err := c.Shows(context.Background())

	require.NoError(t, err)
	assert.Len(t, shows, 2*pageSize+10)
	assert.Equal(t, 0, shows[0].ID)
	assert.Equal(t, 2*pageSize+9, shows[len(shows)-1].ID)
}

func TestClient_Search(t *testing.T) {
	srv := mockAPI(t, map[string]http.HandlerFunc{
		"/search": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "pen & paper", r.URL.Query().Get("q"))
			writeData(w, SearchResult{
				Shows:    []Show{{ID: 1, Title: "Pen & Paper"}},
				Episodes: []Episode{{ID: 2, Title: "Pen & Paper: Aufbruch"}},
			})
		},
	})
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	result, err := c.Search(context.Background(), "pen & paper")

	require.NoError(t, err)
	assert.Len(t, result.Shows, 1)
	assert.Len(t, result.Episodes, 1)
	assert.Empty(t, result.Blog)
}

func TestClient_EnvelopeFailure(t *testing.T) {
	srv := mockAPI(t, map[string]http.HandlerFunc{
		"/bohne/portrait/all": func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success": false, "message": "maintenance"}`))
		},
	})
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	_, err := c.Bohnen(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "maintenance")
}

func makeShows(start, n int) []Show {
	shows := make([]Show, n)
	for i := range shows {
		shows[i] = Show{ID: start + i, Title: "Show"}
	}
	return shows
}
